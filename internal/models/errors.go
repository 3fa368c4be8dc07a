package models

import "errors"

// Доменные ошибки. Слои оборачивают их через %w, обработчики
// сопоставляют через errors.Is и превращают в HTTP статусы.
var (
	ErrMissingCredential = errors.New("требуется авторизация")
	ErrInvalidCredential = errors.New("недействительный токен")
	ErrUnknownUser       = errors.New("пользователь не найден")
	ErrValidation        = errors.New("неверные данные запроса")
	ErrNotFound          = errors.New("запись не найдена")
	ErrDuplicateUsername = errors.New("имя пользователя уже занято")
)
