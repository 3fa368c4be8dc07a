package service

import "bloglist/internal/models"

// IsOwner решает, может ли личность изменять пост. Сравнение
// канонических строковых идентификаторов, единственная точка
// принятия решения для всех мутирующих операций.
func IsOwner(post *models.Post, identity *models.Identity) bool {
	if post == nil || identity == nil {
		return false
	}
	return post.UserID == identity.UserID
}
