package service

import (
	"context"
	"fmt"
	"io"
	"log"

	"bloglist/internal/config"
	"bloglist/internal/models"
	"bloglist/internal/repository"
	"bloglist/internal/stats"
	"bloglist/internal/storage"
)

type CreatePostRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
}

type ReplacePostRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
}

type PostStats struct {
	TotalLikes int          `json:"totalLikes"`
	Favorite   *models.Post `json:"favorite"`
}

type PostService interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, postID string) (*models.Post, error)
	CreatePost(ctx context.Context, identity *models.Identity, req CreatePostRequest) (*models.Post, error)
	ReplacePost(ctx context.Context, postID string, req ReplacePostRequest) (*models.Post, error)
	DeletePost(ctx context.Context, identity *models.Identity, postID string) error
	Stats(ctx context.Context) (*PostStats, error)
	AddImage(ctx context.Context, identity *models.Identity, postID, fileName string, file io.Reader, size int64) (*models.Image, error)
	DeleteImage(ctx context.Context, identity *models.Identity, postID, imageID string) error
}

type postService struct {
	postRepo  repository.PostRepository
	imageRepo repository.ImageRepository
	storage   storage.Storage
	cfg       *config.Config
}

func NewPostService(postRepo repository.PostRepository, imageRepo repository.ImageRepository, storage storage.Storage, cfg *config.Config) PostService {
	return &postService{
		postRepo:  postRepo,
		imageRepo: imageRepo,
		storage:   storage,
		cfg:       cfg,
	}
}

// все обращения к хранилищу идут под явным таймаутом
func (p *postService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, p.cfg.StoreTimeout)
}

func (p *postService) ListPosts(ctx context.Context) ([]models.Post, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	return p.postRepo.GetAll(ctx)
}

func (p *postService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	images, err := p.imageRepo.GetByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	post.Images = images

	return post, nil
}

// CreatePost валидирует пост и записывает его за личностью запроса.
// Валидация строго до любой записи в хранилище.
func (p *postService) CreatePost(ctx context.Context, identity *models.Identity, req CreatePostRequest) (*models.Post, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("отсутствует заголовок: %w", models.ErrValidation)
	}
	if req.URL == "" {
		return nil, fmt.Errorf("отсутствует url: %w", models.ErrValidation)
	}
	if req.Likes < 0 {
		return nil, fmt.Errorf("лайки не могут быть отрицательными: %w", models.ErrValidation)
	}

	post := &models.Post{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  req.Likes, // ноль, если поле не пришло
		UserID: identity.UserID,
	}

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	err := p.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

// ReplacePost целиком заменяет поля поста. Как и в наблюдаемом
// поведении, ни аутентификации, ни проверки владельца здесь нет -
// слабее, чем у DeletePost. IsOwner - место, где появилась бы
// проверка при ужесточении.
func (p *postService) ReplacePost(ctx context.Context, postID string, req ReplacePostRequest) (*models.Post, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	post.Title = req.Title
	post.Author = req.Author
	post.URL = req.URL
	post.Likes = req.Likes

	err = p.postRepo.Replace(ctx, post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

// DeletePost удаляет пост, если он принадлежит личности запроса.
// Чужой пост и отсутствующий пост снаружи неразличимы: обе ветки
// отдают ErrNotFound, чтобы не выдавать существование чужих постов.
func (p *postService) DeletePost(ctx context.Context, identity *models.Identity, postID string) error {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if !IsOwner(post, identity) {
		return fmt.Errorf("пост с ID %s: %w", postID, models.ErrNotFound)
	}

	return p.postRepo.Delete(ctx, postID)
}

func (p *postService) Stats(ctx context.Context) (*PostStats, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	posts, err := p.postRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	favorite, err := stats.FavoriteBlog(posts)
	if err != nil {
		return nil, err
	}

	return &PostStats{
		TotalLikes: stats.TotalLikes(posts),
		Favorite:   favorite,
	}, nil
}

// AddImage прикрепляет картинку к посту личности запроса. Чужой пост
// прячется за ErrNotFound так же, как при удалении.
func (p *postService) AddImage(ctx context.Context, identity *models.Identity, postID, fileName string, file io.Reader, size int64) (*models.Image, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if !IsOwner(post, identity) {
		return nil, fmt.Errorf("пост с ID %s: %w", postID, models.ErrNotFound)
	}

	objectName, imageURL, err := p.storage.UploadImage(ctx, postID, fileName, file, size)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки изображения в MinIO: %w", err)
	}

	image := &models.Image{
		PostID:   postID,
		ImageURL: imageURL,
	}

	err = p.imageRepo.Create(ctx, image)
	if err != nil {
		// откатываем уже загруженный объект
		if removeErr := p.storage.DeleteImage(ctx, objectName); removeErr != nil {
			log.Printf("Предупреждение: не удалось удалить объект из MinIO: %v", removeErr)
		}
		return nil, fmt.Errorf("ошибка сохранения изображения в БД: %w", err)
	}

	return image, nil
}

func (p *postService) DeleteImage(ctx context.Context, identity *models.Identity, postID, imageID string) error {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if !IsOwner(post, identity) {
		return fmt.Errorf("пост с ID %s: %w", postID, models.ErrNotFound)
	}

	image, err := p.imageRepo.GetByImageID(ctx, imageID)
	if err != nil {
		return err
	}

	if image.PostID != postID {
		return fmt.Errorf("изображение с ID %s: %w", imageID, models.ErrNotFound)
	}

	objectName := storage.ObjectNameFromURL(image.ImageURL, p.cfg.MinIO.BucketName)
	if err := p.storage.DeleteImage(ctx, objectName); err != nil {
		log.Printf("Предупреждение: не удалось удалить из MinIO: %v", err)
	}

	return p.imageRepo.Delete(ctx, imageID)
}
