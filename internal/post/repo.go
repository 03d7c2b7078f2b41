package post

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ArthurDelaporte/Twitly-Back/internal/apperr"
	"github.com/ArthurDelaporte/Twitly-Back/internal/database"
)

const DefaultFeedLimit = 50

// Create valide puis persiste un nouveau post.
// Renvoie apperr.ErrValidation si le texte nettoyé est vide ou dépasse 280 caractères.
func Create(userID, body string) (Post, error) {
	stored, ok := ValidateBody(body)
	if !ok {
		return Post{}, fmt.Errorf("%w: le texte doit contenir entre 1 et 280 caractères", apperr.ErrValidation)
	}

	newPost := Post{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		UserID:    userID,
		Body:      stored,
	}

	if err := database.DB.Create(&newPost).Error; err != nil {
		return Post{}, fmt.Errorf("%w: %v", apperr.ErrStorage, err)
	}
	return newPost, nil
}

// GetByID renvoie apperr.ErrNotFound si l'identifiant est inconnu.
func GetByID(id string) (Post, error) {
	var p Post
	if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Post{}, apperr.ErrNotFound
		}
		return Post{}, fmt.Errorf("%w: %v", apperr.ErrStorage, err)
	}
	return p, nil
}

// ListRecent renvoie les posts les plus récents en premier, bornés par limit.
// Un limit hors bornes retombe sur DefaultFeedLimit.
func ListRecent(limit int) ([]Post, error) {
	if limit <= 0 || limit > DefaultFeedLimit {
		limit = DefaultFeedLimit
	}

	var posts []Post
	if err := database.DB.Order("created_at DESC").Limit(limit).Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrStorage, err)
	}
	return posts, nil
}

// AddComment ajoute un commentaire au post, dans une transaction : la
// vérification d'existence et l'insertion portent sur le même état.
// Jamais idempotent : deux appels identiques créent deux commentaires.
func AddComment(postID, userID, text string) (Comment, error) {
	stored, ok := ValidateBody(text)
	if !ok {
		return Comment{}, fmt.Errorf("%w: le texte doit contenir entre 1 et 280 caractères", apperr.ErrValidation)
	}

	// UUIDv7 : trié par le temps, départage les commentaires créés dans la
	// même microseconde (l'ordre d'affichage doit être l'ordre d'insertion).
	comment := Comment{
		ID:        uuid.Must(uuid.NewV7()).String(),
		PostID:    postID,
		UserID:    userID,
		Content:   stored,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&Post{}).Where("id = ?", postID).Count(&count).Error; err != nil {
			return fmt.Errorf("%w: %v", apperr.ErrStorage, err)
		}
		if count == 0 {
			return apperr.ErrNotFound
		}
		if err := tx.Create(&comment).Error; err != nil {
			return fmt.Errorf("%w: %v", apperr.ErrStorage, err)
		}
		return nil
	})
	if err != nil {
		return Comment{}, err
	}
	return comment, nil
}

// CommentsByPost renvoie les commentaires dans l'ordre d'insertion.
func CommentsByPost(postID string) ([]Comment, error) {
	var count int64
	if err := database.DB.Model(&Post{}).Where("id = ?", postID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrStorage, err)
	}
	if count == 0 {
		return nil, apperr.ErrNotFound
	}

	comments := []Comment{}
	if err := database.DB.Where("post_id = ?", postID).Order("created_at ASC, id ASC").Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrStorage, err)
	}
	return comments, nil
}
