package retweet

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ArthurDelaporte/Twitly-Back/internal/apperr"
	"github.com/ArthurDelaporte/Twitly-Back/internal/database"
)

// Toggle suit le même contrat que le toggle de like : une transaction,
// suppression conditionnelle puis insertion si rien n'a été supprimé.
// Un auteur peut retweeter son propre post.
func Toggle(postID, userID string) (added bool, total int64, err error) {
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Table("posts").Where("id = ?", postID).Count(&count).Error; err != nil {
			return fmt.Errorf("%w: %v", apperr.ErrStorage, err)
		}
		if count == 0 {
			return apperr.ErrNotFound
		}

		res := tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&Retweet{})
		if res.Error != nil {
			return fmt.Errorf("%w: %v", apperr.ErrStorage, res.Error)
		}

		if res.RowsAffected == 0 {
			newRetweet := Retweet{
				ID:        uuid.New().String(),
				CreatedAt: time.Now(),
				UserID:    userID,
				PostID:    postID,
			}
			ins := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&newRetweet)
			if ins.Error != nil {
				return fmt.Errorf("%w: %v", apperr.ErrStorage, ins.Error)
			}
			if ins.RowsAffected == 0 {
				// Conflit : un toggle concurrent vient d'insérer la relation.
				// On bascule quand même par rapport à l'état persisté.
				if err := tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&Retweet{}).Error; err != nil {
					return fmt.Errorf("%w: %v", apperr.ErrStorage, err)
				}
			} else {
				added = true
			}
		}

		if err := tx.Model(&Retweet{}).Where("post_id = ?", postID).Count(&total).Error; err != nil {
			return fmt.Errorf("%w: %v", apperr.ErrStorage, err)
		}
		return nil
	})
	if err != nil {
		return false, 0, err
	}
	return added, total, nil
}

// Status renvoie le compteur et l'état du lecteur courant (userID peut être vide).
func Status(postID, userID string) (RetweetResponse, error) {
	var retweetCount int64
	if err := database.DB.Model(&Retweet{}).Where("post_id = ?", postID).Count(&retweetCount).Error; err != nil {
		return RetweetResponse{}, fmt.Errorf("%w: %v", apperr.ErrStorage, err)
	}

	var isRetweeted bool
	if userID != "" {
		var count int64
		if err := database.DB.Model(&Retweet{}).Where("post_id = ? AND user_id = ?", postID, userID).Count(&count).Error; err != nil {
			return RetweetResponse{}, fmt.Errorf("%w: %v", apperr.ErrStorage, err)
		}
		isRetweeted = count > 0
	}

	return RetweetResponse{
		PostID:       postID,
		RetweetCount: retweetCount,
		IsRetweeted:  isRetweeted,
	}, nil
}
