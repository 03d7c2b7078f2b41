package like

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ArthurDelaporte/Twitly-Back/internal/apperr"
	"github.com/ArthurDelaporte/Twitly-Back/internal/database"
)

// Toggle ajoute le like s'il est absent, le retire s'il est présent.
// Tout se joue dans une seule transaction sur l'état persisté : pas de
// lecture préalable côté client, pas de double-ajout sous concurrence
// (l'index unique (post_id, user_id) couvre la course à l'insertion).
func Toggle(postID, userID string) (added bool, total int64, err error) {
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Table("posts").Where("id = ?", postID).Count(&count).Error; err != nil {
			return fmt.Errorf("%w: %v", apperr.ErrStorage, err)
		}
		if count == 0 {
			return apperr.ErrNotFound
		}

		res := tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&Like{})
		if res.Error != nil {
			return fmt.Errorf("%w: %v", apperr.ErrStorage, res.Error)
		}

		if res.RowsAffected == 0 {
			newLike := Like{
				ID:        uuid.New().String(),
				CreatedAt: time.Now(),
				UserID:    userID,
				PostID:    postID,
			}
			ins := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&newLike)
			if ins.Error != nil {
				return fmt.Errorf("%w: %v", apperr.ErrStorage, ins.Error)
			}
			if ins.RowsAffected == 0 {
				// Conflit : un toggle concurrent vient d'insérer la relation.
				// On bascule quand même par rapport à l'état persisté.
				if err := tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&Like{}).Error; err != nil {
					return fmt.Errorf("%w: %v", apperr.ErrStorage, err)
				}
			} else {
				added = true
			}
		}

		if err := tx.Model(&Like{}).Where("post_id = ?", postID).Count(&total).Error; err != nil {
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
func Status(postID, userID string) (LikeResponse, error) {
	var likeCount int64
	if err := database.DB.Model(&Like{}).Where("post_id = ?", postID).Count(&likeCount).Error; err != nil {
		return LikeResponse{}, fmt.Errorf("%w: %v", apperr.ErrStorage, err)
	}

	var isLiked bool
	if userID != "" {
		var count int64
		if err := database.DB.Model(&Like{}).Where("post_id = ? AND user_id = ?", postID, userID).Count(&count).Error; err != nil {
			return LikeResponse{}, fmt.Errorf("%w: %v", apperr.ErrStorage, err)
		}
		isLiked = count > 0
	}

	return LikeResponse{
		PostID:    postID,
		LikeCount: likeCount,
		IsLiked:   isLiked,
	}, nil
}
