package user

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ArthurDelaporte/Twitly-Back/internal/apperr"
	"github.com/ArthurDelaporte/Twitly-Back/internal/database"
)

func ExistsByEmail(email string) bool {
	var count int64
	database.DB.Model(&User{}).Where("email = ?", email).Count(&count)
	return count > 0
}

func ExistsByUsername(username string) bool {
	var count int64
	database.DB.Model(&User{}).Where("username = ?", username).Count(&count)
	return count > 0
}

// GetByUsername renvoie apperr.ErrNotFound si le nom d'utilisateur est inconnu.
func GetByUsername(username string) (User, error) {
	var u User
	if err := database.DB.Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return User{}, apperr.ErrNotFound
		}
		return User{}, apperr.ErrStorage
	}
	return u, nil
}
