package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ArthurDelaporte/Twitly-Back/internal/database"
	"github.com/ArthurDelaporte/Twitly-Back/internal/logs"
	"github.com/ArthurDelaporte/Twitly-Back/internal/utils"
)

// GetUserByUsername GET /api/users/username/:username
func GetUserByUsername(c *gin.Context) {
	route := c.FullPath()
	username := c.Param("username")

	currentUserID := c.GetString("user_id")

	var user User
	if err := database.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Utilisateur non trouvé"})
			logs.LogJSON("WARN", "User not found", map[string]interface{}{
				"route":    route,
				"username": username,
				"userID":   currentUserID,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur de récupération de l'utilisateur"})
		logs.LogJSON("ERROR", "Database error", map[string]interface{}{
			"error":    err.Error(),
			"route":    route,
			"username": username,
			"userID":   currentUserID,
		})
		return
	}

	// Statistiques publiques du profil
	var postCount, followerCount, followingCount int64
	database.DB.Table("posts").Where("user_id = ?", user.ID).Count(&postCount)
	database.DB.Table("follows").Where("creator_id = ?", user.ID).Count(&followerCount)
	database.DB.Table("follows").Where("follower_id = ?", user.ID).Count(&followingCount)

	// On retourne uniquement les champs publics
	dataUser := gin.H{
		"user": gin.H{
			"id":         user.ID,
			"username":   user.Username,
			"avatar_url": user.AvatarURL,
			"bio":        user.Bio,
		},
		"stats": gin.H{
			"posts":     postCount,
			"followers": followerCount,
			"following": followingCount,
		},
	}

	if currentUserID != "" && currentUserID != user.ID {
		okFollow, err := utils.IsFollowing(currentUserID, user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la vérification du suivi"})
			logs.LogJSON("ERROR", "Error during follow-up verification", map[string]interface{}{
				"error":    err.Error(),
				"route":    route,
				"username": username,
				"userID":   currentUserID,
			})
			return
		}
		dataUser["is_following"] = okFollow
	}

	c.JSON(http.StatusOK, dataUser)
}
