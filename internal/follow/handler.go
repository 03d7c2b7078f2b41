package follow

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ArthurDelaporte/Twitly-Back/internal/database"
	"github.com/ArthurDelaporte/Twitly-Back/internal/logs"
	"github.com/ArthurDelaporte/Twitly-Back/internal/user"
)

// FollowUser POST /api/users/:id/follow
func FollowUser(c *gin.Context) {
	route := c.FullPath()

	followerID := c.GetString("user_id")
	followingID := c.Param("id")

	if followerID == followingID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Impossible de se suivre soi-même"})
		logs.LogJSON("WARN", "Impossible to follow yourself", map[string]interface{}{
			"route":  route,
			"userID": followerID,
		})
		return
	}

	var existing Follow
	if err := database.DB.
		Where("follower_id = ? AND creator_id = ?", followerID, followingID).
		First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Déjà suivi"})
		logs.LogJSON("WARN", "Already followed", map[string]interface{}{
			"route":  route,
			"userID": followerID,
			"extra":  fmt.Sprintf("followingID : %s", followingID),
		})
		return
	}

	newFollow := Follow{
		ID:         uuid.New().String(),
		FollowerID: followerID,
		CreatorID:  followingID,
	}

	if err := database.DB.Create(&newFollow).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur ajout du follow", "details": err.Error()})
		logs.LogJSON("ERROR", "Error adding follow", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": followerID,
			"extra":  fmt.Sprintf("followingID : %s", followingID),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Utilisateur suivi"})
	logs.LogJSON("INFO", "Followed user", map[string]interface{}{
		"route":  route,
		"userID": followerID,
		"extra":  fmt.Sprintf("followingID : %s", followingID),
	})
}

// UnfollowUser DELETE /api/users/:id/follow
func UnfollowUser(c *gin.Context) {
	route := c.FullPath()

	followerID := c.GetString("user_id")
	followingID := c.Param("id")

	// Supprime le follow
	if err := database.DB.
		Where("follower_id = ? AND creator_id = ?", followerID, followingID).
		Delete(&Follow{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur unfollow"})
		logs.LogJSON("ERROR", "Error unfollow", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": followerID,
			"extra":  fmt.Sprintf("followingID : %s", followingID),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Utilisateur unfollow"})
	logs.LogJSON("INFO", "User unfollow", map[string]interface{}{
		"route":  route,
		"userID": followerID,
		"extra":  fmt.Sprintf("followingID : %s", followingID),
	})
}

// GetFollowers GET /api/users/:id/followers
func GetFollowers(c *gin.Context) {
	route := c.FullPath()
	targetID := c.Param("id")

	var followers []user.User
	err := database.DB.
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.creator_id = ?", targetID).
		Order("follows.created_at DESC").
		Find(&followers).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération des followers"})
		logs.LogJSON("ERROR", "Error retrieving followers", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": targetID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"followers": publicUsers(followers)})
}

// GetFollowing GET /api/users/:id/following
func GetFollowing(c *gin.Context) {
	route := c.FullPath()
	targetID := c.Param("id")

	var following []user.User
	err := database.DB.
		Joins("JOIN follows ON follows.creator_id = users.id").
		Where("follows.follower_id = ?", targetID).
		Order("follows.created_at DESC").
		Find(&following).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération des suivis"})
		logs.LogJSON("ERROR", "Error retrieving following", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": targetID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"following": publicUsers(following)})
}

// publicUsers ne garde que les champs publics des profils
func publicUsers(users []user.User) []gin.H {
	result := make([]gin.H, 0, len(users))
	for _, u := range users {
		result = append(result, gin.H{
			"id":         u.ID,
			"username":   u.Username,
			"avatar_url": u.AvatarURL,
			"bio":        u.Bio,
		})
	}
	return result
}
