// internal/like/handler.go
package like

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ArthurDelaporte/Twitly-Back/internal/apperr"
	"github.com/ArthurDelaporte/Twitly-Back/internal/logs"
	"github.com/ArthurDelaporte/Twitly-Back/internal/post"
)

// ToggleLike POST /api/posts/:id/like
func ToggleLike(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")
	postID := c.Param("id")

	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		logs.LogJSON("WARN", "Unauthenticated user", map[string]interface{}{
			"route":  route,
			"postID": postID,
		})
		return
	}

	added, total, err := Toggle(postID, userID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post non trouvé"})
			logs.LogJSON("WARN", "Post not found", map[string]interface{}{
				"route":  route,
				"userID": userID,
				"postID": postID,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur de base de données"})
		logs.LogJSON("ERROR", "Database error on like toggle", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
			"postID": postID,
		})
		return
	}

	c.JSON(http.StatusOK, LikeResponse{
		PostID:    postID,
		LikeCount: total,
		IsLiked:   added,
	})
}

// GetLikeStatus GET /api/posts/:id/likes
func GetLikeStatus(c *gin.Context) {
	route := c.FullPath()
	postID := c.Param("id")
	userID := c.GetString("user_id") // Peut être vide si non connecté

	if _, err := post.GetByID(postID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post non trouvé"})
			logs.LogJSON("WARN", "Post not found", map[string]interface{}{
				"route":  route,
				"userID": userID,
				"postID": postID,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur de base de données"})
		logs.LogJSON("ERROR", "Database error", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
			"postID": postID,
		})
		return
	}

	response, err := Status(postID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur de base de données"})
		logs.LogJSON("ERROR", "Database error", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
			"postID": postID,
		})
		return
	}

	c.JSON(http.StatusOK, response)
}
