package post

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ArthurDelaporte/Twitly-Back/internal/apperr"
	"github.com/ArthurDelaporte/Twitly-Back/internal/feed"
	"github.com/ArthurDelaporte/Twitly-Back/internal/logs"
)

// GetPostsByUsername GET /api/users/username/:username/posts
func GetPostsByUsername(c *gin.Context) {
	route := c.FullPath()
	username := c.Param("username")
	requesterID := c.GetString("user_id")

	items, err := feed.ByUsername(requesterID, username)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Utilisateur introuvable"})
			logs.LogJSON("WARN", "User not found", map[string]interface{}{
				"route":    route,
				"username": username,
				"userID":   requesterID,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur de récupération des posts"})
		logs.LogJSON("ERROR", "Error during profile feed retrieval", map[string]interface{}{
			"error":    err.Error(),
			"route":    route,
			"username": username,
			"userID":   requesterID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": items})
}
