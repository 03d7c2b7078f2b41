package post

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ArthurDelaporte/Twitly-Back/internal/apperr"
	"github.com/ArthurDelaporte/Twitly-Back/internal/feed"
	"github.com/ArthurDelaporte/Twitly-Back/internal/logs"
	"github.com/ArthurDelaporte/Twitly-Back/internal/timeago"
)

// CreatePost POST /api/posts
func CreatePost(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")

	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		logs.LogJSON("WARN", "Unauthenticated user", map[string]interface{}{
			"route": route,
		})
		return
	}

	var input struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide"})
		return
	}

	newPost, err := Create(userID, input.Text)
	if err != nil {
		if errors.Is(err, apperr.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Le texte doit contenir entre 1 et 280 caractères"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la création du post"})
		logs.LogJSON("ERROR", "Error creating post", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Post créé avec succès",
		"post":    newPost,
	})
	logs.LogJSON("INFO", "Post created successfully", map[string]interface{}{
		"route":  route,
		"userID": userID,
		"postID": newPost.ID,
	})
}

// GetPosts GET /api/posts — fil global, du plus récent au plus ancien
func GetPosts(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id") // Peut être vide si non connecté

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	items, err := feed.Recent(userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la récupération des posts"})
		logs.LogJSON("ERROR", "Error during feed retrieval", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": items})
}

// GetPostByID GET /api/posts/:id
func GetPostByID(c *gin.Context) {
	route := c.FullPath()
	postID := c.Param("id")
	userID := c.GetString("user_id")

	p, err := GetByID(postID)
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
		logs.LogJSON("ERROR", "Database error", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
			"postID": postID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"post":     p,
		"time_ago": timeago.Format(p.CreatedAt, time.Now()),
	})
}

// GetCommentsByPostID GET /api/posts/:id/comments
func GetCommentsByPostID(c *gin.Context) {
	route := c.FullPath()
	postID := c.Param("id")

	comments, err := CommentsByPost(postID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post non trouvé"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la récupération des commentaires"})
		logs.LogJSON("ERROR", "Error during comments retrieval", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"postID": postID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// CreateComment POST /api/posts/:id/comment
func CreateComment(c *gin.Context) {
	route := c.FullPath()
	postID := c.Param("id")
	userID := c.GetString("user_id")

	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		logs.LogJSON("WARN", "Unauthenticated user", map[string]interface{}{
			"route":  route,
			"postID": postID,
		})
		return
	}

	var input struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide"})
		return
	}

	comment, err := AddComment(postID, userID, input.Text)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Le texte doit contenir entre 1 et 280 caractères"})
		case errors.Is(err, apperr.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Post non trouvé"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la création du commentaire"})
			logs.LogJSON("ERROR", "Error creating comment", map[string]interface{}{
				"error":  err.Error(),
				"route":  route,
				"userID": userID,
				"postID": postID,
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Commentaire ajouté avec succès",
		"comment": comment,
	})
}
