package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ArthurDelaporte/Twitly-Back/internal/admin"
	"github.com/ArthurDelaporte/Twitly-Back/internal/auth"
	"github.com/ArthurDelaporte/Twitly-Back/internal/config"
	"github.com/ArthurDelaporte/Twitly-Back/internal/database"
	"github.com/ArthurDelaporte/Twitly-Back/internal/follow"
	"github.com/ArthurDelaporte/Twitly-Back/internal/like"
	"github.com/ArthurDelaporte/Twitly-Back/internal/middleware"
	"github.com/ArthurDelaporte/Twitly-Back/internal/post"
	"github.com/ArthurDelaporte/Twitly-Back/internal/retweet"
	"github.com/ArthurDelaporte/Twitly-Back/internal/storage"
	"github.com/ArthurDelaporte/Twitly-Back/internal/user"
)

func main() {
	_ = godotenv.Load()
	cfg := config.LoadConfig()
	if cfg.DBUrl == "" {
		panic("SUPABASE_DB_URL manquant")
	}

	database.Connect(cfg.DBUrl)
	database.Migrate(
		&user.User{},
		&post.Post{},
		&post.Comment{},
		&like.Like{},
		&retweet.Retweet{},
		&follow.Follow{},
	)

	if err := storage.InitS3(); err != nil {
		log.Printf("S3 non initialisé : %v", err)
	}

	r := gin.Default()
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// Inscription & Connexion
	api.POST("/signup", auth.Signup)
	api.POST("/login", auth.Login)
	api.POST("/refresh", auth.Refresh)

	// Lecture : auth facultative (lecteur anonyme accepté)
	public := api.Group("")
	public.Use(middleware.OptionalAuthMiddleware())
	public.GET("/posts", post.GetPosts)
	public.GET("/posts/:id", post.GetPostByID)
	public.GET("/posts/:id/likes", like.GetLikeStatus)
	public.GET("/posts/:id/retweets", retweet.GetRetweetStatus)
	public.GET("/posts/:id/comments", post.GetCommentsByPostID)
	public.GET("/users/username/:username", user.GetUserByUsername)
	public.GET("/users/username/:username/posts", post.GetPostsByUsername)
	public.GET("/users/:id/followers", follow.GetFollowers)
	public.GET("/users/:id/following", follow.GetFollowing)

	// Écriture : auth obligatoire
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware())
	authed.GET("/me", user.GetMe)
	authed.PUT("/me", user.UpdateMe)
	authed.POST("/posts", post.CreatePost)
	authed.POST("/posts/:id/like", like.ToggleLike)
	authed.POST("/posts/:id/retweet", retweet.ToggleRetweet)
	authed.POST("/posts/:id/comment", post.CreateComment)
	authed.POST("/users/:id/follow", follow.FollowUser)
	authed.DELETE("/users/:id/follow", follow.UnfollowUser)

	// Routes admin
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.AdminOnlyMiddleware())
	adminGroup.GET("/stats", admin.GetDashboardStats)

	err := r.Run(":" + cfg.Port)
	if err != nil {
		return
	}
}
