// internal/admin/handler.go
package admin

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ArthurDelaporte/Twitly-Back/internal/database"
	"github.com/ArthurDelaporte/Twitly-Back/internal/logs"
)

// GetDashboardStats GET /api/admin/stats
func GetDashboardStats(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")

	// Paramètres optionnels
	startDateStr := c.Query("start_date")
	endDateStr := c.Query("end_date")

	var startDate, endDate time.Time
	var err error

	// Parse des dates si fournies
	if startDateStr != "" {
		startDate, err = time.Parse("2006-01-02", startDateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Format de date invalide pour start_date"})
			return
		}
	} else {
		startDate = time.Now().AddDate(0, 0, -30) // 30 jours par défaut
	}

	if endDateStr != "" {
		endDate, err = time.Parse("2006-01-02", endDateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Format de date invalide pour end_date"})
			return
		}
	} else {
		endDate = time.Now()
	}

	// Statistiques générales
	var totalUsers, totalPosts, totalLikes, totalRetweets, totalComments int64

	database.DB.Table("users").Count(&totalUsers)
	database.DB.Table("posts").Count(&totalPosts)
	database.DB.Table("likes").Count(&totalLikes)
	database.DB.Table("retweets").Count(&totalRetweets)
	database.DB.Table("comments").Count(&totalComments)

	// Activité sur la période demandée
	var newUsers, newPosts int64
	database.DB.Table("users").Where("created_at BETWEEN ? AND ?", startDate, endDate).Count(&newUsers)
	database.DB.Table("posts").Where("created_at BETWEEN ? AND ?", startDate, endDate).Count(&newPosts)

	c.JSON(http.StatusOK, gin.H{
		"totals": gin.H{
			"users":    totalUsers,
			"posts":    totalPosts,
			"likes":    totalLikes,
			"retweets": totalRetweets,
			"comments": totalComments,
		},
		"period": gin.H{
			"start_date": startDate.Format("2006-01-02"),
			"end_date":   endDate.Format("2006-01-02"),
			"new_users":  newUsers,
			"new_posts":  newPosts,
		},
	})
	logs.LogJSON("INFO", "Dashboard stats retrieved", map[string]interface{}{
		"route":  route,
		"userID": userID,
	})
}
