package routes

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"police-feedback-server/config"
	"police-feedback-server/database"
	"police-feedback-server/models"
	"police-feedback-server/utils"
)

// RegisterAdminAuthRoutes registers the unauthenticated admin login endpoint
func RegisterAdminAuthRoutes(router *gin.RouterGroup) {
	router.POST("/login", AdminLogin)
}

// RegisterAdminRoutes registers the authenticated admin endpoints
func RegisterAdminRoutes(router *gin.RouterGroup) {
	router.GET("/all-feedback", getAllFeedback)
}

// AdminAuthMiddleware guards admin endpoints with a Bearer JWT
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
			c.Abort()
			return
		}

		claims, err := utils.VerifyToken(tokenString)
		if err != nil {
			log.Printf("❌ Token verification failed: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		if claims.Role != "admin" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}

		c.Set("admin_username", claims.Username)
		c.Next()
	}
}

// AdminLogin authenticates the configured operator account and issues a JWT
func AdminLogin(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	admin := config.AppConfig.Admin
	if req.Username != admin.Username || !checkAdminPassword(req.Password, admin) {
		log.Printf("❌ Admin login failed for username %q", req.Username)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(admin.Username, "admin")
	if err != nil {
		log.Printf("❌ Failed to generate token for admin: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	log.Printf("✅ Admin %q logged in successfully", admin.Username)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   token,
	})
}

func checkAdminPassword(password string, admin config.AdminConfig) bool {
	if admin.PasswordHash != "" {
		return utils.CheckPasswordHash(password, admin.PasswordHash)
	}
	return password == admin.Password
}

// AdminOfficerEntry pairs an officer's rating stats with its complete
// feedback history in the dashboard snapshot
type AdminOfficerEntry struct {
	models.OfficerWithRating
	Feedback []models.Feedback `json:"feedback"`
}

// AdminSnapshot is the dashboard payload: global stats plus every officer
// with its full feedback history
type AdminSnapshot struct {
	TotalFeedback        int64               `json:"total_feedback"`
	OverallAverageRating float64             `json:"overall_average_rating"`
	Officers             []AdminOfficerEntry `json:"officers"`
}

// getAllFeedback returns the admin dashboard snapshot. The reads run inside
// one transaction and the global stats are derived from the same feedback
// rows that fill the per-officer lists, so the totals can never disagree
// with the histories even when submissions land mid-read.
func getAllFeedback(c *gin.Context) {
	var snapshot AdminSnapshot

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		officers, err := queryOfficersWithRatings(tx)
		if err != nil {
			return err
		}

		allFeedback := []models.Feedback{}
		if err := tx.Order("created_at DESC").Find(&allFeedback).Error; err != nil {
			return err
		}

		byOfficer := make(map[uint][]models.Feedback, len(officers))
		var ratingSum int64
		for _, f := range allFeedback {
			byOfficer[f.OfficerID] = append(byOfficer[f.OfficerID], f)
			ratingSum += int64(f.Rating)
		}

		snapshot.Officers = make([]AdminOfficerEntry, 0, len(officers))
		for _, officer := range officers {
			history := byOfficer[officer.ID]
			if history == nil {
				history = []models.Feedback{}
			}
			snapshot.Officers = append(snapshot.Officers, AdminOfficerEntry{
				OfficerWithRating: officer,
				Feedback:          history,
			})
		}

		snapshot.TotalFeedback = int64(len(allFeedback))
		if len(allFeedback) > 0 {
			snapshot.OverallAverageRating = float64(ratingSum) / float64(len(allFeedback))
		}

		return nil
	})
	if err != nil {
		log.Printf("❌ Failed to build admin snapshot: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}
