package routes

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"police-feedback-server/database"
	"police-feedback-server/models"
)

// RegisterOfficerRoutes registers the public officer read endpoints
func RegisterOfficerRoutes(router *gin.RouterGroup) {
	// Original deployments exposed the roster under both paths; keep both
	// serving the same payload so older clients continue to work.
	router.GET("/officers", getOfficersWithRatings)
	router.GET("/officers-with-ratings", getOfficersWithRatings)
	router.GET("/officers/:id/feedback", getOfficerFeedback)
}

// queryOfficersWithRatings joins every officer to its derived rating stats.
// The LEFT JOIN keeps zero-feedback officers in the result with avg_rating 0
// and feedback_count 0; AVG is computed in the store so the value is the
// true arithmetic mean, never a pre-rounded stored number.
func queryOfficersWithRatings(db *gorm.DB) ([]models.OfficerWithRating, error) {
	officers := []models.OfficerWithRating{}
	err := db.Raw(`
		SELECT
			o.id,
			o.first_name,
			o.last_name,
			o.job_title,
			COALESCE(AVG(f.rating), 0) AS avg_rating,
			COUNT(f.id) AS feedback_count
		FROM officers o
		LEFT JOIN feedback f ON o.id = f.officer_id
		GROUP BY o.id, o.first_name, o.last_name, o.job_title
		ORDER BY o.last_name, o.first_name
	`).Scan(&officers).Error
	return officers, err
}

// getOfficersWithRatings returns every officer with its average rating and
// feedback count, sorted by last name then first name
func getOfficersWithRatings(c *gin.Context) {
	officers, err := queryOfficersWithRatings(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch officers"})
		return
	}

	c.JSON(http.StatusOK, officers)
}

// getOfficerFeedback returns all feedback for one officer, newest first.
// An unknown officer id is a 404; an existing officer with no feedback is a
// 200 with an empty array.
func getOfficerFeedback(c *gin.Context) {
	officerID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid officer ID"})
		return
	}

	var officer models.Officer
	if err := database.DB.First(&officer, officerID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Officer not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch officer"})
		}
		return
	}

	feedback := []models.Feedback{}
	if err := database.DB.
		Where("officer_id = ?", officer.ID).
		Order("created_at DESC").
		Find(&feedback).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch feedback"})
		return
	}

	c.JSON(http.StatusOK, feedback)
}
