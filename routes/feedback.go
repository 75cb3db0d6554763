package routes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"police-feedback-server/database"
	"police-feedback-server/models"
	ws "police-feedback-server/websocket"
)

// adminHub receives a live event for every accepted submission; nil when the
// server runs without the websocket feed (tests, importer).
var adminHub *ws.Hub

// SetAdminHub wires the websocket hub used for live feedback events
func SetAdminHub(hub *ws.Hub) {
	adminHub = hub
}

// RegisterFeedbackRoutes registers the feedback submission endpoint
func RegisterFeedbackRoutes(router *gin.RouterGroup) {
	router.POST("/feedback", submitFeedback)
}

// submitFeedback validates and records one citizen feedback submission.
// Validation failures write nothing; a failed call never leaves a partial
// row behind.
func submitFeedback(c *gin.Context) {
	var req models.FeedbackCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Officer ID and a valid rating (1-5) are required.",
			"details": err.Error(),
		})
		return
	}

	// The officer must exist before anything is written. The store's foreign
	// key would also catch this, but checking here keeps the error a clean
	// validation failure instead of a constraint violation.
	var officer models.Officer
	if err := database.DB.First(&officer, req.OfficerID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Officer not found"})
		} else {
			log.Printf("❌ Failed to look up officer %d: %v", req.OfficerID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	// Anonymous unless the caller explicitly says otherwise
	isAnonymous := true
	if req.IsAnonymous != nil {
		isAnonymous = *req.IsAnonymous
	}

	feedback := models.Feedback{
		OfficerID:       officer.ID,
		Rating:          req.Rating,
		InteractionType: req.InteractionType,
		FeedbackText:    req.FeedbackText,
		IsAnonymous:     isAnonymous,
	}

	if err := database.DB.Create(&feedback).Error; err != nil {
		log.Printf("❌ Failed to create feedback for officer %d: %v", officer.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if adminHub != nil {
		adminHub.Publish("feedback", feedback)
	}

	c.JSON(http.StatusCreated, feedback)
}
