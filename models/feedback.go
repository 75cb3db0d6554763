package models

import (
	"time"
)

// Feedback represents a single citizen rating event for an officer.
// Rows are immutable after insert: there are no update or delete endpoints.
type Feedback struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	OfficerID uint    `json:"officer_id" gorm:"not null;index"`
	Officer   Officer `json:"-" gorm:"foreignKey:OfficerID"`

	Rating          int    `json:"rating" gorm:"type:int;not null;check:rating >= 1 AND rating <= 5"`
	InteractionType string `json:"interaction_type" gorm:"type:varchar(100)"`
	FeedbackText    string `json:"feedback_text" gorm:"type:text"`

	// All feedback is anonymous today; the flag is kept for future
	// identified-feedback support.
	IsAnonymous bool      `json:"is_anonymous" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
}

// FeedbackCreate represents the request structure for submitting feedback
type FeedbackCreate struct {
	OfficerID       uint   `json:"officer_id" binding:"required"`
	Rating          int    `json:"rating" binding:"required,min=1,max=5"`
	InteractionType string `json:"interaction_type"`
	FeedbackText    string `json:"feedback_text"`
	// Pointer so an explicit false survives the default-true rule.
	IsAnonymous *bool `json:"is_anonymous"`
}

// TableName sets custom table name
func (Feedback) TableName() string { return "feedback" }
