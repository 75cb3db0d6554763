package models

// Officer is a roster entry for a person who can receive feedback.
// Rows are created only by roster seeding and are never updated; a full
// roster replace deletes everything and re-inserts.
type Officer struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	FirstName string `json:"first_name" gorm:"type:varchar(100);not null"`
	LastName  string `json:"last_name" gorm:"type:varchar(100);not null"`
	JobTitle  string `json:"job_title" gorm:"type:varchar(150)"`
}

// OfficerWithRating is the response shape for the officer list endpoints:
// the officer joined with its derived rating statistics. Officers with no
// feedback report avg_rating 0 and feedback_count 0.
type OfficerWithRating struct {
	ID            uint    `json:"id"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	JobTitle      string  `json:"job_title"`
	AvgRating     float64 `json:"avg_rating"`
	FeedbackCount int     `json:"feedback_count"`
}

// TableName specifies the table name for the Officer model
func (Officer) TableName() string {
	return "officers"
}
