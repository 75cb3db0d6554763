package routes

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"police-feedback-server/database"
	"police-feedback-server/models"
)

func TestOfficerListZeroFeedback(t *testing.T) {
	router := setupRouter(t)

	createOfficer(t, "Jane", "Doe", "Officer")
	createOfficer(t, "John", "Able", "Sergeant")

	w := performRequest(router, http.MethodGet, "/api/officers-with-ratings", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var officers []models.OfficerWithRating
	decodeJSON(t, w, &officers)
	require.Len(t, officers, 2)

	// Sorted by last name, and zero-feedback officers are not dropped
	assert.Equal(t, "Able", officers[0].LastName)
	assert.Equal(t, "Doe", officers[1].LastName)
	for _, o := range officers {
		assert.Zero(t, o.AvgRating)
		assert.Zero(t, o.FeedbackCount)
	}
}

func TestOfficerListAverages(t *testing.T) {
	router := setupRouter(t)

	officer := createOfficer(t, "Jane", "Doe", "Officer")

	w := performRequest(router, http.MethodPost, "/api/feedback", map[string]interface{}{
		"officer_id":    officer.ID,
		"rating":        4,
		"feedback_text": "Helpful",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var officers []models.OfficerWithRating
	w = performRequest(router, http.MethodGet, "/api/officers-with-ratings", nil, nil)
	decodeJSON(t, w, &officers)
	require.Len(t, officers, 1)
	assert.InDelta(t, 4.0, officers[0].AvgRating, 1e-9)
	assert.Equal(t, 1, officers[0].FeedbackCount)

	w = performRequest(router, http.MethodPost, "/api/feedback", map[string]interface{}{
		"officer_id": officer.ID,
		"rating":     2,
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(router, http.MethodGet, "/api/officers-with-ratings", nil, nil)
	decodeJSON(t, w, &officers)
	require.Len(t, officers, 1)
	assert.InDelta(t, 3.0, officers[0].AvgRating, 1e-9)
	assert.Equal(t, 2, officers[0].FeedbackCount)
}

func TestOfficerListOrderingTies(t *testing.T) {
	router := setupRouter(t)

	createOfficer(t, "Zoe", "Miller", "Officer")
	createOfficer(t, "Amy", "Miller", "Officer")
	createOfficer(t, "Ben", "Adams", "Captain")

	w := performRequest(router, http.MethodGet, "/api/officers-with-ratings", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var officers []models.OfficerWithRating
	decodeJSON(t, w, &officers)
	require.Len(t, officers, 3)

	// Last name first, first name breaks ties
	assert.Equal(t, "Adams", officers[0].LastName)
	assert.Equal(t, "Amy", officers[1].FirstName)
	assert.Equal(t, "Zoe", officers[2].FirstName)
}

func TestOfficerListLegacyPath(t *testing.T) {
	router := setupRouter(t)

	createOfficer(t, "Jane", "Doe", "Officer")

	w := performRequest(router, http.MethodGet, "/api/officers", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var officers []models.OfficerWithRating
	decodeJSON(t, w, &officers)
	assert.Len(t, officers, 1)
}

func TestOfficerFeedbackNewestFirst(t *testing.T) {
	router := setupRouter(t)

	officer := createOfficer(t, "Jane", "Doe", "Officer")

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		feedback := models.Feedback{
			OfficerID:    officer.ID,
			Rating:       i + 1,
			FeedbackText: fmt.Sprintf("entry %d", i),
			IsAnonymous:  true,
			CreatedAt:    base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, database.DB.Create(&feedback).Error)
	}

	w := performRequest(router, http.MethodGet, fmt.Sprintf("/api/officers/%d/feedback", officer.ID), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var feedback []models.Feedback
	decodeJSON(t, w, &feedback)
	require.Len(t, feedback, 3)

	for i := 1; i < len(feedback); i++ {
		assert.False(t, feedback[i].CreatedAt.After(feedback[i-1].CreatedAt),
			"feedback must be ordered newest first")
	}
	assert.Equal(t, "entry 2", feedback[0].FeedbackText)
}

func TestOfficerFeedbackEmptyList(t *testing.T) {
	router := setupRouter(t)

	officer := createOfficer(t, "Jane", "Doe", "Officer")

	w := performRequest(router, http.MethodGet, fmt.Sprintf("/api/officers/%d/feedback", officer.ID), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var feedback []models.Feedback
	decodeJSON(t, w, &feedback)
	assert.Empty(t, feedback)
	// An empty history is a 200 with [], not null and not an error
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestOfficerFeedbackUnknownOfficer(t *testing.T) {
	router := setupRouter(t)

	w := performRequest(router, http.MethodGet, "/api/officers/9999/feedback", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performRequest(router, http.MethodGet, "/api/officers/not-a-number/feedback", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
