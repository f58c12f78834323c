package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// The validation cases below never reach the database, so a nil handle is
// fine here.
func setupReviewRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	rc := NewReviewController(nil)

	r := gin.New()
	r.POST("/api/reviews", rc.Submit)
	return r
}

func TestSubmitReviewRejectsOutOfRangeRating(t *testing.T) {
	r := setupReviewRouter()

	for _, rating := range []int{0, 6, -1} {
		payload, _ := json.Marshal(map[string]interface{}{
			"name":        "Asha",
			"rating":      rating,
			"review_text": "Wonderful trip",
		})
		req := httptest.NewRequest("POST", "/api/reviews", bytes.NewBuffer(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "rating %d should be rejected", rating)
	}
}

func TestSubmitReviewRejectsMissingFields(t *testing.T) {
	r := setupReviewRouter()

	payload := bytes.NewBufferString(`{"rating":5}`)
	req := httptest.NewRequest("POST", "/api/reviews", payload)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
