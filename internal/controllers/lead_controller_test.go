package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"tour_to_himachal/internal/models"
	"tour_to_himachal/internal/store"
)

// MockLeadStore is a mock implementation of store.LeadStore
type MockLeadStore struct {
	mock.Mock
}

func (m *MockLeadStore) Create(lead *models.Lead) error {
	args := m.Called(lead)
	return args.Error(0)
}

func (m *MockLeadStore) List(f store.LeadFilter) ([]models.Lead, error) {
	args := m.Called(f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Lead), args.Error(1)
}

func (m *MockLeadStore) Get(id uint) (*models.Lead, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Lead), args.Error(1)
}

func (m *MockLeadStore) UpdateStatus(id uint, status models.LeadStatus, updatedBy string) (*models.Lead, error) {
	args := m.Called(id, status, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Lead), args.Error(1)
}

func (m *MockLeadStore) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockLeadStore) Counts() (store.DashboardCounts, error) {
	args := m.Called()
	return args.Get(0).(store.DashboardCounts), args.Error(1)
}

func (m *MockLeadStore) Recent(limit int) ([]models.Lead, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Lead), args.Error(1)
}

func setupLeadRouter(s store.LeadStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	lc := NewLeadController(s)

	r := gin.New()
	r.POST("/api/taxi-booking", lc.SubmitBooking)

	// Stand-in for the auth middleware: inject the staff identity claims
	admin := r.Group("/admin", func(c *gin.Context) {
		c.Set("email", "staff@example.com")
		c.Set("role", "admin")
	})
	admin.GET("/dashboard", lc.Dashboard)
	admin.GET("/leads", lc.ListLeads)
	admin.GET("/leads/export", lc.ExportLeads)
	admin.GET("/leads/:id", lc.GetLead)
	admin.PATCH("/leads/:id/status", lc.UpdateStatus)
	admin.DELETE("/leads/:id", lc.DeleteLead)

	return r
}

func postJSON(r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitBookingMissingFields(t *testing.T) {
	cases := []map[string]string{
		{"phone": "9991112222", "message": "Need a cab"},
		{"name": "Asha", "message": "Need a cab"},
		{"name": "Asha", "phone": "9991112222"},
		{"name": "  ", "phone": "9991112222", "message": "Need a cab"},
	}

	for _, payload := range cases {
		mockStore := new(MockLeadStore)
		r := setupLeadRouter(mockStore)

		w := postJSON(r, "/api/taxi-booking", payload)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Name, phone, and message are required")
		mockStore.AssertNotCalled(t, "Create", mock.Anything)
	}
}

func TestSubmitBookingSuccess(t *testing.T) {
	mockStore := new(MockLeadStore)
	mockStore.On("Create", mock.AnythingOfType("*models.Lead")).
		Run(func(args mock.Arguments) {
			lead := args.Get(0).(*models.Lead)
			lead.ReferenceNumber = models.NewReferenceNumber()
		}).
		Return(nil)

	r := setupLeadRouter(mockStore)

	w := postJSON(r, "/api/taxi-booking", map[string]string{
		"name":        "Asha",
		"phone":       "9991112222",
		"message":     "Need a 3-day Manali trip",
		"serviceType": "package",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success         bool   `json:"success"`
		ReferenceNumber string `json:"referenceNumber"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.ReferenceNumber)

	mockStore.AssertNumberOfCalls(t, "Create", 1)
	created := mockStore.Calls[0].Arguments.Get(0).(*models.Lead)
	assert.Equal(t, models.StatusNew, created.Status)
	assert.Equal(t, models.ServicePackage, created.ServiceType)
	assert.Equal(t, "package booking", created.Subject)
}

func TestSubmitBookingDefaultsToTaxi(t *testing.T) {
	mockStore := new(MockLeadStore)
	mockStore.On("Create", mock.AnythingOfType("*models.Lead")).Return(nil)

	r := setupLeadRouter(mockStore)

	w := postJSON(r, "/api/taxi-booking", map[string]string{
		"name":    "Ravi",
		"phone":   "8880001111",
		"message": "Airport pickup",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	created := mockStore.Calls[0].Arguments.Get(0).(*models.Lead)
	assert.Equal(t, models.ServiceTaxi, created.ServiceType)
	assert.Equal(t, "taxi booking", created.Subject)
}

func TestSubmitBookingRejectsUnknownServiceType(t *testing.T) {
	mockStore := new(MockLeadStore)
	r := setupLeadRouter(mockStore)

	w := postJSON(r, "/api/taxi-booking", map[string]string{
		"name":        "Ravi",
		"phone":       "8880001111",
		"message":     "Need a helicopter",
		"serviceType": "helicopter",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockStore.AssertNotCalled(t, "Create", mock.Anything)
}

// Duplicate submissions are expected to create two distinct leads; the
// intake endpoint has no idempotency key. This is a documented design gap,
// not a bug.
func TestSubmitBookingTwiceCreatesTwoLeads(t *testing.T) {
	mockStore := new(MockLeadStore)
	mockStore.On("Create", mock.AnythingOfType("*models.Lead")).
		Run(func(args mock.Arguments) {
			lead := args.Get(0).(*models.Lead)
			lead.ReferenceNumber = models.NewReferenceNumber()
		}).
		Return(nil)

	r := setupLeadRouter(mockStore)

	payload := map[string]string{
		"name":        "Asha",
		"phone":       "9991112222",
		"message":     "Need a 3-day Manali trip",
		"serviceType": "package",
	}

	refs := make([]string, 0, 2)
	for i := 0; i < 2; i++ {
		w := postJSON(r, "/api/taxi-booking", payload)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			ReferenceNumber string `json:"referenceNumber"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		refs = append(refs, resp.ReferenceNumber)
	}

	mockStore.AssertNumberOfCalls(t, "Create", 2)
	assert.NotEqual(t, refs[0], refs[1])
}

func TestSubmitBookingPersistenceFailure(t *testing.T) {
	mockStore := new(MockLeadStore)
	mockStore.On("Create", mock.AnythingOfType("*models.Lead")).
		Return(gorm.ErrInvalidDB)

	r := setupLeadRouter(mockStore)

	w := postJSON(r, "/api/taxi-booking", map[string]string{
		"name":    "Asha",
		"phone":   "9991112222",
		"message": "Need a cab",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to save your booking")
}

func TestListLeadsForwardsFilter(t *testing.T) {
	mockStore := new(MockLeadStore)
	mockStore.On("List", store.LeadFilter{Status: models.StatusBooked, Type: models.ServicePackage}).
		Return([]models.Lead{{Name: "Asha"}}, nil)

	r := setupLeadRouter(mockStore)

	req := httptest.NewRequest("GET", "/admin/leads?status=booked&type=package", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockStore.AssertExpectations(t)
}

func TestListLeadsRejectsInvalidFilter(t *testing.T) {
	mockStore := new(MockLeadStore)
	r := setupLeadRouter(mockStore)

	req := httptest.NewRequest("GET", "/admin/leads?status=archived", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockStore.AssertNotCalled(t, "List", mock.Anything)
}

func TestUpdateStatusValid(t *testing.T) {
	mockStore := new(MockLeadStore)
	mockStore.On("UpdateStatus", uint(7), models.StatusBooked, "staff@example.com").
		Return(&models.Lead{Status: models.StatusBooked, ReferenceNumber: "TTH-ABCD1234"}, nil)

	r := setupLeadRouter(mockStore)

	body := bytes.NewBufferString(`{"status":"booked"}`)
	req := httptest.NewRequest("PATCH", "/admin/leads/7/status", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockStore.AssertExpectations(t)
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	mockStore := new(MockLeadStore)
	r := setupLeadRouter(mockStore)

	body := bytes.NewBufferString(`{"status":"archived"}`)
	req := httptest.NewRequest("PATCH", "/admin/leads/7/status", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockStore.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatusNotFound(t *testing.T) {
	mockStore := new(MockLeadStore)
	mockStore.On("UpdateStatus", uint(99), models.StatusClosed, "staff@example.com").
		Return(nil, gorm.ErrRecordNotFound)

	r := setupLeadRouter(mockStore)

	body := bytes.NewBufferString(`{"status":"closed"}`)
	req := httptest.NewRequest("PATCH", "/admin/leads/99/status", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteLeadNotFound(t *testing.T) {
	mockStore := new(MockLeadStore)
	mockStore.On("Delete", uint(42)).Return(gorm.ErrRecordNotFound)

	r := setupLeadRouter(mockStore)

	req := httptest.NewRequest("DELETE", "/admin/leads/42", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExportLeadsMatchesFilteredList(t *testing.T) {
	leads := []models.Lead{
		{Name: "Asha", Phone: "9991112222", ServiceType: models.ServicePackage, Status: models.StatusBooked, ReferenceNumber: "TTH-AAAA1111"},
		{Name: "Ravi", Phone: "8880001111", ServiceType: models.ServicePackage, Status: models.StatusBooked, ReferenceNumber: "TTH-BBBB2222"},
	}

	mockStore := new(MockLeadStore)
	mockStore.On("List", store.LeadFilter{Status: models.StatusBooked, Type: models.ServicePackage}).
		Return(leads, nil)

	r := setupLeadRouter(mockStore)

	req := httptest.NewRequest("GET", "/admin/leads/export?status=booked&type=package", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "leads.csv")

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	assert.Len(t, lines, 3) // header + one line per lead
	assert.Contains(t, w.Body.String(), "TTH-AAAA1111")
	assert.Contains(t, w.Body.String(), "TTH-BBBB2222")
}

func TestExportLeadsEmptyResultStillWritesHeader(t *testing.T) {
	mockStore := new(MockLeadStore)
	mockStore.On("List", store.LeadFilter{}).Return([]models.Lead{}, nil)

	r := setupLeadRouter(mockStore)

	req := httptest.NewRequest("GET", "/admin/leads/export", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "reference_number")
}

func TestDashboard(t *testing.T) {
	mockStore := new(MockLeadStore)
	mockStore.On("Counts").Return(store.DashboardCounts{
		TotalLeads:       12,
		NewToday:         3,
		PackageEnquiries: 5,
		TaxiEnquiries:    6,
	}, nil)
	mockStore.On("Recent", 5).Return([]models.Lead{{Name: "Asha"}}, nil)

	r := setupLeadRouter(mockStore)

	req := httptest.NewRequest("GET", "/admin/dashboard", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Stats       store.DashboardCounts `json:"stats"`
		RecentLeads []models.Lead         `json:"recentLeads"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(12), resp.Stats.TotalLeads)
	assert.Equal(t, int64(3), resp.Stats.NewToday)
	assert.Len(t, resp.RecentLeads, 1)
}
