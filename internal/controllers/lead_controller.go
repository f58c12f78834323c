package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-gota/gota/dataframe"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"tour_to_himachal/internal/models"
	"tour_to_himachal/internal/store"
)

// LeadController owns the lead pipeline: public intake plus the admin
// triage surface (list, status, delete, CSV export, dashboard).
type LeadController struct {
	store store.LeadStore
}

func NewLeadController(s store.LeadStore) *LeadController {
	return &LeadController{store: s}
}

type bookingInput struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
	ServiceType string `json:"serviceType"`
}

// SubmitBooking handles the public intake form. Submissions are not
// idempotent: the same payload sent twice creates two leads with distinct
// reference numbers. Network-level retries therefore show up as duplicates
// in triage.
func (lc *LeadController) SubmitBooking(c *gin.Context) {
	var input bookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Name, phone, and message are required",
		})
		return
	}

	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Phone) == "" ||
		strings.TrimSpace(input.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Name, phone, and message are required",
		})
		return
	}

	// The shared intake endpoint is taxi-first: a form that does not say
	// what it wants is tagged as a taxi enquiry.
	serviceType := models.ServiceTaxi
	if input.ServiceType != "" {
		serviceType = models.ServiceType(input.ServiceType)
		if !serviceType.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Unknown service type: " + input.ServiceType,
			})
			return
		}
	}

	subject := input.Subject
	if subject == "" {
		subject = string(serviceType) + " booking"
	}

	lead := models.Lead{
		Name:        input.Name,
		Phone:       input.Phone,
		Email:       input.Email,
		Subject:     subject,
		Message:     input.Message,
		ServiceType: serviceType,
		Status:      models.StatusNew,
	}

	if err := lc.store.Create(&lead); err != nil {
		logrus.WithError(err).Error("lead insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to save your booking. Please try again.",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"message":         "Your booking has been saved!",
		"referenceNumber": lead.ReferenceNumber,
	})
}

// parseLeadFilter reads the shareable ?status=&type= query parameters.
// "all" and absence both mean no filter, matching the admin UI dropdowns.
func parseLeadFilter(c *gin.Context) (store.LeadFilter, bool) {
	var f store.LeadFilter

	if v := c.Query("status"); v != "" && v != "all" {
		status := models.LeadStatus(v)
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter: " + v})
			return f, false
		}
		f.Status = status
	}
	if v := c.Query("type"); v != "" && v != "all" {
		serviceType := models.ServiceType(v)
		if !serviceType.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid type filter: " + v})
			return f, false
		}
		f.Type = serviceType
	}
	return f, true
}

// ListLeads returns the filtered triage list, newest first.
func (lc *LeadController) ListLeads(c *gin.Context) {
	filter, ok := parseLeadFilter(c)
	if !ok {
		return
	}

	leads, err := lc.store.List(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing leads: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": leads})
}

func (lc *LeadController) GetLead(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	lead, err := lc.store.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"lead": lead})
}

type statusInput struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus moves a lead to any of the four triage states. There is no
// enforced progression; skipping and reversing are allowed.
func (lc *LeadController) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input statusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status input: " + err.Error()})
		return
	}

	status := models.LeadStatus(input.Status)
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be one of new, contacted, booked, closed"})
		return
	}

	updatedBy := c.GetString("email")

	lead, err := lc.store.UpdateStatus(id, status, updatedBy)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"lead": lead})
}

// DeleteLead permanently removes a lead. There is no soft delete and no
// audit trail; the admin UI asks for confirmation before calling this.
func (lc *LeadController) DeleteLead(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := lc.store.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete lead: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Lead deleted"})
}

type leadExportRow struct {
	ReferenceNumber string `dataframe:"reference_number"`
	Name            string `dataframe:"name"`
	Phone           string `dataframe:"phone"`
	Email           string `dataframe:"email"`
	Subject         string `dataframe:"subject"`
	Message         string `dataframe:"message"`
	ServiceType     string `dataframe:"service_type"`
	Status          string `dataframe:"status"`
	CreatedAt       string `dataframe:"created_at"`
}

const leadExportHeader = "reference_number,name,phone,email,subject,message,service_type,status,created_at"

// leadExportFrame flattens leads into a dataframe with stable column order.
func leadExportFrame(leads []models.Lead) dataframe.DataFrame {
	rows := make([]leadExportRow, 0, len(leads))
	for _, l := range leads {
		rows = append(rows, leadExportRow{
			ReferenceNumber: l.ReferenceNumber,
			Name:            l.Name,
			Phone:           l.Phone,
			Email:           l.Email,
			Subject:         l.Subject,
			Message:         l.Message,
			ServiceType:     string(l.ServiceType),
			Status:          string(l.Status),
			CreatedAt:       l.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return dataframe.LoadStructs(rows)
}

// ExportLeads streams the currently filtered result set as CSV in one pass.
// The rows are exactly what ListLeads would return for the same query
// parameters; there is no pagination to truncate the snapshot.
func (lc *LeadController) ExportLeads(c *gin.Context) {
	filter, ok := parseLeadFilter(c)
	if !ok {
		return
	}

	leads, err := lc.store.List(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error exporting leads: " + err.Error()})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="leads.csv"`)

	if len(leads) == 0 {
		// gota cannot build a frame from an empty slice
		c.String(http.StatusOK, leadExportHeader+"\n")
		return
	}

	df := leadExportFrame(leads)
	if df.Err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build export: " + df.Err.Error()})
		return
	}
	if err := df.WriteCSV(c.Writer); err != nil {
		logrus.WithError(err).Error("lead CSV export failed mid-stream")
	}
}

// Dashboard returns the headline counts plus the five most recent leads.
func (lc *LeadController) Dashboard(c *gin.Context) {
	counts, err := lc.store.Counts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard stats: " + err.Error()})
		return
	}

	recent, err := lc.store.Recent(5)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load recent leads: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":       counts,
		"recentLeads": recent,
	})
}
