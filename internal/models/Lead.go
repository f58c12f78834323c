// internal/models/lead.go
package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeadStatus is the triage state staff move a lead through.
// The progression new -> contacted -> booked -> closed is a convention
// only; any status may be set from any other.
type LeadStatus string

const (
	StatusNew       LeadStatus = "new"
	StatusContacted LeadStatus = "contacted"
	StatusBooked    LeadStatus = "booked"
	StatusClosed    LeadStatus = "closed"
)

func (s LeadStatus) Valid() bool {
	switch s {
	case StatusNew, StatusContacted, StatusBooked, StatusClosed:
		return true
	}
	return false
}

// ServiceType classifies what the customer asked for. Set at creation,
// never re-derived afterwards.
type ServiceType string

const (
	ServicePackage ServiceType = "package"
	ServiceTaxi    ServiceType = "taxi"
	ServiceEnquiry ServiceType = "enquiry"
)

func (t ServiceType) Valid() bool {
	switch t {
	case ServicePackage, ServiceTaxi, ServiceEnquiry:
		return true
	}
	return false
}

// Lead is a customer inquiry captured from the public booking and contact
// forms. ReferenceNumber and CreatedAt are immutable once the row exists;
// only Status (and UpdatedBy alongside it) changes during triage.
type Lead struct {
	gorm.Model
	Name            string      `json:"name"`
	Phone           string      `json:"phone"`
	Email           string      `json:"email"`
	Subject         string      `json:"subject"`
	Message         string      `json:"message"`
	ServiceType     ServiceType `json:"service_type" gorm:"type:varchar(20);default:'taxi';index"`
	Status          LeadStatus  `json:"status" gorm:"type:varchar(20);default:'new';index"`
	ReferenceNumber string      `json:"reference_number" gorm:"uniqueIndex"`
	UpdatedBy       string      `json:"updated_by"`
}

// BeforeCreate assigns the customer-facing reference number. The internal
// row id stays private; the reference number is what the customer quotes
// on follow-up calls.
func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ReferenceNumber == "" {
		l.ReferenceNumber = NewReferenceNumber()
	}
	return nil
}

// NewReferenceNumber returns a short shareable identifier like TTH-4F2A91C3.
// Uniqueness is ultimately enforced by the unique index on the column.
func NewReferenceNumber() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "TTH-" + strings.ToUpper(raw[:8])
}
