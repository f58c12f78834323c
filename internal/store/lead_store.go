package store

import (
	"time"

	"gorm.io/gorm"

	"tour_to_himachal/internal/models"
)

// LeadFilter narrows lead queries. Zero values mean "no filter"; both
// predicates combine with AND semantics.
type LeadFilter struct {
	Status models.LeadStatus
	Type   models.ServiceType
}

// DashboardCounts are the headline numbers on the admin dashboard.
type DashboardCounts struct {
	TotalLeads       int64 `json:"totalLeads"`
	NewToday         int64 `json:"newToday"`
	PackageEnquiries int64 `json:"packageEnquiries"`
	TaxiEnquiries    int64 `json:"taxiEnquiries"`
}

// LeadStore is the persistence boundary for the lead pipeline. Controllers
// depend on this interface so handler tests can run against a mock.
type LeadStore interface {
	Create(lead *models.Lead) error
	List(f LeadFilter) ([]models.Lead, error)
	Get(id uint) (*models.Lead, error)
	UpdateStatus(id uint, status models.LeadStatus, updatedBy string) (*models.Lead, error)
	Delete(id uint) error
	Counts() (DashboardCounts, error)
	Recent(limit int) ([]models.Lead, error)
}

type gormLeadStore struct {
	db *gorm.DB
}

// NewLeadStore returns a LeadStore backed by the given gorm handle.
func NewLeadStore(db *gorm.DB) LeadStore {
	return &gormLeadStore{db: db}
}

func (s *gormLeadStore) Create(lead *models.Lead) error {
	return s.db.Create(lead).Error
}

func (s *gormLeadStore) List(f LeadFilter) ([]models.Lead, error) {
	q := s.db.Model(&models.Lead{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Type != "" {
		q = q.Where("service_type = ?", f.Type)
	}

	var leads []models.Lead
	if err := q.Order("created_at DESC").Find(&leads).Error; err != nil {
		return nil, err
	}
	return leads, nil
}

func (s *gormLeadStore) Get(id uint) (*models.Lead, error) {
	var lead models.Lead
	if err := s.db.First(&lead, id).Error; err != nil {
		return nil, err
	}
	return &lead, nil
}

// UpdateStatus writes only status and updated_by; reference_number and
// created_at stay untouched no matter how often the status changes.
func (s *gormLeadStore) UpdateStatus(id uint, status models.LeadStatus, updatedBy string) (*models.Lead, error) {
	var lead models.Lead
	if err := s.db.First(&lead, id).Error; err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"status":     status,
		"updated_by": updatedBy,
	}
	if err := s.db.Model(&lead).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &lead, nil
}

func (s *gormLeadStore) Delete(id uint) error {
	var lead models.Lead
	if err := s.db.First(&lead, id).Error; err != nil {
		return err
	}
	return s.db.Unscoped().Delete(&lead).Error
}

func (s *gormLeadStore) Counts() (DashboardCounts, error) {
	var counts DashboardCounts

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if err := s.db.Model(&models.Lead{}).Count(&counts.TotalLeads).Error; err != nil {
		return counts, err
	}
	if err := s.db.Model(&models.Lead{}).Where("created_at >= ?", startOfDay).Count(&counts.NewToday).Error; err != nil {
		return counts, err
	}
	if err := s.db.Model(&models.Lead{}).Where("service_type = ?", models.ServicePackage).Count(&counts.PackageEnquiries).Error; err != nil {
		return counts, err
	}
	if err := s.db.Model(&models.Lead{}).Where("service_type = ?", models.ServiceTaxi).Count(&counts.TaxiEnquiries).Error; err != nil {
		return counts, err
	}
	return counts, nil
}

func (s *gormLeadStore) Recent(limit int) ([]models.Lead, error) {
	var leads []models.Lead
	if err := s.db.Order("created_at DESC").Limit(limit).Find(&leads).Error; err != nil {
		return nil, err
	}
	return leads, nil
}
