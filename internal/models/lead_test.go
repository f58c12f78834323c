package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeadStatusValid(t *testing.T) {
	for _, s := range []LeadStatus{StatusNew, StatusContacted, StatusBooked, StatusClosed} {
		assert.True(t, s.Valid(), "expected %q to be valid", s)
	}

	for _, s := range []LeadStatus{"", "pending", "NEW", "done"} {
		assert.False(t, s.Valid(), "expected %q to be invalid", s)
	}
}

func TestServiceTypeValid(t *testing.T) {
	for _, st := range []ServiceType{ServicePackage, ServiceTaxi, ServiceEnquiry} {
		assert.True(t, st.Valid(), "expected %q to be valid", st)
	}

	for _, st := range []ServiceType{"", "bus", "Taxi", "packages"} {
		assert.False(t, st.Valid(), "expected %q to be invalid", st)
	}
}

func TestNewReferenceNumber(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		ref := NewReferenceNumber()

		assert.True(t, strings.HasPrefix(ref, "TTH-"), "reference %q missing prefix", ref)
		assert.Len(t, ref, len("TTH-")+8)
		assert.Equal(t, strings.ToUpper(ref), ref, "reference %q should be upper case", ref)

		assert.False(t, seen[ref], "duplicate reference %q", ref)
		seen[ref] = true
	}
}

func TestLeadBeforeCreateAssignsReference(t *testing.T) {
	lead := Lead{Name: "Asha", Phone: "9991112222", Message: "Need a 3-day Manali trip"}

	err := lead.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, lead.ReferenceNumber)
}

func TestLeadBeforeCreateKeepsExistingReference(t *testing.T) {
	lead := Lead{ReferenceNumber: "TTH-FIXED123"}

	err := lead.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.Equal(t, "TTH-FIXED123", lead.ReferenceNumber)
}
