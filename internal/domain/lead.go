package domain

import (
	"fmt"
	"strings"
)

type Role string

const (
	RoleRetailer Role = "retailer"
	RoleConsumer Role = "consumer"
	RoleOther    Role = "other"
)

func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleRetailer, RoleConsumer, RoleOther:
		return r, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// LeadRecord is a prospective customer's contact submission.
type LeadRecord struct {
	Name    string
	Email   string
	Role    Role
	Company string
	Message string
	Consent bool
}

// NewLeadRecord returns the record a fresh form starts from.
func NewLeadRecord() LeadRecord {
	return LeadRecord{
		Role:    RoleConsumer,
		Consent: true,
	}
}
