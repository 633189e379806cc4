package domain

import (
	"net/mail"
	"strings"

	apperrors "lastdrop/internal/errors"
)

// Validation mirrors the required-field checks a browser form applies before
// submitting; it never inspects values beyond presence and email shape.

func (l LeadRecord) Validate() error {
	var details []apperrors.ValidationDetail
	if strings.TrimSpace(l.Name) == "" {
		details = append(details, apperrors.ValidationDetail{Field: "name", Message: "name is required"})
	}
	details = appendEmailDetail(details, l.Email)

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}
	return nil
}

func (a AuthState) ValidateCredentials() error {
	details := appendEmailDetail(nil, a.Email)
	if a.Password == "" {
		details = append(details, apperrors.ValidationDetail{Field: "password", Message: "password is required"})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}
	return nil
}

func (o Order) Validate() error {
	if strings.TrimSpace(o.OrderNumber) == "" {
		return apperrors.NewValidationError("validation failed", apperrors.ValidationDetail{
			Field:   "order_number",
			Message: "order_number is required",
		})
	}
	return nil
}

func appendEmailDetail(details []apperrors.ValidationDetail, email string) []apperrors.ValidationDetail {
	if strings.TrimSpace(email) == "" {
		return append(details, apperrors.ValidationDetail{Field: "email", Message: "email is required"})
	}
	// Only a bare address counts; display-name forms like "Jane <j@x.com>" do not.
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != strings.TrimSpace(email) {
		return append(details, apperrors.ValidationDetail{Field: "email", Message: "email must be a valid address"})
	}
	return details
}
