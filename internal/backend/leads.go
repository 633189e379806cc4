package backend

import (
	"context"
	"net/http"

	"lastdrop/internal/domain"
	"lastdrop/internal/dto"
)

func (c *Client) SubmitLead(ctx context.Context, lead domain.LeadRecord) error {
	req := dto.LeadRequest{
		Name:    lead.Name,
		Email:   lead.Email,
		Role:    string(lead.Role),
		Company: lead.Company,
		Message: lead.Message,
		Consent: lead.Consent,
	}
	return c.send(ctx, "submit lead", http.MethodPost, pathLeads, "", req)
}
