package dto

type LeadRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Company string `json:"company"`
	Message string `json:"message"`
	Consent bool   `json:"consent"`
}
