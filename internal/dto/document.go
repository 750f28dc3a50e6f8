package dto

import "encoding/json"

// CreateTemplateRequest describes a new proposal template.
type CreateTemplateRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	Color       string          `json:"color"`
	Content     json.RawMessage `json:"content" validate:"required"`
}

// UpdateTemplateRequest carries a partial template update.
type UpdateTemplateRequest struct {
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	Icon        *string         `json:"icon"`
	Color       *string         `json:"color"`
	Content     json.RawMessage `json:"content"`
}

// CreateProposalRequest describes a new proposal document.
type CreateProposalRequest struct {
	Title      string          `json:"title" validate:"required"`
	ClientName string          `json:"clientName" validate:"required"`
	Status     string          `json:"status"`
	TemplateID *string         `json:"templateId"`
	Content    json.RawMessage `json:"content" validate:"required"`
}

// UpdateProposalRequest carries a partial proposal update.
type UpdateProposalRequest struct {
	Title      *string         `json:"title"`
	ClientName *string         `json:"clientName"`
	Status     *string         `json:"status"`
	TemplateID *string         `json:"templateId"`
	Content    json.RawMessage `json:"content"`
}
