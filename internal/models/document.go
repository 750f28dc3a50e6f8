package models

import (
	"encoding/json"
	"time"
)

// ProposalStatus tracks a proposal through its review lifecycle.
type ProposalStatus string

const (
	ProposalStatusDraft    ProposalStatus = "draft"
	ProposalStatusSent     ProposalStatus = "sent"
	ProposalStatusApproved ProposalStatus = "approved"
	ProposalStatusRejected ProposalStatus = "rejected"
)

// Template represents a reusable proposal template with structured content.
type Template struct {
	ID          string          `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	Description string          `db:"description" json:"description"`
	Icon        string          `db:"icon" json:"icon"`
	Color       string          `db:"color" json:"color"`
	Content     json.RawMessage `db:"content" json:"content"`
	CreatedAt   time.Time       `db:"created_at" json:"createdAt"`
}

// Proposal represents a client-facing business proposal document.
type Proposal struct {
	ID         string          `db:"id" json:"id"`
	Title      string          `db:"title" json:"title"`
	ClientName string          `db:"client_name" json:"clientName"`
	Status     ProposalStatus  `db:"status" json:"status"`
	TemplateID *string         `db:"template_id" json:"templateId,omitempty"`
	Content    json.RawMessage `db:"content" json:"content"`
	CreatedAt  time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time       `db:"updated_at" json:"updatedAt"`
}

// ValidProposalStatus reports whether the status is one of the known values.
func ValidProposalStatus(s ProposalStatus) bool {
	switch s {
	case ProposalStatusDraft, ProposalStatusSent, ProposalStatusApproved, ProposalStatusRejected:
		return true
	}
	return false
}

// Pagination carries listing metadata in response envelopes.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}
