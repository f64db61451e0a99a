package model

import "time"

// ClientStatus tracks where a client sits in the pipeline. Status only
// escalates automatically (lead to client); inactive is set by the user and
// is never silently reactivated.
type ClientStatus string

const (
	ClientLead     ClientStatus = "lead"
	ClientActive   ClientStatus = "client"
	ClientInactive ClientStatus = "inactive"
)

// StatusRank orders statuses for escalation checks. Higher never
// auto-downgrades to lower.
func StatusRank(s ClientStatus) int {
	switch s {
	case ClientLead:
		return 1
	case ClientActive:
		return 2
	default:
		return 0
	}
}

// Client is a CRM record, upserted from invoice/estimate client fields.
type Client struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Company   string       `json:"company,omitempty"`
	Email     string       `json:"email,omitempty"`
	Phone     string       `json:"phone,omitempty"`
	Address   string       `json:"address,omitempty"`
	Notes     string       `json:"notes,omitempty"`
	Status    ClientStatus `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}
