package clients

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline-dev/ledgerline/internal/model"
	"github.com/ledgerline-dev/ledgerline/internal/store"
)

// Service deduplicates and maintains client records referenced by invoices
// and estimates.
type Service struct {
	snap *store.Snapshot
}

// NewService creates a client Service over a snapshot.
func NewService(snap *store.Snapshot) *Service {
	return &Service{snap: snap}
}

// DocFields are the client-identifying fields carried on an invoice or
// estimate.
type DocFields struct {
	ClientID string
	Name     string
	Company  string
	Email    string
	Address  string
}

// normalize lowercases, trims, and collapses internal whitespace for
// matching.
func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// UpsertFromDoc finds or creates the client a document refers to and
// returns its id. Matching priority: clientId, then normalized email, then
// normalized name+company, then normalized name alone; first match wins.
// The name-only fallback is a deliberate best-effort dedup and can merge
// two different people who share a name and have no company on record.
//
// On match, newly provided company/email/address fields merge in without
// overwriting existing values, and status escalates to hint unless the
// client is inactive (inactive is sticky). No match creates a new client
// with status hint.
func (s *Service) UpsertFromDoc(f DocFields, hint model.ClientStatus, now time.Time) string {
	c := s.match(f)
	if c == nil {
		nc := model.Client{
			ID:        uuid.NewString(),
			Name:      strings.TrimSpace(f.Name),
			Company:   strings.TrimSpace(f.Company),
			Email:     strings.TrimSpace(f.Email),
			Address:   strings.TrimSpace(f.Address),
			Status:    hint,
			CreatedAt: now,
			UpdatedAt: now,
		}
		s.snap.Clients = append(s.snap.Clients, nc)
		return nc.ID
	}

	changed := false
	if c.Company == "" && f.Company != "" {
		c.Company = strings.TrimSpace(f.Company)
		changed = true
	}
	if c.Email == "" && f.Email != "" {
		c.Email = strings.TrimSpace(f.Email)
		changed = true
	}
	if c.Address == "" && f.Address != "" {
		c.Address = strings.TrimSpace(f.Address)
		changed = true
	}
	if c.Status != model.ClientInactive && model.StatusRank(hint) > model.StatusRank(c.Status) {
		c.Status = hint
		changed = true
	}
	if changed {
		c.UpdatedAt = now
	}
	return c.ID
}

func (s *Service) match(f DocFields) *model.Client {
	if f.ClientID != "" {
		if c := s.snap.FindClient(f.ClientID); c != nil {
			return c
		}
	}

	email := normalize(f.Email)
	if email != "" {
		for i := range s.snap.Clients {
			if normalize(s.snap.Clients[i].Email) == email {
				return &s.snap.Clients[i]
			}
		}
	}

	name := normalize(f.Name)
	if name == "" {
		return nil
	}

	company := normalize(f.Company)
	if company != "" {
		for i := range s.snap.Clients {
			c := &s.snap.Clients[i]
			if normalize(c.Name) == name && normalize(c.Company) == company {
				return c
			}
		}
	}

	for i := range s.snap.Clients {
		if normalize(s.snap.Clients[i].Name) == name {
			return &s.snap.Clients[i]
		}
	}
	return nil
}

// Promote escalates a lead to an active client. Any other status is left
// alone.
func (s *Service) Promote(clientID string, now time.Time) {
	c := s.snap.FindClient(clientID)
	if c == nil {
		return
	}
	if c.Status == model.ClientLead {
		c.Status = model.ClientActive
		c.UpdatedAt = now
	}
}

// SetStatus is the explicit user edit path; it may set any status,
// including reactivating an inactive client.
func (s *Service) SetStatus(clientID string, status model.ClientStatus, now time.Time) bool {
	c := s.snap.FindClient(clientID)
	if c == nil {
		return false
	}
	c.Status = status
	c.UpdatedAt = now
	return true
}
