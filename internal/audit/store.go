// Package audit provides the append-only decision log and its SQLite
// implementation. Entries record the AI-assigned zone next to the final
// zone; a human override mutates only the audit entry, never the Decision
// it was derived from.
package audit

import (
	"context"

	"github.com/slotwise/putaway/internal/model"
)

// AppendParams holds parameters for logging one decided item.
type AppendParams struct {
	ItemID     string
	Product    string
	Zone       string
	Confidence model.Confidence
	Mandatory  bool
}

// OverrideParams holds parameters for a human zone override.
type OverrideParams struct {
	ID     string
	Zone   string
	Reason string
}

// Store defines the audit log interface.
type Store interface {
	// Append records a successful decision. Returns the created entry.
	Append(ctx context.Context, p AppendParams) (*model.AuditEntry, error)

	// List returns entries newest-first, at most limit (0 means all).
	List(ctx context.Context, limit int) ([]model.AuditEntry, error)

	// Get retrieves one entry by id.
	Get(ctx context.Context, id string) (*model.AuditEntry, error)

	// Override replaces the final zone on an existing entry and marks it
	// overridden with the given justification.
	Override(ctx context.Context, p OverrideParams) error

	// Close closes the store.
	Close() error
}
