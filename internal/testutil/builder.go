package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/signup/internal/account"
	"github.com/zjrosen/signup/internal/registration"
)

// Builder accumulates accounts and inserts them into a store.
type Builder struct {
	t        *testing.T
	creator  account.Creator
	records  []registration.Input
	receipts []account.Receipt
}

// NewBuilder creates a builder that registers through creator.
func NewBuilder(t *testing.T, creator account.Creator) *Builder {
	t.Helper()
	return &Builder{t: t, creator: creator}
}

// WithAccount adds a valid record for email with optional overrides.
func (b *Builder) WithAccount(email string, opts ...RecordOption) *Builder {
	opts = append([]RecordOption{Email(email)}, opts...)
	b.records = append(b.records, ValidRecord(opts...))
	return b
}

// Build registers every accumulated record in order and returns the receipts.
func (b *Builder) Build() []account.Receipt {
	b.t.Helper()
	for _, in := range b.records {
		receipt, err := b.creator.Create(b.t.Context(), in)
		require.NoError(b.t, err, "registering %s", in.Email)
		b.receipts = append(b.receipts, receipt)
	}
	b.records = nil
	return b.receipts
}
