// Package holder models account holders: the owners of one or more ledger
// accounts, carrying the opaque identity fields the auth gate verifies.
package holder

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pollywolly.org/internal/ledger"
)

var (
	ErrNotFound               = errors.New("holder not found")
	ErrDuplicateUsername      = errors.New("username already registered")
	ErrDuplicateAccountNumber = errors.New("account number already in use")
)

// Holder owns a set of ledger accounts with unique numbers. Ownership is
// exclusive: an account belongs to exactly one holder and is never
// reassigned.
type Holder struct {
	ID           string
	Username     string
	PasswordHash string
	PINHash      string
	FirstName    string
	LastName     string

	accounts []*ledger.Account
}

// AccountSummary is one row of the compact account list.
type AccountSummary struct {
	DisplayName string
	DisplayID   string
	Balance     decimal.Decimal
}

// New builds a holder with the given identity fields. Password and PIN
// arrive pre-hashed; the holder treats them as opaque.
func New(username, passwordHash, pinHash, firstName, lastName string) *Holder {
	return &Holder{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
		PINHash:      pinHash,
		FirstName:    firstName,
		LastName:     lastName,
	}
}

// CreateAccount opens a new ledger account under this holder. Numbers are
// never reused within a holder's set.
func (h *Holder) CreateAccount(name string, number uint64, opening decimal.Decimal) (*ledger.Account, error) {
	for _, acc := range h.accounts {
		if acc.Number() == number {
			return nil, ErrDuplicateAccountNumber
		}
	}
	acc := ledger.NewAccount(name, number, opening)
	h.accounts = append(h.accounts, acc)
	return acc, nil
}

// Accounts returns the holder's accounts in creation order.
func (h *Holder) Accounts() []*ledger.Account {
	out := make([]*ledger.Account, len(h.accounts))
	copy(out, h.accounts)
	return out
}

// Owns reports whether acc belongs to this holder.
func (h *Holder) Owns(acc *ledger.Account) bool {
	for _, a := range h.accounts {
		if a == acc {
			return true
		}
	}
	return false
}

// Summaries returns one row per account, in creation order.
func (h *Holder) Summaries() []AccountSummary {
	out := make([]AccountSummary, 0, len(h.accounts))
	for _, acc := range h.accounts {
		id, err := acc.DisplayID()
		if err != nil {
			id = acc.DisplayName()
		}
		out = append(out, AccountSummary{
			DisplayName: acc.DisplayName(),
			DisplayID:   id,
			Balance:     acc.Balance(),
		})
	}
	return out
}

// OwnerLabel is the welcome-screen heading, e.g. "Rick Sanchez's Account".
func (h *Holder) OwnerLabel() string {
	return h.FirstName + " " + h.LastName + "'s Account"
}
