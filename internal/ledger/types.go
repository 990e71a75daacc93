package ledger

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// PendingDate is the posting-date sentinel for same-day entries that have
// not been assigned a calendar date yet.
const PendingDate = "Processing"

// Category values the engine and seed data use. Category stays free text
// on a record; nothing validates against a closed set.
const (
	CategoryCredit   = "Credit"
	CategoryCash     = "Cash"
	CategoryTransfer = "Transfer"
)

// Record is one immutable ledger entry: a dated, described, signed amount
// together with a snapshot of the owning account's balance immediately
// after the record was applied. Records are created exactly once by
// Account.RecordTransaction and never mutated afterwards.
type Record struct {
	ID          string          `json:"id"`
	PostingDate string          `json:"posting_date"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`  // negative = debit, positive = credit
	Balance     decimal.Decimal `json:"balance"` // account balance after this record
}

// Detail is the read model for one account: header fields plus the full
// history in append order, for the caller to render.
type Detail struct {
	Name      string
	DisplayID string
	Balance   decimal.Decimal
	Records   []Record
}

var (
	ErrAmountNotPositive = errors.New("amount must be positive")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNameTooShort      = errors.New("account name shorter than three characters")
	ErrNumberTooShort    = errors.New("account number shorter than four digits")
)

// Clock supplies the posting date for new records, formatted MM/DD/YYYY.
// The engine never reads the wall clock directly.
type Clock interface {
	Today() string
}

// SystemClock is the production Clock.
type SystemClock struct{}

func (SystemClock) Today() string { return time.Now().Format("01/02/2006") }

// ConfirmationSource draws the ten-digit confirmation numbers stamped into
// transfer, deposit and withdrawal descriptions.
type ConfirmationSource interface {
	Next() string
}
