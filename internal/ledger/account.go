package ledger

import (
	"strconv"

	"github.com/shopspring/decimal"

	"pollywolly.org/internal/ids"
	"pollywolly.org/internal/money"
)

// Account is a single personal sub-account: a display name, an identifier
// number, a cached balance and an append-only transaction history. The
// cached balance always equals the opening balance plus the sum of all
// recorded amounts; RecordTransaction is the only code path that changes it.
type Account struct {
	name    string
	number  uint64
	balance decimal.Decimal
	history []Record
}

// NewAccount opens an account with the given opening balance. The opening
// balance is a starting value, not a transaction: the history begins empty.
func NewAccount(name string, number uint64, opening decimal.Decimal) *Account {
	return &Account{
		name:    name,
		number:  number,
		balance: money.Round(opening),
	}
}

func (a *Account) Name() string   { return a.name }
func (a *Account) Number() uint64 { return a.number }

// Balance returns the cached balance. O(1); kept consistent with the
// history by RecordTransaction.
func (a *Account) Balance() decimal.Decimal { return a.balance }

// History returns the transaction records in append order, oldest first.
// The returned slice is a copy; records themselves are immutable values.
func (a *Account) History() []Record {
	out := make([]Record, len(a.history))
	copy(out, a.history)
	return out
}

// RecordTransaction rounds amount, advances the balance, stamps a new
// record with the resulting balance and appends it to the history. It is
// the sole mutator of the account and always succeeds: sign and funds
// validation belong to the engine, not here.
func (a *Account) RecordTransaction(postingDate, description, category string, amount decimal.Decimal) Record {
	rounded := money.Round(amount)
	a.balance = money.Round(a.balance.Add(rounded))

	rec := Record{
		ID:          ids.New(),
		PostingDate: postingDate,
		Description: description,
		Category:    category,
		Amount:      rounded,
		Balance:     a.balance,
	}
	a.history = append(a.history, rec)
	return rec
}

// ShortName returns the first three characters of the account name.
func (a *Account) ShortName() (string, error) {
	r := []rune(a.name)
	if len(r) < 3 {
		return "", ErrNameTooShort
	}
	return string(r[:3]), nil
}

// ShortNumber returns the last four digits of the account number.
func (a *Account) ShortNumber() (string, error) {
	s := strconv.FormatUint(a.number, 10)
	if len(s) < 4 {
		return "", ErrNumberTooShort
	}
	return s[len(s)-4:], nil
}

// DisplayID is the compact identifier used inside transaction
// descriptions, e.g. "Adv - 2332". It fails when the name or number is too
// short for the shortened form.
func (a *Account) DisplayID() (string, error) {
	name, err := a.ShortName()
	if err != nil {
		return "", err
	}
	num, err := a.ShortNumber()
	if err != nil {
		return "", err
	}
	return name + " - " + num, nil
}

// DisplayName is the full label shown in account lists and statements,
// e.g. "Adv Plus Banking - 2332". When the number has fewer than four
// digits the whole number is shown instead.
func (a *Account) DisplayName() string {
	num, err := a.ShortNumber()
	if err != nil {
		num = strconv.FormatUint(a.number, 10)
	}
	return a.name + " - " + num
}

// Detail assembles the read model for this account.
func (a *Account) Detail() Detail {
	id, err := a.DisplayID()
	if err != nil {
		id = a.DisplayName()
	}
	return Detail{
		Name:      a.name,
		DisplayID: id,
		Balance:   a.balance,
		Records:   a.History(),
	}
}

// shortLabel is the description form of an account: the shortened id when
// available, the full display name otherwise.
func shortLabel(a *Account) string {
	if id, err := a.DisplayID(); err == nil {
		return id
	}
	return a.DisplayName()
}
