package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"pollywolly.org/internal/money"
)

// Engine orchestrates deposits, withdrawals and transfers: it validates
// business rules, stamps records with a posting date and confirmation
// number, and produces the statements the caller renders. Each call is
// atomic from the caller's perspective; a rejected operation leaves every
// balance and history untouched.
type Engine struct {
	clock         Clock
	confirmations ConfirmationSource
}

// NewEngine wires the engine with its two collaborators: a clock for
// posting dates and a source of confirmation numbers.
func NewEngine(clock Clock, confirmations ConfirmationSource) *Engine {
	return &Engine{clock: clock, confirmations: confirmations}
}

// Deposit records amount as a credit on acc and returns the statement.
// The amount is recorded as-is: callers are expected to pass a positive
// magnitude and must enforce that before calling, the same way they must
// for Withdraw.
func (e *Engine) Deposit(acc *Account, amount decimal.Decimal) string {
	conf := e.confirmations.Next()
	desc := "Banking deposit to " + shortLabel(acc) + " confirmation #" + conf
	rec := acc.RecordTransaction(e.clock.Today(), desc, CategoryCredit, amount)

	return fmt.Sprintf("You have deposited %s to %s. Your new balance is %s.",
		money.Format(rec.Amount), acc.DisplayName(), money.Format(rec.Balance))
}

// Withdraw negates amount and records the debit on acc. Callers pass the
// positive magnitude; a non-positive amount silently produces a
// wrong-signed record, so the caller-side positivity check is mandatory.
func (e *Engine) Withdraw(acc *Account, amount decimal.Decimal) string {
	conf := e.confirmations.Next()
	desc := "Banking withdrawal from " + shortLabel(acc) + " confirmation #" + conf
	rec := acc.RecordTransaction(e.clock.Today(), desc, CategoryCredit, amount.Neg())

	return fmt.Sprintf("You have withdrawn %s from %s. Your new balance is %s.",
		money.Format(rec.Amount.Abs()), acc.DisplayName(), money.Format(rec.Balance))
}

// Transfer moves amount from one account to another as two records sharing
// one posting date and one confirmation number: a debit leg naming the
// destination and a credit leg naming the source. Validation happens
// before either leg is recorded.
func (e *Engine) Transfer(from, to *Account, amount decimal.Decimal) (string, error) {
	if !e.IsPositive(amount) {
		return "", ErrAmountNotPositive
	}
	if !e.HasSufficientFunds(from, amount) {
		return "", ErrInsufficientFunds
	}

	conf := e.confirmations.Next()
	date := e.clock.Today()

	from.RecordTransaction(date, "Banking transfer to "+shortLabel(to)+" confirmation #"+conf, CategoryCredit, amount.Neg())
	to.RecordTransaction(date, "Banking transfer from "+shortLabel(from)+" confirmation #"+conf, CategoryCredit, amount)

	return fmt.Sprintf("%s was sent from %s to %s",
		money.Format(amount), from.DisplayName(), to.DisplayName()), nil
}

// HasSufficientFunds reports whether acc's balance strictly exceeds
// amount. The strict inequality (balance must be greater than, not equal
// to, the amount) is a deliberate compatibility boundary; a transfer of
// the exact balance is rejected.
func (e *Engine) HasSufficientFunds(acc *Account, amount decimal.Decimal) bool {
	return acc.Balance().GreaterThan(money.Round(amount))
}

// IsPositive reports whether amount is strictly greater than zero.
func (e *Engine) IsPositive(amount decimal.Decimal) bool {
	return money.IsPositive(amount)
}
