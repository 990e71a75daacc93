package ledger

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock string

func (c fixedClock) Today() string { return string(c) }

// seqConfirmations hands out predictable confirmation numbers.
type seqConfirmations struct{ n int }

func (s *seqConfirmations) Next() string {
	s.n++
	return fmt.Sprintf("%010d", s.n)
}

func newTestEngine() *Engine {
	return NewEngine(fixedClock("01/15/2023"), &seqConfirmations{})
}

func TestDepositScenario(t *testing.T) {
	e := newTestEngine()
	acc := NewAccount("Adv Plus Banking", 392852342332, amt("100.00"))

	statement := e.Deposit(acc, amt("50.00"))

	assert.True(t, acc.Balance().Equal(amt("150.00")))
	require.Len(t, acc.History(), 1)
	rec := acc.History()[0]
	assert.True(t, rec.Balance.Equal(amt("150.00")))
	assert.Equal(t, "01/15/2023", rec.PostingDate)
	assert.Equal(t, CategoryCredit, rec.Category)
	assert.Contains(t, rec.Description, "Banking deposit to Adv - 2332 confirmation #")
	assert.Equal(t, "You have deposited $50.00 to Adv Plus Banking - 2332. Your new balance is $150.00.", statement)
}

func TestDepositRecordsNonPositiveAmountAsIs(t *testing.T) {
	// The engine trusts the caller on sign; a negative deposit lands as a
	// debit. Caller-side validation is what rejects this in practice.
	e := newTestEngine()
	acc := NewAccount("Adv Plus Banking", 392852342332, amt("100.00"))

	e.Deposit(acc, amt("-5.00"))

	assert.True(t, acc.Balance().Equal(amt("95.00")))
	assert.True(t, acc.History()[0].Amount.Equal(amt("-5.00")))
}

func TestWithdrawNegatesAmount(t *testing.T) {
	e := newTestEngine()
	acc := NewAccount("Adv Plus Banking", 392852342332, amt("100.00"))

	statement := e.Withdraw(acc, amt("30.00"))

	assert.True(t, acc.Balance().Equal(amt("70.00")))
	require.Len(t, acc.History(), 1)
	rec := acc.History()[0]
	assert.True(t, rec.Amount.Equal(amt("-30.00")))
	assert.True(t, rec.Balance.Equal(amt("70.00")))
	assert.Contains(t, rec.Description, "Banking withdrawal from Adv - 2332 confirmation #")
	assert.Equal(t, "You have withdrawn $30.00 from Adv Plus Banking - 2332. Your new balance is $70.00.", statement)
}

func TestWithdrawWithNegativeMagnitudeFlipsSign(t *testing.T) {
	// Passing a non-positive magnitude produces a wrong-signed record: the
	// unconditional negation turns -5.00 into a credit.
	e := newTestEngine()
	acc := NewAccount("Adv Plus Banking", 392852342332, amt("100.00"))

	e.Withdraw(acc, amt("-5.00"))

	assert.True(t, acc.Balance().Equal(amt("105.00")))
	assert.True(t, acc.History()[0].Amount.Equal(amt("5.00")))
}

func TestTransferConservesMoney(t *testing.T) {
	e := newTestEngine()
	from := NewAccount("Adv Plus Banking", 392852342332, amt("100.00"))
	to := NewAccount("Advantage Savings", 385683729957, amt("0.00"))

	statement, err := e.Transfer(from, to, amt("40.00"))
	require.NoError(t, err)

	assert.True(t, from.Balance().Equal(amt("60.00")))
	assert.True(t, to.Balance().Equal(amt("40.00")))
	assert.Equal(t, "$40.00 was sent from Adv Plus Banking - 2332 to Advantage Savings - 9957", statement)

	require.Len(t, from.History(), 1)
	require.Len(t, to.History(), 1)
	debit := from.History()[0]
	credit := to.History()[0]
	assert.True(t, debit.Amount.Equal(amt("-40.00")))
	assert.True(t, credit.Amount.Equal(amt("40.00")))
	assert.Contains(t, debit.Description, "Banking transfer to Adv - 9957")
	assert.Contains(t, credit.Description, "Banking transfer from Adv - 2332")
	assert.Equal(t, debit.PostingDate, credit.PostingDate)
}

func TestTransferLegsShareOneConfirmation(t *testing.T) {
	e := newTestEngine()
	from := NewAccount("Adv Plus Banking", 392852342332, amt("100.00"))
	to := NewAccount("Advantage Savings", 385683729957, amt("0.00"))

	_, err := e.Transfer(from, to, amt("10.00"))
	require.NoError(t, err)

	debitConf := confirmationOf(t, from.History()[0].Description)
	creditConf := confirmationOf(t, to.History()[0].Description)
	assert.Equal(t, debitConf, creditConf)
	assert.Len(t, debitConf, 10)
}

func confirmationOf(t *testing.T, description string) string {
	t.Helper()
	i := strings.Index(description, "#")
	require.GreaterOrEqual(t, i, 0, "no confirmation in %q", description)
	return description[i+1:]
}

func TestTransferRejectsNonPositiveAmount(t *testing.T) {
	e := newTestEngine()
	from := NewAccount("Adv Plus Banking", 392852342332, amt("100.00"))
	to := NewAccount("Advantage Savings", 385683729957, amt("0.00"))

	for _, a := range []string{"0", "-1.00"} {
		_, err := e.Transfer(from, to, amt(a))
		assert.ErrorIs(t, err, ErrAmountNotPositive, "amount %s", a)
	}
	assert.True(t, from.Balance().Equal(amt("100.00")))
	assert.True(t, to.Balance().Equal(amt("0.00")))
	assert.Empty(t, from.History())
	assert.Empty(t, to.History())
}

func TestTransferRejectsWhenBalanceDoesNotExceedAmount(t *testing.T) {
	e := newTestEngine()
	from := NewAccount("Adv Plus Banking", 392852342332, amt("100.00"))
	to := NewAccount("Advantage Savings", 385683729957, amt("0.00"))

	// 100.00 is not > 100.01.
	_, err := e.Transfer(from, to, amt("100.01"))
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	// The strict-inequality boundary: transferring the exact balance is
	// rejected as well.
	_, err = e.Transfer(from, to, amt("100.00"))
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	assert.True(t, from.Balance().Equal(amt("100.00")))
	assert.True(t, to.Balance().Equal(amt("0.00")))
	assert.Empty(t, from.History())
	assert.Empty(t, to.History())
}

func TestHasSufficientFundsIsStrict(t *testing.T) {
	e := newTestEngine()
	acc := NewAccount("Adv Plus Banking", 392852342332, amt("100.00"))

	assert.True(t, e.HasSufficientFunds(acc, amt("99.99")))
	assert.False(t, e.HasSufficientFunds(acc, amt("100.00")))
	assert.False(t, e.HasSufficientFunds(acc, amt("100.01")))
}

func TestHistoryOnlyGrows(t *testing.T) {
	e := newTestEngine()
	from := NewAccount("Adv Plus Banking", 392852342332, amt("100.00"))
	to := NewAccount("Advantage Savings", 385683729957, amt("0.00"))

	lengths := func() (int, int) { return len(from.History()), len(to.History()) }

	e.Deposit(from, amt("10.00"))
	f1, t1 := lengths()
	assert.Equal(t, 1, f1)
	assert.Equal(t, 0, t1)
	first := from.History()[0]

	_, err := e.Transfer(from, to, amt("5.00"))
	require.NoError(t, err)
	f2, t2 := lengths()
	assert.Equal(t, 2, f2)
	assert.Equal(t, 1, t2)

	// Prior records are never modified.
	assert.Equal(t, first, from.History()[0])
}
