// Package session is the interactive caller in front of the ledger core:
// a login gate followed by a text menu that invokes engine operations and
// renders their results. All caller-side validation lives here: account
// selection, same-account transfers, and the positivity/funds pre-checks
// the engine's deposit and withdraw deliberately do not perform.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"pollywolly.org/internal/audit"
	"pollywolly.org/internal/auth"
	"pollywolly.org/internal/holder"
	"pollywolly.org/internal/ids"
	"pollywolly.org/internal/ledger"
	"pollywolly.org/internal/obs"
)

var (
	ErrInvalidSelection = errors.New("invalid selection")
	ErrSameAccount      = errors.New("can not choose the same account")
)

// Session drives one interactive banking session over a token stream.
// Input and output are plain io interfaces so tests can script a whole
// session.
type Session struct {
	gate    *auth.Gate
	engine  *ledger.Engine
	metrics *obs.Metrics

	in  *bufio.Scanner
	out io.Writer
	id  string
}

// New builds a session over the given streams.
func New(gate *auth.Gate, engine *ledger.Engine, metrics *obs.Metrics, in io.Reader, out io.Writer) *Session {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	return &Session{
		gate:    gate,
		engine:  engine,
		metrics: metrics,
		in:      sc,
		out:     out,
		id:      ids.New(),
	}
}

// Run walks the whole session: login, PIN, then the menu loop until the
// user quits or input runs out.
func (s *Session) Run(ctx context.Context) error {
	ctx = audit.WithSessionID(ctx, s.id)

	fmt.Fprintln(s.out, "Welcome to Bank of PollyWolly!")
	fmt.Fprintln(s.out)

	h, err := s.login(ctx)
	if err != nil {
		return err
	}
	if err := s.secondFactor(ctx, h); err != nil {
		return err
	}

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, h.OwnerLabel())
	fmt.Fprintln(s.out)
	s.printAccounts(h)

	return s.menu(ctx, h)
}

func (s *Session) login(ctx context.Context) (*holder.Holder, error) {
	for {
		fmt.Fprintln(s.out, "Enter your username:")
		username, err := s.readToken()
		if err != nil {
			return nil, err
		}
		fmt.Fprintln(s.out, "Enter your password:")
		password, err := s.readToken()
		if err != nil {
			return nil, err
		}

		h, err := s.gate.Login(ctx, username, password)
		if err != nil {
			_ = audit.LogEvent(ctx, "session.login.rejected", map[string]any{
				"username": username,
				"reason":   err.Error(),
			})
			if errors.Is(err, auth.ErrTooManyAttempts) {
				fmt.Fprintln(s.out, "ERROR: Too many login attempts. Try again later.")
				continue
			}
			fmt.Fprintln(s.out, "Invalid username/password. Try again.")
			continue
		}

		_ = audit.LogEvent(ctx, "session.login.accepted", map[string]any{
			"username": username,
		})
		return h, nil
	}
}

func (s *Session) secondFactor(ctx context.Context, h *holder.Holder) error {
	for {
		fmt.Fprintln(s.out, "For two factor authentication, please enter your pin code:")
		pin, err := s.readToken()
		if err != nil {
			return err
		}
		if err := s.gate.VerifyPIN(h, pin); err != nil {
			_ = audit.LogEvent(ctx, "session.pin.rejected", map[string]any{
				"username": h.Username,
			})
			fmt.Fprintln(s.out, "ERROR: Incorrect pin. Try again.")
			continue
		}
		fmt.Fprintln(s.out, "Pin code success. Now logging in.")
		return nil
	}
}

func (s *Session) menu(ctx context.Context, h *holder.Holder) error {
	for {
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, "What would you like to do?")
		fmt.Fprintln(s.out, "\t1) Transfer money between personal accounts.")
		fmt.Fprintln(s.out, "\t2) Withdraw money from an account.")
		fmt.Fprintln(s.out, "\t3) Deposit money into an account.")
		fmt.Fprintln(s.out, "\t4) View transaction history.")
		fmt.Fprintln(s.out, "\t5) Quit.")
		fmt.Fprintln(s.out, "Choose 1-5:")

		choice, err := s.readInt()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return err
			}
			s.tryAgain(ErrInvalidSelection)
			continue
		}

		switch choice {
		case 1:
			err = s.transfer(ctx, h)
		case 2:
			err = s.withdraw(ctx, h)
		case 3:
			err = s.deposit(ctx, h)
		case 4:
			err = s.viewHistory(h)
		case 5:
			fmt.Fprintln(s.out, "Thank you for using Bank of PollyWolly!")
			return nil
		default:
			s.tryAgain(ErrInvalidSelection)
			continue
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) transfer(ctx context.Context, h *holder.Holder) error {
	var from, to *ledger.Account
	for {
		s.printAccounts(h)
		fmt.Fprintln(s.out, "Which account would you like to transfer money from?")
		fromIdx, err := s.readInt()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return err
			}
			s.tryAgain(ErrInvalidSelection)
			continue
		}
		fmt.Fprintln(s.out, "Which account would you like to transfer money to?")
		toIdx, err := s.readInt()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return err
			}
			s.tryAgain(ErrInvalidSelection)
			continue
		}

		if fromIdx == toIdx {
			s.tryAgain(ErrSameAccount)
			continue
		}
		from, err = s.accountAt(h, fromIdx)
		if err != nil {
			s.tryAgain(err)
			continue
		}
		to, err = s.accountAt(h, toIdx)
		if err != nil {
			s.tryAgain(err)
			continue
		}
		break
	}

	for {
		fmt.Fprintln(s.out, "How much would you like to transfer over?")
		amount, err := s.readAmount()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return err
			}
			s.tryAgain(err)
			continue
		}

		statement, err := s.engine.Transfer(from, to, amount)
		if err != nil {
			s.metrics.RecordRejection(rejectionReason(err))
			_ = audit.LogEvent(ctx, "ledger.transfer.rejected", map[string]any{
				"from":   from.DisplayName(),
				"to":     to.DisplayName(),
				"amount": amount.String(),
				"reason": err.Error(),
			})
			s.tryAgain(err)
			continue
		}

		s.metrics.RecordTransaction("transfer")
		s.metrics.SetBalance(h.Username, from.DisplayName(), from.Balance())
		s.metrics.SetBalance(h.Username, to.DisplayName(), to.Balance())
		_ = audit.LogEvent(ctx, "ledger.transfer.executed", map[string]any{
			"from":   from.DisplayName(),
			"to":     to.DisplayName(),
			"amount": amount.String(),
		})
		fmt.Fprintln(s.out, statement)
		return nil
	}
}

func (s *Session) withdraw(ctx context.Context, h *holder.Holder) error {
	acc, err := s.selectAccount(h, "Which personal account would you like to withdraw money from?")
	if err != nil {
		return err
	}

	for {
		fmt.Fprintln(s.out, "How much money would you like to withdraw?")
		amount, err := s.readAmount()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return err
			}
			s.tryAgain(err)
			continue
		}

		// The engine negates unconditionally; positivity and funds are
		// this layer's responsibility.
		if !s.engine.IsPositive(amount) {
			s.metrics.RecordRejection("amount_not_positive")
			s.tryAgain(ledger.ErrAmountNotPositive)
			continue
		}
		if !s.engine.HasSufficientFunds(acc, amount) {
			s.metrics.RecordRejection("insufficient_funds")
			s.tryAgain(ledger.ErrInsufficientFunds)
			continue
		}

		statement := s.engine.Withdraw(acc, amount)
		s.metrics.RecordTransaction("withdraw")
		s.metrics.SetBalance(h.Username, acc.DisplayName(), acc.Balance())
		_ = audit.LogEvent(ctx, "ledger.withdraw.executed", map[string]any{
			"account": acc.DisplayName(),
			"amount":  amount.String(),
		})
		fmt.Fprintln(s.out, statement)
		return nil
	}
}

func (s *Session) deposit(ctx context.Context, h *holder.Holder) error {
	acc, err := s.selectAccount(h, "Which personal account would you like to deposit money to?")
	if err != nil {
		return err
	}

	for {
		fmt.Fprintln(s.out, "How much money would you like to deposit?")
		amount, err := s.readAmount()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return err
			}
			s.tryAgain(err)
			continue
		}

		if !s.engine.IsPositive(amount) {
			s.metrics.RecordRejection("amount_not_positive")
			s.tryAgain(ledger.ErrAmountNotPositive)
			continue
		}

		statement := s.engine.Deposit(acc, amount)
		s.metrics.RecordTransaction("deposit")
		s.metrics.SetBalance(h.Username, acc.DisplayName(), acc.Balance())
		_ = audit.LogEvent(ctx, "ledger.deposit.executed", map[string]any{
			"account": acc.DisplayName(),
			"amount":  amount.String(),
		})
		fmt.Fprintln(s.out, statement)
		return nil
	}
}

func (s *Session) viewHistory(h *holder.Holder) error {
	acc, err := s.selectAccount(h, "Which personal account would you like to view?")
	if err != nil {
		return err
	}
	s.printDetail(acc.Detail())
	return nil
}

// selectAccount keeps prompting until a valid 1-based index arrives.
func (s *Session) selectAccount(h *holder.Holder, prompt string) (*ledger.Account, error) {
	for {
		s.printAccounts(h)
		fmt.Fprintln(s.out, prompt)
		idx, err := s.readInt()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, err
			}
			s.tryAgain(ErrInvalidSelection)
			continue
		}
		acc, err := s.accountAt(h, idx)
		if err != nil {
			s.tryAgain(err)
			continue
		}
		return acc, nil
	}
}

func (s *Session) accountAt(h *holder.Holder, idx int) (*ledger.Account, error) {
	accounts := h.Accounts()
	if idx < 1 || idx > len(accounts) {
		return nil, ErrInvalidSelection
	}
	return accounts[idx-1], nil
}

func (s *Session) printAccounts(h *holder.Holder) {
	fmt.Fprintln(s.out, "Personal Accounts:")
	for i, sum := range h.Summaries() {
		fmt.Fprintf(s.out, "\t%d) %s\n\t\t%s\n", i+1, sum.DisplayName, formatBalance(sum.Balance))
	}
}

func (s *Session) printDetail(d ledger.Detail) {
	fmt.Fprintf(s.out, "%s - %s\n", d.Name, lastSegment(d.DisplayID))
	fmt.Fprintf(s.out, "Balance: %s\n", formatBalance(d.Balance))
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Transactions:")
	for _, rec := range d.Records {
		fmt.Fprintf(s.out, "\t%s : %s : %s : %s : %s\n",
			rec.PostingDate, rec.Description, rec.Category,
			formatBalance(rec.Amount), formatBalance(rec.Balance))
	}
}

func (s *Session) tryAgain(err error) {
	fmt.Fprintf(s.out, "ERROR: %s. Try again.\n", capitalize(err.Error()))
}

func (s *Session) readToken() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.in.Text(), nil
}

func (s *Session) readInt() (int, error) {
	tok, err := s.readToken()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, ErrInvalidSelection
	}
	return n, nil
}

func (s *Session) readAmount() (decimal.Decimal, error) {
	tok, err := s.readToken()
	if err != nil {
		return decimal.Decimal{}, err
	}
	d, err := decimal.NewFromString(tok)
	if err != nil {
		return decimal.Decimal{}, errors.New("invalid amount")
	}
	return d, nil
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ledger.ErrAmountNotPositive):
		return "amount_not_positive"
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return "insufficient_funds"
	default:
		return "other"
	}
}
