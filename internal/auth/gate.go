// Package auth is the authentication gate in front of the ledger: it maps
// credentials to an account holder and verifies the second-factor PIN.
// The ledger core never sees credentials; callers must pass this gate
// before invoking ledger operations.
package auth

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/time/rate"

	"pollywolly.org/internal/holder"
)

var (
	ErrInvalidCredentials = errors.New("invalid username/password")
	ErrInvalidPIN         = errors.New("incorrect pin")
	ErrTooManyAttempts    = errors.New("too many login attempts")
)

// Gate verifies logins against the holder directory. Failed attempts are
// throttled per username so the interactive loop cannot be brute-forced.
type Gate struct {
	store holder.Store

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// NewGate builds a gate over the directory with the default attempt
// budget: five immediate tries per username, refilling at one per second.
func NewGate(store holder.Store) *Gate {
	return &Gate{
		store:    store,
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(1),
		burst:    5,
	}
}

func (g *Gate) limiter(username string) *rate.Limiter {
	g.mu.Lock()
	defer g.mu.Unlock()
	lim, ok := g.limiters[username]
	if !ok {
		lim = rate.NewLimiter(g.limit, g.burst)
		g.limiters[username] = lim
	}
	return lim
}

// Login resolves username to a holder and checks the password hash.
// Unknown usernames and wrong passwords are indistinguishable to the
// caller.
func (g *Gate) Login(ctx context.Context, username, password string) (*holder.Holder, error) {
	if !g.limiter(username).Allow() {
		return nil, ErrTooManyAttempts
	}
	h, err := g.store.FindByUsername(ctx, username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := verifySecret(h.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return h, nil
}

// VerifyPIN checks the holder's second factor.
func (g *Gate) VerifyPIN(h *holder.Holder, pin string) error {
	if err := verifySecret(h.PINHash, pin); err != nil {
		return ErrInvalidPIN
	}
	return nil
}
