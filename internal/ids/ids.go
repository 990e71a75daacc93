package ids

import (
	"fmt"
	mathrand "math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(mathrand.New(mathrand.NewSource(time.Now().UnixNano())), 0)
)

// New returns a lexicographically sortable identifier suitable for
// transaction record IDs.
func New() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// confirmationBound is exclusive: confirmation numbers are drawn from
// [0, 10^10) and rendered as exactly ten digits.
const confirmationBound = int64(10_000_000_000)

// Confirmations draws display-only transfer confirmation numbers. No
// collision detection and no cryptographic guarantee; ten zero-padded
// digits is all callers rely on.
type Confirmations struct {
	mu   sync.Mutex
	rand *mathrand.Rand
}

// NewConfirmations returns a source seeded from the wall clock.
func NewConfirmations() *Confirmations {
	return NewConfirmationsFrom(mathrand.New(mathrand.NewSource(time.Now().UnixNano())))
}

// NewConfirmationsFrom builds a source over the given generator. Tests pass
// a deterministic one.
func NewConfirmationsFrom(r *mathrand.Rand) *Confirmations {
	return &Confirmations{rand: r}
}

// Next returns the next confirmation number as a fixed ten-digit string,
// left-padded with zeros.
func (c *Confirmations) Next() string {
	c.mu.Lock()
	n := c.rand.Int63n(confirmationBound)
	c.mu.Unlock()
	return fmt.Sprintf("%010d", n)
}
