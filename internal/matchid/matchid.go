// Package matchid generates short, time-ordered match identifiers for
// logs and feed messages.
package matchid

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"time"
)

// Crockford's base32 alphabet, lowercased.
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length of a match ID in characters. 16 characters carry 80 bits: a
// 40-bit millisecond timestamp followed by 40 random bits, so IDs sort
// roughly by creation time.
const Length = 16

// Generator produces match IDs. The zero value is not usable; use
// NewGenerator. Time source and randomness are injectable for tests.
type Generator struct {
	now  func() time.Time
	rand io.Reader
}

// NewGenerator returns a generator backed by the wall clock and
// crypto/rand.
func NewGenerator() *Generator {
	return &Generator{now: time.Now, rand: rand.Reader}
}

// NewGeneratorWith returns a generator with explicit time and randomness
// sources for deterministic tests.
func NewGeneratorWith(now func() time.Time, r io.Reader) *Generator {
	return &Generator{now: now, rand: r}
}

// New generates a match ID using the package default generator.
func New() string {
	return NewGenerator().New()
}

// New generates a fresh match ID.
func (g *Generator) New() string {
	var buf [10]byte

	ms := uint64(g.now().UnixMilli()) & ((1 << 40) - 1)
	buf[0] = byte(ms >> 32)
	buf[1] = byte(ms >> 24)
	buf[2] = byte(ms >> 16)
	buf[3] = byte(ms >> 8)
	buf[4] = byte(ms)

	if _, err := io.ReadFull(g.rand, buf[5:]); err != nil {
		panic("matchid: failed to read random bytes: " + err.Error())
	}

	return encode(buf)
}

// encode packs 10 bytes into 16 base32 characters, 5 bits at a time.
func encode(b [10]byte) string {
	var out [Length]byte
	var acc uint
	var nbits int
	j := 0
	for _, by := range b {
		acc = acc<<8 | uint(by)
		nbits += 8
		for nbits >= 5 {
			nbits -= 5
			out[j] = alphabet[(acc>>uint(nbits))&0x1f]
			j++
		}
	}
	return string(out[:])
}

// Validate reports whether id is a well-formed match ID.
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("match ID must be exactly %d characters, got %d", Length, len(id))
	}
	for i, c := range id {
		if !strings.ContainsRune(alphabet, c) {
			return fmt.Errorf("invalid character %q at position %d", c, i)
		}
	}
	return nil
}
