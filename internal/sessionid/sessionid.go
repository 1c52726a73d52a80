// Package sessionid generates sortable identifiers for table sessions: a
// UUIDv7 written as 26 characters of Crockford base32, so IDs sort by the
// time they were made.
package sessionid

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	rand "math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/coder/quartz"
)

// Length is the number of characters in an ID
const Length = 26

// Crockford's base32, in ascending byte order
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// ErrInvalid is wrapped by every Validate failure
var ErrInvalid = errors.New("invalid session id")

// Generator creates session IDs. It is safe for concurrent use.
type Generator struct {
	mu    sync.Mutex
	clock quartz.Clock
	rng   *rand.Rand // nil reads crypto/rand
}

// NewGenerator creates a generator. A nil clock uses the wall clock and a
// nil rng uses crypto/rand; tests pass both for repeatable IDs.
func NewGenerator(clock quartz.Clock, rng *rand.Rand) *Generator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Generator{clock: clock, rng: rng}
}

// Generate returns a new ID
func (g *Generator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	var id [16]byte

	// 48-bit millisecond timestamp
	ms := uint64(g.clock.Now().UnixMilli())
	for i := range 6 {
		id[i] = byte(ms >> (40 - 8*i))
	}

	if g.rng != nil {
		binary.BigEndian.PutUint16(id[6:8], uint16(g.rng.Uint32()))
		binary.BigEndian.PutUint64(id[8:], g.rng.Uint64())
	} else if _, err := crand.Read(id[6:]); err != nil {
		panic("failed to generate random bytes: " + err.Error())
	}

	id[6] = (id[6] & 0x0f) | 0x70 // version 7
	id[8] = (id[8] & 0x3f) | 0x80 // variant 10

	return encode(id)
}

// encode writes the 128 bits right-aligned in 130, so the first character
// is always 0-7.
func encode(id [16]byte) string {
	hi := binary.BigEndian.Uint64(id[:8])
	lo := binary.BigEndian.Uint64(id[8:])

	var out [Length]byte
	for i := Length - 1; i >= 0; i-- {
		out[i] = alphabet[lo&0x1f]
		lo = lo>>5 | hi<<59
		hi >>= 5
	}
	return string(out[:])
}

// Validate checks that id is 26 base32 characters encoding at most 128 bits
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("%w: must be exactly %d characters, got %d", ErrInvalid, Length, len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("%w: first character must be 0-7, got %c", ErrInvalid, id[0])
	}
	for i, c := range id {
		if !strings.ContainsRune(alphabet, c) {
			return fmt.Errorf("%w: invalid character %c at position %d", ErrInvalid, c, i)
		}
	}
	return nil
}

// Time returns the moment an ID was generated, to the millisecond
func Time(id string) (time.Time, error) {
	if err := Validate(id); err != nil {
		return time.Time{}, err
	}

	// Two padding bits plus the 48-bit timestamp fill the first 10 characters
	var ms int64
	for _, c := range id[:10] {
		ms = ms<<5 | int64(strings.IndexRune(alphabet, c))
	}
	return time.UnixMilli(ms), nil
}
