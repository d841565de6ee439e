// Package tempvar implements the ten numbered temporary string slots of
// spec.md §4.H: def, use and inc, plus the shared "_N" argument parsing
// rule.
package tempvar

import (
	"strconv"
	"strings"

	"github.com/vippsas/sqltab/internal/numfmt"
	"github.com/vippsas/sqltab/internal/sqltaberr"
)

const slotCount = 10

// Store is the fixed array of 10 slots, each either empty or an owned
// byte string.
type Store struct {
	values [slotCount][]byte
	filled [slotCount]bool
}

// NewStore returns a store with all slots empty.
func NewStore() *Store {
	return &Store{}
}

// ParseSlotIndex strips the leading "_" sigil from arg and parses the
// remainder as an integer in 0..=9.
func ParseSlotIndex(arg string) (int, error) {
	arg = strings.TrimSpace(arg)
	if len(arg) < 2 || arg[0] != '_' {
		return 0, sqltaberr.New(sqltaberr.ExitBadArgument, "tempvar.ParseSlotIndex", "expected _N")
	}
	n, err := strconv.Atoi(arg[1:])
	if err != nil || n < 0 || n > 9 {
		return 0, sqltaberr.New(sqltaberr.ExitBadArgument, "tempvar.ParseSlotIndex", "slot index must be 0..9")
	}
	return n, nil
}

// Def copies value into slot idx.
func (s *Store) Def(idx int, value []byte) {
	s.values[idx] = append([]byte(nil), value...)
	s.filled[idx] = true
}

// Use returns slot idx's value and whether it has ever been set.
func (s *Store) Use(idx int) ([]byte, bool) {
	if !s.filled[idx] {
		return nil, false
	}
	return s.values[idx], true
}

// Inc sets slot idx to "1" if it is empty or non-numeric; otherwise it
// parses the slot, adds 1.0, and writes the result back, formatted as
// an integer when the result has no fractional part.
func (s *Store) Inc(idx int) {
	if !s.filled[idx] {
		s.Def(idx, []byte("1"))
		return
	}
	v, ok := numfmt.Parse(string(s.values[idx]))
	if !ok {
		s.Def(idx, []byte("1"))
		return
	}
	s.Def(idx, []byte(numfmt.Format(v+1.0)))
}
