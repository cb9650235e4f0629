package tally

import (
	"fmt"
	"math"
)

// Record maps stat names to counts for one team. Treat it as a value:
// mutating helpers return a new Record and leave the receiver untouched.
type Record map[StatName]int64

// Initial returns a record with every catalog stat at zero.
func Initial() Record {
	out := make(Record, len(statNames))
	for _, name := range statNames {
		out[name] = 0
	}
	return out
}

// Get returns the count for stat. Asking for a stat the record does not
// carry is a programmer error and panics.
func (r Record) Get(stat StatName) int64 {
	value, ok := r.Lookup(stat)
	if !ok {
		panic(fmt.Sprintf("tally: record has no stat %q", stat))
	}
	return value
}

func (r Record) Lookup(stat StatName) (int64, bool) {
	value, ok := r[stat]
	return value, ok
}

// Incremented returns a copy with stat raised by one. Counts saturate at
// math.MaxInt64 instead of wrapping negative.
func (r Record) Incremented(stat StatName) (Record, error) {
	value, err := r.mustHave(stat)
	if err != nil {
		return nil, err
	}

	out := r.Clone()
	if value < math.MaxInt64 {
		value++
	}
	out[stat] = value
	return out, nil
}

// Decremented returns a copy with stat lowered by one, floored at zero.
func (r Record) Decremented(stat StatName) (Record, error) {
	value, err := r.mustHave(stat)
	if err != nil {
		return nil, err
	}

	out := r.Clone()
	out[stat] = max(0, value-1)
	return out, nil
}

func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Equal reports key-for-key, value-for-value equality.
func (r Record) Equal(other Record) bool {
	if len(r) != len(other) {
		return false
	}
	for k, v := range r {
		ov, ok := other[k]
		if !ok || ov != v {
			return false
		}
	}
	return true
}

// Total sums every count in the record.
func (r Record) Total() int64 {
	var total int64
	for _, v := range r {
		total += v
	}
	return total
}

func (r Record) mustHave(stat StatName) (int64, error) {
	if !stat.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownStat, stat)
	}
	value, ok := r.Lookup(stat)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrStatMissing, stat)
	}
	return value, nil
}
