package tally

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestInitial_AllCatalogStatsAtZero(t *testing.T) {
	record := Initial()
	if len(record) != 20 {
		t.Fatalf("expected 20 stats, got %d", len(record))
	}
	for _, name := range StatNames() {
		if got := record.Get(name); got != 0 {
			t.Fatalf("expected %s=0, got %d", name, got)
		}
	}
}

func TestRecord_Get_PanicsOnMissingStat(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for stat outside record")
		}
	}()

	Record{StatShots: 1}.Get(StatCorners)
}

func TestRecord_IncrementThenDecrementIsLocal(t *testing.T) {
	before := Initial()
	before[StatCorners] = 4

	up, err := before.Incremented(StatShots)
	if err != nil {
		t.Fatalf("increment: %v", err)
	}
	down, err := up.Decremented(StatShots)
	if err != nil {
		t.Fatalf("decrement: %v", err)
	}

	if !down.Equal(before) {
		t.Fatalf("expected record restored, got %+v", down)
	}
	if before.Get(StatShots) != 0 {
		t.Fatalf("receiver must stay unchanged, got shots=%d", before.Get(StatShots))
	}
}

func TestRecord_DecrementFloorsAtZero(t *testing.T) {
	record := Initial()

	got, err := record.Decremented(StatOffsides)
	if err != nil {
		t.Fatalf("decrement: %v", err)
	}
	if got.Get(StatOffsides) != 0 {
		t.Fatalf("expected offsides=0, got %d", got.Get(StatOffsides))
	}
}

func TestRecord_IncrementSaturates(t *testing.T) {
	record := Initial()
	record[StatShots] = math.MaxInt64

	got, err := record.Incremented(StatShots)
	if err != nil {
		t.Fatalf("increment: %v", err)
	}
	if got.Get(StatShots) != math.MaxInt64 {
		t.Fatalf("expected saturated value, got %d", got.Get(StatShots))
	}
}

func TestRecord_RandomSequencesNeverGoNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	names := StatNames()
	record := Initial()

	for i := 0; i < 5000; i++ {
		name := names[rng.Intn(len(names))]
		var err error
		if rng.Intn(3) == 0 {
			record, err = record.Incremented(name)
		} else {
			record, err = record.Decremented(name)
		}
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if record.Get(name) < 0 {
			t.Fatalf("step %d: %s went negative", i, name)
		}
	}
}

func TestRecord_MutationErrors(t *testing.T) {
	tests := []struct {
		name    string
		record  Record
		stat    StatName
		wantErr error
	}{
		{name: "unknown stat", record: Initial(), stat: StatName("goals"), wantErr: ErrUnknownStat},
		{name: "stat missing from loaded record", record: Record{StatShots: 2}, stat: StatCorners, wantErr: ErrStatMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.record.Incremented(tt.stat); !errors.Is(err, tt.wantErr) {
				t.Fatalf("increment: expected %v, got %v", tt.wantErr, err)
			}
			if _, err := tt.record.Decremented(tt.stat); !errors.Is(err, tt.wantErr) {
				t.Fatalf("decrement: expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestRecord_Equal(t *testing.T) {
	a := Initial()
	b := Initial()
	if !a.Equal(b) {
		t.Fatalf("expected fresh records to be equal")
	}

	b[StatCrossesSuccessful] = 1
	if a.Equal(b) {
		t.Fatalf("expected records with different values to differ")
	}

	delete(b, StatCrossesSuccessful)
	if a.Equal(b) {
		t.Fatalf("expected records with different key sets to differ")
	}
}
