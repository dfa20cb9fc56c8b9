package index

import (
	"errors"
	"testing"
)

func TestNorm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		i, n int
		want int
	}{
		{"positive passes through", 2, 4, 2},
		{"zero passes through", 0, 4, 0},
		{"minus one is last", -1, 4, 3},
		{"minus n is first", -4, 4, 0},
		{"beyond front stays negative", -5, 4, -1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Norm(tt.i, tt.n); got != tt.want {
				t.Errorf("Norm(%d, %d) = %d, want %d", tt.i, tt.n, got, tt.want)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		i, top int
		ok     bool
	}{
		{"first", 0, 3, true},
		{"last", 3, 3, true},
		{"past end", 4, 3, false},
		{"negative", -1, 3, false},
		{"empty list", 0, -1, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Check(tt.i, tt.top)
			if tt.ok && err != nil {
				t.Errorf("Check(%d, %d) = %v, want nil", tt.i, tt.top, err)
			}

			if !tt.ok && !errors.Is(err, ErrOutOfRange) {
				t.Errorf("Check(%d, %d) = %v, want ErrOutOfRange", tt.i, tt.top, err)
			}
		})
	}
}

func TestRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		lo, hi, top    int
		wantLo, wantHi int
		wantErr        error
	}{
		{"plain", 1, 3, 3, 1, 3, nil},
		{"negative bounds", -3, -1, 3, 1, 3, nil},
		{"equal bounds", 2, 2, 3, 0, 0, ErrBadRange},
		{"reversed", 3, 1, 3, 0, 0, ErrBadRange},
		{"hi past end", 0, 4, 3, 0, 0, ErrOutOfRange},
		{"lo past front", -5, 2, 3, 0, 0, ErrOutOfRange},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lo, hi, err := Range(tt.lo, tt.hi, tt.top)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Range(%d, %d, %d) error = %v, want %v", tt.lo, tt.hi, tt.top, err, tt.wantErr)
				}

				return
			}

			if err != nil {
				t.Fatalf("Range(%d, %d, %d) error = %v, want nil", tt.lo, tt.hi, tt.top, err)
			}

			if lo != tt.wantLo || hi != tt.wantHi {
				t.Errorf("Range(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tt.lo, tt.hi, tt.top, lo, hi, tt.wantLo, tt.wantHi)
			}
		})
	}
}
