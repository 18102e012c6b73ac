package mathsheet

import (
	"errors"
	"testing"
)

func TestResolveSeed(t *testing.T) {
	t.Parallel()

	ptr := func(v int64) *int64 { return &v }

	tests := []struct {
		name string
		user *int64
		draw func(int64) int64
		want int64
	}{
		{name: "user value returned unchanged", user: ptr(42), want: 42},
		{name: "user value above generated range", user: ptr(12345678), want: 12345678},
		{name: "user value wins over draw", user: ptr(7), draw: func(int64) int64 { return 5 }, want: 7},
		{name: "lowest draw", draw: func(int64) int64 { return 0 }, want: MinWorksheetID},
		{name: "highest draw", draw: func(n int64) int64 { return n - 1 }, want: MaxWorksheetID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ResolveSeed(tt.user, tt.draw); got != tt.want {
				t.Errorf("ResolveSeed() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestResolveSeed_DrawSpan(t *testing.T) {
	t.Parallel()

	var span int64
	ResolveSeed(nil, func(n int64) int64 { span = n; return 0 })
	if span != 900000 {
		t.Errorf("draw called with n = %d, want 900000", span)
	}
}

func TestResolveSeed_DefaultDrawInRange(t *testing.T) {
	t.Parallel()

	for range 1000 {
		got := ResolveSeed(nil, nil)
		if got < MinWorksheetID || got > MaxWorksheetID {
			t.Fatalf("ResolveSeed(nil, nil) = %d, outside [%d, %d]", got, MinWorksheetID, MaxWorksheetID)
		}
	}
}

func TestValidateSeed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		seed    int64
		wantErr bool
	}{
		{seed: 1},
		{seed: 42},
		{seed: MaxWorksheetID},
		{seed: 0, wantErr: true},
		{seed: -5, wantErr: true},
	}
	for _, tt := range tests {
		err := ValidateSeed(tt.seed)
		if tt.wantErr != (err != nil) {
			t.Errorf("ValidateSeed(%d) = %v, wantErr %v", tt.seed, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrInvalidSeed) {
			t.Errorf("ValidateSeed(%d) = %v, want ErrInvalidSeed", tt.seed, err)
		}
	}
}
