package duration

import (
	"testing"
	"time"
)

func TestCalculate(t *testing.T) {
	created := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("closed pull request", func(t *testing.T) {
		closed := time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)
		// now must not influence a closed PR
		got := Calculate(created, &closed, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))

		if got.Days != 2 {
			t.Errorf("Days = %d, want 2", got.Days)
		}
		if got.Elapsed != 50*time.Hour {
			t.Errorf("Elapsed = %v, want 50h", got.Elapsed)
		}
		if got.CloseLabel != "2024-06-03" {
			t.Errorf("CloseLabel = %q, want %q", got.CloseLabel, "2024-06-03")
		}
		if got.Human != "2 days" {
			t.Errorf("Human = %q, want %q", got.Human, "2 days")
		}
	})

	t.Run("open pull request uses now", func(t *testing.T) {
		now := time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC)
		got := Calculate(created, nil, now)

		if got.Days != 4 {
			t.Errorf("Days = %d, want 4", got.Days)
		}
		if got.CloseLabel != StillOpen {
			t.Errorf("CloseLabel = %q, want %q", got.CloseLabel, StillOpen)
		}
	})

	t.Run("same now gives same answer", func(t *testing.T) {
		now := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
		a := Calculate(created, nil, now)
		b := Calculate(created, nil, now)
		if a != b {
			t.Errorf("Calculate not deterministic: %+v != %+v", a, b)
		}
	})

	t.Run("partial day floors", func(t *testing.T) {
		now := created.Add(47*time.Hour + 59*time.Minute)
		if got := Calculate(created, nil, now).Days; got != 1 {
			t.Errorf("Days = %d, want 1", got)
		}
	})

	t.Run("sub-second precision is ignored", func(t *testing.T) {
		now := created.Add(24*time.Hour - 500*time.Millisecond)
		createdFrac := created.Add(-300 * time.Millisecond)
		// truncation: 2024-06-01T09:59:59 -> 2024-06-02T09:59:59 is exactly one day
		if got := Calculate(createdFrac, nil, now).Days; got != 1 {
			t.Errorf("Days = %d, want 1", got)
		}
	})

	t.Run("now before creation clamps to zero", func(t *testing.T) {
		got := Calculate(created, nil, created.Add(-time.Hour))
		if got.Days != 0 || got.Elapsed != 0 || got.Human != "Same day" {
			t.Errorf("got %+v, want zero elapsed and Same day", got)
		}
	})

	t.Run("close label uses UTC date", func(t *testing.T) {
		loc := time.FixedZone("UTC-8", -8*60*60)
		closed := time.Date(2024, 6, 3, 20, 0, 0, 0, loc) // 2024-06-04 04:00 UTC
		if got := Calculate(created, &closed, time.Time{}).CloseLabel; got != "2024-06-04" {
			t.Errorf("CloseLabel = %q, want %q", got, "2024-06-04")
		}
	})
}

func TestHumanize(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{0, "Same day"},
		{1, "1 day"},
		{2, "2 days"},
		{6, "6 days"},
		{7, "1 week"},
		{8, "1 week, 1 day"},
		{10, "1 week, 3 days"},
		{14, "2 weeks"},
		{15, "2 weeks, 1 day"},
		{29, "4 weeks, 1 day"},
		{30, "1 month"},
		{31, "1 month, 1 day"},
		{45, "1 month, 15 days"},
		{60, "2 months"},
		{61, "2 months, 1 day"},
		{365, "12 months, 5 days"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Humanize(tt.days); got != tt.want {
				t.Errorf("Humanize(%d) = %q, want %q", tt.days, got, tt.want)
			}
		})
	}
}

func TestParseBound(t *testing.T) {
	now := time.Date(2024, 6, 30, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"", "", false},
		{"2024-06-01", "2024-06-01", false},
		{"1d", "2024-06-29", false},
		{"1w", "2024-06-23", false},
		{"30d", "2024-05-31", false},
		{"1mo", "2024-05-31", false},
		{"1y", "2023-07-01", false},
		{"2024/06/01", "", true},
		{"2024-13-01", "", true},
		{"invalid", "", true},
		{"5x", "", true},
		{"-1d", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBound(tt.input, now)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseBound(%q) expected error, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseBound(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseBound(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
