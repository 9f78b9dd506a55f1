package journal

import (
	"errors"
	"testing"
	"time"
)

func TestClosest(t *testing.T) {
	tests := []struct {
		name   string
		dates  []string
		target string
		want   string
	}{
		{
			name:   "before first returns first",
			dates:  []string{"2024-01-01", "2024-01-10", "2024-01-20"},
			target: "2023-06-01",
			want:   "2024-01-01",
		},
		{
			name:   "after last returns last",
			dates:  []string{"2024-01-01", "2024-01-10", "2024-01-20"},
			target: "2025-01-01",
			want:   "2024-01-20",
		},
		{
			name:   "exact member",
			dates:  []string{"2024-01-01", "2024-01-10", "2024-01-20"},
			target: "2024-01-10",
			want:   "2024-01-10",
		},
		{
			name:   "nearer later neighbour",
			dates:  []string{"2024-01-01", "2024-01-10", "2024-01-20"},
			target: "2024-01-06",
			want:   "2024-01-10",
		},
		{
			name:   "nearer earlier neighbour",
			dates:  []string{"2024-01-01", "2024-01-10", "2024-01-20"},
			target: "2024-01-05",
			want:   "2024-01-01",
		},
		{
			name:   "exact tie returns older",
			dates:  []string{"2024-01-01", "2024-01-05"},
			target: "2024-01-03",
			want:   "2024-01-01",
		},
		{
			name:   "five day tie returns older",
			dates:  []string{"2024-06-10", "2024-06-20"},
			target: "2024-06-15",
			want:   "2024-06-10",
		},
		{
			name:   "single element",
			dates:  []string{"2024-01-01"},
			target: "2030-12-31",
			want:   "2024-01-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dates := make([]time.Time, len(tt.dates))
			for i, s := range tt.dates {
				dates[i] = mustDate(t, s)
			}

			got, err := Closest(dates, mustDate(t, tt.target))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Format(layoutISO) != tt.want {
				t.Errorf("Closest(%s) = %s, want %s", tt.target, got.Format(layoutISO), tt.want)
			}
		})
	}
}

func TestClosestEmpty(t *testing.T) {
	_, err := Closest(nil, time.Now())
	if !errors.Is(err, ErrNoEntries) {
		t.Errorf("expected ErrNoEntries, got %v", err)
	}
}

func TestClosestReturnsMember(t *testing.T) {
	dates := []time.Time{
		mustDate(t, "2022-03-04"),
		mustDate(t, "2023-07-19"),
		mustDate(t, "2024-11-02"),
	}

	for day := 0; day < 1200; day += 37 {
		target := mustDate(t, "2022-01-01").AddDate(0, 0, day)
		got, err := Closest(dates, target)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		member := false
		for _, d := range dates {
			if d.Equal(got) {
				member = true
			}
		}
		if !member {
			t.Fatalf("Closest(%s) = %s, not a member of the list",
				target.Format(layoutISO), got.Format(layoutISO))
		}
	}
}
