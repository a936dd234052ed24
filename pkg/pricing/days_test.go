package pricing

import (
	"errors"
	"testing"
	"time"
)

func ts(s string) time.Time {
	t, err := time.Parse("2006-01-02T15:04", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDays(t *testing.T) {
	tests := []struct {
		name    string
		pickup  string
		dropoff string
		policy  DayCountPolicy
		want    int
	}{
		{"same instant bills one day", "2024-06-01T09:00", "2024-06-01T09:00", DayCountCeil, 1},
		{"same day later hour", "2024-06-01T09:00", "2024-06-01T18:00", DayCountCeil, 1},
		{"exactly 24h", "2024-06-01T09:00", "2024-06-02T09:00", DayCountCeil, 1},
		{"25h rounds up", "2024-06-01T09:00", "2024-06-02T10:00", DayCountCeil, 2},
		{"48h exactly", "2024-06-01T09:00", "2024-06-03T09:00", DayCountCeil, 2},
		{"23h stays one day", "2024-06-01T09:00", "2024-06-02T08:00", DayCountCeil, 1},

		{"inclusive same instant", "2024-06-01T09:00", "2024-06-01T09:00", DayCountInclusive, 1},
		{"inclusive 23h", "2024-06-01T09:00", "2024-06-02T08:00", DayCountInclusive, 1},
		{"inclusive 25h", "2024-06-01T09:00", "2024-06-02T10:00", DayCountInclusive, 2},
		{"inclusive 48h adds a day", "2024-06-01T09:00", "2024-06-03T09:00", DayCountInclusive, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Days(ts(tt.pickup), ts(tt.dropoff), tt.policy)
			if err != nil {
				t.Fatalf("Days() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Days() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDays_InvalidRange(t *testing.T) {
	_, err := Days(ts("2024-06-03T09:00"), ts("2024-06-01T09:00"), DayCountCeil)
	if !errors.Is(err, ErrInvalidDateRange) {
		t.Errorf("expected ErrInvalidDateRange, got %v", err)
	}

	_, err = Days(time.Time{}, ts("2024-06-01T09:00"), DayCountCeil)
	if !errors.Is(err, ErrInvalidDateRange) {
		t.Errorf("expected ErrInvalidDateRange for missing pickup, got %v", err)
	}
}

func TestDays_Monotonic(t *testing.T) {
	pickup := ts("2024-06-01T09:00")
	prev := 0
	for hours := 0; hours <= 96; hours++ {
		got, err := Days(pickup, pickup.Add(time.Duration(hours)*time.Hour), DayCountCeil)
		if err != nil {
			t.Fatalf("Days() error at %dh: %v", hours, err)
		}
		if got < prev {
			t.Fatalf("day count dropped from %d to %d at %dh", prev, got, hours)
		}
		if got < 1 {
			t.Fatalf("day count %d below minimum at %dh", got, hours)
		}
		prev = got
	}
}

func TestParseDayCountPolicy(t *testing.T) {
	if ParseDayCountPolicy("inclusive") != DayCountInclusive {
		t.Error("inclusive not recognised")
	}
	if ParseDayCountPolicy("ceil") != DayCountCeil {
		t.Error("ceil not recognised")
	}
	if ParseDayCountPolicy("") != DayCountCeil {
		t.Error("default should be ceil")
	}
}
