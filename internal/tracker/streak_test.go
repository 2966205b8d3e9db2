package tracker

import (
	"testing"

	"github.com/julianstephens/sanctum/internal/models"
)

func day(date string, ids ...string) models.DayEntry {
	if ids == nil {
		ids = []string{}
	}
	return models.DayEntry{Date: date, CompletedHabitIDs: ids}
}

func TestStreak(t *testing.T) {
	tests := []struct {
		name   string
		days   models.DaysState
		anchor string
		want   int
	}{
		{"no entries", models.DaysState{}, "2026-10-19", 0},
		{"anchor missing", models.DaysState{"2026-10-18": day("2026-10-18", "read")}, "2026-10-19", 0},
		{"anchor empty", models.DaysState{"2026-10-19": day("2026-10-19")}, "2026-10-19", 0},
		{
			name: "run ended by gap",
			days: models.DaysState{
				"2026-10-19": day("2026-10-19", "read"),
				"2026-10-18": day("2026-10-18", "read", "exercise"),
				"2026-10-17": day("2026-10-17", "relax"),
				"2026-10-15": day("2026-10-15", "read"),
			},
			anchor: "2026-10-19",
			want:   3,
		},
		{
			name: "run ended by empty day",
			days: models.DaysState{
				"2026-10-19": day("2026-10-19", "read"),
				"2026-10-18": day("2026-10-18"),
				"2026-10-17": day("2026-10-17", "read"),
			},
			anchor: "2026-10-19",
			want:   1,
		},
		{
			name: "crosses month and year",
			days: models.DaysState{
				"2026-01-01": day("2026-01-01", "read"),
				"2025-12-31": day("2025-12-31", "read"),
				"2025-12-30": day("2025-12-30", "read"),
			},
			anchor: "2026-01-01",
			want:   3,
		},
		{"invalid anchor", models.DaysState{"bogus": day("bogus", "read")}, "bogus", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Streak(tt.days, tt.anchor); got != tt.want {
				t.Errorf("Streak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStreak_LongRun(t *testing.T) {
	days := models.DaysState{}
	date := "2026-10-19"
	for i := 0; i < 400; i++ {
		days = ToggleHabit(days, date, "read")
		date = shift(date, -1)
	}
	if got := Streak(days, "2026-10-19"); got != 400 {
		t.Errorf("Streak() = %d, want 400", got)
	}
}

func TestWeeklyScore(t *testing.T) {
	if got := WeeklyScore(models.DaysState{}, "2026-10-19"); got != 0 {
		t.Errorf("empty week score = %d, want 0", got)
	}

	days := models.DaysState{
		"2026-10-18": day("2026-10-18", "a", "b", "c"), // previous Sunday, outside
		"2026-10-19": day("2026-10-19", "a", "b"),
		"2026-10-22": day("2026-10-22", "a"),
		"2026-10-25": day("2026-10-25", "a", "b", "c"), // Sunday, last day inside
		"2026-10-26": day("2026-10-26", "a"),           // next Monday, outside
	}
	if got := WeeklyScore(days, "2026-10-19"); got != 6 {
		t.Errorf("WeeklyScore() = %d, want 6", got)
	}
}

func TestLastNDays(t *testing.T) {
	days := models.DaysState{"2026-10-18": day("2026-10-18", "a", "b")}
	series := LastNDays(days, "2026-10-19", 7)
	if len(series) != 7 {
		t.Fatalf("expected 7 points, got %d", len(series))
	}
	if series[0].Date != "2026-10-13" || series[6].Date != "2026-10-19" {
		t.Errorf("unexpected range %s..%s", series[0].Date, series[6].Date)
	}
	if series[5].Count != 2 {
		t.Errorf("expected count 2 on 2026-10-18, got %d", series[5].Count)
	}
	if LastNDays(days, "2026-10-19", 0) != nil {
		t.Error("expected nil series for n=0")
	}
}
