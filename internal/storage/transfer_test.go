package storage

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/julianstephens/sanctum/internal/models"
)

func TestExportImport(t *testing.T) {
	days := models.DaysState{
		"2026-10-19": {Date: "2026-10-19", CompletedHabitIDs: []string{"exercise"}, Mood: models.MoodWavering},
	}
	var buf bytes.Buffer
	if err := ExportDays(&buf, days); err != nil {
		t.Fatalf("ExportDays() error = %v", err)
	}
	if !strings.Contains(buf.String(), "\n  \"2026-10-19\"") {
		t.Errorf("export is not indented: %s", buf.String())
	}

	got, err := ImportDays(&buf)
	if err != nil {
		t.Fatalf("ImportDays() error = %v", err)
	}
	if !reflect.DeepEqual(got, days) {
		t.Errorf("ImportDays() = %+v, want %+v", got, days)
	}
}

func TestImportNormalizes(t *testing.T) {
	in := `{"2026-10-19": {"completedHabitIds": ["a", "b", "a"], "mood": "unburdened"}}`
	got, err := ImportDays(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ImportDays() error = %v", err)
	}
	entry := got["2026-10-19"]
	if entry.Date != "2026-10-19" || !reflect.DeepEqual(entry.CompletedHabitIDs, []string{"a", "b"}) {
		t.Errorf("entry = %+v", entry)
	}
}

func TestImportRejectsMalformed(t *testing.T) {
	tests := map[string]string{
		"not json":      "{",
		"array":         `[]`,
		"null":          `null`,
		"bad date key":  `{"19-10-2026": {"completedHabitIds": []}}`,
		"unknown mood":  `{"2026-10-19": {"completedHabitIds": [], "mood": "giddy"}}`,
		"rpe too large": `{"2026-10-19": {"completedHabitIds": [], "training": {"run": {"rpe": 11, "metric": ""}}}}`,
		"lift rpe zero": `{"2026-10-19": {"completedHabitIds": [], "training": {"lifts": {"squat": {"rpe": 0, "metric": ""}}}}}`,
		"trailing data": `{"2026-10-19": {"completedHabitIds": ["a"]}} garbage{{{`,
		"second object": `{"2026-10-19": {"completedHabitIds": ["a"]}} {}`,
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ImportDays(strings.NewReader(in))
			if err == nil {
				t.Errorf("ImportDays() = %+v, want error", got)
			}
			if got != nil {
				t.Error("ImportDays() should return nothing on error")
			}
		})
	}
}
