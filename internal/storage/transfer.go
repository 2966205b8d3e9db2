package storage

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/julianstephens/sanctum/internal/models"
)

// ExportDays writes days as indented JSON keyed by date
func ExportDays(w io.Writer, days models.DaysState) error {
	if days == nil {
		days = models.DaysState{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(days); err != nil {
		return fmt.Errorf("failed to export days: %w", err)
	}
	return nil
}

// ImportDays parses an exported days object. Every key must be a valid date
// and every entry well formed; entries are normalized (date taken from the
// key, habit ids de-duplicated). Nothing is returned on error.
func ImportDays(r io.Reader) (models.DaysState, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read import file: %w", err)
	}
	// Unmarshal rejects trailing data after the object
	var raw map[string]models.DayEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid import file: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("invalid import file: expected an object keyed by date")
	}

	days, err := NormalizeDays(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid import file: %w", err)
	}
	return days, nil
}

// NormalizeDays validates every entry of raw and returns a normalized copy
func NormalizeDays(raw map[string]models.DayEntry) (models.DaysState, error) {
	days := make(models.DaysState, len(raw))
	for date, entry := range raw {
		if err := validateEntry(date, entry); err != nil {
			return nil, err
		}
		days[date] = normalizeEntry(date, entry)
	}
	return days, nil
}
