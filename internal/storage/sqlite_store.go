package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/sanctum/internal/logger"
	"github.com/julianstephens/sanctum/internal/migration"
	"github.com/julianstephens/sanctum/internal/models"
)

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) open() error {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	s.db = db
	return nil
}

func (s *SQLiteStore) runner() (*migration.Runner, error) {
	sub, err := fs.Sub(migrationFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to access migrations: %w", err)
	}
	return migration.NewRunner(s.db, sub), nil
}

func (s *SQLiteStore) Init() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if s.db == nil {
		if err := s.open(); err != nil {
			return err
		}
	}

	r, err := s.runner()
	if err != nil {
		return err
	}
	if _, err := r.Apply(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return ErrNotInitialized
	}
	if err := s.open(); err != nil {
		return err
	}

	r, err := s.runner()
	if err != nil {
		return err
	}
	return r.Validate()
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

// replaceAll clears tables and runs fill inside one transaction
func (s *SQLiteStore) replaceAll(tables []string, fill func(tx *sql.Tx) error) error {
	if s.db == nil {
		return ErrNotLoaded
	}
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	for _, table := range tables {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	if err := fill(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

func (s *SQLiteStore) LoadDays() (models.DaysState, error) {
	if s.db == nil {
		return nil, ErrNotLoaded
	}
	rows, err := s.db.Query("SELECT date, completed_habit_ids, note, mood, training FROM days")
	if err != nil {
		return nil, fmt.Errorf("failed to query days: %w", err)
	}
	defer rows.Close()

	days := models.DaysState{}
	for rows.Next() {
		var (
			entry    models.DayEntry
			habits   string
			mood     string
			training sql.NullString
		)
		if err := rows.Scan(&entry.Date, &habits, &entry.Note, &mood, &training); err != nil {
			return nil, fmt.Errorf("failed to scan day: %w", err)
		}
		if err := json.Unmarshal([]byte(habits), &entry.CompletedHabitIDs); err != nil {
			logger.Warn("malformed habit list, treating as empty", "date", entry.Date, "err", err)
		}
		entry.Mood = models.Mood(mood)
		if training.Valid && training.String != "" {
			entry.Training = &models.TrainingLog{}
			if err := json.Unmarshal([]byte(training.String), entry.Training); err != nil {
				logger.Warn("malformed training log, dropping it", "date", entry.Date, "err", err)
				entry.Training = nil
			}
		}
		days[entry.Date] = entry
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read days: %w", err)
	}
	return sanitizeDays(days), nil
}

func (s *SQLiteStore) SaveDays(days models.DaysState) error {
	return s.replaceAll([]string{"days"}, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare("INSERT INTO days (date, completed_habit_ids, note, mood, training) VALUES (?, ?, ?, ?, ?)")
		if err != nil {
			return fmt.Errorf("failed to prepare day insert: %w", err)
		}
		defer stmt.Close()

		for date, entry := range days {
			habits, err := json.Marshal(dedupe(entry.CompletedHabitIDs))
			if err != nil {
				return fmt.Errorf("failed to marshal habits for %s: %w", date, err)
			}
			var training sql.NullString
			if entry.Training != nil {
				data, err := json.Marshal(entry.Training)
				if err != nil {
					return fmt.Errorf("failed to marshal training for %s: %w", date, err)
				}
				training = sql.NullString{String: string(data), Valid: true}
			}
			if _, err := stmt.Exec(date, string(habits), entry.Note, string(entry.Mood), training); err != nil {
				return fmt.Errorf("failed to save day %s: %w", date, err)
			}
		}
		return nil
	})
}

func (s *SQLiteStore) LoadQuests() (models.QuestState, error) {
	if s.db == nil {
		return models.QuestState{}, ErrNotLoaded
	}

	var state models.QuestState
	rows, err := s.db.Query(`SELECT id, title, slug, status, start_date, duration_days, intro_text,
		epilogues, quest_type, archetype, custom_prompt, label_vigor, label_resolve, label_corruption
		FROM quests ORDER BY position`)
	if err != nil {
		return state, fmt.Errorf("failed to query quests: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var q models.Quest
		var epilogues string
		if err := rows.Scan(&q.ID, &q.Title, &q.Slug, &q.Status, &q.StartDate, &q.DurationDays, &q.IntroText,
			&epilogues, &q.QuestType, &q.Archetype, &q.CustomPrompt,
			&q.Labels.Vigor, &q.Labels.Resolve, &q.Labels.Corruption); err != nil {
			return state, fmt.Errorf("failed to scan quest: %w", err)
		}
		if err := json.Unmarshal([]byte(epilogues), &q.Epilogues); err != nil {
			logger.Warn("malformed quest epilogues", "quest", q.ID, "err", err)
		}
		if len(q.Epilogues) == 0 {
			q.Epilogues = nil
		}
		state.Quests = append(state.Quests, q)
	}
	if err := rows.Err(); err != nil {
		return state, fmt.Errorf("failed to read quests: %w", err)
	}

	dayRows, err := s.db.Query(`SELECT quest_id, date, day_index, status, vigor_delta, resolve_delta,
		corruption_delta, narrative FROM quest_days ORDER BY position`)
	if err != nil {
		return state, fmt.Errorf("failed to query quest days: %w", err)
	}
	defer dayRows.Close()

	for dayRows.Next() {
		var d models.QuestDay
		if err := dayRows.Scan(&d.QuestID, &d.Date, &d.DayIndex, &d.Status, &d.VigorDelta, &d.ResolveDelta,
			&d.CorruptionDelta, &d.AutogeneratedNarrative); err != nil {
			return state, fmt.Errorf("failed to scan quest day: %w", err)
		}
		state.QuestDays = append(state.QuestDays, d)
	}
	if err := dayRows.Err(); err != nil {
		return state, fmt.Errorf("failed to read quest days: %w", err)
	}
	return sanitizeQuests(state), nil
}

func (s *SQLiteStore) SaveQuests(state models.QuestState) error {
	return s.replaceAll([]string{"quest_days", "quests"}, func(tx *sql.Tx) error {
		for i, q := range state.Quests {
			epilogues, err := json.Marshal(q.Epilogues)
			if err != nil {
				return fmt.Errorf("failed to marshal epilogues for %s: %w", q.ID, err)
			}
			if q.Epilogues == nil {
				epilogues = []byte("[]")
			}
			_, err = tx.Exec(`INSERT INTO quests (id, position, title, slug, status, start_date, duration_days,
				intro_text, epilogues, quest_type, archetype, custom_prompt, label_vigor, label_resolve, label_corruption)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				q.ID, i, q.Title, q.Slug, string(q.Status), q.StartDate, q.DurationDays, q.IntroText,
				string(epilogues), string(q.QuestType), string(q.Archetype), q.CustomPrompt,
				q.Labels.Vigor, q.Labels.Resolve, q.Labels.Corruption)
			if err != nil {
				return fmt.Errorf("failed to save quest %s: %w", q.ID, err)
			}
		}
		for i, d := range state.QuestDays {
			_, err := tx.Exec(`INSERT INTO quest_days (quest_id, date, position, day_index, status, vigor_delta,
				resolve_delta, corruption_delta, narrative) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				d.QuestID, d.Date, i, d.DayIndex, string(d.Status), d.VigorDelta, d.ResolveDelta,
				d.CorruptionDelta, d.AutogeneratedNarrative)
			if err != nil {
				return fmt.Errorf("failed to save quest day %s/%s: %w", d.QuestID, d.Date, err)
			}
		}
		return nil
	})
}

func (s *SQLiteStore) LoadTasks() (models.TaskBoard, error) {
	if s.db == nil {
		return nil, ErrNotLoaded
	}
	rows, err := s.db.Query("SELECT id, date, label, completed FROM daily_tasks ORDER BY date, position")
	if err != nil {
		return nil, fmt.Errorf("failed to query daily tasks: %w", err)
	}
	defer rows.Close()

	board := models.TaskBoard{}
	for rows.Next() {
		var (
			task models.DailyTask
			date string
		)
		if err := rows.Scan(&task.ID, &date, &task.Label, &task.Completed); err != nil {
			return nil, fmt.Errorf("failed to scan daily task: %w", err)
		}
		board[date] = append(board[date], task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read daily tasks: %w", err)
	}
	return sanitizeTasks(board), nil
}

func (s *SQLiteStore) SaveTasks(board models.TaskBoard) error {
	return s.replaceAll([]string{"daily_tasks"}, func(tx *sql.Tx) error {
		for date, tasks := range board {
			for i, task := range tasks {
				_, err := tx.Exec("INSERT INTO daily_tasks (id, date, position, label, completed) VALUES (?, ?, ?, ?, ?)",
					task.ID, date, i, task.Label, task.Completed)
				if err != nil {
					return fmt.Errorf("failed to save task %s: %w", task.ID, err)
				}
			}
		}
		return nil
	})
}
