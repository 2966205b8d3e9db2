package quest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/sanctum/internal/constants"
	"github.com/julianstephens/sanctum/internal/models"
	"github.com/julianstephens/sanctum/internal/utils"
)

var (
	ErrQuestActive    = errors.New("a quest is already active")
	ErrNoActiveQuest  = errors.New("no active quest")
	ErrInvalidStatus  = errors.New("status must be SUCCESS, FAIL or SKIPPED")
	ErrInvalidOptions = errors.New("invalid quest options")
	ErrDateOutOfRange = errors.New("date is outside the quest")
)

// Overrides customizes a quest built from a template. Zero values keep the
// template's setting.
type Overrides struct {
	Title        string
	DurationDays int
	Archetype    models.QuestArchetype
	IntroText    string
	CustomPrompt string
}

func (o Overrides) validate() error {
	if o.DurationDays < 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidOptions)
	}
	if o.Archetype != "" && !o.Archetype.Valid() {
		return fmt.Errorf("%w: unknown archetype %q", ErrInvalidOptions, o.Archetype)
	}
	return nil
}

// NewFromTemplate builds an ACTIVE quest starting today
func NewFromTemplate(tmpl models.QuestTemplate, o Overrides, today string) (models.Quest, error) {
	if err := o.validate(); err != nil {
		return models.Quest{}, err
	}
	if !utils.ValidateDate(today) {
		return models.Quest{}, fmt.Errorf("%w: invalid start date %q", ErrInvalidOptions, today)
	}

	q := models.Quest{
		ID:           fmt.Sprintf("%s-%s-%s", tmpl.ID, today, strings.ReplaceAll(uuid.NewString(), "-", "")[:8]),
		Title:        tmpl.Title,
		Slug:         tmpl.Slug,
		Status:       models.QuestStatusActive,
		StartDate:    today,
		DurationDays: tmpl.DurationDays,
		IntroText:    tmpl.IntroText,
		QuestType:    tmpl.QuestType,
		Archetype:    tmpl.Archetype,
		CustomPrompt: tmpl.CustomPrompt,
		Labels: models.QuestLabels{
			Vigor:      constants.LabelVigor,
			Resolve:    constants.LabelResolve,
			Corruption: constants.LabelCorruption,
		},
	}
	if t := strings.TrimSpace(o.Title); t != "" {
		q.Title = t
	}
	if o.DurationDays > 0 {
		q.DurationDays = o.DurationDays
	}
	if o.Archetype != "" {
		q.Archetype = o.Archetype
	}
	if t := strings.TrimSpace(o.IntroText); t != "" {
		q.IntroText = t
	}
	if t := strings.TrimSpace(o.CustomPrompt); t != "" {
		q.CustomPrompt = t
	}
	if q.QuestType == "" {
		q.QuestType = models.QuestTypeManual
	}
	if !q.Archetype.Valid() {
		q.Archetype = models.ArchetypeCustom
	}
	if q.DurationDays <= 0 {
		return models.Quest{}, fmt.Errorf("%w: duration must be positive", ErrInvalidOptions)
	}
	return q, nil
}

// Active returns the first ACTIVE quest in state
func Active(state models.QuestState) (models.Quest, bool) {
	for _, q := range state.Quests {
		if q.Status == models.QuestStatusActive {
			return q, true
		}
	}
	return models.Quest{}, false
}

func cloneState(state models.QuestState) models.QuestState {
	return models.QuestState{
		Quests:    append([]models.Quest(nil), state.Quests...),
		QuestDays: append([]models.QuestDay(nil), state.QuestDays...),
	}
}

func setStatus(state *models.QuestState, id string, status models.QuestStatus) {
	for i := range state.Quests {
		if state.Quests[i].ID == id {
			state.Quests[i].Status = status
		}
	}
}

// Start builds a quest from tmpl and appends it to state. Only one quest may
// be active at a time.
func Start(state models.QuestState, tmpl models.QuestTemplate, o Overrides, today string) (models.QuestState, models.Quest, error) {
	if active, ok := Active(state); ok {
		return state, models.Quest{}, fmt.Errorf("%w: %s", ErrQuestActive, active.Title)
	}
	q, err := NewFromTemplate(tmpl, o, today)
	if err != nil {
		return state, models.Quest{}, err
	}
	next := cloneState(state)
	next.Quests = append(next.Quests, q)
	return next, q, nil
}

// Log records status for date on the active quest, narrating it and applying
// its deltas. date must fall within the quest's days and not after today.
// The quest flips to COMPLETED once its final day is logged. The new entry
// builds on the days logged before date only; re-logging a date replaces the
// earlier entry.
func Log(state models.QuestState, narrator *Narrator, status models.QuestDayStatus, date, today string) (models.QuestState, models.QuestDay, error) {
	switch status {
	case models.QuestDaySuccess, models.QuestDayFail, models.QuestDaySkipped:
	default:
		return state, models.QuestDay{}, fmt.Errorf("%w: got %q", ErrInvalidStatus, status)
	}
	if !utils.ValidateDate(date) {
		return state, models.QuestDay{}, fmt.Errorf("invalid date %q", date)
	}
	if !utils.ValidateDate(today) {
		return state, models.QuestDay{}, fmt.Errorf("invalid date %q", today)
	}

	active, ok := Active(state)
	if !ok {
		return state, models.QuestDay{}, ErrNoActiveQuest
	}
	if err := checkLogDate(active, date, today); err != nil {
		return state, models.QuestDay{}, err
	}

	var prior []models.QuestDay
	for _, d := range state.DaysFor(active.ID) {
		if d.Date < date {
			prior = append(prior, d)
		}
	}

	stats := ComputeStreakStats(prior)
	deltas := ResolveDeltas(status, stats)
	pick := SeededPicker(active.ID + "|" + date + "|" + string(status))

	day := models.QuestDay{
		QuestID:                active.ID,
		Date:                   date,
		Status:                 status,
		VigorDelta:             deltas.Vigor,
		ResolveDelta:           deltas.Resolve,
		CorruptionDelta:        deltas.Corruption,
		AutogeneratedNarrative: narrator.Build(active, prior, status, pick),
	}

	next := cloneState(state)
	next.QuestDays = Upsert(active, next.QuestDays, day)
	day.DayIndex = DayIndex(active, date)

	if IsCompleted(active, next.QuestDays) {
		setStatus(&next, active.ID, models.QuestStatusCompleted)
	}
	return next, day, nil
}

// checkLogDate bounds date to the quest's days up to today. Dates compare as
// YYYY-MM-DD strings.
func checkLogDate(q models.Quest, date, today string) error {
	last := utils.ShiftDate(q.StartDate, q.DurationDays-1)
	switch {
	case date < q.StartDate:
		return fmt.Errorf("%w: %s is before the quest began on %s", ErrDateOutOfRange, date, q.StartDate)
	case date > last:
		return fmt.Errorf("%w: %s is after the quest's last day %s", ErrDateOutOfRange, date, last)
	case date > today:
		return fmt.Errorf("%w: %s is in the future", ErrDateOutOfRange, date)
	}
	return nil
}

// Abandon marks the active quest ABANDONED
func Abandon(state models.QuestState) (models.QuestState, models.Quest, error) {
	active, ok := Active(state)
	if !ok {
		return state, models.Quest{}, ErrNoActiveQuest
	}
	next := cloneState(state)
	setStatus(&next, active.ID, models.QuestStatusAbandoned)
	active.Status = models.QuestStatusAbandoned
	return next, active, nil
}
