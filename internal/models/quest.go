package models

type QuestStatus string

const (
	QuestStatusActive    QuestStatus = "ACTIVE"
	QuestStatusCompleted QuestStatus = "COMPLETED"
	QuestStatusAbandoned QuestStatus = "ABANDONED"
)

type QuestDayStatus string

const (
	QuestDayPending QuestDayStatus = "PENDING"
	QuestDaySuccess QuestDayStatus = "SUCCESS"
	QuestDayFail    QuestDayStatus = "FAIL"
	QuestDaySkipped QuestDayStatus = "SKIPPED"
)

type QuestType string

const (
	QuestTypeManual QuestType = "MANUAL"
	QuestTypeMetric QuestType = "METRIC"
)

// QuestArchetype selects the flavor bank that narrates a quest
type QuestArchetype string

const (
	ArchetypeDisciplinePact QuestArchetype = "discipline_pact"
	ArchetypeHealthRite     QuestArchetype = "health_rite"
	ArchetypeRecoveryVigil  QuestArchetype = "recovery_vigil"
	ArchetypeCustom         QuestArchetype = "custom"
)

// Archetypes lists every known archetype in display order
var Archetypes = []QuestArchetype{
	ArchetypeDisciplinePact,
	ArchetypeHealthRite,
	ArchetypeRecoveryVigil,
	ArchetypeCustom,
}

// Valid reports whether a is a known archetype
func (a QuestArchetype) Valid() bool {
	switch a {
	case ArchetypeDisciplinePact, ArchetypeHealthRite, ArchetypeRecoveryVigil, ArchetypeCustom:
		return true
	default:
		return false
	}
}

// QuestLabels overrides the display names of the three resource tracks
type QuestLabels struct {
	Vigor      string `json:"vigor"`
	Resolve    string `json:"resolve"`
	Corruption string `json:"corruption"`
}

type Quest struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Slug         string         `json:"slug"`
	Status       QuestStatus    `json:"status"`
	StartDate    string         `json:"startDate"` // YYYY-MM-DD format
	DurationDays int            `json:"durationDays"`
	IntroText    string         `json:"introText"`
	Epilogues    []string       `json:"epilogues,omitempty"`
	QuestType    QuestType      `json:"questType"`
	Archetype    QuestArchetype `json:"archetype"`
	CustomPrompt string         `json:"customPrompt,omitempty"`
	Labels       QuestLabels    `json:"labels"`
}

// QuestDay is one logged day of a quest, unique per (QuestID, Date)
type QuestDay struct {
	QuestID                string         `json:"questId"`
	Date                   string         `json:"date"` // YYYY-MM-DD format
	DayIndex               int            `json:"dayIndex"`
	Status                 QuestDayStatus `json:"status"`
	VigorDelta             int            `json:"vigorDelta"`
	ResolveDelta           int            `json:"resolveDelta"`
	CorruptionDelta        int            `json:"corruptionDelta"`
	AutogeneratedNarrative string         `json:"autogeneratedNarrative,omitempty"`
}

// QuestTemplate is a static catalog entry used to construct a Quest
type QuestTemplate struct {
	ID           string         `json:"id" yaml:"id"`
	Title        string         `json:"title" yaml:"title"`
	Slug         string         `json:"slug" yaml:"slug"`
	DurationDays int            `json:"durationDays" yaml:"duration_days"`
	IntroText    string         `json:"introText" yaml:"intro_text"`
	QuestType    QuestType      `json:"questType" yaml:"quest_type"`
	Archetype    QuestArchetype `json:"archetype" yaml:"archetype"`
	CustomPrompt string         `json:"customPrompt,omitempty" yaml:"custom_prompt,omitempty"`
}

// QuestState is the persisted quest snapshot
type QuestState struct {
	Quests    []Quest    `json:"quests"`
	QuestDays []QuestDay `json:"questDays"`
}

// DaysFor returns the entries belonging to questID, in stored order
func (s QuestState) DaysFor(questID string) []QuestDay {
	var out []QuestDay
	for _, d := range s.QuestDays {
		if d.QuestID == questID {
			out = append(out, d)
		}
	}
	return out
}
