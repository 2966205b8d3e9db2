// Package dashboard assembles every derived value shown for a single day.
package dashboard

import (
	"github.com/julianstephens/sanctum/internal/boss"
	"github.com/julianstephens/sanctum/internal/catalog"
	"github.com/julianstephens/sanctum/internal/models"
	"github.com/julianstephens/sanctum/internal/quest"
	"github.com/julianstephens/sanctum/internal/tracker"
	"github.com/julianstephens/sanctum/internal/utils"
)

const historyDays = 7

type Input struct {
	Date    string
	Days    models.DaysState
	Tasks   models.TaskBoard
	Quests  models.QuestState
	Catalog *catalog.Catalog
	Bosses  *boss.Generator
}

// QuestView describes the active quest as of the dashboard date
type QuestView struct {
	Quest     models.Quest
	Progress  string
	Resources quest.Resources
	Summary   quest.SummaryStats
	Today     *models.QuestDay
}

type View struct {
	Date      string
	Entry     models.DayEntry
	Completed int
	Mood      models.Mood
	MoodLabel string
	Title     string
	Narrator  string
	Streak    int
	Hearts    tracker.HeartStatus
	History   []tracker.DayCount

	Tasks    []models.DailyTask
	TaskMeta tracker.TaskMeta

	WeekStart   string
	WeeklyScore int
	TaskXP      tracker.TaskXP
	Buff        string
	Boss        models.BossFight

	Quest *QuestView
}

func Build(in Input) View {
	entry, ok := in.Days[in.Date]
	if !ok {
		entry = models.DayEntry{Date: in.Date, CompletedHabitIDs: []string{}}
	}
	completed := in.Days.CompletedCount(in.Date)
	mood := tracker.DeriveMood(completed)

	v := View{
		Date:      in.Date,
		Entry:     entry,
		Completed: completed,
		Mood:      mood,
		MoodLabel: tracker.MoodLabel(mood),
		Title:     tracker.DailyTitle(in.Catalog.DailyTitles, mood, in.Date),
		Narrator:  tracker.NarratorLine(completed),
		Streak:    tracker.Streak(in.Days, in.Date),
		Hearts:    tracker.Hearts(entry, in.Catalog.HeartHabits()),
		History:   tracker.LastNDays(in.Days, in.Date, historyDays),
		Tasks:     in.Tasks[in.Date],
		TaskMeta:  tracker.DayTaskMeta(in.Tasks[in.Date]),
	}

	v.WeekStart = utils.WeekStart(in.Date)
	v.WeeklyScore = tracker.WeeklyScore(in.Days, v.WeekStart)
	v.TaskXP = tracker.WeeklyTaskXP(v.WeekStart, in.Tasks)
	v.Buff = tracker.WeeklyTaskBuff(v.WeekStart, in.Tasks)
	if in.Bosses != nil {
		v.Boss = boss.WithBuff(in.Bosses.Generate(v.WeekStart, v.WeeklyScore), v.Buff)
	}

	// the active quest is hidden on dates before it began
	if active, ok := quest.Active(in.Quests); ok && in.Date >= active.StartDate {
		v.Quest = buildQuest(active, in.Quests, in.Date)
	}
	return v
}

func buildQuest(q models.Quest, state models.QuestState, date string) *QuestView {
	view := &QuestView{
		Quest:     q,
		Progress:  quest.ProgressLabel(q, date),
		Resources: quest.Totals(q, state.QuestDays),
		Summary:   quest.Summary(q, state.QuestDays),
	}
	for _, d := range state.DaysFor(q.ID) {
		if d.Date == date {
			d := d
			view.Today = &d
			break
		}
	}
	return view
}
