package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/sanctum/internal/boss"
	"github.com/julianstephens/sanctum/internal/dashboard"
	"github.com/julianstephens/sanctum/internal/models"
	"github.com/julianstephens/sanctum/internal/quest"
)

func (c *Context) renderDay(v dashboard.View) {
	c.println(headingStyle.Render(fmt.Sprintf("%s: %s", v.Date, v.Title)))
	c.printf("Mood: %s  ·  Streak: %d day(s)  ·  Habits: %d/%d\n", v.MoodLabel, v.Streak, v.Completed, len(c.Catalog.Habits))
	c.println(mutedStyle.Render(v.Narrator))
	c.println()

	c.printf("Hearts: %d/%d\n", v.Hearts.Remaining, v.Hearts.Total)
	c.println(mutedStyle.Render(v.Hearts.Flavor))
	c.println()

	for _, h := range c.Catalog.Habits {
		c.printf("  %s %s\n", checkbox(v.Entry.HasHabit(h.ID)), h.Label)
	}
	if v.Entry.Note != "" {
		c.printf("\nNote: %s\n", v.Entry.Note)
	}

	c.printf("\nContracts: %s\n", v.TaskMeta.TitleSuffix)
	for _, t := range v.Tasks {
		c.printf("  %s %s\n", checkbox(t.Completed), t.Label)
	}
	c.println(mutedStyle.Render(v.TaskMeta.Flavor))

	var bars []string
	for _, d := range v.History {
		bars = append(bars, fmt.Sprintf("%s:%d", d.Date[5:], d.Count))
	}
	c.printf("\nLast %d days: %s\n", len(v.History), strings.Join(bars, " "))

	if v.Quest != nil {
		c.println()
		c.renderQuest(*v.Quest)
	}
}

func (c *Context) renderBoss(fight models.BossFight) {
	body := fmt.Sprintf("%s\n%s\nDifficulty: %s\n%s\n%s",
		headingStyle.Render(fight.Name),
		mutedStyle.Render(fight.Lore),
		strings.Repeat("☠", fight.Difficulty),
		outcomeStyle(fight.Outcome).Render(boss.OutcomeLabel(fight.Outcome)),
		fight.Description,
	)
	c.println(cardStyle.Render(body))
}

func (c *Context) renderWeek(v dashboard.View) {
	c.println(headingStyle.Render("Week of " + v.WeekStart))
	c.printf("Weekly score: %d/21\n", v.WeeklyScore)
	c.printf("Task XP: %d/%d (%d%%)\n", v.TaskXP.XP, v.TaskXP.MaxXP, v.TaskXP.Percent)
	c.println(mutedStyle.Render(v.TaskXP.Label))
	c.println()
	c.renderBoss(v.Boss)
}

func (c *Context) renderQuest(qv dashboard.QuestView) {
	q := qv.Quest
	c.println(headingStyle.Render(q.Title) + " " + mutedStyle.Render("("+qv.Progress+")"))
	if q.IntroText != "" {
		c.println(mutedStyle.Render(q.IntroText))
	}
	if q.CustomPrompt != "" {
		c.printf("Vow: %s\n", q.CustomPrompt)
	}
	c.printf("%s %d  ·  %s %d  ·  %s %d\n",
		q.Labels.Vigor, qv.Resources.Vigor,
		q.Labels.Resolve, qv.Resources.Resolve,
		q.Labels.Corruption, qv.Resources.Corruption)
	c.printf("Success streak: %d  ·  Recent failures: %d  ·  %d won / %d lost\n",
		qv.Summary.CurrentSuccessStreak, qv.Summary.RecentFailCount,
		qv.Summary.TotalSuccesses, qv.Summary.TotalFails)
	if qv.Today != nil {
		c.printf("Today: %s\n", qv.Today.Status)
		if qv.Today.AutogeneratedNarrative != "" {
			c.println(mutedStyle.Render(qv.Today.AutogeneratedNarrative))
		}
	}
}

func (c *Context) renderQuestDay(q models.Quest, d models.QuestDay) {
	c.printf("%s, day %d: %s\n", q.Title, d.DayIndex+1, d.Status)
	if d.AutogeneratedNarrative != "" {
		c.println(mutedStyle.Render(d.AutogeneratedNarrative))
	}
	var parts []string
	if d.VigorDelta != 0 {
		parts = append(parts, fmt.Sprintf("%s +%d", q.Labels.Vigor, d.VigorDelta))
	}
	if d.ResolveDelta != 0 {
		parts = append(parts, fmt.Sprintf("%s +%d", q.Labels.Resolve, d.ResolveDelta))
	}
	if d.CorruptionDelta != 0 {
		parts = append(parts, fmt.Sprintf("%s +%d", q.Labels.Corruption, d.CorruptionDelta))
	}
	if len(parts) > 0 {
		c.println(strings.Join(parts, "  "))
	}
}

func questTypeAndArchetype(q models.Quest) string {
	return fmt.Sprintf("%s · %s", quest.TypeLabel(q.QuestType), q.Archetype)
}
