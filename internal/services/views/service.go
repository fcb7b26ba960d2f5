// Package views builds the read-only calendar and dashboard projections
// consumed by the UI: year grid, month grid, week grid and stats.
package views

import (
	"time"

	"planboard/internal/planner"
	"planboard/internal/services/habits"
)

// NoteSource is the slice of the note store the views need.
type NoteSource interface {
	All() []planner.Note
	ByDate(date planner.Day) []planner.Note
}

// GoalSource is the slice of the goal store the views need.
type GoalSource interface {
	Set() planner.GoalSet
}

// HabitSource is the slice of the habit store the views need.
type HabitSource interface {
	All() []planner.Habit
	ByDate(date planner.Day) []habits.HabitStatus
}

// Service computes view projections over the stores. It holds no state
// of its own.
type Service struct {
	notes  NoteSource
	goals  GoalSource
	habits HabitSource

	// today is swapped out by tests that pin the stats window.
	today func() planner.Day
}

// NewService wires the views over the three stores.
func NewService(notes NoteSource, goals GoalSource, habits HabitSource) *Service {
	return &Service{
		notes:  notes,
		goals:  goals,
		habits: habits,
		today:  planner.Today,
	}
}

// DayCell is one calendar day in a grid.
type DayCell struct {
	Date            planner.Day `json:"date"`
	InMonth         bool        `json:"inMonth"`
	NoteCount       int         `json:"noteCount"`
	HabitCompletion int         `json:"habitCompletion"`
}

// MonthView is a Sunday-aligned month grid.
type MonthView struct {
	Year  int         `json:"year"`
	Month int         `json:"month"`
	Weeks [][]DayCell `json:"weeks"`
}

// YearView is twelve month grids.
type YearView struct {
	Year   int         `json:"year"`
	Months []MonthView `json:"months"`
}

// WeekDay is one day of the week view with its ordered notes and habit
// completion flags.
type WeekDay struct {
	Date   planner.Day          `json:"date"`
	Today  bool                 `json:"today"`
	Notes  []planner.Note       `json:"notes"`
	Habits []habits.HabitStatus `json:"habits"`
}

// WeekView is seven days starting on Sunday.
type WeekView struct {
	Start planner.Day `json:"start"`
	End   planner.Day `json:"end"`
	Days  []WeekDay   `json:"days"`
}

// WeekActivity is one bar of the stats dashboard's weekly chart.
type WeekActivity struct {
	Week   string `json:"week" example:"Jun 1"`
	Notes  int    `json:"notes"`
	Habits int    `json:"habits"`
}

// StatsView is the aggregate dashboard.
type StatsView struct {
	TotalNotes         int            `json:"totalNotes"`
	NotesByCategory    map[string]int `json:"notesByCategory"`
	NotesByPriority    map[string]int `json:"notesByPriority"`
	CompletedGoals     int            `json:"completedGoals"`
	TotalGoals         int            `json:"totalGoals"`
	GoalCompletionRate float64        `json:"goalCompletionRate"`
	TotalHabits        int            `json:"totalHabits"`
	AvgHabitStreak     float64        `json:"avgHabitStreak"`
	WeeklyActivity     []WeekActivity `json:"weeklyActivity"`
}

// Year builds the year grid: per-day note counts and habit completions
// for all twelve months.
func (s *Service) Year(year int) YearView {
	view := YearView{Year: year, Months: make([]MonthView, 0, 12)}
	notesPerDay, habitsPerDay := s.dayTallies()
	for month := 1; month <= 12; month++ {
		view.Months = append(view.Months, s.monthGrid(year, month, notesPerDay, habitsPerDay))
	}
	return view
}

// Month builds the Sunday-aligned grid for one month. Cells from the
// adjacent months pad the first and last week and carry InMonth=false.
func (s *Service) Month(year, month int) MonthView {
	notesPerDay, habitsPerDay := s.dayTallies()
	return s.monthGrid(year, month, notesPerDay, habitsPerDay)
}

// Week builds the week view containing the given date: each day with its
// display-ordered notes and every habit's completion flag.
func (s *Service) Week(date planner.Day) WeekView {
	days := date.WeekDays()
	today := s.today()

	view := WeekView{
		Start: days[0],
		End:   days[len(days)-1],
		Days:  make([]WeekDay, 0, len(days)),
	}
	for _, d := range days {
		view.Days = append(view.Days, WeekDay{
			Date:   d,
			Today:  d == today,
			Notes:  s.notes.ByDate(d),
			Habits: s.habits.ByDate(d),
		})
	}
	return view
}

// Stats builds the dashboard aggregates: note tallies, goal completion
// rate, average habit streak and the last four weeks of activity.
func (s *Service) Stats() StatsView {
	notes := s.notes.All()
	goalSet := s.goals.Set()
	habitList := s.habits.All()

	stats := StatsView{
		TotalNotes:      len(notes),
		NotesByCategory: map[string]int{},
		NotesByPriority: map[string]int{},
		TotalHabits:     len(habitList),
	}

	for _, n := range notes {
		stats.NotesByCategory[string(n.Category)]++
		stats.NotesByPriority[string(n.Priority)]++
	}

	allGoals := goalSet.All()
	stats.TotalGoals = len(allGoals)
	for _, g := range allGoals {
		if g.Completed {
			stats.CompletedGoals++
		}
	}
	if stats.TotalGoals > 0 {
		stats.GoalCompletionRate = float64(stats.CompletedGoals) / float64(stats.TotalGoals) * 100
	}

	if len(habitList) > 0 {
		sum := 0
		for _, h := range habitList {
			sum += h.Streak
		}
		stats.AvgHabitStreak = float64(sum) / float64(len(habitList))
	}

	stats.WeeklyActivity = s.weeklyActivity(notes, habitList)
	return stats
}

// weeklyActivity tallies notes and habit completions per week for the
// last four weeks, oldest first.
func (s *Service) weeklyActivity(notes []planner.Note, habitList []planner.Habit) []WeekActivity {
	notesPerDay := map[planner.Day]int{}
	for _, n := range notes {
		notesPerDay[n.Date]++
	}
	habitsPerDay := map[planner.Day]int{}
	for _, h := range habitList {
		for _, d := range h.CompletedDates {
			habitsPerDay[d]++
		}
	}

	out := make([]WeekActivity, 0, 4)
	for i := 3; i >= 0; i-- {
		weekStart := s.today().AddDays(-7 * i).WeekStart()
		activity := WeekActivity{Week: weekStart.Time().Format("Jan 2")}
		for day := 0; day < 7; day++ {
			d := weekStart.AddDays(day)
			activity.Notes += notesPerDay[d]
			activity.Habits += habitsPerDay[d]
		}
		out = append(out, activity)
	}
	return out
}

func (s *Service) monthGrid(year, month int, notesPerDay, habitsPerDay map[planner.Day]int) MonthView {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	cursor := planner.DayOf(first).WeekStart()
	end := planner.DayOf(last).WeekStart().AddDays(6)

	view := MonthView{Year: year, Month: month}
	week := make([]DayCell, 0, 7)
	for d := cursor; d <= end; d = d.AddDays(1) {
		week = append(week, DayCell{
			Date:            d,
			InMonth:         d.Time().Month() == time.Month(month) && d.Time().Year() == year,
			NoteCount:       notesPerDay[d],
			HabitCompletion: habitsPerDay[d],
		})
		if len(week) == 7 {
			view.Weeks = append(view.Weeks, week)
			week = make([]DayCell, 0, 7)
		}
	}
	return view
}

// dayTallies precomputes per-day note and habit-completion counts so the
// year grid stays a single pass over the stores.
func (s *Service) dayTallies() (map[planner.Day]int, map[planner.Day]int) {
	notesPerDay := map[planner.Day]int{}
	for _, n := range s.notes.All() {
		notesPerDay[n.Date]++
	}
	habitsPerDay := map[planner.Day]int{}
	for _, h := range s.habits.All() {
		for _, d := range h.CompletedDates {
			habitsPerDay[d]++
		}
	}
	return notesPerDay, habitsPerDay
}
