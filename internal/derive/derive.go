package derive

// Package derive implements the pure task-list pipeline: status filter, date
// range filter, due-date sort, and derived statistics. The caller re-runs it
// whenever the raw collection or the criteria change; nothing here holds state.

import (
	"sort"
	"time"

	"github.com/taskdesk/taskdesk/internal/model"
)

// StatusFilter selects which task statuses pass the filter stage
type StatusFilter int

const (
	// FilterAll passes every task through unchanged
	FilterAll StatusFilter = iota
	FilterPending
	FilterStarted
	FilterCompleted
)

// Matches reports whether a task with the given status passes the filter
func (f StatusFilter) Matches(status model.TaskStatus) bool {
	switch f {
	case FilterPending:
		return status == model.TaskStatusPending
	case FilterStarted:
		return status == model.TaskStatusStarted
	case FilterCompleted:
		return status == model.TaskStatusCompleted
	default:
		return true
	}
}

// SortOrder selects the due-date sort direction
type SortOrder int

const (
	DateDesc SortOrder = iota
	DateAsc
)

// Criteria bundles the filter and sort inputs of the pipeline. From and To are
// inclusive date-range bounds in either accepted due-date format; empty means
// the bound is inactive. To is compared at end-of-day.
type Criteria struct {
	Status StatusFilter
	Sort   SortOrder
	From   string
	To     string
}

// Statistics are derived counts over the unfiltered collection
type Statistics struct {
	Total     int
	Pending   int
	Started   int
	Completed int
}

// Stats computes counts from the full, unfiltered collection. The statistics
// header always reflects the complete set regardless of active filters.
func Stats(tasks []model.Task) Statistics {
	stats := Statistics{Total: len(tasks)}
	for _, task := range tasks {
		switch task.Status {
		case model.TaskStatusPending:
			stats.Pending++
		case model.TaskStatusStarted:
			stats.Started++
		case model.TaskStatusCompleted:
			stats.Completed++
		}
	}
	return stats
}

// Apply runs the full pipeline and returns a new slice; the input collection
// is never mutated.
func Apply(tasks []model.Task, criteria Criteria) []model.Task {
	result := make([]model.Task, 0, len(tasks))
	for _, task := range tasks {
		if criteria.Status.Matches(task.Status) {
			result = append(result, task)
		}
	}

	if from, ok := model.ParseDueDate(criteria.From); ok {
		result = filterDates(result, func(d time.Time) bool { return !d.Before(from) })
	}
	if to, ok := model.ParseDueDate(criteria.To); ok {
		// A plain date bound includes the whole final day
		endOfDay := to.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		result = filterDates(result, func(d time.Time) bool { return !d.After(endOfDay) })
	}

	sortByDueDate(result, criteria.Sort)
	return result
}

// filterDates keeps tasks whose parsed due date satisfies keep. Tasks with an
// unparseable date are dropped whenever a bound is active.
func filterDates(tasks []model.Task, keep func(time.Time) bool) []model.Task {
	filtered := tasks[:0]
	for _, task := range tasks {
		date, ok := task.ParseDueDate()
		if ok && keep(date) {
			filtered = append(filtered, task)
		}
	}
	return filtered
}

// sortByDueDate orders tasks by due date in the given direction. Tasks with an
// unparseable date sort after all dated tasks regardless of direction; the
// relative order of two undated tasks is preserved.
func sortByDueDate(tasks []model.Task, order SortOrder) {
	sort.SliceStable(tasks, func(i, j int) bool {
		di, oki := tasks[i].ParseDueDate()
		dj, okj := tasks[j].ParseDueDate()
		if !oki && !okj {
			return false
		}
		if !oki {
			return false
		}
		if !okj {
			return true
		}
		if order == DateAsc {
			return di.Before(dj)
		}
		return dj.Before(di)
	})
}
