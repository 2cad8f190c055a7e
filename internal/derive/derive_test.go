package derive

import (
	"testing"

	"github.com/taskdesk/taskdesk/internal/model"
)

func sampleTasks() []model.Task {
	return []model.Task{
		{ID: 1, Title: "early", DueDate: "2024-01-10", Status: model.TaskStatusPending},
		{ID: 2, Title: "late", DueDate: "2024-03-01", Status: model.TaskStatusStarted},
		{ID: 3, Title: "undated", DueDate: "bad", Status: model.TaskStatusCompleted},
		{ID: 4, Title: "slash", DueDate: "15/02/2024", Status: model.TaskStatusPending},
	}
}

func ids(tasks []model.Task) []int {
	out := make([]int, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func equalIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestStats_SumMatchesTotal(t *testing.T) {
	stats := Stats(sampleTasks())

	if stats.Total != 4 {
		t.Errorf("Expected total 4, got %d", stats.Total)
	}
	if stats.Pending != 2 || stats.Started != 1 || stats.Completed != 1 {
		t.Errorf("Unexpected counts: %+v", stats)
	}
	if stats.Pending+stats.Started+stats.Completed != stats.Total {
		t.Errorf("Counts must sum to total: %+v", stats)
	}
}

func TestStats_Empty(t *testing.T) {
	stats := Stats(nil)
	if stats.Total != 0 || stats.Pending != 0 || stats.Started != 0 || stats.Completed != 0 {
		t.Errorf("Expected zero statistics, got %+v", stats)
	}
}

func TestApply_StatusFilter(t *testing.T) {
	filtered := Apply(sampleTasks(), Criteria{Status: FilterPending})
	for _, task := range filtered {
		if task.Status != model.TaskStatusPending {
			t.Errorf("Status filter leaked task %d with status %s", task.ID, task.Status)
		}
	}
	if len(filtered) != 2 {
		t.Errorf("Expected 2 pending tasks, got %d", len(filtered))
	}

	all := Apply(sampleTasks(), Criteria{Status: FilterAll})
	if len(all) != 4 {
		t.Errorf("Expected ALL filter to pass every task, got %d", len(all))
	}
}

func TestApply_SortDescendingUnparseableLast(t *testing.T) {
	tasks := []model.Task{
		{ID: 1, DueDate: "2024-01-10"},
		{ID: 2, DueDate: "2024-03-01"},
		{ID: 3, DueDate: "bad"},
	}

	sorted := Apply(tasks, Criteria{Sort: DateDesc})
	if !equalIDs(ids(sorted), []int{2, 1, 3}) {
		t.Errorf("Descending sort order wrong: %v", ids(sorted))
	}
}

func TestApply_SortAscendingUnparseableLast(t *testing.T) {
	tasks := []model.Task{
		{ID: 3, DueDate: "bad"},
		{ID: 2, DueDate: "2024-03-01"},
		{ID: 1, DueDate: "2024-01-10"},
	}

	sorted := Apply(tasks, Criteria{Sort: DateAsc})
	if !equalIDs(ids(sorted), []int{1, 2, 3}) {
		t.Errorf("Ascending sort order wrong: %v", ids(sorted))
	}
}

func TestApply_LowerBoundExcludesEarlierAndUndated(t *testing.T) {
	tasks := []model.Task{
		{ID: 1, DueDate: "2024-01-10"},
		{ID: 2, DueDate: "2024-03-01"},
		{ID: 3, DueDate: "bad"},
	}

	filtered := Apply(tasks, Criteria{From: "2024-02-01", Sort: DateAsc})
	if !equalIDs(ids(filtered), []int{2}) {
		t.Errorf("Lower bound filter wrong: %v", ids(filtered))
	}
}

func TestApply_UpperBoundInclusiveEndOfDay(t *testing.T) {
	tasks := []model.Task{
		{ID: 1, DueDate: "2024-01-10"},
		{ID: 2, DueDate: "2024-03-01"},
		{ID: 3, DueDate: "bad"},
	}

	// The bound day itself is included
	filtered := Apply(tasks, Criteria{To: "2024-03-01", Sort: DateAsc})
	if !equalIDs(ids(filtered), []int{1, 2}) {
		t.Errorf("Upper bound filter wrong: %v", ids(filtered))
	}
}

func TestApply_RangeAcceptsSlashFormatBounds(t *testing.T) {
	filtered := Apply(sampleTasks(), Criteria{From: "01/02/2024", To: "28/02/2024", Sort: DateAsc})
	if !equalIDs(ids(filtered), []int{4}) {
		t.Errorf("Slash-format bounds wrong: %v", ids(filtered))
	}
}

func TestApply_NoBoundsKeepUndated(t *testing.T) {
	result := Apply(sampleTasks(), Criteria{Sort: DateDesc})
	if len(result) != 4 {
		t.Fatalf("Expected all 4 tasks without bounds, got %d", len(result))
	}
	if result[len(result)-1].ID != 3 {
		t.Errorf("Expected undated task last, got order %v", ids(result))
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	tasks := sampleTasks()
	Apply(tasks, Criteria{Status: FilterCompleted, From: "2024-01-01", Sort: DateAsc})

	if !equalIDs(ids(tasks), []int{1, 2, 3, 4}) {
		t.Errorf("Apply mutated its input: %v", ids(tasks))
	}
}
