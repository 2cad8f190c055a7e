package model

// TaskStatus represents the lifecycle state of a task
type TaskStatus string

const (
	// TaskStatusStarted means work on the task has begun
	TaskStatusStarted TaskStatus = "INICIADA"

	// TaskStatusPending means the task is waiting to be started
	TaskStatusPending TaskStatus = "PENDIENTE"

	// TaskStatusCompleted means the task is done
	TaskStatusCompleted TaskStatus = "COMPLETADA"
)

// String returns the wire representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsValid returns true if the status is one of the three defined states
func (ts TaskStatus) IsValid() bool {
	return ts == TaskStatusStarted || ts == TaskStatusPending || ts == TaskStatusCompleted
}

// AllStatuses returns the defined statuses in display order
func AllStatuses() []TaskStatus {
	return []TaskStatus{TaskStatusPending, TaskStatusStarted, TaskStatusCompleted}
}
