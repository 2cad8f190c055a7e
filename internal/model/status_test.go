package model

import "testing"

func TestTaskStatus_IsValid(t *testing.T) {
	tests := []struct {
		status TaskStatus
		valid  bool
	}{
		{TaskStatusStarted, true},
		{TaskStatusPending, true},
		{TaskStatusCompleted, true},
		{TaskStatus(""), false},
		{TaskStatus("DONE"), false},
		{TaskStatus("pendiente"), false},
	}

	for _, test := range tests {
		if got := test.status.IsValid(); got != test.valid {
			t.Errorf("IsValid() for %q = %v, expected %v", test.status, got, test.valid)
		}
	}
}

func TestTaskStatus_String(t *testing.T) {
	if TaskStatusPending.String() != "PENDIENTE" {
		t.Errorf("Expected wire value 'PENDIENTE', got %q", TaskStatusPending.String())
	}
	if TaskStatusStarted.String() != "INICIADA" {
		t.Errorf("Expected wire value 'INICIADA', got %q", TaskStatusStarted.String())
	}
	if TaskStatusCompleted.String() != "COMPLETADA" {
		t.Errorf("Expected wire value 'COMPLETADA', got %q", TaskStatusCompleted.String())
	}
}

func TestAllStatuses(t *testing.T) {
	statuses := AllStatuses()
	if len(statuses) != 3 {
		t.Fatalf("Expected 3 statuses, got %d", len(statuses))
	}
	for _, s := range statuses {
		if !s.IsValid() {
			t.Errorf("AllStatuses returned invalid status %q", s)
		}
	}
}
