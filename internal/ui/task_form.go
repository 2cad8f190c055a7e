package ui

import (
	"context"
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/taskdesk/taskdesk/internal/api"
	"github.com/taskdesk/taskdesk/internal/model"
)

// taskFormScreen creates a new task or edits an existing one. taskID zero
// means create mode.
type taskFormScreen struct {
	nav    *Navigator
	taskID int

	titleEntry *widget.Entry
	descEntry  *widget.Entry
	dueEntry   *widget.Entry
	statusSel  *widget.Select
	titleCount *widget.Label
	descCount  *widget.Label
	submitBtn  *widget.Button
	errorLabel *widget.Label
}

func newTaskFormScreen(n *Navigator, taskID int) fyne.CanvasObject {
	s := &taskFormScreen{nav: n, taskID: taskID}
	content := s.createUI()
	if s.editing() {
		s.loadTask()
	}
	return content
}

func (s *taskFormScreen) editing() bool {
	return s.taskID != 0
}

func (s *taskFormScreen) createUI() fyne.CanvasObject {
	loc := s.nav.loc

	titleKey := KeyTaskFormNewTitle
	if s.editing() {
		titleKey = KeyTaskFormEditTitle
	}
	title := widget.NewLabel(loc.GetText(titleKey))
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	s.titleEntry = widget.NewEntry()
	s.titleEntry.SetPlaceHolder(loc.GetText(KeyTaskTitle))
	s.titleEntry.Validator = Chain(Required(loc), MaxLength(loc, model.TitleMaxLen))

	s.titleCount = widget.NewLabel(fmt.Sprintf("0/%d", model.TitleMaxLen))
	s.titleEntry.OnChanged = func(value string) {
		s.titleCount.SetText(fmt.Sprintf("%d/%d", len([]rune(value)), model.TitleMaxLen))
	}

	s.descEntry = widget.NewMultiLineEntry()
	s.descEntry.SetPlaceHolder(loc.GetText(KeyTaskDescription))
	s.descEntry.Validator = MaxLength(loc, model.DescriptionMaxLen)
	s.descEntry.SetMinRowsVisible(3)

	s.descCount = widget.NewLabel(fmt.Sprintf("0/%d", model.DescriptionMaxLen))
	s.descEntry.OnChanged = func(value string) {
		s.descCount.SetText(fmt.Sprintf("%d/%d", len([]rune(value)), model.DescriptionMaxLen))
	}

	s.dueEntry = widget.NewEntry()
	s.dueEntry.SetPlaceHolder(loc.GetText(KeyDueDate) + " (DD/MM/YYYY)")
	if s.editing() {
		// Existing tasks may carry past dates; only creation rejects them.
		s.dueEntry.Validator = Required(loc)
	} else {
		s.dueEntry.Validator = Chain(Required(loc), DueDateNotPast(loc, time.Now()))
	}

	s.statusSel = widget.NewSelect(statusDisplayOptions(loc), nil)
	s.statusSel.SetSelectedIndex(statusIndex(model.TaskStatusPending))

	s.errorLabel = widget.NewLabel("")
	s.errorLabel.Wrapping = fyne.TextWrapWord
	s.errorLabel.Hide()

	s.submitBtn = widget.NewButton(loc.GetText(KeySave), s.onSubmit)
	s.submitBtn.Importance = widget.HighImportance

	cancelBtn := widget.NewButton(loc.GetText(KeyCancel), func() {
		s.nav.Open(RouteTasks)
	})
	cancelBtn.Importance = widget.LowImportance

	form := container.NewVBox(
		title,
		s.errorLabel,
		container.NewBorder(nil, nil, nil, s.titleCount, s.titleEntry),
		container.NewBorder(nil, nil, nil, s.descCount, s.descEntry),
		s.dueEntry,
		s.statusSel,
		container.NewGridWithColumns(2, cancelBtn, s.submitBtn),
	)

	return container.NewCenter(newFormWrap(form))
}

// loadTask fills the form with the task being edited
func (s *taskFormScreen) loadTask() {
	loc := s.nav.loc

	go func() {
		result, err := s.nav.tasks.Get(context.Background(), s.taskID)
		fyne.Do(func() {
			if err != nil {
				s.showError(taskErrorText(loc, err, KeyTaskLoadError))
				if isUnauthorized(err) {
					s.nav.redirectToLoginAfterDelay()
				}
				return
			}
			if !result.OK() || result.Object == nil {
				s.showError(result.Message(loc.GetText(KeyTaskLoadError)))
				return
			}

			task := result.Object
			s.titleEntry.SetText(task.Title)
			s.descEntry.SetText(task.Description)
			s.dueEntry.SetText(task.DueDate)
			s.statusSel.SetSelectedIndex(statusIndex(task.Status))
		})
	}()
}

func (s *taskFormScreen) onSubmit() {
	loc := s.nav.loc

	for _, entry := range []*widget.Entry{s.titleEntry, s.descEntry, s.dueEntry} {
		if err := entry.Validate(); err != nil {
			s.showError(err.Error())
			return
		}
	}

	task := model.Task{
		Title:       s.titleEntry.Text,
		Description: s.descEntry.Text,
		DueDate:     s.dueEntry.Text,
		Status:      model.AllStatuses()[s.statusSel.SelectedIndex()],
	}
	if err := task.Validate(); err != nil {
		s.showError(err.Error())
		return
	}

	s.submitBtn.Disable()
	go func() {
		var (
			result *api.Result[model.Task]
			err    error
		)
		successKey := KeyTaskCreated
		if s.editing() {
			successKey = KeyTaskUpdated
			result, err = s.nav.tasks.Update(context.Background(), s.taskID, task)
		} else {
			result, err = s.nav.tasks.Create(context.Background(), task)
		}

		fyne.Do(func() {
			s.submitBtn.Enable()
			if err != nil {
				s.showError(taskErrorText(loc, err, KeyTaskSaveError))
				if isUnauthorized(err) {
					s.nav.redirectToLoginAfterDelay()
				}
				return
			}
			if !result.OK() {
				s.showError(result.Message(loc.GetText(KeyTaskSaveError)))
				return
			}

			ShowToast(s.nav.window, loc.GetText(successKey), ToastSuccess)
			s.nav.Open(RouteTasks)
		})
	}()
}

func (s *taskFormScreen) showError(msg string) {
	s.errorLabel.SetText(msg)
	s.errorLabel.Show()
}
