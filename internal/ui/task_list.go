package ui

import (
	"context"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/taskdesk/taskdesk/internal/api"
	"github.com/taskdesk/taskdesk/internal/derive"
	"github.com/taskdesk/taskdesk/internal/model"
)

// taskListScreen shows the user's tasks with the filter bar, the statistics
// header and the per-task actions. Filtering and sorting happen locally over
// the last loaded collection; statistics always come from the unfiltered set.
type taskListScreen struct {
	nav *Navigator

	tasks    []model.Task
	criteria derive.Criteria

	statsLabel   *widget.Label
	statusSelect *widget.Select
	sortSelect   *widget.Select
	fromEntry    *widget.Entry
	toEntry      *widget.Entry
	listBox      *fyne.Container
	emptyLabel   *widget.Label
}

func newTaskListScreen(n *Navigator) fyne.CanvasObject {
	s := &taskListScreen{nav: n}
	content := s.createUI()
	s.load()
	return content
}

func (s *taskListScreen) createUI() fyne.CanvasObject {
	loc := s.nav.loc

	title := widget.NewLabel(loc.GetText(KeyTasksTitle))
	title.TextStyle = fyne.TextStyle{Bold: true}

	backBtn := widget.NewButtonWithIcon(loc.GetText(KeyBack), theme.NavigateBackIcon(), func() {
		s.nav.Open(RouteDashboard)
	})
	backBtn.Importance = widget.LowImportance

	newBtn := widget.NewButtonWithIcon(loc.GetText(KeyTasksNew), theme.ContentAddIcon(), func() {
		s.nav.OpenTaskForm(0)
	})
	newBtn.Importance = widget.HighImportance

	s.statsLabel = widget.NewLabel("")

	s.emptyLabel = widget.NewLabel(loc.GetText(KeyNoTasks))
	s.emptyLabel.Alignment = fyne.TextAlignCenter
	s.emptyLabel.Hide()

	s.listBox = container.NewVBox()

	s.statusSelect = widget.NewSelect(s.statusFilterOptions(), func(string) {
		s.criteria.Status = derive.StatusFilter(s.statusSelect.SelectedIndex())
		s.refresh()
	})
	s.statusSelect.SetSelectedIndex(0)

	s.sortSelect = widget.NewSelect([]string{
		loc.GetText(KeySortNewest),
		loc.GetText(KeySortOldest),
	}, func(string) {
		s.criteria.Sort = derive.SortOrder(s.sortSelect.SelectedIndex())
		s.refresh()
	})
	s.sortSelect.SetSelectedIndex(0)

	s.fromEntry = widget.NewEntry()
	s.fromEntry.SetPlaceHolder(loc.GetText(KeyDateFrom) + " (DD/MM/YYYY)")
	s.fromEntry.OnChanged = func(value string) {
		s.criteria.From = value
		s.refresh()
	}

	s.toEntry = widget.NewEntry()
	s.toEntry.SetPlaceHolder(loc.GetText(KeyDateTo) + " (DD/MM/YYYY)")
	s.toEntry.OnChanged = func(value string) {
		s.criteria.To = value
		s.refresh()
	}

	clearBtn := widget.NewButton(loc.GetText(KeyClearFilters), s.onClearFilters)
	clearBtn.Importance = widget.LowImportance

	filterBar := container.NewVBox(
		container.NewGridWithColumns(2, s.statusSelect, s.sortSelect),
		container.NewGridWithColumns(3, s.fromEntry, s.toEntry, clearBtn),
	)

	header := container.NewVBox(
		container.NewBorder(nil, nil, backBtn, newBtn, title),
		s.statsLabel,
		filterBar,
		widget.NewSeparator(),
		s.emptyLabel,
	)

	return container.NewBorder(header, nil, nil, nil, container.NewVScroll(s.listBox))
}

// statusFilterOptions returns the filter labels in derive.StatusFilter order
func (s *taskListScreen) statusFilterOptions() []string {
	loc := s.nav.loc
	return []string{
		loc.GetText(KeyFilterAll),
		loc.GetText(KeyStatusPending),
		loc.GetText(KeyStatusStarted),
		loc.GetText(KeyStatusCompleted),
	}
}

func (s *taskListScreen) load() {
	loc := s.nav.loc

	go func() {
		result, err := s.nav.tasks.List(context.Background())
		fyne.Do(func() {
			if err != nil {
				ShowToast(s.nav.window, taskErrorText(loc, err, KeyTasksLoadError), ToastError)
				if isUnauthorized(err) {
					s.nav.redirectToLoginAfterDelay()
				}
				return
			}
			if !result.OK() {
				ShowToast(s.nav.window, result.Message(loc.GetText(KeyTasksLoadError)), ToastError)
				return
			}

			s.tasks = result.Objects
			s.refresh()
		})
	}()
}

// refresh recomputes statistics and the visible rows from the loaded tasks
func (s *taskListScreen) refresh() {
	loc := s.nav.loc

	stats := derive.Stats(s.tasks)
	s.statsLabel.SetText(fmt.Sprintf("%s: %d | %s: %d | %s: %d | %s: %d",
		loc.GetText(KeyStatsTotal), stats.Total,
		loc.GetText(KeyStatusPending), stats.Pending,
		loc.GetText(KeyStatusStarted), stats.Started,
		loc.GetText(KeyStatusCompleted), stats.Completed,
	))

	visible := derive.Apply(s.tasks, s.criteria)

	rows := make([]fyne.CanvasObject, 0, len(visible))
	for _, task := range visible {
		rows = append(rows, s.buildRow(task))
	}
	s.listBox.Objects = rows
	s.listBox.Refresh()

	if len(visible) == 0 {
		s.emptyLabel.Show()
	} else {
		s.emptyLabel.Hide()
	}
}

func (s *taskListScreen) buildRow(task model.Task) fyne.CanvasObject {
	loc := s.nav.loc

	titleLabel := widget.NewLabel(task.DisplayTitle())
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	titleLabel.Truncation = fyne.TextTruncateEllipsis

	metaLabel := widget.NewLabel(fmt.Sprintf("%s: %s  %s: %s",
		loc.GetText(KeyDueDate), task.DueDate,
		loc.GetText(KeyStatus), loc.StatusText(string(task.Status)),
	))

	statusSelect := widget.NewSelect(statusDisplayOptions(loc), nil)
	statusSelect.SetSelectedIndex(statusIndex(task.Status))
	taskID := task.ID
	previous := task.Status
	statusSelect.OnChanged = func(string) {
		next := model.AllStatuses()[statusSelect.SelectedIndex()]
		if next == previous {
			return
		}
		s.changeStatus(taskID, next)
	}

	detailBtn := widget.NewButtonWithIcon("", theme.InfoIcon(), func() {
		s.showDetail(taskID)
	})
	editBtn := widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), func() {
		s.nav.OpenTaskForm(taskID)
	})
	deleteBtn := widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
		s.confirmDelete(taskID)
	})
	deleteBtn.Importance = widget.DangerImportance

	actions := container.NewHBox(statusSelect, detailBtn, editBtn, deleteBtn)

	return container.NewVBox(
		container.NewBorder(nil, nil, nil, actions, container.NewVBox(titleLabel, metaLabel)),
		widget.NewSeparator(),
	)
}

// statusDisplayOptions returns localized names in model.AllStatuses order
func statusDisplayOptions(loc *Localization) []string {
	options := make([]string, 0, 3)
	for _, status := range model.AllStatuses() {
		options = append(options, loc.StatusText(string(status)))
	}
	return options
}

// statusIndex maps a status to its position in model.AllStatuses
func statusIndex(status model.TaskStatus) int {
	for i, candidate := range model.AllStatuses() {
		if candidate == status {
			return i
		}
	}
	return 0
}

// patchStatus returns the index of the task with the given id after setting
// its status, or -1 when the task is not in the collection.
func patchStatus(tasks []model.Task, taskID int, status model.TaskStatus) int {
	for i := range tasks {
		if tasks[i].ID == taskID {
			tasks[i].Status = status
			return i
		}
	}
	return -1
}

// applyStatusResult patches the cached task only once the backend has
// confirmed the change. Reports whether the cache was updated.
func applyStatusResult(tasks []model.Task, taskID int, next model.TaskStatus, result *api.Result[model.Task], err error) bool {
	if err != nil || result == nil || !result.OK() {
		return false
	}
	return patchStatus(tasks, taskID, next) >= 0
}

// changeStatus sends the new status to the backend and updates the cached
// task on a confirmed envelope, without refetching the list. On failure the
// rebuild snaps the row's dropdown back to the cached status.
func (s *taskListScreen) changeStatus(taskID int, next model.TaskStatus) {
	loc := s.nav.loc

	go func() {
		result, err := s.nav.tasks.ChangeStatus(context.Background(), taskID, next)
		fyne.Do(func() {
			if applyStatusResult(s.tasks, taskID, next, result, err) {
				s.refresh()
				ShowToast(s.nav.window,
					fmt.Sprintf(loc.GetText(KeyStatusUpdated), loc.StatusText(string(next))),
					ToastSuccess)
				return
			}

			s.refresh()
			if err != nil {
				ShowToast(s.nav.window, taskErrorText(loc, err, KeyStatusUpdateError), ToastError)
				if isUnauthorized(err) {
					s.nav.redirectToLoginAfterDelay()
				}
				return
			}
			if !result.OK() {
				ShowToast(s.nav.window, result.Message(loc.GetText(KeyStatusUpdateError)), ToastError)
				return
			}
			log.Printf("ui: status change confirmed for unknown task %d", taskID)
		})
	}()
}

func (s *taskListScreen) confirmDelete(taskID int) {
	loc := s.nav.loc

	dialog.ShowConfirm(loc.GetText(KeyDelete), loc.GetText(KeyConfirmDeleteTask), func(confirmed bool) {
		if !confirmed {
			return
		}
		s.deleteTask(taskID)
	}, s.nav.window)
}

func (s *taskListScreen) deleteTask(taskID int) {
	loc := s.nav.loc

	go func() {
		result, err := s.nav.tasks.Delete(context.Background(), taskID)
		fyne.Do(func() {
			if err != nil {
				ShowToast(s.nav.window, taskErrorText(loc, err, KeyTaskDeleteError), ToastError)
				if isUnauthorized(err) {
					s.nav.redirectToLoginAfterDelay()
				}
				return
			}
			if !result.OK() {
				ShowToast(s.nav.window, result.Message(loc.GetText(KeyTaskDeleteError)), ToastError)
				return
			}

			for i := range s.tasks {
				if s.tasks[i].ID == taskID {
					s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
					break
				}
			}
			s.refresh()
			ShowToast(s.nav.window, loc.GetText(KeyTaskDeleted), ToastSuccess)
		})
	}()
}

// showDetail fetches the single task so the dialog reflects the latest state
func (s *taskListScreen) showDetail(taskID int) {
	loc := s.nav.loc

	go func() {
		result, err := s.nav.tasks.Get(context.Background(), taskID)
		fyne.Do(func() {
			if err != nil {
				ShowToast(s.nav.window, taskErrorText(loc, err, KeyTaskLoadError), ToastError)
				if isUnauthorized(err) {
					s.nav.redirectToLoginAfterDelay()
				}
				return
			}
			if !result.OK() || result.Object == nil {
				ShowToast(s.nav.window, result.Message(loc.GetText(KeyTaskLoadError)), ToastError)
				return
			}

			task := result.Object
			description := widget.NewLabel(task.Description)
			description.Wrapping = fyne.TextWrapWord

			content := container.NewVBox(
				widget.NewLabel(fmt.Sprintf("%s: %s", loc.GetText(KeyDueDate), task.DueDate)),
				widget.NewLabel(fmt.Sprintf("%s: %s", loc.GetText(KeyStatus), loc.StatusText(string(task.Status)))),
				widget.NewSeparator(),
				description,
			)

			detail := dialog.NewCustom(task.DisplayTitle(), loc.GetText(KeyClose), content, s.nav.window)
			detail.Resize(fyne.NewSize(DetailDialogW, DetailDialogH))
			detail.Show()
		})
	}()
}

func (s *taskListScreen) onClearFilters() {
	s.criteria = derive.Criteria{}
	s.statusSelect.SetSelectedIndex(0)
	s.sortSelect.SetSelectedIndex(0)
	s.fromEntry.SetText("")
	s.toEntry.SetText("")
	s.refresh()
	ShowToast(s.nav.window, s.nav.loc.GetText(KeyFiltersCleared), ToastInfo)
}
