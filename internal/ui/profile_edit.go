package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/taskdesk/taskdesk/internal/api"
	"github.com/taskdesk/taskdesk/internal/model"
)

// profileEditScreen updates the profile's name and username. Only the fields
// the user actually changed are sent to the backend.
type profileEditScreen struct {
	nav *Navigator

	original *model.User

	nameEntry     *widget.Entry
	usernameEntry *widget.Entry
	submitBtn     *widget.Button
	errorLabel    *widget.Label
}

func newProfileEditScreen(n *Navigator) fyne.CanvasObject {
	s := &profileEditScreen{nav: n}
	content := s.createUI()
	s.load()
	return content
}

func (s *profileEditScreen) createUI() fyne.CanvasObject {
	loc := s.nav.loc

	title := widget.NewLabel(loc.GetText(KeyProfileEditTitle))
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	s.errorLabel = widget.NewLabel("")
	s.errorLabel.Wrapping = fyne.TextWrapWord
	s.errorLabel.Hide()

	s.nameEntry = widget.NewEntry()
	s.nameEntry.SetPlaceHolder(loc.GetText(KeyFullName))
	s.nameEntry.Validator = Required(loc)

	s.usernameEntry = widget.NewEntry()
	s.usernameEntry.SetPlaceHolder(loc.GetText(KeyUsername))
	s.usernameEntry.Validator = Chain(Required(loc), MinLength(loc, 3))

	s.submitBtn = widget.NewButton(loc.GetText(KeySave), s.onSubmit)
	s.submitBtn.Importance = widget.HighImportance
	s.submitBtn.Disable()

	cancelBtn := widget.NewButton(loc.GetText(KeyCancel), func() {
		s.nav.Open(RouteProfile)
	})
	cancelBtn.Importance = widget.LowImportance

	form := container.NewVBox(
		title,
		s.errorLabel,
		s.nameEntry,
		s.usernameEntry,
		container.NewGridWithColumns(2, cancelBtn, s.submitBtn),
	)

	return container.NewCenter(newFormWrap(form))
}

// load fetches the current profile so the diff against it can be computed on
// save.
func (s *profileEditScreen) load() {
	loc := s.nav.loc

	go func() {
		result, err := s.nav.users.Profile(context.Background())
		fyne.Do(func() {
			if err != nil {
				if isUnauthorized(err) {
					s.showError(loc.GetText(KeySessionExpired))
					s.nav.redirectToLoginAfterDelay()
					return
				}
				s.showError(api.ErrorMessage(err, loc.GetText(KeyProfileLoadError)))
				return
			}
			if !result.OK() || result.Object == nil {
				s.showError(result.Message(loc.GetText(KeyProfileLoadError)))
				return
			}

			s.original = result.Object
			s.nameEntry.SetText(s.original.Name)
			s.usernameEntry.SetText(s.original.Username)
			s.submitBtn.Enable()
		})
	}()
}

// buildPatch diffs the form against the loaded profile
func buildPatch(original *model.User, name, username string) model.UserPatch {
	var patch model.UserPatch
	if name != original.Name {
		patch.Name = name
	}
	if username != original.Username {
		patch.Username = username
	}
	return patch
}

func (s *profileEditScreen) onSubmit() {
	loc := s.nav.loc

	if s.original == nil {
		return
	}
	if err := s.nameEntry.Validate(); err != nil {
		s.showError(err.Error())
		return
	}
	if err := s.usernameEntry.Validate(); err != nil {
		s.showError(loc.GetText(KeyUsernameTooShort))
		return
	}

	patch := buildPatch(s.original, s.nameEntry.Text, s.usernameEntry.Text)
	if patch.IsEmpty() {
		s.showError(loc.GetText(KeyProfileNoChanges))
		return
	}

	s.submitBtn.Disable()
	go func() {
		result, err := s.nav.users.Update(context.Background(), patch)
		fyne.Do(func() {
			s.submitBtn.Enable()
			if err != nil {
				if isUnauthorized(err) {
					s.showError(loc.GetText(KeySessionExpired))
					s.nav.redirectToLoginAfterDelay()
					return
				}
				s.showError(api.ErrorMessage(err, loc.GetText(KeyProfileUpdateError)))
				return
			}
			if !result.OK() {
				s.showError(result.Message(loc.GetText(KeyProfileUpdateError)))
				return
			}

			// The stored session carries the username; keep it in sync so
			// password changes keep targeting the right account.
			if patch.Username != "" {
				s.nav.session.UpdateUsername(patch.Username)
			}

			ShowToast(s.nav.window, loc.GetText(KeyProfileUpdated), ToastSuccess)
			s.nav.Open(RouteProfile)
		})
	}()
}

func (s *profileEditScreen) showError(msg string) {
	s.errorLabel.SetText(msg)
	s.errorLabel.Show()
}
