package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/taskdesk/taskdesk/internal/api"
	"github.com/taskdesk/taskdesk/internal/model"
)

// profileScreen shows the user's profile with edit and account deletion
type profileScreen struct {
	nav *Navigator

	nameValue     *widget.Label
	usernameValue *widget.Label
	emailValue    *widget.Label
	errorLabel    *widget.Label
}

func newProfileScreen(n *Navigator) fyne.CanvasObject {
	s := &profileScreen{nav: n}
	content := s.createUI()
	s.load()
	return content
}

func (s *profileScreen) createUI() fyne.CanvasObject {
	loc := s.nav.loc

	title := widget.NewLabel(loc.GetText(KeyProfileTitle))
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	s.errorLabel = widget.NewLabel("")
	s.errorLabel.Wrapping = fyne.TextWrapWord
	s.errorLabel.Hide()

	loading := loc.GetText(KeyLoading)
	s.nameValue = widget.NewLabel(loading)
	s.usernameValue = widget.NewLabel(loading)
	s.emailValue = widget.NewLabel(loading)

	details := widget.NewForm(
		widget.NewFormItem(loc.GetText(KeyFullName), s.nameValue),
		widget.NewFormItem(loc.GetText(KeyUsername), s.usernameValue),
		widget.NewFormItem(loc.GetText(KeyEmail), s.emailValue),
	)

	editBtn := widget.NewButtonWithIcon(loc.GetText(KeyEdit), theme.DocumentCreateIcon(), func() {
		s.nav.Open(RouteProfileEdit)
	})
	editBtn.Importance = widget.HighImportance

	deleteBtn := widget.NewButtonWithIcon(loc.GetText(KeyDeleteAccount), theme.DeleteIcon(), s.confirmDeleteAccount)
	deleteBtn.Importance = widget.DangerImportance

	backBtn := widget.NewButton(loc.GetText(KeyBack), func() {
		s.nav.Open(RouteDashboard)
	})
	backBtn.Importance = widget.LowImportance

	form := container.NewVBox(
		title,
		s.errorLabel,
		details,
		editBtn,
		widget.NewSeparator(),
		deleteBtn,
		backBtn,
	)

	return container.NewCenter(newFormWrap(form))
}

func (s *profileScreen) load() {
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

			s.showProfile(result.Object)
		})
	}()
}

func (s *profileScreen) showProfile(user *model.User) {
	s.nameValue.SetText(user.Name)
	s.usernameValue.SetText(user.Username)
	s.emailValue.SetText(user.Email)
}

func (s *profileScreen) confirmDeleteAccount() {
	loc := s.nav.loc

	dialog.ShowConfirm(loc.GetText(KeyDeleteAccount), loc.GetText(KeyConfirmDeleteAcct), func(confirmed bool) {
		if !confirmed {
			return
		}
		s.deleteAccount()
	}, s.nav.window)
}

func (s *profileScreen) deleteAccount() {
	loc := s.nav.loc

	go func() {
		result, err := s.nav.users.DeleteAccount(context.Background())
		fyne.Do(func() {
			if err != nil {
				if isUnauthorized(err) {
					s.showError(loc.GetText(KeySessionExpired))
					s.nav.redirectToLoginAfterDelay()
					return
				}
				s.showError(api.ErrorMessage(err, loc.GetText(KeyDeleteAcctError)))
				return
			}
			if !result.OK() {
				s.showError(result.Message(loc.GetText(KeyDeleteAcctError)))
				return
			}

			// The account is gone, so the stored session is useless.
			s.nav.Logout()
		})
	}()
}

func (s *profileScreen) showError(msg string) {
	s.errorLabel.SetText(msg)
	s.errorLabel.Show()
}
