package ui

import (
	"context"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/taskdesk/taskdesk/internal/api"
)

// changePasswordScreen lets the signed-in user replace their password
type changePasswordScreen struct {
	nav *Navigator

	passwordNew  *widget.Entry
	passwordConf *widget.Entry
	submitBtn    *widget.Button
	errorLabel   *widget.Label
}

func newChangePasswordScreen(n *Navigator) fyne.CanvasObject {
	s := &changePasswordScreen{nav: n}
	return s.createUI()
}

func (s *changePasswordScreen) createUI() fyne.CanvasObject {
	loc := s.nav.loc

	s.passwordNew = widget.NewPasswordEntry()
	s.passwordNew.SetPlaceHolder(loc.GetText(KeyNewPassword))
	s.passwordNew.Validator = Chain(Required(loc), MinLength(loc, 6))

	s.passwordConf = widget.NewPasswordEntry()
	s.passwordConf.SetPlaceHolder(loc.GetText(KeyConfirmPassword))
	s.passwordConf.Validator = Required(loc)
	s.passwordConf.OnSubmitted = func(string) { s.onSubmit() }

	s.errorLabel = widget.NewLabel("")
	s.errorLabel.Wrapping = fyne.TextWrapWord
	s.errorLabel.Hide()

	s.submitBtn = widget.NewButton(loc.GetText(KeyChangeTitle), s.onSubmit)
	s.submitBtn.Importance = widget.HighImportance

	backBtn := widget.NewButton(loc.GetText(KeyBack), func() {
		s.nav.Open(RouteDashboard)
	})
	backBtn.Importance = widget.LowImportance

	title := widget.NewLabel(loc.GetText(KeyChangeTitle))
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	form := container.NewVBox(
		title,
		s.errorLabel,
		s.passwordNew,
		s.passwordConf,
		s.submitBtn,
		widget.NewSeparator(),
		backBtn,
	)

	return container.NewCenter(newFormWrap(form))
}

func (s *changePasswordScreen) onSubmit() {
	loc := s.nav.loc

	if err := s.passwordNew.Validate(); err != nil {
		s.showError(err.Error())
		return
	}
	if err := s.passwordConf.Validate(); err != nil {
		s.showError(err.Error())
		return
	}
	if s.passwordNew.Text != s.passwordConf.Text {
		s.showError(loc.GetText(KeyPasswordMismatch))
		return
	}

	username := s.nav.session.Username()
	if username == "" {
		s.showError(loc.GetText(KeyChangeNoUser))
		return
	}
	newPassword := s.passwordNew.Text

	s.submitBtn.Disable()
	go func() {
		result, err := s.nav.auth.ChangePassword(context.Background(), username, newPassword)
		fyne.Do(func() {
			s.submitBtn.Enable()
			if err != nil {
				if isUnauthorized(err) {
					s.showError(loc.GetText(KeySessionExpired))
					s.nav.redirectToLoginAfterDelay()
					return
				}
				s.showError(api.ErrorMessage(err, loc.GetText(KeyChangeError)))
				return
			}
			if !result.OK() {
				s.showError(result.Message(loc.GetText(KeyChangeError)))
				return
			}

			ShowToast(s.nav.window, loc.GetText(KeyChangeSuccess), ToastSuccess)
			go func() {
				time.Sleep(RedirectDelay)
				fyne.Do(func() {
					s.nav.Open(RouteDashboard)
				})
			}()
		})
	}()
}

func (s *changePasswordScreen) showError(msg string) {
	s.errorLabel.SetText(msg)
	s.errorLabel.Show()
}
