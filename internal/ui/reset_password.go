package ui

import (
	"context"
	"net/http"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/taskdesk/taskdesk/internal/api"
)

// resetPasswordScreen sets a new password using a recovery token. The token
// normally arrives pre-filled from the recovery email link; the entry stays
// editable so it can also be pasted by hand.
type resetPasswordScreen struct {
	nav *Navigator

	tokenEntry   *widget.Entry
	passwordNew  *widget.Entry
	passwordConf *widget.Entry
	submitBtn    *widget.Button
	errorLabel   *widget.Label
}

func newResetPasswordScreen(n *Navigator, token string) fyne.CanvasObject {
	s := &resetPasswordScreen{nav: n}
	return s.createUI(token)
}

func (s *resetPasswordScreen) createUI(token string) fyne.CanvasObject {
	loc := s.nav.loc

	s.tokenEntry = widget.NewEntry()
	s.tokenEntry.SetPlaceHolder("Token")
	s.tokenEntry.Validator = Required(loc)
	s.tokenEntry.SetText(token)

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

	s.submitBtn = widget.NewButton(loc.GetText(KeyResetSubmit), s.onSubmit)
	s.submitBtn.Importance = widget.HighImportance

	backLink := widget.NewButton(loc.GetText(KeyGoToLogin), func() {
		s.nav.Open(RouteLogin)
	})
	backLink.Importance = widget.LowImportance

	title := widget.NewLabel(loc.GetText(KeyResetTitle))
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	form := container.NewVBox(
		title,
		s.errorLabel,
		s.tokenEntry,
		s.passwordNew,
		s.passwordConf,
		s.submitBtn,
		widget.NewSeparator(),
		backLink,
	)

	return container.NewCenter(newFormWrap(form))
}

func (s *resetPasswordScreen) onSubmit() {
	loc := s.nav.loc

	for _, entry := range []*widget.Entry{s.tokenEntry, s.passwordNew, s.passwordConf} {
		if err := entry.Validate(); err != nil {
			s.showError(err.Error())
			return
		}
	}
	if s.passwordNew.Text != s.passwordConf.Text {
		s.showError(loc.GetText(KeyPasswordMismatch))
		return
	}

	token := s.tokenEntry.Text
	newPassword := s.passwordNew.Text

	s.submitBtn.Disable()
	go func() {
		result, err := s.nav.auth.ResetPassword(context.Background(), token, newPassword)
		fyne.Do(func() {
			s.submitBtn.Enable()
			if err != nil {
				switch api.StatusCode(err) {
				case http.StatusBadRequest, http.StatusUnauthorized, http.StatusNotFound:
					s.showError(loc.GetText(KeyTokenInvalid))
				default:
					s.showError(api.ErrorMessage(err, loc.GetText(KeyResetError)))
				}
				return
			}
			if !result.OK() {
				s.showError(result.Message(loc.GetText(KeyResetError)))
				return
			}

			s.nav.OpenWithBanner(RouteLogin, loc.GetText(KeyResetSuccess))
		})
	}()
}

func (s *resetPasswordScreen) showError(msg string) {
	s.errorLabel.SetText(msg)
	s.errorLabel.Show()
}
