package ui

import (
	"context"
	"net/http"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/taskdesk/taskdesk/internal/api"
)

// forgotPasswordScreen asks for an email and requests a recovery link
type forgotPasswordScreen struct {
	nav *Navigator

	emailEntry *widget.Entry
	submitBtn  *widget.Button
	errorLabel *widget.Label

	content *fyne.Container
}

func newForgotPasswordScreen(n *Navigator) fyne.CanvasObject {
	s := &forgotPasswordScreen{nav: n}
	return s.createUI()
}

func (s *forgotPasswordScreen) createUI() fyne.CanvasObject {
	loc := s.nav.loc

	s.emailEntry = widget.NewEntry()
	s.emailEntry.SetPlaceHolder(loc.GetText(KeyEmail))
	s.emailEntry.Validator = Chain(Required(loc), EmailFormat(loc))
	s.emailEntry.OnSubmitted = func(string) { s.onSubmit() }

	s.errorLabel = widget.NewLabel("")
	s.errorLabel.Wrapping = fyne.TextWrapWord
	s.errorLabel.Hide()

	s.submitBtn = widget.NewButton(loc.GetText(KeyForgotSubmit), s.onSubmit)
	s.submitBtn.Importance = widget.HighImportance

	backLink := widget.NewButton(loc.GetText(KeyGoToLogin), func() {
		s.nav.Open(RouteLogin)
	})
	backLink.Importance = widget.LowImportance

	title := widget.NewLabel(loc.GetText(KeyForgotTitle))
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	s.content = container.NewVBox(
		title,
		s.errorLabel,
		s.emailEntry,
		s.submitBtn,
		widget.NewSeparator(),
		backLink,
	)

	return container.NewCenter(newFormWrap(s.content))
}

func (s *forgotPasswordScreen) onSubmit() {
	loc := s.nav.loc

	if err := s.emailEntry.Validate(); err != nil {
		s.showError(err.Error())
		return
	}

	email := s.emailEntry.Text
	s.submitBtn.Disable()
	go func() {
		result, err := s.nav.auth.ForgotPassword(context.Background(), email)
		fyne.Do(func() {
			s.submitBtn.Enable()
			if err != nil {
				if api.StatusCode(err) == http.StatusNotFound {
					s.showError(loc.GetText(KeyForgotNotFound))
				} else {
					s.showError(api.ErrorMessage(err, loc.GetText(KeyForgotError)))
				}
				return
			}
			if !result.OK() {
				s.showError(result.Message(loc.GetText(KeyForgotError)))
				return
			}

			s.showSent()
		})
	}()
}

// showSent swaps the form for the confirmation state, keeping a way back in
// case the user typed the wrong address.
func (s *forgotPasswordScreen) showSent() {
	loc := s.nav.loc

	sentLabel := widget.NewLabel(loc.GetText(KeyForgotSent))
	sentLabel.Wrapping = fyne.TextWrapWord
	sentLabel.Alignment = fyne.TextAlignCenter

	tryAnotherBtn := widget.NewButton(loc.GetText(KeyForgotTryAnother), func() {
		s.nav.Open(RouteForgot)
	})
	loginBtn := widget.NewButton(loc.GetText(KeyGoToLogin), func() {
		s.nav.Open(RouteLogin)
	})
	loginBtn.Importance = widget.LowImportance

	s.content.Objects = []fyne.CanvasObject{
		sentLabel,
		tryAnotherBtn,
		loginBtn,
	}
	s.content.Refresh()
}

func (s *forgotPasswordScreen) showError(msg string) {
	s.errorLabel.SetText(msg)
	s.errorLabel.Show()
}
