package ui

import (
	"context"
	"log"
	"net/http"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/taskdesk/taskdesk/internal/api"
	"github.com/taskdesk/taskdesk/internal/model"
)

// loginScreen is the sign-in form
type loginScreen struct {
	nav *Navigator

	usernameEntry *widget.Entry
	passwordEntry *widget.Entry
	submitBtn     *widget.Button
	errorLabel    *widget.Label
	bannerLabel   *widget.Label
}

func newLoginScreen(n *Navigator) fyne.CanvasObject {
	s := &loginScreen{nav: n}
	return s.createUI()
}

func (s *loginScreen) createUI() fyne.CanvasObject {
	loc := s.nav.loc

	s.usernameEntry = widget.NewEntry()
	s.usernameEntry.SetPlaceHolder(loc.GetText(KeyUsername))
	s.usernameEntry.Validator = Required(loc)

	s.passwordEntry = widget.NewPasswordEntry()
	s.passwordEntry.SetPlaceHolder(loc.GetText(KeyPassword))
	s.passwordEntry.Validator = Chain(Required(loc), MinLength(loc, 6))
	s.passwordEntry.OnSubmitted = func(string) { s.onSubmit() }

	s.errorLabel = widget.NewLabel("")
	s.errorLabel.Wrapping = fyne.TextWrapWord
	s.errorLabel.Hide()

	// One-shot success message handed over by the previous screen, for
	// example after registration or a password reset.
	s.bannerLabel = widget.NewLabel("")
	s.bannerLabel.Wrapping = fyne.TextWrapWord
	if banner := s.nav.takeBanner(); banner != "" {
		s.bannerLabel.SetText(banner)
	} else {
		s.bannerLabel.Hide()
	}

	s.submitBtn = widget.NewButton(loc.GetText(KeyLoginSubmit), s.onSubmit)
	s.submitBtn.Importance = widget.HighImportance

	registerLink := widget.NewButton(loc.GetText(KeyGoToRegister), func() {
		s.nav.Open(RouteRegister)
	})
	forgotLink := widget.NewButton(loc.GetText(KeyGoToForgot), func() {
		s.nav.Open(RouteForgot)
	})
	registerLink.Importance = widget.LowImportance
	forgotLink.Importance = widget.LowImportance

	title := widget.NewLabel(loc.GetText(KeyLoginTitle))
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	form := container.NewVBox(
		title,
		s.bannerLabel,
		s.errorLabel,
		s.usernameEntry,
		s.passwordEntry,
		s.submitBtn,
		widget.NewSeparator(),
		registerLink,
		forgotLink,
	)

	return container.NewCenter(newFormWrap(form))
}

func (s *loginScreen) onSubmit() {
	loc := s.nav.loc

	if err := s.usernameEntry.Validate(); err != nil {
		s.showError(err.Error())
		return
	}
	if err := s.passwordEntry.Validate(); err != nil {
		s.showError(err.Error())
		return
	}

	creds := model.Credentials{
		Username: s.usernameEntry.Text,
		Password: s.passwordEntry.Text,
	}

	s.submitBtn.Disable()
	go func() {
		result, err := s.nav.auth.Login(context.Background(), creds)
		fyne.Do(func() {
			s.submitBtn.Enable()
			if err != nil {
				if api.StatusCode(err) == http.StatusUnauthorized {
					s.showError(loc.GetText(KeyLoginBadCreds))
				} else {
					s.showError(api.ErrorMessage(err, loc.GetText(KeyLoginError)))
				}
				return
			}
			if !result.OK() || result.Object == nil {
				s.showError(result.Message(loc.GetText(KeyLoginBadCreds)))
				return
			}

			log.Printf("ui: user %s signed in", result.Object.Username)
			s.nav.Open(RouteDashboard)
		})
	}()
}

func (s *loginScreen) showError(msg string) {
	s.bannerLabel.Hide()
	s.errorLabel.SetText(msg)
	s.errorLabel.Show()
}
