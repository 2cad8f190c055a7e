package ui

import (
	"context"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/taskdesk/taskdesk/internal/api"
	"github.com/taskdesk/taskdesk/internal/model"
)

// registerScreen is the account creation form
type registerScreen struct {
	nav *Navigator

	nameEntry     *widget.Entry
	usernameEntry *widget.Entry
	emailEntry    *widget.Entry
	passwordEntry *widget.Entry
	strengthBar   *widget.ProgressBar
	strengthLabel *widget.Label
	submitBtn     *widget.Button
	errorLabel    *widget.Label
}

func newRegisterScreen(n *Navigator) fyne.CanvasObject {
	s := &registerScreen{nav: n}
	return s.createUI()
}

func (s *registerScreen) createUI() fyne.CanvasObject {
	loc := s.nav.loc

	s.nameEntry = widget.NewEntry()
	s.nameEntry.SetPlaceHolder(loc.GetText(KeyFullName))
	s.nameEntry.Validator = Chain(Required(loc), MinLength(loc, 3))

	s.usernameEntry = widget.NewEntry()
	s.usernameEntry.SetPlaceHolder(loc.GetText(KeyUsername))
	s.usernameEntry.Validator = Chain(Required(loc), MinLength(loc, 3))

	s.emailEntry = widget.NewEntry()
	s.emailEntry.SetPlaceHolder(loc.GetText(KeyEmail))
	s.emailEntry.Validator = Chain(Required(loc), EmailFormat(loc))

	s.passwordEntry = widget.NewPasswordEntry()
	s.passwordEntry.SetPlaceHolder(loc.GetText(KeyPassword))
	s.passwordEntry.Validator = Chain(Required(loc), MinLength(loc, 6))
	s.passwordEntry.OnChanged = s.onPasswordChanged

	s.strengthBar = widget.NewProgressBar()
	s.strengthBar.TextFormatter = func() string { return "" }
	s.strengthLabel = widget.NewLabel("")

	s.errorLabel = widget.NewLabel("")
	s.errorLabel.Wrapping = fyne.TextWrapWord
	s.errorLabel.Hide()

	s.submitBtn = widget.NewButton(loc.GetText(KeyRegisterSubmit), s.onSubmit)
	s.submitBtn.Importance = widget.HighImportance

	loginLink := widget.NewButton(loc.GetText(KeyGoToLogin), func() {
		s.nav.Open(RouteLogin)
	})
	loginLink.Importance = widget.LowImportance

	title := widget.NewLabel(loc.GetText(KeyRegisterTitle))
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	form := container.NewVBox(
		title,
		s.errorLabel,
		s.nameEntry,
		s.usernameEntry,
		s.emailEntry,
		s.passwordEntry,
		container.NewBorder(nil, nil, nil, s.strengthLabel, s.strengthBar),
		s.submitBtn,
		widget.NewSeparator(),
		loginLink,
	)

	return container.NewCenter(newFormWrap(form))
}

// onPasswordChanged refreshes the strength meter as the user types
func (s *registerScreen) onPasswordChanged(password string) {
	level, labelKey := PasswordStrength(password)

	s.strengthBar.SetValue(float64(level) / float64(StrengthStrong))
	if labelKey == "" {
		s.strengthLabel.SetText("")
		return
	}
	s.strengthLabel.SetText(s.nav.loc.GetText(labelKey))
}

func (s *registerScreen) onSubmit() {
	loc := s.nav.loc

	for _, entry := range []*widget.Entry{s.nameEntry, s.usernameEntry, s.emailEntry, s.passwordEntry} {
		if err := entry.Validate(); err != nil {
			s.showError(err.Error())
			return
		}
	}

	reg := model.Registration{
		Name:     s.nameEntry.Text,
		Username: s.usernameEntry.Text,
		Email:    s.emailEntry.Text,
		Password: s.passwordEntry.Text,
	}

	s.submitBtn.Disable()
	go func() {
		result, err := s.nav.auth.Register(context.Background(), reg)
		fyne.Do(func() {
			s.submitBtn.Enable()
			if err != nil {
				s.showError(api.ErrorMessage(err, loc.GetText(KeyRegisterError)))
				return
			}
			if !result.OK() {
				s.showError(result.Message(loc.GetText(KeyRegisterError)))
				return
			}

			ShowToast(s.nav.window, loc.GetText(KeyRegisterSuccess), ToastSuccess)
			go func() {
				time.Sleep(RedirectDelay)
				fyne.Do(func() {
					s.nav.OpenWithBanner(RouteLogin, loc.GetText(KeyRegisterSuccess))
				})
			}()
		})
	}()
}

func (s *registerScreen) showError(msg string) {
	s.errorLabel.SetText(msg)
	s.errorLabel.Show()
}
