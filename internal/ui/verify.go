package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/taskdesk/taskdesk/internal/api"
)

// verifyScreen confirms a freshly registered account with its emailed token.
// When constructed with a token the verification runs immediately; otherwise
// the screen shows the missing-token error and lets the user paste one.
type verifyScreen struct {
	nav *Navigator

	statusLabel *widget.Label
	tokenEntry  *widget.Entry
	verifyBtn   *widget.Button
	loginBtn    *widget.Button
}

func newVerifyScreen(n *Navigator, token string) fyne.CanvasObject {
	s := &verifyScreen{nav: n}
	content := s.createUI(token)
	if token != "" {
		s.verify(token)
	}
	return content
}

func (s *verifyScreen) createUI(token string) fyne.CanvasObject {
	loc := s.nav.loc

	title := widget.NewLabel(loc.GetText(KeyVerifyTitle))
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	s.statusLabel = widget.NewLabel(loc.GetText(KeyVerifyNoToken))
	s.statusLabel.Wrapping = fyne.TextWrapWord
	s.statusLabel.Alignment = fyne.TextAlignCenter

	s.tokenEntry = widget.NewEntry()
	s.tokenEntry.SetPlaceHolder("Token")
	s.tokenEntry.SetText(token)

	s.verifyBtn = widget.NewButton(loc.GetText(KeyVerifyTitle), func() {
		if s.tokenEntry.Text == "" {
			s.statusLabel.SetText(loc.GetText(KeyVerifyNoToken))
			return
		}
		s.verify(s.tokenEntry.Text)
	})
	s.verifyBtn.Importance = widget.HighImportance

	s.loginBtn = widget.NewButton(loc.GetText(KeyGoToLogin), func() {
		s.nav.Open(RouteLogin)
	})
	s.loginBtn.Importance = widget.LowImportance

	form := container.NewVBox(
		title,
		s.statusLabel,
		s.tokenEntry,
		s.verifyBtn,
		widget.NewSeparator(),
		s.loginBtn,
	)

	return container.NewCenter(newFormWrap(form))
}

func (s *verifyScreen) verify(token string) {
	loc := s.nav.loc

	s.statusLabel.SetText(loc.GetText(KeyVerifyVerifying))
	s.verifyBtn.Disable()

	go func() {
		result, err := s.nav.auth.Verify(context.Background(), token)
		fyne.Do(func() {
			s.verifyBtn.Enable()
			if err != nil {
				s.statusLabel.SetText(api.ErrorMessage(err, loc.GetText(KeyVerifyError)))
				return
			}
			if !result.OK() {
				s.statusLabel.SetText(result.Message(loc.GetText(KeyVerifyError)))
				return
			}

			s.statusLabel.SetText(loc.GetText(KeyVerifySuccess))
			s.tokenEntry.Hide()
			s.verifyBtn.Hide()
			s.loginBtn.OnTapped = func() {
				s.nav.OpenWithBanner(RouteLogin, loc.GetText(KeyVerifySuccess))
			}
			s.loginBtn.Importance = widget.HighImportance
			s.loginBtn.Refresh()
		})
	}()
}
