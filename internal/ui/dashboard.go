package ui

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// dashboardScreen is the home screen after sign-in: a greeting and tiles
// leading to the main areas of the app.
type dashboardScreen struct {
	nav *Navigator
}

func newDashboardScreen(n *Navigator) fyne.CanvasObject {
	s := &dashboardScreen{nav: n}
	return s.createUI(time.Now())
}

// greetingKey picks the greeting for the local hour: morning until 12,
// afternoon until 19, evening after.
func greetingKey(hour int) string {
	switch {
	case hour < 12:
		return KeyGreetingMorning
	case hour < 19:
		return KeyGreetingAfternoon
	default:
		return KeyGreetingEvening
	}
}

func (s *dashboardScreen) createUI(now time.Time) fyne.CanvasObject {
	loc := s.nav.loc

	greeting := loc.GetText(greetingKey(now.Hour()))
	if username := s.nav.session.Username(); username != "" {
		greeting = fmt.Sprintf("%s, %s", greeting, username)
	}

	greetingLabel := widget.NewLabel(greeting)
	greetingLabel.TextStyle = fyne.TextStyle{Bold: true}
	greetingLabel.Alignment = fyne.TextAlignCenter

	tasksTile := widget.NewButtonWithIcon(loc.GetText(KeyDashboardTasks), theme.ListIcon(), func() {
		s.nav.Open(RouteTasks)
	})
	tasksTile.Importance = widget.HighImportance

	profileTile := widget.NewButtonWithIcon(loc.GetText(KeyDashboardProfile), theme.AccountIcon(), func() {
		s.nav.Open(RouteProfile)
	})

	passwordTile := widget.NewButtonWithIcon(loc.GetText(KeyDashboardPassword), theme.VisibilityOffIcon(), func() {
		s.nav.Open(RouteChangePassword)
	})

	settingsBtn := widget.NewButtonWithIcon("", theme.SettingsIcon(), func() {
		NewSettingsDialog(s.nav.settings, loc, s.nav.window).Show()
	})
	settingsBtn.Importance = widget.LowImportance

	logoutBtn := widget.NewButtonWithIcon(loc.GetText(KeyLogout), theme.LogoutIcon(), func() {
		s.nav.Logout()
	})
	logoutBtn.Importance = widget.LowImportance

	tiles := container.NewVBox(
		greetingLabel,
		widget.NewSeparator(),
		tasksTile,
		profileTile,
		passwordTile,
		widget.NewSeparator(),
		container.NewBorder(nil, nil, settingsBtn, nil, logoutBtn),
	)

	return container.NewCenter(newFormWrap(tiles))
}
