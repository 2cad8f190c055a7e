package config

import (
	"strings"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyServerURL = "server_url"
	KeyLanguage  = "app_language"
)

// Default values
const (
	DefaultServerURL = "http://localhost:8080/api"
	DefaultLanguage  = "system"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetServerURL returns the configured backend base URL
func (s *Settings) GetServerURL() string {
	u := s.app.Preferences().String(KeyServerURL)
	if u == "" {
		s.SetServerURL(DefaultServerURL)
		return DefaultServerURL
	}
	return u
}

// SetServerURL sets the backend base URL
func (s *Settings) SetServerURL(u string) {
	u = strings.TrimRight(strings.TrimSpace(u), "/")
	if u == "" {
		u = DefaultServerURL
	}
	s.app.Preferences().SetString(KeyServerURL, u)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"es":     "Español",
	}
}
