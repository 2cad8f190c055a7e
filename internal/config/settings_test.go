package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestServerURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	u := settings.GetServerURL()
	if u != DefaultServerURL {
		t.Errorf("Expected default server URL %s, got %s", DefaultServerURL, u)
	}

	// Test setting custom value
	settings.SetServerURL("https://tasks.example.com/api")
	if settings.GetServerURL() != "https://tasks.example.com/api" {
		t.Errorf("Expected custom server URL, got %s", settings.GetServerURL())
	}

	// Trailing slashes are stripped
	settings.SetServerURL("https://tasks.example.com/api/")
	if settings.GetServerURL() != "https://tasks.example.com/api" {
		t.Errorf("Expected trailing slash to be stripped, got %s", settings.GetServerURL())
	}

	// Empty resets to default
	settings.SetServerURL("")
	if settings.GetServerURL() != DefaultServerURL {
		t.Errorf("Expected empty URL to reset to default, got %s", settings.GetServerURL())
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if settings.GetLanguage() != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, settings.GetLanguage())
	}

	// Test setting custom value
	settings.SetLanguage("es")
	if settings.GetLanguage() != "es" {
		t.Errorf("Expected language 'es', got %s", settings.GetLanguage())
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()
	for _, lang := range []string{"system", "en", "es"} {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}
}
