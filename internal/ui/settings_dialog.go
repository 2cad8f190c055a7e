package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/taskdesk/taskdesk/internal/config"
)

// SettingsDialog edits the server URL and the interface language
type SettingsDialog struct {
	settings *config.Settings
	loc      *Localization
	window   fyne.Window
	dialog   *dialog.ConfirmDialog

	// UI components
	serverURLEntry *widget.Entry
	languageSelect *widget.Select
	languageCodes  []string
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, loc *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		loc:      loc,
		window:   window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.serverURLEntry = widget.NewEntry()
	sd.serverURLEntry.SetPlaceHolder(config.DefaultServerURL)

	// Language selection, codes sorted for a stable order
	labels := sd.settings.GetLanguageOptions()
	sd.languageCodes = make([]string, 0, len(labels))
	for code := range labels {
		sd.languageCodes = append(sd.languageCodes, code)
	}
	sort.Strings(sd.languageCodes)

	options := make([]string, 0, len(sd.languageCodes))
	for _, code := range sd.languageCodes {
		options = append(options, labels[code])
	}
	sd.languageSelect = widget.NewSelect(options, nil)

	form := container.NewVBox(
		widget.NewLabel("Server URL:"),
		sd.serverURLEntry,
		widget.NewLabel("Language:"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm("Settings",
		sd.loc.GetText(KeySave), sd.loc.GetText(KeyCancel),
		form, sd.onConfirm, sd.window)
}

// loadCurrentSettings fills the dialog with the stored values
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.serverURLEntry.SetText(sd.settings.GetServerURL())

	current := sd.settings.GetLanguage()
	for i, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelectedIndex(i)
			break
		}
	}
}

// onConfirm persists the dialog values. The server URL takes effect on the
// next start; the language applies immediately.
func (sd *SettingsDialog) onConfirm(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.serverURLEntry.Text != "" {
		sd.settings.SetServerURL(sd.serverURLEntry.Text)
	}

	if idx := sd.languageSelect.SelectedIndex(); idx >= 0 && idx < len(sd.languageCodes) {
		code := sd.languageCodes[idx]
		sd.settings.SetLanguage(code)
		sd.loc.SetLanguage(code)
	}
}
