package ui

import (
	"sort"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/cron-manager/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	crontabEntry   *widget.Entry
	shellEntry     *widget.Entry
	pythonEntry    *widget.Entry
	timeoutEntry   *widget.Entry
	languageSelect *widget.Select
	confirmCheck   *widget.Check

	languageCodes []string
}

// ShowSettingsDialog builds and shows the settings dialog; onSaved runs after a save
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	NewSettingsDialog(settings, localization, window, onSaved).Show()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
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
	text := sd.localization.GetText

	sd.crontabEntry = widget.NewEntry()
	sd.crontabEntry.SetPlaceHolder(config.DefaultOptions().CrontabCommand)

	sd.shellEntry = widget.NewEntry()
	sd.shellEntry.SetPlaceHolder(config.DefaultOptions().ShellInterpreter)

	sd.pythonEntry = widget.NewEntry()
	sd.pythonEntry.SetPlaceHolder(config.DefaultOptions().PythonInterpreter)

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder(strconv.Itoa(int(config.MinCommandTimeout.Seconds())) + "-" +
		strconv.Itoa(int(config.MaxCommandTimeout.Seconds())))

	// Language selection shows display names, stores codes
	labels := sd.settings.GetLanguageOptions()
	for code := range labels {
		sd.languageCodes = append(sd.languageCodes, code)
	}
	sort.Strings(sd.languageCodes)
	names := make([]string, 0, len(sd.languageCodes))
	for _, code := range sd.languageCodes {
		names = append(names, labels[code])
	}
	sd.languageSelect = widget.NewSelect(names, nil)

	sd.confirmCheck = widget.NewCheck(text(KeyConfirmDeleteOpt), nil)

	form := container.NewVBox(
		widget.NewLabel(text(KeyCrontabCommand)+":"),
		sd.crontabEntry,

		widget.NewLabel(text(KeyShellInterpreter)+":"),
		sd.shellEntry,

		widget.NewLabel(text(KeyPythonInterpreter)+":"),
		sd.pythonEntry,

		widget.NewLabel(text(KeyCommandTimeout)+":"),
		sd.timeoutEntry,

		widget.NewSeparator(),

		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,
		sd.confirmCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.crontabEntry.SetText(sd.settings.GetCrontabCommand())
	sd.shellEntry.SetText(sd.settings.GetShellInterpreter())
	sd.pythonEntry.SetText(sd.settings.GetPythonInterpreter())
	sd.timeoutEntry.SetText(strconv.Itoa(int(sd.settings.GetCommandTimeout().Seconds())))
	sd.confirmCheck.SetChecked(sd.settings.GetConfirmDelete())

	current := sd.settings.GetLanguage()
	labels := sd.settings.GetLanguageOptions()
	if name, ok := labels[current]; ok {
		sd.languageSelect.SetSelected(name)
	}
}

// selectedLanguage maps the selected display name back to its code
func (sd *SettingsDialog) selectedLanguage() string {
	labels := sd.settings.GetLanguageOptions()
	for _, code := range sd.languageCodes {
		if labels[code] == sd.languageSelect.Selected {
			return code
		}
	}
	return ""
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// apply writes the dialog values to preferences; empty fields restore defaults
func (sd *SettingsDialog) apply() {
	sd.settings.SetCrontabCommand(sd.crontabEntry.Text)
	sd.settings.SetShellInterpreter(sd.shellEntry.Text)
	sd.settings.SetPythonInterpreter(sd.pythonEntry.Text)

	if secs, err := strconv.Atoi(sd.timeoutEntry.Text); err == nil {
		sd.settings.SetCommandTimeout(time.Duration(secs) * time.Second)
	}

	sd.settings.SetConfirmDelete(sd.confirmCheck.Checked)

	if lang := sd.selectedLanguage(); lang != "" {
		sd.settings.SetLanguage(lang)
	}
}
