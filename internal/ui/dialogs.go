package ui

import (
	"errors"
	"net/url"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/yeager/fedora-l10n/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	statsLangEntry     *widget.Entry
	appLanguageSelect  *widget.Select
	notificationsCheck *widget.Check
	darkThemeCheck     *widget.Check

	languageCodes map[string]string // display name -> code
}

// ShowSettingsDialog creates and shows the settings dialog. onSaved runs
// after the new values have been stored.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	loc := sd.localization

	// Statistics language code, e.g. "sv" or "pt_BR"
	sd.statsLangEntry = widget.NewEntry()
	sd.statsLangEntry.SetPlaceHolder(config.DefaultLanguage)

	// UI language selection by display name
	sd.languageCodes = make(map[string]string)
	languageOptions := []string{}
	for code, name := range loc.GetAvailableLanguages() {
		sd.languageCodes[name] = code
		languageOptions = append(languageOptions, name)
	}
	sd.appLanguageSelect = widget.NewSelect(languageOptions, nil)

	sd.notificationsCheck = widget.NewCheck(loc.GetText(KeyNotifications), nil)
	sd.darkThemeCheck = widget.NewCheck("Dark theme", nil)

	form := container.NewVBox(
		widget.NewLabel(loc.GetText(KeyStatsLanguage)+":"),
		sd.statsLangEntry,

		widget.NewLabel(loc.GetText(KeyAppLanguage)+":"),
		sd.appLanguageSelect,

		widget.NewSeparator(),
		sd.notificationsCheck,
		sd.darkThemeCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		loc.GetText(KeySettings),
		loc.GetText(KeySave),
		loc.GetText(KeyCancel),
		form,
		sd.onConfirm,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.statsLangEntry.SetText(sd.settings.GetLanguage())

	current := sd.settings.GetAppLanguage()
	for name, code := range sd.languageCodes {
		if code == current {
			sd.appLanguageSelect.SetSelected(name)
			break
		}
	}

	sd.notificationsCheck.SetChecked(sd.settings.GetNotificationsEnabled())
	sd.darkThemeCheck.SetChecked(sd.settings.GetDarkTheme())
}

// onConfirm saves the settings when confirmed
func (sd *SettingsDialog) onConfirm(confirmed bool) {
	if !confirmed {
		return
	}

	sd.settings.SetLanguage(sd.statsLangEntry.Text)

	if code, ok := sd.languageCodes[sd.appLanguageSelect.Selected]; ok {
		sd.settings.SetAppLanguage(code)
	}

	sd.settings.SetNotificationsEnabled(sd.notificationsCheck.Checked)
	sd.settings.SetDarkTheme(sd.darkThemeCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// ShowAPIKeyDialog prompts for a Weblate API key and stores it with
// owner-only permissions. onSaved runs after a non-empty key was written.
func ShowAPIKeyDialog(window fyne.Window, localization *Localization, onSaved func()) {
	keyEntry := widget.NewPasswordEntry()
	keyEntry.SetPlaceHolder(localization.GetText(KeyAPIKeyPlaceholder))

	body := widget.NewLabel(localization.GetText(KeyAPIKeyBody))
	body.Wrapping = fyne.TextWrapWord

	content := container.NewVBox(body, keyEntry)

	d := dialog.NewCustomConfirm(
		localization.GetText(KeyAPIKeyTitle),
		localization.GetText(KeySave),
		localization.GetText(KeyCancel),
		content,
		func(confirmed bool) {
			if !confirmed {
				return
			}
			key := strings.TrimSpace(keyEntry.Text)
			if key == "" {
				return
			}
			if err := config.SaveAPIKey(key); err != nil {
				dialog.ShowError(err, window)
				return
			}
			if onSaved != nil {
				onSaved()
			}
		},
		window,
	)

	d.Resize(fyne.NewSize(APIKeyDialogWidth, 0))
	d.Show()
}

// ShowWelcomeDialog shows the first-run welcome dialog
func ShowWelcomeDialog(window fyne.Window, localization *Localization, onDone func()) {
	body := widget.NewLabel(localization.GetText(KeyWelcomeBody))
	body.Wrapping = fyne.TextWrapWord

	d := dialog.NewCustom(
		localization.GetText(KeyWelcomeTitle),
		localization.GetText(KeyGetStarted),
		body,
		window,
	)
	d.SetOnClosed(func() {
		if onDone != nil {
			onDone()
		}
	})
	d.Show()
}

// ShowAboutDialog shows the about dialog with a link to the project page
func ShowAboutDialog(window fyne.Window, localization *Localization) {
	title := widget.NewLabel(localization.GetText(KeyAppTitle))
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	comment := widget.NewLabel(localization.GetText(KeyAboutComment))
	comment.Alignment = fyne.TextAlignCenter

	homeURL, err := url.Parse(ProjectHomeURL)
	if err != nil {
		dialog.ShowError(errors.New("invalid project URL"), window)
		return
	}
	link := widget.NewHyperlink(ProjectHomeURL, homeURL)
	link.Alignment = fyne.TextAlignCenter

	content := container.NewVBox(title, comment, link)

	dialog.ShowCustom(localization.GetText(KeyAbout), "OK", content, window)
}
