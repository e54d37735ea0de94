package ui

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/yeager/fedora-l10n/internal/cache"
	"github.com/yeager/fedora-l10n/internal/config"
	"github.com/yeager/fedora-l10n/internal/export"
	"github.com/yeager/fedora-l10n/internal/model"
	"github.com/yeager/fedora-l10n/internal/platform"
	"github.com/yeager/fedora-l10n/internal/stats"
)

// RootUI represents the main UI structure
type RootUI struct {
	window fyne.Window
	app    fyne.App

	service      stats.Loader
	store        *cache.Store
	settings     *config.Settings
	localization *Localization

	// Data
	dataMutex      sync.RWMutex
	rows           []model.ProjectOverview
	filteredRows   []model.ProjectOverview
	componentRows  []model.ComponentOverview
	currentProject *model.ProjectSummary
	lastUpdated    time.Time

	// Top panel
	filterEntry *widget.Entry
	langEntry   *widget.Entry
	refreshBtn  *widget.Button
	heatmapBtn  *widget.Button
	exportBtn   *widget.Button

	// Views
	projectList   *widget.List
	componentList *widget.List
	projectTitle  *widget.Label
	centerStack   *fyne.Container

	// Status bar
	statusLabel *widget.Label

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite

	// UI update debouncing
	lastUIUpdate  time.Time
	uiUpdateMutex sync.Mutex
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, service stats.Loader, store *cache.Store) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetAppLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		service:      service,
		store:        store,
		settings:     settings,
		localization: localization,
	}

	service.SetUpdateCallback(ui.onJobUpdate)

	ui.setupUI()
	ui.createMenu()
	ui.setupShortcuts()

	window.SetTitle(localization.GetText(KeyAppTitle))
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	ui.showFirstRunDialogs()

	return ui
}

// Refresh starts a background refresh of the overview data
func (ui *RootUI) Refresh() {
	lang := ui.settings.GetLanguage()

	go func() {
		rows, err := ui.service.LoadOverview(context.Background(), lang)
		if err != nil {
			log.Printf("ui: overview refresh failed: %v", err)
			return
		}

		fyne.Do(func() {
			ui.dataMutex.Lock()
			ui.rows = rows
			ui.lastUpdated = time.Now()
			ui.dataMutex.Unlock()

			ui.applyFilter()
			ui.updateCenterView()
			ui.updateStatusBar()
		})

		ui.maybeNotifyLowTranslations(rows)
	}()
}

// setupUI creates the window content
func (ui *RootUI) setupUI() {
	// Filter entry in the middle of the top panel
	ui.filterEntry = widget.NewEntry()
	ui.filterEntry.SetPlaceHolder(ui.localization.GetText(KeyFilterProjects))
	ui.filterEntry.OnChanged = func(string) {
		ui.applyFilter()
		ui.updateCenterView()
	}

	// Statistics language, applied on Enter
	ui.langEntry = widget.NewEntry()
	ui.langEntry.SetText(ui.settings.GetLanguage())
	ui.langEntry.OnSubmitted = func(lang string) {
		lang = strings.TrimSpace(lang)
		if lang == "" {
			return
		}
		ui.settings.SetLanguage(lang)
		ui.Refresh()
	}

	ui.refreshBtn = widget.NewButton(IconRefresh, ui.Refresh)
	ui.refreshBtn.Importance = widget.LowImportance

	ui.heatmapBtn = widget.NewButton(IconHeatmap, ui.onToggleHeatmap)
	ui.heatmapBtn.Importance = widget.LowImportance

	ui.exportBtn = widget.NewButton(IconExport, ui.onExport)
	ui.exportBtn.Importance = widget.LowImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	langBox := container.NewBorder(nil, nil,
		widget.NewLabel(ui.localization.GetText(KeyLanguage)), nil,
		fixedWidth(64, ui.langEntry))

	rightCluster := container.NewHBox(langBox, ui.heatmapBtn, ui.exportBtn, ui.refreshBtn)
	topPanel := container.NewBorder(nil, nil, container.NewHBox(settingsBtn), rightCluster, ui.filterEntry)

	// Notification panel under the top row (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewHBox(ui.notificationSpinner, container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()

	topCombined := container.NewVBox(topPanel, ui.notificationContainer)

	// Project overview list
	ui.projectList = widget.NewList(
		func() int {
			ui.dataMutex.RLock()
			defer ui.dataMutex.RUnlock()
			return len(ui.filteredRows)
		},
		func() fyne.CanvasObject { return ui.createProjectItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateProjectItem(id, obj) },
	)

	// Component list for the project view
	ui.componentList = widget.NewList(
		func() int {
			ui.dataMutex.RLock()
			defer ui.dataMutex.RUnlock()
			return len(ui.componentRows)
		},
		func() fyne.CanvasObject { return ui.createComponentItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateComponentItem(id, obj) },
	)

	ui.projectTitle = widget.NewLabel("")
	ui.projectTitle.TextStyle = fyne.TextStyle{Bold: true}

	ui.centerStack = container.NewStack(ui.projectList)

	// Status bar with last refresh time
	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Alignment = fyne.TextAlignTrailing
	statusBar := container.NewBorder(widget.NewSeparator(), nil, nil, nil, ui.statusLabel)

	content := container.NewBorder(
		topCombined, // top
		statusBar,   // bottom
		nil,         // left
		nil,         // right
		ui.centerStack,
	)

	ui.window.SetContent(content)

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	refreshItem := fyne.NewMenuItem(ui.localization.GetText(KeyRefresh), ui.Refresh)
	exportItem := fyne.NewMenuItem(ui.localization.GetText(KeyExport), ui.onExport)
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	apiKeyItem := fyne.NewMenuItem(ui.localization.GetText(KeyAPIKey), ui.onShowAPIKey)
	clearCacheItem := fyne.NewMenuItem(ui.localization.GetText(KeyClearCache), ui.onClearCache)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyAppLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onAppLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	aboutItem := fyne.NewMenuItem(ui.localization.GetText(KeyAbout), ui.onShowAbout)

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile),
			refreshItem, exportItem,
			fyne.NewMenuItemSeparator(),
			apiKeyItem, clearCacheItem, settingsItem,
		),
		languageMenu,
		fyne.NewMenu(ui.localization.GetText(KeyHelp), aboutItem),
	)

	ui.window.SetMainMenu(mainMenu)
}

// setupShortcuts registers keyboard shortcuts
func (ui *RootUI) setupShortcuts() {
	canvas := ui.window.Canvas()

	canvas.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyQ, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) {
		ui.app.Quit()
	})
	canvas.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyE, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) {
		ui.onExport()
	})
	canvas.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyR, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) {
		ui.Refresh()
	})

	canvas.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyF5 {
			ui.Refresh()
		}
	})
}

// showFirstRunDialogs shows the welcome and API key dialogs when needed
func (ui *RootUI) showFirstRunDialogs() {
	if !ui.settings.GetWelcomeDone() {
		ShowWelcomeDialog(ui.window, ui.localization, func() {
			ui.settings.SetWelcomeDone(true)
			if !config.HasAPIKey() {
				ShowAPIKeyDialog(ui.window, ui.localization, ui.Refresh)
			}
		})
		return
	}

	if !config.HasAPIKey() {
		ShowAPIKeyDialog(ui.window, ui.localization, ui.Refresh)
	}
}

// createProjectItem creates a new project row widget for the list
func (ui *RootUI) createProjectItem() fyne.CanvasObject {
	row := NewProjectRow(model.ProjectOverview{}, ui.localization)
	row.SetCallbacks(ui.openProject, ui.openURL)
	return row
}

// updateProjectItem updates a list item with the row at the given index
func (ui *RootUI) updateProjectItem(id widget.ListItemID, obj fyne.CanvasObject) {
	row, ok := obj.(*ProjectRow)
	if !ok {
		log.Printf("Warning: unexpected project list item type %T", obj)
		return
	}

	ui.dataMutex.RLock()
	defer ui.dataMutex.RUnlock()
	if id < 0 || id >= len(ui.filteredRows) {
		return
	}
	row.UpdateRow(ui.filteredRows[id])
}

// createComponentItem creates a new component row widget for the list
func (ui *RootUI) createComponentItem() fyne.CanvasObject {
	row := NewComponentRow(model.ComponentOverview{})
	row.SetCallbacks(ui.openURL)
	return row
}

// updateComponentItem updates a list item with the row at the given index
func (ui *RootUI) updateComponentItem(id widget.ListItemID, obj fyne.CanvasObject) {
	row, ok := obj.(*ComponentRow)
	if !ok {
		log.Printf("Warning: unexpected component list item type %T", obj)
		return
	}

	ui.dataMutex.RLock()
	defer ui.dataMutex.RUnlock()
	if id < 0 || id >= len(ui.componentRows) {
		return
	}
	row.UpdateRow(ui.componentRows[id])
}

// applyFilter recomputes the filtered rows from the filter entry text
func (ui *RootUI) applyFilter() {
	filter := strings.TrimSpace(ui.filterEntry.Text)

	ui.dataMutex.Lock()
	defer ui.dataMutex.Unlock()

	ui.filteredRows = ui.filteredRows[:0]
	for _, row := range ui.rows {
		if row.Project.MatchesFilter(filter) {
			ui.filteredRows = append(ui.filteredRows, row)
		}
	}
}

// updateCenterView rebuilds the center area for the active page
func (ui *RootUI) updateCenterView() {
	ui.dataMutex.RLock()
	currentProject := ui.currentProject
	filtered := make([]model.ProjectOverview, len(ui.filteredRows))
	copy(filtered, ui.filteredRows)
	ui.dataMutex.RUnlock()

	ui.centerStack.Objects = nil

	switch {
	case currentProject != nil:
		backBtn := widget.NewButton(IconBack+" "+ui.localization.GetText(KeyBack), ui.closeProject)
		backBtn.Importance = widget.LowImportance
		openBtn := widget.NewButton(IconLink+" "+ui.localization.GetText(KeyOpenInWeblate), func() {
			ui.openURL(currentProject.WebURL)
		})
		openBtn.Importance = widget.LowImportance

		header := container.NewBorder(nil, nil, backBtn, openBtn, ui.projectTitle)
		page := container.NewBorder(header, nil, nil, nil, ui.componentList)
		ui.centerStack.Objects = []fyne.CanvasObject{page}
		ui.componentList.Refresh()

	case ui.settings.GetHeatmapMode():
		heatmap := NewHeatmap(filtered, ui.openProject)
		ui.centerStack.Objects = []fyne.CanvasObject{container.NewVScroll(heatmap)}

	default:
		ui.centerStack.Objects = []fyne.CanvasObject{ui.projectList}
		ui.projectList.Refresh()
	}

	ui.centerStack.Refresh()
}

// updateStatusBar refreshes the last-updated text
func (ui *RootUI) updateStatusBar() {
	ui.dataMutex.RLock()
	updated := ui.lastUpdated
	ui.dataMutex.RUnlock()

	if updated.IsZero() {
		ui.statusLabel.SetText("")
		return
	}
	ui.statusLabel.SetText(fmt.Sprintf(
		ui.localization.GetText(KeyLastUpdated),
		updated.Format("15:04:05"),
	))
}

// openProject switches to the component view for the given project
func (ui *RootUI) openProject(project model.ProjectSummary) {
	ui.dataMutex.Lock()
	ui.currentProject = &project
	ui.componentRows = nil
	ui.dataMutex.Unlock()

	ui.projectTitle.SetText(project.DisplayName())
	ui.updateCenterView()

	lang := ui.settings.GetLanguage()
	go func() {
		rows, err := ui.service.LoadProject(context.Background(), project.Slug, lang)
		if err != nil {
			log.Printf("ui: component refresh failed for %s: %v", project.Slug, err)
			return
		}

		fyne.Do(func() {
			ui.dataMutex.Lock()
			stillOpen := ui.currentProject != nil && ui.currentProject.Slug == project.Slug
			if stillOpen {
				ui.componentRows = rows
			}
			ui.dataMutex.Unlock()

			if stillOpen {
				ui.componentList.Refresh()
			}
		})
	}()
}

// closeProject returns from the component view to the project overview
func (ui *RootUI) closeProject() {
	ui.service.Cancel()

	ui.dataMutex.Lock()
	ui.currentProject = nil
	ui.componentRows = nil
	ui.dataMutex.Unlock()

	ui.updateCenterView()
}

// onToggleHeatmap switches between list and heatmap project views
func (ui *RootUI) onToggleHeatmap() {
	ui.settings.SetHeatmapMode(!ui.settings.GetHeatmapMode())
	ui.updateCenterView()
}

// onExport asks for a target file and writes the current overview rows
func (ui *RootUI) onExport() {
	ui.dataMutex.RLock()
	rows := make([]model.ProjectOverview, len(ui.rows))
	copy(rows, ui.rows)
	ui.dataMutex.RUnlock()

	fileDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if writer == nil {
			return // cancelled
		}
		defer writer.Close()

		format := export.FormatCSV
		if strings.HasSuffix(strings.ToLower(writer.URI().Name()), ".json") {
			format = export.FormatJSON
		}

		if err := export.Write(writer, format, rows); err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		log.Printf("Exported %d rows to %s", len(rows), writer.URI().Name())
	}, ui.window)

	fileDialog.SetFileName(fmt.Sprintf("fedora-l10n-%s.csv", ui.settings.GetLanguage()))
	fileDialog.Show()
}

// onClearCache removes all cached API responses
func (ui *RootUI) onClearCache() {
	if ui.store == nil {
		return
	}
	if err := ui.store.Clear(); err != nil {
		dialog.ShowError(err, ui.window)
		return
	}
	widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyCacheCleared)), ui.window.Canvas())
}

// onAppLanguageChange handles UI language change
func (ui *RootUI) onAppLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetAppLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.filterEntry.SetPlaceHolder(ui.localization.GetText(KeyFilterProjects))
	ui.updateStatusBar()
	ui.updateCenterView()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.localization.SetLanguage(ui.settings.GetAppLanguage())
		ui.refreshUITexts()
		ui.createMenu()
		ui.langEntry.SetText(ui.settings.GetLanguage())
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeySettingsSaved)), ui.window.Canvas())
		ui.Refresh()
	})
}

// onShowAPIKey shows the API key dialog
func (ui *RootUI) onShowAPIKey() {
	ShowAPIKeyDialog(ui.window, ui.localization, ui.Refresh)
}

// onShowAbout shows the about dialog
func (ui *RootUI) onShowAbout() {
	ShowAboutDialog(ui.window, ui.localization)
}

// openURL opens the given URL in the system browser
func (ui *RootUI) openURL(url string) {
	if url == "" {
		return
	}
	if err := platform.OpenInBrowser(url); err != nil {
		log.Printf("ui: failed to open %s: %v", url, err)
	}
}

// onJobUpdate reflects refresh job progress in the notification panel
func (ui *RootUI) onJobUpdate(job model.RefreshJob) {
	switch {
	case job.Status == model.RefreshStatusError:
		message := ui.localization.GetText(KeyUnableToRefresh) + ": " + job.LastError

		ui.dataMutex.RLock()
		haveRows := len(ui.rows) > 0
		ui.dataMutex.RUnlock()
		if haveRows {
			message += ". " + ui.localization.GetText(KeyShowingCachedData)
		}

		ui.showNotification(message, false)
		return
	case job.Status.IsFinished():
		ui.hideNotification()
		return
	}

	// Debounce intermediate progress updates
	ui.uiUpdateMutex.Lock()
	if time.Since(ui.lastUIUpdate) < UIUpdateDebounce {
		ui.uiUpdateMutex.Unlock()
		return
	}
	ui.lastUIUpdate = time.Now()
	ui.uiUpdateMutex.Unlock()

	var message string
	switch {
	case job.Kind == model.RefreshKindProject:
		message = ui.localization.GetText(KeyLoadingComponents)
	case job.Total > 0:
		message = fmt.Sprintf(ui.localization.GetText(KeyLoadingStatistics), job.Done, job.Total)
	case job.TotalPages > 0:
		message = fmt.Sprintf(ui.localization.GetText(KeyLoadingProjectsPage), job.Page, job.TotalPages)
	default:
		message = ui.localization.GetText(KeyLoadingProjects)
	}

	ui.showNotification(message, true)
}

// maybeNotifyLowTranslations sends a desktop notification listing projects
// under the attention threshold, if notifications are enabled.
func (ui *RootUI) maybeNotifyLowTranslations(rows []model.ProjectOverview) {
	if !ui.settings.GetNotificationsEnabled() {
		return
	}

	names := stats.LowTranslated(rows)
	if len(names) == 0 {
		return
	}

	shown := names
	if len(shown) > 5 {
		shown = shown[:5]
	}

	ui.app.SendNotification(&fyne.Notification{
		Title: ui.localization.GetText(KeyLowTranslationsTitle),
		Content: fmt.Sprintf(
			ui.localization.GetText(KeyLowTranslationsBody),
			len(names), strings.Join(shown, ", "),
		),
	})
}

// showNotification displays a message in the notification panel under the top
// row. When spinning is true, a spinner indicates background activity.
func (ui *RootUI) showNotification(message string, spinning bool) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationLabel.SetText(message)
		if spinning {
			ui.notificationSpinner.Show()
		} else {
			ui.notificationSpinner.Hide()
		}
		ui.notificationContainer.Show()
		ui.notificationContainer.Refresh()
	})
}

// hideNotification hides the notification panel.
func (ui *RootUI) hideNotification() {
	if ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationSpinner.Hide()
		ui.notificationContainer.Hide()
	})
}
