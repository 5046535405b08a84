package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/ytget/cron-manager/internal/config"
	"github.com/ytget/cron-manager/internal/crontab"
	"github.com/ytget/cron-manager/internal/manager"
	"github.com/ytget/cron-manager/internal/model"
	"github.com/ytget/cron-manager/internal/platform"
)

// ManagerFactory builds a crontab manager from the current options
type ManagerFactory func(opts config.Options) manager.Manager

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	newManager   ManagerFactory
	svc          manager.Manager
	log          zerolog.Logger
	now          func() time.Time

	snapshot model.Snapshot
	selected int
	editing  int

	entryList   *widget.List
	listLabel   *widget.Label
	statusLabel *widget.Label
	form        *EntryForm

	editBtn     *widget.Button
	deleteBtn   *widget.Button
	exportBtn   *widget.Button
	importBtn   *widget.Button
	refreshBtn  *widget.Button
	settingsBtn *widget.Button
}

// NewRootUI creates and initializes the main UI and loads the installed crontab
func NewRootUI(window fyne.Window, settings *config.Settings, newManager ManagerFactory, log zerolog.Logger) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		newManager:   newManager,
		svc:          newManager(settings.Options()),
		log:          log.With().Str("component", "ui").Logger(),
		now:          time.Now,
		snapshot:     model.Snapshot{Entries: model.Table{}, Status: model.TableStatusEmpty},
		selected:     NoSelection,
		editing:      NoSelection,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.setupUI()
	ui.Refresh()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.listLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance
	header := container.NewBorder(nil, nil, nil, ui.settingsBtn, ui.listLabel)

	ui.entryList = widget.NewList(
		func() int {
			return ui.snapshot.Len()
		},
		ui.createEntryItem,
		ui.updateEntryItem,
	)
	ui.entryList.OnSelected = func(id widget.ListItemID) {
		ui.selected = id
	}
	ui.entryList.OnUnselected = func(widget.ListItemID) {
		ui.selected = NoSelection
	}

	ui.editBtn = widget.NewButton("", ui.onEditSelected)
	ui.deleteBtn = widget.NewButton("", ui.onDeleteSelected)
	ui.deleteBtn.Importance = widget.DangerImportance
	ui.exportBtn = widget.NewButton("", ui.onExport)
	ui.importBtn = widget.NewButton("", ui.onImport)
	ui.refreshBtn = widget.NewButton("", ui.Refresh)
	actions := container.NewGridWithColumns(5, ui.editBtn, ui.deleteBtn, ui.exportBtn, ui.importBtn, ui.refreshBtn)

	ui.form = NewEntryForm(ui.window, ui.localization)
	ui.form.SetCallbacks(ui.onAccept, ui.lastLocation, ui.settings.SetLastDirectory)

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis

	bottom := container.NewVBox(
		actions,
		widget.NewSeparator(),
		ui.form.Container(),
		widget.NewSeparator(),
		ui.statusLabel,
	)

	ui.refreshUITexts()
	ui.window.SetContent(container.NewBorder(header, bottom, nil, nil, ui.entryList))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	text := ui.localization.GetText

	fileMenu := fyne.NewMenu(text(KeyFile),
		fyne.NewMenuItem(text(KeyExport), ui.onExport),
		fyne.NewMenuItem(text(KeyImport), ui.onImport),
		fyne.NewMenuItem(text(KeyRefresh), ui.Refresh),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(text(KeySettings), ui.onShowSettings),
	)

	// Language submenu
	languageMenu := fyne.NewMenu(text(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(fileMenu, languageMenu))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	text := ui.localization.GetText

	ui.window.SetTitle(text(KeyAppTitle))
	ui.listLabel.SetText(IconList + " " + text(KeyInstalledJobs))
	ui.editBtn.SetText(IconEdit + " " + text(KeyEditSelected))
	ui.deleteBtn.SetText(IconDelete + " " + text(KeyDeleteSelected))
	ui.exportBtn.SetText(IconExport + " " + text(KeyExport))
	ui.importBtn.SetText(IconImport + " " + text(KeyImport))
	ui.refreshBtn.SetText(IconRefresh + " " + text(KeyRefresh))

	ui.form.RefreshTexts()
	ui.form.SetEditing(ui.editing != NoSelection)
	ui.updateStatus()
	ui.entryList.Refresh()
}

// createEntryItem creates a list row: the crontab line and its next run time
func (ui *RootUI) createEntryItem() fyne.CanvasObject {
	line := widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Monospace: true})
	line.Truncation = fyne.TextTruncateEllipsis
	next := widget.NewLabel("")
	next.Importance = widget.LowImportance
	return container.NewBorder(nil, nil, nil, next, line)
}

// updateEntryItem fills a list row from the current snapshot
func (ui *RootUI) updateEntryItem(id widget.ListItemID, item fyne.CanvasObject) {
	if !ui.snapshot.Entries.InRange(id) {
		return
	}
	row, ok := item.(*fyne.Container)
	if !ok || len(row.Objects) < 2 {
		return
	}
	entry := ui.snapshot.Entries[id]

	if line, ok := row.Objects[0].(*widget.Label); ok {
		line.SetText(entry.Line())
	}
	if next, ok := row.Objects[1].(*widget.Label); ok {
		next.SetText(ui.nextRunText(entry))
	}
}

// nextRunText formats the next scheduled run of an entry, or a dash when unknown
func (ui *RootUI) nextRunText(entry model.Entry) string {
	next, ok := entry.NextRun(ui.now())
	if !ok {
		return DashPlaceholder
	}
	return ui.localization.GetText(KeyNextRun) + " " + next.Format(NextRunTimeFormat)
}

// Refresh reloads the installed crontab into the list
func (ui *RootUI) Refresh() {
	snapshot, err := ui.svc.ListEntries(context.Background())
	ui.applySnapshot(snapshot)
	if err != nil {
		ui.log.Warn().Err(err).Msg("Failed to load crontab")
		ui.showError(err)
	}
}

// applySnapshot replaces the displayed entries and clears the selection
func (ui *RootUI) applySnapshot(snapshot model.Snapshot) {
	if snapshot.Entries == nil {
		snapshot.Entries = model.Table{}
	}
	ui.snapshot = snapshot
	ui.selected = NoSelection
	if ui.editing != NoSelection && !snapshot.Entries.InRange(ui.editing) {
		ui.cancelEditing()
	}
	ui.entryList.UnselectAll()
	ui.entryList.Refresh()
	ui.updateStatus()
}

// updateStatus renders the status line for the current snapshot
func (ui *RootUI) updateStatus() {
	text := ui.localization.GetText
	switch ui.snapshot.Status {
	case model.TableStatusUnavailable:
		ui.statusLabel.SetText(IconWarning + " " + text(KeyErrRead))
	case model.TableStatusEmpty:
		ui.statusLabel.SetText(text(KeyNoCrontab))
	default:
		ui.statusLabel.SetText(fmt.Sprintf(text(KeyEntriesCount), ui.snapshot.Len()))
	}
}

// onAccept adds a new entry or replaces the one being edited
func (ui *RootUI) onAccept() {
	ctx := context.Background()
	schedule := ui.form.Schedule()
	input := ui.form.CommandInput()

	var (
		snapshot model.Snapshot
		err      error
	)
	if ui.editing != NoSelection {
		snapshot, err = ui.svc.EditEntry(ctx, ui.editing, schedule, input)
	} else {
		snapshot, err = ui.svc.AddEntry(ctx, schedule, input)
	}
	if err != nil {
		ui.log.Warn().Err(err).Int("editing", ui.editing).Msg("Failed to save cron job")
		ui.showError(err)
		return
	}

	ui.cancelEditing()
	ui.applySnapshot(snapshot)
	ui.statusLabel.SetText(ui.localization.GetText(KeyJobSaved))
}

// onEditSelected loads the selected entry into the form
func (ui *RootUI) onEditSelected() {
	text := ui.localization.GetText
	if !ui.snapshot.Entries.InRange(ui.selected) {
		dialog.ShowInformation(text(KeyNoSelection), text(KeySelectToEdit), ui.window)
		return
	}
	entry := ui.snapshot.Entries[ui.selected]
	if entry.IsVerbatim() {
		dialog.ShowInformation(text(KeyEditingMode), text(KeyVerbatimReadOnly), ui.window)
		return
	}

	ui.editing = ui.selected
	ui.form.Load(entry)
}

// cancelEditing leaves editing mode and clears the form
func (ui *RootUI) cancelEditing() {
	ui.editing = NoSelection
	ui.form.Reset()
}

// onDeleteSelected removes the selected entry, asking first when configured
func (ui *RootUI) onDeleteSelected() {
	text := ui.localization.GetText
	if !ui.snapshot.Entries.InRange(ui.selected) {
		dialog.ShowInformation(text(KeyNoSelection), text(KeySelectToDelete), ui.window)
		return
	}

	index := ui.selected
	if !ui.settings.GetConfirmDelete() {
		ui.deleteAt(index)
		return
	}
	dialog.ShowConfirm(text(KeyConfirmDelete), text(KeyConfirmDeleteText), func(confirmed bool) {
		if confirmed {
			ui.deleteAt(index)
		}
	}, ui.window)
}

// deleteAt deletes the entry at index
func (ui *RootUI) deleteAt(index int) {
	snapshot, err := ui.svc.DeleteEntry(context.Background(), index)
	if err != nil {
		ui.log.Warn().Err(err).Int("index", index).Msg("Failed to delete cron job")
		ui.showError(err)
		return
	}
	if ui.editing == index {
		ui.cancelEditing()
	}
	ui.applySnapshot(snapshot)
	ui.statusLabel.SetText(ui.localization.GetText(KeyJobDeleted))
}

// onExport asks for a destination and saves the installed table there
func (ui *RootUI) onExport() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			ui.showError(err)
			return
		}
		if writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		ui.exportTo(path)
	}, ui.window)

	d.SetFileName(DefaultExportFileName)
	if location := ui.lastLocation(); location != nil {
		d.SetLocation(location)
	}
	d.Show()
}

// exportTo writes the table to path and offers to reveal the file
func (ui *RootUI) exportTo(path string) {
	text := ui.localization.GetText

	count, err := ui.svc.ExportTo(context.Background(), path)
	if err != nil {
		removeIfEmpty(path)
		ui.showError(err)
		return
	}
	ui.settings.SetLastDirectory(parentDir(path))

	dialog.ShowConfirm(text(KeyExported), fmt.Sprintf(text(KeyExportedText), path, count), func(reveal bool) {
		if !reveal {
			return
		}
		if err := platform.OpenFileInManager(path); err != nil {
			ui.log.Warn().Err(err).Str("path", path).Msg("Failed to reveal exported file")
		}
	}, ui.window)
}

// onImport asks for a file and merges its entries into the installed table
func (ui *RootUI) onImport() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			ui.showError(err)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		ui.importFrom(path)
	}, ui.window)

	if location := ui.lastLocation(); location != nil {
		d.SetLocation(location)
	}
	d.Show()
}

// importFrom merges the entries of path and reports how many were added
func (ui *RootUI) importFrom(path string) {
	text := ui.localization.GetText

	result, err := ui.svc.ImportFrom(context.Background(), path)
	if err != nil {
		ui.showError(err)
		return
	}
	ui.settings.SetLastDirectory(parentDir(path))
	ui.applySnapshot(result.Snapshot)

	dialog.ShowInformation(text(KeyImported), fmt.Sprintf(text(KeyImportedText), result.Added, result.Skipped), ui.window)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

// onSettingsSaved rebuilds the manager with the new options and reloads
func (ui *RootUI) onSettingsSaved() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.svc = ui.newManager(ui.settings.Options())
	ui.refreshUITexts()
	ui.createMenu()
	ui.Refresh()
}

// lastLocation returns the remembered directory as a dialog location
func (ui *RootUI) lastLocation() fyne.ListableURI {
	lister, err := storage.ListerForURI(storage.NewFileURI(ui.settings.GetLastDirectory()))
	if err != nil {
		return nil
	}
	return lister
}

// showError reports err under a title that names its kind
func (ui *RootUI) showError(err error) {
	dialog.ShowInformation(ui.errorTitle(err), err.Error(), ui.window)
}

// errorTitle maps an error kind to a localized dialog title
func (ui *RootUI) errorTitle(err error) string {
	key := KeyErrGeneric
	switch crontab.KindOf(err) {
	case crontab.KindRead:
		key = KeyErrRead
	case crontab.KindParse:
		key = KeyErrParse
	case crontab.KindPermission:
		key = KeyErrPermission
	case crontab.KindWrite:
		key = KeyErrWrite
	case crontab.KindImportIO:
		key = KeyErrImport
	case crontab.KindExportIO:
		key = KeyErrExport
	case crontab.KindIndex:
		key = KeyErrIndex
	case crontab.KindInvalidEntry:
		key = KeyErrInvalid
	case crontab.KindEmptyTable:
		key = KeyErrEmpty
	}
	return ui.localization.GetText(key)
}

func parentDir(path string) string {
	return filepath.Dir(path)
}

// removeIfEmpty drops the placeholder file a save dialog leaves behind
func removeIfEmpty(path string) {
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() && info.Size() == 0 {
		_ = os.Remove(path)
	}
}
