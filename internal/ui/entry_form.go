package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/cron-manager/internal/model"
)

// EntryForm collects the schedule and command for a new or edited cron entry
type EntryForm struct {
	window       fyne.Window
	localization *Localization

	scriptSelect *widget.Select
	commandEntry *widget.Entry
	browseBtn    *widget.Button
	acceptBtn    *widget.Button
	titleLabel   *widget.Label

	minuteEntry  *widget.Entry
	hourEntry    *widget.Entry
	dayEntry     *widget.Entry
	monthEntry   *widget.Entry
	weekdayEntry *widget.Entry

	fieldLabels []*widget.Label
	container   *fyne.Container

	onAccept      func()
	onBrowseStart func() fyne.ListableURI
	onBrowseDone  func(dir string)
}

// NewEntryForm creates the add/edit form
func NewEntryForm(window fyne.Window, localization *Localization) *EntryForm {
	f := &EntryForm{
		window:       window,
		localization: localization,
	}
	f.createUI()
	return f
}

// SetCallbacks sets the accept handler and the hooks used by the script browser
func (f *EntryForm) SetCallbacks(onAccept func(), onBrowseStart func() fyne.ListableURI, onBrowseDone func(dir string)) {
	f.onAccept = onAccept
	f.onBrowseStart = onBrowseStart
	f.onBrowseDone = onBrowseDone
}

// Container returns the form root object
func (f *EntryForm) Container() fyne.CanvasObject {
	return f.container
}

func (f *EntryForm) createUI() {
	f.titleLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	f.scriptSelect = widget.NewSelect(f.scriptOptions(), nil)

	f.commandEntry = widget.NewEntry()
	f.commandEntry.OnSubmitted = func(string) {
		if f.onAccept != nil {
			f.onAccept()
		}
	}
	f.browseBtn = widget.NewButton("", f.onBrowse)
	commandRow := container.NewBorder(nil, nil, nil, f.browseBtn, f.commandEntry)

	f.minuteEntry = newScheduleEntry()
	f.hourEntry = newScheduleEntry()
	f.dayEntry = newScheduleEntry()
	f.monthEntry = newScheduleEntry()
	f.weekdayEntry = newScheduleEntry()

	scheduleGrid := container.NewGridWithColumns(model.FieldCount)
	for _, e := range f.scheduleEntries() {
		label := widget.NewLabel("")
		f.fieldLabels = append(f.fieldLabels, label)
		scheduleGrid.Add(container.NewVBox(label, e))
	}

	f.acceptBtn = widget.NewButton("", func() {
		if f.onAccept != nil {
			f.onAccept()
		}
	})
	f.acceptBtn.Importance = widget.HighImportance

	scriptLabel := widget.NewLabel("")
	f.fieldLabels = append(f.fieldLabels, scriptLabel)

	f.container = container.NewVBox(
		f.titleLabel,
		container.NewBorder(nil, nil, scriptLabel, nil, f.scriptSelect),
		commandRow,
		scheduleGrid,
		f.acceptBtn,
	)

	f.RefreshTexts()
	f.Reset()
}

func newScheduleEntry() *widget.Entry {
	e := widget.NewEntry()
	e.SetPlaceHolder(model.AnyValue)
	return e
}

func (f *EntryForm) scheduleEntries() []*widget.Entry {
	return []*widget.Entry{f.minuteEntry, f.hourEntry, f.dayEntry, f.monthEntry, f.weekdayEntry}
}

func (f *EntryForm) scriptOptions() []string {
	options := make([]string, 0, len(model.ScriptTypes()))
	for _, st := range model.ScriptTypes() {
		options = append(options, f.scriptLabel(st))
	}
	return options
}

func (f *EntryForm) scriptLabel(st model.ScriptType) string {
	switch st {
	case model.ScriptBash:
		return "Bash"
	case model.ScriptPython:
		return "Python"
	default:
		return f.localization.GetText(KeyScriptAuto)
	}
}

// RefreshTexts reapplies localized labels after a language change
func (f *EntryForm) RefreshTexts() {
	selected := f.ScriptType()

	f.commandEntry.SetPlaceHolder(f.localization.GetText(KeyCommandHint))
	f.browseBtn.SetText(IconFolder + " " + f.localization.GetText(KeyBrowseScript))
	f.acceptBtn.SetText(IconAccept + " " + f.localization.GetText(KeyAccept))

	keys := []string{KeyMinute, KeyHour, KeyDay, KeyMonth, KeyWeekday, KeyScriptType}
	for i, label := range f.fieldLabels {
		label.SetText(f.localization.GetText(keys[i]))
	}

	f.scriptSelect.Options = f.scriptOptions()
	f.scriptSelect.SetSelected(f.scriptLabel(selected))
}

// SetEditing switches the title between add and edit modes
func (f *EntryForm) SetEditing(editing bool) {
	if editing {
		f.titleLabel.SetText(IconEdit + " " + f.localization.GetText(KeyEditingMode))
		return
	}
	f.titleLabel.SetText(IconAdd + " " + f.localization.GetText(KeyAddTask))
}

// Reset clears the command and restores every schedule field to "*"
func (f *EntryForm) Reset() {
	f.commandEntry.SetText("")
	for _, e := range f.scheduleEntries() {
		e.SetText(model.AnyValue)
	}
	f.scriptSelect.SetSelected(f.scriptLabel(model.ScriptAuto))
	f.SetEditing(false)
}

// Load fills the form from an existing scheduled entry
func (f *EntryForm) Load(entry model.Entry) {
	for i, value := range entry.Schedule.Fields() {
		f.scheduleEntries()[i].SetText(value)
	}
	f.commandEntry.SetText(entry.Command)
	f.scriptSelect.SetSelected(f.scriptLabel(model.ScriptAuto))
	f.SetEditing(true)
}

// Schedule returns the five schedule fields as typed
func (f *EntryForm) Schedule() model.Schedule {
	return model.Schedule{
		Minute:  strings.TrimSpace(f.minuteEntry.Text),
		Hour:    strings.TrimSpace(f.hourEntry.Text),
		Day:     strings.TrimSpace(f.dayEntry.Text),
		Month:   strings.TrimSpace(f.monthEntry.Text),
		Weekday: strings.TrimSpace(f.weekdayEntry.Text),
	}
}

// ScriptType returns the declared script type
func (f *EntryForm) ScriptType() model.ScriptType {
	for _, st := range model.ScriptTypes() {
		if f.scriptSelect.Selected == f.scriptLabel(st) {
			return st
		}
	}
	return model.ScriptAuto
}

// CommandInput returns the raw command text with its declared script type
func (f *EntryForm) CommandInput() model.CommandInput {
	return model.CommandInput{
		Raw:  f.commandEntry.Text,
		Type: f.ScriptType(),
	}
}

// onBrowse lets the user pick a script file for the command field
func (f *EntryForm) onBrowse() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		path := reader.URI().Path()
		f.commandEntry.SetText(path)
		if f.onBrowseDone != nil {
			f.onBrowseDone(parentDir(path))
		}
	}, f.window)

	if f.onBrowseStart != nil {
		if location := f.onBrowseStart(); location != nil {
			d.SetLocation(location)
		}
	}
	d.Show()
}
