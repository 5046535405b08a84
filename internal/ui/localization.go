package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyInstalledJobs     = "installed_jobs"
	KeyAddTask           = "add_task"
	KeyEditingMode       = "editing_mode"
	KeyEditSelected      = "edit_selected"
	KeyDeleteSelected    = "delete_selected"
	KeyExport            = "export"
	KeyImport            = "import"
	KeyRefresh           = "refresh"
	KeyScriptType        = "script_type"
	KeyScriptAuto        = "script_auto"
	KeyCommandHint       = "command_hint"
	KeyBrowseScript      = "browse_script"
	KeyMinute            = "minute"
	KeyHour              = "hour"
	KeyDay               = "day"
	KeyMonth             = "month"
	KeyWeekday           = "weekday"
	KeyAccept            = "accept"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyCrontabCommand    = "crontab_command"
	KeyShellInterpreter  = "shell_interpreter"
	KeyPythonInterpreter = "python_interpreter"
	KeyCommandTimeout    = "command_timeout"
	KeyConfirmDeleteOpt  = "confirm_delete_option"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
	KeySuccess           = "success"
	KeyJobSaved          = "job_saved"
	KeyJobDeleted        = "job_deleted"
	KeyNoSelection       = "no_selection"
	KeySelectToEdit      = "select_to_edit"
	KeySelectToDelete    = "select_to_delete"
	KeyConfirmDelete     = "confirm_delete"
	KeyVerbatimReadOnly  = "verbatim_read_only"
	KeyConfirmDeleteText = "confirm_delete_text"
	KeyExported          = "exported"
	KeyExportedText      = "exported_text"
	KeyImported          = "imported"
	KeyImportedText      = "imported_text"
	KeyEntriesCount      = "entries_count"
	KeyNoCrontab         = "no_crontab"
	KeyNextRun           = "next_run"
	KeyRevealFile        = "reveal_file"
	KeyErrRead           = "err_read"
	KeyErrParse          = "err_parse"
	KeyErrPermission     = "err_permission"
	KeyErrWrite          = "err_write"
	KeyErrImport         = "err_import"
	KeyErrExport         = "err_export"
	KeyErrIndex          = "err_index"
	KeyErrInvalid        = "err_invalid"
	KeyErrEmpty          = "err_empty"
	KeyErrGeneric        = "err_generic"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Cron Task Manager",
		KeyInstalledJobs:     "Installed Cron Jobs:",
		KeyAddTask:           "Add Cron Task",
		KeyEditingMode:       "Editing Mode",
		KeyEditSelected:      "Edit Selected",
		KeyDeleteSelected:    "Delete Selected",
		KeyExport:            "Export Cron",
		KeyImport:            "Import Cron",
		KeyRefresh:           "Refresh",
		KeyScriptType:        "Script Type:",
		KeyScriptAuto:        "Auto",
		KeyCommandHint:       "Select script file or enter command",
		KeyBrowseScript:      "Browse Script",
		KeyMinute:            "Min",
		KeyHour:              "Hour",
		KeyDay:               "Day",
		KeyMonth:             "Month",
		KeyWeekday:           "Weekday",
		KeyAccept:            "Accept",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyCrontabCommand:    "Crontab Command",
		KeyShellInterpreter:  "Shell Interpreter",
		KeyPythonInterpreter: "Python Interpreter",
		KeyCommandTimeout:    "Command Timeout (seconds)",
		KeyConfirmDeleteOpt:  "Ask before deleting",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved successfully!",
		KeySuccess:           "Success",
		KeyJobSaved:          "Cron job saved.",
		KeyJobDeleted:        "Cron job deleted.",
		KeyNoSelection:       "No Selection",
		KeySelectToEdit:      "Please select a cron job to edit.",
		KeySelectToDelete:    "Please select a cron job to delete.",
		KeyConfirmDelete:     "Confirm Delete",
		KeyVerbatimReadOnly:  "This line is not a scheduled job and can only be deleted.",
		KeyConfirmDeleteText: "Are you sure you want to delete this cron job?",
		KeyExported:          "Exported",
		KeyExportedText:      "Crontab saved to %s (%d entries). Open the folder?",
		KeyImported:          "Imported",
		KeyImportedText:      "Cron tasks merged: %d added, %d already present.",
		KeyEntriesCount:      "%d entries",
		KeyNoCrontab:         "No crontab installed for this user",
		KeyNextRun:           "next",
		KeyRevealFile:        "Open folder",
		KeyErrRead:           "Error loading cron",
		KeyErrParse:          "Parse Error",
		KeyErrPermission:     "Permission Denied",
		KeyErrWrite:          "Failed to update crontab",
		KeyErrImport:         "Failed to import tasks",
		KeyErrExport:         "Failed to export",
		KeyErrIndex:          "Entry not found",
		KeyErrInvalid:        "Invalid Input",
		KeyErrEmpty:          "No crontab found",
		KeyErrGeneric:        "Error",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Менеджер задач Cron",
		KeyInstalledJobs:     "Установленные задачи:",
		KeyAddTask:           "Добавить задачу",
		KeyEditingMode:       "Режим редактирования",
		KeyEditSelected:      "Изменить",
		KeyDeleteSelected:    "Удалить",
		KeyExport:            "Экспорт",
		KeyImport:            "Импорт",
		KeyRefresh:           "Обновить",
		KeyScriptType:        "Тип скрипта:",
		KeyScriptAuto:        "Авто",
		KeyCommandHint:       "Выберите файл скрипта или введите команду",
		KeyBrowseScript:      "Выбрать скрипт",
		KeyMinute:            "Мин",
		KeyHour:              "Час",
		KeyDay:               "День",
		KeyMonth:             "Месяц",
		KeyWeekday:           "День недели",
		KeyAccept:            "Применить",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyCrontabCommand:    "Команда crontab",
		KeyShellInterpreter:  "Интерпретатор shell",
		KeyPythonInterpreter: "Интерпретатор Python",
		KeyCommandTimeout:    "Тайм-аут команды (сек.)",
		KeyConfirmDeleteOpt:  "Спрашивать перед удалением",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeySuccess:           "Готово",
		KeyJobSaved:          "Задача сохранена.",
		KeyJobDeleted:        "Задача удалена.",
		KeyNoSelection:       "Ничего не выбрано",
		KeySelectToEdit:      "Выберите задачу для изменения.",
		KeySelectToDelete:    "Выберите задачу для удаления.",
		KeyConfirmDelete:     "Подтвердите удаление",
		KeyVerbatimReadOnly:  "Эта строка не является задачей, её можно только удалить.",
		KeyConfirmDeleteText: "Удалить эту задачу?",
		KeyExported:          "Экспортировано",
		KeyExportedText:      "Crontab сохранён в %s (%d записей). Открыть папку?",
		KeyImported:          "Импортировано",
		KeyImportedText:      "Задачи объединены: добавлено %d, уже было %d.",
		KeyEntriesCount:      "Записей: %d",
		KeyNoCrontab:         "У пользователя нет crontab",
		KeyNextRun:           "след.",
		KeyRevealFile:        "Открыть папку",
		KeyErrRead:           "Ошибка чтения crontab",
		KeyErrParse:          "Ошибка разбора",
		KeyErrPermission:     "Доступ запрещён",
		KeyErrWrite:          "Не удалось обновить crontab",
		KeyErrImport:         "Не удалось импортировать задачи",
		KeyErrExport:         "Не удалось экспортировать",
		KeyErrIndex:          "Запись не найдена",
		KeyErrInvalid:        "Неверный ввод",
		KeyErrEmpty:          "Crontab не найден",
		KeyErrGeneric:        "Ошибка",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Gerenciador de Tarefas Cron",
		KeyInstalledJobs:     "Tarefas Cron Instaladas:",
		KeyAddTask:           "Adicionar Tarefa",
		KeyEditingMode:       "Modo de Edição",
		KeyEditSelected:      "Editar Selecionada",
		KeyDeleteSelected:    "Excluir Selecionada",
		KeyExport:            "Exportar Cron",
		KeyImport:            "Importar Cron",
		KeyRefresh:           "Atualizar",
		KeyScriptType:        "Tipo de Script:",
		KeyScriptAuto:        "Automático",
		KeyCommandHint:       "Selecione um script ou digite um comando",
		KeyBrowseScript:      "Procurar Script",
		KeyMinute:            "Min",
		KeyHour:              "Hora",
		KeyDay:               "Dia",
		KeyMonth:             "Mês",
		KeyWeekday:           "Dia da Semana",
		KeyAccept:            "Aceitar",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyCrontabCommand:    "Comando crontab",
		KeyShellInterpreter:  "Interpretador Shell",
		KeyPythonInterpreter: "Interpretador Python",
		KeyCommandTimeout:    "Tempo Limite do Comando (segundos)",
		KeyConfirmDeleteOpt:  "Perguntar antes de excluir",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeySuccess:           "Sucesso",
		KeyJobSaved:          "Tarefa cron salva.",
		KeyJobDeleted:        "Tarefa cron excluída.",
		KeyNoSelection:       "Nenhuma Seleção",
		KeySelectToEdit:      "Selecione uma tarefa para editar.",
		KeySelectToDelete:    "Selecione uma tarefa para excluir.",
		KeyConfirmDelete:     "Confirmar Exclusão",
		KeyVerbatimReadOnly:  "Esta linha não é uma tarefa agendada e só pode ser excluída.",
		KeyConfirmDeleteText: "Tem certeza de que deseja excluir esta tarefa?",
		KeyExported:          "Exportado",
		KeyExportedText:      "Crontab salvo em %s (%d entradas). Abrir a pasta?",
		KeyImported:          "Importado",
		KeyImportedText:      "Tarefas mescladas: %d adicionadas, %d já existentes.",
		KeyEntriesCount:      "%d entradas",
		KeyNoCrontab:         "Nenhum crontab instalado para este usuário",
		KeyNextRun:           "próx.",
		KeyRevealFile:        "Abrir pasta",
		KeyErrRead:           "Erro ao carregar cron",
		KeyErrParse:          "Erro de Análise",
		KeyErrPermission:     "Permissão Negada",
		KeyErrWrite:          "Falha ao atualizar o crontab",
		KeyErrImport:         "Falha ao importar tarefas",
		KeyErrExport:         "Falha ao exportar",
		KeyErrIndex:          "Entrada não encontrada",
		KeyErrInvalid:        "Entrada Inválida",
		KeyErrEmpty:          "Nenhum crontab encontrado",
		KeyErrGeneric:        "Erro",
	}
}
