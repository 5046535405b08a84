package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/cron-manager/internal/config"
	"github.com/ytget/cron-manager/internal/crontab"
	"github.com/ytget/cron-manager/internal/logging"
	"github.com/ytget/cron-manager/internal/manager"
	"github.com/ytget/cron-manager/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.cron-manager"
	AppName = "Cron Task Manager"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	settings := config.NewSettings(myApp)
	opts := settings.Options()

	logger, closer, err := logging.New(logging.Config{Level: opts.LogLevel, Console: true, File: opts.LogFile})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logging: %v\n", err)
	}
	defer closer.Close()

	logger.Info().Str("version", version).Msg(AppName + " starting")

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	runner := crontab.NewExecRunner()
	ui.NewRootUI(myWindow, settings, func(opts config.Options) manager.Manager {
		return manager.NewFromOptions(runner, opts, logger)
	}, logger)

	// Show and run
	myWindow.ShowAndRun()
}
