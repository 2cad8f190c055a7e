package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/taskdesk/taskdesk/internal/api"
	"github.com/taskdesk/taskdesk/internal/config"
	"github.com/taskdesk/taskdesk/internal/gateway"
	"github.com/taskdesk/taskdesk/internal/session"
	"github.com/taskdesk/taskdesk/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.taskdesk.app"
	AppName = "TaskDesk"

	WindowWidth  = 900
	WindowHeight = 640
)

func main() {
	fmt.Printf("TaskDesk v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)

	localization := ui.NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	sessionStore := session.NewStore(myApp)
	client := api.NewClient(settings.GetServerURL(), sessionStore)

	authGw := gateway.NewAuthGateway(client, sessionStore)
	taskGw := gateway.NewTaskGateway(client, sessionStore)
	userGw := gateway.NewUserGateway(client, sessionStore)

	// Create and show the first screen
	nav := ui.NewNavigator(myWindow, sessionStore, localization, settings, authGw, taskGw, userGw)
	nav.Start()

	// Show and run
	myWindow.ShowAndRun()
}
