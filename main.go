package main

import (
	"flag"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	yaapp "github.com/ytget/yt-audio/internal/app"
	"github.com/ytget/yt-audio/internal/config"
	"github.com/ytget/yt-audio/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.yt-audio"
	AppName = "YT Audio"
)

func main() {
	configFile := flag.String("config", "", "config file (YAML, optional)")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := yaapp.NewLogger(cfg, os.Stderr)
	logger.Info().Str("version", version).Msg("YT Audio starting")

	services := yaapp.New(cfg, logger)
	if err := services.Resolver.EnsureOutputDirectory(); err != nil {
		logger.Warn().Err(err).Msg("failed to ensure output directory")
	}

	myApp := app.NewWithID(AppID)

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	ui.NewRootUI(myWindow, myApp, services.Downloads, services.Resolver, logger)

	myWindow.ShowAndRun()
}
