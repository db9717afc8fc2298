package main

import (
	"context"

	"fyne.io/fyne/v2/app"

	"github.com/saulo-duarte/overhoor-lambda/internal/config"
	"github.com/saulo-duarte/overhoor-lambda/internal/container"
	"github.com/saulo-duarte/overhoor-lambda/internal/desktop"
)

const appID = "nl.overhoor.samenvatting"

func main() {
	c, err := container.New(context.Background())
	if err != nil {
		config.Logger.WithError(err).Fatal("failed to start")
	}

	a := app.NewWithID(appID)
	ui := desktop.New(a, c.AIQuizContainer.Service, c.Settings.Gemini.APIKey != "")
	ui.Window().ShowAndRun()
}
