package handlers

import (
	"github.com/akbarw/onlinebank/internal/application"
)

type Handler struct {
	app *application.App
}

func New(app *application.App) *Handler {
	return &Handler{
		app: app,
	}
}
