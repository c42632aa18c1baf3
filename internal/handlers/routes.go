package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

func Register(app *fiber.App, h *Handler, ws *WebSocketHandler) {
	app.Use(h.CurrentUser)

	app.Get("/", h.LandingPage)
	app.Get("/terms", h.TermsPage)
	app.Get("/interview/:id", h.InterviewPage)
	app.Get("/interview/:id/feedback", h.FeedbackPage)

	api := app.Group("/api")
	api.Get("/interviews", h.ListCards)
	api.Post("/interviews", h.CreateInterview)
	api.Get("/interviews/:id/card", h.GetCard)
	api.Post("/interviews/:id/feedback", h.RecordFeedback)

	app.Get("/ws/cards", ws.WebSocketMiddleware, websocket.New(ws.HandleWebSocket))
}
