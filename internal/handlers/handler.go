package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/latestcomment/interview-cards/internal/config"
	"github.com/latestcomment/interview-cards/internal/models"
	"github.com/latestcomment/interview-cards/internal/services"
	"go.uber.org/zap"
)

const (
	userIDHeader = "X-User-ID"
	userIDCookie = "user_id"
	userLocal    = "user"
)

const termsUpdated = "January 1, 2025"

type Handler struct {
	Interviews *services.InterviewService
	Users      *services.UserService
	Config     *config.Config

	logger *zap.Logger
}

func NewHandler(interviews *services.InterviewService, users *services.UserService, cfg *config.Config, logger *zap.Logger) *Handler {
	return &Handler{
		Interviews: interviews,
		Users:      users,
		Config:     cfg,
		logger:     logger,
	}
}

// CurrentUser resolves the caller from the X-User-ID header or the user_id
// cookie. Unknown callers continue as anonymous.
func (h *Handler) CurrentUser(c *fiber.Ctx) error {
	id := c.Get(userIDHeader)
	if id == "" {
		id = c.Cookies(userIDCookie)
	}
	if u := h.Users.CurrentUser(id); u != nil {
		c.Locals(userLocal, u)
	}
	return c.Next()
}

func currentUser(c *fiber.Ctx) *models.User {
	u, _ := c.Locals(userLocal).(*models.User)
	return u
}

func userID(u *models.User) string {
	if u == nil {
		return ""
	}
	return u.ID
}

func (h *Handler) LandingPage(c *fiber.Ctx) error {
	user := currentUser(c)
	uid := userID(user)
	ctx := c.UserContext()

	return c.Render("index", fiber.Map{
		"User":        user,
		"Session":     h.Config.Session,
		"UserCards":   h.Interviews.Cards(ctx, h.Interviews.ListByUser(uid), uid),
		"LatestCards": h.Interviews.Cards(ctx, h.Interviews.ListLatest(uid, h.Config.Cards.LatestLimit), uid),
	})
}

func (h *Handler) TermsPage(c *fiber.Ctx) error {
	return c.Render("terms", fiber.Map{"Updated": termsUpdated})
}

func (h *Handler) InterviewPage(c *fiber.Ctx) error {
	id := c.Params("id")
	iv, err := h.Interviews.GetInterview(id)
	if err != nil {
		return toFiberError(err)
	}
	card := h.Interviews.Cards(c.UserContext(), []models.InterviewSummary{*iv}, userID(currentUser(c)))[0]
	return c.Render("interview", fiber.Map{
		"Interview": iv,
		"Card":      card,
		"Session":   h.Config.Session,
	})
}

// FeedbackPage sends callers without feedback to the take-interview page.
func (h *Handler) FeedbackPage(c *fiber.Ctx) error {
	id := c.Params("id")
	uid := userID(currentUser(c))
	card, err := h.Interviews.Card(c.UserContext(), id, uid)
	if err != nil {
		return toFiberError(err)
	}
	done, ok := card.Completion.(models.Completed)
	if !ok {
		return c.Redirect(card.TargetURL, fiber.StatusSeeOther)
	}
	return c.Render("feedback", fiber.Map{
		"Card":     card,
		"Feedback": done.Feedback,
	})
}

// toFiberError maps service errors onto HTTP statuses.
func toFiberError(err error) error {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe
	case errors.Is(err, services.ErrInterviewNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInvalidScore):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrUserRequired):
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	default:
		return err
	}
}

// ErrorHandler answers /api and /ws requests with JSON and pages with text.
func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}
		if code >= fiber.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err))
		}
		if strings.HasPrefix(c.Path(), "/api/") || strings.HasPrefix(c.Path(), "/ws/") {
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(code).SendString(err.Error())
	}
}
