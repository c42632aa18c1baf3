package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/latestcomment/interview-cards/internal/models"
	"github.com/latestcomment/interview-cards/internal/services"
)

type createInterviewRequest struct {
	Role      string   `json:"role"`
	Type      string   `json:"type"`
	Level     string   `json:"level"`
	TechStack []string `json:"techstack"`
}

type recordFeedbackRequest struct {
	TotalScore          *float64               `json:"totalScore"`
	CategoryScores      []models.CategoryScore `json:"categoryScores"`
	Strengths           []string               `json:"strengths"`
	AreasForImprovement []string               `json:"areasForImprovement"`
	FinalAssessment     string                 `json:"finalAssessment"`
}

func (h *Handler) ListCards(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return toFiberError(services.ErrUserRequired)
	}
	cards := h.Interviews.Cards(c.UserContext(), h.Interviews.ListByUser(user.ID), user.ID)
	return c.JSON(fiber.Map{"cards": cards})
}

func (h *Handler) GetCard(c *fiber.Ctx) error {
	card, err := h.Interviews.Card(c.UserContext(), c.Params("id"), userID(currentUser(c)))
	if err != nil {
		return toFiberError(err)
	}
	return c.JSON(card)
}

func (h *Handler) CreateInterview(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return toFiberError(services.ErrUserRequired)
	}
	var req createInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.Role) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "role is required")
	}

	iv, err := h.Interviews.CreateInterview(models.InterviewSummary{
		UserID:    user.ID,
		Role:      req.Role,
		Type:      req.Type,
		Level:     req.Level,
		TechStack: req.TechStack,
	})
	if err != nil {
		return toFiberError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(iv)
}

// RecordFeedback stores the caller's feedback and answers with the refreshed card.
func (h *Handler) RecordFeedback(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return toFiberError(services.ErrUserRequired)
	}
	var req recordFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	id := c.Params("id")
	_, err := h.Interviews.RecordFeedback(c.UserContext(), models.FeedbackRecord{
		InterviewID:         id,
		UserID:              user.ID,
		TotalScore:          req.TotalScore,
		CategoryScores:      req.CategoryScores,
		Strengths:           req.Strengths,
		AreasForImprovement: req.AreasForImprovement,
		FinalAssessment:     req.FinalAssessment,
	})
	if err != nil {
		return toFiberError(err)
	}

	card, err := h.Interviews.Card(c.UserContext(), id, user.ID)
	if err != nil {
		return toFiberError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(card)
}
