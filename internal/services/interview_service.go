package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/latestcomment/interview-cards/internal/models"
	"github.com/latestcomment/interview-cards/internal/presenter"
	"go.uber.org/zap"
)

type InterviewService struct {
	Catalogue *models.Catalogue
	Presenter *presenter.Presenter
	Hub       *CardHub
	Now       func() time.Time

	logger *zap.Logger
}

func NewInterviewService(catalogue *models.Catalogue, p *presenter.Presenter, hub *CardHub, logger *zap.Logger) *InterviewService {
	return &InterviewService{
		Catalogue: catalogue,
		Presenter: p,
		Hub:       hub,
		Now:       time.Now,
		logger:    logger,
	}
}

func (s *InterviewService) CreateInterview(iv models.InterviewSummary) (*models.InterviewSummary, error) {
	if iv.UserID == "" {
		return nil, ErrUserRequired
	}
	iv.ID = uuid.New().String()
	iv.Role = strings.TrimSpace(iv.Role)
	iv.TechStack = append([]string(nil), iv.TechStack...)
	if iv.CreatedAt.IsZero() {
		iv.CreatedAt = s.Now().UTC()
	}

	stored := iv
	s.Catalogue.Mu.Lock()
	s.Catalogue.Interviews[iv.ID] = &stored
	s.Catalogue.Mu.Unlock()

	s.logger.Info("interview created",
		zap.String("interview_id", iv.ID),
		zap.String("user_id", iv.UserID),
		zap.String("type", iv.Type))
	return &iv, nil
}

func (s *InterviewService) GetInterview(id string) (*models.InterviewSummary, error) {
	s.Catalogue.Mu.RLock()
	defer s.Catalogue.Mu.RUnlock()

	iv, ok := s.Catalogue.Interviews[id]
	if !ok {
		return nil, fmt.Errorf("get interview %s: %w", id, ErrInterviewNotFound)
	}
	cp := *iv
	return &cp, nil
}

// ListByUser returns the user's interviews, newest first.
func (s *InterviewService) ListByUser(userID string) []models.InterviewSummary {
	if userID == "" {
		return nil
	}
	return s.filter(func(iv *models.InterviewSummary) bool { return iv.UserID == userID }, 0)
}

// ListLatest returns finalized interviews owned by anyone but excludeUserID,
// newest first. limit <= 0 means no limit.
func (s *InterviewService) ListLatest(excludeUserID string, limit int) []models.InterviewSummary {
	return s.filter(func(iv *models.InterviewSummary) bool {
		return iv.Finalized && iv.UserID != excludeUserID
	}, limit)
}

func (s *InterviewService) filter(keep func(*models.InterviewSummary) bool, limit int) []models.InterviewSummary {
	s.Catalogue.Mu.RLock()
	var out []models.InterviewSummary
	for _, iv := range s.Catalogue.Interviews {
		if keep(iv) {
			out = append(out, *iv)
		}
	}
	s.Catalogue.Mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// FeedbackFor returns nil, nil when the user has no feedback for the interview.
func (s *InterviewService) FeedbackFor(ctx context.Context, interviewID, userID string) (*models.FeedbackRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, nil
	}

	s.Catalogue.Mu.RLock()
	defer s.Catalogue.Mu.RUnlock()

	fb, ok := s.Catalogue.Feedback[models.FeedbackKey{InterviewID: interviewID, UserID: userID}]
	if !ok {
		return nil, nil
	}
	cp := *fb
	return &cp, nil
}

// RecordFeedback stores fb, replacing any earlier feedback from the same user,
// and pushes the refreshed card to that user's subscribers.
func (s *InterviewService) RecordFeedback(ctx context.Context, fb models.FeedbackRecord) (*models.FeedbackRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if fb.UserID == "" {
		return nil, ErrUserRequired
	}
	if fb.TotalScore != nil && (*fb.TotalScore < 0 || *fb.TotalScore > 100) {
		return nil, fmt.Errorf("record feedback for %s: %w", fb.InterviewID, ErrInvalidScore)
	}

	iv, err := s.GetInterview(fb.InterviewID)
	if err != nil {
		return nil, fmt.Errorf("record feedback: %w", err)
	}

	fb.ID = uuid.New().String()
	if fb.CreatedAt.IsZero() {
		fb.CreatedAt = s.Now().UTC()
	}

	s.Catalogue.Mu.Lock()
	stored := fb
	s.Catalogue.Feedback[models.FeedbackKey{InterviewID: fb.InterviewID, UserID: fb.UserID}] = &stored
	if iv.UserID == fb.UserID {
		if owned, ok := s.Catalogue.Interviews[iv.ID]; ok {
			owned.Finalized = true
			iv.Finalized = true
		}
	}
	s.Catalogue.Mu.Unlock()

	s.logger.Info("feedback recorded",
		zap.String("interview_id", fb.InterviewID),
		zap.String("user_id", fb.UserID))

	if s.Hub != nil {
		s.Hub.Publish(fb.UserID, s.Presenter.Present(*iv, &fb))
	}
	return &fb, nil
}

// Cards presents interviews as seen by userID. A failed feedback lookup is
// logged and the card is shown as pending.
func (s *InterviewService) Cards(ctx context.Context, interviews []models.InterviewSummary, userID string) []models.DisplayDecision {
	inputs := make([]presenter.CardInput, 0, len(interviews))
	for _, iv := range interviews {
		fb, err := s.FeedbackFor(ctx, iv.ID, userID)
		if err != nil {
			s.logger.Warn("feedback lookup failed",
				zap.String("interview_id", iv.ID),
				zap.String("user_id", userID),
				zap.Error(err))
			fb = nil
		}
		inputs = append(inputs, presenter.CardInput{Interview: iv, Feedback: fb})
	}
	return s.Presenter.PresentAll(inputs)
}

func (s *InterviewService) Card(ctx context.Context, interviewID, userID string) (models.DisplayDecision, error) {
	iv, err := s.GetInterview(interviewID)
	if err != nil {
		return models.DisplayDecision{}, err
	}
	return s.Cards(ctx, []models.InterviewSummary{*iv}, userID)[0], nil
}
