package presenter

import (
	"time"

	"github.com/latestcomment/interview-cards/internal/models"
)

const DefaultTechStackLimit = 3

type Presenter struct {
	Thresholds     Thresholds
	TechStackLimit int
	Now            func() time.Time
}

func New(thresholds Thresholds, techStackLimit int) *Presenter {
	return &Presenter{
		Thresholds:     thresholds,
		TechStackLimit: techStackLimit,
		Now:            time.Now,
	}
}

// CardInput pairs an interview with its feedback, nil when not yet taken.
type CardInput struct {
	Interview models.InterviewSummary
	Feedback  *models.FeedbackRecord
}

func (p *Presenter) Present(iv models.InterviewSummary, fb *models.FeedbackRecord) models.DisplayDecision {
	normalized := NormalizeType(iv.Type)
	completion := ResolveCompletion(fb)

	d := models.DisplayDecision{
		InterviewID:    iv.ID,
		Role:           iv.Role,
		NormalizedType: normalized,
		Category:       SelectCategoryConfig(normalized),
		Completion:     completion,
		Completed:      models.IsCompleted(completion),
		TargetURL:      SelectURL(iv.ID, completion),
		TechStack:      PreviewTechStack(iv.TechStack, p.TechStackLimit),
	}

	var feedbackAt time.Time
	if done, ok := completion.(models.Completed); ok {
		feedbackAt = done.Feedback.CreatedAt
		d.Assessment = done.Feedback.FinalAssessment
		if s := done.Feedback.TotalScore; s != nil {
			score := *s
			tier := p.Thresholds.Tier(score)
			d.Score = &score
			d.ScoreTier = &tier
		}
	}
	d.FormattedDate = FormatDate(feedbackAt, iv.CreatedAt, p.now)

	return d
}

func (p *Presenter) PresentAll(items []CardInput) []models.DisplayDecision {
	out := make([]models.DisplayDecision, 0, len(items))
	for _, it := range items {
		out = append(out, p.Present(it.Interview, it.Feedback))
	}
	return out
}

func (p *Presenter) now() time.Time {
	if p.Now == nil {
		return time.Now()
	}
	return p.Now()
}
