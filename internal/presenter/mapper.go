package presenter

import (
	"fmt"
	"strings"
	"time"

	"github.com/latestcomment/interview-cards/internal/models"
)

// DateLayout renders as "Mar 4, 2025".
const DateLayout = "Jan 2, 2006"

// NormalizeType folds any type containing "mix" (any case) into "Mixed" and
// leaves everything else untouched.
func NormalizeType(t string) string {
	if strings.Contains(strings.ToLower(t), "mix") {
		return "Mixed"
	}
	return t
}

func CategoryOf(normalized string) models.Category {
	switch normalized {
	case "Behavioral":
		return models.CategoryBehavioral
	case "Technical":
		return models.CategoryTechnical
	case "Mixed":
		return models.CategoryMixed
	default:
		return models.CategoryMixed
	}
}

// SelectCategoryConfig never fails: unknown labels get the Mixed config.
func SelectCategoryConfig(normalized string) models.CategoryConfig {
	switch c := CategoryOf(normalized); c {
	case models.CategoryBehavioral:
		return models.CategoryConfig{
			Category: c,
			Label:    "Behavioral",
			Icon:     "users",
			Gradient: "from-blue-500 to-cyan-500",
			Badge:    "bg-blue-100 text-blue-700",
		}
	case models.CategoryTechnical:
		return models.CategoryConfig{
			Category: c,
			Label:    "Technical",
			Icon:     "code",
			Gradient: "from-purple-500 to-pink-500",
			Badge:    "bg-purple-100 text-purple-700",
		}
	default:
		return models.CategoryConfig{
			Category: models.CategoryMixed,
			Label:    "Mixed",
			Icon:     "layers",
			Gradient: "from-emerald-500 to-teal-500",
			Badge:    "bg-emerald-100 text-emerald-700",
		}
	}
}

func ResolveCompletion(feedback *models.FeedbackRecord) models.Completion {
	if feedback == nil {
		return models.Pending{}
	}
	return models.Completed{Feedback: *feedback}
}

func SelectURL(interviewID string, c models.Completion) string {
	return SelectURLFor(interviewID, models.IsCompleted(c))
}

func SelectURLFor(interviewID string, completed bool) string {
	if completed {
		return fmt.Sprintf("/interview/%s/feedback", interviewID)
	}
	return fmt.Sprintf("/interview/%s", interviewID)
}

// FormatDate picks the first non-zero of feedbackAt and createdAt, falling
// back to now().
func FormatDate(feedbackAt, createdAt time.Time, now func() time.Time) string {
	switch {
	case !feedbackAt.IsZero():
		return feedbackAt.Format(DateLayout)
	case !createdAt.IsZero():
		return createdAt.Format(DateLayout)
	default:
		return now().Format(DateLayout)
	}
}

func PreviewTechStack(stack []string, limit int) models.TechStackPreview {
	if limit < 0 {
		limit = 0
	}
	if len(stack) <= limit {
		return models.TechStackPreview{Items: append([]string{}, stack...)}
	}
	return models.TechStackPreview{
		Items:  append([]string{}, stack[:limit]...),
		Hidden: len(stack) - limit,
	}
}
