package models

// Completion is either Pending or Completed. The unexported method keeps the
// set closed to this package.
type Completion interface {
	isCompletion()
}

type Pending struct{}

type Completed struct {
	Feedback FeedbackRecord
}

func (Pending) isCompletion()   {}
func (Completed) isCompletion() {}

func IsCompleted(c Completion) bool {
	_, ok := c.(Completed)
	return ok
}

type Category int

const (
	CategoryMixed Category = iota
	CategoryBehavioral
	CategoryTechnical
)

func (c Category) String() string {
	switch c {
	case CategoryBehavioral:
		return "Behavioral"
	case CategoryTechnical:
		return "Technical"
	default:
		return "Mixed"
	}
}

type CategoryConfig struct {
	Category Category `json:"-"`
	Label    string   `json:"label"`
	Icon     string   `json:"icon"`
	Gradient string   `json:"gradient"`
	Badge    string   `json:"badge"`
}

type ScoreTier string

const (
	TierExcellent     ScoreTier = "Excellent"
	TierGreat         ScoreTier = "Great"
	TierGood          ScoreTier = "Good"
	TierKeepImproving ScoreTier = "Keep Improving"
)

type ScoreTierConfig struct {
	Tier  ScoreTier `json:"tier"`
	Color string    `json:"color"`
	Icon  string    `json:"icon"`
}

type TechStackPreview struct {
	Items  []string `json:"items"`
	Hidden int      `json:"hidden"` // items beyond the preview limit
}

// DisplayDecision is everything a card needs to render one interview.
type DisplayDecision struct {
	InterviewID    string           `json:"interviewId"`
	Role           string           `json:"role"`
	NormalizedType string           `json:"type"`
	Category       CategoryConfig   `json:"category"`
	Completion     Completion       `json:"-"`
	Completed      bool             `json:"completed"`
	TargetURL      string           `json:"targetUrl"`
	Score          *float64         `json:"score,omitempty"`
	ScoreTier      *ScoreTierConfig `json:"scoreTier,omitempty"`
	Assessment     string           `json:"assessment,omitempty"`
	FormattedDate  string           `json:"date"`
	TechStack      TechStackPreview `json:"techStack"`
}
