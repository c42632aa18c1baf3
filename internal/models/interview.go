package models

import (
	"sync"
	"time"
)

type InterviewSummary struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Role      string    `json:"role"`
	Type      string    `json:"type"` // "Behavioral", "Technical", "Mixed" or free-form
	Level     string    `json:"level,omitempty"`
	TechStack []string  `json:"techstack,omitempty"`
	Finalized bool      `json:"finalized"`
	CreatedAt time.Time `json:"createdAt"` // zero when unknown
}

type CategoryScore struct {
	Name    string  `json:"name"`
	Score   float64 `json:"score"`
	Comment string  `json:"comment"`
}

type FeedbackRecord struct {
	ID                  string          `json:"id"`
	InterviewID         string          `json:"interviewId"`
	UserID              string          `json:"userId"`
	TotalScore          *float64        `json:"totalScore,omitempty"` // nil when not scored
	CategoryScores      []CategoryScore `json:"categoryScores,omitempty"`
	Strengths           []string        `json:"strengths,omitempty"`
	AreasForImprovement []string        `json:"areasForImprovement,omitempty"`
	FinalAssessment     string          `json:"finalAssessment"`
	CreatedAt           time.Time       `json:"createdAt"`
}

type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ProfileURL string `json:"profileURL,omitempty"`
}

// Catalogue holds interviews by ID and feedback keyed by interview and user.
type Catalogue struct {
	Interviews map[string]*InterviewSummary
	Feedback   map[FeedbackKey]*FeedbackRecord
	Mu         sync.RWMutex
}

type FeedbackKey struct {
	InterviewID string
	UserID      string
}

func NewCatalogue() *Catalogue {
	return &Catalogue{
		Interviews: make(map[string]*InterviewSummary),
		Feedback:   make(map[FeedbackKey]*FeedbackRecord),
	}
}

// Score returns a pointer to s, for building FeedbackRecord literals.
func Score(s float64) *float64 {
	return &s
}
