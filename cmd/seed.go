package main

import (
	"context"
	"fmt"
	"time"

	"github.com/latestcomment/interview-cards/internal/models"
	"github.com/latestcomment/interview-cards/internal/services"
	"go.uber.org/zap"
)

func seedDemo(interviews *services.InterviewService, users *services.UserService, log *zap.Logger) error {
	demo := users.Register("Demo User", "")
	peer := users.Register("Peer", "")
	now := time.Now().UTC()

	taken, err := interviews.CreateInterview(models.InterviewSummary{
		UserID:    demo.ID,
		Role:      "Frontend Developer",
		Type:      "Mixed",
		Level:     "Junior",
		TechStack: []string{"React", "TypeScript", "Next.js", "Tailwind"},
		CreatedAt: now.Add(-48 * time.Hour),
	})
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if _, err := interviews.CreateInterview(models.InterviewSummary{
		UserID:    demo.ID,
		Role:      "Backend Developer",
		Type:      "Technical",
		TechStack: []string{"Go", "PostgreSQL"},
		CreatedAt: now.Add(-2 * time.Hour),
	}); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if _, err := interviews.CreateInterview(models.InterviewSummary{
		UserID:    peer.ID,
		Role:      "Engineering Manager",
		Type:      "Behavioral",
		Finalized: true,
		CreatedAt: now.Add(-24 * time.Hour),
	}); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	if _, err := interviews.RecordFeedback(context.Background(), models.FeedbackRecord{
		InterviewID:         taken.ID,
		UserID:              demo.ID,
		TotalScore:          models.Score(82),
		FinalAssessment:     "Confident on fundamentals, could go deeper on rendering performance.",
		Strengths:           []string{"Clear communication", "Component design"},
		AreasForImprovement: []string{"Performance profiling"},
		CategoryScores: []models.CategoryScore{
			{Name: "Communication Skills", Score: 88, Comment: "Structured answers."},
			{Name: "Technical Knowledge", Score: 79, Comment: "Solid React basics."},
		},
	}); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	log.Info("seeded demo data", zap.String("user_id", demo.ID))
	fmt.Printf("Demo user: send header X-User-ID: %s or cookie user_id=%s\n", demo.ID, demo.ID)
	return nil
}
