package web

import (
	"bytes"
	"testing"

	"github.com/latestcomment/interview-cards/internal/models"
	"github.com/latestcomment/interview-cards/internal/presenter"
	"github.com/stretchr/testify/require"
)

func TestEngine_RendersCardPartial(t *testing.T) {
	engine, err := Engine("")
	require.NoError(t, err)
	require.NoError(t, engine.Load())

	var buf bytes.Buffer
	err = engine.Render(&buf, "partials/card", models.DisplayDecision{
		InterviewID:    "abc",
		Role:           "Frontend",
		NormalizedType: "Mixed",
		TargetURL:      "/interview/abc",
		FormattedDate:  "Jun 1, 2025",
		TechStack:      models.TechStackPreview{Items: []string{"React"}, Hidden: 2},
	})
	require.NoError(t, err)
	out := buf.String()
	require.Contains(t, out, `href="/interview/abc"`)
	require.Contains(t, out, "---/100")
	require.Contains(t, out, "+2")
	require.Contains(t, out, "View Interview")
}

func TestFormatScore(t *testing.T) {
	require.Equal(t, "---", formatScore(nil))
	s := 87.6
	require.Equal(t, "87.6", formatScore(&s))
	s = 74
	require.Equal(t, "74", formatScore(&s))
}

func TestEngine_ScoreAgreesWithTier(t *testing.T) {
	engine, err := Engine("")
	require.NoError(t, err)
	p := presenter.New(presenter.DefaultThresholds, presenter.DefaultTechStackLimit)
	iv := models.InterviewSummary{ID: "abc", Role: "Frontend", Type: "Technical"}

	cases := []struct {
		score float64
		shown string
		tier  models.ScoreTier
	}{
		{89.6, "89.6/100", models.TierGreat},
		{89.5, "89.5/100", models.TierGreat},
		{79.7, "79.7/100", models.TierGood},
		{69.9, "69.9/100", models.TierKeepImproving},
		{90, "90/100", models.TierExcellent},
	}
	for _, tc := range cases {
		card := p.Present(iv, &models.FeedbackRecord{TotalScore: models.Score(tc.score)})

		var buf bytes.Buffer
		require.NoError(t, engine.Render(&buf, "partials/card", card))
		out := buf.String()
		require.Contains(t, out, `<span class="score">`+tc.shown+`</span>`, "score %v", tc.score)
		require.Contains(t, out, string(tc.tier), "score %v", tc.score)
	}
}
