package presenter

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/latestcomment/interview-cards/internal/models"
	"github.com/stretchr/testify/require"
)

func TestNormalizeType_MixVariants(t *testing.T) {
	for _, in := range []string{"mixed", "Mixed", "MIX", "mixed interview", "Technical/Mix", "remix"} {
		require.Equal(t, "Mixed", NormalizeType(in), in)
	}
}

func TestNormalizeType_Identity(t *testing.T) {
	for _, in := range []string{"Behavioral", "Technical", "technical", "", "System Design", "M i x"} {
		require.Equal(t, in, NormalizeType(in))
	}
}

func TestSelectCategoryConfig_KnownLabels(t *testing.T) {
	require.Equal(t, models.CategoryBehavioral, SelectCategoryConfig("Behavioral").Category)
	require.Equal(t, models.CategoryTechnical, SelectCategoryConfig("Technical").Category)
	require.Equal(t, models.CategoryMixed, SelectCategoryConfig("Mixed").Category)
	require.Equal(t, "Technical", SelectCategoryConfig("Technical").Label)
}

func TestSelectCategoryConfig_FallsBackToMixed(t *testing.T) {
	mixed := SelectCategoryConfig("Mixed")
	for _, in := range []string{"", "behavioral", "TECHNICAL", "System Design", "🤖"} {
		require.Equal(t, mixed, SelectCategoryConfig(in), in)
	}
}

func TestResolveCompletion(t *testing.T) {
	require.False(t, models.IsCompleted(ResolveCompletion(nil)))
	require.IsType(t, models.Pending{}, ResolveCompletion(nil))

	fb := &models.FeedbackRecord{FinalAssessment: "solid"}
	c := ResolveCompletion(fb)
	require.True(t, models.IsCompleted(c))
	done, ok := c.(models.Completed)
	require.True(t, ok)
	require.Equal(t, "solid", done.Feedback.FinalAssessment)

	// No score still counts as completed.
	require.True(t, models.IsCompleted(ResolveCompletion(&models.FeedbackRecord{})))
}

func TestSelectURL(t *testing.T) {
	done := SelectURLFor("abc-123", true)
	pending := SelectURLFor("abc-123", false)

	require.True(t, strings.HasSuffix(done, "/feedback"))
	require.NotContains(t, pending, "/feedback")
	require.Contains(t, done, "abc-123")
	require.Contains(t, pending, "abc-123")
	require.Equal(t, "/interview/abc-123", pending)
	require.Equal(t, pending, SelectURL("abc-123", models.Pending{}))
	require.Equal(t, done, SelectURL("abc-123", models.Completed{}))
}

func TestScoreTierFor_Boundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  models.ScoreTier
	}{
		{100, models.TierExcellent},
		{90, models.TierExcellent},
		{89, models.TierGreat},
		{89.999, models.TierGreat},
		{80, models.TierGreat},
		{79, models.TierGood},
		{70, models.TierGood},
		{69, models.TierKeepImproving},
		{0, models.TierKeepImproving},
		{-15, models.TierKeepImproving},
		{250, models.TierExcellent},
		{math.Inf(1), models.TierExcellent},
		{math.Inf(-1), models.TierKeepImproving},
		{math.NaN(), models.TierKeepImproving},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, ScoreTierFor(tc.score).Tier, "score %v", tc.score)
	}
}

func TestThresholds_Custom(t *testing.T) {
	th := Thresholds{Excellent: 95, Great: 85, Good: 60}
	require.Equal(t, models.TierGreat, th.Tier(90).Tier)
	require.Equal(t, models.TierGood, th.Tier(60).Tier)
	require.Equal(t, models.TierKeepImproving, th.Tier(59.9).Tier)
}

func TestFormatDate_Priority(t *testing.T) {
	t1 := time.Date(2025, time.March, 4, 10, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, time.November, 21, 8, 30, 0, 0, time.UTC)
	now := func() time.Time { return time.Date(2026, time.January, 9, 0, 0, 0, 0, time.UTC) }

	require.Equal(t, "Mar 4, 2025", FormatDate(t1, t2, now))
	require.Equal(t, "Nov 21, 2024", FormatDate(time.Time{}, t2, now))
	require.Equal(t, "Jan 9, 2026", FormatDate(time.Time{}, time.Time{}, now))
}

func TestPreviewTechStack(t *testing.T) {
	p := PreviewTechStack([]string{"React", "Node", "Postgres", "Redis", "Docker"}, 3)
	require.Equal(t, []string{"React", "Node", "Postgres"}, p.Items)
	require.Equal(t, 2, p.Hidden)

	p = PreviewTechStack([]string{"Go"}, 3)
	require.Equal(t, []string{"Go"}, p.Items)
	require.Zero(t, p.Hidden)

	p = PreviewTechStack(nil, 3)
	require.Empty(t, p.Items)
	require.Zero(t, p.Hidden)

	p = PreviewTechStack([]string{"a", "b"}, -1)
	require.Empty(t, p.Items)
	require.Equal(t, 2, p.Hidden)
}
