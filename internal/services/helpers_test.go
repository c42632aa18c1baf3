package services

import (
	"errors"
	"sync"
	"time"

	"github.com/latestcomment/interview-cards/internal/models"
	"github.com/latestcomment/interview-cards/internal/presenter"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

type fakeConn struct {
	mu    sync.Mutex
	cards []models.DisplayDecision
	fail  bool
}

func (c *fakeConn) WriteJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return errors.New("broken pipe")
	}
	c.cards = append(c.cards, v.(models.DisplayDecision))
	return nil
}

func (c *fakeConn) received() []models.DisplayDecision {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.DisplayDecision(nil), c.cards...)
}

func newTestServices() (*InterviewService, *CardHub) {
	logger := zap.NewNop()
	p := presenter.New(presenter.DefaultThresholds, presenter.DefaultTechStackLimit)
	p.Now = func() time.Time { return fixedNow }
	hub := NewCardHub(models.NewFeedManager(), logger)
	svc := NewInterviewService(models.NewCatalogue(), p, hub, logger)
	svc.Now = func() time.Time { return fixedNow }
	return svc, hub
}
