package services

import (
	"github.com/google/uuid"
	"github.com/latestcomment/interview-cards/internal/models"
	"go.uber.org/zap"
)

// CardHub fans refreshed cards out to every live connection of a user.
type CardHub struct {
	Manager *models.FeedManager

	logger *zap.Logger
}

func NewCardHub(manager *models.FeedManager, logger *zap.Logger) *CardHub {
	return &CardHub{Manager: manager, logger: logger}
}

func (h *CardHub) feed(userID string) *models.Feed {
	h.Manager.Mu.Lock()
	defer h.Manager.Mu.Unlock()
	return h.Manager.Feeds[userID]
}

// Subscribe and Unsubscribe hold Manager.Mu throughout so an emptied feed is
// never removed while a subscriber is being added to it.
func (h *CardHub) Subscribe(userID string, conn models.CardWriter) *models.Subscriber {
	sub := &models.Subscriber{
		Id:     uuid.New(),
		UserID: userID,
		Conn:   conn,
	}

	h.Manager.Mu.Lock()
	f := h.Manager.Feeds[userID]
	if f == nil {
		f = &models.Feed{
			UserID:      userID,
			Subscribers: make(map[uuid.UUID]*models.Subscriber),
		}
		h.Manager.Feeds[userID] = f
	}
	f.Mu.Lock()
	f.Subscribers[sub.Id] = sub
	f.Mu.Unlock()
	h.Manager.Mu.Unlock()

	h.logger.Debug("card subscriber joined",
		zap.String("user_id", userID),
		zap.String("subscriber_id", sub.Id.String()))
	return sub
}

func (h *CardHub) Unsubscribe(sub *models.Subscriber) {
	h.Manager.Mu.Lock()
	defer h.Manager.Mu.Unlock()

	f := h.Manager.Feeds[sub.UserID]
	if f == nil {
		return
	}
	f.Mu.Lock()
	delete(f.Subscribers, sub.Id)
	if len(f.Subscribers) == 0 {
		delete(h.Manager.Feeds, sub.UserID)
	}
	f.Mu.Unlock()
}

// SubscriberCount reports the live subscribers for userID.
func (h *CardHub) SubscriberCount(userID string) int {
	f := h.feed(userID)
	if f == nil {
		return 0
	}
	f.Mu.Lock()
	defer f.Mu.Unlock()
	return len(f.Subscribers)
}

// Publish writes card to each subscriber of userID and returns how many
// writes succeeded. Subscribers whose write fails are dropped.
func (h *CardHub) Publish(userID string, card models.DisplayDecision) int {
	f := h.feed(userID)
	if f == nil {
		return 0
	}

	f.Mu.Lock()
	subs := make([]*models.Subscriber, 0, len(f.Subscribers))
	for _, s := range f.Subscribers {
		subs = append(subs, s)
	}
	f.Mu.Unlock()

	delivered := 0
	for _, s := range subs {
		if s.Conn == nil {
			continue
		}
		if err := s.Conn.WriteJSON(card); err != nil {
			h.logger.Warn("dropping card subscriber",
				zap.String("user_id", userID),
				zap.String("subscriber_id", s.Id.String()),
				zap.Error(err))
			h.Unsubscribe(s)
			continue
		}
		delivered++
	}

	h.logger.Debug("card published",
		zap.String("user_id", userID),
		zap.String("interview_id", card.InterviewID),
		zap.Int("delivered", delivered))
	return delivered
}
