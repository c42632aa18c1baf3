package models

import (
	"sync"

	"github.com/google/uuid"
)

// CardWriter is satisfied by *websocket.Conn.
type CardWriter interface {
	WriteJSON(v interface{}) error
}

type Subscriber struct {
	Id     uuid.UUID  `json:"subscriberid"`
	UserID string     `json:"userid"`
	Conn   CardWriter `json:"-"`
}

// Feed is the set of live subscribers watching one user's cards.
type Feed struct {
	UserID      string
	Subscribers map[uuid.UUID]*Subscriber
	Mu          sync.Mutex
}

type FeedManager struct {
	Feeds map[string]*Feed
	Mu    sync.Mutex
}

func NewFeedManager() *FeedManager {
	return &FeedManager{Feeds: make(map[string]*Feed)}
}
