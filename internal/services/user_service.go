package services

import (
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/latestcomment/interview-cards/internal/models"
)

type UserService struct {
	users map[string]*models.User
	mu    sync.RWMutex
}

func NewUserService() *UserService {
	return &UserService{users: make(map[string]*models.User)}
}

func (s *UserService) Register(name, profileURL string) *models.User {
	u := &models.User{
		ID:         uuid.New().String(),
		Name:       strings.TrimSpace(name),
		ProfileURL: profileURL,
	}
	s.Add(*u)
	return u
}

func (s *UserService) Add(u models.User) {
	s.mu.Lock()
	s.users[u.ID] = &u
	s.mu.Unlock()
}

// CurrentUser returns nil for an empty or unknown id.
func (s *UserService) CurrentUser(id string) *models.User {
	if id == "" {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil
	}
	cp := *u
	return &cp
}
