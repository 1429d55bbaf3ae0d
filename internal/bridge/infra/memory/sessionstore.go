package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/klwxsrx/docscan-portal/internal/bridge/domain"
)

// sessionStore keeps sessions in the process memory, every operation holds the single store mutex
type sessionStore struct {
	mutex    *sync.RWMutex
	sessions map[domain.Token]domain.Session
}

func NewSessionStore() domain.SessionStore {
	return &sessionStore{
		mutex:    &sync.RWMutex{},
		sessions: make(map[domain.Token]domain.Session),
	}
}

func (s *sessionStore) Put(_ context.Context, session *domain.Session) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.sessions[session.Token] = *session
	return nil
}

func (s *sessionStore) Get(_ context.Context, token domain.Token) (*domain.Session, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	session, ok := s.sessions[token]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	return &session, nil
}

func (s *sessionStore) Delete(_ context.Context, token domain.Token) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.sessions, token)
	return nil
}

func (s *sessionStore) DeleteBySubject(_ context.Context, subjectID domain.SubjectID) (int, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	var deleted int
	for token, session := range s.sessions {
		if session.SubjectID == subjectID {
			delete(s.sessions, token)
			deleted++
		}
	}

	return deleted, nil
}

func (s *sessionStore) SweepExpired(_ context.Context, now time.Time) (int, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	var swept int
	for token, session := range s.sessions {
		if session.ExpiresAt.Before(now) {
			delete(s.sessions, token)
			swept++
		}
	}

	return swept, nil
}

func (s *sessionStore) List(_ context.Context) ([]domain.Session, error) {
	s.mutex.RLock()
	result := make([]domain.Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		result = append(result, session)
	}
	s.mutex.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}
