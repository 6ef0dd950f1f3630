package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"maturity-assessment-service/internal/app"
	"maturity-assessment-service/internal/domain"
)

// SessionStore is a Redis-backed implementation of app.SessionRepository.
// Notes:
//   - Live sessions stay in a local map so in-process subscribers keep working.
//   - Every mutation writes a JSON snapshot to SET session:{id} with the session TTL;
//     a session missing locally (e.g. after a restart) is restored from that snapshot.
//   - An expired Redis key expires the local session too.
type SessionStore struct {
	client   *redis.Client
	catalogs app.CatalogRepository
	ttl      time.Duration

	mu       sync.RWMutex
	sessions map[string]*app.Session
}

func NewSessionStore(client *redis.Client, catalogs app.CatalogRepository, ttl time.Duration) *SessionStore {
	return &SessionStore{
		client:   client,
		catalogs: catalogs,
		ttl:      ttl,
		sessions: make(map[string]*app.Session),
	}
}

func (s *SessionStore) Add(ctx context.Context, session *app.Session) error {
	if err := s.write(ctx, session); err != nil {
		return err
	}
	s.mu.Lock()
	s.sessions[session.ID()] = session
	s.mu.Unlock()
	return nil
}

func (s *SessionStore) Get(ctx context.Context, sessionID string) (*app.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if ok {
		if s.ttl <= 0 {
			return session, nil
		}
		alive, err := s.client.Expire(ctx, s.key(sessionID), s.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("refresh session ttl: %w", err)
		}
		if alive {
			return session, nil
		}
		s.forget(sessionID)
		return nil, domain.ErrSessionNotFound
	}

	raw, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	var snap app.SessionSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	catalog, err := s.catalogs.GetCatalog(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// another request may have restored it meanwhile
	if existing, ok := s.sessions[sessionID]; ok {
		return existing, nil
	}
	session = app.RestoreSession(snap, catalog)
	s.sessions[sessionID] = session
	return session, nil
}

func (s *SessionStore) Save(ctx context.Context, session *app.Session) error {
	return s.write(ctx, session)
}

func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	s.forget(sessionID)
	return s.client.Del(ctx, s.key(sessionID)).Err()
}

func (s *SessionStore) write(ctx context.Context, session *app.Session) error {
	data, err := json.Marshal(session.Snapshot())
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.client.Set(ctx, s.key(session.ID()), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

func (s *SessionStore) forget(sessionID string) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
}

func (s *SessionStore) key(sessionID string) string {
	return "assessment:session:" + sessionID
}
