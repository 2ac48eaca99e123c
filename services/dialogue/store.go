package dialogue

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"aerovoice/models"

	"github.com/go-redis/redis/v8"
)

// SessionStore keeps one ConversationContext per session id. A nil context
// with a nil error means the session does not exist yet.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.ConversationContext, error)
	Save(ctx context.Context, sessionID string, convo *models.ConversationContext) error
	Delete(ctx context.Context, sessionID string) error
}

// MemorySessionStore is the default process-local store.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.ConversationContext
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]*models.ConversationContext)}
}

func (s *MemorySessionStore) Get(_ context.Context, sessionID string) (*models.ConversationContext, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[sessionID], nil
}

func (s *MemorySessionStore) Save(_ context.Context, sessionID string, convo *models.ConversationContext) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = convo
	return nil
}

func (s *MemorySessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

const sessionPrefix = "voice:ctx:"

// RedisSessionStore keeps conversation state in Redis so sessions survive
// process restarts and can be shared across replicas.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.ConversationContext, error) {
	data, err := s.client.Get(ctx, sessionPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var convo models.ConversationContext
	if err := json.Unmarshal([]byte(data), &convo); err != nil {
		return nil, err
	}
	return &convo, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, sessionID string, convo *models.ConversationContext) error {
	b, err := json.Marshal(convo)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionPrefix+sessionID, b, s.ttl).Err()
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionPrefix+sessionID).Err()
}

// sessionLocks serializes ProcessInput per session id, closing the
// read-modify-write race on shared session state.
type sessionLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{locks: make(map[string]*sync.Mutex)}
}

func (l *sessionLocks) get(sessionID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[sessionID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[sessionID] = m
	}
	return m
}

func (l *sessionLocks) drop(sessionID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.locks, sessionID)
}
