package redis

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

const sessionKeyPrefix = "session:"

// SessionStorage adapts Client to fiber.Storage so sessions survive restarts
// and are shared between instances.
type SessionStorage struct {
	client  *Client
	prefix  string
	timeout time.Duration
}

var _ fiber.Storage = (*SessionStorage)(nil)

func NewSessionStorage(client *Client) *SessionStorage {
	return &SessionStorage{
		client:  client,
		prefix:  sessionKeyPrefix,
		timeout: 3 * time.Second,
	}
}

func (s *SessionStorage) key(k string) string {
	return s.prefix + k
}

func (s *SessionStorage) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.timeout)
}

// Get returns nil, nil for a missing key as fiber.Storage requires
func (s *SessionStorage) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}
	ctx, cancel := s.ctx()
	defer cancel()
	return s.client.GetBytes(ctx, s.key(key))
}

func (s *SessionStorage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	ctx, cancel := s.ctx()
	defer cancel()
	return s.client.Set(ctx, s.key(key), val, exp)
}

func (s *SessionStorage) Delete(key string) error {
	if key == "" {
		return nil
	}
	ctx, cancel := s.ctx()
	defer cancel()
	return s.client.Del(ctx, s.key(key))
}

// Reset removes every session, leaving other keys alone
func (s *SessionStorage) Reset() error {
	ctx, cancel := s.ctx()
	defer cancel()
	_, err := s.client.ScanAndDelete(ctx, s.prefix+"*")
	return err
}

// Close is a no-op; the container owns the client
func (s *SessionStorage) Close() error {
	return nil
}
