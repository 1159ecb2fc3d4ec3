package otp

import (
	"context"
	"sync"
	"time"

	"food-delivery/internal/entities"
)

type expiring[T any] struct {
	value     T
	expiresAt time.Time
}

type memoryEntry struct {
	code     *expiring[string]
	attempts *expiring[int]
	verified *expiring[struct{}]
}

// MemoryStore - хранилище OTP в памяти процесса для разработки и тестов.
// Все операции сериализуются одним мьютексом.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	now     func() time.Time
}

type MemoryOption func(*MemoryStore)

// WithClock подменяет источник времени.
func WithClock(now func() time.Time) MemoryOption {
	return func(s *MemoryStore) {
		s.now = now
	}
}

func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		entries: make(map[string]*memoryEntry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryStore) Load(_ context.Context, mobile string) (entities.OTPState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.stateLocked(mobile), nil
}

func (s *MemoryStore) Update(_ context.Context, mobile string, fn func(entities.OTPState) entities.OTPMutation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	mutation := fn(s.stateLocked(mobile))

	entry := s.entries[mobile]
	if entry == nil {
		entry = &memoryEntry{}
		s.entries[mobile] = entry
	}
	now := s.now()

	switch {
	case mutation.SetCode != nil:
		entry.code = &expiring[string]{value: mutation.SetCode.Code, expiresAt: now.Add(mutation.SetCode.TTL)}
	case mutation.DeleteCode:
		entry.code = nil
	}

	switch {
	case mutation.SetAttempts != nil:
		entry.attempts = &expiring[int]{value: mutation.SetAttempts.Value, expiresAt: now.Add(mutation.SetAttempts.TTL)}
	case mutation.DeleteAttempts:
		entry.attempts = nil
	}

	switch {
	case mutation.SetVerified != nil:
		entry.verified = &expiring[struct{}]{expiresAt: now.Add(*mutation.SetVerified)}
	case mutation.DeleteVerified:
		entry.verified = nil
	}

	if entry.code == nil && entry.attempts == nil && entry.verified == nil {
		delete(s.entries, mobile)
	}
	return nil
}

func (s *MemoryStore) stateLocked(mobile string) entities.OTPState {
	entry, ok := s.entries[mobile]
	if !ok {
		return entities.OTPState{}
	}

	now := s.now()
	s.evictLocked(mobile, entry, now)

	var state entities.OTPState
	if entry.code != nil {
		state.Code = entry.code.value
		state.CodeTTL = entry.code.expiresAt.Sub(now)
	}
	if entry.attempts != nil {
		state.Attempts = entry.attempts.value
	}
	state.Verified = entry.verified != nil
	return state
}

func (s *MemoryStore) evictLocked(mobile string, entry *memoryEntry, now time.Time) {
	if entry.code != nil && !now.Before(entry.code.expiresAt) {
		entry.code = nil
	}
	if entry.attempts != nil && !now.Before(entry.attempts.expiresAt) {
		entry.attempts = nil
	}
	if entry.verified != nil && !now.Before(entry.verified.expiresAt) {
		entry.verified = nil
	}
	if entry.code == nil && entry.attempts == nil && entry.verified == nil {
		delete(s.entries, mobile)
	}
}
