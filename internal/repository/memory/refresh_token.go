package memory

import (
	"context"
	"sync"
	"time"
)

type tokenRecord struct {
	userID    string
	expiresAt time.Time
	revoked   bool
}

// RefreshTokenRepository keeps issued refresh tokens in memory, keyed
// by the raw token value.
type RefreshTokenRepository struct {
	mu     sync.RWMutex
	tokens map[string]tokenRecord
}

func NewRefreshTokenRepository() *RefreshTokenRepository {
	return &RefreshTokenRepository{tokens: map[string]tokenRecord{}}
}

func (r *RefreshTokenRepository) Create(_ context.Context, userID, token string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[token] = tokenRecord{userID: userID, expiresAt: expiresAt}
	return nil
}

func (r *RefreshTokenRepository) IsRevoked(_ context.Context, token string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.tokens[token]
	if !ok {
		return true, nil
	}
	return record.revoked || !record.expiresAt.After(time.Now()), nil
}

func (r *RefreshTokenRepository) Revoke(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if record, ok := r.tokens[token]; ok {
		record.revoked = true
		r.tokens[token] = record
	}
	return nil
}

func (r *RefreshTokenRepository) RevokeAllForUser(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for token, record := range r.tokens {
		if record.userID == userID {
			record.revoked = true
			r.tokens[token] = record
		}
	}
	return nil
}
