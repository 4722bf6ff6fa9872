package local

import (
	"context"
	"sync"
	"time"

	"github.com/osahenru/uniportal/internal/app/models"
	"github.com/osahenru/uniportal/internal/pkg/apperrors"
	"github.com/osahenru/uniportal/internal/storage/kv"
)

// TokenRepository persists refresh tokens in a single slot.
type TokenRepository struct {
	store *kv.Store
	mu    sync.Mutex
}

// NewTokenRepository creates a new slot-backed TokenRepository
func NewTokenRepository(store *kv.Store) *TokenRepository {
	return &TokenRepository{store: store}
}

// Insert assigns id and timestamp, appends the token and rewrites the slot
func (r *TokenRepository) Insert(ctx context.Context, token *models.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tokens, err := readSlot[models.RefreshToken](r.store, slotTokens)
	if err != nil {
		return err
	}

	token.ID = newID()
	token.CreatedAt = time.Now()

	tokens = append(tokens, token)
	return writeSlot(r.store, slotTokens, tokens)
}

// GetByToken retrieves a refresh token by its opaque value
func (r *TokenRepository) GetByToken(ctx context.Context, tokenStr string) (*models.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tokens, err := readSlot[models.RefreshToken](r.store, slotTokens)
	if err != nil {
		return nil, err
	}

	for _, t := range tokens {
		if t.Token == tokenStr {
			clone := *t
			return &clone, nil
		}
	}
	return nil, apperrors.ErrTokenNotFound
}

// Revoke marks a refresh token as revoked and rewrites the slot
func (r *TokenRepository) Revoke(ctx context.Context, tokenStr string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tokens, err := readSlot[models.RefreshToken](r.store, slotTokens)
	if err != nil {
		return err
	}

	for _, t := range tokens {
		if t.Token == tokenStr {
			t.Revoked = true
			return writeSlot(r.store, slotTokens, tokens)
		}
	}

	return apperrors.ErrTokenNotFound
}
