package local

import (
	"context"
	"sync"
	"time"

	"github.com/osahenru/uniportal/internal/app/models"
	"github.com/osahenru/uniportal/internal/pkg/apperrors"
	"github.com/osahenru/uniportal/internal/storage/kv"
)

// storedUser is the slot representation of a user. The model hides the
// password hash from JSON, but the slot has to keep it.
type storedUser struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Password    string    `json:"password"`
	DisplayName string    `json:"displayName"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (u *storedUser) toModel() *models.User {
	return &models.User{
		ID:          u.ID,
		Email:       u.Email,
		Password:    u.Password,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// UserRepository persists admin accounts in a single slot.
type UserRepository struct {
	store *kv.Store
	mu    sync.Mutex
}

// NewUserRepository creates a new slot-backed UserRepository
func NewUserRepository(store *kv.Store) *UserRepository {
	return &UserRepository{store: store}
}

// GetByEmail retrieves a user by email address
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := readSlot[storedUser](r.store, slotUsers)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Email == email {
			return u.toModel(), nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// GetByID retrieves a user by id
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := readSlot[storedUser](r.store, slotUsers)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.ID == id {
			return u.toModel(), nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// Insert assigns id and timestamps, appends the user and rewrites the slot
func (r *UserRepository) Insert(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := readSlot[storedUser](r.store, slotUsers)
	if err != nil {
		return err
	}

	now := time.Now()
	user.ID = newID()
	user.CreatedAt = now
	user.UpdatedAt = now

	users = append(users, &storedUser{
		ID:          user.ID,
		Email:       user.Email,
		Password:    user.Password,
		DisplayName: user.DisplayName,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	})
	return writeSlot(r.store, slotUsers, users)
}
