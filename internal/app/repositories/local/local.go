// Package local implements the repository contracts on top of durable
// key-value slots. Each collection lives in one slot as a JSON array that is
// read in full and rewritten wholesale on every mutation. Ids are derived
// from millisecond timestamps and timestamps are assigned client-side.
package local

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/osahenru/uniportal/internal/app/repositories"
	"github.com/osahenru/uniportal/internal/storage/kv"
)

const (
	slotNews     = "news_articles"
	slotEvents   = "events"
	slotGallery  = "gallery_items"
	slotMedia    = "media_files"
	slotSections = "exco_sections"
	slotUsers    = "users"
	slotTokens   = "refresh_tokens"
)

// NewRepositories wires every slot-backed repository onto one store.
func NewRepositories(store *kv.Store) *repositories.Repositories {
	return &repositories.Repositories{
		News:         NewNewsRepository(store),
		Events:       NewEventRepository(store),
		Gallery:      NewGalleryRepository(store),
		Media:        NewMediaRepository(store),
		Organization: NewOrganizationRepository(store),
		Users:        NewUserRepository(store),
		Tokens:       NewTokenRepository(store),
	}
}

// readSlot loads a collection from its slot. A slot that has never been
// written reads as an empty collection.
func readSlot[T any](store *kv.Store, key string) ([]*T, error) {
	raw, err := store.Get(key)
	if errors.Is(err, kv.ErrNoSlot) {
		return []*T{}, nil
	}
	if err != nil {
		return nil, err
	}

	items := []*T{}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to decode collection %q: %w", key, err)
	}
	return items, nil
}

// writeSlot serializes a collection and replaces its slot.
func writeSlot[T any](store *kv.Store, key string, items []*T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode collection %q: %w", key, err)
	}
	return store.Put(key, raw)
}

var (
	idMu   sync.Mutex
	lastID int64
)

// newID returns a millisecond-timestamp id, bumped when two ids would
// otherwise collide within the same millisecond.
func newID() string {
	idMu.Lock()
	defer idMu.Unlock()

	now := time.Now().UnixMilli()
	if now <= lastID {
		now = lastID + 1
	}
	lastID = now
	return strconv.FormatInt(now, 10)
}
