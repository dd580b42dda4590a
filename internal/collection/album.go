package collection

import (
	"fmt"
	"sync"

	"github.com/verte-zerg/readquest/internal/model"
	"github.com/verte-zerg/readquest/internal/storage"
)

const albumKey = "user_stickers"

// MaxEquipped limits how many stickers can be shown at once.
const MaxEquipped = 4

// Album is the user's sticker ledger, persisted through the state backend.
// Paying for a sticker is the caller's job (stats.SpendCoins before Unlock).
type Album struct {
	mu      sync.Mutex
	backend *storage.Store
	album   model.StickerAlbum
}

// OpenAlbum loads the album, falling back to empty when nothing valid is stored.
func OpenAlbum(backend *storage.Store) *Album {
	a := &Album{backend: backend}
	backend.Load(albumKey, &a.album)
	return a
}

// Album returns a copy of the current album.
func (a *Album) Album() model.StickerAlbum {
	a.mu.Lock()
	defer a.mu.Unlock()
	return model.StickerAlbum{
		Unlocked: append([]string(nil), a.album.Unlocked...),
		Equipped: append([]string(nil), a.album.Equipped...),
	}
}

// Unlock adds a sticker to the album. Unlocking twice is a no-op.
func (a *Album) Unlock(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if contains(a.album.Unlocked, id) {
		return
	}
	a.album.Unlocked = append(a.album.Unlocked, id)
	a.persist()
}

// Equip displays an unlocked sticker. Equipping an already equipped sticker
// is a no-op.
func (a *Album) Equip(id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !contains(a.album.Unlocked, id) {
		return fmt.Errorf("sticker %s is not unlocked", id)
	}
	if contains(a.album.Equipped, id) {
		return nil
	}
	if len(a.album.Equipped) >= MaxEquipped {
		return fmt.Errorf("at most %d stickers can be equipped", MaxEquipped)
	}
	a.album.Equipped = append(a.album.Equipped, id)
	a.persist()
	return nil
}

// Unequip removes a sticker from the equipped set.
func (a *Album) Unequip(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	kept := a.album.Equipped[:0]
	for _, e := range a.album.Equipped {
		if e != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(a.album.Equipped) {
		return
	}
	a.album.Equipped = kept
	a.persist()
}

// IsUnlocked reports whether the sticker is in the album.
func (a *Album) IsUnlocked(id string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return contains(a.album.Unlocked, id)
}

// IsEquipped reports whether the sticker is currently displayed.
func (a *Album) IsEquipped(id string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return contains(a.album.Equipped, id)
}

func (a *Album) persist() {
	a.backend.Save(albumKey, a.album)
}

func contains(list []string, id string) bool {
	for _, e := range list {
		if e == id {
			return true
		}
	}
	return false
}
