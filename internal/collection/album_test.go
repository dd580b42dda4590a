package collection

import (
	"testing"

	"github.com/verte-zerg/readquest/internal/storage"
)

func discardLog(_ string, _ ...any) {}

func newTestAlbum(t *testing.T) *Album {
	t.Helper()
	return OpenAlbum(storage.New(t.TempDir(), discardLog))
}

func TestUnlockIdempotent(t *testing.T) {
	album := newTestAlbum(t)
	album.Unlock("owl")
	album.Unlock("owl")
	got := album.Album()
	if len(got.Unlocked) != 1 || got.Unlocked[0] != "owl" {
		t.Fatalf("unexpected unlocked set: %v", got.Unlocked)
	}
	if !album.IsUnlocked("owl") {
		t.Fatal("expected owl to be unlocked")
	}
}

func TestEquipRequiresUnlock(t *testing.T) {
	album := newTestAlbum(t)
	if err := album.Equip("owl"); err == nil {
		t.Fatal("expected equip of a locked sticker to fail")
	}
	album.Unlock("owl")
	if err := album.Equip("owl"); err != nil {
		t.Fatalf("expected equip to succeed: %v", err)
	}
	// Equipping twice is a no-op.
	if err := album.Equip("owl"); err != nil {
		t.Fatalf("expected repeat equip to be a no-op: %v", err)
	}
	if got := album.Album(); len(got.Equipped) != 1 {
		t.Fatalf("unexpected equipped set: %v", got.Equipped)
	}
}

func TestEquipLimit(t *testing.T) {
	album := newTestAlbum(t)
	ids := []string{"owl", "cat", "bunny", "fox", "dragon"}
	for _, id := range ids {
		album.Unlock(id)
	}
	for _, id := range ids[:MaxEquipped] {
		if err := album.Equip(id); err != nil {
			t.Fatalf("failed to equip %s: %v", id, err)
		}
	}
	if err := album.Equip(ids[MaxEquipped]); err == nil {
		t.Fatalf("expected equip beyond %d to fail", MaxEquipped)
	}
	album.Unequip("owl")
	if err := album.Equip(ids[MaxEquipped]); err != nil {
		t.Fatalf("expected equip to succeed after unequip: %v", err)
	}
}

func TestAlbumPersists(t *testing.T) {
	backend := storage.New(t.TempDir(), discardLog)
	album := OpenAlbum(backend)
	album.Unlock("owl")
	if err := album.Equip("owl"); err != nil {
		t.Fatalf("failed to equip: %v", err)
	}

	reloaded := OpenAlbum(backend)
	if !reloaded.IsUnlocked("owl") || !reloaded.IsEquipped("owl") {
		t.Fatalf("album lost on reload: %+v", reloaded.Album())
	}
}

func TestCatalogByID(t *testing.T) {
	sticker, ok := ByID("dragon")
	if !ok || sticker.Name != "Book Dragon" || sticker.Price != 400 {
		t.Fatalf("unexpected catalog entry: %+v", sticker)
	}
	if _, ok := ByID("nope"); ok {
		t.Fatal("expected lookup miss for unknown id")
	}
}

func TestCatalogIDsUnique(t *testing.T) {
	seen := map[string]struct{}{}
	for _, sticker := range Catalog {
		if _, dup := seen[sticker.ID]; dup {
			t.Fatalf("duplicate sticker id %s", sticker.ID)
		}
		seen[sticker.ID] = struct{}{}
	}
}
