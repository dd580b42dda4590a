// Package collection manages the sticker catalog and the user's album.
package collection

import "github.com/verte-zerg/readquest/internal/model"

// Catalog lists every sticker available in the shop.
var Catalog = []model.Sticker{
	{ID: "book_open", Name: "Open Book", Emoji: "📖", Category: "book", Price: 50, Rarity: "common", Description: "A classic open book"},
	{ID: "book_closed", Name: "Closed Book", Emoji: "📕", Category: "book", Price: 50, Rarity: "common", Description: "A beautiful red book"},
	{ID: "bookmark", Name: "Bookmark", Emoji: "🔖", Category: "book", Price: 75, Rarity: "common", Description: "Never lose your page"},
	{ID: "glasses", Name: "Reading Glasses", Emoji: "👓", Category: "book", Price: 100, Rarity: "common", Description: "For the studious reader"},
	{ID: "book_stack", Name: "Book Stack", Emoji: "📚", Category: "book", Price: 200, Rarity: "rare", Description: "A stack of knowledge"},
	{ID: "quill", Name: "Quill Pen", Emoji: "🪶", Category: "book", Price: 250, Rarity: "rare", Description: "Write your own story"},
	{ID: "scroll", Name: "Ancient Scroll", Emoji: "📜", Category: "book", Price: 300, Rarity: "rare", Description: "Wisdom of the ages"},
	{ID: "owl", Name: "Wise Owl", Emoji: "🦉", Category: "character", Price: 100, Rarity: "common", Description: "A wise reading companion"},
	{ID: "cat", Name: "Reading Cat", Emoji: "🐱", Category: "character", Price: 100, Rarity: "common", Description: "Cozy reading buddy"},
	{ID: "bunny", Name: "Bookworm Bunny", Emoji: "🐰", Category: "character", Price: 100, Rarity: "common", Description: "Hops through pages"},
	{ID: "fox", Name: "Clever Fox", Emoji: "🦊", Category: "character", Price: 250, Rarity: "rare", Description: "Smart and swift"},
	{ID: "dragon", Name: "Book Dragon", Emoji: "🐉", Category: "character", Price: 400, Rarity: "rare", Description: "Guards your library"},
	{ID: "unicorn", Name: "Magic Unicorn", Emoji: "🦄", Category: "character", Price: 600, Rarity: "epic", Description: "Brings magic to reading"},
	{ID: "phoenix", Name: "Phoenix Reader", Emoji: "🔥", Category: "character", Price: 750, Rarity: "epic", Description: "Rises through stories"},
	{ID: "star", Name: "Gold Star", Emoji: "⭐", Category: "achievement", Price: 75, Rarity: "common", Description: "You did great!"},
	{ID: "medal", Name: "Reader Medal", Emoji: "🏅", Category: "achievement", Price: 100, Rarity: "common", Description: "First place reader"},
	{ID: "trophy", Name: "Champion Trophy", Emoji: "🏆", Category: "achievement", Price: 300, Rarity: "rare", Description: "Reading champion"},
	{ID: "crown", Name: "Royal Crown", Emoji: "👑", Category: "achievement", Price: 350, Rarity: "rare", Description: "Royalty of readers"},
	{ID: "diamond", Name: "Diamond Reader", Emoji: "💎", Category: "achievement", Price: 500, Rarity: "epic", Description: "Precious achievement"},
	{ID: "rocket", Name: "Rocket Reader", Emoji: "🚀", Category: "achievement", Price: 600, Rarity: "epic", Description: "Sky-high reading"},
	{ID: "infinity", Name: "Infinite Reader", Emoji: "♾️", Category: "achievement", Price: 1000, Rarity: "legendary", Description: "Endless dedication"},
	{ID: "sparkles", Name: "Legendary Sparkles", Emoji: "✨", Category: "achievement", Price: 1200, Rarity: "legendary", Description: "Pure magic"},
}

// ByID looks a sticker up in the catalog.
func ByID(id string) (model.Sticker, bool) {
	for _, sticker := range Catalog {
		if sticker.ID == id {
			return sticker, true
		}
	}
	return model.Sticker{}, false
}
