package language

import (
	"sync"

	"github.com/akangshyya/image-descriptor/internal/models"
)

// DefaultLanguages is the fixed narration language set, in catalog order.
var DefaultLanguages = []models.Language{
	{ID: "english", DisplayName: "English", VoiceTag: "en"},
	{ID: "hindi", DisplayName: "Hindi", VoiceTag: "hi"},
	{ID: "bengali", DisplayName: "Bengali", VoiceTag: "bn"},
	{ID: "telugu", DisplayName: "Telugu", VoiceTag: "te"},
	{ID: "tamil", DisplayName: "Tamil", VoiceTag: "ta"},
	{ID: "malayalam", DisplayName: "Malayalam", VoiceTag: "ml"},
}

// Catalog tracks the active narration language over a fixed ordered set.
// The index only moves through Advance and always stays in [0, len).
type Catalog struct {
	mu    sync.Mutex
	langs []models.Language
	idx   int
}

// NewCatalog builds a catalog over the given languages, falling back to
// DefaultLanguages when none are supplied.
func NewCatalog(langs []models.Language) *Catalog {
	if len(langs) == 0 {
		langs = DefaultLanguages
	}
	return &Catalog{langs: langs}
}

// Current returns the active language.
func (c *Catalog) Current() models.Language {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.langs[c.idx]
}

// Advance moves to the cyclic successor and returns it, wrapping to the first
// entry after the last.
func (c *Catalog) Advance() models.Language {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.idx = (c.idx + 1) % len(c.langs)
	return c.langs[c.idx]
}

// ByID looks up a language by its id.
func (c *Catalog) ByID(id string) (models.Language, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, l := range c.langs {
		if l.ID == id {
			return l, true
		}
	}
	return models.Language{}, false
}

// Languages returns a copy of the catalog entries in order.
func (c *Catalog) Languages() []models.Language {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Language, len(c.langs))
	copy(out, c.langs)
	return out
}
