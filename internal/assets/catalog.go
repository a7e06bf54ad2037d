package assets

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/magic-tree/internal/audio"
	"github.com/vovakirdan/magic-tree/internal/core"
)

// Glyph is the terminal rendition of an image asset.
type Glyph struct {
	Rune   rune
	Color  core.Color
	Frames []rune // Animation frames; empty for still images
	Failed bool   // True when this is a fallback for an asset that did not load
}

// Frame returns the rune for animation frame i.
func (g Glyph) Frame(i int) rune {
	if len(g.Frames) == 0 {
		return g.Rune
	}
	if i < 0 {
		i = 0
	}
	return g.Frames[i%len(g.Frames)]
}

// Sound describes a loaded audio clip.
type Sound struct {
	Clip  audio.Clip
	Title string
	Music bool
}

// Fallback is drawn for images that failed to load.
var Fallback = Glyph{Rune: '?', Color: core.ColorMagenta, Failed: true}

// Catalog holds everything the loader settled. It is safe for
// concurrent use while loading is in progress.
type Catalog struct {
	mu     sync.RWMutex
	glyphs map[string]Glyph
	sounds map[audio.Clip]Sound
	failed map[string]error
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		glyphs: make(map[string]Glyph),
		sounds: make(map[audio.Clip]Sound),
		failed: make(map[string]error),
	}
}

func (c *Catalog) putGlyph(id string, g Glyph) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.glyphs[id] = g
}

func (c *Catalog) putSound(s Sound) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sounds[s.Clip] = s
}

func (c *Catalog) markFailed(id string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failed[id] = err
}

// Glyph returns the glyph for an image ID. Images that failed to load
// return Fallback without error; IDs outside the manifest return
// ErrUnknownAsset.
func (c *Catalog) Glyph(id string) (Glyph, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	g, ok := c.glyphs[id]
	if !ok {
		return Fallback, fmt.Errorf("%w: %s", ErrUnknownAsset, id)
	}
	return g, nil
}

// Sound returns the descriptor for a clip that loaded successfully.
func (c *Catalog) Sound(clip audio.Clip) (Sound, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.sounds[clip]
	if !ok {
		return Sound{}, fmt.Errorf("%w: %s", ErrUnknownAsset, clip)
	}
	return s, nil
}

// Clips returns the clips that loaded, sorted by name.
func (c *Catalog) Clips() []audio.Clip {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]audio.Clip, 0, len(c.sounds))
	for clip := range c.sounds {
		out = append(out, clip)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Failed returns the IDs of assets that did not load, sorted.
func (c *Catalog) Failed() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.failed))
	for id := range c.failed {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
