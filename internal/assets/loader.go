package assets

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"sync/atomic"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/magic-tree/internal/audio"
)

// Progress is called each time an asset settles. It may be called from
// several goroutines at once.
type Progress func(settled, total int)

// Loader reads assets from a filesystem concurrently.
type Loader struct {
	fsys     fs.FS
	logger   *log.Logger
	limit    int
	progress Progress
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithConcurrency caps the number of assets read at once.
func WithConcurrency(n int) LoaderOption {
	return func(l *Loader) {
		if n > 0 {
			l.limit = n
		}
	}
}

// WithProgress registers a settle callback.
func WithProgress(p Progress) LoaderOption {
	return func(l *Loader) {
		l.progress = p
	}
}

// NewLoader creates a loader over fsys. A nil logger discards output.
func NewLoader(fsys fs.FS, logger *log.Logger, opts ...LoaderOption) *Loader {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	l := &Loader{fsys: fsys, logger: logger, limit: 4}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load settles every asset in the manifest. Per-asset failures are logged
// and recorded in the catalog; the only error returned is cancellation of
// ctx.
func (l *Loader) Load(ctx context.Context, m Manifest) (*Catalog, error) {
	cat := NewCatalog()
	total := m.Total()
	var settled atomic.Int64

	settle := func() {
		n := int(settled.Add(1))
		if l.progress != nil {
			l.progress(n, total)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.limit)

	for _, r := range m.Images {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			glyph, err := l.loadGlyph(r.Path)
			if err != nil {
				l.logger.Warn("image failed to load", "id", r.ID, "path", r.Path, "err", err)
				cat.markFailed(r.ID, err)
				glyph = Fallback
			}
			cat.putGlyph(r.ID, glyph)
			settle()
			return nil
		})
	}

	for _, r := range m.Sounds {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			snd, err := l.loadSound(r)
			if err != nil {
				l.logger.Warn("sound failed to load", "id", r.ID, "path", r.Path, "err", err)
				cat.markFailed(r.ID, err)
			} else {
				cat.putSound(snd)
			}
			settle()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("assets: load: %w", err)
	}
	l.logger.Debug("assets settled", "total", total, "failed", len(cat.Failed()))
	return cat, nil
}

type glyphFile struct {
	Rune   string   `yaml:"rune"`
	Color  string   `yaml:"color"`
	Frames []string `yaml:"frames"`
}

func (l *Loader) loadGlyph(path string) (Glyph, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return Glyph{}, fmt.Errorf("read %s: %w", path, err)
	}
	var gf glyphFile
	if err := yaml.Unmarshal(data, &gf); err != nil {
		return Glyph{}, fmt.Errorf("parse %s: %w", path, err)
	}
	r, err := singleRune(gf.Rune)
	if err != nil {
		return Glyph{}, fmt.Errorf("%s: rune: %w", path, err)
	}
	color, err := ParseColor(gf.Color)
	if err != nil {
		return Glyph{}, fmt.Errorf("%s: %w", path, err)
	}
	glyph := Glyph{Rune: r, Color: color}
	for i, f := range gf.Frames {
		fr, err := singleRune(f)
		if err != nil {
			return Glyph{}, fmt.Errorf("%s: frame %d: %w", path, i, err)
		}
		glyph.Frames = append(glyph.Frames, fr)
	}
	return glyph, nil
}

type soundFile struct {
	Title string `yaml:"title"`
	Music bool   `yaml:"music"`
}

func (l *Loader) loadSound(r Resource) (Sound, error) {
	data, err := fs.ReadFile(l.fsys, r.Path)
	if err != nil {
		return Sound{}, fmt.Errorf("read %s: %w", r.Path, err)
	}
	var sf soundFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return Sound{}, fmt.Errorf("parse %s: %w", r.Path, err)
	}
	clip := audio.Clip(r.ID)
	if sf.Music != clip.IsMusic() {
		return Sound{}, fmt.Errorf("%s: music flag does not match clip name %q", r.Path, r.ID)
	}
	title := sf.Title
	if title == "" {
		title = r.ID
	}
	return Sound{Clip: clip, Title: title, Music: sf.Music}, nil
}

func singleRune(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("want exactly one character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
