package bar

import (
	"sync"
	"time"

	"github.com/mosbasik/linearclock/internal/astro"
)

// maxCacheEntries bounds each memo table. Distinct keys accumulate only on
// cycle transitions and terminal resizes, so the bound is generous; when it
// is ever hit the table is dropped wholesale, since correctness never
// depends on a cache hit.
const maxCacheEntries = 256

type barKey struct {
	cycle  astro.Key
	length int
}

type offsetKey struct {
	bar *Bar
	at  int64
}

type renderKey struct {
	bar   *Bar
	now   Offset
	label string
}

type scaleResult struct {
	line string
	ok   bool
}

// Engine memoizes the pure bar functions for a fixed style set and glyph
// pair. Every operation is invoked several times per frame with identical
// arguments (once per marker label, once per redraw), and again from the
// resize path, so results are cached under a lock; concurrent use from the
// redraw loop and a resize handler is safe.
type Engine struct {
	styles StyleSet
	glyphs Glyphs

	mu      sync.Mutex
	bars    map[barKey]*Bar
	offsets map[offsetKey]Offset
	renders map[renderKey]string
	scales  map[*Bar]scaleResult
}

// NewEngine creates an Engine rendering with the given styles and glyphs.
func NewEngine(styles StyleSet, glyphs Glyphs) *Engine {
	return &Engine{
		styles:  styles,
		glyphs:  glyphs,
		bars:    make(map[barKey]*Bar),
		offsets: make(map[offsetKey]Offset),
		renders: make(map[renderKey]string),
		scales:  make(map[*Bar]scaleResult),
	}
}

// Bar returns the bar for (cycle, length), building it on first use.
// Identical arguments return the same *Bar instance, which also keys the
// downstream offset/render/scale memos.
func (e *Engine) Bar(cycle astro.Cycle, length int) (*Bar, error) {
	key := barKey{cycle: cycle.Key(), length: length}

	e.mu.Lock()
	if b, ok := e.bars[key]; ok {
		e.mu.Unlock()
		return b, nil
	}
	e.mu.Unlock()

	b, err := Build(cycle, length)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	// Another goroutine may have built it meanwhile; keep the first so all
	// callers share one canonical instance.
	if existing, ok := e.bars[key]; ok {
		return existing, nil
	}
	if len(e.bars) >= maxCacheEntries {
		e.bars = make(map[barKey]*Bar)
	}
	e.bars[key] = b
	return b, nil
}

// OffsetFromInstant is a memoized OffsetFromInstant.
func (e *Engine) OffsetFromInstant(b *Bar, t time.Time) (Offset, error) {
	key := offsetKey{bar: b, at: t.UnixNano()}

	e.mu.Lock()
	if off, ok := e.offsets[key]; ok {
		e.mu.Unlock()
		return off, nil
	}
	e.mu.Unlock()

	off, err := OffsetFromInstant(b, t)
	if err != nil {
		return 0, err
	}

	e.mu.Lock()
	if len(e.offsets) >= maxCacheEntries {
		e.offsets = make(map[offsetKey]Offset)
	}
	e.offsets[key] = off
	e.mu.Unlock()
	return off, nil
}

// OffsetFromPercent converts a percentage to a column offset. Cheap enough
// that no memo is kept.
func (e *Engine) OffsetFromPercent(b *Bar, percent float64) Offset {
	return OffsetFromPercent(b, percent)
}

// Render is a memoized Render using the engine's styles and glyphs.
func (e *Engine) Render(b *Bar, now Offset, label string) (string, error) {
	key := renderKey{bar: b, now: now, label: label}

	e.mu.Lock()
	if s, ok := e.renders[key]; ok {
		e.mu.Unlock()
		return s, nil
	}
	e.mu.Unlock()

	s, err := Render(b, now, label, e.styles, e.glyphs)
	if err != nil {
		return "", err
	}

	e.mu.Lock()
	if len(e.renders) >= maxCacheEntries {
		e.renders = make(map[renderKey]string)
	}
	e.renders[key] = s
	e.mu.Unlock()
	return s, nil
}

// Scale is a memoized Scale.
func (e *Engine) Scale(b *Bar) (string, bool) {
	e.mu.Lock()
	if r, ok := e.scales[b]; ok {
		e.mu.Unlock()
		return r.line, r.ok
	}
	e.mu.Unlock()

	line, ok := Scale(b)

	e.mu.Lock()
	if len(e.scales) >= maxCacheEntries {
		e.scales = make(map[*Bar]scaleResult)
	}
	e.scales[b] = scaleResult{line: line, ok: ok}
	e.mu.Unlock()
	return line, ok
}
