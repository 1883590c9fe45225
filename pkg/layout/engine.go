package layout

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/spellgrid/pkg/cache"
	"github.com/matzehuels/spellgrid/pkg/observability"
)

// keyType labels placement entries in cache keys and hooks.
const keyType = "placements"

// Engine computes placements through a registry of growth modes and keeps
// the last result. An Engine is not safe for concurrent use; give each
// goroutine its own or serialize calls.
type Engine struct {
	modes       Registry
	store       cache.Store[[]Placement]
	logger      *log.Logger
	layoutHooks observability.LayoutHooks
	cacheHooks  observability.CacheHooks
}

// Option configures an Engine.
type Option func(*Engine)

// WithStore replaces the default single-entry store, e.g. with
// cache.NewNull to disable caching.
func WithStore(s cache.Store[[]Placement]) Option {
	return func(e *Engine) { e.store = s }
}

// WithLogger sets the logger used for warnings and debug output.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithHooks overrides the hooks taken from the observability registry.
func WithHooks(l observability.LayoutHooks, c observability.CacheHooks) Option {
	return func(e *Engine) {
		if l != nil {
			e.layoutHooks = l
		}
		if c != nil {
			e.cacheHooks = c
		}
	}
}

// NewEngine creates an engine over modes.
func NewEngine(modes Registry, opts ...Option) *Engine {
	e := &Engine{
		modes:       modes,
		store:       cache.NewSlot[[]Placement](),
		logger:      log.Default(),
		layoutHooks: observability.Layout(),
		cacheHooks:  observability.Cache(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ComputePlacements returns the placements for data. When the fingerprint
// matches the stored entry the stored slice is returned as is; callers must
// treat it as read-only.
func (e *Engine) ComputePlacements(data *BaseData) []Placement {
	if data.Empty() {
		return nil
	}

	key := cache.Key(keyType, Fingerprint(data))
	if v, ok := e.store.Get(key); ok {
		e.cacheHooks.OnCacheHit(keyType)
		return v
	}
	e.cacheHooks.OnCacheMiss(keyType)

	mode := effectiveMode(data.Mode)
	placements := []Placement{}
	if g, ok := e.modes.Lookup(mode); ok {
		start := time.Now()
		e.layoutHooks.OnComputeStart(string(mode), len(data.Schools))
		placements = g.Place(data)
		e.layoutHooks.OnComputeComplete(string(mode), len(placements), data.TotalSpells(), time.Since(start))
		e.logger.Debug("computed placements", "mode", mode, "placed", len(placements), "requested", data.TotalSpells())
	} else {
		e.logger.Warn("no growth mode registered", "mode", mode)
	}

	e.store.Set(key, placements)
	e.cacheHooks.OnCacheSet(keyType, len(placements))
	return placements
}

// Invalidate drops the cached result so the next call recomputes.
func (e *Engine) Invalidate() {
	e.store.Clear()
}
