package observability

import (
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks implements every hook interface by writing debug-level entries to
// a logger.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that log to l. A nil logger uses log.Default().
func NewLogHooks(l *log.Logger) *LogHooks {
	if l == nil {
		l = log.Default()
	}
	return &LogHooks{logger: l}
}

func (h *LogHooks) OnComputeStart(mode string, schools int) {
	h.logger.Debug("placement start", "mode", mode, "schools", schools)
}

func (h *LogHooks) OnComputeComplete(mode string, placed, requested int, d time.Duration) {
	if placed < requested {
		h.logger.Debug("placement under-supplied", "mode", mode, "placed", placed, "requested", requested)
	}
	h.logger.Debug("placement done", "mode", mode, "placed", placed, "took", d.Round(time.Microsecond))
}

func (h *LogHooks) OnCacheHit(keyType string)  { h.logger.Debug("cache hit", "key", keyType) }
func (h *LogHooks) OnCacheMiss(keyType string) { h.logger.Debug("cache miss", "key", keyType) }
func (h *LogHooks) OnCacheSet(keyType string, size int) {
	h.logger.Debug("cache set", "key", keyType, "size", size)
}

func (h *LogHooks) OnRenderStart(format string) { h.logger.Debug("render start", "format", format) }
func (h *LogHooks) OnRenderComplete(format string, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("render failed", "format", format, "err", err)
		return
	}
	h.logger.Debug("render done", "format", format, "took", d.Round(time.Millisecond))
}

var (
	_ LayoutHooks = (*LogHooks)(nil)
	_ CacheHooks  = (*LogHooks)(nil)
	_ RenderHooks = (*LogHooks)(nil)
)
