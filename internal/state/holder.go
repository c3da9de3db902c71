// Package state owns the live site state. The holder is the single
// writer: reads hand out deep clones and the only mutation is a
// wholesale atomic replace performed by the session save.
package state

import (
	"sync"

	"github.com/joelraetz/folio"
)

type Holder struct {
	mu    sync.RWMutex
	data  folio.SiteData
	theme folio.ThemeConfig
}

// NewHolder seeds the live state. The inputs are cloned so the caller
// cannot alias into the holder afterwards.
func NewHolder(data folio.SiteData, theme folio.ThemeConfig) *Holder {
	return &Holder{
		data:  data.Clone(),
		theme: theme,
	}
}

// Snapshot returns a deep clone of the live state.
func (h *Holder) Snapshot() (folio.SiteData, folio.ThemeConfig) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.data.Clone(), h.theme
}

// Replace swaps the live state wholesale. There are no partial
// commits; the staged copy wins entirely or not at all.
func (h *Holder) Replace(data folio.SiteData, theme folio.ThemeConfig) {
	cloned := data.Clone()

	h.mu.Lock()
	defer h.mu.Unlock()
	h.data = cloned
	h.theme = theme
}
