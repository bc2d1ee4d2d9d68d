// Package extract holds the file-to-text extractors behind the ingestion
// adapter and the MIME-type registry that dispatches to them.
package extract

import (
	"strings"
	"sync"

	"termbank/contexts/glossary/ingestion-service/ports"
)

// Registry manages extractors keyed by their primary MIME type. It is the
// extension point for media types handled out of process (image OCR, for
// example): register an extractor and uploads of that type start flowing.
type Registry struct {
	mu         sync.RWMutex
	extractors map[string]ports.Extractor
}

// NewRegistry returns a registry with the default extractors registered.
func NewRegistry() *Registry {
	r := &Registry{extractors: make(map[string]ports.Extractor)}
	r.Register(NewTextExtractor())
	r.Register(NewPDFExtractor())
	return r
}

func (r *Registry) Register(e ports.Extractor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.extractors[e.MIMEType()] = e
}

// ForMIMEType returns the extractor handling the given media type. Direct
// primary-type matches win; otherwise each extractor is asked whether it
// can handle the type.
func (r *Registry) ForMIMEType(mimeType string) (ports.Extractor, bool) {
	mimeType = normalizeMIME(mimeType)

	r.mu.RLock()
	defer r.mu.RUnlock()

	if e, ok := r.extractors[mimeType]; ok {
		return e, true
	}
	for _, e := range r.extractors {
		if e.CanExtract(mimeType) {
			return e, true
		}
	}
	return nil, false
}

// normalizeMIME strips parameters ("text/plain; charset=utf-8") and
// lowercases the media type.
func normalizeMIME(mimeType string) string {
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = mimeType[:i]
	}
	return strings.ToLower(strings.TrimSpace(mimeType))
}
