// Package imageres resolves image paths and emoji shortcodes to PDF
// XObject resource names and natural pixel sizes. Resolution is a
// synchronous lookup with a cache behind it; callers that care about
// first-use latency can pre-warm the cache with Warm.
package imageres

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	// Register the decoders DecodeConfig needs to size common formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/lvillar/vecpdf/content"
)

// Resolver caches resolved images. Resource names are unique within one
// resolver ("Im1", "Im2", ...), so one resolver should back one document.
type Resolver struct {
	emojiDir string

	mu    sync.Mutex
	cache map[string]content.ImageRef
	next  int
}

// NewResolver returns a resolver that looks emoji shortcodes up as PNG
// files inside emojiDir. An empty emojiDir disables shortcode resolution.
func NewResolver(emojiDir string) *Resolver {
	return &Resolver{
		emojiDir: emojiDir,
		cache:    make(map[string]content.ImageRef),
	}
}

// Resolve maps an image path, or an emoji shortcode like ":rocket:", to a
// resource name and the image's natural dimensions. Results are cached by
// the original key, so repeated references share one resource name.
func (r *Resolver) Resolve(srcOrCode string) (content.ImageRef, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ref, ok := r.cache[srcOrCode]; ok {
		return ref, nil
	}

	path := srcOrCode
	if code, ok := emojiCode(srcOrCode); ok {
		if r.emojiDir == "" {
			return content.ImageRef{}, fmt.Errorf("imageres: no emoji directory configured for %q", srcOrCode)
		}
		path = filepath.Join(r.emojiDir, code+".png")
	}

	f, err := os.Open(path)
	if err != nil {
		return content.ImageRef{}, fmt.Errorf("imageres: %q: %w", srcOrCode, err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return content.ImageRef{}, fmt.Errorf("imageres: decoding %q: %w", srcOrCode, err)
	}

	r.next++
	ref := content.ImageRef{
		Name:   "Im" + strconv.Itoa(r.next),
		Width:  float64(cfg.Width),
		Height: float64(cfg.Height),
	}
	r.cache[srcOrCode] = ref
	return ref, nil
}

// Warm resolves each key ahead of time so later lookups hit the cache.
// It stops at the first failure.
func (r *Resolver) Warm(keys ...string) error {
	for _, k := range keys {
		if _, err := r.Resolve(k); err != nil {
			return err
		}
	}
	return nil
}

func emojiCode(s string) (string, bool) {
	if len(s) > 2 && strings.HasPrefix(s, ":") && strings.HasSuffix(s, ":") {
		return s[1 : len(s)-1], true
	}
	return "", false
}
