package workspace

import (
	"image"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/monster-maker/internal/sprite"
)

type decodeState int

const (
	decodePending decodeState = iota
	decodeReady
	decodeFailed
)

// cacheEntry is written once by its decoder; done is closed after state and
// img are set.
type cacheEntry struct {
	state decodeState
	img   image.Image
	done  chan struct{}
}

// ImageCache holds decoded part images keyed by content reference. Entries
// are only ever added. Decoding runs in the background; until it finishes,
// and forever if it fails, Get reports the image as not ready.
type ImageCache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	decode  func([]byte) (image.Image, error)
}

// NewImageCache creates an empty cache decoding with sprite.Decode.
func NewImageCache() *ImageCache {
	return &ImageCache{
		entries: make(map[string]*cacheEntry),
		decode:  sprite.Decode,
	}
}

// Get returns the decoded image for img. The first call for an unknown
// reference starts decoding and returns false.
func (c *ImageCache) Get(img *sprite.Image) (image.Image, bool) {
	if img == nil {
		return nil, false
	}

	e := c.start(img)
	c.mu.RLock()
	defer c.mu.RUnlock()
	if e.state == decodeReady {
		return e.img, true
	}
	return nil, false
}

// Pending reports whether img is still being decoded. Unknown and failed
// references are not pending.
func (c *ImageCache) Pending(img *sprite.Image) bool {
	if img == nil {
		return false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	e, found := c.entries[img.Ref]
	return found && e.state == decodePending
}

// Prefetch starts decoding img if it is not cached yet.
func (c *ImageCache) Prefetch(img *sprite.Image) {
	if img == nil {
		return
	}
	c.start(img)
}

// Await blocks until every given image has finished decoding, successfully
// or not. Unknown images are prefetched first.
func (c *ImageCache) Await(imgs ...*sprite.Image) {
	for _, img := range imgs {
		if img == nil {
			continue
		}
		<-c.start(img).done
	}
}

// start returns the entry for img, launching its decode if it is new.
func (c *ImageCache) start(img *sprite.Image) *cacheEntry {
	c.mu.Lock()
	if e, found := c.entries[img.Ref]; found {
		c.mu.Unlock()
		return e
	}
	e := &cacheEntry{state: decodePending, done: make(chan struct{})}
	c.entries[img.Ref] = e
	c.mu.Unlock()

	go c.run(img.Ref, img.Data, e)
	return e
}

func (c *ImageCache) run(ref string, data []byte, e *cacheEntry) {
	decoded, err := c.decode(data)

	c.mu.Lock()
	if err != nil {
		e.state = decodeFailed
	} else {
		e.state = decodeReady
		e.img = decoded
	}
	c.mu.Unlock()
	close(e.done)

	if err != nil {
		slog.Warn("part image failed to decode, it will not be painted",
			"ref", ref,
			"error", err.Error())
	}
}

// Len returns the number of references seen
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
