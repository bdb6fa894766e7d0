package internal

import "github.com/veandco/go-sdl2/sdl"

const defaultTextCacheSize = 16

type textEntry struct {
	texture *sdl.Texture
	w, h    int32
}

// TextTextureCache caches rendered text textures keyed by content so
// static labels are not re-rendered and re-uploaded every frame.
// Evicts least recently used entries beyond its capacity.
type TextTextureCache struct {
	entries map[string]textEntry
	order   []string
	maxSize int
}

func NewTextTextureCache() *TextTextureCache {
	return &TextTextureCache{
		entries: make(map[string]textEntry),
		order:   make([]string, 0, defaultTextCacheSize),
		maxSize: defaultTextCacheSize,
	}
}

// Lookup returns the cached texture and its dimensions for key.
func (c *TextTextureCache) Lookup(key string) (*sdl.Texture, int32, int32, bool) {
	entry, ok := c.entries[key]
	if !ok {
		return nil, 0, 0, false
	}
	c.touch(key)
	return entry.texture, entry.w, entry.h, true
}

// Store adds a rendered texture under key, evicting the oldest entry
// when at capacity. The cache takes ownership of the texture.
func (c *TextTextureCache) Store(key string, texture *sdl.Texture, w, h int32) {
	if old, ok := c.entries[key]; ok {
		old.texture.Destroy()
		c.entries[key] = textEntry{texture: texture, w: w, h: h}
		c.touch(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.entries[key] = textEntry{texture: texture, w: w, h: h}
	c.order = append(c.order, key)
}

func (c *TextTextureCache) touch(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *TextTextureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if entry, ok := c.entries[oldest]; ok {
		entry.texture.Destroy()
		delete(c.entries, oldest)
	}
}

// Destroy releases every cached texture.
func (c *TextTextureCache) Destroy() {
	for _, entry := range c.entries {
		entry.texture.Destroy()
	}
	c.entries = make(map[string]textEntry)
	c.order = c.order[:0]
}
