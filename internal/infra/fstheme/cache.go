package fstheme

import (
	"sync"

	"github.com/mkazemie/github-profile-generator/internal/domain"
	"github.com/mkazemie/github-profile-generator/internal/ports"
)

// Cache memoizes successful theme loads from an underlying source.
// Not-found results are not cached so newly added theme files show up.
type Cache struct {
	src ports.ThemeSource

	mu     sync.RWMutex
	themes map[string]domain.Theme
}

func NewCache(src ports.ThemeSource) *Cache {
	return &Cache{src: src, themes: map[string]domain.Theme{}}
}

var _ ports.ThemeSource = (*Cache)(nil)

func (c *Cache) LoadTheme(name string) (domain.Theme, error) {
	c.mu.RLock()
	t, ok := c.themes[name]
	c.mu.RUnlock()
	if ok {
		return t, nil
	}

	t, err := c.src.LoadTheme(name)
	if err != nil {
		return domain.Theme{}, err
	}

	c.mu.Lock()
	c.themes[name] = t
	c.mu.Unlock()
	return t, nil
}

func (c *Cache) ListThemes() ([]domain.ThemeRef, error) {
	return c.src.ListThemes()
}

// Reset drops every cached theme.
func (c *Cache) Reset() {
	c.mu.Lock()
	c.themes = map[string]domain.Theme{}
	c.mu.Unlock()
}
