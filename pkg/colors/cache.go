// Package colors keeps the colour of each person stable across renders.
package colors

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"go.uber.org/zap"
)

// Palette is the set of segment colours handed out to people.
var Palette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// Fallback colours a segment with no person.
const Fallback = "#c7c7c7"

type PersonState struct {
	Color    string    `json:"color"`
	LastUsed time.Time `json:"last_used"`
}

// Cache maps people to palette colours. When every colour is taken the least recently
// used person gives theirs up.
type Cache struct {
	Path    string
	Persons map[string]*PersonState `json:"persons"`

	logger *zap.Logger
	now    func() time.Time
	dirty  bool
}

// Open loads the cache at path, starting empty when the file does not exist.
func Open(path string, logger *zap.Logger) (*Cache, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Cache{
		Path:    path,
		Persons: make(map[string]*PersonState),
		logger:  logger,
		now:     time.Now,
	}
	if path == "" {
		return c, nil
	}
	if err := c.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	return c, nil
}

func (c *Cache) Load() error {
	f, err := os.Open(c.Path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(&c.Persons); err != nil {
		return fmt.Errorf("failed to decode color cache %s: %w", c.Path, err)
	}
	if c.Persons == nil {
		c.Persons = make(map[string]*PersonState)
	}
	return nil
}

// Save writes the cache if anything changed. An in-memory cache (no Path) is never written.
func (c *Cache) Save() error {
	if !c.dirty || c.Path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(c.Path), 0700); err != nil {
		c.logger.Error("Error creating color cache directory", zap.Error(err))
		return err
	}

	f, err := os.Create(c.Path)
	if err != nil {
		c.logger.Error("Error creating color cache file", zap.Error(err))
		return err
	}
	defer f.Close()
	err = json.NewEncoder(f).Encode(c.Persons)
	if err == nil {
		c.dirty = false
	}
	return err
}

// Color returns the hex colour of person, assigning one on first use.
func (c *Cache) Color(person string) string {
	if person == "" {
		return Fallback
	}
	if state, ok := c.Persons[person]; ok {
		state.LastUsed = c.now()
		c.dirty = true
		return state.Color
	}
	return c.assign(person)
}

// Colors assigns colours to persons in name order so a fresh cache is deterministic.
func (c *Cache) Colors(persons []string) map[string]string {
	sorted := append([]string(nil), persons...)
	sort.Strings(sorted)

	out := make(map[string]string, len(sorted))
	for _, p := range sorted {
		out[p] = c.Color(p)
	}
	return out
}

func (c *Cache) assign(person string) string {
	used := make(map[string]bool)
	for _, s := range c.Persons {
		used[s.Color] = true
	}

	color := ""
	for _, hex := range Palette {
		if !used[hex] {
			color = hex
			break
		}
	}

	if color == "" {
		var oldest string
		var oldestTime time.Time
		for p, s := range c.Persons {
			if oldest == "" || s.LastUsed.Before(oldestTime) || (s.LastUsed.Equal(oldestTime) && p < oldest) {
				oldest, oldestTime = p, s.LastUsed
			}
		}
		color = c.Persons[oldest].Color
		delete(c.Persons, oldest)
		c.logger.Debug("recycled color", zap.String("from", oldest), zap.String("to", person), zap.String("color", color))
	}

	c.Persons[person] = &PersonState{Color: color, LastUsed: c.now()}
	c.dirty = true
	return color
}
