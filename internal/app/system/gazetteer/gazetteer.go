// Package gazetteer holds the fixed, ordered list of provinces used to
// place volunteers on the map.
//
// The default table (Ulaanbaatar plus the 21 aimags, each at its center
// town) is embedded in the binary. Deployments can point the
// gazetteer_path setting at a JSON file of the same shape instead:
//
//	[{"name": "Улаанбаатар", "lat": 47.9184, "lng": 106.9177}, ...]
package gazetteer

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

//go:embed provinces.json
var defaultData []byte

// Entry is one province: its canonical name and the point where its
// marker is drawn.
type Entry struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// Gazetteer is an immutable, ordered set of entries with unique names.
type Gazetteer struct {
	entries []Entry
	index   map[string]int
}

var (
	ErrEmpty         = errors.New("gazetteer has no entries")
	ErrBlankName     = errors.New("gazetteer entry has a blank name")
	ErrDuplicateName = errors.New("gazetteer entry name is duplicated")
	ErrBadCoordinate = errors.New("gazetteer entry coordinate out of range")
)

// New validates entries and builds a Gazetteer. Names are trimmed; order
// is preserved.
func New(entries []Entry) (*Gazetteer, error) {
	if len(entries) == 0 {
		return nil, ErrEmpty
	}
	g := &Gazetteer{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		e.Name = strings.TrimSpace(e.Name)
		if e.Name == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrBlankName)
		}
		if e.Lat < -90 || e.Lat > 90 || e.Lng < -180 || e.Lng > 180 {
			return nil, fmt.Errorf("entry %d (%s): %w", i, e.Name, ErrBadCoordinate)
		}
		if _, dup := g.index[e.Name]; dup {
			return nil, fmt.Errorf("entry %d (%s): %w", i, e.Name, ErrDuplicateName)
		}
		g.index[e.Name] = len(g.entries)
		g.entries = append(g.entries, e)
	}
	return g, nil
}

// Load decodes a JSON array of entries from r.
func Load(r io.Reader) (*Gazetteer, error) {
	var entries []Entry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode gazetteer: %w", err)
	}
	return New(entries)
}

// LoadFile reads a gazetteer from a JSON file on disk.
func LoadFile(path string) (*Gazetteer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

var (
	defaultOnce sync.Once
	defaultGaz  *Gazetteer
)

// Default returns the embedded province table.
func Default() *Gazetteer {
	defaultOnce.Do(func() {
		g, err := Load(bytes.NewReader(defaultData))
		if err != nil {
			panic("gazetteer: embedded provinces.json is invalid: " + err.Error())
		}
		defaultGaz = g
	})
	return defaultGaz
}

// Entries returns a copy of the entries in order.
func (g *Gazetteer) Entries() []Entry {
	out := make([]Entry, len(g.entries))
	copy(out, g.entries)
	return out
}

// Len returns the number of entries.
func (g *Gazetteer) Len() int { return len(g.entries) }

// Lookup finds the entry whose name equals the trimmed argument exactly.
func (g *Gazetteer) Lookup(name string) (Entry, bool) {
	i, ok := g.index[strings.TrimSpace(name)]
	if !ok {
		return Entry{}, false
	}
	return g.entries[i], true
}

// IndexOf returns the position of the named entry, or -1.
func (g *Gazetteer) IndexOf(name string) int {
	if i, ok := g.index[strings.TrimSpace(name)]; ok {
		return i
	}
	return -1
}
