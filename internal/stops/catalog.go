// Package stops reads the stop list of a GTFS static feed so fare tables
// can be checked against the stops an operator actually serves.
package stops

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jamespfennell/gtfs"
	"tripgen.codingchallenge.net/internal/fares"
)

// Stop is the subset of a GTFS stop the API exposes.
type Stop struct {
	ID        string
	Name      string
	Latitude  *float64
	Longitude *float64
}

// Catalog is an immutable set of stops keyed by id.
type Catalog struct {
	stops []Stop
	byID  map[string]int
}

// NewCatalog indexes stops. Later duplicates of an id are ignored.
func NewCatalog(stops []Stop) *Catalog {
	catalog := &Catalog{
		stops: make([]Stop, 0, len(stops)),
		byID:  make(map[string]int, len(stops)),
	}
	for _, stop := range stops {
		if _, seen := catalog.byID[stop.ID]; seen || stop.ID == "" {
			continue
		}
		catalog.byID[stop.ID] = len(catalog.stops)
		catalog.stops = append(catalog.stops, stop)
	}
	return catalog
}

// LoadCatalog reads a GTFS static zip from path.
func LoadCatalog(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading GTFS file: %w", err)
	}
	catalog, err := ParseCatalog(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return catalog, nil
}

// ParseCatalog parses GTFS static zip bytes.
func ParseCatalog(b []byte) (*Catalog, error) {
	staticData, err := gtfs.ParseStatic(b, gtfs.ParseStaticOptions{})
	if err != nil {
		return nil, fmt.Errorf("error parsing GTFS data: %w", err)
	}

	stops := make([]Stop, 0, len(staticData.Stops))
	for _, s := range staticData.Stops {
		stops = append(stops, Stop{
			ID:        s.Id,
			Name:      s.Name,
			Latitude:  s.Latitude,
			Longitude: s.Longitude,
		})
	}
	return NewCatalog(stops), nil
}

// Lookup returns the stop with id.
func (c *Catalog) Lookup(id string) (Stop, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Stop{}, false
	}
	return c.stops[i], true
}

// Stops returns a copy of every stop in feed order.
func (c *Catalog) Stops() []Stop {
	return append([]Stop(nil), c.stops...)
}

func (c *Catalog) Len() int {
	return len(c.stops)
}

// UnknownStopsError lists fare table stops missing from a catalog.
type UnknownStopsError struct {
	StopIDs []string
}

func (e *UnknownStopsError) Error() string {
	return "fare table references stops missing from the GTFS feed: " + strings.Join(e.StopIDs, ", ")
}

// CheckFares fails with UnknownStopsError when table prices a stop the catalog lacks.
func (c *Catalog) CheckFares(table *fares.Table) error {
	missing := make(map[string]struct{})
	for _, entry := range table.Entries() {
		for _, id := range []string{entry.StopA, entry.StopB} {
			if _, ok := c.byID[id]; !ok {
				missing[id] = struct{}{}
			}
		}
	}
	if len(missing) == 0 {
		return nil
	}

	ids := make([]string, 0, len(missing))
	for id := range missing {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return &UnknownStopsError{StopIDs: ids}
}
