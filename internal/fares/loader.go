package fares

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type fileEntry struct {
	From   string  `yaml:"from"`
	To     string  `yaml:"to"`
	Amount float64 `yaml:"amount"`
}

type fileDocument struct {
	Fares []fileEntry `yaml:"fares"`
}

// LoadTable reads a YAML fare table file:
//
//	fares:
//	  - from: Stop1
//	    to: Stop2
//	    amount: 3.25
func LoadTable(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening fare table %s: %w", path, err)
	}
	defer file.Close() // nolint:errcheck

	table, err := ReadTable(file)
	if err != nil {
		return nil, fmt.Errorf("loading fare table %s: %w", path, err)
	}
	return table, nil
}

// ReadTable decodes a YAML fare table from r.
func ReadTable(r io.Reader) (*Table, error) {
	var doc fileDocument
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding fare table: %w", err)
	}

	entries := make([]Entry, 0, len(doc.Fares))
	for _, fare := range doc.Fares {
		entries = append(entries, Entry{StopA: fare.From, StopB: fare.To, Amount: fare.Amount})
	}
	return NewTable(entries)
}

// LoadTableOrDefault loads path, or returns DefaultTable when path is empty.
func LoadTableOrDefault(path string) (*Table, error) {
	if path == "" {
		return DefaultTable(), nil
	}
	return LoadTable(path)
}
