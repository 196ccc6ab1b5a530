// Package save persists player progress between runs.
package save

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	AppName = "phox"

	progressObject   = "progress"
	progressProperty = "state"
)

// Progress is what survives a restart.
type Progress struct {
	LastLevel string         `yaml:"last_level"`
	Plays     map[string]int `yaml:"plays,omitempty"`
}

// Store reads and writes Progress through gdata. A nil *Store is valid and
// stores nothing, which is what the game falls back to when the data
// directory is unavailable.
type Store struct {
	manager *gdata.Manager
}

func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("save: open: %w", err)
	}
	return &Store{manager: m}, nil
}

func (s *Store) Load() (Progress, error) {
	if s == nil || s.manager == nil {
		return Progress{}, nil
	}
	if !s.manager.ObjectPropExists(progressObject, progressProperty) {
		return Progress{}, nil
	}
	data, err := s.manager.LoadObjectProp(progressObject, progressProperty)
	if err != nil {
		return Progress{}, fmt.Errorf("save: load: %w", err)
	}
	var p Progress
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Progress{}, fmt.Errorf("save: decode: %w", err)
	}
	return p, nil
}

func (s *Store) Save(p Progress) error {
	if s == nil || s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("save: encode: %w", err)
	}
	if err := s.manager.SaveObjectProp(progressObject, progressProperty, data); err != nil {
		return fmt.Errorf("save: write: %w", err)
	}
	return nil
}

// RecordLevel marks name as the last level entered and counts the visit.
func (s *Store) RecordLevel(name string) error {
	if s == nil || name == "" {
		return nil
	}
	p, err := s.Load()
	if err != nil {
		return err
	}
	p.LastLevel = name
	if p.Plays == nil {
		p.Plays = make(map[string]int)
	}
	p.Plays[name]++
	return s.Save(p)
}
