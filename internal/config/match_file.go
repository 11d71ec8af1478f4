package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/freeeve/realmwright/pkg/realm"
)

// ErrNoPlayers is returned when a match file seats nobody.
var ErrNoPlayers = errors.New("match has no players")

// MatchFile is a YAML match definition.
type MatchFile struct {
	Name     string         `yaml:"name"`
	Turns    int            `yaml:"turns"`
	Seed     int64          `yaml:"seed"`
	Board    BoardConfig    `yaml:"board"`
	Heathens int            `yaml:"heathens"`
	Players  []PlayerConfig `yaml:"players"`
}

// BoardConfig sizes the generated board. Zero values keep the generator defaults.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig is one seat in a match file.
type PlayerConfig struct {
	Name      string `yaml:"name"`
	Colour    string `yaml:"colour"`
	Playstyle string `yaml:"playstyle"`
	Human     bool   `yaml:"human"`
	// Engage is an optional expression deciding whether a unit attacks a
	// target it can reach, e.g. "Attacker.Power > Defender.Power".
	Engage string `yaml:"engage"`
}

// LoadMatchFile reads and validates a match definition. A missing name
// defaults to the file's base name and a missing turn limit to DefaultTurns.
func LoadMatchFile(path string) (*MatchFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read match file: %w", err)
	}
	var mf MatchFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("parse match file %s: %w", path, err)
	}
	if mf.Name == "" {
		mf.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if mf.Turns == 0 {
		mf.Turns = DefaultTurns
	}
	if err := mf.Validate(); err != nil {
		return nil, err
	}
	return &mf, nil
}

// Validate checks the roster and limits.
func (mf *MatchFile) Validate() error {
	if len(mf.Players) == 0 {
		return ErrNoPlayers
	}
	if mf.Turns < 0 {
		return fmt.Errorf("turns must not be negative, got %d", mf.Turns)
	}
	if mf.Heathens < 0 {
		return fmt.Errorf("heathens must not be negative, got %d", mf.Heathens)
	}
	if mf.Board.Width < 0 || mf.Board.Height < 0 {
		return fmt.Errorf("invalid board size %dx%d", mf.Board.Width, mf.Board.Height)
	}
	seen := make(map[string]bool, len(mf.Players))
	for i, p := range mf.Players {
		if p.Name == "" {
			return fmt.Errorf("player %d has no name", i)
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate player %q", p.Name)
		}
		seen[p.Name] = true
		if _, ok := realm.ParsePlaystyle(p.Playstyle); !ok {
			return fmt.Errorf("player %q: unknown playstyle %q", p.Name, p.Playstyle)
		}
	}
	return nil
}
