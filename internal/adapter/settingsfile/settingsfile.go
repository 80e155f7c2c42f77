// Package settingsfile persists domain.Settings as a small JSON or TOML
// document. The format follows the file extension; anything other than
// .toml is JSON.
package settingsfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"weighttrend/internal/domain"
	"weighttrend/internal/fsutil"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
)

// Format is the on-disk encoding of the settings file.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFor picks the encoding from the extension of path.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatJSON
}

// document mirrors the file layout. Pointer fields tell an absent key apart
// from a zero value.
type document struct {
	HeightCm          *float64 `json:"height_cm,omitempty" toml:"height_cm,omitempty"`
	GoalWeight        *float64 `json:"goal_weight,omitempty" toml:"goal_weight,omitempty"`
	MovingAverageDays *int     `json:"show_moving_avg_days,omitempty" toml:"show_moving_avg_days,omitempty"`
}

func (d document) settings() domain.Settings {
	s := domain.DefaultSettings()
	if d.HeightCm != nil {
		s.HeightCm = *d.HeightCm
	}
	if d.GoalWeight != nil {
		s.GoalWeight = *d.GoalWeight
	}
	if d.MovingAverageDays != nil {
		s.SmoothingWindowDays = *d.MovingAverageDays
	}
	return s
}

func documentOf(s domain.Settings) document {
	return document{
		HeightCm:          &s.HeightCm,
		GoalWeight:        &s.GoalWeight,
		MovingAverageDays: &s.SmoothingWindowDays,
	}
}

// Repo is a SettingsRepository backed by a single file.
type Repo struct {
	path   string
	format Format
}

// New returns a Repo for path.
func New(path string) *Repo {
	return &Repo{path: path, format: FormatFor(path)}
}

var _ domain.SettingsRepository = (*Repo)(nil)

// LoadSettings reads the file. A missing file yields the defaults and keys
// absent from the file keep their default values.
func (r *Repo) LoadSettings(ctx context.Context) (domain.Settings, error) {
	raw, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		log.Debugf("settings file [%s] not found, using defaults", r.path)
		return domain.DefaultSettings(), nil
	}
	if err != nil {
		return domain.Settings{}, err
	}

	var doc document
	switch r.format {
	case FormatTOML:
		if _, err := toml.Decode(string(raw), &doc); err != nil {
			return domain.Settings{}, fmt.Errorf("parse settings %s: %w", r.path, err)
		}
	default:
		if len(bytes.TrimSpace(raw)) == 0 {
			return domain.DefaultSettings(), nil
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return domain.Settings{}, fmt.Errorf("parse settings %s: %w", r.path, err)
		}
	}
	return doc.settings(), nil
}

// SaveSettings writes every key, replacing the file atomically.
func (r *Repo) SaveSettings(ctx context.Context, s domain.Settings) error {
	doc := documentOf(s)
	return fsutil.WriteFileAtomic(r.path, 0o644, func(f *os.File) error {
		if r.format == FormatTOML {
			return toml.NewEncoder(f).Encode(doc)
		}
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	})
}
