package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/talent-pool/talent-pool/internal/candidate"
)

const (
	CandidatesKey = "talent-pool-candidates-v1"
	SettingsKey   = "talent-pool-settings-v1"

	ThemeDark  = "dark"
	ThemeLight = "light"
)

// LoadCandidates restores the roster snapshot. A missing, unreadable or
// malformed snapshot is logged and yields an empty roster.
func LoadCandidates(ctx context.Context, store Store, logger *zap.Logger) []*candidate.Candidate {
	if logger == nil {
		logger = zap.NewNop()
	}

	raw, ok, err := store.Get(ctx, CandidatesKey)
	if err != nil {
		logger.Error("restoring candidates", zap.Error(err))
		return []*candidate.Candidate{}
	}
	if !ok || raw == "" {
		return []*candidate.Candidate{}
	}

	var candidates []*candidate.Candidate
	if err := json.Unmarshal([]byte(raw), &candidates); err != nil {
		logger.Error("restoring candidates", zap.String("reason", "malformed snapshot"), zap.Error(err))
		return []*candidate.Candidate{}
	}
	if candidates == nil {
		candidates = []*candidate.Candidate{}
	}

	logger.Debug("candidates restored", zap.Int("count", len(candidates)))
	return candidates
}

// SaveCandidates writes the whole roster snapshot.
func SaveCandidates(ctx context.Context, store Store, candidates []*candidate.Candidate) error {
	if candidates == nil {
		candidates = []*candidate.Candidate{}
	}
	data, err := json.Marshal(candidates)
	if err != nil {
		return fmt.Errorf("encoding candidates: %w", err)
	}
	return store.Set(ctx, CandidatesKey, string(data))
}

// LoadTheme returns the stored theme, "light" when unset or unreadable.
func LoadTheme(ctx context.Context, store Store, logger *zap.Logger) string {
	if logger == nil {
		logger = zap.NewNop()
	}

	settings, err := loadSettings(ctx, store)
	if err != nil {
		logger.Warn("restoring settings", zap.Error(err))
		return ThemeLight
	}
	if theme, _ := settings["theme"].(string); theme == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// SaveTheme stores the theme, keeping any other settings already stored.
func SaveTheme(ctx context.Context, store Store, theme string) error {
	if theme != ThemeDark && theme != ThemeLight {
		return fmt.Errorf("invalid theme %q (valid: %s, %s)", theme, ThemeDark, ThemeLight)
	}

	settings, err := loadSettings(ctx, store)
	if err != nil {
		settings = map[string]any{}
	}
	settings["theme"] = theme

	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	return store.Set(ctx, SettingsKey, string(data))
}

func loadSettings(ctx context.Context, store Store) (map[string]any, error) {
	raw, ok, err := store.Get(ctx, SettingsKey)
	if err != nil {
		return nil, err
	}
	settings := map[string]any{}
	if !ok || raw == "" {
		return settings, nil
	}
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		return nil, fmt.Errorf("decoding settings: %w", err)
	}
	if settings == nil {
		settings = map[string]any{}
	}
	return settings, nil
}
