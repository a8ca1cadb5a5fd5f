package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"degola/internal/bot"
	"degola/internal/domain"
)

const (
	DefaultTokenIssuer           = "degola"
	DefaultTokenTTL              = time.Hour
	DefaultDecisionLogCollection = "truco_bot_decisions"
)

// TuningOverrides mirrors bot.Tuning with every field optional. Ranks use their wire symbol ("A", "K").
type TuningOverrides struct {
	StrongCutoff         string `json:"strong_cutoff,omitempty"`
	HighCutoff           string `json:"high_cutoff,omitempty"`
	LowCutoff            string `json:"low_cutoff,omitempty"`
	Baseline             string `json:"baseline,omitempty"`
	OpponentScoreCeiling *int   `json:"opponent_score_ceiling,omitempty"`
	MaoDeOnzeThreshold   *int   `json:"mao_de_onze_threshold,omitempty"`
}

type GameConfig struct {
	TokenIssuer     string `json:"token_issuer"`
	TokenTTLSeconds int    `json:"token_ttl_seconds"`
	// DecisionLogCollection is the storage collection bot decisions are written to.
	DecisionLogCollection string          `json:"decision_log_collection"`
	Tuning                TuningOverrides `json:"tuning"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		c, err := ParseGameConfig(data)
		if err != nil {
			loadErr = err
			return
		}
		cfg = c
	})
	return loadErr
}

// ParseGameConfig decodes and validates a configuration document.
func ParseGameConfig(data []byte) (*GameConfig, error) {
	var c GameConfig
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game config: %w", err)
	}
	if _, err := c.BotTuning(bot.DefaultTuning); err != nil {
		return nil, err
	}
	return &c, nil
}

// GetGameConfig returns the global game configuration, or nil before a successful load.
func GetGameConfig() *GameConfig {
	return cfg
}

// Issuer returns the seat token issuer, or the default if unset.
func (c *GameConfig) Issuer() string {
	if c == nil || c.TokenIssuer == "" {
		return DefaultTokenIssuer
	}
	return c.TokenIssuer
}

// TokenTTL returns how long issued seat tokens stay valid.
func (c *GameConfig) TokenTTL() time.Duration {
	if c == nil || c.TokenTTLSeconds <= 0 {
		return DefaultTokenTTL
	}
	return time.Duration(c.TokenTTLSeconds) * time.Second
}

// DecisionCollection returns the decision log collection, or the default if unset.
func (c *GameConfig) DecisionCollection() string {
	if c == nil || c.DecisionLogCollection == "" {
		return DefaultDecisionLogCollection
	}
	return c.DecisionLogCollection
}

// BotTuning applies the configured overrides on top of base.
func (c *GameConfig) BotTuning(base bot.Tuning) (bot.Tuning, error) {
	if c == nil {
		return base, nil
	}
	t := base
	o := c.Tuning

	ranks := []struct {
		name  string
		value string
		dst   *domain.Rank
	}{
		{"strong_cutoff", o.StrongCutoff, &t.StrongCutoff},
		{"high_cutoff", o.HighCutoff, &t.HighCutoff},
		{"low_cutoff", o.LowCutoff, &t.LowCutoff},
		{"baseline", o.Baseline, &t.Baseline},
	}
	for _, r := range ranks {
		if r.value == "" {
			continue
		}
		rank, err := domain.ParseRank(r.value)
		if err != nil {
			return base, fmt.Errorf("invalid tuning %s: %w", r.name, err)
		}
		*r.dst = rank
	}

	if o.OpponentScoreCeiling != nil {
		t.OpponentScoreCeiling = *o.OpponentScoreCeiling
	}
	if o.MaoDeOnzeThreshold != nil {
		t.MaoDeOnzeThreshold = *o.MaoDeOnzeThreshold
	}
	return t, nil
}
