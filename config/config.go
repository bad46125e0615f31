package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rwyatt/fxjournal/risk"
)

// Config is the journal's file configuration: the account snapshot the risk
// calculator reads, where the stores live, and the standing risk policy.
type Config struct {
	Account AccountConfig `json:"account" yaml:"account"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
	Risk    RiskConfig    `json:"risk" yaml:"risk"`
}

// AccountConfig mirrors the profile screen: the engine treats it as a
// read-only snapshot.
type AccountConfig struct {
	Balance     float64 `json:"balance" yaml:"balance"`
	Currency    string  `json:"currency" yaml:"currency"`
	Leverage    string  `json:"leverage,omitempty" yaml:"leverage,omitempty"`
	MarginLevel float64 `json:"margin_level,omitempty" yaml:"margin_level,omitempty"`
	Equity      float64 `json:"equity,omitempty" yaml:"equity,omitempty"`
	ProfitLoss  float64 `json:"profit_loss,omitempty" yaml:"profit_loss,omitempty"`
}

// JournalConfig says where trades and strategies persist.
type JournalConfig struct {
	DBPath         string `json:"db_path" yaml:"db_path"`
	StrategyDBPath string `json:"strategy_db_path,omitempty" yaml:"strategy_db_path,omitempty"`
}

// RiskConfig holds the policy limits, in percent.
type RiskConfig struct {
	DefaultRiskPct float64 `json:"default_risk_pct" yaml:"default_risk_pct"`
	MaxRiskPct     float64 `json:"max_risk_pct" yaml:"max_risk_pct"`
	MinRR          float64 `json:"min_rr" yaml:"min_rr"`
	MaxLotSize     float64 `json:"max_lot_size,omitempty" yaml:"max_lot_size,omitempty"`
}

// LoadFromFile loads configuration from a file, YAML first with a JSON
// fallback.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToFile writes the configuration, YAML or JSON by extension.
func (c *Config) SaveToFile(path string) error {
	var (
		data []byte
		err  error
	)
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks the configuration before anything computes from it.
func (c *Config) Validate() error {
	if c.Account.Currency == "" {
		return fmt.Errorf("account.currency is required")
	}
	if c.Account.Balance <= 0 {
		return fmt.Errorf("account.balance must be positive")
	}
	if c.Journal.DBPath == "" {
		return fmt.Errorf("journal.db_path is required")
	}
	if c.Risk.DefaultRiskPct <= 0 {
		return fmt.Errorf("risk.default_risk_pct must be positive")
	}
	if c.Risk.MaxRiskPct < c.Risk.DefaultRiskPct {
		return fmt.Errorf("risk.max_risk_pct must be at least default_risk_pct")
	}
	if c.Risk.MinRR < 0 {
		return fmt.Errorf("risk.min_rr must not be negative")
	}
	return nil
}

// Snapshot converts the account section to the calculator's input form.
func (c *Config) Snapshot() risk.AccountSnapshot {
	return risk.AccountSnapshot{
		Balance:     c.Account.Balance,
		Currency:    c.Account.Currency,
		Leverage:    c.Account.Leverage,
		MarginLevel: c.Account.MarginLevel,
		Equity:      c.Account.Equity,
		ProfitLoss:  c.Account.ProfitLoss,
	}
}

// Policy converts the risk section to a risk.Policy.
func (c *Config) Policy() risk.Policy {
	return risk.Policy{
		DefaultRiskPct: c.Risk.DefaultRiskPct,
		MaxRiskPct:     c.Risk.MaxRiskPct,
		MinRR:          c.Risk.MinRR,
		MaxLotSize:     c.Risk.MaxLotSize,
	}
}

// StrategyDBPath returns the strategy database path, defaulting to the trade
// database when not set separately.
func (c *Config) StrategyDBPath() string {
	if c.Journal.StrategyDBPath != "" {
		return c.Journal.StrategyDBPath
	}
	return c.Journal.DBPath
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			Balance:  10000,
			Currency: "USD",
			Leverage: "1:100",
		},
		Journal: JournalConfig{
			DBPath: "./fxjournal.sqlite",
		},
		Risk: RiskConfig{
			DefaultRiskPct: 1.0,
			MaxRiskPct:     2.0,
			MinRR:          1.5,
		},
	}
}
