package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Hunter holds all configuration for the hunting controller and its host.
type Hunter struct {
	// Logging
	LogLevel string `yaml:"log_level"`

	// Combat behavior thresholds (runtime-mutable, never persisted back)
	AssistRange       float32 `yaml:"assist_range"`
	AggroRadius       float32 `yaml:"aggro_radius"`
	CombatRange       float32 `yaml:"combat_range"`
	SpellRange        float32 `yaml:"spell_range"`
	FleeHPThreshold   float32 `yaml:"flee_hp_threshold"`
	HuntRadius        float32 `yaml:"hunt_radius"`
	RestHPThreshold   float32 `yaml:"rest_hp_threshold"`
	RestManaThreshold float32 `yaml:"rest_mana_threshold"`
	AutoLoot          bool    `yaml:"auto_loot"`
	AttackDelayMs     int     `yaml:"attack_delay_ms"`

	// Tick cadence of the host loop
	TickIntervalMs int `yaml:"tick_interval_ms"`

	// Status feed (websocket observer); empty address disables it
	ObserverAddr string `yaml:"observer_addr"`

	// Hunt journal; empty DSN disables persistence
	Journal JournalConfig `yaml:"journal"`
}

// JournalConfig holds PostgreSQL connection parameters for the hunt
// journal.
type JournalConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
	Enabled  bool   `yaml:"enabled"`
}

// DSN returns the PostgreSQL connection string.
func (j JournalConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		j.User, j.Password, j.Host, j.Port, j.DBName, j.SSLMode,
	)
}

// AttackDelay returns the attack delay as a duration.
func (h Hunter) AttackDelay() time.Duration {
	return time.Duration(h.AttackDelayMs) * time.Millisecond
}

// TickInterval returns the host tick interval as a duration.
func (h Hunter) TickInterval() time.Duration {
	return time.Duration(h.TickIntervalMs) * time.Millisecond
}

// DefaultHunter returns Hunter config with sensible defaults.
func DefaultHunter() Hunter {
	return Hunter{
		LogLevel:          "info",
		AssistRange:       50,
		AggroRadius:       30,
		CombatRange:       5,
		SpellRange:        200,
		FleeHPThreshold:   20,
		HuntRadius:        300,
		RestHPThreshold:   50,
		RestManaThreshold: 30,
		AutoLoot:          true,
		AttackDelayMs:     2000,
		TickIntervalMs:    250,
		ObserverAddr:      "",
		Journal: JournalConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "hunter",
			Password: "hunter",
			DBName:   "hunter",
			SSLMode:  "disable",
			Enabled:  false,
		},
	}
}

// LoadHunter loads hunter config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadHunter(path string) (Hunter, error) {
	cfg := DefaultHunter()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
