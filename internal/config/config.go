// Package config loads simulation settings from HCL files.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/dominionsim/internal/card"
	"github.com/lox/dominionsim/internal/strategy"
)

// Config represents a complete simulation configuration
type Config struct {
	Simulation  SimulationSettings `hcl:"simulation,block"`
	Kingdom     []string           `hcl:"kingdom,optional"`
	InitialDeck []string           `hcl:"initial_deck,optional"`
	Players     []PlayerConfig     `hcl:"player,block"`
	GameEnd     *GameEndConfig     `hcl:"game_end,block"`
}

// SimulationSettings contains run-level configuration
type SimulationSettings struct {
	Games            int    `hcl:"games,optional"`
	MaxTurns         int    `hcl:"max_turns,optional"`
	Seed             *int64 `hcl:"seed,optional"`
	ShuffleTurn0     *bool  `hcl:"shuffle_turn0,optional"`
	LogLevel         string `hcl:"log_level,optional"`
	RecordPlayLog    bool   `hcl:"record_play_log,optional"`
	ProgressInterval string `hcl:"progress_interval,optional"`
}

// PlayerConfig seats one player. Strategy is a built-in strategy name or
// "priority", which is driven by Actions and Buys.
type PlayerConfig struct {
	Name     string      `hcl:"name,label"`
	Strategy string      `hcl:"strategy,optional"`
	Actions  []string    `hcl:"actions,optional"`
	Buys     []BuyConfig `hcl:"buy,block"`
}

// BuyConfig is one purchase rule, checked in file order.
type BuyConfig struct {
	Card     string         `hcl:"card,label"`
	MinCoins int            `hcl:"min_coins,optional"`
	AtLeast  map[string]int `hcl:"at_least,optional"`
	Below    map[string]int `hcl:"below,optional"`
}

// GameEndConfig describes when a game stops. The game ends when any enabled
// condition holds.
type GameEndConfig struct {
	Standard bool         `hcl:"standard,optional"`
	Goals    []GoalConfig `hcl:"goal,block"`
}

// GoalConfig ends the game once a player owns all the listed cards.
type GoalConfig struct {
	Player int            `hcl:"player"` // counting from 1
	Cards  map[string]int `hcl:"cards"`
}

const (
	defaultGames            = 5000
	defaultMaxTurns         = 30
	defaultSeed             = 1
	defaultLogLevel         = "info"
	defaultProgressInterval = "5s"
	priorityStrategy        = "priority"
)

// DefaultKingdom is the kingdom used when a file does not name one.
var DefaultKingdom = []string{
	"SMITHY", "LABORATORY", "FESTIVAL", "MARKET", "LABORATORY", "SCHOLAR", "HIRELING",
}

// Default returns the built-in configuration: one Smithy big money player
// racing to four Provinces, or three Provinces and two Duchies.
func Default() *Config {
	seed := int64(defaultSeed)
	shuffle := true
	return &Config{
		Simulation: SimulationSettings{
			Games:            defaultGames,
			MaxTurns:         defaultMaxTurns,
			Seed:             &seed,
			ShuffleTurn0:     &shuffle,
			LogLevel:         defaultLogLevel,
			ProgressInterval: defaultProgressInterval,
		},
		Kingdom:     append([]string(nil), DefaultKingdom...),
		InitialDeck: defaultInitialDeck(),
		Players: []PlayerConfig{
			{Name: "player1", Strategy: "smithy"},
		},
		GameEnd: &GameEndConfig{
			Goals: []GoalConfig{
				{Player: 1, Cards: map[string]int{"PROVINCE": 4}},
				{Player: 1, Cards: map[string]int{"PROVINCE": 3, "DUCHY": 2}},
			},
		},
	}
}

func defaultInitialDeck() []string {
	deck := make([]string, 0, 10)
	for range 7 {
		deck = append(deck, "COPPER")
	}
	for range 3 {
		deck = append(deck, "ESTATE")
	}
	return deck
}

// Load loads configuration from an HCL file. A missing file yields Default.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	return decode(file)
}

// Parse decodes configuration from HCL source. filename is used in
// diagnostics only.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}
	return decode(file)
}

func decode(file *hcl.File) (*Config, error) {
	var config Config
	diags := gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	s := &c.Simulation
	if s.Games == 0 {
		s.Games = defaultGames
	}
	if s.MaxTurns == 0 {
		s.MaxTurns = defaultMaxTurns
	}
	if s.Seed == nil {
		s.Seed = def.Simulation.Seed
	}
	if s.ShuffleTurn0 == nil {
		s.ShuffleTurn0 = def.Simulation.ShuffleTurn0
	}
	if s.LogLevel == "" {
		s.LogLevel = defaultLogLevel
	}
	if s.ProgressInterval == "" {
		s.ProgressInterval = defaultProgressInterval
	}

	if c.Kingdom == nil {
		c.Kingdom = def.Kingdom
	}
	if len(c.InitialDeck) == 0 {
		c.InitialDeck = def.InitialDeck
	}
	if len(c.Players) == 0 {
		c.Players = def.Players
	}
	for i := range c.Players {
		if c.Players[i].Strategy == "" {
			if len(c.Players[i].Buys) > 0 || len(c.Players[i].Actions) > 0 {
				c.Players[i].Strategy = priorityStrategy
			} else {
				c.Players[i].Strategy = "smithy"
			}
		}
	}
	if c.GameEnd == nil {
		c.GameEnd = def.GameEnd
	}
}

// Validate checks the configuration against the card catalog.
func (c *Config) Validate(catalog *card.Catalog) error {
	s := c.Simulation
	if s.Games <= 0 {
		return fmt.Errorf("simulation: games must be positive, got %d", s.Games)
	}
	if s.MaxTurns <= 0 {
		return fmt.Errorf("simulation: max_turns must be positive, got %d", s.MaxTurns)
	}
	if _, err := log.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("simulation: invalid log_level %q", s.LogLevel)
	}
	if _, err := c.Progress(); err != nil {
		return err
	}

	if err := catalog.Validate(toNames(c.Kingdom)); err != nil {
		return fmt.Errorf("kingdom: %w", err)
	}
	if err := catalog.Validate(toNames(c.InitialDeck)); err != nil {
		return fmt.Errorf("initial_deck: %w", err)
	}

	if len(c.Players) == 0 {
		return errors.New("at least one player must be configured")
	}
	seen := make(map[string]bool, len(c.Players))
	for _, p := range c.Players {
		if seen[p.Name] {
			return fmt.Errorf("player %s: duplicate name", p.Name)
		}
		seen[p.Name] = true
		if err := p.validate(catalog); err != nil {
			return err
		}
	}

	if c.GameEnd != nil {
		for i, g := range c.GameEnd.Goals {
			if g.Player < 1 || g.Player > len(c.Players) {
				return fmt.Errorf("game_end goal %d: player %d is not seated", i+1, g.Player)
			}
			if len(g.Cards) == 0 {
				return fmt.Errorf("game_end goal %d: no cards listed", i+1)
			}
			if err := catalog.Validate(mapKeys(g.Cards)); err != nil {
				return fmt.Errorf("game_end goal %d: %w", i+1, err)
			}
		}
	}
	return nil
}

func (p PlayerConfig) validate(catalog *card.Catalog) error {
	if p.Strategy != priorityStrategy {
		if !isBuiltin(p.Strategy) {
			return fmt.Errorf("player %s: invalid strategy %s", p.Name, p.Strategy)
		}
		return nil
	}
	if len(p.Buys) == 0 {
		return fmt.Errorf("player %s: priority strategy needs at least one buy block", p.Name)
	}
	if err := p.priority(nil).Validate(catalog); err != nil {
		return fmt.Errorf("player %s: %w", p.Name, err)
	}
	return nil
}

func (p PlayerConfig) priority(logger *log.Logger) *strategy.Priority {
	rules := make([]strategy.BuyRule, len(p.Buys))
	for i, b := range p.Buys {
		rules[i] = strategy.BuyRule{
			Card:     card.Name(b.Card),
			MinCoins: b.MinCoins,
			AtLeast:  toCounts(b.AtLeast),
			Below:    toCounts(b.Below),
		}
	}
	return strategy.NewPriority(p.Name, toNames(p.Actions), rules, logger)
}

// Level returns the configured log level.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.Simulation.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Progress returns the progress logging interval.
func (c *Config) Progress() (time.Duration, error) {
	if c.Simulation.ProgressInterval == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Simulation.ProgressInterval)
	if err != nil {
		return 0, fmt.Errorf("simulation: invalid progress_interval: %w", err)
	}
	return d, nil
}

func isBuiltin(name string) bool {
	for _, b := range strategy.Builtin {
		if b == name {
			return true
		}
	}
	return false
}

func toNames(in []string) []card.Name {
	out := make([]card.Name, len(in))
	for i, s := range in {
		out[i] = card.Name(s)
	}
	return out
}

func toCounts(in map[string]int) map[card.Name]int {
	if len(in) == 0 {
		return nil
	}
	out := make(map[card.Name]int, len(in))
	for k, v := range in {
		out[card.Name(k)] = v
	}
	return out
}

func mapKeys(in map[string]int) []card.Name {
	out := make([]card.Name, 0, len(in))
	for k := range in {
		out = append(out, card.Name(k))
	}
	return out
}
