// Package config loads the blackjack configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultFile is the configuration file read when none is given
const DefaultFile = "blackjack.hcl"

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid configuration")

// Config is the complete, defaulted configuration
type Config struct {
	Table      TableSettings
	UI         UISettings
	Log        LogSettings
	Server     ServerSettings
	Simulation SimulationSettings
}

// TableSettings controls the money on the table
type TableSettings struct {
	Bankroll int
	Bet      int
}

// UISettings controls the terminal table
type UISettings struct {
	DealDelay time.Duration
	Advisor   bool
	Color     bool
}

// LogSettings controls logging
type LogSettings struct {
	Level string
	File  string
}

// ServerSettings controls the browser UI server
type ServerSettings struct {
	Address string
	Port    int
}

// Addr returns the host:port to listen on
func (s ServerSettings) Addr() string {
	return fmt.Sprintf("%s:%d", s.Address, s.Port)
}

// SimulationSettings controls the simulate command
type SimulationSettings struct {
	Rounds  int
	Workers int
	Seed    *int64 // nil picks a seed from the clock
}

// fileConfig mirrors the HCL layout. Every block and attribute is optional;
// whatever is missing keeps its default.
type fileConfig struct {
	Table      *tableBlock      `hcl:"table,block"`
	UI         *uiBlock         `hcl:"ui,block"`
	Log        *logBlock        `hcl:"log,block"`
	Server     *serverBlock     `hcl:"server,block"`
	Simulation *simulationBlock `hcl:"simulation,block"`
}

type tableBlock struct {
	Bankroll int `hcl:"bankroll,optional"`
	Bet      int `hcl:"bet,optional"`
}

type uiBlock struct {
	DealDelayMS *int  `hcl:"deal_delay_ms,optional"`
	Advisor     *bool `hcl:"advisor,optional"`
	Color       *bool `hcl:"color,optional"`
}

type logBlock struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

type serverBlock struct {
	Address string `hcl:"address,optional"`
	Port    int    `hcl:"port,optional"`
}

type simulationBlock struct {
	Rounds  int    `hcl:"rounds,optional"`
	Workers int    `hcl:"workers,optional"`
	Seed    *int64 `hcl:"seed,optional"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Table: TableSettings{
			Bankroll: 1000,
			Bet:      10,
		},
		UI: UISettings{
			DealDelay: 400 * time.Millisecond,
			Advisor:   false,
			Color:     true,
		},
		Log: LogSettings{
			Level: "info",
			File:  "blackjack.log",
		},
		Server: ServerSettings{
			Address: "localhost",
			Port:    8080,
		},
		Simulation: SimulationSettings{
			Rounds:  100_000,
			Workers: 0,
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var fc fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &fc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	return fc.apply(Default()), nil
}

// Parse reads configuration from HCL source, for callers without a file
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}

	var fc fileConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &fc); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	return fc.apply(Default()), nil
}

func (fc fileConfig) apply(c *Config) *Config {
	if t := fc.Table; t != nil {
		if t.Bankroll != 0 {
			c.Table.Bankroll = t.Bankroll
		}
		if t.Bet != 0 {
			c.Table.Bet = t.Bet
		}
	}
	if u := fc.UI; u != nil {
		if u.DealDelayMS != nil {
			c.UI.DealDelay = time.Duration(*u.DealDelayMS) * time.Millisecond
		}
		if u.Advisor != nil {
			c.UI.Advisor = *u.Advisor
		}
		if u.Color != nil {
			c.UI.Color = *u.Color
		}
	}
	if l := fc.Log; l != nil {
		if l.Level != "" {
			c.Log.Level = l.Level
		}
		if l.File != "" {
			c.Log.File = l.File
		}
	}
	if s := fc.Server; s != nil {
		if s.Address != "" {
			c.Server.Address = s.Address
		}
		if s.Port != 0 {
			c.Server.Port = s.Port
		}
	}
	if s := fc.Simulation; s != nil {
		if s.Rounds != 0 {
			c.Simulation.Rounds = s.Rounds
		}
		if s.Workers != 0 {
			c.Simulation.Workers = s.Workers
		}
		if s.Seed != nil {
			seed := *s.Seed
			c.Simulation.Seed = &seed
		}
	}
	return c
}

// Validate checks that every setting is in range
func (c *Config) Validate() error {
	if c.Table.Bet <= 0 {
		return fmt.Errorf("%w: bet must be positive, got %d", ErrInvalid, c.Table.Bet)
	}
	if c.Table.Bankroll < c.Table.Bet {
		return fmt.Errorf("%w: bankroll %d cannot cover a bet of %d", ErrInvalid, c.Table.Bankroll, c.Table.Bet)
	}
	if c.UI.DealDelay < 0 {
		return fmt.Errorf("%w: deal_delay_ms must not be negative", ErrInvalid)
	}
	if _, err := log.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		return fmt.Errorf("%w: log level %q: %v", ErrInvalid, c.Log.Level, err)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: port %d", ErrInvalid, c.Server.Port)
	}
	if c.Simulation.Rounds <= 0 {
		return fmt.Errorf("%w: simulation rounds must be positive, got %d", ErrInvalid, c.Simulation.Rounds)
	}
	if c.Simulation.Workers < 0 {
		return fmt.Errorf("%w: simulation workers must not be negative", ErrInvalid)
	}
	return nil
}

// LogLevel returns the parsed log level, falling back to info
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(strings.ToLower(c.Log.Level))
	if err != nil {
		return log.InfoLevel
	}
	return level
}
