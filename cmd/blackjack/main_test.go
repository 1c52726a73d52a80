package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/config"
)

func newParser(t *testing.T, cli *CLI) *kong.Kong {
	t.Helper()
	parser, err := kong.New(cli,
		kong.Name("blackjack"),
		kong.Vars{
			"version":     "test",
			"config_file": config.DefaultFile,
		},
		kong.Exit(func(int) { t.Fatal("unexpected exit") }),
	)
	require.NoError(t, err)
	return parser
}

func TestParseCommands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		command string
		check   func(t *testing.T, cli *CLI)
	}{
		{
			name:    "play is the default",
			args:    []string{},
			command: "play",
			check: func(t *testing.T, cli *CLI) {
				assert.Nil(t, cli.Play.Bankroll)
				assert.Equal(t, config.DefaultFile, cli.Config)
			},
		},
		{
			name:    "play overrides",
			args:    []string{"play", "--bankroll", "500", "--bet", "25", "--delay", "250ms", "--seed", "7", "-a"},
			command: "play",
			check: func(t *testing.T, cli *CLI) {
				require.NotNil(t, cli.Play.Bankroll)
				assert.Equal(t, 500, *cli.Play.Bankroll)
				require.NotNil(t, cli.Play.Bet)
				assert.Equal(t, 25, *cli.Play.Bet)
				require.NotNil(t, cli.Play.Delay)
				assert.Equal(t, 250*time.Millisecond, *cli.Play.Delay)
				require.NotNil(t, cli.Play.Seed)
				assert.Equal(t, int64(7), *cli.Play.Seed)
				assert.True(t, cli.Play.Advisor)
			},
		},
		{
			name:    "simulate",
			args:    []string{"--log-level", "debug", "simulate", "-n", "500", "-w", "2", "-o", "report.json"},
			command: "simulate",
			check: func(t *testing.T, cli *CLI) {
				assert.Equal(t, "debug", cli.LogLevel)
				assert.Equal(t, 500, cli.Simulate.Rounds)
				assert.Equal(t, 2, cli.Simulate.Workers)
				assert.Equal(t, "report.json", filepath.Base(cli.Simulate.Output))
				assert.Nil(t, cli.Simulate.Seed)
			},
		},
		{
			name:    "serve",
			args:    []string{"serve", "--port", "9090"},
			command: "serve",
			check: func(t *testing.T, cli *CLI) {
				assert.Equal(t, 9090, cli.Serve.Port)
				assert.Empty(t, cli.Serve.Address)
			},
		},
		{
			name:    "advise",
			args:    []string{"advise", "8h,8s", "--dealer", "6d"},
			command: "advise <cards>",
			check: func(t *testing.T, cli *CLI) {
				assert.Equal(t, "8h,8s", cli.Advise.Cards)
				assert.Equal(t, "6d", cli.Advise.Dealer)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var cli CLI
			ctx, err := newParser(t, &cli).Parse(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.command, ctx.Command())
			tt.check(t, &cli)
		})
	}
}

func TestGlobalsLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "blackjack.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
table {
  bankroll = 250
}
log {
  level = "warn"
}
`), 0o644))

	g := &Globals{Config: path, LogLevel: "debug"}
	cfg, err := g.load()
	require.NoError(t, err)
	assert.Equal(t, 250, cfg.Table.Bankroll)
	assert.Equal(t, 10, cfg.Table.Bet)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestGlobalsLoadMissingFile(t *testing.T) {
	t.Parallel()

	g := &Globals{Config: filepath.Join(t.TempDir(), "absent.hcl")}
	cfg, err := g.load()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}
