package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/betweenness/centrality"
	"github.com/katalvlaran/betweenness/internal/buildinfo"
	"github.com/katalvlaran/betweenness/internal/config"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	v       *viper.Viper
	cfg     config.Config
	cfgFile string
	src     graphSource
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		v:      viper.New(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "sbc",
		Short: "sbc ranks graph vertices by shortest-path betweenness centrality",
		Long: `sbc computes exhaustive betweenness centrality on small undirected graphs.
Every shortest path between every vertex pair is enumerated, so results are
exact but the cost grows quickly with graph size.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.prepare,
	}
	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.StringVar(&c.cfgFile, "config", "", "config file (default is ./.sbc.yaml or $HOME/.sbc.yaml)")
	pf.BoolP("verbose", "v", false, "enable verbose logging")
	pf.Float64("epsilon", centrality.DefaultEpsilon, "tolerance when comparing scores for ties")
	pf.Int("max-paths", 0, "cap on shortest paths enumerated per pair (0 = unlimited)")
	pf.String("membership", centrality.Inclusive.String(), "path membership: inclusive or interior")
	c.src.register(pf)

	_ = c.v.BindPFlag(config.KeyVerbose, pf.Lookup("verbose"))
	_ = c.v.BindPFlag(config.KeyEpsilon, pf.Lookup("epsilon"))
	_ = c.v.BindPFlag(config.KeyMaxPaths, pf.Lookup("max-paths"))
	_ = c.v.BindPFlag(config.KeyMembership, pf.Lookup("membership"))

	root.AddCommand(c.topCommand())
	root.AddCommand(c.scoresCommand())
	root.AddCommand(c.scoreCommand())
	root.AddCommand(c.distanceCommand())
	root.AddCommand(c.pathsCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.promptCommand())

	return root
}

// prepare loads configuration, applies the log level and attaches the
// logger to the command context.
func (c *CLI) prepare(cmd *cobra.Command, _ []string) error {
	home, _ := os.UserHomeDir()
	if err := config.Init(c.v, c.cfgFile, home); err != nil {
		return err
	}
	cfg, err := config.Load(c.v)
	if err != nil {
		return err
	}
	c.cfg = cfg
	if cfg.Verbose {
		c.SetLogLevel(LogDebug)
	}
	if used := c.v.ConfigFileUsed(); used != "" {
		c.Logger.Debug("Loaded config", "file", used)
	}
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))

	return nil
}

// centralityOptions builds the options for a centrality run from the loaded
// config, binding per-pair debug logging when enabled.
func (c *CLI) centralityOptions(cmd *cobra.Command) []centrality.Option {
	opts := append(c.cfg.Options(), centrality.WithContext(cmd.Context()))

	logger := loggerFromContext(cmd.Context())
	if debugEnabled(logger) {
		opts = append(opts, centrality.WithOnPair(func(node, u, v, through, total int) {
			logger.Debug("Pair", "node", node, "u", u, "v", v, "through", through, "total", total)
		}))
	}

	return opts
}
