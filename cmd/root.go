package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/artifactsmmo/artifacts"
	"github.com/s0up4200/artifactsmmo/config"
)

var (
	cfgFile    string
	tokenFlag  string
	jsonOutput bool

	cfg    *config.Config
	logger zerolog.Logger
	client artifacts.API
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "artifacts",
	Short: "A command line client for the ArtifactsMMO API",
	Long: `artifacts is a CLI for ArtifactsMMO, an MMO played entirely through its
HTTP API. It reads characters, the bank and the game catalog, and drives
character actions such as moving, fighting, gathering and crafting.`,
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&tokenFlag, "token", "", "API token (overrides config and ARTIFACTS_API_TOKEN)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print raw JSON instead of tables")
}

// initializeApp loads the configuration and creates the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile, map[string]any{"api.token": tokenFlag})
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	c, err := artifacts.NewClient(cfg.API.Token, logger,
		artifacts.WithBaseURL(cfg.API.URL),
		artifacts.WithTimeout(cfg.API.Timeout),
		artifacts.WithPageSize(cfg.API.PageSize),
		artifacts.WithUserAgent(cfg.API.UserAgent),
	)
	if err != nil {
		return fmt.Errorf("failed to create ArtifactsMMO client: %w", err)
	}
	client = c

	logger.Debug().Str("url", c.BaseURL()).Msg("ArtifactsMMO client ready")

	return nil
}

// skipInit replaces initializeApp for commands that never talk to the API
func skipInit(cmd *cobra.Command, args []string) error {
	logger = setupLogger(config.LoggingConfig{Level: "info", Format: "console", Color: true})
	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; colour only makes sense on a terminal
	fd := os.Stderr.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !tty,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
