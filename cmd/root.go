package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/enka/config"
	"github.com/s0up4200/enka/enka"
)

var (
	cfgFile    string
	cfg        *config.Config
	logger     zerolog.Logger
	enkaClient *enka.Client

	// Command flags
	outputFormat string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "enka",
	Short: "Query enka.network showcases, accounts and builds",
	Long: `enka fetches Genshin Impact character showcases by UID, enka.network
profiles, the game accounts (hoyos) linked to them and the builds saved
on those accounts, and prints them as JSON or YAML.`,
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "json", "output format (json or yaml)")
}

// initializeApp initializes the configuration and the enka client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if outputFormat != "json" && outputFormat != "yaml" {
		return fmt.Errorf("invalid output format: %s (must be 'json' or 'yaml')", outputFormat)
	}

	logger = setupLogger(cfg.Logging)

	enkaClient = newEnkaClient(cfg.Enka, logger)

	logger.Debug().
		Str("base_url", cfg.Enka.BaseURL).
		Str("user_agent", enkaClient.UserAgent()).
		Dur("timeout", cfg.Enka.Timeout).
		Msg("enka client ready")

	return nil
}

func newEnkaClient(c config.EnkaConfig, logger zerolog.Logger) *enka.Client {
	return enka.NewClient(
		enka.WithHTTPClient(&http.Client{Timeout: c.Timeout}),
		enka.WithBaseURL(c.BaseURL),
		enka.WithUserAgent(c.UserAgent),
		enka.WithConcurrency(c.Concurrency),
		enka.WithLogger(logger),
	)
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level, ok := cfg.ZerologLevel()
	if !ok {
		level = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == config.FormatJSON {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
