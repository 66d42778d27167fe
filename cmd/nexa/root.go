package main

import (
	"fmt"

	"github.com/jwulff/nexa/internal/app"
	"github.com/jwulff/nexa/internal/backend"
	"github.com/jwulff/nexa/internal/config"
	"github.com/jwulff/nexa/internal/logging"
	"github.com/jwulff/nexa/internal/speech"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	cfgFile   string
	serverURL string
	noSpeech  bool
	logFile   string
)

var rootCmd = &cobra.Command{
	Use:   "nexa",
	Short: "Terminal chat client for the NEXA question-answering service",
	Long: `nexa is a terminal chat client for the NEXA question-answering service.
Ask questions, upload a PDF to ask about it, and dictate with a local
speech daemon when one is running.`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         runChat,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath(), "config file path")
	rootCmd.Flags().StringVar(&serverURL, "server", "", "server base URL (overrides server.url)")
	rootCmd.Flags().BoolVar(&noSpeech, "no-speech", false, "disable voice input")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "log file path (overrides log.file)")
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("server") {
		cfg.Server.URL = serverURL
	}
	if noSpeech {
		cfg.Speech.Enabled = false
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Log.File = logFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	client, err := backend.New(cfg.Server.URL, cfg.Server.Timeout, log.Named("backend"))
	if err != nil {
		return err
	}

	log.Info("starting",
		zap.String("version", Version),
		zap.String("server", cfg.Server.URL),
		zap.Bool("speech", cfg.Speech.Enabled),
	)

	m := app.New(app.Options{
		Backend:    client,
		DialSpeech: speechDialer(cfg.Speech, log.Named("speech")),
		Logger:     log.Named("app"),
		Timeout:    cfg.Server.Timeout,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithReportFocus())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// speechDialer returns the engine dialer, or nil when voice input is off.
func speechDialer(cfg config.SpeechConfig, log *zap.Logger) func() (app.Recognizer, error) {
	if !cfg.Enabled {
		return nil
	}
	return func() (app.Recognizer, error) {
		engine, err := speech.Dial(cfg.Socket, cfg.Locale, log)
		if err != nil {
			return nil, err
		}
		return engine, nil
	}
}
