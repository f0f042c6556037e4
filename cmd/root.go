package cmd

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/signup/internal/app"
	"github.com/zjrosen/signup/internal/config"
	"github.com/zjrosen/signup/internal/flags"
	"github.com/zjrosen/signup/internal/log"
	"github.com/zjrosen/signup/internal/paths"
	"github.com/zjrosen/signup/internal/ui/styles"
	"github.com/zjrosen/signup/internal/watcher"
)

func init() {
	// Query the terminal background before any Bubble Tea program starts so
	// the OSC 11 reply cannot race the input loop and land in a text field.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version = "dev"

	cfgFile     string
	flagLocale  string
	flagBackend string
	debug       bool
	logFile     string

	cfg        config.Config
	configPath string
	logCleanup func()
)

var rootCmd = &cobra.Command{
	Use:   "signup",
	Short: "A terminal registration form",
	Long: `A terminal registration form with inline validation, a password
strength hint, English and Burmese messages, and a pluggable account backend.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: teardown,
	RunE:              runApp,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .signup/config.yaml, then ~/.config/signup/config.yaml)")
	pf.StringVar(&flagLocale, "locale", "",
		`display language, "en" or "my" (overrides config)`)
	pf.StringVar(&flagBackend, "backend", "",
		`account backend, "simulated" or "sqlite" (overrides config)`)
	pf.BoolVarP(&debug, "debug", "d", false,
		"write debug logs (also enabled by SIGNUP_DEBUG=1)")
	pf.StringVar(&logFile, "log-file", "debug.log",
		"debug log path")
}

func setup(cmd *cobra.Command, _ []string) error {
	if debug || os.Getenv("SIGNUP_DEBUG") == "1" {
		cleanup, err := log.Init(logFile)
		if err != nil {
			return err
		}
		logCleanup = cleanup
	}

	loaded, path, err := loadConfig()
	if err != nil {
		return err
	}
	if flagLocale != "" {
		loaded.Locale = flagLocale
	}
	if flagBackend != "" {
		loaded.Account.Backend = flagBackend
	}
	if err := config.Validate(loaded); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	cfg, configPath = loaded, path
	log.Info(log.CatConfig, "config loaded", "path", path, "locale", cfg.Locale, "backend", cfg.Account.Backend)
	return nil
}

func teardown(*cobra.Command, []string) {
	if logCleanup != nil {
		logCleanup()
		logCleanup = nil
	}
}

// loadConfig reads the config file, writing the commented default template
// when none exists yet. It returns the config and the file it came from.
func loadConfig() (config.Config, string, error) {
	v := viper.New()
	config.SetDefaults(v)

	// Config lookup order:
	// 1. --config
	// 2. .signup/config.yaml (current directory)
	// 3. ~/.config/signup/config.yaml (user config)
	target := config.DefaultPath
	switch {
	case cfgFile != "":
		target = paths.Expand(cfgFile)
		v.SetConfigFile(target)
	case fileExists(config.DefaultPath):
		v.SetConfigFile(config.DefaultPath)
	default:
		if dir := paths.UserConfigDir(); dir != "" {
			v.AddConfigPath(dir)
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return config.Config{}, "", fmt.Errorf("reading config: %w", err)
		}
		// Nothing to read; write the default so the user has a file to edit.
		if writeErr := config.WriteDefaultConfig(target); writeErr == nil {
			v.SetConfigFile(target)
			_ = v.ReadInConfig()
		} else {
			log.Warn(log.CatConfig, "default config not written", "path", target, "error", writeErr)
		}
	}

	loaded, err := config.Load(v)
	if err != nil {
		return config.Config{}, "", err
	}

	path := v.ConfigFileUsed()
	if path == "" {
		path = target
	}
	return loaded, path, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func runApp(cmd *cobra.Command, _ []string) error {
	if err := styles.ApplyTheme(styles.ThemeConfig{
		Preset: cfg.Theme.Preset,
		Mode:   cfg.Theme.Mode,
		Colors: cfg.Theme.FlattenedColors(),
	}); err != nil {
		return fmt.Errorf("invalid theme configuration: %w", err)
	}

	rt, err := newRuntime(cfg)
	if err != nil {
		return err
	}

	messages := startMessagesWatcher(cfg.MessagesFile)
	if messages != nil {
		rt.closers = append(rt.closers, messages.Stop)
	}

	model := app.New(app.Config{
		Controller:   rt.controller,
		Creator:      rt.creator,
		Catalog:      rt.catalog,
		ConfigPath:   configPath,
		MessagesFile: cfg.MessagesFile,
		Watcher:      messages,
	})
	p := tea.NewProgram(model, programOptions(cmd, flags.New(cfg.Flags))...)

	_, err = p.Run()

	if closeErr := rt.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// startMessagesWatcher watches the message overrides file. It returns nil when
// there is no file or it cannot be watched; the app then runs without reload.
func startMessagesWatcher(path string) *watcher.Watcher {
	if path == "" {
		return nil
	}
	w, err := watcher.New(watcher.DefaultConfig(path))
	if err != nil {
		log.Warn(log.CatConfig, "messages watcher unavailable", "error", err)
		return nil
	}
	if err := w.Start(); err != nil {
		log.Warn(log.CatConfig, "messages watcher unavailable", "path", path, "error", err)
		_ = w.Stop()
		return nil
	}
	return w
}

func programOptions(cmd *cobra.Command, ff *flags.Registry) []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithContext(cmd.Context())}
	if ff.Enabled(flags.FlagAltScreen) {
		opts = append(opts, tea.WithAltScreen())
	}
	if ff.Enabled(flags.FlagMouse) {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	return opts
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
