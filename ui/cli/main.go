// Copyright (c) 2026 Tiptime Team
// Tiptime - terminal tip calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command, loads configuration and builds the
// calculator shared by the screen and the subcommands.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/tiptime/buildvars"
	"github.com/toeirei/tiptime/internal/config"
	"github.com/toeirei/tiptime/internal/i18n"
	"github.com/toeirei/tiptime/internal/logging"
	"github.com/toeirei/tiptime/internal/money"
	"github.com/toeirei/tiptime/internal/tip"
	"github.com/toeirei/tiptime/internal/tui"
	"golang.org/x/term"
)

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

var cfgFile string
var verbose bool
var showVersionFlag bool

var appConfig config.Config
var calculator *tip.Calculator

// debugLogFile receives log output while the screen owns the terminal.
const debugLogFile = "tiptime-debug.log"

// stdoutIsTerminal is swapped out in tests.
var stdoutIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func setupDefaultServices(cmd *cobra.Command, args []string) error {
	logging.SetDebug(verbose)

	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, config.Defaults(), optionalConfigPath)
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		logging.Debugf("no config file found, using defaults")
	} else if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if appConfig.Language == "" {
		appConfig.Language = config.Defaults()["language"].(string)
	}
	names := i18n.GetAvailableLocales()
	if _, ok := names[appConfig.Language]; !ok {
		logging.Warnf("unknown language %q, falling back to English (available: %s)",
			appConfig.Language, strings.Join(i18n.Languages(), ", "))
	}
	i18n.Init(appConfig.Language)
	logging.Debugf("ui language %s", i18n.GetLang())

	formatter, err := money.NewFormatter(appConfig.Locale, appConfig.Currency)
	if err != nil {
		return fmt.Errorf("error configuring currency format: %w", err)
	}
	logging.Debugf("formatting tips as %s", formatter)
	calculator = tip.NewCalculator(formatter)

	return nil
}

// Execute runs the CLI entrypoint.
func Execute() error {
	return NewRootCmd().Execute()
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// NewRootCmd creates and configures a new root cobra command. Tests call it
// for a fresh, isolated command tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tiptime",
		Short: "Tiptime is a terminal tip calculator.",
		Long: `Tiptime computes a tip from a bill amount and a tip percentage,
optionally rounded up to the next whole currency unit, and shows it in
your locale's currency format.

Running without a subcommand launches the interactive calculator.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if showVersionFlag {
				fmt.Fprintln(cmd.OutOrStdout(), compositeVersion())
				os.Exit(0)
			}
			return setupDefaultServices(cmd, args)
		},
		RunE: runScreen,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVarP(&showVersionFlag, "version", "V", false, "Print version and exit")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("language", "en", fmt.Sprintf("UI language (%s)", strings.Join(i18n.Languages(), ", ")))
	cmd.PersistentFlags().String("locale", "", "Locale for number and currency formatting (default: from LC_ALL/LC_MONETARY/LANG)")
	cmd.PersistentFlags().String("currency", "", "ISO 4217 currency code (default: currency of the locale)")

	cmd.AddCommand(
		newCalcCmd(),
		newConfigCmd(),
		newLanguagesCmd(),
		newVersionCmd(),
	)

	return cmd
}

func runScreen(cmd *cobra.Command, args []string) error {
	if !stdoutIsTerminal() {
		return errors.New(i18n.T("cli.no_terminal"))
	}

	// The alt-screen owns the terminal; keep log lines out of it.
	var sink io.Writer = io.Discard
	if verbose {
		f, err := os.OpenFile(debugLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("opening %s: %w", debugLogFile, err)
		}
		defer f.Close()
		sink = f
	}
	logging.SetOutput(sink)
	defer logging.SetOutput(os.Stderr)

	if err := tui.Run(calculator, tui.Options{RoundUp: appConfig.RoundUp}); err != nil {
		logging.Errorf("screen stopped: %v", err)
		return fmt.Errorf("running screen: %w", err)
	}
	return nil
}

func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the available UI languages",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			names := i18n.GetAvailableLocales()
			for _, code := range i18n.Languages() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", code, names[code])
			}
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}
}

func compositeVersion() string {
	v, c, d := resolveBuildVersion(nil)
	out := v
	if c != "" && c != "dev" {
		out = out + " (" + c + ")"
	}
	if d != "" {
		out = out + " built: " + d
	}
	return out
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If info is nil, it reads build info from the
// runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault(version)
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, ok := debug.ReadBuildInfo(); ok {
			info = local
		}
	}

	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
