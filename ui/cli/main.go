// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface for Yapfastr using the Cobra
// library. It defines the root command, which opens the compose popup,
// the persistent flags and the shared service setup.

package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/yapfastr/yapfastr/buildvars"
	"github.com/yapfastr/yapfastr/core/composer"
	"github.com/yapfastr/yapfastr/internal/config"
	"github.com/yapfastr/yapfastr/internal/db"
	"github.com/yapfastr/yapfastr/internal/i18n"
	"github.com/yapfastr/yapfastr/internal/logging"
	"github.com/yapfastr/yapfastr/ui/tui"
	"golang.org/x/term"
)

var version = buildvars.VersionOrDefault("dev") // this will be set by the linker
var gitCommit = "dev"                            // set at build time with the short commit SHA
var buildDate = ""                               // set at build time (RFC3339)
var cfgFile string
var verbose bool

var appConfig config.Config

// isInteractive reports whether the popup can take over the terminal. Tests
// replace it.
var isInteractive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))
}

// runPopup shows the popup. Log lines written meanwhile are held back and
// replayed once the popup gave the terminal back. Tests replace it.
var runPopup = func(build tui.Builder) (string, bool, error) {
	var held bytes.Buffer
	logging.SetOutput(&held)
	defer func() {
		logging.SetOutput(os.Stderr)
		_, _ = os.Stderr.Write(held.Bytes())
	}()
	return tui.Run(build, tea.WithAltScreen(), tea.WithOutput(os.Stderr))
}

func setupDefaultServices(cmd *cobra.Command, args []string) error {
	logging.SetDebug(verbose)
	db.SetDebug(verbose)

	if err := config.LoadDotEnv(); err != nil {
		logging.Warnf("could not load .env file: %v", err)
	}

	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	defaults := config.Defaults()
	appConfig, err = config.LoadConfig[config.Config](cmd, defaults, optionalConfigPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// Persist a default config on first run so users have a file to edit.
	// Only defaults are written; env values and flags stay per-invocation.
	if optionalConfigPath == nil {
		writeDefaultConfig()
	}

	// Empty values in the user's file fall back to the defaults.
	if appConfig.Language == "" {
		appConfig.Language = defaults["language"].(string)
	}
	if appConfig.Database.Type == "" {
		appConfig.Database.Type = defaults["database.type"].(string)
	}
	if appConfig.Database.Dsn == "" {
		appConfig.Database.Dsn = defaults["database.dsn"].(string)
	}
	if appConfig.Twitter.APIURL == "" {
		appConfig.Twitter.APIURL = config.DefaultAPIURL
	}

	i18n.Init(appConfig.Language)
	return nil
}

func writeDefaultConfig() {
	path, err := config.GetConfigPath(false)
	if err != nil {
		return
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		return
	}
	fresh, err := config.DefaultConfig()
	if err != nil {
		logging.Warnf("could not build default config: %v", err)
		return
	}
	if err := config.WriteConfigFile(&fresh, false); err != nil {
		logging.Warnf("could not write default config file: %v", err)
		return
	}
	logging.Debugf("wrote default config to %s", path)
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
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

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "yapfastr",
		Short:             i18n.T("cli.short"),
		Long:              i18n.T("cli.long"),
		SilenceUsage:      true,
		PersistentPreRunE: setupDefaultServices,
		RunE:              runRoot,
	}

	v, c, d := resolveBuildVersion(nil)
	cmd.Version = compositeVersion(v, c, d)

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("language", "en", `UI language ("en", "de")`)
	cmd.PersistentFlags().Bool("verified", false, "Allow posts longer than the character limit")

	cmd.AddCommand(
		newPostCmd(),
		newHistoryCmd(),
		newDictCmd(),
		newVersionCmd(),
	)
	return cmd
}

// runRoot opens the popup and prints the posted text.
func runRoot(cmd *cobra.Command, args []string) error {
	if !isInteractive() {
		return errors.New(i18n.T("cli.error.no_tty"))
	}
	if err := requireCredentials(); err != nil {
		return err
	}

	svc := openServices(cmd.Context(), appConfig)
	defer svc.Close()

	build := func(d composer.Dispatcher) *composer.Composer {
		return svc.NewComposer(cmd.Context(), d)
	}

	text, ok, err := runPopup(build)
	if err != nil {
		return err
	}
	if ok {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), text)
	}
	return nil
}

func requireCredentials() error {
	if missing := appConfig.Twitter.Missing(); len(missing) > 0 {
		return errors.New(i18n.T("cli.error.missing_credentials", strings.Join(missing, ", ")))
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: i18n.T("cli.version.short"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "version: %s\n", v)
			_, _ = fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				_, _ = fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}
}

func compositeVersion(v, c, d string) string {
	out := v
	if c != "" && c != "dev" {
		out += " (" + c + ")"
	}
	if d != "" {
		out += " built: " + d
	}
	return out
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If `info` is nil, it reads build info from
// the runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := version
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, found := debug.ReadBuildInfo(); found {
			info = local
		}
	}

	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// If Main doesn't carry the version (some build paths), look for
		// our module among the dependencies.
		if (resolvedVersion == "dev" || resolvedVersion == "(devel)") && info.Deps != nil {
			for _, dep := range info.Deps {
				if dep.Path == "github.com/yapfastr/yapfastr" && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
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

	// As a last resort show the commit passed via ldflags.
	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
