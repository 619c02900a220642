// SPDX-License-Identifier: MPL-2.0

// Package cli contains the wineceptor command-line surface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"wineceptor-cli/internal/config"
	"wineceptor-cli/internal/launcher"
	"wineceptor-cli/internal/runner"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug logging
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// dryRun prints the composed command chain instead of executing it
	dryRun bool
	// maxDepth overrides the configured prefix search depth
	maxDepth int

	// rootCmd represents the base command
	rootCmd = &cobra.Command{
		Use:   "wineceptor [file.exe]",
		Short: "Launch Windows executables inside their Wine prefixes",
		Long: TitleStyle.Render("wineceptor") + SubtitleStyle.Render(" - Launch Windows executables inside their Wine prefixes") + `

wineceptor finds the Wine prefix enclosing an executable by walking up
from the executable's directory, resolves layered configuration from
wineceptor.ini (prefix scope) and <file.exe>.wineceptor.ini (executable
scope), and runs the resulting command chain: before-hooks, the wine
launch, a wineserver wait, then after-hooks. A failing command stops
the chain.

` + SubtitleStyle.Render("Examples:") + `
  wineceptor ~/games/drive_c/Games/game.exe   Launch an executable
  wineceptor --dry-run game.exe               Print the command chain
  wineceptor --max-depth 5 game.exe           Limit the prefix search`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runLaunch,
	}
)

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/wineceptor/config.toml)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the composed command chain instead of executing it")
	rootCmd.Flags().IntVar(&maxDepth, "max-depth", config.DefaultSearchDepth, "maximum number of parent directories searched for a prefix")
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the root command. It is called by main.main() and exits the
// process with the command's exit code on failure.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(renderError),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// renderError prints failures as a single ERROR line. ExitErrors with no
// underlying error only carry the launched chain's exit status and print
// nothing extra.
func renderError(w io.Writer, _ fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}
	fmt.Fprintln(w, ErrorStyle.Render("ERROR:")+" "+err.Error())
}

// initLogging installs a charmbracelet/log handler as the slog default.
func initLogging() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          config.AppName,
		ReportTimestamp: false,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	slog.SetDefault(slog.New(logger))
}

// runLaunch is the root RunE handler: no argument shows usage (exit 0), one
// argument launches the executable through the pipeline.
func runLaunch(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), WarningStyle.Render("Warning: ")+err.Error())
		cfg = config.DefaultConfig()
	}

	depth := cfg.SearchDepth
	if cmd.Flags().Changed("max-depth") {
		depth = maxDepth
	}

	var r runner.Runner = runner.NewShellRunner()
	if dryRun {
		r = &runner.PrintRunner{Out: cmd.OutOrStdout()}
	}

	l := launcher.New(depth, cfg.WinePath, r)
	code, err := l.Launch(cmd.Context(), args[0])
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}
	if !code.IsSuccess() {
		return &ExitError{Code: code}
	}
	return nil
}
