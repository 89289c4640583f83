package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/syssam/stencil"

	// Bundled processors register themselves by name.
	_ "github.com/syssam/stencil/processors/gostring"
	_ "github.com/syssam/stencil/processors/tmpl"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] [root]",
	Short: "Run one generation pass",
	Long: `Run discovers files with the target extension under the root
directory (default: current directory), regenerates every stale output, and
exits non-zero on the first failure.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExecution,
}

var watchCmd = &cobra.Command{
	Use:   "watch [flags] [root]",
	Short: "Run passes continuously as inputs change",
	Args:  cobra.MaximumNArgs(1),
	RunE:  watchExecution,
}

var processorsCmd = &cobra.Command{
	Use:   "processors",
	Short: "List available processors",
	RunE: func(cmd *cobra.Command, _ []string) error {
		for _, name := range stencil.Processors() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{runCmd, watchCmd} {
		cmd.Flags().StringP("ext", "e", "", "input file extension (without dot)")
		cmd.Flags().String("gen-ext", "", `generated output extension (default "go")`)
		cmd.Flags().StringP("processor", "p", "", `processor name (default "gostring")`)
		cmd.Flags().BoolP("force", "f", false, "regenerate regardless of timestamps")
	}
}

func runExecution(cmd *cobra.Command, args []string) error {
	r, err := buildRunner(cmd, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return r.Run(cmd.Context())
}

func watchExecution(cmd *cobra.Command, args []string) error {
	r, err := buildRunner(cmd, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = r.Watch(ctx)
	if ctx.Err() != nil {
		// Interrupted by the user, not a failed pass.
		return nil
	}
	return err
}

// buildRunner merges the project file (if any) with command-line flags,
// flags winning, and builds the Runner.
func buildRunner(cmd *cobra.Command, args []string) (*stencil.Runner, error) {
	configPath, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg, err := loadProjectConfig(configPath)
	if err != nil {
		return nil, err
	}

	root := cfg.Root
	if len(args) == 1 {
		root = args[0]
	}
	if root == "" {
		if root, err = os.Getwd(); err != nil {
			return nil, err
		}
	}
	ext := flagOr(cmd, "ext", cfg.Extension)
	if ext == "" {
		return nil, fmt.Errorf("no input extension: pass --ext or set extension in %s", configFileName)
	}
	name := flagOr(cmd, "processor", cfg.Processor)
	if name == "" {
		name = "gostring"
	}
	processor, ok := stencil.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown processor %q (available: %s)", name, strings.Join(stencil.Processors(), ", "))
	}

	opts := []stencil.Option{stencil.WithColor(useColor(cmd))}
	if genExt := flagOr(cmd, "gen-ext", cfg.GeneratedExtension); genExt != "" {
		opts = append(opts, stencil.WithGeneratedExtension(genExt))
	}
	if force, _ := cmd.Flags().GetBool("force"); force || cfg.Force {
		opts = append(opts, stencil.WithForceRebuild())
	}
	if verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose"); verbose {
		opts = append(opts, stencil.WithVerbose())
	}
	return stencil.NewRunner(root, strings.TrimPrefix(ext, "."), processor, opts...)
}

// flagOr returns the flag's value when set, falling back to the project file.
func flagOr(cmd *cobra.Command, name, fallback string) string {
	if v, err := cmd.Flags().GetString(name); err == nil && v != "" {
		return v
	}
	return fallback
}

func useColor(cmd *cobra.Command) bool {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isatty.IsTerminal(os.Stdout.Fd()) && !color.NoColor
	}
}
