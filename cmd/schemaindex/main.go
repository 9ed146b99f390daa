package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"schemaindex/internal/config"
	"schemaindex/internal/generator"
	"schemaindex/internal/logging"
)

const defaultOutput = "index.html"

var (
	// workspace is the scan root; empty means the current directory.
	workspace string

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "schemaindex [output]",
	Short: "Generate a static HTML index of JSON Schema files",
	Long: `Scans the current directory for *.schema.json files and writes a single
HTML page listing them, stable schemas first, then grouped by status.

The page is written to index.html unless an output path is given.
Settings are read from .schemaindex.yaml in the current directory when present.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveWorkspace()
		if err != nil {
			return err
		}

		cfg, err = config.LoadFromRoot(root)
		if err != nil {
			return err
		}

		logger, err = logging.New(cfg.Logging)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runGenerate,
}

func resolveWorkspace() (string, error) {
	if workspace != "" {
		return workspace, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return cwd, nil
}

// runGenerate collects schemas from the workspace and writes the index page.
func runGenerate(cmd *cobra.Command, args []string) error {
	output := defaultOutput
	if len(args) == 1 {
		output = args[0]
	}

	root, err := resolveWorkspace()
	if err != nil {
		return err
	}
	target := output
	if !filepath.IsAbs(target) {
		target = filepath.Join(root, target)
	}

	gen, err := generator.New(cfg, logger)
	if err != nil {
		return err
	}

	res, err := gen.Run(root, target)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated %s with %d schemas\n", output, res.Count)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
