package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/jpals/localmem/internal/config"
	"github.com/jpals/localmem/internal/domain/template"
	"github.com/jpals/localmem/internal/domain/workstream"
	"github.com/jpals/localmem/internal/jsonstore"
	"github.com/spf13/cobra"
)

var (
	dataDir string
	profile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "localmem",
	Short: "Inspect and edit the local workstream store",
	Long: `localmem works directly against the flat JSON files that back the
localmem MCP server, for quick inspection and edits from the terminal.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		}))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Data directory (default from LOCALMEM_DATA_DIR or ./data)")
	rootCmd.PersistentFlags().StringVar(&profile, "profile", "", "Store profile (default from LOCALMEM_PROFILE or test)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}

// openServices loads the store named by the flags, falling back to the
// environment-driven config for anything not set.
func openServices() (*workstream.Service, *template.Service) {
	cfg, err := config.Load()
	if err != nil {
		fatal("loading config", err)
	}
	dir := cfg.Data.Dir
	if dataDir != "" {
		dir = dataDir
	}
	prof := cfg.Data.Profile
	if profile != "" {
		prof = profile
	}

	workstreamRepo, err := jsonstore.NewWorkstreamRepository(dir, prof)
	if err != nil {
		fatal("opening workstream store", err)
	}
	templateRepo, err := jsonstore.NewTemplateRepository(dir, prof)
	if err != nil {
		fatal("opening template store", err)
	}

	workstreamSvc := workstream.NewService(workstreamRepo, slog.Default())
	templateSvc := template.NewService(templateRepo, workstreamSvc, slog.Default())
	return workstreamSvc, templateSvc
}

func printJSON(v any) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		fatal("encoding JSON", err)
	}
}
