package main

import (
	"context"
	"os"
	"time"

	"github.com/scantree/scantree/domain"
	"github.com/scantree/scantree/service"
	"github.com/spf13/cobra"
)

func analyzeCmd() *cobra.Command {
	var (
		format             string
		configPath         string
		entryPatterns      []string
		ignorePatterns     []string
		ignoreDependencies []string
		ignoreBinaries     []string
		includeDev         bool
		production         bool
		strict             bool
		progress           bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [path]",
		Short: "Find unused files, exports, dependencies, and binaries",
		Long: `Analyze walks a JavaScript/TypeScript project from its entry points and
reports files, named exports, type exports, dependencies, and binaries that
are never reached.

Examples:
  scantree analyze .                     # Analyze the current project
  scantree analyze --format json .       # Emit JSON to stdout
  scantree analyze --production .        # Exclude test/story files
  scantree analyze --strict .            # Runtime-only unlisted-dependency checks`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			req := domain.AnalysisRequest{
				TargetPath:             root,
				OutputFormat:           domain.OutputFormat(format),
				ConfigPath:             configPath,
				Recursive:              true,
				EntryPatterns:          entryPatterns,
				ExcludePatterns:        ignorePatterns,
				IgnoreDependencies:     ignoreDependencies,
				IgnoreBinaries:         ignoreBinaries,
				IncludeDevDependencies: includeDev,
				Production:             production,
				Strict:                 strict,
				UseCache:               true,
			}

			pm := service.NewProgressManager(progress && req.OutputFormat != domain.OutputFormatJSON)
			task := pm.StartTask("Analyzing project", 1)
			defer pm.Close()

			start := time.Now()
			svc := service.NewAnalysisService()
			result, err := svc.Analyze(context.Background(), req)
			task.Complete()
			if err != nil {
				return err
			}
			result.Stats.DurationMS = time.Since(start).Milliseconds()

			formatter := service.NewOutputFormatter()
			return formatter.Write(result, req.OutputFormat, os.Stdout)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(domain.OutputFormatText),
		"Output format: text, json, yaml, csv")
	cmd.Flags().StringVarP(&configPath, "config", "c", "",
		"Path to a scantree config file")
	cmd.Flags().StringSliceVar(&entryPatterns, "entry", nil,
		"Explicit entry-point globs (default: first of src/index.ts, src/main.ts, index.ts, ... plus package.json main)")
	cmd.Flags().StringSliceVar(&ignorePatterns, "ignore", nil,
		"Additional glob patterns excluded from discovery")
	cmd.Flags().StringSliceVar(&ignoreDependencies, "ignore-dependencies", nil,
		"Dependency names never reported as unused")
	cmd.Flags().StringSliceVar(&ignoreBinaries, "ignore-binaries", nil,
		"Command names never reported as an unlisted binary")
	cmd.Flags().BoolVar(&includeDev, "include-dev", false,
		"Also check devDependencies for use")
	cmd.Flags().BoolVar(&production, "production", false,
		"Exclude test and story files from discovery")
	cmd.Flags().BoolVar(&strict, "strict", false,
		"Restrict unlisted-dependency detection to runtime dependencies")
	cmd.Flags().BoolVar(&progress, "progress", true,
		"Show a progress indicator on an interactive terminal")

	return cmd
}
