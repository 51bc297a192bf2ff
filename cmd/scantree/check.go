package main

import (
	"context"
	"os"
	"time"

	"github.com/scantree/scantree/domain"
	"github.com/scantree/scantree/internal/version"
	"github.com/scantree/scantree/service"
	"github.com/spf13/cobra"
)

func checkCmd() *cobra.Command {
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
	)

	cmd := &cobra.Command{
		Use:   "check [path]",
		Short: "Exit non-zero if any unused code or dependency issues are found",
		Long: `Check runs the same analysis as "analyze" but reports its verdict through
the process exit code, for use in CI:

  0  the project is clean
  1  one or more diagnostics were found
  2  the run itself failed (bad config, unreadable paths, fatal error)`,
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

			start := time.Now()
			svc := service.NewAnalysisService()
			result, err := svc.Analyze(context.Background(), req)
			if err != nil {
				return domain.NewCheckExitError(err)
			}
			result.Stats.DurationMS = time.Since(start).Milliseconds()

			checkResult := domain.NewCheckResult(*result, version.GetVersion())

			formatter := service.NewOutputFormatter()
			if err := formatter.Write(result, req.OutputFormat, os.Stdout); err != nil {
				return domain.NewCheckExitError(err)
			}

			if !checkResult.Passed {
				return &domain.CheckExitError{Code: checkResult.ExitCode}
			}
			return nil
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

	return cmd
}
