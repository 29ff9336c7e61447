package commands

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"exemplarcheck/pkg/core"
	"exemplarcheck/pkg/runlog"
	"exemplarcheck/pkg/store"
	"exemplarcheck/pkg/validator"
)

func newCheckCommand() *cobra.Command {
	var (
		exemplarsPath   string
		mode            string
		provider        string
		modelName       string
		mockResponse    string
		format          string
		outputPath      string
		logDir          string
		writeLog        bool
		useCache        bool
		rps             float64
		prefix          string
		exampleTemplate string
		suffix          string
		inputVar        string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Replay or ablate an exemplar set and report the diffs",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := resolveString(exemplarsPath, appConfig.Exemplars)
			if path == "" {
				return errors.New("exemplars path is required")
			}

			runMode := validator.Mode(mode)
			if runMode != validator.ModeReplay && runMode != validator.ModeAblation {
				return errors.New("mode must be replay or ablation")
			}

			exemplars, err := store.Load(path)
			if err != nil {
				return err
			}
			set, err := core.NewSet(exemplars)
			if err != nil {
				return err
			}

			providerResolved := resolveString(provider, resolveString(appConfig.Provider, "mock"))
			mockResolved := resolveString(mockResponse, appConfig.Model.MockResponse)
			evalModel, err := buildModel(providerResolved, resolveString(modelName, appConfig.Model.Name), mockResolved)
			if err != nil {
				return err
			}
			evalModel, err = maybeCache(evalModel, useCache)
			if err != nil {
				return err
			}

			v := validator.Validator{
				Exemplars: set.Items(),
				Spec:      resolvePromptSpec(prefix, exampleTemplate, suffix, inputVar),
				Model:     evalModel,
			}

			rpsResolved := rps
			if rpsResolved <= 0 {
				rpsResolved = appConfig.RPS
			}
			if rpsResolved > 0 {
				limiter, stop, err := core.NewRateLimiter(rpsResolved, 1)
				if err != nil {
					return err
				}
				defer stop()
				v.Limiter = limiter
			}

			progress := newProgressLine(progressWriter(cmd), set.Len())
			v.Progress = progress.Update

			logger.Info("starting run",
				zap.String("mode", string(runMode)),
				zap.String("provider", providerResolved),
				zap.Int("exemplars", set.Len()),
			)

			runReport, err := v.Run(context.Background(), runMode)
			progress.Finish()
			if err != nil {
				return err
			}

			writer := os.Stdout
			if outputResolved := resolveString(outputPath, appConfig.Output); outputResolved != "" {
				file, err := os.Create(outputResolved)
				if err != nil {
					return err
				}
				defer file.Close()
				writer = file
			}

			formatResolved := resolveString(format, resolveString(appConfig.Format, "diff"))
			rep, err := buildReporter(formatResolved, writer)
			if err != nil {
				return err
			}
			if err := rep.Report(runReport); err != nil {
				return err
			}

			if writeLog {
				dir := resolveString(logDir, resolveString(appConfig.LogDir, "./logs"))
				task := filepath.Base(path)
				logPath, err := runlog.Write(dir, runlog.FromReport(task, runReport))
				if err != nil {
					return err
				}
				logger.Info("run log written", zap.String("path", logPath))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&exemplarsPath, "exemplars", "", "path to exemplar file (json, jsonl, yaml)")
	cmd.Flags().StringVar(&mode, "mode", "replay", "run mode (replay, ablation)")
	cmd.Flags().StringVar(&provider, "provider", "", "model provider (mock, openai, anthropic, gemini, ollama)")
	cmd.Flags().StringVar(&modelName, "model", "", "model name")
	cmd.Flags().StringVar(&mockResponse, "mock-response", "", "fixed mock response")
	cmd.Flags().StringVar(&format, "format", "", "output format (diff, table, json, markdown)")
	cmd.Flags().StringVar(&outputPath, "output", "", "output file path")
	cmd.Flags().StringVar(&logDir, "log-dir", "", "directory for run logs")
	cmd.Flags().BoolVar(&writeLog, "log", false, "write a run log")
	cmd.Flags().BoolVar(&useCache, "cache", false, "cache model responses")
	cmd.Flags().Float64Var(&rps, "rps", 0, "max model calls per second")
	cmd.Flags().StringVar(&prefix, "prefix", "", "prompt prefix")
	cmd.Flags().StringVar(&exampleTemplate, "example-template", "", "per-exemplar template, e.g. \"Q: {{question}}\\nA: {{answer}}\"")
	cmd.Flags().StringVar(&suffix, "suffix", "", "prompt suffix, e.g. \"Q: {{input}}\"")
	cmd.Flags().StringVar(&inputVar, "input-variable", "", "input variable name")

	return cmd
}
