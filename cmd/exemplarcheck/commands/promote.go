package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"exemplarcheck/pkg/core"
	"exemplarcheck/pkg/store"
	"exemplarcheck/pkg/validator"
)

// promote re-asks every exemplar's question and writes a new exemplar
// file with the model's current answers as ground truth.
func newPromoteCommand() *cobra.Command {
	var (
		exemplarsPath   string
		outputPath      string
		mode            string
		provider        string
		modelName       string
		mockResponse    string
		useCache        bool
		prefix          string
		exampleTemplate string
		suffix          string
		inputVar        string
	)

	cmd := &cobra.Command{
		Use:   "promote",
		Short: "Replay exemplars and write the model's answers back out",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := resolveString(exemplarsPath, appConfig.Exemplars)
			if path == "" {
				return errors.New("exemplars path is required")
			}
			if outputPath == "" {
				return errors.New("output path is required")
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

			progress := newProgressLine(progressWriter(cmd), set.Len())
			v.Progress = progress.Update

			var promoted []core.Exemplar
			switch runMode {
			case validator.ModeAblation:
				promoted, err = v.AblationExamples(context.Background())
			default:
				promoted, err = v.ReplayExamples(context.Background())
			}
			progress.Finish()
			if err != nil {
				return err
			}

			if err := store.Save(outputPath, promoted); err != nil {
				return err
			}
			logger.Info("promoted exemplars written",
				zap.String("path", outputPath),
				zap.Int("exemplars", len(promoted)),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&exemplarsPath, "exemplars", "", "path to exemplar file (json, jsonl, yaml)")
	cmd.Flags().StringVar(&outputPath, "output", "", "path for the promoted exemplar file")
	cmd.Flags().StringVar(&mode, "mode", "replay", "run mode (replay, ablation)")
	cmd.Flags().StringVar(&provider, "provider", "", "model provider (mock, openai, anthropic, gemini, ollama)")
	cmd.Flags().StringVar(&modelName, "model", "", "model name")
	cmd.Flags().StringVar(&mockResponse, "mock-response", "", "fixed mock response")
	cmd.Flags().BoolVar(&useCache, "cache", false, "cache model responses")
	cmd.Flags().StringVar(&prefix, "prefix", "", "prompt prefix")
	cmd.Flags().StringVar(&exampleTemplate, "example-template", "", "per-exemplar template")
	cmd.Flags().StringVar(&suffix, "suffix", "", "prompt suffix")
	cmd.Flags().StringVar(&inputVar, "input-variable", "", "input variable name")

	return cmd
}
