package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"exemplarcheck/pkg/core"
	"exemplarcheck/pkg/session"
	"exemplarcheck/pkg/store"
)

// query sends a single question through the assembled few-shot prompt
// and prints the cleaned answer.
func newQueryCommand() *cobra.Command {
	var (
		exemplarsPath   string
		provider        string
		modelName       string
		mockResponse    string
		useCache        bool
		showPrompt      bool
		prefix          string
		exampleTemplate string
		suffix          string
		inputVar        string
	)

	cmd := &cobra.Command{
		Use:   "query <question>",
		Short: "Ask a question against the few-shot prompt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := args[0]

			sess := session.New()
			sess.SetPrompt(resolvePromptSpec(prefix, exampleTemplate, suffix, inputVar))

			path := resolveString(exemplarsPath, appConfig.Exemplars)
			if path != "" {
				exemplars, err := store.Load(path)
				if err != nil {
					return err
				}
				set, err := core.NewSet(exemplars)
				if err != nil {
					return err
				}
				keys := set.Keys()
				for _, ex := range set.Items() {
					q, _ := ex.Get(keys.Question)
					a, _ := ex.Get(keys.Answer)
					if err := sess.AddExemplar(q, a); err != nil {
						return err
					}
				}
			}

			if showPrompt {
				rendered, err := sess.Render(question)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), rendered)
				return nil
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

			logger.Debug("querying model",
				zap.String("model", evalModel.Name()),
				zap.Int("exemplars", len(sess.Exemplars())),
			)

			answer, err := sess.Query(context.Background(), evalModel, question, core.GenerateOptions{})
			if err != nil {
				return err
			}
			if answer == "" {
				return errors.New("model returned an empty answer")
			}
			fmt.Fprintln(cmd.OutOrStdout(), answer)
			return nil
		},
	}

	cmd.Flags().StringVar(&exemplarsPath, "exemplars", "", "path to exemplar file (json, jsonl, yaml)")
	cmd.Flags().StringVar(&provider, "provider", "", "model provider (mock, openai, anthropic, gemini, ollama)")
	cmd.Flags().StringVar(&modelName, "model", "", "model name")
	cmd.Flags().StringVar(&mockResponse, "mock-response", "", "fixed mock response")
	cmd.Flags().BoolVar(&useCache, "cache", false, "cache model responses")
	cmd.Flags().BoolVar(&showPrompt, "show-prompt", false, "print the assembled prompt instead of querying")
	cmd.Flags().StringVar(&prefix, "prefix", "", "prompt prefix")
	cmd.Flags().StringVar(&exampleTemplate, "example-template", "", "per-exemplar template")
	cmd.Flags().StringVar(&suffix, "suffix", "", "prompt suffix")
	cmd.Flags().StringVar(&inputVar, "input-variable", "", "input variable name")

	return cmd
}
