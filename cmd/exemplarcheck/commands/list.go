package commands

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// list enumerates what the tool can be pointed at: model providers, run
// modes, and report formats.
func newListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available providers, modes, and report formats",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "providers",
		Short: "List model providers",
		RunE: func(cmd *cobra.Command, args []string) error {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header([]string{"Provider", "Default Model", "Credentials"})
			table.Append([]string{"mock", "mock", "none"})
			table.Append([]string{"openai", "gpt-4o-mini", "OPENAI_API_KEY"})
			table.Append([]string{"anthropic", "claude-3-5-haiku-latest", "ANTHROPIC_API_KEY"})
			table.Append([]string{"gemini", "gemini-2.0-flash", "GEMINI_API_KEY"})
			table.Append([]string{"ollama", "llama2", "none (local server)"})
			table.Render()
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "modes",
		Short: "List run modes",
		RunE: func(cmd *cobra.Command, args []string) error {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header([]string{"Mode", "Description"})
			table.Append([]string{"replay", "re-ask each question through the full prompt"})
			table.Append([]string{"ablation", "re-ask each question with its own exemplar removed"})
			table.Render()
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "formats",
		Short: "List report formats",
		RunE: func(cmd *cobra.Command, args []string) error {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header([]string{"Format", "Description"})
			table.Append([]string{"diff", "per-exemplar diff blocks"})
			table.Append([]string{"table", "summary and per-exemplar tables"})
			table.Append([]string{"json", "full run report as JSON"})
			table.Append([]string{"markdown", "markdown report with summary tables"})
			table.Render()
			return nil
		},
	})

	return cmd
}
