package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moasq/affixgen/internal/terminal"
)

func newShowCmd(opts *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "show [input]",
		Short: "Print derived affixes as a table",
		Long:  "Derive affixes from a word list and print them without writing any file.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.newService()
			if err != nil {
				return err
			}
			input := defaultInput
			if len(args) > 0 {
				input = args[0]
			}

			results, strategy, err := svc.Derive(cmd.Context(), svc.JobFor(input, ""))
			if err != nil {
				return err
			}

			shown := results
			if limit > 0 && len(shown) > limit {
				shown = shown[:limit]
			}
			rows := make([][]string, len(shown))
			for i, r := range shown {
				rows[i] = []string{r.Key, r.Name, r.Prefix, r.Suffix}
			}
			terminal.Table([]string{"Key", "Name", "Prefix", "Suffix"}, rows)
			terminal.Detail("strategy", string(strategy))
			terminal.Detail("entries", fmt.Sprintf("%d", len(results)))
			if len(shown) < len(results) {
				terminal.Detail("shown", fmt.Sprintf("%d", len(shown)))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show at most n rows (0 = all)")
	return cmd
}
