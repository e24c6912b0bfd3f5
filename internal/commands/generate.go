package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moasq/affixgen/internal/service"
	"github.com/moasq/affixgen/internal/terminal"
)

func newGenerateCmd(opts *rootOptions) *cobra.Command {
	var (
		output string
		all    bool
		watch  bool
	)

	cmd := &cobra.Command{
		Use:   "generate [input]",
		Short: "Write pokemon-fusion-affixes.ts from a word list",
		Long: "Derive fusion affixes from a locale word list (default ./pokemon.ts) and overwrite the generated table next to it.\n" +
			"With --all every locale under the configured locales directory is regenerated.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.newService()
			if err != nil {
				return err
			}
			targets, err := jobs(svc, all, args, output)
			if err != nil {
				return err
			}

			if err := generateAll(cmd.Context(), svc, targets); err != nil {
				return err
			}
			if !watch {
				return nil
			}

			terminal.Info(fmt.Sprintf("Watching %d word list(s). Press Ctrl+C to stop.", len(targets)))
			return svc.Watch(cmd.Context(), targets, 0, func(r service.Report, err error) {
				if err != nil {
					terminal.Error(err.Error())
					return
				}
				printReport(r)
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default pokemon-fusion-affixes.ts next to the input)")
	cmd.Flags().BoolVar(&all, "all", false, "regenerate every locale under the locales directory")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "regenerate when an input file changes")
	return cmd
}

func generateAll(ctx context.Context, svc *service.Service, targets []service.Job) error {
	if len(targets) == 1 {
		r, err := svc.Generate(ctx, targets[0])
		if err != nil {
			return err
		}
		printReport(r)
		return nil
	}

	reports, err := svc.RunAll(ctx, targets, svc.Generate)
	if err != nil {
		return err
	}
	for i, r := range reports {
		terminal.Progress(i+1, len(reports), r.Locale)
		printReport(r)
	}
	return nil
}
