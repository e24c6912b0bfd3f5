package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moasq/affixgen/internal/service"
	"github.com/moasq/affixgen/internal/terminal"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	var (
		output string
		all    bool
	)

	cmd := &cobra.Command{
		Use:   "check [input]",
		Short: "Verify generated affixes are up to date",
		Long:  "Derive affixes in memory and compare them with the generated file on disk. Exits non-zero when any file is missing or stale.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.newService()
			if err != nil {
				return err
			}
			targets, err := jobs(svc, all, args, output)
			if err != nil {
				return err
			}

			reports, err := svc.RunAll(cmd.Context(), targets, svc.Check)
			if err != nil && !errors.Is(err, service.ErrStale) {
				return err
			}
			stale := 0
			for _, r := range reports {
				if r.Changed {
					stale++
					terminal.Error(fmt.Sprintf("%s is out of date", r.Output))
					continue
				}
				terminal.Success(fmt.Sprintf("%s is up to date", r.Output))
			}
			if stale > 0 {
				terminal.Info("Run `affixgen generate` to refresh.")
				return fmt.Errorf("%d of %d file(s): %w", stale, len(reports), service.ErrStale)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "generated file to compare (default pokemon-fusion-affixes.ts next to the input)")
	cmd.Flags().BoolVar(&all, "all", false, "check every locale under the locales directory")
	return cmd
}
