package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moasq/affixgen/internal/emitter"
	"github.com/moasq/affixgen/internal/terminal"
)

func newSwapCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "swap <file>",
		Short: "Swap prefixes and suffixes in a generated file",
		Long:  "Exchange every fusionPrefix and fusionSuffix value in an existing pokemon-fusion-affixes.ts, in place.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := emitter.SwapFile(args[0]); err != nil {
				return err
			}
			terminal.Success(fmt.Sprintf("Swapped affixes in %s", args[0]))
			return nil
		},
	}
}
