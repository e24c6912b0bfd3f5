package commands

import (
	"github.com/spf13/cobra"

	"github.com/moasq/affixgen/internal/affixserver"
)

func newMCPCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:    "mcp",
		Short:  "Run the affix MCP server over stdio",
		Long:   "Starts an MCP server over stdio exposing derive_affixes, generate_affixes and check_affixes tools.",
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.newService()
			if err != nil {
				return err
			}
			return affixserver.Run(cmd.Context(), svc, Version)
		},
	}
}
