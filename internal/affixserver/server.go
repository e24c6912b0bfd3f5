// Package affixserver exposes affix derivation as MCP tools over stdio.
package affixserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/moasq/affixgen/internal/service"
)

// Run starts the affix MCP server over stdio.
// It blocks until the client disconnects or the context is cancelled.
func Run(ctx context.Context, svc *service.Service, version string) error {
	return NewServer(svc, version).Run(ctx, &mcp.StdioTransport{})
}

// NewServer builds the MCP server with every affix tool registered.
func NewServer(svc *service.Service, version string) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "affixgen",
			Version: version,
		},
		nil,
	)

	h := &handlers{svc: svc}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "derive_affixes",
		Description: "Derive fusion prefixes and suffixes for a list of names. Each name is compared with every other name in the list, so pass the whole list at once. Example: derive_affixes(names: [\"Charmander\", \"Charmeleon\", \"Charizard\"])",
	}, h.deriveAffixes)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_affixes",
		Description: "Read a locale word list (lines like `key: \"Name\",`) and write the generated pokemon-fusion-affixes.ts table. The output defaults to the file next to the input. Overwrites the output.",
	}, h.generateAffixes)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "check_affixes",
		Description: "Report whether a generated affix table is up to date with its word list. Read-only.",
	}, h.checkAffixes)

	return server
}
