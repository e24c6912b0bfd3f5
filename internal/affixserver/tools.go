package affixserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/text/language"

	"github.com/moasq/affixgen/internal/affix"
	"github.com/moasq/affixgen/internal/service"
	"github.com/moasq/affixgen/internal/wordlist"
)

type handlers struct {
	svc *service.Service
}

// deriveAffixesInput is the input for the derive_affixes tool.
type deriveAffixesInput struct {
	Names    []string `json:"names" jsonschema:"Display names to derive affixes for, in list order"`
	Strategy string   `json:"strategy,omitempty" jsonschema:"auto (default), alphabetic or universal"`
	Language string   `json:"language,omitempty" jsonschema:"BCP 47 tag used to lower-case suffixes, e.g. de or tr"`
}

type affixOutput struct {
	Name   string `json:"name"`
	Prefix string `json:"fusion_prefix"`
	Suffix string `json:"fusion_suffix"`
}

type deriveAffixesOutput struct {
	Strategy string        `json:"strategy"`
	Affixes  []affixOutput `json:"affixes"`
}

func (h *handlers) deriveAffixes(ctx context.Context, req *mcp.CallToolRequest, input deriveAffixesInput) (*mcp.CallToolResult, deriveAffixesOutput, error) {
	strategy, err := affix.ParseStrategy(input.Strategy)
	if err != nil {
		return nil, deriveAffixesOutput{}, err
	}
	a := affix.Latin()
	if input.Language != "" {
		tag, err := language.Parse(input.Language)
		if err != nil {
			return nil, deriveAffixesOutput{}, fmt.Errorf("invalid language %q: %w", input.Language, err)
		}
		a.Language = tag
	}

	entries := make([]wordlist.Entry, len(input.Names))
	for i, n := range input.Names {
		entries[i] = wordlist.Entry{Key: n, Name: n}
	}
	strategy = strategy.Resolve(input.Names)
	results, err := affix.NewDeriver(a, strategy, nil).Derive(ctx, entries)
	if err != nil {
		return nil, deriveAffixesOutput{}, err
	}

	out := deriveAffixesOutput{Strategy: string(strategy), Affixes: make([]affixOutput, len(results))}
	for i, r := range results {
		out.Affixes[i] = affixOutput{Name: r.Name, Prefix: r.Prefix, Suffix: r.Suffix}
	}
	return nil, out, nil
}

// fileInput is the input for the generate_affixes and check_affixes tools.
type fileInput struct {
	Input  string `json:"input" jsonschema:"Path to the locale word list, e.g. src/locales/de/pokemon.ts"`
	Output string `json:"output,omitempty" jsonschema:"Path of the generated file. Defaults to pokemon-fusion-affixes.ts next to the input"`
}

type fileOutput struct {
	Message  string `json:"message"`
	Output   string `json:"output"`
	Entries  int    `json:"entries"`
	Strategy string `json:"strategy"`
	UpToDate bool   `json:"up_to_date"`
}

func (h *handlers) generateAffixes(ctx context.Context, req *mcp.CallToolRequest, input fileInput) (*mcp.CallToolResult, fileOutput, error) {
	if input.Input == "" {
		return nil, fileOutput{}, fmt.Errorf("input path is required")
	}
	r, err := h.svc.Generate(ctx, h.svc.JobFor(input.Input, input.Output))
	if err != nil {
		return nil, fileOutput{}, err
	}
	return nil, fileOutput{
		Message:  fmt.Sprintf("Wrote %d entries to %s", r.Entries, r.Output),
		Output:   r.Output,
		Entries:  r.Entries,
		Strategy: string(r.Strategy),
		UpToDate: true,
	}, nil
}

func (h *handlers) checkAffixes(ctx context.Context, req *mcp.CallToolRequest, input fileInput) (*mcp.CallToolResult, fileOutput, error) {
	if input.Input == "" {
		return nil, fileOutput{}, fmt.Errorf("input path is required")
	}
	r, err := h.svc.Check(ctx, h.svc.JobFor(input.Input, input.Output))
	if err != nil && !errors.Is(err, service.ErrStale) {
		return nil, fileOutput{}, err
	}
	out := fileOutput{
		Output:   r.Output,
		Entries:  r.Entries,
		Strategy: string(r.Strategy),
		UpToDate: err == nil,
	}
	if out.UpToDate {
		out.Message = fmt.Sprintf("%s is up to date", r.Output)
	} else {
		out.Message = fmt.Sprintf("%s is out of date; run generate_affixes", r.Output)
	}
	return nil, out, nil
}
