package commands

import (
	"fmt"

	"github.com/moasq/affixgen/internal/service"
	"github.com/moasq/affixgen/internal/terminal"
)

// defaultInput is the word list read when no path is given.
const defaultInput = "pokemon.ts"

// jobs resolves the command's target: every discovered locale with --all,
// otherwise the single input (default pokemon.ts) and optional output.
func jobs(svc *service.Service, all bool, args []string, output string) ([]service.Job, error) {
	if all {
		if len(args) > 0 || output != "" {
			return nil, fmt.Errorf("--all cannot be combined with an input path or --output")
		}
		found, err := svc.Discover()
		if err != nil {
			return nil, err
		}
		if len(found) == 0 {
			terminal.Warning("No locale word lists found.")
		}
		return found, nil
	}

	input := defaultInput
	if len(args) > 0 {
		input = args[0]
	}
	return []service.Job{svc.JobFor(input, output)}, nil
}

func printReport(r service.Report) {
	status := "unchanged"
	if r.Changed {
		status = "updated"
	}
	terminal.Success(fmt.Sprintf("%s (%s)", r.Output, status))
	terminal.Detail("entries", fmt.Sprintf("%d", r.Entries))
	terminal.Detail("strategy", string(r.Strategy))
}
