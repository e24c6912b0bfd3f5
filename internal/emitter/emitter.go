// Package emitter renders derived affixes as the generated TypeScript table
// consumed by the game client.
package emitter

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"text/template"

	"github.com/moasq/affixgen/internal/affix"
)

// DefaultFileName is the generated file name inside a locale directory.
const DefaultFileName = "pokemon-fusion-affixes.ts"

const fileTemplate = `import { FusionTranslationEntries } from "#app/interfaces/locales";

export const fusionAffixes: FusionTranslationEntries = {
  shouldReverse: "false",
{{- range .}}
  {{.Key}}: {
    fusionPrefix: "{{.Prefix}}",
    fusionSuffix: "{{.Suffix}}",
  },
{{- end}}
} as const;
`

var tmpl = template.Must(template.New("affixes").Parse(fileTemplate))

// Render returns the generated file contents for results, in order.
func Render(results []affix.Result) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, results); err != nil {
		return nil, fmt.Errorf("failed to render affixes: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile renders results and replaces path with them. The file is written
// to a temporary sibling first and renamed into place.
func WriteFile(path string, results []affix.Result) error {
	data, err := Render(results)
	if err != nil {
		return err
	}
	return writeAtomic(path, data)
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".affixgen-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	_ = os.Chmod(tmpPath, 0o644)
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

var swapPattern = regexp.MustCompile(`(fusionPrefix: ")(.*?)(",\n    fusionSuffix: ")(.*?)(")`)

// Swap exchanges the fusionPrefix and fusionSuffix value of every record in a
// generated file.
func Swap(src []byte) []byte {
	return swapPattern.ReplaceAll(src, []byte("${1}${4}${3}${2}${5}"))
}

// SwapFile applies Swap to the file at path in place.
func SwapFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	return writeAtomic(path, Swap(data))
}
