package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	// Packages
	schema "github.com/mutablelogic/go-openai/pkg/schema"
	table "github.com/mutablelogic/go-openai/pkg/ui/table"
	term "golang.org/x/term"
	yaml "gopkg.in/yaml.v3"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	formatAuto     = "auto"
	formatTable    = "table"
	formatMarkdown = "markdown"
	formatJSON     = "json"
	formatYAML     = "yaml"
)

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// format returns the output format, which for "auto" is a table on a
// terminal and JSON otherwise
func (g *Globals) format() string {
	if g.Format != formatAuto && g.Format != "" {
		return g.Format
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return formatTable
	}
	return formatJSON
}

// write writes models to w in the given format
func write(w io.Writer, format string, models []schema.Model) error {
	switch format {
	case formatTable:
		_, err := fmt.Fprintln(w, table.Render(table.ModelTable(models)))
		return err
	case formatMarkdown:
		_, err := fmt.Fprintln(w, table.RenderMarkdown(table.ModelTable(models)))
		return err
	case formatJSON:
		data, err := json.MarshalIndent(models, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case formatYAML:
		return writeYAML(w, models)
	default:
		return fmt.Errorf("unsupported format: %q", format)
	}
}

// writeYAML writes v as YAML. The value is marshalled as JSON first, so
// fields which are only kept in Extra are written, and the JSON is parsed
// as a YAML document so numbers keep their original form.
func writeYAML(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return err
	}
	blockStyle(&node)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return err
	}
	return enc.Close()
}

// blockStyle clears the flow and quoting styles inherited from JSON
func blockStyle(node *yaml.Node) {
	node.Style = 0
	for _, child := range node.Content {
		blockStyle(child)
	}
}
