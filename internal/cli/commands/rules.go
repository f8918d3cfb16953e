package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cassis-lang/cassis/internal/cli/output"
	"github.com/cassis-lang/cassis/pkg/css"
	"github.com/cassis-lang/cassis/pkg/sexpr"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules <file>",
		Short: "Show the resolved rules of a source file",
		Long: `Show the flattened rules a source file compiles to, without
emitting CSS: each resolved selector with its declaration count.

Output adapts to environment:
  - Terminal: table
  - JSON: machine-readable format`,
		Example: `  # Inspect resolved rules
  cassis rules styles/site.csse

  # As JSON
  cassis rules styles/site.csse --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRules(cmd, args[0])
		},
	}

	return cmd
}

// ruleInfo is the JSON shape of one resolved rule.
type ruleInfo struct {
	Selector     string     `json:"selector"`
	Declarations []declInfo `json:"declarations"`
}

type declInfo struct {
	Property string `json:"property"`
	Value    string `json:"value"`
}

func runRules(cmd *cobra.Command, srcPath string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	doc, err := interpretFile(srcPath)
	if err != nil {
		return err
	}

	if r.EffectiveMode() == output.ModeJSON {
		infos := make([]ruleInfo, 0, len(doc.Rules))
		for _, rule := range doc.Rules {
			info := ruleInfo{Selector: rule.Selector}
			for _, d := range rule.Declarations {
				info.Declarations = append(info.Declarations, declInfo{Property: d.Property, Value: d.Value})
			}
			infos = append(infos, info)
		}
		enc := json.NewEncoder(r.Writer())
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Selector", "Declarations"})
	for i, rule := range doc.Rules {
		t.AppendRow(table.Row{i + 1, rule.Selector, len(rule.Declarations)})
	}
	t.Render()
	r.Printf("(%d rule(s))\n", len(doc.Rules))
	return nil
}

func interpretFile(path string) (*css.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	roots, err := sexpr.ParseString(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc, err := css.Interpret(roots)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
