// internal/cli/list_tools.go
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mwiater/mealdb/internal/tui"
	"github.com/mwiater/mealdb/mcp/tools"
)

var toolsFormat string

// listToolsCmd prints the tool catalog that MCP hosts discover.
var listToolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the MCP tools and their arguments",
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeTools(cmd.OutOrStdout(), toolsFormat, tools.NewRegistry().Definitions())
	},
}

func init() {
	listToolsCmd.Flags().StringVar(&toolsFormat, "format", "text", "output format: text, json, or yaml")
	listCmd.AddCommand(listToolsCmd)
}

func writeTools(out io.Writer, format string, defs []tools.Definition) error {
	switch strings.ToLower(format) {
	case "", "text":
		fmt.Fprintln(out, tui.RenderTools(defs))
		return nil
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{"tools": defs})
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(map[string]any{"tools": defs})
	default:
		return fmt.Errorf("unknown format %q: must be text, json, or yaml", format)
	}
}
