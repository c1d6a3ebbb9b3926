// internal/cli/call.go
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"

	"github.com/mwiater/mealdb/mcp/tools"
)

var (
	callJSON  bool
	callDump bool
)

// callCmd invokes one tool against the live API and prints the result.
var callCmd = &cobra.Command{
	Use:   "call <tool> [key=value ...]",
	Short: "Call a single tool and print its result",
	Long: `Call a single MealDB tool by name. Arguments are passed as key=value pairs,
for example: mealdb call search_meals query=arrabiata`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := parseCallArgs(args)
		if err != nil {
			return err
		}
		res := newDispatcher().Call(cmd.Context(), req)
		return printResult(cmd.OutOrStdout(), req, res)
	},
}

func init() {
	callCmd.Flags().BoolVar(&callJSON, "json", false, "print the raw MCP result as JSON")
	callCmd.Flags().BoolVar(&callDump, "dump", false, "pretty-print the request and result structures")
	rootCmd.AddCommand(callCmd)
}

// parseCallArgs turns "tool key=value ..." into a CallRequest.
func parseCallArgs(args []string) (tools.CallRequest, error) {
	req := tools.CallRequest{Name: args[0], Arguments: map[string]any{}}
	for _, kv := range args[1:] {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return tools.CallRequest{}, fmt.Errorf("invalid argument %q: expected key=value", kv)
		}
		req.Arguments[key] = value
	}
	return req, nil
}

func printResult(out io.Writer, req tools.CallRequest, res tools.Result) error {
	if callDump {
		pp.ColoringEnabled = false
		pp.Fprintln(out, req)
		pp.Fprintln(out, res)
	}

	if callJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(res)
	}

	text := res.Text()
	switch {
	case res.IsError:
		fmt.Fprintln(out, color.RedString(text))
	case res.NotFound:
		fmt.Fprintln(out, color.YellowString(text))
	default:
		fmt.Fprintln(out, text)
	}
	return nil
}
