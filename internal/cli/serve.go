// internal/cli/serve.go
package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/mwiater/mealdb/internal/appconfig"
	"github.com/mwiater/mealdb/internal/logging"
	"github.com/mwiater/mealdb/internal/server"
)

// serveCmd runs the MCP server on the configured transport until the host
// disconnects or the process is interrupted.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MealDB MCP server",
	Long: `Run the MealDB MCP server. The default stdio transport speaks newline-delimited
JSON-RPC via the MCP SDK; "framed" speaks Content-Length framed JSON-RPC; "http"
exposes the tools over a small REST surface.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runServe(ctx, GetConfig())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(ctx context.Context, cfg *appconfig.Config) error {
	name, version := cfg.Implementation()
	info := server.Info{Name: name, Version: version}
	d := newDispatcher()

	logging.LogEvent("%s %s starting: transport=%s baseURL=%s", name, version, cfg.TransportMode(), cfg.BaseURLOrDefault())

	switch cfg.TransportMode() {
	case appconfig.TransportStdio:
		if err := server.RunSDK(ctx, d, info, &mcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("stdio transport: %w", err)
		}
	case appconfig.TransportFramed:
		if err := server.NewFramedServer(d, info).Serve(ctx, os.Stdin, os.Stdout); err != nil {
			return fmt.Errorf("framed transport: %w", err)
		}
	case appconfig.TransportHTTP:
		srv := server.NewHTTPServer(cfg.HTTPAddrOrDefault(), d, info)
		go func() {
			<-ctx.Done()
			_ = srv.Shutdown(context.Background())
		}()
		logging.LogEvent("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http transport: %w", err)
		}
	default:
		return fmt.Errorf("unsupported transport %q", cfg.Transport)
	}

	logging.LogEvent("%s stopped", name)
	return nil
}
