package cmd

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"github.com/theapemachine/a2a-bridge/pkg/a2a"
	"github.com/theapemachine/a2a-bridge/pkg/bridge"
	"github.com/theapemachine/a2a-bridge/pkg/registry"
	"github.com/theapemachine/a2a-bridge/pkg/service"
	"github.com/theapemachine/a2a-bridge/pkg/tools"
	"github.com/theapemachine/a2a-bridge/pkg/upstream"
)

var (
	portFlag int
	hostFlag string

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the bridge services",
		Long:  longServe,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	bridgeCmd = &cobra.Command{
		Use:   "bridge",
		Short: "Serve the inbound A2A endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := bridge.NewConfigFromViper()

			if cmd.Flags().Changed("port") {
				cfg.Port = portFlag
			}

			if cmd.Flags().Changed("host") {
				cfg.Host = hostFlag
			}

			card := a2a.NewAgentCardFromConfig(cfg.CallableURL(), cfg.Secret != "")
			completer := upstream.NewClient(cfg.UpstreamURL, cfg.UpstreamModel, cfg.UpstreamToken)
			dispatcher := bridge.NewDispatcher(cfg, bridge.NewTranslator(completer))

			return service.NewBridgeServer(cfg, card, dispatcher).Start()
		},
	}

	mcpCmd = &cobra.Command{
		Use:   "mcp",
		Short: "Serve the agent tools over MCP stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := server.NewMCPServer(
				projectName,
				"0.1.0",
				server.WithLogging(),
			)

			tools.NewAgentTools(registry.NewFromConfig()).Register(s)
			return server.ServeStdio(s)
		},
	}
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.AddCommand(bridgeCmd)
	serveCmd.AddCommand(mcpCmd)

	serveCmd.PersistentFlags().IntVarP(&portFlag, "port", "p", 3210, "Port to serve on")
	serveCmd.PersistentFlags().StringVarP(&hostFlag, "host", "H", "0.0.0.0", "Host address to bind to")
}

var longServe = `
Serve the A2A bridge endpoint or the MCP tool surface.

Examples:
  # Serve the A2A endpoint on port 8080
  a2a-bridge serve bridge --port 8080

  # Serve the agent tools to the local assistant over stdio
  a2a-bridge serve mcp
`
