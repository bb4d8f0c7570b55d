package commands

import (
	"fmt"
	"net"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/writersblock/pkg/app"
	"tableflip.dev/writersblock/pkg/commands/options"
	"tableflip.dev/writersblock/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	mo := &options.MCPOptions{}

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "start the Model Context Protocol server",
		Long: `Launch an MCP server that exposes folders, entries, tags, statistics and the
writing calendar through the Model Context Protocol.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			stdio, err := mo.Stdio()
			if err != nil {
				return err
			}
			logger, err := mo.Logger()
			if err != nil {
				return err
			}

			runner := mcp.Runner{
				Name:             "writersblock",
				Version:          version,
				Log:              logger.WithField("component", "mcp"),
				Transport:        mcp.TransportStdio,
				HTTPEndpointPath: mo.EndpointPath(),
				HTTPServerCert:   strings.TrimSpace(mo.TLSCert),
				HTTPServerKey:    strings.TrimSpace(mo.TLSKey),
			}
			if !stdio {
				addr, err := mo.ListenAddr()
				if err != nil {
					return err
				}
				runner.Transport = mcp.TransportHTTP
				runner.HTTPListenAddr = addr
				runner.OnHTTPListening = func(a net.Addr) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "MCP HTTP server listening on %s\n", mo.URL(a))
				}
			}

			return withService(func(svc *app.Service) error {
				runner.Service = svc
				return runner.Do(cmd.Context())
			})
		},
	}

	options.AddMCPArgs(cmd, mo)
	topLevel.AddCommand(cmd)
}
