package options

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// MCPOptions configure the mcp server command.
type MCPOptions struct {
	Transport string
	Host      string
	Port      int
	Path      string
	TLSCert   string
	TLSKey    string
	LogLevel  string
}

func AddMCPArgs(cmd *cobra.Command, o *MCPOptions) {
	f := cmd.Flags()
	f.StringVar(&o.Transport, "transport", "http", "Transport to serve on: http or stdio.")
	f.StringVar(&o.Host, "http-host", "127.0.0.1", "Interface the HTTP transport binds to.")
	f.IntVar(&o.Port, "http-port", 8080, "Port for the HTTP transport, 0 picks a free one.")
	f.StringVar(&o.Path, "http-path", "/mcp", "Endpoint path for the HTTP transport.")
	f.StringVar(&o.TLSCert, "http-tls-cert", "", "Certificate file, serves HTTPS together with --http-tls-key.")
	f.StringVar(&o.TLSKey, "http-tls-key", "", "Private key file for --http-tls-cert.")
	f.StringVar(&o.LogLevel, "log-level", "info", "Level of the request log on stderr: debug, info, warn or error.")
}

// Stdio reports whether the stdio transport was chosen.
func (o *MCPOptions) Stdio() (bool, error) {
	switch strings.ToLower(strings.TrimSpace(o.Transport)) {
	case "", "http":
		return false, nil
	case "stdio":
		return true, nil
	}
	return false, fmt.Errorf("unsupported transport %q (expected http or stdio)", o.Transport)
}

// EndpointPath is --http-path with a leading slash.
func (o *MCPOptions) EndpointPath() string {
	p := strings.TrimSpace(o.Path)
	if p == "" {
		return "/mcp"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

// ListenAddr joins host and port.
func (o *MCPOptions) ListenAddr() (string, error) {
	if o.Port < 0 || o.Port > 65535 {
		return "", fmt.Errorf("invalid http-port %d", o.Port)
	}
	return net.JoinHostPort(o.host(), strconv.Itoa(o.Port)), nil
}

func (o *MCPOptions) host() string {
	if h := strings.TrimSpace(o.Host); h != "" {
		return h
	}
	return "127.0.0.1"
}

// TLS is true once both certificate and key are given.
func (o *MCPOptions) TLS() bool {
	return strings.TrimSpace(o.TLSCert) != "" && strings.TrimSpace(o.TLSKey) != ""
}

// Logger builds the stderr request logger.
func (o *MCPOptions) Logger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(o.LogLevel)
	if err != nil {
		return nil, err
	}
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l, nil
}

// URL is the address clients should dial for the bound listener. An
// unspecified host shows as the bound IP or loopback.
func (o *MCPOptions) URL(a net.Addr) string {
	path := o.EndpointPath()
	tcp, ok := a.(*net.TCPAddr)
	if !ok {
		return a.String() + path
	}

	host := o.host()
	if host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
		if tcp.IP != nil && !tcp.IP.IsUnspecified() {
			host = tcp.IP.String()
		}
	}

	scheme := "http"
	if o.TLS() {
		scheme = "https"
	}
	return scheme + "://" + net.JoinHostPort(host, strconv.Itoa(tcp.Port)) + path
}
