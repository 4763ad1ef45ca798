package config

import (
	"errors"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements pflag.Value.
type NetAddress struct {
	Host string
	Port int
}

// BindFlags registers configuration flags on fs and returns the config they
// populate once fs is parsed. The same flag set backs the cobra commands.
//
// Flags:
//
//	-c, --config            json file path with configs
//	    --api-url           API base URL
//	    --request-timeout   outbound request timeout (e.g. "30s")
//	    --session-db        session SQLite file
//	    --session-secret    secret sealing stored tokens
//	    --poll-interval     notification polling period
//	    --log-level         debug | info | warn | error
//	    --log-file          CLI log file
//	-a, --address           sandbox listen address host:port
//	    --token-sign-key    sandbox token signing key
//	    --no-seed           start the sandbox empty
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}
	addr := &netAddressFlag{target: &cfg.Server.HTTPAddress}

	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")
	fs.StringVar(&cfg.Adapter.BaseURL, "api-url", "", "API base URL")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.Storage.Session.DSN, "session-db", "", "Session database file")
	fs.StringVar(&cfg.Storage.Session.Secret, "session-secret", "", "Secret sealing stored tokens")
	fs.DurationVar(&cfg.Workers.PollInterval, "poll-interval", 0, "Notification polling interval")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.StringVar(&cfg.App.LogFile, "log-file", "", "Log file path")
	fs.VarP(addr, "address", "a", "Sandbox net address host:port")
	fs.StringVar(&cfg.Server.TokenSignKey, "token-sign-key", "", "Sandbox token signing key")
	fs.BoolVar(&cfg.Server.NoSeed, "no-seed", false, "Start the sandbox without demo data")

	return cfg
}

// netAddressFlag validates an address flag and stores its canonical form.
type netAddressFlag struct {
	addr   NetAddress
	target *string
}

func (f *netAddressFlag) String() string { return f.addr.String() }
func (f *netAddressFlag) Type() string   { return "host:port" }

func (f *netAddressFlag) Set(s string) error {
	if err := f.addr.Set(s); err != nil {
		return err
	}
	*f.target = f.addr.String()
	return nil
}

// String returns a canonical host:port string for a NetAddress, or "" when
// neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string { return "host:port" }

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in 1..65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
