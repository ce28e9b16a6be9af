package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args (normally
// os.Args[1:]) using a dedicated flag set, so it can be called more than
// once in the same process.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-port server port used with 0.0.0.0 when -a is not given
//	-grpc-address grpc health server address in format [host]:[port]
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-static SPA bundle directory
//	-cors comma-separated CORS origins
//	-driver SQL driver (postgres, mysql, sqlite3)
//	-d database DSN
//	-connect-timeout database startup retry budget
//	-redis redis address for the history cache
//	-cache-ttl history cache TTL
//	-bcrypt-cost bcrypt work factor
//	-version application version
//	-log-level minimum log level
//	-server-url kiosk target server URL
//	-client-timeout kiosk request timeout
//	-health-interval database health probe interval
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("lateness-tracker", flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var port int
	var requestTimeout time.Duration
	var staticDir string
	var allowedOrigins string
	var driver string
	var databaseDSN string
	var connectTimeout time.Duration
	var redisAddress string
	var cacheTTL time.Duration
	var bcryptCost int
	var version string
	var logLevel string
	var serverURL string
	var clientTimeout time.Duration
	var healthInterval time.Duration
	var jsonConfigPath string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.IntVar(&port, "port", 0, "Port to listen on 0.0.0.0")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&staticDir, "static", "", "SPA bundle directory")
	fs.StringVar(&allowedOrigins, "cors", "", "Comma-separated CORS allowed origins")
	fs.StringVar(&driver, "driver", "", "SQL driver: postgres, mysql or sqlite3")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.DurationVar(&connectTimeout, "connect-timeout", 0, "Database connect retry budget")
	fs.StringVar(&redisAddress, "redis", "", "Redis address host:port")
	fs.DurationVar(&cacheTTL, "cache-ttl", 0, "History cache TTL")
	fs.IntVar(&bcryptCost, "bcrypt-cost", 0, "Bcrypt work factor")
	fs.StringVar(&version, "version", "", "Application version")
	fs.StringVar(&logLevel, "log-level", "", "Minimum log level (trace, debug, info, warn, error)")
	fs.StringVar(&serverURL, "server-url", "", "Kiosk target server URL")
	fs.DurationVar(&clientTimeout, "client-timeout", 0, "Kiosk request timeout")
	fs.DurationVar(&healthInterval, "health-interval", 0, "Database health probe interval")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			BcryptCost: bcryptCost,
			Version:    version,
			LogLevel:   logLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver:         driver,
				DSN:            databaseDSN,
				ConnectTimeout: connectTimeout,
			},
			Cache: Cache{
				RedisAddress: redisAddress,
				TTL:          cacheTTL,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
			StaticDir:      staticDir,
			AllowedOrigins: splitList(allowedOrigins),
		},
		Adapter: Adapter{
			HTTPAddress:    serverURL,
			RequestTimeout: clientTimeout,
		},
		Workers: Workers{
			HealthCheckInterval: healthInterval,
		},
		Port:         port,
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}
