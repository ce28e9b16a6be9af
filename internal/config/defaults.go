package config

import "time"

// Built-in defaults applied after every other configuration source.
const (
	DefaultPort       = 3000
	DefaultListenHost = "0.0.0.0"

	DefaultDBDriver            = DriverPostgres
	DefaultConnectTimeout      = 30 * time.Second
	DefaultRequestTimeout      = 30 * time.Second
	DefaultStaticDir           = "dist"
	DefaultCacheTTL            = time.Minute
	DefaultBcryptCost          = 10
	DefaultVersion             = "dev"
	DefaultLogLevel            = "debug"
	DefaultAdapterAddress      = "http://localhost:3000"
	DefaultAdapterTimeout      = 10 * time.Second
	DefaultHealthCheckInterval = 15 * time.Second
)

// Supported values of [DB.Driver].
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite3"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			BcryptCost: DefaultBcryptCost,
			Version:    DefaultVersion,
			LogLevel:   DefaultLogLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver:         DefaultDBDriver,
				ConnectTimeout: DefaultConnectTimeout,
			},
			Cache: Cache{
				TTL: DefaultCacheTTL,
			},
		},
		Server: Server{
			RequestTimeout: DefaultRequestTimeout,
			StaticDir:      DefaultStaticDir,
			AllowedOrigins: []string{"*"},
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultAdapterTimeout,
		},
		Workers: Workers{
			HealthCheckInterval: DefaultHealthCheckInterval,
		},
		Port: DefaultPort,
	}
}
