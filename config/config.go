package config

import "time"

// Config collects all the settings of the server. Values are parsed
// from the environment with the STOREFRONT prefix.
type Config struct {
	Web       Web
	Cors      Cors
	DB        DB
	Session   Session
	Rate      Rate
	Assistant Assistant
}

type Web struct {
	Address         string        `conf:"default:0.0.0.0:3000"`
	ReadTimeout     time.Duration `conf:"default:5s"`
	WriteTimeout    time.Duration `conf:"default:10s"`
	IdleTimeout     time.Duration `conf:"default:120s"`
	ShutdownTimeout time.Duration `conf:"default:20s"`
}

type Cors struct {
	Origin string
}

type DB struct {
	User       string `conf:"default:postgres"`
	Password   string `conf:"default:postgres,mask"`
	Host       string `conf:"default:localhost"`
	Name       string `conf:"default:storefront"`
	DisableTLS bool   `conf:"default:true"`

	// InMemory switches the order log to the in-process store.
	// Meant for local runs and demos, orders don't survive a restart.
	InMemory bool `conf:"default:false"`
}

type Session struct {
	Lifetime time.Duration `conf:"default:24h"`
}

type Rate struct {
	RPS    float64       `conf:"default:20"`
	Burst  int           `conf:"default:40"`
	Expiry time.Duration `conf:"default:1h"`
}

type Assistant struct {
	APIKey  string        `conf:"mask"`
	Model   string        `conf:"default:gemini-3-flash-preview"`
	URL     string        `conf:"default:https://generativelanguage.googleapis.com"`
	Timeout time.Duration `conf:"default:30s"`
}
