package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type (
	Mongo struct {
		// URL and Name intentionally keep their exact variable names; the
		// /test diagnostic reports whether they are set without exposing
		// their values.
		URL  string `envconfig:"DATABASE_URL" default:"mongodb://localhost:27017"`
		Name string `envconfig:"DATABASE_NAME" default:"english_for_kids"`
	}

	HTTP struct {
		ProcessTimeout time.Duration `envconfig:"PROCESS_TIMEOUT" default:"10s"`
		RateLimit      float64       `envconfig:"RATE_LIMIT" default:"25"`
	}

	Server struct {
		ReadHeaderTimeout time.Duration `envconfig:"READ_HEADER_TIMEOUT" default:"10s"`
		Addr              string        `envconfig:"ADDR" default:":8000"`
	}

	API struct {
		Dev    bool `envconfig:"DEV" default:"false"`
		Mongo  Mongo
		HTTP   HTTP
		Server Server
	}
)

func NewAPI() (*API, error) {
	var res API
	if err := envconfig.Process("", &res); err != nil {
		return nil, fmt.Errorf("parse api environment: %w", err)
	}

	return &res, nil
}
