package env

import (
	"fmt"
	"net"
	"os"
	"time"

	"baccarat_sim/internal/config"
)

const (
	httpHostEnvName        = "HTTP_HOST"
	httpPortEnvName        = "HTTP_PORT"
	httpReadTimeoutEnvName = "HTTP_READ_TIMEOUT"

	defaultHTTPPort        = "8080"
	defaultHTTPReadTimeout = 10 * time.Second
)

type httpConfig struct {
	host        string
	port        string
	readTimeout time.Duration
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	port := os.Getenv(httpPortEnvName)
	if len(port) == 0 {
		port = defaultHTTPPort
	}

	readTimeout := defaultHTTPReadTimeout
	if raw := os.Getenv(httpReadTimeoutEnvName); len(raw) != 0 {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid http read timeout: %w", err)
		}
		readTimeout = parsed
	}

	return &httpConfig{
		host:        os.Getenv(httpHostEnvName),
		port:        port,
		readTimeout: readTimeout,
	}, nil
}

func (cfg *httpConfig) Address() string {
	return net.JoinHostPort(cfg.host, cfg.port)
}

func (cfg *httpConfig) ReadTimeout() time.Duration {
	return cfg.readTimeout
}
