package http

import (
	"testing"
	"time"

	"haven/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestApplyTimeouts(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTP.Timeouts.ReadTimeout = 5 * time.Second
	cfg.HTTP.Timeouts.ReadHeaderTimeout = 2 * time.Second
	cfg.HTTP.Timeouts.WriteTimeout = 10 * time.Second
	cfg.HTTP.Timeouts.IdleTimeout = 60 * time.Second

	e := echo.New()
	applyTimeouts(e, cfg)

	assert.Equal(t, 5*time.Second, e.Server.ReadTimeout)
	assert.Equal(t, 2*time.Second, e.Server.ReadHeaderTimeout)
	assert.Equal(t, 10*time.Second, e.Server.WriteTimeout)
	assert.Equal(t, 60*time.Second, e.Server.IdleTimeout)
}

func TestApplyTimeouts_ZeroConfigKeepsDefaults(t *testing.T) {
	e := echo.New()
	applyTimeouts(e, &config.Config{})

	assert.Zero(t, e.Server.ReadTimeout)
	assert.Zero(t, e.Server.WriteTimeout)
}
