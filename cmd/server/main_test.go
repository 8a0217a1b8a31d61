package main

import (
	"testing"

	"github.com/RaidanPro1/CPA-YePortal/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestStartupWarnings(t *testing.T) {
	cfg := &config.Config{}
	cfg.Session.Secret = config.DefaultSessionSecret

	warnings := startupWarnings(cfg, false)
	assert.Len(t, warnings, 3)
	assert.Contains(t, warnings[0], "cmd/create-admin")
	assert.Contains(t, warnings[1], "CPA_SESSION_SECRET")

	cfg.Session.Secret = "rotated"
	cfg.AI.APIKey = "key"
	assert.Empty(t, startupWarnings(cfg, true))
}
