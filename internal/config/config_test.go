package config

import (
	"testing"

	"gotest.tools/assert"
	is "gotest.tools/assert/cmp"
)

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("CONFIG_TEST_KEY", "value")
	assert.Equal(t, envOrDefault("CONFIG_TEST_KEY", "fallback"), "value")
	assert.Equal(t, envOrDefault("CONFIG_TEST_MISSING", "fallback"), "fallback")
}

func TestParseList(t *testing.T) {
	t.Setenv("CONFIG_TEST_LIST", " https://a.example , ,https://b.example ")
	assert.Assert(t, is.DeepEqual(parseList("CONFIG_TEST_LIST", nil), []string{"https://a.example", "https://b.example"}))

	t.Setenv("CONFIG_TEST_LIST", "  ")
	assert.Assert(t, is.DeepEqual(parseList("CONFIG_TEST_LIST", []string{"*"}), []string{"*"}))

	t.Setenv("CONFIG_TEST_LIST", ", ,")
	assert.Assert(t, is.DeepEqual(parseList("CONFIG_TEST_LIST", []string{"*"}), []string{"*"}))
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")

	cfg := Load()

	assert.Equal(t, cfg.Addr, ":8080")
	assert.Equal(t, cfg.Timezone, "Asia/Riyadh")
	assert.Equal(t, cfg.Collections.Nurseries, "nurseries")
	assert.Equal(t, cfg.Collections.Premium, "premium_nurseries")
	assert.Equal(t, cfg.JWT.Issuer, "mashatel-auth")
	assert.Equal(t, string(cfg.JWT.Secret), "test-secret")
	assert.Assert(t, cfg.Logger != nil)
}
