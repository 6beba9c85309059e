package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.False(t, cfg.ViewShare)
	assert.True(t, cfg.AutoActivate)
	assert.True(t, cfg.ActivateParents)
	assert.Equal(t, "active", cfg.ActiveClass)
	assert.False(t, cfg.Restful)
	assert.Empty(t, cfg.RestBase)
	assert.Equal(t, ActiveItem, cfg.ActiveElement)
	assert.NoError(t, cfg.Validate())
}

func TestConfigOverride(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Override(OptViewShare, true))
	require.NoError(t, cfg.Override("Restful", true))
	require.NoError(t, cfg.Override(OptActiveClass, "current"))
	require.NoError(t, cfg.Override(OptRestBase, "admin"))
	require.NoError(t, cfg.Override(OptActiveElement, "link"))

	assert.True(t, cfg.ViewShare)
	assert.True(t, cfg.Restful)
	assert.Equal(t, "current", cfg.ActiveClass)
	assert.Equal(t, RestBase{"admin"}, cfg.RestBase)
	assert.Equal(t, ActiveLink, cfg.ActiveElement)

	require.NoError(t, cfg.Override(OptRestBase, []any{"admin", "api"}))
	assert.Equal(t, RestBase{"admin", "api"}, cfg.RestBase)

	v, ok := cfg.Get(OptActiveClass)
	require.True(t, ok)
	assert.Equal(t, "current", v)

	_, ok = cfg.Get("cascade")
	assert.False(t, ok)
}

func TestConfigOverrideErrors(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   any
		wantErr error
	}{
		{name: "unknown key", key: "cascade", value: true, wantErr: ErrUnknownOption},
		{name: "bool expected", key: OptAutoActivate, value: "yes", wantErr: ErrInvalidOption},
		{name: "string expected", key: OptActiveClass, value: 1, wantErr: ErrInvalidOption},
		{name: "bad element", key: OptActiveElement, value: "span", wantErr: ErrInvalidOption},
		{name: "bad rest base", key: OptRestBase, value: []any{1}, wantErr: ErrInvalidOption},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			err := cfg.Override(tt.key, tt.value)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, DefaultConfig(), cfg)
		})
	}
}

func TestConfigYAML(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, yaml.Unmarshal([]byte("active_class: current\nrest_base: admin\nrestful: true\n"), &cfg))

	assert.True(t, cfg.AutoActivate)
	assert.True(t, cfg.Restful)
	assert.Equal(t, "current", cfg.ActiveClass)
	assert.Equal(t, RestBase{"admin"}, cfg.RestBase)

	require.NoError(t, yaml.Unmarshal([]byte("rest_base: [admin, api]\n"), &cfg))
	assert.Equal(t, RestBase{"admin", "api"}, cfg.RestBase)

	assert.Error(t, yaml.Unmarshal([]byte("rest_base: {a: b}\n"), &cfg))
}
