package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set_Valid(t *testing.T) {
	var a NetAddress
	require.NoError(t, a.Set("localhost:8080"))
	assert.Equal(t, "localhost", a.Host)
	assert.Equal(t, 8080, a.Port)
	assert.Equal(t, "localhost:8080", a.String())
}

func TestNetAddress_Set_ValidIP(t *testing.T) {
	var a NetAddress
	require.NoError(t, a.Set("127.0.0.1:9090"))
	assert.Equal(t, "127.0.0.1:9090", a.String())
}

func TestNetAddress_Set_Invalid(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"no port", "localhost"},
		{"bad port", "localhost:abc"},
		{"zero port", "localhost:0"},
		{"bad host", "not-an-ip:8080"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var a NetAddress
			assert.Error(t, a.Set(tc.in))
		})
	}
}

func TestNetAddress_String_Zero(t *testing.T) {
	var a NetAddress
	assert.Empty(t, a.String(), "zero address must merge away to other sources")
}
