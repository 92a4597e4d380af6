package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "short flag with separate value",
			args:    []string{"-f", "users.txt", "-x", "1"},
			allowed: []string{"-f"},
			want:    []string{"-f", "users.txt"},
		},
		{
			name:    "flag with equals",
			args:    []string{"--config=alt.json", "-v", "eco"},
			allowed: []string{"--config"},
			want:    []string{"--config=alt.json"},
		},
		{
			name:    "unknown flags ignored",
			args:    []string{"-x", "1", "--y=2", "positional"},
			allowed: []string{"-c"},
			want:    []string{},
		},
		{
			name:    "flag without value at end is kept",
			args:    []string{"-c"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "next dash token is not a value",
			args:    []string{"-c", "-v", "eco"},
			allowed: []string{"-c", "-v"},
			want:    []string{"-c", "-v", "eco"},
		},
		{
			name:    "negative number is a value",
			args:    []string{"-n", "-1", "-v", "eco"},
			allowed: []string{"-n", "-v"},
			want:    []string{"-n", "-1", "-v", "eco"},
		},
		{
			name:    "value that looks like a flag in equals form",
			args:    []string{"-f=--odd.txt"},
			allowed: []string{"-f"},
			want:    []string{"-f=--odd.txt"},
		},
		{
			name:    "repeated flag preserved in order",
			args:    []string{"-f", "one.txt", "-f", "two.txt"},
			allowed: []string{"-f"},
			want:    []string{"-f", "one.txt", "-f", "two.txt"},
		},
		{
			name:    "empty args",
			args:    []string{},
			allowed: []string{"-c"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigPath(t *testing.T) {
	t.Run("short -c", func(t *testing.T) {
		assert.Equal(t, "/etc/eco.json", ConfigPath([]string{"-c", "/etc/eco.json"}))
	})

	t.Run("long -config among other flags", func(t *testing.T) {
		assert.Equal(t, "eco.json", ConfigPath([]string{"-v", "messenger", "-config", "eco.json"}))
	})

	t.Run("absent", func(t *testing.T) {
		assert.Empty(t, ConfigPath([]string{"-f", "users.txt"}))
	})

	t.Run("last wins", func(t *testing.T) {
		assert.Equal(t, "2.json", ConfigPath([]string{"-c", "1.json", "-config", "2.json"}))
	})
}
