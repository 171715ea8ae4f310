package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value form",
			args:    []string{"-d", "data.db", "-x", "junk"},
			allowed: []string{"-d"},
			want:    []string{"-d", "data.db"},
		},
		{
			name:    "equals form",
			args:    []string{"--config=conf.json", "-d=data.db"},
			allowed: []string{"--config"},
			want:    []string{"--config=conf.json"},
		},
		{
			name:    "flag followed by another flag keeps no value",
			args:    []string{"-d", "-k", "secret"},
			allowed: []string{"-d", "-k"},
			want:    []string{"-d", "-k", "secret"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "1", "-b"},
			allowed: nil,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	os.Args = []string{"cmd", "-c", "conf.json", "-d", "data.db"}
	require.Equal(t, "conf.json", ConfigFileFlag())

	os.Args = []string{"cmd", "-config=other.json"}
	require.Equal(t, "other.json", ConfigFileFlag())

	os.Args = []string{"cmd", "-d", "data.db"}
	require.Equal(t, "", ConfigFileFlag())
}
