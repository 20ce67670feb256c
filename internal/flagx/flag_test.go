package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		allowed  []string
		expected []string
	}{
		{
			name:     "flag with separate value",
			args:     []string{"-a", "127.0.0.1:8000", "-x", "ignored"},
			allowed:  []string{"-a"},
			expected: []string{"-a", "127.0.0.1:8000"},
		},
		{
			name:     "flag=value form",
			args:     []string{"--config=conf.json", "-a=addr"},
			allowed:  []string{"--config"},
			expected: []string{"--config=conf.json"},
		},
		{
			name:     "nothing allowed",
			args:     []string{"-a", "addr"},
			allowed:  []string{"-b"},
			expected: []string{},
		},
		{
			name:     "value looking like a flag is not consumed",
			args:     []string{"-a", "-b"},
			allowed:  []string{"-a", "-b"},
			expected: []string{"-a", "-b"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FilterArgs(tc.args, tc.allowed))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-c", "conf.json", "-a", "addr"}
	assert.Equal(t, "conf.json", JsonConfigFlags())

	os.Args = []string{"testbin"}
	assert.Equal(t, "", JsonConfigFlags())
}
