package flagx

import (
	"os"
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
			name:    "separate value form",
			args:    []string{"-a", ":8080", "-x", "junk", "-s", "key"},
			allowed: []string{"-a", "-s"},
			want:    []string{"-a", ":8080", "-s", "key"},
		},
		{
			name:    "equals form",
			args:    []string{"--config=conf.json", "--other=1"},
			allowed: []string{"--config"},
			want:    []string{"--config=conf.json"},
		},
		{
			name:    "flag without value followed by another flag",
			args:    []string{"-v", "-a", ":8080"},
			allowed: []string{"-v", "-a"},
			want:    []string{"-v", "-a", ":8080"},
		},
		{
			name:    "single-dash allow list matches double-dash equals form",
			args:    []string{"--config=other.json", "--x=1"},
			allowed: []string{"-c", "-config"},
			want:    []string{"--config=other.json"},
		},
		{
			name:    "double-dash allow list matches single-dash flag",
			args:    []string{"-config", "conf.json"},
			allowed: []string{"--config"},
			want:    []string{"-config", "conf.json"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "x"},
			allowed: []string{"-b"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	orig := os.Args
	defer func() { os.Args = orig }()

	os.Args = []string{"cmd", "-c", "conf.json"}
	assert.Equal(t, "conf.json", JsonConfigFlags())

	os.Args = []string{"cmd", "--config=other.json"}
	assert.Equal(t, "other.json", JsonConfigFlags())

	os.Args = []string{"cmd"}
	assert.Equal(t, "", JsonConfigFlags())
}
