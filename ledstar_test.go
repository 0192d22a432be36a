package main

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedFlag(t *testing.T) {
	tests := []struct {
		arg  string
		want uint16
		ok   bool
	}{
		{"0", 0, true},
		{"4242", 4242, true},
		{"65535", 65535, true},
		{"65536", 0, false},
		{"65537", 0, false},
		{"-1", 0, false},
		{"seven", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			fs := flag.NewFlagSet("ledstar", flag.ContinueOnError)
			fs.SetOutput(io.Discard)
			seed := seedFlag(1)
			fs.Var(&seed, "seed", "")

			err := fs.Parse([]string{"-seed", tt.arg})
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, uint16(seed))
			assert.Equal(t, tt.arg, seed.String())
		})
	}
}
