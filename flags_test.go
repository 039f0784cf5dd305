package taueff

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinEdges(t *testing.T) {
	parse := func(args ...string) (*BinEdges, error) {
		edges := &BinEdges{Edges: []float64{0, 1}}
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		fs.Var(edges, "edges", "bin edges")
		return edges, fs.Parse(args)
	}

	t.Run("default kept", func(t *testing.T) {
		edges, err := parse()
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 1}, edges.Edges)
		assert.Equal(t, "0,1", edges.String())
	})

	t.Run("list replaces default", func(t *testing.T) {
		edges, err := parse("-edges", "0, 18,20.5")
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 18, 20.5}, edges.Edges)
	})

	t.Run("repeated flag appends", func(t *testing.T) {
		edges, err := parse("-edges", "0,10", "-edges", "12", "-edges", "200")
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 10, 12, 200}, edges.Edges)
		assert.Equal(t, "0,10,12,200", edges.String())
	})

	t.Run("not increasing", func(t *testing.T) {
		_, err := parse("-edges", "0,10,10")
		assert.Error(t, err)
	})

	t.Run("not a number", func(t *testing.T) {
		_, err := parse("-edges", "0,ten")
		assert.Error(t, err)
	})
}
