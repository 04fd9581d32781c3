package element_test

import (
	"errors"
	"testing"

	"github.com/isocorr-go/isocorr/element"
	"github.com/stretchr/testify/require"
)

func TestNewTable_Valid(t *testing.T) {
	t.Parallel()

	tbl, err := element.NewTable(map[element.Symbol]element.Abundances{
		"C": {0.9893, 0.0107},
		"O": {1.0},
	})
	require.NoError(t, err)
	require.True(t, tbl.Has("C"))
	require.False(t, tbl.Has("Si"))

	n, err := tbl.Len("C")
	require.NoError(t, err)
	require.Equal(t, 2, n)

	require.Equal(t, []element.Symbol{"C", "O"}, tbl.Symbols())
}

func TestNewTable_RejectsEmptyVector(t *testing.T) {
	t.Parallel()

	_, err := element.NewTable(map[element.Symbol]element.Abundances{"C": {}})
	require.ErrorIs(t, err, element.ErrEmptyAbundance)
}

func TestNewTable_RejectsNegative(t *testing.T) {
	t.Parallel()

	_, err := element.NewTable(map[element.Symbol]element.Abundances{"C": {1.1, -0.1}})
	require.ErrorIs(t, err, element.ErrNegativeAbundance)
}

func TestNewTable_RejectsBadSum(t *testing.T) {
	t.Parallel()

	_, err := element.NewTable(map[element.Symbol]element.Abundances{"C": {0.5, 0.4}})
	require.ErrorIs(t, err, element.ErrAbundanceSumInvalid)
}

func TestNewTable_EpsilonOption(t *testing.T) {
	t.Parallel()

	_, err := element.NewTable(map[element.Symbol]element.Abundances{"C": {0.5, 0.499}}, element.WithEpsilon(1e-2))
	require.NoError(t, err)
}

func TestLen_UnknownElement(t *testing.T) {
	t.Parallel()

	tbl, err := element.DefaultTable()
	require.NoError(t, err)

	_, err = tbl.Len("Xx")
	require.True(t, errors.Is(err, element.ErrUnknownElement))
}

func TestTableIsImmutable(t *testing.T) {
	t.Parallel()

	src := map[element.Symbol]element.Abundances{"C": {0.9893, 0.0107}}
	tbl, err := element.NewTable(src)
	require.NoError(t, err)

	src["C"][0] = 0
	ab, _ := tbl.Abundances("C")
	require.Equal(t, 0.9893, ab[0])
}
