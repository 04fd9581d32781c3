package element_test

import (
	"testing"

	"github.com/isocorr-go/isocorr/element"
	"github.com/stretchr/testify/require"
)

func mustDefaultTable(t *testing.T) *element.Table {
	t.Helper()
	tbl, err := element.DefaultTable()
	require.NoError(t, err)

	return tbl
}

func TestParse_Basic(t *testing.T) {
	t.Parallel()
	tbl := mustDefaultTable(t)

	f, err := element.Parse("C3H4O3", tbl)
	require.NoError(t, err)
	require.Equal(t, 3, f.Count("C"))
	require.Equal(t, 4, f.Count("H"))
	require.Equal(t, 3, f.Count("O"))
	require.Equal(t, 0, f.Count("N"))
}

func TestParse_RepeatedSymbolsAccumulate(t *testing.T) {
	t.Parallel()
	tbl := mustDefaultTable(t)

	f, err := element.Parse("C2C3", tbl)
	require.NoError(t, err)
	require.Equal(t, 5, f.Count("C"))
}

func TestParse_ImplicitCountIsOne(t *testing.T) {
	t.Parallel()
	tbl := mustDefaultTable(t)

	f, err := element.Parse("Si2C8H21N", tbl)
	require.NoError(t, err)
	require.Equal(t, 2, f.Count("Si"))
	require.Equal(t, 8, f.Count("C"))
	require.Equal(t, 21, f.Count("H"))
	require.Equal(t, 1, f.Count("N"))
}

func TestParse_WhitespaceInsignificant(t *testing.T) {
	t.Parallel()
	tbl := mustDefaultTable(t)

	f, err := element.Parse(" C3 H4 O3 ", tbl)
	require.NoError(t, err)
	require.Equal(t, 3, f.Count("C"))
}

func TestParse_EmptyStringIsLegal(t *testing.T) {
	t.Parallel()
	tbl := mustDefaultTable(t)

	f, err := element.Parse("", tbl)
	require.NoError(t, err)
	require.Empty(t, f)
}

func TestParse_UnknownElement(t *testing.T) {
	t.Parallel()
	tbl := mustDefaultTable(t)

	_, err := element.Parse("Zz3", tbl)
	require.ErrorIs(t, err, element.ErrUnknownElement)
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()
	tbl := mustDefaultTable(t)

	_, err := element.Parse("C3*H4", tbl)
	require.ErrorIs(t, err, element.ErrMalformedFormula)
}

func TestFormula_SortedSymbolsDeterministic(t *testing.T) {
	t.Parallel()

	f := element.Formula{"O": 3, "C": 3, "H": 4}
	require.Equal(t, []element.Symbol{"C", "H", "O"}, f.SortedSymbols())
}
