package isotopedb

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/isocorr-go/isocorr/element"
)

// Load parses the tab-separated isotope table format from r and returns an
// immutable element.Table. Each non-blank line is `symbol\ta0\ta1\t...`;
// blank lines are ignored. opts are forwarded to element.NewTable, so
// element.WithEpsilon overrides the default sum-to-1 tolerance.
//
// Load reads r fully before returning; it does not retain r.
func Load(r io.Reader, opts ...element.Option) (*element.Table, error) {
	entries := make(map[element.Symbol]element.Abundances)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			return nil, errorf("Load", ErrMalformedLine)
		}

		sym := element.Symbol(strings.TrimSpace(fields[0]))
		if _, exists := entries[sym]; exists {
			return nil, errorf("Load", ErrDuplicateSymbol)
		}

		abundances := make(element.Abundances, len(fields)-1)
		for i, field := range fields[1:] {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, errorf("Load", ErrInvalidAbundance)
			}
			abundances[i] = v
		}

		entries[sym] = abundances
	}
	if err := scanner.Err(); err != nil {
		return nil, errorf("Load", err)
	}

	return element.NewTable(entries, opts...)
}

// LoadFile opens path and delegates to Load, closing the file on every
// exit path including error.
func LoadFile(path string, opts ...element.Option) (*element.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errorf("LoadFile", err)
	}
	defer f.Close()

	return Load(f, opts...)
}
