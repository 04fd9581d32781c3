package metabolitedb

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
)

// field indices within a tab-separated record line:
// name, formula, and optionally charge, inchi.
const (
	fieldName = iota
	fieldFormula
	fieldCharge
	fieldInChI
)

// Load parses the tab-separated metabolite/derivative database format from
// r and returns a DB. Each non-blank line is
// `name\tformula[\tcharge[\tinchi]]`; blank lines are ignored. A later line
// naming the same metabolite overrides an earlier one.
//
// Load reads r fully before returning; it does not retain r.
func Load(r io.Reader) (DB, error) {
	records := make(map[string]Record)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			return DB{}, errorf("Load", ErrMalformedLine)
		}

		rec := Record{
			Name:    strings.TrimSpace(fields[fieldName]),
			Formula: strings.TrimSpace(fields[fieldFormula]),
		}

		if len(fields) > fieldCharge {
			charge := strings.TrimSpace(fields[fieldCharge])
			if charge != "" {
				c, err := strconv.Atoi(charge)
				if err != nil {
					return DB{}, errorf("Load", ErrInvalidCharge)
				}
				rec.Charge = c
				rec.HasChg = true
			}
		}
		if len(fields) > fieldInChI {
			rec.InChI = strings.TrimSpace(fields[fieldInChI])
		}

		records[rec.Name] = rec
	}
	if err := scanner.Err(); err != nil {
		return DB{}, errorf("Load", err)
	}

	return DB{records: records}, nil
}

// LoadFile opens path and delegates to Load, closing the file on every
// exit path including error.
func LoadFile(path string) (DB, error) {
	f, err := os.Open(path)
	if err != nil {
		return DB{}, errorf("LoadFile", err)
	}
	defer f.Close()

	return Load(f)
}
