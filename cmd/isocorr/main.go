// Command isocorr is a thin front-end over the correction package: it loads
// an isotope table and, optionally, a metabolite/derivative database from
// flat files, parses the measurement vector from the command line, and
// prints the corrected isotopologue distribution. It does the file I/O and
// flag parsing the core is deliberately free of; the core stays an
// I/O-free, pure computation (see the correction package doc comment).
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/isocorr-go/isocorr/correction"
	"github.com/isocorr-go/isocorr/element"
	"github.com/isocorr-go/isocorr/isotopedb"
	"github.com/isocorr-go/isocorr/metabolitedb"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "isocorr: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("isocorr", flag.ContinueOnError)

	isotopesPath := fs.String("isotopes", "", "path to a TSV isotope abundance table (default: built-in table)")
	metabolitesPath := fs.String("metabolites", "", "path to a TSV metabolite/derivative database")
	metabolite := fs.String("metabolite", "", "metabolite formula, or a name looked up in -metabolites")
	derivative := fs.String("derivative", "", "derivative formula, or a name looked up in -metabolites")
	tracer := fs.String("tracer", "", "tracer element symbol")
	purity := fs.String("purity", "", "comma-separated tracer purity vector")
	measurements := fs.String("measurements", "", "comma-separated measured mass fractions")
	excludeTracerNatab := fs.Bool("exclude-tracer-natab", false, "exclude the tracer element's natural abundance")
	wantMeanEnrichment := fs.Bool("mean-enrichment", false, "also compute mean isotopic enrichment")

	if err := fs.Parse(args); err != nil {
		return err
	}

	table, err := loadTable(*isotopesPath)
	if err != nil {
		return err
	}

	var db metabolitedb.DB
	haveDB := false
	if *metabolitesPath != "" {
		db, err = metabolitedb.LoadFile(*metabolitesPath)
		if err != nil {
			return fmt.Errorf("loading metabolite database: %w", err)
		}
		haveDB = true
	}

	metaboliteFormula, err := resolveFormula(db, haveDB, *metabolite)
	if err != nil {
		return fmt.Errorf("resolving metabolite: %w", err)
	}
	derivativeFormula, err := resolveFormula(db, haveDB, *derivative)
	if err != nil {
		return fmt.Errorf("resolving derivative: %w", err)
	}

	purityVec, err := parseFloats(*purity)
	if err != nil {
		return fmt.Errorf("parsing -purity: %w", err)
	}
	vMeasured, err := parseFloats(*measurements)
	if err != nil {
		return fmt.Errorf("parsing -measurements: %w", err)
	}

	tracerConfig := correction.TracerConfig{
		Element:            element.Symbol(*tracer),
		Purity:             purityVec,
		ExcludeTracerNatab: *excludeTracerNatab,
	}

	var opts []correction.Option
	if *wantMeanEnrichment {
		opts = append(opts, correction.WithMeanEnrichment())
	}

	result, err := correction.Correct(context.Background(), table, metaboliteFormula, derivativeFormula, vMeasured, tracerConfig, opts...)
	if err != nil && result.Distribution == nil {
		return err
	}

	printResult(out, result)
	if err != nil {
		return err
	}

	return nil
}

func loadTable(path string) (*element.Table, error) {
	if path == "" {
		return element.DefaultTable()
	}

	return isotopedb.LoadFile(path)
}

func resolveFormula(db metabolitedb.DB, haveDB bool, nameOrFormula string) (string, error) {
	if nameOrFormula == "" {
		return "", nil
	}
	if !haveDB {
		return nameOrFormula, nil
	}
	if rec, ok := db.Lookup(nameOrFormula); ok {
		return rec.Formula, nil
	}

	return nameOrFormula, nil
}

func parseFloats(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	fields := strings.Split(s, ",")
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("field %d (%q): %w", i, f, err)
		}
		out[i] = v
	}

	return out, nil
}

func printResult(out io.Writer, result correction.Result) {
	fmt.Fprint(out, "distribution:")
	for _, d := range result.Distribution {
		fmt.Fprintf(out, " %.6f", d)
	}
	fmt.Fprintln(out)

	fmt.Fprint(out, "residuum:")
	for _, r := range result.Residuum {
		fmt.Fprintf(out, " %.6f", r)
	}
	fmt.Fprintln(out)

	if result.HasMeanEnrichment {
		fmt.Fprintf(out, "mean_enrichment: %.6f\n", result.MeanEnrichment)
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(out, "warning: %s\n", w.Message)
	}
}
