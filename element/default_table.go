package element

// DefaultAbundances holds the natural isotope-abundance vectors bundled
// with this module, taken from the source system's built-in isotopic data
// (Isotopic Compositions of the Elements 2013, Pure Appl. Chem. 2016,
// Vol. 88, No. 3, pp. 293-306). Callers needing a different or extended
// table should build one via isotopedb.Load instead.
var DefaultAbundances = map[Symbol]Abundances{
	"C":  {0.9893, 0.0107},
	"H":  {0.999885, 0.000115},
	"N":  {0.99636, 0.00364},
	"P":  {1.0},
	"O":  {0.99757, 0.00038, 0.00205},
	"S":  {0.9499, 0.0075, 0.0425, 0.0, 0.0001},
	"Si": {0.92223, 0.04685, 0.03092},
}

// DefaultTable builds a Table from DefaultAbundances.
func DefaultTable(opts ...Option) (*Table, error) {
	return NewTable(DefaultAbundances, opts...)
}
