package metabolitedb

// Record is one row of a metabolite/derivative database file: a name, its
// elemental formula string (parsed separately via element.Parse against a
// Table), and the optional charge/inchi annotations a record may carry.
type Record struct {
	Name    string
	Formula string
	Charge  int
	HasChg  bool
	InChI   string
}

// DB is an immutable, case-sensitive lookup of metabolite/derivative
// records by name. The zero value is an empty DB.
type DB struct {
	records map[string]Record
}

// Lookup returns the record named name and whether it exists.
func (db DB) Lookup(name string) (Record, bool) {
	rec, ok := db.records[name]

	return rec, ok
}

// Len returns the number of distinct names held by the database.
func (db DB) Len() int {
	return len(db.records)
}

// Names returns every name held by the database, in no particular order.
func (db DB) Names() []string {
	out := make([]string, 0, len(db.records))
	for name := range db.records {
		out = append(out, name)
	}

	return out
}
