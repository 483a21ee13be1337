package postal

// Record is one parsed address: a fixed ten-slot tuple of optional
// strings, fully null before population.
type Record struct {
	fields [NumFields]String
}

// Get returns the value of one slot. Out-of-range fields read as null.
func (r Record) Get(f Field) String {
	if !f.Valid() {
		return String{}
	}
	return r.fields[f]
}

func (r *Record) set(f Field, v String) {
	r.fields[f] = v
}

// Columns holds the ten parallel output columns of a batch parse, each the
// same length as the input batch.
type Columns struct {
	House         []String
	HouseNumber   []String
	Road          []String
	Suburb        []String
	CityDistrict  []String
	City          []String
	StateDistrict []String
	State         []String
	PostalCode    []String
	Country       []String
}

// NewColumns creates columns of length n, every entry null.
func NewColumns(n int) *Columns {
	return &Columns{
		House:         make([]String, n),
		HouseNumber:   make([]String, n),
		Road:          make([]String, n),
		Suburb:        make([]String, n),
		CityDistrict:  make([]String, n),
		City:          make([]String, n),
		StateDistrict: make([]String, n),
		State:         make([]String, n),
		PostalCode:    make([]String, n),
		Country:       make([]String, n),
	}
}

// Len returns the column length.
func (c *Columns) Len() int {
	return len(c.House)
}

// Column returns the column for one field. Out-of-range fields yield nil.
func (c *Columns) Column(f Field) []String {
	switch f {
	case FieldHouse:
		return c.House
	case FieldHouseNumber:
		return c.HouseNumber
	case FieldRoad:
		return c.Road
	case FieldSuburb:
		return c.Suburb
	case FieldCityDistrict:
		return c.CityDistrict
	case FieldCity:
		return c.City
	case FieldStateDistrict:
		return c.StateDistrict
	case FieldState:
		return c.State
	case FieldPostalCode:
		return c.PostalCode
	case FieldCountry:
		return c.Country
	default:
		return nil
	}
}

// setRecord scatters one record into every column at position i.
func (c *Columns) setRecord(i int, rec Record) {
	for _, f := range Fields() {
		c.Column(f)[i] = rec.Get(f)
	}
}
