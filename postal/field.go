package postal

import (
	"fmt"

	"github.com/fahadshabir/poster/errors"
)

// Field identifies one of the ten fixed address components. The numeric
// order is a contract: every column assembly and accessor depends on it.
type Field int

// Address fields in fixed position order.
const (
	FieldHouse Field = iota
	FieldHouseNumber
	FieldRoad
	FieldSuburb
	FieldCityDistrict
	FieldCity
	FieldStateDistrict
	FieldState
	FieldPostalCode
	FieldCountry

	// NumFields is the fixed arity of a parsed address record.
	NumFields = 10
)

var fieldNames = [NumFields]string{
	"house",
	"house_number",
	"road",
	"suburb",
	"city_district",
	"city",
	"state_district",
	"state",
	"postal_code",
	"country",
}

// fieldByLabel resolves engine labels to slots. Built once; lookups during
// parsing are a single map access instead of repeated string comparisons.
var fieldByLabel = func() map[string]Field {
	m := make(map[string]Field, NumFields)
	for i, name := range fieldNames {
		m[name] = Field(i)
	}
	return m
}()

// String returns the canonical field name.
func (f Field) String() string {
	if f < 0 || f >= NumFields {
		return fmt.Sprintf("field(%d)", int(f))
	}
	return fieldNames[f]
}

// Valid reports whether f identifies one of the ten slots.
func (f Field) Valid() bool {
	return f >= 0 && f < NumFields
}

// Fields returns all fields in fixed position order.
func Fields() []Field {
	fields := make([]Field, NumFields)
	for i := range fields {
		fields[i] = Field(i)
	}
	return fields
}

// FieldNames returns the canonical field names in fixed position order.
func FieldNames() []string {
	names := make([]string, NumFields)
	copy(names, fieldNames[:])
	return names
}

// ParseField resolves a field by its exact, case-sensitive name.
func ParseField(name string) (Field, error) {
	if f, ok := fieldByLabel[name]; ok {
		return f, nil
	}
	return 0, errors.WrapInvalid(
		fmt.Errorf("%w: %q", errors.ErrUnknownField, name),
		"postal", "ParseField", "resolve field name")
}
