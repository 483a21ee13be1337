package service

// Wire types for the NATS request-reply surface. Nullable strings are
// pointers so JSON null survives the round trip.

// NormalizeRequest asks for canonical expansion of a batch.
type NormalizeRequest struct {
	Addresses []*string `json:"addresses"`
}

// NormalizeResponse carries the expanded batch.
type NormalizeResponse struct {
	Addresses []*string `json:"addresses"`
	Error     string    `json:"error,omitempty"`
}

// ParseRequest asks for structured parsing of a batch.
type ParseRequest struct {
	Addresses []*string `json:"addresses"`
}

// ParseResponse carries the ten parallel columns in fixed field order.
type ParseResponse struct {
	House         []*string `json:"house"`
	HouseNumber   []*string `json:"house_number"`
	Road          []*string `json:"road"`
	Suburb        []*string `json:"suburb"`
	CityDistrict  []*string `json:"city_district"`
	City          []*string `json:"city"`
	StateDistrict []*string `json:"state_district"`
	State         []*string `json:"state"`
	PostalCode    []*string `json:"postal_code"`
	Country       []*string `json:"country"`
	Error         string    `json:"error,omitempty"`
}

// FieldRequest asks for a field projection (get) or rewrite (set).
// Replacements is only read by set_field.
type FieldRequest struct {
	Addresses    []*string `json:"addresses"`
	Field        string    `json:"field"`
	Replacements []*string `json:"replacements,omitempty"`
}

// FieldResponse carries one output vector per input element.
type FieldResponse struct {
	Values []*string `json:"values"`
	Error  string    `json:"error,omitempty"`
}
