package model

// ID identifies a record. IDs are unique within a collection and never reused.
type ID int64

// Record is one managed pharmacy.
type Record struct {
	ID            ID     `json:"id" yaml:"id"`
	Name          string `json:"name" yaml:"name"`
	City          string `json:"city" yaml:"city"`
	Latitude      string `json:"latitude" yaml:"latitude"`
	Longitude     string `json:"longitude" yaml:"longitude"`
	LicenseNumber string `json:"license_number" yaml:"license_number"`
	Sells         int    `json:"number_sells" yaml:"number_sells"`
	Buys          int    `json:"number_buys" yaml:"number_buys"`
}

// Text returns the value of a text field.
// Returns false if f is not a KindText field.
func (r Record) Text(f Field) (string, bool) {
	switch f {
	case FieldName:
		return r.Name, true
	case FieldCity:
		return r.City, true
	case FieldLatitude:
		return r.Latitude, true
	case FieldLongitude:
		return r.Longitude, true
	case FieldLicenseNumber:
		return r.LicenseNumber, true
	}
	return "", false
}

// Count returns the value of a counter field.
// Returns false if f is not a KindCount field.
func (r Record) Count(f Field) (int, bool) {
	switch f {
	case FieldSells:
		return r.Sells, true
	case FieldBuys:
		return r.Buys, true
	}
	return 0, false
}

// Clone returns a copy of records that shares no backing array with the input.
// The result is never nil.
func Clone(records []Record) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	return out
}

// IDs returns the IDs of records in order. The result is never nil.
func IDs(records []Record) []ID {
	ids := make([]ID, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}
	return ids
}
