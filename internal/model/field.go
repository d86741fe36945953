package model

import (
	"cmp"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Field names a column of Record.
type Field string

const (
	FieldID            Field = "id"
	FieldName          Field = "name"
	FieldCity          Field = "city"
	FieldLatitude      Field = "latitude"
	FieldLongitude     Field = "longitude"
	FieldLicenseNumber Field = "license_number"
	FieldSells         Field = "number_sells"
	FieldBuys          Field = "number_buys"
)

// Fields lists every Record column in display order.
var Fields = []Field{
	FieldID,
	FieldName,
	FieldCity,
	FieldLatitude,
	FieldLongitude,
	FieldLicenseNumber,
	FieldSells,
	FieldBuys,
}

// Kind classifies a Field by its natural order.
type Kind int

const (
	KindUnknown Kind = iota
	KindIdentifier
	KindText
	KindCount
)

func (k Kind) String() string {
	switch k {
	case KindIdentifier:
		return "identifier"
	case KindText:
		return "text"
	case KindCount:
		return "count"
	}
	return "unknown"
}

// fieldAliases maps lower-cased alternate names to their Field.
var fieldAliases = map[string]Field{
	"locationlabel":    FieldCity,
	"location":         FieldCity,
	"registrationcode": FieldLicenseNumber,
	"outboundcount":    FieldSells,
	"inboundcount":     FieldBuys,
}

// Kind returns the kind of f, or KindUnknown for an unrecognised field.
func (f Field) Kind() Kind {
	switch f {
	case FieldID:
		return KindIdentifier
	case FieldName, FieldCity, FieldLatitude, FieldLongitude, FieldLicenseNumber:
		return KindText
	case FieldSells, FieldBuys:
		return KindCount
	}
	return KindUnknown
}

// Valid reports whether f names a Record column.
func (f Field) Valid() bool {
	return f.Kind() != KindUnknown
}

// ParseField resolves a column name. Matching is case-insensitive and accepts
// the long-form aliases (locationLabel, registrationCode, outboundCount,
// inboundCount).
func ParseField(name string) (Field, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if f := Field(key); f.Valid() {
		return f, nil
	}
	if f, ok := fieldAliases[key]; ok {
		return f, nil
	}
	return "", &Error{
		Code:    ErrCodeInvalidInput,
		Message: fmt.Sprintf("unknown field %q", name),
		Details: map[string]string{"field": name},
	}
}

// Compare orders a and b by field f in its natural ascending order.
// Returns a negative number, zero or a positive number.
// Unknown fields compare equal.
func Compare(a, b Record, f Field) int {
	switch f.Kind() {
	case KindIdentifier:
		return cmp.Compare(a.ID, b.ID)
	case KindCount:
		x, _ := a.Count(f)
		y, _ := b.Count(f)
		return cmp.Compare(x, y)
	case KindText:
		x, _ := a.Text(f)
		y, _ := b.Text(f)
		return strings.Compare(norm.NFC.String(x), norm.NFC.String(y))
	}
	return 0
}

// Fold returns s in a form suitable for case-insensitive comparison.
// The text is NFC-normalized and then Unicode case folded.
func Fold(s string) string {
	// A Caser keeps state; build one per call so Fold is safe for concurrent use.
	return cases.Fold().String(norm.NFC.String(s))
}
