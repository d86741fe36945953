// Package model defines the record types shared by every stage of the
// dashboard view engine.
//
// A Record is one managed pharmacy. Records carry two searchable text fields
// (Name, City), opaque display fields (Latitude, Longitude, LicenseNumber)
// and two non-negative counters (Sells, Buys) that drive aggregates.
//
// # Fields
//
// Field names the sortable and aggregatable columns of a Record. Field values
// are the JSON keys used by seed files and the HTTP adapter:
//
//	id, name, city, latitude, longitude, license_number, number_sells, number_buys
//
// Every Field has a Kind that fixes its natural order:
//   - KindIdentifier: id, compared numerically
//   - KindText: compared lexicographically after NFC normalization
//   - KindCount: compared numerically
//
// # Errors
//
// All failures raised by the engine are *Error values carrying an ErrorCode.
// Use the Is* helpers to classify them; they see through wrapping.
package model
