package model

import (
	"fmt"
	"strconv"
)

// ValidateCollection checks the collection invariants: ids are unique and
// counters are non-negative. The first violation is returned as an
// INVALID_INPUT error.
func ValidateCollection(records []Record) error {
	seen := make(map[ID]int, len(records))
	for i, r := range records {
		if r.Sells < 0 || r.Buys < 0 {
			return &Error{
				Code:    ErrCodeInvalidInput,
				Message: fmt.Sprintf("record %d has a negative counter (sells=%d, buys=%d)", r.ID, r.Sells, r.Buys),
				Details: map[string]string{
					"id":    strconv.FormatInt(int64(r.ID), 10),
					"index": strconv.Itoa(i),
				},
			}
		}
		if j, dup := seen[r.ID]; dup {
			return NewDuplicateIDError(r.ID, j, i)
		}
		seen[r.ID] = i
	}
	return nil
}
