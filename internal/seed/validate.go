package seed

import (
	_ "embed"
	"fmt"
	"strconv"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/roach88/dashview/internal/model"
)

//go:embed schema.cue
var schemaSrc string

// Validator checks records against the #Pharmacy CUE definition.
// A Validator is not safe for concurrent use.
type Validator struct {
	ctx *cue.Context
	def cue.Value
}

// NewValidator compiles the embedded schema.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaSrc, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compile seed schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Pharmacy"))
	if err := def.Err(); err != nil {
		return nil, fmt.Errorf("lookup #Pharmacy: %w", err)
	}
	return &Validator{ctx: ctx, def: def}, nil
}

// Record validates a single record against the schema.
func (v *Validator) Record(r model.Record) error {
	unified := v.def.Unify(v.ctx.Encode(r))
	return unified.Validate(cue.Concrete(true))
}

// Collection validates every record and then the collection invariants.
// The first schema violation is returned as an INVALID_INPUT error that
// names the record index.
func (v *Validator) Collection(records []model.Record) error {
	for i, r := range records {
		if err := v.Record(r); err != nil {
			return &model.Error{
				Code:    model.ErrCodeInvalidInput,
				Message: fmt.Sprintf("pharmacy[%d]: %v", i, err),
				Details: map[string]string{
					"index": strconv.Itoa(i),
					"id":    strconv.FormatInt(int64(r.ID), 10),
				},
			}
		}
	}
	return model.ValidateCollection(records)
}

// Validate checks records with a fresh Validator.
func Validate(records []model.Record) error {
	v, err := NewValidator()
	if err != nil {
		return err
	}
	return v.Collection(records)
}
