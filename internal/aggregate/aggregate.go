package aggregate

import "github.com/roach88/dashview/internal/model"

// GroupCount is the number of records sharing one value of a text field.
type GroupCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Sum adds up a count field across records. Returns 0 for an empty collection.
// Fails with INVALID_INPUT if f is not a count field.
func Sum(records []model.Record, f model.Field) (int, error) {
	if f.Kind() != model.KindCount {
		return 0, model.NewFieldKindError("sum", f, model.KindCount)
	}
	total := 0
	for _, r := range records {
		n, _ := r.Count(f)
		total += n
	}
	return total, nil
}

// Average returns Sum(f)/len(records), or 0 for an empty collection.
func Average(records []model.Record, f model.Field) (float64, error) {
	total, err := Sum(records, f)
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, nil
	}
	return float64(total) / float64(len(records)), nil
}

// GroupCounts counts records per distinct value of a text field. Groups are
// returned in the order their value is first encountered. Values are matched
// exactly. Fails with INVALID_INPUT if f is not a text field.
func GroupCounts(records []model.Record, f model.Field) ([]GroupCount, error) {
	if f.Kind() != model.KindText {
		return nil, model.NewFieldKindError("group counts", f, model.KindText)
	}
	index := make(map[string]int)
	groups := []GroupCount{}
	for _, r := range records {
		v, _ := r.Text(f)
		if i, ok := index[v]; ok {
			groups[i].Count++
			continue
		}
		index[v] = len(groups)
		groups = append(groups, GroupCount{Value: v, Count: 1})
	}
	return groups, nil
}

// Largest returns the group with the highest count. Ties go to the group
// encountered first. Returns false for no groups.
func Largest(groups []GroupCount) (GroupCount, bool) {
	if len(groups) == 0 {
		return GroupCount{}, false
	}
	best := groups[0]
	for _, g := range groups[1:] {
		if g.Count > best.Count {
			best = g
		}
	}
	return best, true
}

// TopBy returns the record with the largest value of a count field. Ties go
// to the record encountered first. Fails with EMPTY_COLLECTION on zero
// records and INVALID_INPUT if f is not a count field.
func TopBy(records []model.Record, f model.Field) (model.Record, error) {
	if f.Kind() != model.KindCount {
		return model.Record{}, model.NewFieldKindError("top", f, model.KindCount)
	}
	if len(records) == 0 {
		return model.Record{}, model.NewEmptyCollectionError("top")
	}
	best := records[0]
	bestN, _ := best.Count(f)
	for _, r := range records[1:] {
		if n, _ := r.Count(f); n > bestN {
			best, bestN = r, n
		}
	}
	return best, nil
}
