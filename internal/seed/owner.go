package seed

import "strings"

// Owner is the user whose pharmacies a seed file describes.
type Owner struct {
	ID                 int64  `json:"id" yaml:"id"`
	Email              string `json:"email" yaml:"email"`
	Phone              string `json:"phone" yaml:"phone"`
	CreatedAt          string `json:"created_at" yaml:"created_at"`
	NumberOfPharmacies int    `json:"numberOfpharmacies" yaml:"numberOfpharmacies"`
}

// Initials returns the first two characters of the e-mail local part,
// upper-cased. Returns "" when the e-mail is empty.
func (o Owner) Initials() string {
	if o.Email == "" {
		return ""
	}
	local, _, _ := strings.Cut(o.Email, "@")
	r := []rune(local)
	if len(r) > 2 {
		r = r[:2]
	}
	return strings.ToUpper(string(r))
}
