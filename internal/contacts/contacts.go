package contacts

// Contact is one extracted outreach record. Department, Email and Phone are
// nil when nothing could be resolved near the match.
type Contact struct {
	Name        string  `json:"name"`
	Designation string  `json:"designation"`
	Department  *string `json:"department"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
}

// Dedupe collapses contacts sharing (name, designation, email), keeping the
// first occurrence in input order. Department and phone play no part in the
// identity; a later duplicate with different auxiliary fields is dropped.
func Dedupe(in []Contact) []Contact {
	type identity struct {
		name, designation, email string
		hasEmail                 bool
	}
	seen := make(map[identity]struct{}, len(in))
	out := make([]Contact, 0, len(in))
	for _, c := range in {
		k := identity{name: c.Name, designation: c.Designation}
		if c.Email != nil {
			k.email = *c.Email
			k.hasEmail = true
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, c)
	}
	return out
}
