package contacts

import (
	"regexp"
	"strings"
)

const (
	emailExpr = `[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+`
	// Indian numbers: +91 followed by a 10-digit mobile number, or a leading
	// zero with a 2-4 digit STD code and 6-8 digits, optional space/hyphen.
	phoneExpr = `(?:\+91[\s-]?)?[6-9]\d{9}|0\d{2,4}[\s-]?\d{6,8}`
)

var (
	emailPattern = regexp.MustCompile(emailExpr)
	phonePattern = regexp.MustCompile(phoneExpr)
	whitespace   = regexp.MustCompile(`\s+`)
)

// designations is an ordered alternation: with leftmost-first matching an
// earlier entry wins whenever two labels could match at the same position,
// so "Professor" is captured even where "Associate Professor" overlaps.
// Do not reorder.
var designations = []string{
	"Professor",
	"Associate Professor",
	"Assistant Professor",
	"HOD",
	"Head",
	"Dean",
	"Director",
	"Coordinator",
	"Principal",
	"Chairperson",
	"Registrar",
}

// nameDesignationPattern captures 1-4 capitalized words, optionally led by
// "Dr.", immediately followed by a designation. The whole pattern is
// case-insensitive, so the "capitalized word" class is effectively any word.
var nameDesignationPattern = regexp.MustCompile(
	`(?i)((?:Dr\.?\s*)?(?:[A-Z][a-zA-Z'.-]*\s+){1,4})\s*(` + strings.Join(designations, "|") + `)`)

// studentRoles are matched as literal labels; the label text becomes the
// contact's designation verbatim.
var studentRoles = []string{
	"Placement Cell",
	"Student Council",
	"Cultural Head",
}

type rolePattern struct {
	role    string
	pattern *regexp.Regexp
}

var studentRolePatterns = buildStudentRolePatterns()

func buildStudentRolePatterns() []rolePattern {
	out := make([]rolePattern, 0, len(studentRoles))
	for _, role := range studentRoles {
		re := regexp.MustCompile(
			`(?i)((?:[A-Z][a-zA-Z'.-]*\s+){1,4}[A-Z][a-zA-Z'.-]*)\s*[-,;:]?\s*` + regexp.QuoteMeta(role))
		out = append(out, rolePattern{role: role, pattern: re})
	}
	return out
}

// Emails returns the unique email addresses found in text, in first-seen
// order.
func Emails(text string) []string {
	return uniqueMatches(emailPattern, text, false)
}

// Phones returns the unique phone numbers found in text, with all
// whitespace stripped from each match before deduplication.
func Phones(text string) []string {
	return uniqueMatches(phonePattern, text, true)
}

func uniqueMatches(re *regexp.Regexp, text string, stripSpace bool) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, m := range re.FindAllString(text, -1) {
		m = strings.TrimSpace(m)
		if stripSpace {
			m = whitespace.ReplaceAllString(m, "")
		}
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}

func collapseName(raw string) string {
	return whitespace.ReplaceAllString(strings.TrimSpace(raw), " ")
}
