package contacts

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// windowSize is how many bytes of surrounding text are consulted when
// resolving a contact's department, email and phone.
const windowSize = 300

// departmentKeywords are probed in listed order; the first whole-word,
// case-insensitive hit wins.
var departmentKeywords = []string{
	"Engineering",
	"Science",
	"Arts",
	"Commerce",
	"Management",
	"Technology",
	"Business",
	"Medical",
}

var departmentPatterns = buildDepartmentPatterns()

func buildDepartmentPatterns() []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(departmentKeywords))
	for _, kw := range departmentKeywords {
		out = append(out, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(kw)+`\b`))
	}
	return out
}

// FromText scans a flattened page for outreach contacts: faculty
// name/designation pairs first, then student-role leads, each resolved
// against its local context windows, then deduplicated.
func FromText(text string) []Contact {
	titleCaser := cases.Title(language.English)

	var found []Contact
	for _, m := range nameDesignationPattern.FindAllStringSubmatchIndex(text, -1) {
		c := resolve(text, m[0], m[1])
		c.Name = collapseName(text[m[2]:m[3]])
		c.Designation = titleCaser.String(text[m[4]:m[5]])
		found = append(found, c)
	}
	for _, rp := range studentRolePatterns {
		for _, m := range rp.pattern.FindAllStringSubmatchIndex(text, -1) {
			c := resolve(text, m[0], m[1])
			c.Name = collapseName(text[m[2]:m[3]])
			c.Designation = rp.role
			found = append(found, c)
		}
	}
	return Dedupe(found)
}

// resolve fills the auxiliary fields for a match spanning [start, end).
// Department is guessed from the before window first, then the after
// window. Email and phone are taken from the after window only.
func resolve(text string, start, end int) Contact {
	before := text[max(0, start-windowSize):start]
	after := text[end:min(len(text), end+windowSize)]

	var c Contact
	if dept := guessDepartment(before); dept != "" {
		c.Department = &dept
	} else if dept := guessDepartment(after); dept != "" {
		c.Department = &dept
	}
	if m := emailPattern.FindString(after); m != "" {
		email := strings.TrimSpace(m)
		c.Email = &email
	}
	if m := phonePattern.FindString(after); m != "" {
		phone := whitespace.ReplaceAllString(strings.TrimSpace(m), "")
		c.Phone = &phone
	}
	return c
}

// guessDepartment returns the first department keyword present in the
// context, or "" when none is.
func guessDepartment(context string) string {
	for i, re := range departmentPatterns {
		if re.MatchString(context) {
			return departmentKeywords[i]
		}
	}
	return ""
}
