package htmltext

import (
	"strings"
	"testing"
)

func TestFlatten_CollapsesToSingleLine(t *testing.T) {
	page := `<!doctype html>
	<html>
	  <head><title>Faculty</title></head>
	  <body>
	    <h1>Department   of Engineering</h1>
	    <p>Dr. Jane Smith
	       Professor</p>
	  </body>
	</html>`

	text := Flatten([]byte(page))
	if strings.Contains(text, "\n") || strings.Contains(text, "\t") {
		t.Fatalf("expected a single collapsed line, got %q", text)
	}
	if strings.Contains(text, "  ") {
		t.Fatalf("expected no double spaces, got %q", text)
	}
	if !strings.Contains(text, "Department of Engineering") {
		t.Fatalf("expected heading text, got %q", text)
	}
	if !strings.Contains(text, "Dr. Jane Smith Professor") {
		t.Fatalf("expected name and designation joined by one space, got %q", text)
	}
}

func TestFlatten_ReplacesNonBreakingSpaces(t *testing.T) {
	page := "<html><body><p>Jane\u00a0Smith</p></body></html>"
	text := Flatten([]byte(page))
	if !strings.Contains(text, "Jane Smith") {
		t.Fatalf("expected nbsp replaced with space, got %q", text)
	}
}

func TestFlatten_SkipsScriptAndStyle(t *testing.T) {
	page := `<html><head><style>.x{color:red}</style></head>
	<body><script>var secret = 1;</script><p>Visible text</p></body></html>`
	text := Flatten([]byte(page))
	if strings.Contains(text, "secret") || strings.Contains(text, "color:red") {
		t.Fatalf("expected script/style content skipped, got %q", text)
	}
	if !strings.Contains(text, "Visible text") {
		t.Fatalf("expected visible text present, got %q", text)
	}
}

func TestFlatten_SeparatesAdjacentBlocks(t *testing.T) {
	// Text nodes from sibling cells must not fuse into one token.
	page := "<html><body><table><tr><td>Name</td><td>Email</td></tr></table></body></html>"
	text := Flatten([]byte(page))
	if strings.Contains(text, "NameEmail") {
		t.Fatalf("expected separator between text nodes, got %q", text)
	}
}

func TestFlatten_EmptyAndInvalidInput(t *testing.T) {
	if got := Flatten(nil); strings.TrimSpace(got) != "" {
		t.Fatalf("expected empty output for nil input, got %q", got)
	}
	if got := Flatten([]byte("<<<not html")); strings.Contains(got, "<") {
		// html.Parse is lenient; whatever survives must still be flat text
		t.Logf("lenient parse output: %q", got)
	}
}
