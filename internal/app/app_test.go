package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const facultyPage = `<!doctype html>
<html>
  <head><title>Faculty</title></head>
  <body>
    <h1>Faculty directory:</h1>
    <ul>
      <li>Dr. Jane Smith Professor of Engineering, jane.smith@univ.edu, +91-9876543210</li>
      <li>Rahul Verma - Placement Cell, rahul.verma@college.ac.in</li>
    </ul>
    <script>analytics()</script>
  </body>
</html>`

func newTestApp(timeout time.Duration) *App {
	cfg := Config{FetchTimeout: timeout, UserAgent: "contactscout-test"}
	ApplyDefaults(&cfg)
	if timeout > 0 {
		cfg.FetchTimeout = timeout
	}
	return New(cfg)
}

func TestExtractContacts_EndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(facultyPage))
	}))
	defer srv.Close()

	a := newTestApp(2 * time.Second)
	got, err := a.ExtractContacts(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 contacts, got %d: %+v", len(got), got)
	}

	jane := got[0]
	if jane.Name != "Dr. Jane Smith" || jane.Designation != "Professor" {
		t.Fatalf("unexpected faculty contact: %+v", jane)
	}
	if jane.Department == nil || *jane.Department != "Engineering" {
		t.Fatalf("expected Engineering from surrounding text, got %v", jane.Department)
	}
	if jane.Email == nil || *jane.Email != "jane.smith@univ.edu" {
		t.Fatalf("unexpected email: %v", jane.Email)
	}
	if jane.Phone == nil || *jane.Phone != "+91-9876543210" {
		t.Fatalf("unexpected phone: %v", jane.Phone)
	}

	rahul := got[1]
	if rahul.Name != "Rahul Verma" || rahul.Designation != "Placement Cell" {
		t.Fatalf("unexpected student contact: %+v", rahul)
	}
}

func TestExtractContacts_FetchFailureIsTyped(t *testing.T) {
	a := newTestApp(500 * time.Millisecond)
	// Port 1 is never listening; the connection is refused immediately.
	_, err := a.ExtractContacts(context.Background(), "http://127.0.0.1:1/faculty")
	if err == nil {
		t.Fatalf("expected fetch error")
	}
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FetchError, got %T", err)
	}
	if !strings.HasPrefix(err.Error(), "Failed to fetch URL: ") {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestExtractContacts_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer srv.Close()

	a := newTestApp(2 * time.Second)
	if _, err := a.ExtractContacts(context.Background(), srv.URL); err == nil {
		t.Fatalf("expected error for non-2xx status")
	}
}

func TestExtractContacts_EmptyPageYieldsEmptyList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body><p>Admissions open.</p></body></html>"))
	}))
	defer srv.Close()

	a := newTestApp(2 * time.Second)
	got, err := a.ExtractContacts(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", got)
	}
}
