package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestParsePages_CoversEveryTemplate(t *testing.T) {
	entries, err := templatesFS.ReadDir("templates")
	if err != nil {
		t.Fatalf("read templates: %v", err)
	}
	for _, e := range entries {
		if e.Name() == "layout.html" {
			continue
		}
		if _, ok := pages[e.Name()]; !ok {
			t.Errorf("no parsed set for %s", e.Name())
		}
	}
}

func TestRenderTemplate_UnknownPage(t *testing.T) {
	rr := httptest.NewRecorder()
	renderTemplate(rr, "nope.html", nil)
	if rr.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want 500", rr.Code)
	}
}

func TestRenderTemplate_LayoutPage(t *testing.T) {
	rr := httptest.NewRecorder()
	renderTemplate(rr, "venues.html", map[string]interface{}{
		"Username": "alice",
		"Venues":   nil,
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "<nav>") || !strings.Contains(body, "alice") {
		t.Errorf("layout not applied: %s", body)
	}
}
