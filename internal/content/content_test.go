package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault_SeedsCatalogue(t *testing.T) {
	site, err := Default()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(site.Services) != 3 {
		t.Fatalf("expected 3 services, got %d", len(site.Services))
	}
	if site.Services[0].ID != 1 || site.Services[0].Name != "Technology Solutions" {
		t.Errorf("unexpected first service: %+v", site.Services[0])
	}
	if site.Services[1].Category != "real-estate" {
		t.Errorf("expected category real-estate, got %q", site.Services[1].Category)
	}
	if strings.Contains(site.Services[0].Description, "\n") {
		t.Error("folded description should not contain newlines")
	}
	if site.About.Company != "VPCO" {
		t.Errorf("expected company VPCO, got %q", site.About.Company)
	}
	if site.About.Founded != 2025 {
		t.Errorf("expected founded 2025, got %d", site.About.Founded)
	}
	if len(site.About.Values) != 6 {
		t.Errorf("expected 6 values, got %d", len(site.About.Values))
	}
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"no services":   "about:\n  company: X\n",
		"zero id":       "services:\n  - id: 0\n    name: A\nabout:\n  company: X\n",
		"missing name":  "services:\n  - id: 1\nabout:\n  company: X\n",
		"duplicate id":  "services:\n  - id: 1\n    name: A\n  - id: 1\n    name: B\nabout:\n  company: X\n",
		"no company":    "services:\n  - id: 1\n    name: A\n",
		"invalid yaml":  "services: [",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(doc)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	doc := "services:\n  - id: 7\n    name: Audit\nabout:\n  company: Acme\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	site, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if site.Services[0].ID != 7 || site.Services[0].Category != "" {
		t.Errorf("unexpected service: %+v", site.Services[0])
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
