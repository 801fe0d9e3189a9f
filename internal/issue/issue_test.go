// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestId_Constants(t *testing.T) {
	ids := []Id{
		SourceScriptMissingId,
		PackageManagerNotFoundId,
		CommandNotResolvableId,
		RuntimeTooOldId,
	}

	seen := make(map[Id]bool)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate ID: %d", id)
		}
		seen[id] = true
	}

	if SourceScriptMissingId != 1 {
		t.Errorf("SourceScriptMissingId = %d, want 1", SourceScriptMissingId)
	}
}

func TestLookup(t *testing.T) {
	for _, id := range Ids() {
		issue := Lookup(id)
		if issue == nil {
			t.Fatalf("Lookup(%d) returned nil", id)
		}
		if issue.Id() != id {
			t.Errorf("Lookup(%d).Id() = %d", id, issue.Id())
		}
		if issue.MarkdownMsg() == "" {
			t.Errorf("issue %d has empty markdown message", id)
		}
	}

	if Lookup(Id(999)) != nil {
		t.Error("Lookup(999) should return nil")
	}
}

func TestIssue_Render(t *testing.T) {
	// Stub out glamour so the test does not depend on terminal detection.
	origRender := render
	defer func() { render = origRender }()
	render = func(in, _ string) (string, error) {
		return in, nil
	}

	got, err := Lookup(CommandNotResolvableId).Render("auto")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(got, "not on PATH") {
		t.Errorf("Render() missing guidance text, got %q", got)
	}
}

func TestIssue_RenderIncludesLinks(t *testing.T) {
	origRender := render
	defer func() { render = origRender }()
	render = func(in, _ string) (string, error) {
		return in, nil
	}

	got, err := Lookup(RuntimeTooOldId).Render("auto")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(got, "See also") {
		t.Errorf("Render() missing See also section, got %q", got)
	}
	if !strings.Contains(got, "python.org") {
		t.Errorf("Render() missing external link, got %q", got)
	}
}

func TestIssue_ExtLinksCloned(t *testing.T) {
	issue := Lookup(RuntimeTooOldId)
	links := issue.ExtLinks()
	if len(links) == 0 {
		t.Fatal("expected at least one external link")
	}
	links[0] = "mutated"
	if issue.ExtLinks()[0] == "mutated" {
		t.Error("ExtLinks() should return a copy")
	}
}
