package export

import (
	"strings"
	"testing"
	"time"

	"orca-backend/internal/previews"
	"orca-backend/internal/projects"
	"orca-backend/internal/scoring"
	"orca-backend/internal/snapshots"
)

func testProject() projects.Project {
	return projects.Project{
		ID:          "proj-1",
		Title:       "Team Tracker",
		Description: "Planning workspace for the platform team.",
		CreatedAt:   time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
}

func renderedEntry(name string, score int) previews.ObjectPreviews {
	snap := snapshots.ObjectSnapshot{
		ID:         "obj-" + strings.ToLower(name),
		Name:       name,
		Definition: "A fully described domain object used in planning.",
	}
	set := previews.Render(snap)
	return previews.ObjectPreviews{
		ObjectID:      snap.ID,
		ObjectName:    name,
		PriorityPhase: snapshots.PhaseNow,
		Card:          set.Card,
		Detail:        set.Detail,
		List:          set.List,
		Landing:       set.Landing,
		CompletionScore: scoring.CompletionScore{
			TotalScore: score,
			Grade:      scoring.Grade(score),
		},
	}
}

func TestComposeHTMLDocumentStructure(t *testing.T) {
	html := ComposeHTML(testProject(), []previews.ObjectPreviews{renderedEntry("Task", 85)})

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>CDLL Previews - Team Tracker</title>",
		"<h1>CDLL Previews: Team Tracker</h1>",
		"Planning workspace for the platform team.",
		"Generated from OOUX ORCA domain model",
		"Generated by OOUX ORCA Project Builder",
		"📱 Card View",
		"📄 Detail View",
		"📋 List View",
		"🏠 Landing View",
		`<span class="score">85%</span>`,
		`<span class="grade">Grade B</span>`,
		"completion-score grade-b",
		"priority-badge priority-now",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestComposeHTMLEmbedsStyles(t *testing.T) {
	html := ComposeHTML(testProject(), nil)
	if !strings.Contains(html, "<style>") || !strings.Contains(html, ".object-card") {
		t.Fatal("stylesheet not embedded")
	}
	// Self-contained: no external resources.
	if strings.Contains(html, "<link") || strings.Contains(html, "src=") {
		t.Error("document references external resources")
	}
}

func TestComposeHTMLEscapesProjectText(t *testing.T) {
	project := testProject()
	project.Title = `Tracker <script>alert("x")</script>`
	project.Description = "Desc & <b>more</b>"

	html := ComposeHTML(project, nil)
	if strings.Contains(html, "<script>alert") {
		t.Fatal("unescaped project title")
	}
	if !strings.Contains(html, "Desc &amp; &lt;b&gt;more&lt;/b&gt;") {
		t.Error("description not escaped")
	}
}

func TestComposeHTMLMissingDescriptionFallback(t *testing.T) {
	project := testProject()
	project.Description = "   "

	html := ComposeHTML(project, nil)
	if !strings.Contains(html, "No description provided") {
		t.Fatal("missing description fallback")
	}
}

func TestComposeHTMLErrorEntries(t *testing.T) {
	entries := []previews.ObjectPreviews{
		renderedEntry("Task", 90),
		{ObjectID: "obj-2", ObjectName: "Broken", Error: "snapshot unavailable"},
	}

	html := ComposeHTML(testProject(), entries)
	if !strings.Contains(html, `<div class="preview-error">`) {
		t.Fatal("error block missing")
	}
	if !strings.Contains(html, "<h2>Broken - Error</h2>") {
		t.Error("error heading missing")
	}
	if !strings.Contains(html, "snapshot unavailable") {
		t.Error("error message missing")
	}
	// The healthy entry still renders fully.
	if !strings.Contains(html, `<div class="object-preview">`) {
		t.Error("healthy entry missing")
	}
}

func TestComposeHTMLWarningsBlock(t *testing.T) {
	entry := renderedEntry("Task", 40)
	entry.Warnings = scoring.Warnings(scoring.DefaultConfig(), snapshots.ObjectSnapshot{ID: "obj-1", Name: "Task"})

	html := ComposeHTML(testProject(), []previews.ObjectPreviews{entry})
	if !strings.Contains(html, "⚠ Warnings") {
		t.Fatal("warnings block missing")
	}
	if !strings.Contains(html, "No primary actions defined.") {
		t.Error("warning message missing")
	}

	// Without warnings the block is absent.
	entry.Warnings = nil
	html = ComposeHTML(testProject(), []previews.ObjectPreviews{entry})
	if strings.Contains(html, "⚠ Warnings") {
		t.Error("warnings block rendered without warnings")
	}
}

func TestComposeHTMLDeterministic(t *testing.T) {
	entries := []previews.ObjectPreviews{renderedEntry("Task", 70), renderedEntry("Comment", 55)}
	first := ComposeHTML(testProject(), entries)
	second := ComposeHTML(testProject(), entries)
	if first != second {
		t.Fatal("repeated composition differs")
	}
}
