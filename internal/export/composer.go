package export

import (
	"fmt"
	"html"
	"strings"

	"orca-backend/internal/previews"
	"orca-backend/internal/projects"
)

// ComposeHTML builds a single self-contained HTML document from the project
// header and the per-object preview entries. Preview fragments are already
// escaped by the renderer and are embedded as-is; everything else is escaped
// here. Pure: no I/O, deterministic for the same inputs.
func ComposeHTML(project projects.Project, entries []previews.ObjectPreviews) string {
	description := strings.TrimSpace(project.Description)
	if description == "" {
		description = "No description provided"
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString(`<html lang="en">` + "\n<head>\n")
	b.WriteString(`    <meta charset="UTF-8">` + "\n")
	b.WriteString(`    <meta name="viewport" content="width=device-width, initial-scale=1.0">` + "\n")
	b.WriteString("    <title>CDLL Previews - " + esc(project.Title) + "</title>\n")
	b.WriteString("    <style>\n" + exportCSS + "\n    </style>\n</head>\n<body>\n")
	b.WriteString(`    <div class="export-container">` + "\n")
	b.WriteString(`        <header class="export-header">` + "\n")
	b.WriteString("            <h1>CDLL Previews: " + esc(project.Title) + "</h1>\n")
	b.WriteString(`            <p class="project-description">` + esc(description) + "</p>\n")
	b.WriteString(`            <p class="export-info">Generated from OOUX ORCA domain model</p>` + "\n")
	b.WriteString("        </header>\n")
	b.WriteString(`        <main class="export-content">` + "\n")
	for _, entry := range entries {
		writeEntry(&b, entry)
	}
	b.WriteString("        </main>\n")
	b.WriteString(`        <footer class="export-footer">` + "\n")
	b.WriteString("            <p>Generated by OOUX ORCA Project Builder</p>\n")
	b.WriteString("        </footer>\n")
	b.WriteString("    </div>\n</body>\n</html>")
	return b.String()
}

func writeEntry(b *strings.Builder, entry previews.ObjectPreviews) {
	if entry.Failed() {
		b.WriteString(`<div class="preview-error">`)
		b.WriteString("<h2>" + esc(entry.ObjectName) + " - Error</h2>")
		b.WriteString(`<p class="error-message">` + esc(entry.Error) + "</p>")
		b.WriteString("</div>\n")
		return
	}

	phase := string(entry.PriorityPhase)
	score := entry.CompletionScore
	gradeClass := "grade-" + strings.ToLower(score.Grade)

	b.WriteString(`<div class="object-preview">`)
	b.WriteString(`<div class="preview-header">`)
	b.WriteString("<h2>" + esc(entry.ObjectName))
	b.WriteString(fmt.Sprintf(` <span class="priority-badge priority-%s">%s</span>`, phase, esc(phase)))
	b.WriteString("</h2>")
	b.WriteString(fmt.Sprintf(`<div class="completion-score %s">`, gradeClass))
	b.WriteString(fmt.Sprintf(`<span class="score">%d%%</span>`, score.TotalScore))
	b.WriteString(`<span class="grade">Grade ` + esc(score.Grade) + "</span>")
	b.WriteString("</div></div>")

	if len(entry.Warnings) > 0 {
		b.WriteString(`<div class="preview-warnings"><h4>⚠ Warnings</h4><ul>`)
		for _, warning := range entry.Warnings {
			b.WriteString("<li>" + esc(warning.Message) + "</li>")
		}
		b.WriteString("</ul></div>")
	}

	b.WriteString(`<div class="preview-tabs">`)
	writeSection(b, "📱 Card View", entry.Card.HTML)
	writeSection(b, "📄 Detail View", entry.Detail.HTML)
	writeSection(b, "📋 List View", entry.List.HTML)
	writeSection(b, "🏠 Landing View", entry.Landing.HTML)
	b.WriteString("</div></div>\n")
}

func writeSection(b *strings.Builder, title, fragment string) {
	b.WriteString(`<div class="preview-section"><h3>` + title + "</h3>")
	b.WriteString(fragment)
	b.WriteString("</div>")
}

func esc(s string) string {
	return html.EscapeString(s)
}
