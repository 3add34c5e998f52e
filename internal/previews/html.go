package previews

import (
	"fmt"
	"html"
	"strings"

	"orca-backend/internal/snapshots"
)

// The fragment builders mirror the markup the downstream templating layer
// embeds verbatim. All snapshot-provided text is escaped.

func cardHTML(snap snapshots.ObjectSnapshot, attributes []snapshots.AttributeSnapshot, primary *snapshots.ActionSnapshot) string {
	var b strings.Builder

	b.WriteString(`<div class="object-card">`)
	b.WriteString(`<div class="card-header">`)
	fmt.Fprintf(&b, `<h3 class="card-title">%s</h3>`, esc(snap.Name))
	fmt.Fprintf(&b, `<p class="card-subtitle">%s</p>`, esc(truncate(snap.Definition, subtitleLimit)))
	b.WriteString(`</div>`)

	b.WriteString(`<div class="card-body"><div class="card-attributes">`)
	for _, attr := range attributes {
		b.WriteString(`<div class="card-attribute">`)
		fmt.Fprintf(&b, `<span class="attr-label">%s:</span>`, esc(attr.Name))
		fmt.Fprintf(&b, `<span class="attr-value">%s</span>`, esc(valueOrPlaceholder(attr.Value)))
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)

	if primary != nil {
		b.WriteString(`<div class="card-action">`)
		fmt.Fprintf(&b, `<button class="btn btn-primary">%s</button>`, esc(primary.Description))
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div></div>`)

	return b.String()
}

func detailHTML(snap snapshots.ObjectSnapshot) string {
	var b strings.Builder

	b.WriteString(`<div class="object-detail">`)
	b.WriteString(`<div class="detail-header">`)
	fmt.Fprintf(&b, `<h2 class="detail-title">%s</h2>`, esc(snap.Name))
	fmt.Fprintf(&b, `<p class="detail-definition">%s</p>`, esc(textOrFallback(snap.Definition)))
	b.WriteString(`</div>`)

	b.WriteString(`<div class="detail-section"><h3>Attributes</h3><div class="detail-attributes">`)
	for _, attr := range snap.AllAttributes {
		b.WriteString(`<div class="detail-attribute"><div class="attr-header">`)
		fmt.Fprintf(&b, `<span class="attr-name">%s</span>`, esc(attr.Name))
		fmt.Fprintf(&b, `<span class="attr-type">(%s)</span>`, esc(string(attr.DataType)))
		if attr.IsCore {
			b.WriteString(`<span class="core-badge">Core</span>`)
		}
		b.WriteString(`</div>`)
		fmt.Fprintf(&b, `<div class="attr-value">%s</div>`, esc(valueOrPlaceholder(attr.Value)))
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div></div>`)

	b.WriteString(`<div class="detail-section"><h3>Available Actions</h3><div class="detail-actions">`)
	for _, action := range snap.AllActions {
		class := "detail-action"
		if action.IsPrimary {
			class += " primary"
		}
		fmt.Fprintf(&b, `<div class="%s">`, class)
		fmt.Fprintf(&b, `<span class="crud-badge crud-%s">%s</span>`, esc(string(action.CRUDType)), esc(strings.ToUpper(string(action.CRUDType))))
		fmt.Fprintf(&b, `<span class="action-description">%s</span>`, esc(action.Description))
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div></div></div>`)

	return b.String()
}

func listHTML(snap snapshots.ObjectSnapshot, columns []snapshots.AttributeSnapshot) string {
	var b strings.Builder

	b.WriteString(`<div class="object-list"><table class="list-table"><thead><tr>`)
	b.WriteString(`<th>Name</th>`)
	for _, col := range columns {
		fmt.Fprintf(&b, `<th>%s</th>`, esc(col.Name))
	}
	b.WriteString(`</tr></thead><tbody><tr>`)
	fmt.Fprintf(&b, `<td><strong>%s</strong></td>`, esc(snap.Name))
	for _, col := range columns {
		fmt.Fprintf(&b, `<td>%s</td>`, esc(valueOrPlaceholder(col.Value)))
	}
	b.WriteString(`</tr></tbody></table></div>`)

	return b.String()
}

func landingHTML(snap snapshots.ObjectSnapshot, groups []ActionGroup) string {
	var b strings.Builder

	b.WriteString(`<div class="object-landing">`)
	b.WriteString(`<div class="landing-header">`)
	fmt.Fprintf(&b, `<h1 class="landing-title">%s</h1>`, esc(snap.Name))
	fmt.Fprintf(&b, `<p class="landing-description">%s</p>`, esc(textOrFallback(snap.Definition)))
	b.WriteString(`</div>`)

	b.WriteString(`<div class="landing-summary"><h3>Key Information</h3><div class="landing-attributes">`)
	for _, attr := range snap.CoreAttributes {
		b.WriteString(`<div class="landing-attribute">`)
		fmt.Fprintf(&b, `<span class="attr-label">%s:</span>`, esc(attr.Name))
		fmt.Fprintf(&b, `<span class="attr-value">%s</span>`, esc(valueOrPlaceholder(attr.Value)))
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div></div>`)

	b.WriteString(`<div class="landing-actions"><h3>What You Can Do</h3><div class="action-groups">`)
	for _, group := range groups {
		b.WriteString(`<div class="action-group">`)
		fmt.Fprintf(&b, `<h4 class="group-title">%s Actions</h4>`, esc(titleCase(string(group.CRUDType))))
		b.WriteString(`<div class="group-actions">`)
		for _, action := range group.Actions {
			class := "landing-action"
			if action.IsPrimary {
				class += " primary"
			}
			fmt.Fprintf(&b, `<button class="%s">%s</button>`, class, esc(action.Description))
		}
		b.WriteString(`</div></div>`)
	}
	b.WriteString(`</div></div></div>`)

	return b.String()
}

func esc(s string) string {
	return html.EscapeString(s)
}

func textOrFallback(s string) string {
	if strings.TrimSpace(s) == "" {
		return noDefinitionFallback
	}
	return s
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
