package previews

import (
	"orca-backend/internal/snapshots"
)

const (
	cardAttributeLimit   = 3
	listColumnLimit      = 5
	subtitleLimit        = 100
	valuePlaceholder     = "—" // em dash for absent values
	noDefinitionFallback = "No definition provided"
)

// crudGroupOrder fixes the landing shape's group ordering so rendering is
// deterministic regardless of action input order within a group set.
var crudGroupOrder = []snapshots.CRUDType{
	snapshots.CRUDCreate,
	snapshots.CRUDRead,
	snapshots.CRUDUpdate,
	snapshots.CRUDDelete,
	snapshots.CRUDNone,
}

// Render produces all four preview shapes for one snapshot. Each shape is an
// independent pure function of the snapshot; none reads another's output.
func Render(snap snapshots.ObjectSnapshot) PreviewSet {
	snap = snap.Normalize()
	return PreviewSet{
		Card:    RenderCard(snap),
		Detail:  RenderDetail(snap),
		List:    RenderList(snap),
		Landing: RenderLanding(snap),
	}
}

// RenderCard builds the compact card shape.
func RenderCard(snap snapshots.ObjectSnapshot) CardPreview {
	snap = snap.Normalize()

	attributes := snap.CoreAttributes
	if len(attributes) > cardAttributeLimit {
		attributes = attributes[:cardAttributeLimit]
	}

	var primary *snapshots.ActionSnapshot
	if len(snap.PrimaryActions) > 0 {
		action := snap.PrimaryActions[0]
		primary = &action
	}

	return CardPreview{
		Type:          ShapeCard,
		Title:         snap.Name,
		Subtitle:      truncate(snap.Definition, subtitleLimit),
		Attributes:    attributes,
		PrimaryAction: primary,
		HTML:          cardHTML(snap, attributes, primary),
	}
}

// RenderDetail builds the full detail shape.
func RenderDetail(snap snapshots.ObjectSnapshot) DetailPreview {
	snap = snap.Normalize()
	return DetailPreview{
		Type:       ShapeDetail,
		Title:      snap.Name,
		Definition: snap.Definition,
		Attributes: snap.AllAttributes,
		Actions:    snap.AllActions,
		HTML:       detailHTML(snap),
	}
}

// RenderList builds the table-row shape, the object name prepended as the
// first column.
func RenderList(snap snapshots.ObjectSnapshot) ListPreview {
	snap = snap.Normalize()

	columns := snap.CoreAttributes
	if len(columns) > listColumnLimit {
		columns = columns[:listColumnLimit]
	}

	headers := make([]string, 0, len(columns)+1)
	values := make([]string, 0, len(columns)+1)
	headers = append(headers, "Name")
	values = append(values, snap.Name)
	for _, col := range columns {
		headers = append(headers, col.Name)
		values = append(values, valueOrPlaceholder(col.Value))
	}

	return ListPreview{
		Type:    ShapeList,
		Columns: headers,
		Values:  values,
		HTML:    listHTML(snap, columns),
	}
}

// RenderLanding builds the overview shape with actions grouped by CRUD type.
func RenderLanding(snap snapshots.ObjectSnapshot) LandingPreview {
	snap = snap.Normalize()

	grouped := make(map[snapshots.CRUDType][]snapshots.ActionSnapshot, len(crudGroupOrder))
	for _, action := range snap.AllActions {
		grouped[action.CRUDType] = append(grouped[action.CRUDType], action)
	}

	groups := make([]ActionGroup, 0, len(grouped))
	for _, crudType := range crudGroupOrder {
		actions := grouped[crudType]
		if len(actions) == 0 {
			continue
		}
		groups = append(groups, ActionGroup{CRUDType: crudType, Actions: actions})
	}

	return LandingPreview{
		Type:           ShapeLanding,
		Title:          snap.Name,
		Definition:     snap.Definition,
		CoreAttributes: snap.CoreAttributes,
		ActionGroups:   groups,
		HTML:           landingHTML(snap, groups),
	}
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

func valueOrPlaceholder(value *string) string {
	if value == nil || *value == "" {
		return valuePlaceholder
	}
	return *value
}
