package previews

import "orca-backend/internal/snapshots"

// Shape type discriminators.
const (
	ShapeCard    = "card"
	ShapeDetail  = "detail"
	ShapeList    = "list"
	ShapeLanding = "landing"
)

// CardPreview is the compact shape: up to three core attributes, the first
// primary action, and a truncated definition.
type CardPreview struct {
	Type          string                         `json:"type"`
	Title         string                         `json:"title"`
	Subtitle      string                         `json:"subtitle"`
	Attributes    []snapshots.AttributeSnapshot  `json:"attributes"`
	PrimaryAction *snapshots.ActionSnapshot      `json:"primaryAction,omitempty"`
	HTML          string                         `json:"html"`
}

// DetailPreview is the full shape: every attribute and action with their
// core/primary markers, and the complete definition.
type DetailPreview struct {
	Type       string                        `json:"type"`
	Title      string                        `json:"title"`
	Definition string                        `json:"definition"`
	Attributes []snapshots.AttributeSnapshot `json:"attributes"`
	Actions    []snapshots.ActionSnapshot    `json:"actions"`
	HTML       string                        `json:"html"`
}

// ListPreview is the tabular shape: the object name plus up to five core
// attributes as columns.
type ListPreview struct {
	Type    string   `json:"type"`
	Columns []string `json:"columns"`
	Values  []string `json:"values"`
	HTML    string   `json:"html"`
}

// ActionGroup collects the actions sharing one CRUD type; groups appear in
// canonical CRUD order and empty groups are omitted.
type ActionGroup struct {
	CRUDType snapshots.CRUDType         `json:"crudType"`
	Actions  []snapshots.ActionSnapshot `json:"actions"`
}

// LandingPreview is the overview shape: all core attributes and every action
// grouped by CRUD type.
type LandingPreview struct {
	Type           string                        `json:"type"`
	Title          string                        `json:"title"`
	Definition     string                        `json:"definition"`
	CoreAttributes []snapshots.AttributeSnapshot `json:"coreAttributes"`
	ActionGroups   []ActionGroup                 `json:"actionGroups"`
	HTML           string                        `json:"html"`
}

// PreviewSet bundles the four shapes rendered from one snapshot.
type PreviewSet struct {
	Card    CardPreview    `json:"card"`
	Detail  DetailPreview  `json:"detail"`
	List    ListPreview    `json:"list"`
	Landing LandingPreview `json:"landing"`
}
