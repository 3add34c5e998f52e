package scoring

import (
	"fmt"

	"orca-backend/internal/snapshots"
)

// WarningType enumerates the deficiency classes the engine reports.
type WarningType string

const (
	WarningMissingDefinition          WarningType = "missing_definition"
	WarningInsufficientCoreAttributes WarningType = "insufficient_core_attributes"
	WarningNoPrimaryActions           WarningType = "no_primary_actions"
	WarningNoReadAction               WarningType = "no_read_action"
)

// Warning reports one specific deficiency on a snapshot.
type Warning struct {
	Type       WarningType `json:"type"`
	Message    string      `json:"message"`
	Suggestion string      `json:"suggestion"`
}

// warningRules is evaluated in order; emission order is fixed regardless of
// snapshot contents so downstream consumers can rely on it.
var warningRules = []struct {
	typ     WarningType
	applies func(Config, snapshots.ObjectSnapshot) bool
	build   func(snapshots.ObjectSnapshot) Warning
}{
	{
		typ: WarningMissingDefinition,
		applies: func(cfg Config, snap snapshots.ObjectSnapshot) bool {
			return trimmedLength(snap.Definition) < cfg.DefinitionPartialLength
		},
		build: func(snapshots.ObjectSnapshot) Warning {
			return Warning{
				Type:       WarningMissingDefinition,
				Message:    "Object definition is missing or too short. Add a clear description of what this object represents.",
				Suggestion: "Add a definition explaining the purpose and key characteristics of this object.",
			}
		},
	},
	{
		typ: WarningInsufficientCoreAttributes,
		applies: func(cfg Config, snap snapshots.ObjectSnapshot) bool {
			return len(snap.CoreAttributes) < cfg.CoreAttributesMinimum
		},
		build: func(snap snapshots.ObjectSnapshot) Warning {
			return Warning{
				Type:       WarningInsufficientCoreAttributes,
				Message:    fmt.Sprintf("Only %d core attributes defined. Objects typically need 3-5 core attributes for meaningful UI generation.", len(snap.CoreAttributes)),
				Suggestion: "Mark 3-5 key attributes as 'core' to improve preview quality.",
			}
		},
	},
	{
		typ: WarningNoPrimaryActions,
		applies: func(_ Config, snap snapshots.ObjectSnapshot) bool {
			return len(snap.PrimaryActions) == 0
		},
		build: func(snapshots.ObjectSnapshot) Warning {
			return Warning{
				Type:       WarningNoPrimaryActions,
				Message:    "No primary actions defined. Primary actions are essential for user interface design.",
				Suggestion: "Mark the most common user actions as 'primary'.",
			}
		},
	},
	{
		typ: WarningNoReadAction,
		applies: func(_ Config, snap snapshots.ObjectSnapshot) bool {
			for _, action := range snap.AllActions {
				if action.CRUDType == snapshots.CRUDRead {
					return false
				}
			}
			return true
		},
		build: func(snapshots.ObjectSnapshot) Warning {
			return Warning{
				Type:       WarningNoReadAction,
				Message:    "No read action defined. Users need a way to view object details.",
				Suggestion: "Add a read action describing how users can view this object.",
			}
		},
	},
}

// Warnings inspects a snapshot for deficiencies. The rules are independent,
// never mutually exclusive, and emitted in a fixed order with no duplicates.
func Warnings(cfg Config, snap snapshots.ObjectSnapshot) []Warning {
	snap = snap.Normalize()
	out := make([]Warning, 0, len(warningRules))
	for _, rule := range warningRules {
		if rule.applies(cfg, snap) {
			out = append(out, rule.build(snap))
		}
	}
	return out
}
