package snapshots

import (
	"errors"
	"strings"
)

// DataType classifies an attribute value.
type DataType string

const (
	DataTypeText      DataType = "text"
	DataTypeNumber    DataType = "number"
	DataTypeDate      DataType = "date"
	DataTypeBoolean   DataType = "boolean"
	DataTypeReference DataType = "reference"
	DataTypeList      DataType = "list"
)

// CRUDType classifies a behavioral action.
type CRUDType string

const (
	CRUDCreate CRUDType = "create"
	CRUDRead   CRUDType = "read"
	CRUDUpdate CRUDType = "update"
	CRUDDelete CRUDType = "delete"
	CRUDNone   CRUDType = "none"
)

// PriorityPhase is the prioritization bucket assigned to an object.
type PriorityPhase string

const (
	PhaseNow        PriorityPhase = "now"
	PhaseNext       PriorityPhase = "next"
	PhaseLater      PriorityPhase = "later"
	PhaseUnassigned PriorityPhase = "unassigned"
)

// ParsePhase normalizes and validates a priority phase string.
func ParsePhase(raw string) (PriorityPhase, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(PhaseNow):
		return PhaseNow, nil
	case string(PhaseNext):
		return PhaseNext, nil
	case string(PhaseLater):
		return PhaseLater, nil
	case string(PhaseUnassigned):
		return PhaseUnassigned, nil
	default:
		return "", errors.New("priority phase is invalid")
	}
}

// AttributeSnapshot is one attribute captured at snapshot time.
type AttributeSnapshot struct {
	Name     string   `json:"name"`
	DataType DataType `json:"dataType"`
	Value    *string  `json:"value"`
	IsCore   bool     `json:"isCore"`
}

// ActionSnapshot is one behavioral action captured at snapshot time.
type ActionSnapshot struct {
	Description   string   `json:"description"`
	CRUDType      CRUDType `json:"crudType"`
	IsPrimary     bool     `json:"isPrimary"`
	BusinessValue *string  `json:"businessValue,omitempty"`
}

// ObjectSnapshot is an immutable, fully materialized view of one domain
// object. It is assembled fresh per request and never mutated downstream.
type ObjectSnapshot struct {
	ID                string              `json:"id"`
	Name              string              `json:"name"`
	Definition        string              `json:"definition"`
	CoreAttributes    []AttributeSnapshot `json:"coreAttributes"`
	AllAttributes     []AttributeSnapshot `json:"allAttributes"`
	PrimaryActions    []ActionSnapshot    `json:"primaryActions"`
	AllActions        []ActionSnapshot    `json:"allActions"`
	RelationshipCount int                 `json:"relationshipCount"`
	PriorityPhase     PriorityPhase       `json:"priorityPhase"`
}

func definedLength(s string) int {
	return len([]rune(strings.TrimSpace(s)))
}

// Normalize replaces absent collections with empty ones so scoring and
// rendering always see well-formed input. A malformed snapshot is defaulted,
// never rejected. Nil core and primary slices are derived from the flags on
// the full collections.
func (s ObjectSnapshot) Normalize() ObjectSnapshot {
	if s.AllAttributes == nil {
		s.AllAttributes = []AttributeSnapshot{}
	}
	if s.AllActions == nil {
		s.AllActions = []ActionSnapshot{}
	}
	if s.CoreAttributes == nil {
		s.CoreAttributes = []AttributeSnapshot{}
		for _, attr := range s.AllAttributes {
			if attr.IsCore {
				s.CoreAttributes = append(s.CoreAttributes, attr)
			}
		}
	}
	if s.PrimaryActions == nil {
		s.PrimaryActions = []ActionSnapshot{}
		for _, action := range s.AllActions {
			if action.IsPrimary {
				s.PrimaryActions = append(s.PrimaryActions, action)
			}
		}
	}
	if s.RelationshipCount < 0 {
		s.RelationshipCount = 0
	}
	if s.PriorityPhase == "" {
		s.PriorityPhase = PhaseUnassigned
	}
	return s
}
