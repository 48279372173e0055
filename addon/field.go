/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package addon

import (
	"fmt"
	"strings"
)

// FieldKind is one entry of the closed field type vocabulary.
type FieldKind int

// Field kinds in vocabulary order. Order matters: type hints resolve to the
// first kind with a matching name.
const (
	KindBoolean FieldKind = iota
	KindBooleanList
	KindCollection
	KindEnumeration
	KindFloat
	KindFloatVector
	KindInteger
	KindIntegerVector
	KindReference
	KindRemovable
	KindString
)

type kindNames struct {
	canonical    string
	propertyType string
}

var vocabulary = []kindNames{
	KindBoolean:       {"boolean", "BoolProperty"},
	KindBooleanList:   {"boolean-list", "BoolVectorProperty"},
	KindCollection:    {"collection", "CollectionProperty"},
	KindEnumeration:   {"enumeration", "EnumProperty"},
	KindFloat:         {"float", "FloatProperty"},
	KindFloatVector:   {"float-vector", "FloatVectorProperty"},
	KindInteger:       {"integer", "IntProperty"},
	KindIntegerVector: {"integer-vector", "IntVectorProperty"},
	KindReference:     {"reference", "PointerProperty"},
	KindRemovable:     {"removable", "RemoveProperty"},
	KindString:        {"string", "StringProperty"},
}

// Kinds returns the vocabulary in declaration order.
func Kinds() []FieldKind {
	kinds := make([]FieldKind, len(vocabulary))
	for i := range vocabulary {
		kinds[i] = FieldKind(i)
	}
	return kinds
}

// ResolveKind resolves a free-text type hint by case-insensitive prefix match
// against each kind's canonical name and property type, e.g. "Int" and
// "IntProperty" both resolve to KindInteger.
// The first kind in vocabulary order wins.
func ResolveKind(hint string) (FieldKind, bool) {
	hint = Lower(strings.TrimSpace(hint))
	for i, names := range vocabulary {
		if strings.HasPrefix(names.canonical, hint) || strings.HasPrefix(Lower(names.propertyType), hint) {
			return FieldKind(i), true
		}
	}
	return 0, false
}

func (k FieldKind) String() string {
	if k < 0 || int(k) >= len(vocabulary) {
		return fmt.Sprintf("FieldKind(%d)", int(k))
	}
	return vocabulary[k].canonical
}

// PropertyType returns the Blender property constructor for this kind.
func (k FieldKind) PropertyType() string {
	if k < 0 || int(k) >= len(vocabulary) {
		return ""
	}
	return vocabulary[k].propertyType
}

// MarshalText implements encoding.TextMarshaler.
func (k FieldKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using canonical names.
func (k *FieldKind) UnmarshalText(text []byte) error {
	for i, names := range vocabulary {
		if names.canonical == string(text) {
			*k = FieldKind(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnresolvedFieldType, text)
}

// FieldDef is a declared data field of the add-on.
type FieldDef struct {
	// Name is the display text as written.
	Name string `json:"name" yaml:"name"`

	// ID is the normalized identifier, unique within a Definition.
	ID string `json:"id" yaml:"id"`

	// Description defaults to "Enter <name>".
	Description string `json:"description" yaml:"description"`

	// Kind is the resolved field type.
	Kind FieldKind `json:"kind" yaml:"kind"`

	// Options is passed through to the renderer uninterpreted.
	Options string `json:"options,omitempty" yaml:"options,omitempty"`
}

// DefaultDescription is the description synthesized for a field without one.
func DefaultDescription(name string) string {
	return "Enter " + Lower(name)
}
