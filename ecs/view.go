package ecs

import (
	"reflect"
	"strings"
)

// validator is implemented by component records that carry their own shape check.
type validator interface {
	Valid() bool
}

// View narrows an opaque Components bag to a typed bundle struct.
// The type T must be a struct whose tagged fields are pointers to component records:
//
//	type bundle struct {
//		Position *Position `ecs:"position"`
//		Mesh     *Mesh     `ecs:"mesh,optional"`
//	}
//
// A required kind must be present, hold a pointer of the field's type and pass the
// record's Valid method when it has one. Optional kinds that fail the same test are
// left nil. Untagged fields are ignored.
type View[T any] struct {
	kinds      []string
	optional   []bool
	fieldIndex []int
}

// NewView creates a view for the bundle struct T.
// Panics if T is not a struct or a tagged field is malformed.
func NewView[T any]() *View[T] {
	structType := reflect.TypeFor[T]()
	if structType.Kind() != reflect.Struct {
		panic("View type parameter must be a struct")
	}

	v := &View[T]{}
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)

		tag, ok := field.Tag.Lookup("ecs")
		if !ok {
			continue
		}

		if field.Type.Kind() != reflect.Ptr {
			panic("View struct field " + field.Name + " must be a pointer type")
		}
		if !field.IsExported() {
			panic("View struct field " + field.Name + " must be exported")
		}

		kind, modifier, _ := strings.Cut(tag, ",")
		if kind == "" {
			panic("empty ecs tag on View struct field " + field.Name)
		}
		if modifier != "" && modifier != "optional" {
			panic("invalid ecs tag value: \"" + tag + "\" (only \"optional\" is supported)")
		}

		v.kinds = append(v.kinds, kind)
		v.optional = append(v.optional, modifier == "optional")
		v.fieldIndex = append(v.fieldIndex, i)
	}

	if len(v.kinds) == 0 {
		panic("View struct " + structType.String() + " has no ecs tagged fields")
	}

	return v
}

// Required returns the component kinds a bag must hold to match this view.
func (v *View[T]) Required() []string {
	required := make([]string, 0, len(v.kinds))
	for i, kind := range v.kinds {
		if !v.optional[i] {
			required = append(required, kind)
		}
	}
	return required
}

// Fill populates out with pointers taken from components.
// Returns false if any required kind is missing or invalid; out may then be
// partially written.
func (v *View[T]) Fill(components Components, out *T) bool {
	result := reflect.ValueOf(out).Elem()

	for i, kind := range v.kinds {
		field := result.Field(v.fieldIndex[i])

		value, ok := v.lookup(components, kind, field.Type())
		if !ok {
			if !v.optional[i] {
				return false
			}
			field.SetZero()
			continue
		}

		field.Set(value)
	}

	return true
}

// Matches reports whether components satisfy every required kind of the view.
func (v *View[T]) Matches(components Components) bool {
	var scratch T
	return v.Fill(components, &scratch)
}

// Get returns a populated bundle, or nil if components do not match.
func (v *View[T]) Get(components Components) *T {
	var result T
	if !v.Fill(components, &result) {
		return nil
	}
	return &result
}

func (v *View[T]) lookup(components Components, kind string, want reflect.Type) (reflect.Value, bool) {
	raw, ok := components[kind]
	if !ok || raw == nil {
		return reflect.Value{}, false
	}

	value := reflect.ValueOf(raw)
	if value.Type() != want || value.IsNil() {
		return reflect.Value{}, false
	}

	if check, ok := raw.(validator); ok && !check.Valid() {
		return reflect.Value{}, false
	}

	return value, true
}
