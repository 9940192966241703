package validate

import (
	"encoding/json"
	"fmt"
	"sort"
)

// ErrorTree mirrors the failing part of a validated object: one entry
// per field that produced at least one violation. A fully valid object
// produces no tree at all, never an empty populated one, and the tree
// never contains fields absent from the rule-set.
type ErrorTree map[string]*FieldError

// FieldError carries the failures of one field. Exactly one group is
// populated, matching the field's rule kind: Violations for value
// checks, Fields for a nested object, Array for an array field.
type FieldError struct {
	Violations []string
	Fields     ErrorTree
	Array      *ArrayError
}

// MarshalJSON renders the populated group directly: a plain list of
// violation messages, a nested error object, or the array error shape.
func (e *FieldError) MarshalJSON() ([]byte, error) {
	switch {
	case e.Array != nil:
		return json.Marshal(e.Array)
	case len(e.Fields) > 0:
		return json.Marshal(e.Fields)
	default:
		return json.Marshal(e.Violations)
	}
}

// ArrayError splits an array field's failures into whole-array
// violations and per-element error trees. Either part may be absent;
// absent parts are omitted from the JSON form.
type ArrayError struct {
	Rules    []string       `json:"arrayErrors,omitempty"`
	Elements []ElementError `json:"arrayElementErrors,omitempty"`
}

// ElementError pins one failing element to its position in the source
// array and keeps the value that failed. Elements appear in ascending
// index order; passing elements are omitted entirely.
type ElementError struct {
	Index          int       `json:"index"`
	Errors         ErrorTree `json:"errors"`
	AttemptedValue any       `json:"attemptedValue"`
}

// Flatten converts the tree into dotted and indexed paths, such as
// "customer.email" or "prices[2].price", mapped to their violation
// messages. Flat consumers like form renderers key their fields this
// way. Whole-array violations land on the array field's own path.
func (t ErrorTree) Flatten() map[string][]string {
	if len(t) == 0 {
		return nil
	}
	out := make(map[string][]string)
	t.flattenInto("", out)
	return out
}

func (t ErrorTree) flattenInto(prefix string, out map[string][]string) {
	for name, fe := range t {
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}
		switch {
		case fe.Array != nil:
			if len(fe.Array.Rules) > 0 {
				out[path] = append(out[path], fe.Array.Rules...)
			}
			for _, el := range fe.Array.Elements {
				el.Errors.flattenInto(fmt.Sprintf("%s[%d]", path, el.Index), out)
			}
		case len(fe.Fields) > 0:
			fe.Fields.flattenInto(path, out)
		default:
			out[path] = append(out[path], fe.Violations...)
		}
	}
}

// Merge combines two error trees: violations append, nested trees merge
// recursively, and array errors concatenate with elements re-sorted by
// ascending index. Either argument may be nil, and the result may alias
// entries of both inputs.
func Merge(a, b ErrorTree) ErrorTree {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(ErrorTree, len(a)+len(b))
	for name, fe := range a {
		out[name] = fe
	}
	for name, fe := range b {
		if cur, ok := out[name]; ok {
			out[name] = mergeField(cur, fe)
			continue
		}
		out[name] = fe
	}
	return out
}

func mergeField(a, b *FieldError) *FieldError {
	merged := &FieldError{
		Violations: append(append([]string(nil), a.Violations...), b.Violations...),
		Fields:     Merge(a.Fields, b.Fields),
	}
	switch {
	case a.Array == nil:
		merged.Array = b.Array
	case b.Array == nil:
		merged.Array = a.Array
	default:
		ae := &ArrayError{
			Rules:    append(append([]string(nil), a.Array.Rules...), b.Array.Rules...),
			Elements: append(append([]ElementError(nil), a.Array.Elements...), b.Array.Elements...),
		}
		sort.SliceStable(ae.Elements, func(i, j int) bool {
			return ae.Elements[i].Index < ae.Elements[j].Index
		})
		merged.Array = ae
	}
	return merged
}
