package i18n

import "github.com/dmitrymomot/validate"

// TranslateTree returns a copy of the tree with every violation
// message looked up as a catalog key for the given language. Messages
// without a catalog entry pass through unchanged when fallback-to-key
// is enabled. The input tree is not modified; attempted values are
// carried over as-is.
func (t *Translator) TranslateTree(lang string, tree validate.ErrorTree) validate.ErrorTree {
	if len(tree) == 0 {
		return tree
	}

	out := make(validate.ErrorTree, len(tree))
	for field, fe := range tree {
		out[field] = t.translateField(lang, fe)
	}
	return out
}

func (t *Translator) translateField(lang string, fe *validate.FieldError) *validate.FieldError {
	if fe == nil {
		return nil
	}

	out := &validate.FieldError{}
	if len(fe.Violations) > 0 {
		out.Violations = t.translateAll(lang, fe.Violations)
	}
	if len(fe.Fields) > 0 {
		out.Fields = t.TranslateTree(lang, fe.Fields)
	}
	if fe.Array != nil {
		arr := &validate.ArrayError{}
		if len(fe.Array.Rules) > 0 {
			arr.Rules = t.translateAll(lang, fe.Array.Rules)
		}
		if len(fe.Array.Elements) > 0 {
			arr.Elements = make([]validate.ElementError, len(fe.Array.Elements))
			for i, el := range fe.Array.Elements {
				arr.Elements[i] = validate.ElementError{
					Index:          el.Index,
					Errors:         t.TranslateTree(lang, el.Errors),
					AttemptedValue: el.AttemptedValue,
				}
			}
		}
		out.Array = arr
	}
	return out
}

func (t *Translator) translateAll(lang string, msgs []string) []string {
	out := make([]string, len(msgs))
	for i, msg := range msgs {
		out[i] = t.T(lang, msg)
	}
	return out
}
