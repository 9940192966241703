package validate

// Report is the outward-facing outcome of a validation pass, shaped for
// a JSON response body.
type Report struct {
	Valid   bool      `json:"valid"`
	Message string    `json:"message,omitempty"`
	Errors  ErrorTree `json:"errors,omitempty"`
}

// Apply validates object against set, using the object as its own root,
// and wraps the outcome in a Report. Configuration errors propagate
// exactly as from Validate.
func Apply(object any, set Set) (Report, error) {
	tree, err := Validate(object, object, set)
	if err != nil {
		return Report{}, err
	}
	if len(tree) > 0 {
		return Report{Message: "validation failed", Errors: tree}, nil
	}
	return Report{Valid: true}, nil
}
