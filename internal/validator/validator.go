package validator

// Validator type containing a map of validation errors keyed by field name
type Validator struct {
	Errors map[string]string
}

// New helper creates a new Validator instance with empty errors map
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid returns true if errors map doesn't contain entries
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError adds an error message to the map if no entry exists for given key
func (v *Validator) AddError(key, message string) {
	if _, exists := v.Errors[key]; !exists {
		v.Errors[key] = message
	}
}

// Check adds an error message to the map if validation check is not ok
func (v *Validator) Check(ok bool, key, message string) {
	if !ok {
		v.AddError(key, message)
	}
}

// Between returns true if value lies in the closed range [min, max]
func Between(value, min, max int) bool {
	return value >= min && value <= max
}
