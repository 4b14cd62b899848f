package payload

import "fmt"

// Rule is a type predicate applied to a present field value.
type Rule func(v any) bool

// Field declares one entry of a Schema.
type Field struct {
	Name     string
	Required bool
	// Rule, when set, must hold for the value; Message explains a violation.
	Rule    Rule
	Message string
}

// Schema lists the fields an entity accepts, in validation order.
type Schema struct {
	Entity string
	Fields []Field
}

// FieldError describes the first schema violation found for a field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

// Required returns the names of required fields in declaration order.
func (s Schema) Required() []string {
	names := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}

// Lookup returns the declaration of name.
func (s Schema) Lookup(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// CheckPresent fails when name is absent or falsy in p.
func (s Schema) CheckPresent(p Payload, name string) error {
	if p.Has(name) {
		return nil
	}
	return &FieldError{Field: name, Message: fmt.Sprintf("%s must include a %s", s.Entity, name)}
}

// CheckRule fails when the declared rule of name does not hold for its value.
// Fields without a rule always pass.
func (s Schema) CheckRule(p Payload, name string) error {
	f, ok := s.Lookup(name)
	if !ok || f.Rule == nil {
		return nil
	}
	v, _ := p.Get(name)
	if f.Rule(v) {
		return nil
	}
	msg := f.Message
	if msg == "" {
		msg = fmt.Sprintf("%s has an invalid %s", s.Entity, name)
	}
	return &FieldError{Field: name, Message: msg}
}
