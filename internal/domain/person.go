// Package domain holds the rules shared by every venue registry: input
// validation, the error taxonomy, and the Person base shape.
package domain

// Displayable is implemented by entities that render a one-line summary.
type Displayable interface {
	Display() string
}

// Person is the identity shared by people in the venue.
type Person struct {
	id   int
	name string
}

// NewPerson validates and builds a Person.
func NewPerson(id int, name string) (Person, error) {
	if err := FirstError(
		RequireNonNegativeID("id", id),
		RequireNonEmpty("name", name),
	); err != nil {
		return Person{}, err
	}
	return Person{id: id, name: name}, nil
}

func (p Person) ID() int      { return p.id }
func (p Person) Name() string { return p.name }

// SetName replaces the name after validating it.
func (p *Person) SetName(name string) error {
	if err := RequireNonEmpty("name", name); err != nil {
		return err
	}
	p.name = name
	return nil
}
