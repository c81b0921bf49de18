package mdtree

import "strings"

// Attr - a single html attribute
type Attr struct {
	Name  string
	Value string
}

// Attributes - ordered store of html attributes, names are unique
type Attributes struct {
	values map[string]string
	keys   []string
}

// NewAttributes - creates new Attributes instance holding attrs in order.
// A repeated name keeps its first position and takes the last value.
func NewAttributes(attrs ...Attr) *Attributes {
	a := &Attributes{
		values: make(map[string]string, len(attrs)),
	}
	for _, attr := range attrs {
		a.set(attr.Name, attr.Value)
	}
	return a
}

func (a *Attributes) set(name, value string) {
	if _, ok := a.values[name]; !ok {
		a.keys = append(a.keys, name)
	}
	a.values[name] = value
}

// With - returns a copy of a with name set to value
func (a *Attributes) With(name, value string) *Attributes {
	c := a.clone()
	c.set(name, value)
	return c
}

// Without - returns a copy of a with name removed
func (a *Attributes) Without(name string) *Attributes {
	c := NewAttributes()
	for _, k := range a.Keys() {
		if k != name {
			c.set(k, a.values[k])
		}
	}
	return c
}

// Get - returns the value for name and whether it is set
func (a *Attributes) Get(name string) (string, bool) {
	if a == nil {
		return "", false
	}
	v, ok := a.values[name]
	return v, ok
}

// Keys - attribute names in insertion order
func (a *Attributes) Keys() []string {
	if a == nil {
		return nil
	}
	return append([]string(nil), a.keys...)
}

// Len - number of attributes
func (a *Attributes) Len() int {
	if a == nil {
		return 0
	}
	return len(a.keys)
}

// Empty - checks if attributes is empty
func (a *Attributes) Empty() bool {
	return a.Len() == 0
}

// Equal - same names with same values in the same order
func (a *Attributes) Equal(b *Attributes) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i, k := range a.Keys() {
		if b.keys[i] != k || b.values[k] != a.values[k] {
			return false
		}
	}
	return true
}

func (a *Attributes) clone() *Attributes {
	c := NewAttributes()
	for _, k := range a.Keys() {
		c.set(k, a.values[k])
	}
	return c
}

// String renders every attribute as ` name="value"`, values are not escaped.
func (a *Attributes) String() string {
	var b strings.Builder
	for _, name := range a.Keys() {
		b.WriteByte(' ')
		b.WriteString(name)
		b.WriteString("=\"")
		b.WriteString(a.values[name])
		b.WriteByte('"')
	}
	return b.String()
}
