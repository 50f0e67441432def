package colorpicker

import "gopkg.in/yaml.v3"

// Prop is a host-settable value that is either controlled (the host owns it
// and every update overrides widget state) or uncontrolled (the widget owns
// it). The zero value is uncontrolled.
type Prop[T any] struct {
	value T
	set   bool
}

// Controlled returns a prop owned by the host.
func Controlled[T any](v T) Prop[T] {
	return Prop[T]{value: v, set: true}
}

// Uncontrolled returns a prop owned by the widget.
func Uncontrolled[T any]() Prop[T] {
	return Prop[T]{}
}

// Get returns the host value and whether the prop is controlled.
func (p Prop[T]) Get() (T, bool) {
	return p.value, p.set
}

func (p Prop[T]) IsControlled() bool {
	return p.set
}

// Or returns the host value, or fallback when uncontrolled.
func (p Prop[T]) Or(fallback T) T {
	if p.set {
		return p.value
	}
	return fallback
}

// UnmarshalYAML marks the prop controlled when the key is present. A null
// value never reaches here, so `alpha: null` stays uncontrolled.
func (p *Prop[T]) UnmarshalYAML(node *yaml.Node) error {
	var v T
	if err := node.Decode(&v); err != nil {
		return err
	}
	*p = Controlled(v)
	return nil
}

// MarshalYAML writes the host value, or null when uncontrolled.
func (p Prop[T]) MarshalYAML() (interface{}, error) {
	if !p.set {
		return nil, nil
	}
	return p.value, nil
}
