package core

import "fmt"

// Parameter describes a single read-only value shown on the HUD.
type Parameter struct {
	Key   string
	Label string
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the values exposed at one point in time.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Append adds the groups of other after the groups of s.
func (s ParameterSnapshot) Append(other ParameterSnapshot) ParameterSnapshot {
	groups := make([]ParameterGroup, 0, len(s.Groups)+len(other.Groups))
	groups = append(groups, s.Groups...)
	groups = append(groups, other.Groups...)
	return ParameterSnapshot{Groups: groups}
}

// Lookup returns the parameter with the given key.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// Lines flattens the snapshot into display lines: a header per group followed
// by one "label: value" line per parameter.
func (s ParameterSnapshot) Lines() []string {
	var lines []string
	for _, g := range s.Groups {
		if g.Name != "" {
			lines = append(lines, "["+g.Name+"]")
		}
		for _, p := range g.Params {
			label := p.Label
			if label == "" {
				label = p.Key
			}
			lines = append(lines, fmt.Sprintf("%s: %s", label, p.Value))
		}
	}
	return lines
}
