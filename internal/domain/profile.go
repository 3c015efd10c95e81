package domain

// Fields holds scalar profile values keyed by placeholder identifier.
type Fields map[string]string

// Profile is the input mapping a theme is filled from.
// Lists carries the ordered list inputs (skills, tech_stack) and Flags the
// boolean toggles; everything else lives in Fields.
type Profile struct {
	Fields Fields
	Lists  map[string][]string
	Flags  map[string]bool
}

// NewProfile returns a Profile with all maps initialized.
func NewProfile() Profile {
	return Profile{
		Fields: Fields{},
		Lists:  map[string][]string{},
		Flags:  map[string]bool{},
	}
}

// Clone returns a deep copy so callers can augment it without touching the original.
func (p Profile) Clone() Profile {
	out := NewProfile()
	for k, v := range p.Fields {
		out.Fields[k] = v
	}
	for k, v := range p.Lists {
		out.Lists[k] = append([]string(nil), v...)
	}
	for k, v := range p.Flags {
		out.Flags[k] = v
	}
	return out
}

// Field returns a scalar value and whether it was set.
func (p Profile) Field(key string) (string, bool) {
	if p.Fields == nil {
		return "", false
	}
	v, ok := p.Fields[key]
	return v, ok
}

// List returns the list stored under key (nil when absent).
func (p Profile) List(key string) []string {
	if p.Lists == nil {
		return nil
	}
	return p.Lists[key]
}

// Flag returns the toggle stored under key, or def when it was never set.
func (p Profile) Flag(key string, def bool) bool {
	if p.Flags == nil {
		return def
	}
	v, ok := p.Flags[key]
	if !ok {
		return def
	}
	return v
}

// Merge layers override on top of base (override wins) and returns a new Profile.
// Lists are replaced wholesale, not concatenated.
func Merge(base Profile, override Profile) Profile {
	out := base.Clone()
	for k, v := range override.Fields {
		out.Fields[k] = v
	}
	for k, v := range override.Lists {
		out.Lists[k] = append([]string(nil), v...)
	}
	for k, v := range override.Flags {
		out.Flags[k] = v
	}
	return out
}
