package catalog

import (
	"errors"
	"fmt"
	gotoken "go/token"
)

// VariantSet is the ordered universe of language tags for a target type. The
// order follows the enum's declaration order; index 0 is the default
// language every unfilled slot falls back to.
type VariantSet struct {
	typeName string
	names    []string
	index    map[string]int
}

// NewVariantSet validates the tag list and returns the set.
func NewVariantSet(typeName string, names ...string) (VariantSet, error) {
	if !gotoken.IsIdentifier(typeName) {
		return VariantSet{}, fmt.Errorf("catalog: invalid type name %q", typeName)
	}
	if len(names) == 0 {
		return VariantSet{}, errors.New("catalog: variant set needs at least one language")
	}

	set := VariantSet{
		typeName: typeName,
		names:    append([]string(nil), names...),
		index:    make(map[string]int, len(names)),
	}
	for i, name := range names {
		if !gotoken.IsIdentifier(name) {
			return VariantSet{}, fmt.Errorf("catalog: invalid language tag %q", name)
		}
		if _, dup := set.index[name]; dup {
			return VariantSet{}, fmt.Errorf("catalog: duplicate language tag %q", name)
		}
		set.index[name] = i
	}
	return set, nil
}

// MustNewVariantSet panics when construction fails. Useful for tests.
func MustNewVariantSet(typeName string, names ...string) VariantSet {
	set, err := NewVariantSet(typeName, names...)
	if err != nil {
		panic(err)
	}
	return set
}

// TypeName returns the enum type the tags belong to.
func (v VariantSet) TypeName() string {
	return v.typeName
}

// Names returns a copy of the tags in declaration order.
func (v VariantSet) Names() []string {
	return append([]string(nil), v.names...)
}

// Default returns the default language tag: the first declared constant.
func (v VariantSet) Default() string {
	if len(v.names) == 0 {
		return ""
	}
	return v.names[0]
}

// Has reports whether the tag belongs to the set.
func (v VariantSet) Has(name string) bool {
	_, ok := v.index[name]
	return ok
}

// Index returns the declaration position of the tag.
func (v VariantSet) Index(name string) (int, bool) {
	i, ok := v.index[name]
	return i, ok
}

// Len returns the number of languages in the set.
func (v VariantSet) Len() int {
	return len(v.names)
}
