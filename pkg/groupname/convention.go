package groupname

// Convention encodes logical group names into provider-safe resource names
// and recovers the group from previously encoded names.
//
// A shared name exists at most once per group (a security group, a network).
// A unique name is generated redundantly per group member (a node, a key
// pair) and carries a random suffix so siblings do not collide. Both shapes
// are decoded structurally from the name alone; no record of issued names is
// kept anywhere.
type Convention interface {
	// SharedName encodes group into the name used for resources shared by
	// every member of the group. It returns ErrEmptyGroup or ErrInvalidGroup
	// when the group is not drawn from the permitted character set.
	SharedName(group string) (string, error)

	// UniqueName encodes group into a name disambiguated by a fresh random
	// suffix. The result is collision-unlikely, not collision-free: creation
	// code that hits a name conflict at the provider should call UniqueName
	// again and retry.
	UniqueName(group string) (string, error)

	// GroupInSharedName recovers the group from a shared name. It reports
	// false for any string that does not have the configured shape,
	// including names created outside this convention.
	GroupInSharedName(encoded string) (string, bool)

	// GroupInUniqueName recovers the group from a unique name by stripping
	// the trailing suffix segment, matched greedily from the right. A group
	// may itself contain the delimiter; only the final segment is treated as
	// the suffix, and only when it has exactly the configured suffix shape.
	GroupInUniqueName(encoded string) (string, bool)

	// ExtractGroup recovers the group from either name shape, trying unique
	// decoding before shared. A shared name whose group happens to end in a
	// suffix-shaped segment is therefore claimed by the unique
	// interpretation; see GroupInUniqueName.
	ExtractGroup(encoded string) (string, bool)

	// ContainsGroup returns a predicate reporting whether an input name has
	// the given group encoded in it.
	ContainsGroup(group string) func(string) bool

	// ContainsAnyGroup returns a predicate reporting whether an input name
	// has any group encoded in it.
	ContainsAnyGroup() func(string) bool
}

// convention is the default Convention implementation: a stateless
// pass-through from the operations to the codec, plus the suffix source for
// unique names.
type convention struct {
	codec  codec
	suffix SuffixSource
}

func (c *convention) SharedName(group string) (string, error) {
	return c.codec.encodeShared(group)
}

func (c *convention) UniqueName(group string) (string, error) {
	return c.codec.encodeUnique(group, c.suffix.Suffix())
}

func (c *convention) GroupInSharedName(encoded string) (string, bool) {
	return c.codec.decodeShared(encoded)
}

func (c *convention) GroupInUniqueName(encoded string) (string, bool) {
	return c.codec.decodeUnique(encoded)
}

func (c *convention) ExtractGroup(encoded string) (string, bool) {
	return c.codec.extract(encoded)
}

func (c *convention) ContainsGroup(group string) func(string) bool {
	return func(input string) bool {
		got, ok := c.codec.extract(input)
		return ok && got == group
	}
}

func (c *convention) ContainsAnyGroup() func(string) bool {
	return func(input string) bool {
		_, ok := c.codec.extract(input)
		return ok
	}
}
