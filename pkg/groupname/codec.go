package groupname

import (
	"fmt"
	"strings"
)

// codec is the pure formatting half of the convention: it builds shared and
// unique names from (prefix, group, suffix) and parses them back. It holds no
// randomness; the suffix for unique names is supplied by the caller.
type codec struct {
	prefix    string // empty means the prefix segment is omitted entirely
	delimiter string // single ASCII character
	suffixLen int
	alphabet  string // characters a suffix segment may consist of
}

// isGroupChar reports whether c is in the permitted group character set:
// ASCII letters, digits, and hyphen (hostname style).
func isGroupChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '-'
}

// validGroup reports whether s is non-empty and drawn entirely from the
// permitted character set.
func validGroup(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isGroupChar(s[i]) {
			return false
		}
	}
	return true
}

// checkGroup validates a group for encoding. Invalid input is rejected,
// never truncated or re-encoded.
func checkGroup(group string) error {
	if group == "" {
		return ErrEmptyGroup
	}
	for i := 0; i < len(group); i++ {
		if !isGroupChar(group[i]) {
			return fmt.Errorf("%w: %q", ErrInvalidGroup, group)
		}
	}
	return nil
}

// encodeShared concatenates prefix, delimiter and group. When the prefix is
// empty, the prefix segment and its trailing delimiter are omitted entirely.
func (c codec) encodeShared(group string) (string, error) {
	if err := checkGroup(group); err != nil {
		return "", err
	}
	if c.prefix == "" {
		return group, nil
	}
	return c.prefix + c.delimiter + group, nil
}

// encodeUnique appends a delimiter and suffix segment to the shared form.
func (c codec) encodeUnique(group, suffix string) (string, error) {
	shared, err := c.encodeShared(group)
	if err != nil {
		return "", err
	}
	return shared + c.delimiter + suffix, nil
}

// decodeShared strips the prefix segment, if one is configured, and returns
// the remaining group. It reports false for anything that does not have the
// configured shape: a missing or bare prefix, an empty group, or characters
// outside the permitted set.
func (c codec) decodeShared(name string) (string, bool) {
	group := name
	if c.prefix != "" {
		rest, found := strings.CutPrefix(name, c.prefix+c.delimiter)
		if !found {
			return "", false
		}
		group = rest
	}
	if !validGroup(group) {
		return "", false
	}
	return group, true
}

// decodeUnique strips a trailing delimiter-plus-suffix segment and then
// decodes the remainder as a shared name. The suffix segment is matched
// greedily from the right: the last delimiter splits off the suffix, so a
// group containing the delimiter keeps all of its own segments. It reports
// false when no syntactically valid suffix segment ends the name.
func (c codec) decodeUnique(name string) (string, bool) {
	i := strings.LastIndex(name, c.delimiter)
	if i < 0 {
		return "", false
	}
	if !c.validSuffix(name[i+len(c.delimiter):]) {
		return "", false
	}
	return c.decodeShared(name[:i])
}

// extract recovers the group from either name shape. Unique decoding is tried
// first: a unique name is also a syntactically valid shared name with a longer
// group, so the order is what keeps the suffix out of the reported group.
func (c codec) extract(name string) (string, bool) {
	if group, ok := c.decodeUnique(name); ok {
		return group, true
	}
	return c.decodeShared(name)
}

// validSuffix reports whether s has exactly the configured suffix length and
// consists only of alphabet characters.
func (c codec) validSuffix(s string) bool {
	if len(s) != c.suffixLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(c.alphabet, s[i]) < 0 {
			return false
		}
	}
	return true
}
