package groupname

// Config carries the convention settings in environment-variable form, for
// applications that configure naming alongside the rest of their settings.
// Zero values fall back to the package defaults.
type Config struct {
	Prefix         string `env:"GROUPNAME_PREFIX"`                          // Prefix marks resources as system-managed; empty omits the segment.
	Delimiter      string `env:"GROUPNAME_DELIMITER" envDefault:"-"`        // Delimiter separates the prefix, group and suffix segments.
	SuffixLength   int    `env:"GROUPNAME_SUFFIX_LENGTH" envDefault:"3"`    // SuffixLength is the number of characters in unique-name suffixes.
	SuffixAlphabet string `env:"GROUPNAME_SUFFIX_ALPHABET" envDefault:"0123456789abcdef"` // SuffixAlphabet is the character set suffixes are drawn from.
}

// NewFromConfig builds a Factory from a Config. Additional options are
// applied on top, so a test can still inject a deterministic suffix source
// over environment-driven settings.
func NewFromConfig(cfg Config, opts ...Option) (*Factory, error) {
	base := []Option{WithPrefix(cfg.Prefix)}
	if cfg.Delimiter != "" {
		base = append(base, WithDelimiter(cfg.Delimiter))
	}
	if cfg.SuffixLength != 0 {
		base = append(base, WithSuffixLength(cfg.SuffixLength))
	}
	if cfg.SuffixAlphabet != "" {
		base = append(base, WithSuffixAlphabet(cfg.SuffixAlphabet))
	}
	return New(append(base, opts...)...)
}
