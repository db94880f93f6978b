package groupname

import "fmt"

const (
	// DefaultDelimiter separates the prefix, group and suffix segments.
	DefaultDelimiter = "-"
	// DefaultSuffixAlphabet is the character set unique-name suffixes are
	// drawn from.
	DefaultSuffixAlphabet = "0123456789abcdef"
	// DefaultSuffixLength is the number of suffix characters appended to
	// unique names. Three hex characters give 4096 combinations.
	DefaultSuffixLength = 3
)

// config holds the settings a Factory is built from.
type config struct {
	prefix       string
	delimiter    string
	suffixLength int
	alphabet     string
	source       SuffixSource
}

// Option configures a Factory.
type Option func(*config)

// WithPrefix sets the literal token prepended (with a trailing delimiter) to
// every encoded name. The prefix marks resources as created by this system
// and safe to delete automatically. An empty prefix omits the segment.
func WithPrefix(prefix string) Option {
	return func(c *config) {
		c.prefix = prefix
	}
}

// WithDelimiter sets the segment separator. It must be a single
// non-alphanumeric ASCII character; the default is "-".
func WithDelimiter(delimiter string) Option {
	return func(c *config) {
		c.delimiter = delimiter
	}
}

// WithSuffixLength sets the number of characters in unique-name suffixes.
// Longer suffixes lower the collision odds at the cost of longer names.
func WithSuffixLength(n int) Option {
	return func(c *config) {
		c.suffixLength = n
	}
}

// WithSuffixAlphabet sets the character set suffixes are drawn from. The
// alphabet must be non-empty, free of duplicates, drawn from the permitted
// group character set, and must not contain the delimiter.
func WithSuffixAlphabet(alphabet string) Option {
	return func(c *config) {
		c.alphabet = alphabet
	}
}

// WithSuffixSource replaces the random suffix source. The source must yield
// tokens that match the configured suffix length and alphabet, or decoding
// will not recognize the names it produces. Tests use this with a SuffixFunc
// to pin exact outputs.
func WithSuffixSource(src SuffixSource) Option {
	return func(c *config) {
		c.source = src
	}
}

// Factory produces configured Convention instances. It validates the prefix,
// delimiter and suffix settings once, at construction; the conventions it
// creates share that configuration for their lifetime.
type Factory struct {
	cfg config
}

// New builds a Factory from the given options. Defaults: no prefix, "-"
// delimiter, 3-character lowercase hex suffixes.
func New(opts ...Option) (*Factory, error) {
	cfg := config{
		delimiter:    DefaultDelimiter,
		suffixLength: DefaultSuffixLength,
		alphabet:     DefaultSuffixAlphabet,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(cfg.delimiter) != 1 || isAlphanumeric(cfg.delimiter[0]) || cfg.delimiter[0] > 0x7f {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDelimiter, cfg.delimiter)
	}
	if cfg.prefix != "" && !validGroup(cfg.prefix) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPrefix, cfg.prefix)
	}
	if cfg.suffixLength < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSuffixLength, cfg.suffixLength)
	}
	if err := checkAlphabet(cfg.alphabet, cfg.delimiter[0]); err != nil {
		return nil, err
	}
	if cfg.source == nil {
		cfg.source = randomSuffixSource{length: cfg.suffixLength, alphabet: cfg.alphabet}
	}

	return &Factory{cfg: cfg}, nil
}

// Create returns a Convention that applies the configured prefix.
func (f *Factory) Create() Convention {
	return &convention{
		codec: codec{
			prefix:    f.cfg.prefix,
			delimiter: f.cfg.delimiter,
			suffixLen: f.cfg.suffixLength,
			alphabet:  f.cfg.alphabet,
		},
		suffix: f.cfg.source,
	}
}

// CreateWithoutPrefix returns a Convention that omits the prefix segment.
// Top-level resources that are already scoped unambiguously do not need the
// extra disambiguation segment, yet still follow the naming convention.
func (f *Factory) CreateWithoutPrefix() Convention {
	return &convention{
		codec: codec{
			delimiter: f.cfg.delimiter,
			suffixLen: f.cfg.suffixLength,
			alphabet:  f.cfg.alphabet,
		},
		suffix: f.cfg.source,
	}
}

func isAlphanumeric(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

func checkAlphabet(alphabet string, delimiter byte) error {
	if alphabet == "" {
		return fmt.Errorf("%w: empty", ErrInvalidSuffixAlphabet)
	}
	var seen [256]bool
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		if c == delimiter {
			return fmt.Errorf("%w: contains the delimiter %q", ErrInvalidSuffixAlphabet, string(delimiter))
		}
		if !isGroupChar(c) {
			return fmt.Errorf("%w: character %q outside the permitted set", ErrInvalidSuffixAlphabet, string(c))
		}
		if seen[c] {
			return fmt.Errorf("%w: duplicate character %q", ErrInvalidSuffixAlphabet, string(c))
		}
		seen[c] = true
	}
	return nil
}
