package ipv4

import "strings"

// Parsed is the result of Parse: either an Address or a Prefix.
type Parsed struct {
	addr     Address
	prefix   Prefix
	isPrefix bool
}

// Parse classifies s as a bare address or a CIDR block. Input containing a
// '/' is parsed as a prefix, anything else as an address. Both failure paths
// return a *FormatError for the original input.
func Parse(s string) (Parsed, error) {
	if strings.Contains(s, "/") {
		p, err := ParsePrefix(s)
		if err != nil {
			return Parsed{}, reclassify(s, err)
		}
		return Parsed{prefix: p, isPrefix: true}, nil
	}

	a, err := ParseAddress(s)
	if err != nil {
		return Parsed{}, reclassify(s, err)
	}
	return Parsed{addr: a}, nil
}

// IsPrefix reports whether the input was a CIDR block.
func (p Parsed) IsPrefix() bool {
	return p.isPrefix
}

// Address returns the parsed address. Only meaningful when IsPrefix is false.
func (p Parsed) Address() Address {
	return p.addr
}

// Prefix returns the parsed block. For a bare address it returns the /32
// host prefix, so callers can treat both forms uniformly.
func (p Parsed) Prefix() Prefix {
	if p.isPrefix {
		return p.prefix
	}
	return Prefix{network: p.addr, length: Bits}
}

func (p Parsed) String() string {
	if p.isPrefix {
		return p.prefix.String()
	}
	return p.addr.String()
}

func reclassify(s string, err error) error {
	if fe, ok := err.(*FormatError); ok {
		return &FormatError{Input: s, Expected: expectEither, Err: fe.Err}
	}
	return err
}
