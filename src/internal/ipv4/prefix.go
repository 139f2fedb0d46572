package ipv4

import (
	"fmt"
	"strconv"
	"strings"
)

// Prefix is a canonical CIDR block: a network address with all host bits
// cleared and a length in [0,32]. The zero value is 0.0.0.0/0.
type Prefix struct {
	network Address
	length  uint8
}

// PrefixFrom returns the prefix of the given length containing addr.
// Host bits of addr are cleared.
func PrefixFrom(addr Address, length int) (Prefix, error) {
	if length < 0 || length > Bits {
		return Prefix{}, fmt.Errorf("prefix length %d is out of range 0-%d", length, Bits)
	}
	return Prefix{network: addr & maskFor(length), length: uint8(length)}, nil
}

// ParsePrefix parses CIDR notation "a.b.c.d/len". Dirty host bits are zeroed,
// not rejected.
func ParsePrefix(s string) (Prefix, error) {
	addrPart, lenPart, found := strings.Cut(s, "/")
	if !found {
		return Prefix{}, formatErr(s, expectPrefix, "missing '/'")
	}

	addr, reason := parseDottedQuad(addrPart)
	if reason != "" {
		return Prefix{}, formatErr(s, expectPrefix, "address: %s", reason)
	}

	length, reason := parseDecimal(lenPart, 2)
	if reason != "" {
		return Prefix{}, formatErr(s, expectPrefix, "length: %s", reason)
	}
	if length > Bits {
		return Prefix{}, formatErr(s, expectPrefix, "length %d is out of range 0-%d", length, Bits)
	}

	return Prefix{network: addr & maskFor(length), length: uint8(length)}, nil
}

// MustParsePrefix is like ParsePrefix but panics on error.
func MustParsePrefix(s string) Prefix {
	p, err := ParsePrefix(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Network returns the first address of the block.
func (p Prefix) Network() Address {
	return p.network
}

// Len returns the prefix length.
func (p Prefix) Len() int {
	return int(p.length)
}

// Mask returns the subnet mask rendered as an address, e.g. /20 is 255.255.240.0.
func (p Prefix) Mask() Address {
	return maskFor(int(p.length))
}

// HostMask returns the inverse of Mask.
func (p Prefix) HostMask() Address {
	return ^maskFor(int(p.length))
}

// First returns the lowest address in the block.
func (p Prefix) First() Address {
	return p.network
}

// Last returns the highest address in the block.
func (p Prefix) Last() Address {
	return p.network | p.HostMask()
}

// Range returns the first and last address in the block.
func (p Prefix) Range() (first, last Address) {
	return p.First(), p.Last()
}

// Contains reports whether addr shares the top Len() bits with the network.
func (p Prefix) Contains(addr Address) bool {
	return addr&p.Mask() == p.network
}

// Overlaps reports whether p and o have any address in common.
func (p Prefix) Overlaps(o Prefix) bool {
	if p.length <= o.length {
		return p.Contains(o.network)
	}
	return o.Contains(p.network)
}

// String returns the canonical "a.b.c.d/len" form.
func (p Prefix) String() string {
	return p.network.String() + "/" + strconv.Itoa(int(p.length))
}

// BitString returns the network address bits, MSB first.
func (p Prefix) BitString() string {
	return p.network.BitString()
}

// MarshalText implements encoding.TextMarshaler.
func (p Prefix) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. A bare address is not accepted.
func (p *Prefix) UnmarshalText(text []byte) error {
	v, err := ParsePrefix(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func maskFor(length int) Address {
	if length == 0 {
		return 0
	}
	return Address(^uint32(0) << (Bits - length))
}
