package ipv4

import (
	"cmp"
	"strconv"
	"strings"
)

// Bits is the width of an IPv4 address.
const Bits = 32

// Address is an IPv4 address stored in network byte order.
type Address uint32

// AddressFromUint32 returns the address with the given raw value.
func AddressFromUint32(v uint32) Address {
	return Address(v)
}

// AddressFrom4 builds an address from its four octets, most significant first.
func AddressFrom4(b [4]byte) Address {
	return Address(uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]))
}

// ParseAddress parses a dotted-quad IPv4 address.
func ParseAddress(s string) (Address, error) {
	a, reason := parseDottedQuad(s)
	if reason != "" {
		return 0, formatErr(s, expectAddress, "%s", reason)
	}
	return a, nil
}

// MustParseAddress is like ParseAddress but panics on error.
// Intended for literals in tests and static tables.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Uint32 returns the raw 32-bit value.
func (a Address) Uint32() uint32 {
	return uint32(a)
}

// As4 returns the four octets, most significant first.
func (a Address) As4() [4]byte {
	return [4]byte{byte(a >> 24), byte(a >> 16), byte(a >> 8), byte(a)}
}

// Bit returns bit i of the address, counting from the most significant bit.
// i must be in [0,31].
func (a Address) Bit(i int) uint8 {
	return uint8(a>>(Bits-1-i)) & 1
}

// Compare returns -1, 0 or +1 comparing the raw values.
func (a Address) Compare(b Address) int {
	return cmp.Compare(a, b)
}

// Less reports whether a sorts before b.
func (a Address) Less(b Address) bool {
	return a < b
}

// String returns the dotted-quad form.
func (a Address) String() string {
	b := a.As4()
	buf := make([]byte, 0, len("255.255.255.255"))
	for i, octet := range b {
		if i > 0 {
			buf = append(buf, '.')
		}
		buf = strconv.AppendUint(buf, uint64(octet), 10)
	}
	return string(buf)
}

// BitString returns the 32 bits of the address as '0'/'1' characters, MSB first.
func (a Address) BitString() string {
	var sb strings.Builder
	sb.Grow(Bits)
	for i := 0; i < Bits; i++ {
		sb.WriteByte('0' + a.Bit(i))
	}
	return sb.String()
}

// MarshalText implements encoding.TextMarshaler.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Address) UnmarshalText(text []byte) error {
	v, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// parseDottedQuad returns a non-empty reason when s is not a valid address.
func parseDottedQuad(s string) (Address, string) {
	groups := strings.Split(s, ".")
	if len(groups) != 4 {
		return 0, "want 4 dot-separated groups, got " + strconv.Itoa(len(groups))
	}

	var v uint32
	for i, g := range groups {
		octet, reason := parseDecimal(g, 3)
		if reason != "" {
			return 0, "group " + strconv.Itoa(i+1) + ": " + reason
		}
		if octet > 255 {
			return 0, "group " + strconv.Itoa(i+1) + ": " + strconv.Itoa(octet) + " is out of range 0-255"
		}
		v = v<<8 | uint32(octet)
	}
	return Address(v), ""
}

// parseDecimal accepts 1 to maxDigits ASCII digits and nothing else.
// Leading zeros are rejected so every accepted string is canonical.
func parseDecimal(s string, maxDigits int) (int, string) {
	if s == "" {
		return 0, "empty number"
	}
	if len(s) > maxDigits {
		return 0, "too many digits in " + strconv.Quote(s)
	}
	if len(s) > 1 && s[0] == '0' {
		return 0, "leading zero in " + strconv.Quote(s)
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, "non-digit character in " + strconv.Quote(s)
		}
		n = n*10 + int(c-'0')
	}
	return n, ""
}
