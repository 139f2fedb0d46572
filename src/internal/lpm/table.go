package lpm

import (
	"iter"

	"github.com/maksimkurb/keen-lpm/src/internal/ipv4"
)

// Table maps IPv4 prefixes to values of type V and answers longest-prefix-match
// queries. The zero value is an empty table ready to use.
type Table[V any] struct {
	root *node[V]
	size int
}

// Insert adds pfx with val. An existing entry for the same prefix has its
// value replaced.
func (t *Table[V]) Insert(pfx ipv4.Prefix, val V) {
	if t.root == nil {
		t.root = &node[V]{}
	}

	n := t.root
	network := pfx.Network()
	for i := 0; i < pfx.Len(); i++ {
		n = n.child(network.Bit(i))
	}

	if !n.terminal {
		t.size++
	}
	n.val = val
	n.terminal = true
}

// Lookup returns the value of the most specific prefix containing addr.
func (t *Table[V]) Lookup(addr ipv4.Address) (val V, ok bool) {
	_, val, ok = t.LookupPrefix(addr)
	return val, ok
}

// LookupPrefix is like Lookup but also returns the matching prefix.
func (t *Table[V]) LookupPrefix(addr ipv4.Address) (pfx ipv4.Prefix, val V, ok bool) {
	n := t.root
	depth := -1

	for i := 0; n != nil; i++ {
		if n.terminal {
			val, depth = n.val, i
		}
		if i == ipv4.Bits {
			break
		}
		n = n.children[addr.Bit(i)]
	}

	if depth < 0 {
		return pfx, val, false
	}
	pfx, _ = ipv4.PrefixFrom(addr, depth)
	return pfx, val, true
}

// Get returns the value stored for exactly pfx.
func (t *Table[V]) Get(pfx ipv4.Prefix) (val V, ok bool) {
	n := t.find(pfx)
	if n == nil || !n.terminal {
		return val, false
	}
	return n.val, true
}

// Delete removes pfx and reports whether it was present. Branches left
// without any prefix are pruned.
func (t *Table[V]) Delete(pfx ipv4.Prefix) bool {
	if t.root == nil {
		return false
	}

	path := make([]*node[V], 0, pfx.Len()+1)
	n := t.root
	network := pfx.Network()
	for i := 0; i < pfx.Len(); i++ {
		path = append(path, n)
		n = n.children[network.Bit(i)]
		if n == nil {
			return false
		}
	}
	if !n.terminal {
		return false
	}

	var zero V
	n.val = zero
	n.terminal = false
	t.size--

	for i := len(path) - 1; i >= 0 && n.isEmpty(); i-- {
		path[i].children[network.Bit(i)] = nil
		n = path[i]
	}
	return true
}

// Len returns the number of prefixes in the table.
func (t *Table[V]) Len() int {
	return t.size
}

// All iterates over every prefix in ascending (network, length) order.
func (t *Table[V]) All() iter.Seq2[ipv4.Prefix, V] {
	return func(yield func(ipv4.Prefix, V) bool) {
		if t.root == nil {
			return
		}
		t.root.walk(0, 0, yield)
	}
}

// Supernets iterates over every stored prefix containing addr, from the
// least to the most specific. The last one yielded is the Lookup result.
func (t *Table[V]) Supernets(addr ipv4.Address) iter.Seq2[ipv4.Prefix, V] {
	return func(yield func(ipv4.Prefix, V) bool) {
		n := t.root
		for i := 0; n != nil; i++ {
			if n.terminal {
				pfx, _ := ipv4.PrefixFrom(addr, i)
				if !yield(pfx, n.val) {
					return
				}
			}
			if i == ipv4.Bits {
				return
			}
			n = n.children[addr.Bit(i)]
		}
	}
}

func (t *Table[V]) find(pfx ipv4.Prefix) *node[V] {
	n := t.root
	network := pfx.Network()
	for i := 0; n != nil && i < pfx.Len(); i++ {
		n = n.children[network.Bit(i)]
	}
	return n
}
