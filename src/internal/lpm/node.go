package lpm

import "github.com/maksimkurb/keen-lpm/src/internal/ipv4"

// node is one bit position in the trie. The root is prefix length 0.
type node[V any] struct {
	children [2]*node[V]
	val      V
	terminal bool // a prefix ends exactly here
}

func (n *node[V]) isEmpty() bool {
	return !n.terminal && n.children[0] == nil && n.children[1] == nil
}

// child returns the child reached by following bit b, creating it if needed.
func (n *node[V]) child(b uint8) *node[V] {
	if n.children[b] == nil {
		n.children[b] = &node[V]{}
	}
	return n.children[b]
}

// walk visits terminal nodes depth first, shorter prefixes and the 0 branch first.
func (n *node[V]) walk(network ipv4.Address, depth int, yield func(ipv4.Prefix, V) bool) bool {
	if n.terminal {
		pfx, _ := ipv4.PrefixFrom(network, depth)
		if !yield(pfx, n.val) {
			return false
		}
	}
	for b, c := range n.children {
		if c == nil {
			continue
		}
		next := network | ipv4.Address(uint32(b)<<(ipv4.Bits-1-depth))
		if !c.walk(next, depth+1, yield) {
			return false
		}
	}
	return true
}
