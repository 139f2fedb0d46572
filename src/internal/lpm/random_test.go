package lpm

import (
	"math/rand/v2"
	"testing"

	"github.com/maksimkurb/keen-lpm/src/internal/ipv4"
)

// goldTable is a slow slice-backed reference for Table.
type goldTable []goldItem

type goldItem struct {
	pfx ipv4.Prefix
	val int
}

func (g *goldTable) insert(pfx ipv4.Prefix, val int) {
	for i := range *g {
		if (*g)[i].pfx == pfx {
			(*g)[i].val = val
			return
		}
	}
	*g = append(*g, goldItem{pfx, val})
}

func (g goldTable) lookup(addr ipv4.Address) (val int, ok bool) {
	best := -1
	for _, item := range g {
		if item.pfx.Contains(addr) && item.pfx.Len() > best {
			best, val, ok = item.pfx.Len(), item.val, true
		}
	}
	return val, ok
}

func (g goldTable) prefixes() []ipv4.Prefix {
	out := make([]ipv4.Prefix, 0, len(g))
	for _, item := range g {
		out = append(out, item.pfx)
	}
	return out
}

func randomPrefix(prng *rand.Rand) ipv4.Prefix {
	// cluster under few /8s so overlaps are common
	addr := ipv4.AddressFromUint32(uint32(prng.IntN(4))<<24 | prng.Uint32()&0x00ffffff)
	pfx, _ := ipv4.PrefixFrom(addr, prng.IntN(ipv4.Bits+1))
	return pfx
}

func TestTable_MatchesGoldTable(t *testing.T) {
	prng := rand.New(rand.NewPCG(42, 42))

	for round := 0; round < 20; round++ {
		var (
			tbl  Table[int]
			gold goldTable
		)

		for i := 0; i < 500; i++ {
			pfx := randomPrefix(prng)
			tbl.Insert(pfx, i)
			gold.insert(pfx, i)
		}

		if tbl.Len() != len(gold) {
			t.Fatalf("Expected %d entries, got %d", len(gold), tbl.Len())
		}

		candidates := gold.prefixes()
		for i := 0; i < 2000; i++ {
			addr := randomPrefix(prng).Network() | ipv4.AddressFromUint32(prng.Uint32()&0xff)

			want, wantOK := gold.lookup(addr)
			got, gotOK := tbl.Lookup(addr)
			if got != want || gotOK != wantOK {
				t.Fatalf("Lookup(%s): expected (%d, %v), got (%d, %v)", addr, want, wantOK, got, gotOK)
			}

			pfx, _, ok := tbl.LookupPrefix(addr)
			length, lenOK := LongestPrefixLength(addr, candidates)
			if ok != lenOK || (ok && pfx.Len() != length) {
				t.Fatalf("LookupPrefix(%s) = %s, pairwise longest = (%d, %v)", addr, pfx, length, lenOK)
			}
		}
	}
}

func TestTable_DeleteMatchesGoldTable(t *testing.T) {
	prng := rand.New(rand.NewPCG(7, 7))

	var (
		tbl  Table[int]
		gold goldTable
	)
	for i := 0; i < 300; i++ {
		pfx := randomPrefix(prng)
		tbl.Insert(pfx, i)
		gold.insert(pfx, i)
	}

	// drop every other entry from both
	var kept goldTable
	for i, item := range gold {
		if i%2 == 0 {
			if !tbl.Delete(item.pfx) {
				t.Fatalf("Expected %s to be deleted", item.pfx)
			}
			continue
		}
		kept = append(kept, item)
	}

	if tbl.Len() != len(kept) {
		t.Fatalf("Expected %d entries, got %d", len(kept), tbl.Len())
	}
	for i := 0; i < 2000; i++ {
		addr := randomPrefix(prng).Network()
		want, wantOK := kept.lookup(addr)
		got, gotOK := tbl.Lookup(addr)
		if got != want || gotOK != wantOK {
			t.Fatalf("Lookup(%s) after delete: expected (%d, %v), got (%d, %v)", addr, want, wantOK, got, gotOK)
		}
	}
}
