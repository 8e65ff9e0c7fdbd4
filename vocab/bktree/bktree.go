// Package bktree implements a Burkhard-Keller tree over case-folded
// words for approximate lookups, keyed by a pluggable distance
// function that defaults to Levenshtein edit distance.
package bktree

import (
	"sort"

	"github.com/relalg/sqlplan/internal/fold"
)

// DistanceFunc computes the distance between two words. Must satisfy
// the triangle inequality for Search's pruning to be sound.
type DistanceFunc func(a, b string) int

type node struct {
	word     string
	children map[int]*node
}

// Tree is a BK-tree indexing case-folded words under dist.
type Tree struct {
	dist DistanceFunc
	root *node
}

// New creates an empty Tree using dist, or Levenshtein if dist is nil.
func New(dist DistanceFunc) *Tree {
	if dist == nil {
		dist = Levenshtein
	}
	return &Tree{dist: dist}
}

// Insert adds w, case-folded, to the tree. A word already present at
// distance 0 from an existing node is a no-op.
func (t *Tree) Insert(w string) {
	w = fold.Word(w)
	if w == "" {
		return
	}
	if t.root == nil {
		t.root = &node{word: w, children: make(map[int]*node)}
		return
	}
	n := t.root
	for {
		d := t.dist(n.word, w)
		if d == 0 {
			return
		}
		child, ok := n.children[d]
		if !ok {
			n.children[d] = &node{word: w, children: make(map[int]*node)}
			return
		}
		n = child
	}
}

type candidate struct {
	word     string
	distance int
}

// Search returns every indexed word within maxDistance of q (case
// folded), excluding q itself, sorted by distance ascending then
// length ascending, capped at 5.
func (t *Tree) Search(q string, maxDistance int) []string {
	if t.root == nil || maxDistance < 0 {
		return nil
	}
	q = fold.Word(q)
	var hits []candidate
	t.search(t.root, q, maxDistance, &hits)

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].distance != hits[j].distance {
			return hits[i].distance < hits[j].distance
		}
		return len(hits[i].word) < len(hits[j].word)
	})
	if len(hits) > 5 {
		hits = hits[:5]
	}
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.word
	}
	return out
}

func (t *Tree) search(n *node, q string, maxDistance int, hits *[]candidate) {
	d := t.dist(n.word, q)
	if d > 0 && d <= maxDistance {
		*hits = append(*hits, candidate{word: n.word, distance: d})
	}
	lo := d - maxDistance
	if lo < 1 {
		lo = 1
	}
	hi := d + maxDistance
	for key, child := range n.children {
		if key >= lo && key <= hi {
			t.search(child, q, maxDistance, hits)
		}
	}
}

// Levenshtein computes the classic edit distance between a and b by
// single-character insertions, deletions, and substitutions.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := cur[j-1] + 1
			sub := prev[j-1] + cost
			m := del
			if ins < m {
				m = ins
			}
			if sub < m {
				m = sub
			}
			cur[j] = m
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}
