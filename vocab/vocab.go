// Package vocab implements the approximate word-lookup facade: a
// vocabulary loaded once from a word list, backed by a trie for exact
// membership and a BK-tree for approximate suggestions.
package vocab

import (
	"bufio"
	"io"
	"sort"

	"github.com/relalg/sqlplan/internal/fold"
	"github.com/relalg/sqlplan/internal/xerrors"
	"github.com/relalg/sqlplan/vocab/bktree"
	"github.com/relalg/sqlplan/vocab/trie"
)

// defaultMaxDistance is used by Suggestions when the caller passes a
// non-positive maxDistance.
const defaultMaxDistance = 2

// Vocabulary answers exact and approximate membership queries over a
// fixed set of case-folded words.
type Vocabulary struct {
	words *trie.Trie
	near  *bktree.Tree
}

// New builds a Vocabulary from r, one word per non-empty line. r is
// fully drained and closed (if it implements io.Closer) on every exit
// path, mirroring the lexer's own pooled-resource discipline.
func New(r io.Reader) (*Vocabulary, error) {
	if r == nil {
		return nil, xerrors.New(xerrors.InvalidInput, "vocab requires a non-nil reader")
	}
	if c, ok := r.(io.Closer); ok {
		defer c.Close()
	}

	v := &Vocabulary{
		words: trie.New(),
		near:  bktree.New(nil),
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		w := fold.Word(scanner.Text())
		if w == "" {
			continue
		}
		v.words.Insert(w)
		v.near.Insert(w)
	}
	if err := scanner.Err(); err != nil {
		return nil, xerrors.Wrap(xerrors.InvalidInput, err, "reading vocabulary")
	}
	return v, nil
}

// IsValid reports whether word (case-folded) is a member of the
// vocabulary.
func (v *Vocabulary) IsValid(word string) bool {
	return v.words.Contains(word)
}

// Suggestions returns near-miss words for word within maxDistance edits,
// sorted by length ascending. A non-positive maxDistance defaults to 2.
// The BK-tree has already capped and ordered this set by distance then
// length; this is a final, length-only stable re-sort of that same set.
func (v *Vocabulary) Suggestions(word string, maxDistance int) []string {
	if maxDistance <= 0 {
		maxDistance = defaultMaxDistance
	}
	hits := v.near.Search(word, maxDistance)
	sort.SliceStable(hits, func(i, j int) bool {
		return len(hits[i]) < len(hits[j])
	})
	return hits
}

// Size returns the number of distinct words in the vocabulary.
func (v *Vocabulary) Size() int {
	return v.words.Size()
}
