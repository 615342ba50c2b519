package projector

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Record is a word and its vector.
type Record struct {
	Word   string
	Vector []float64
}

// Source is an embedding model that can list its vocabulary and look up
// vectors. Words returns the vocabulary in model order.
type Source interface {
	Words() []string
	Vector(word string) ([]float64, bool)
}

// Corpus is an ordered list of records. Once reconciled, every vector has
// length Dim.
type Corpus struct {
	Records []Record
	Dim     int

	// BitSize is the precision the vectors were stored with in the source,
	// 32 or 64. It only affects how components are formatted on output.
	BitSize int

	index map[string]int
}

// Len returns the number of records.
func (c *Corpus) Len() int {
	return len(c.Records)
}

// Words returns the words of the corpus in record order.
func (c *Corpus) Words() []string {
	words := make([]string, len(c.Records))
	for idx, rec := range c.Records {
		words[idx] = rec.Word
	}
	return words
}

// Vectors returns the vectors of the corpus in record order. The vectors
// are shared with the corpus.
func (c *Corpus) Vectors() [][]float64 {
	vecs := make([][]float64, len(c.Records))
	for idx, rec := range c.Records {
		vecs[idx] = rec.Vector
	}
	return vecs
}

// Vector returns the vector of the first record with the given word.
func (c *Corpus) Vector(word string) ([]float64, bool) {
	if c.index == nil {
		c.index = make(map[string]int, len(c.Records))
		for idx, rec := range c.Records {
			if _, ok := c.index[rec.Word]; !ok {
				c.index[rec.Word] = idx
			}
		}
	}

	idx, ok := c.index[word]
	if !ok {
		return nil, false
	}
	return c.Records[idx].Vector, true
}

// FromSource copies the first limit words of src into a corpus. A limit of
// zero copies the whole vocabulary. The source must have a uniform vector
// length.
func FromSource(src Source, limit int) (*Corpus, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative, got %d", ErrInvalidOptions, limit)
	}

	words := src.Words()
	if limit > 0 && limit < len(words) {
		words = words[:limit]
	}

	c := &Corpus{
		Records: make([]Record, 0, len(words)),
		BitSize: 64,
	}
	if p, ok := src.(interface{ BitSize() int }); ok {
		c.BitSize = p.BitSize()
	}

	for _, word := range words {
		vec, ok := src.Vector(word)
		if !ok {
			return nil, fmt.Errorf("source has no vector for word %q", word)
		}

		if len(c.Records) == 0 {
			c.Dim = len(vec)
		} else if len(vec) != c.Dim {
			return nil, fmt.Errorf("source vector for %q has %d components, expected %d", word, len(vec), c.Dim)
		}

		c.Records = append(c.Records, Record{Word: word, Vector: append([]float64(nil), vec...)})
	}

	return c, nil
}

// Transform applies the truncation and normalization of opts.
func (c *Corpus) Transform(opts Options) {
	c.Truncate(opts.Dimensions)
	if opts.Normalize {
		c.Normalize()
	}
}

// Truncate keeps the first dims components of every vector when dims is
// positive and smaller than the corpus dimension. It reports whether the
// corpus changed.
func (c *Corpus) Truncate(dims int) bool {
	if dims <= 0 || dims >= c.Dim {
		return false
	}

	for idx := range c.Records {
		c.Records[idx].Vector = c.Records[idx].Vector[:dims:dims]
	}
	c.Dim = dims

	return true
}

// Normalize scales every vector to unit length. Zero vectors are left as
// they are.
func (c *Corpus) Normalize() {
	for _, rec := range c.Records {
		if n := floats.Norm(rec.Vector, 2); n > 0 {
			floats.Scale(1/n, rec.Vector)
		}
	}
	c.BitSize = 64
}
