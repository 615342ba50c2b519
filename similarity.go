package projector

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

type WordSimilarity struct {
	Word       string
	Similarity float64
}

// ReadProjector reads back a vectors/metadata pair. Only the first column
// of the metadata file is used, so annotated metadata files are accepted
// as well.
func ReadProjector(vectors, metadata io.Reader) (*Corpus, error) {
	metaLines, err := readLines(bufio.NewReader(metadata), 0)
	if err != nil {
		return nil, err
	}
	if len(metaLines) == 0 {
		return nil, fmt.Errorf("metadata has no header")
	}
	metaLines = metaLines[1:]

	vecLines, err := readLines(bufio.NewReader(vectors), 0)
	if err != nil {
		return nil, err
	}

	if len(vecLines) != len(metaLines) {
		return nil, fmt.Errorf("%d vectors but %d words", len(vecLines), len(metaLines))
	}

	c := &Corpus{
		Records: make([]Record, len(vecLines)),
		BitSize: 64,
	}

	for idx, line := range vecLines {
		fields := strings.Split(line, "\t")
		vec := make([]float64, len(fields))
		for i, field := range fields {
			if vec[i], err = strconv.ParseFloat(field, 64); err != nil {
				return nil, fmt.Errorf("vectors line %d: %w", idx+1, err)
			}
		}

		if idx == 0 {
			c.Dim = len(vec)
		} else if len(vec) != c.Dim {
			return nil, fmt.Errorf("vectors line %d has %d components, expected %d", idx+1, len(vec), c.Dim)
		}

		word, _, _ := strings.Cut(metaLines[idx], "\t")
		c.Records[idx] = Record{Word: word, Vector: vec}
	}

	return c, nil
}

// Similarity returns the limit words that are closest to word by cosine
// similarity, most similar first.
func (c *Corpus) Similarity(word string, limit int) ([]WordSimilarity, error) {
	v, ok := c.Vector(word)
	if !ok {
		return nil, fmt.Errorf("unknown word: %s", word)
	}

	vNorm := floats.Norm(v, 2)
	results := make([]WordSimilarity, 0)

	for _, rec := range c.Records {
		// Skip the query word itself.
		if rec.Word == word {
			continue
		}

		sim := 0.0
		if denom := vNorm * floats.Norm(rec.Vector, 2); denom > 0 {
			sim = floats.Dot(v, rec.Vector) / denom
		}

		ip := sort.Search(len(results), func(i int) bool {
			return results[i].Similarity <= sim
		})
		if ip < limit {
			results = insertWithLimit(results, limit, ip, WordSimilarity{rec.Word, sim})
		}
	}

	return results, nil
}

func insertWithLimit(slice []WordSimilarity, limit, index int, value WordSimilarity) []WordSimilarity {
	if len(slice) < limit {
		slice = append(slice, WordSimilarity{})
	}

	copy(slice[index+1:], slice[index:len(slice)-1])
	slice[index] = value
	return slice
}
