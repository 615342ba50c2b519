package projector

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Embeddings holds word2vec vectors in file order. It implements Source.
type Embeddings struct {
	words   []string
	vectors map[string][]float32
	dim     int
}

// NewEmbeddings creates empty embeddings of the given vector size.
func NewEmbeddings(dim int) *Embeddings {
	return &Embeddings{
		vectors: make(map[string][]float32),
		dim:     dim,
	}
}

// Put adds a word. A word that is already present keeps its first vector.
func (e *Embeddings) Put(word string, vec []float32) error {
	if len(vec) != e.dim {
		return fmt.Errorf("vector for %q has %d components, expected %d", word, len(vec), e.dim)
	}

	if _, ok := e.vectors[word]; ok {
		return nil
	}

	e.words = append(e.words, word)
	e.vectors[word] = vec

	return nil
}

// Size returns the number of words.
func (e *Embeddings) Size() int {
	return len(e.words)
}

// VectorSize returns the vector dimensionality.
func (e *Embeddings) VectorSize() int {
	return e.dim
}

// BitSize returns 32: word2vec stores single precision floats.
func (e *Embeddings) BitSize() int {
	return 32
}

// Words returns the vocabulary in file order.
func (e *Embeddings) Words() []string {
	return e.words
}

// Vector returns the vector of word.
func (e *Embeddings) Vector(word string) ([]float64, bool) {
	vec, ok := e.vectors[word]
	if !ok {
		return nil, false
	}

	result := make([]float64, len(vec))
	for idx, val := range vec {
		result[idx] = float64(val)
	}

	return result, true
}

// ReadWord2VecBinary reads vectors in the binary word2vec format, as
// written by word2vec and gensim. At most maxWords words are read when
// maxWords is positive.
func ReadWord2VecBinary(r *bufio.Reader, maxWords int) (*Embeddings, error) {
	var nWords uint64
	if _, err := fmt.Fscanf(r, "%d", &nWords); err != nil {
		return nil, fmt.Errorf("reading word count: %w", err)
	}

	var vSize uint64
	if _, err := fmt.Fscanf(r, "%d", &vSize); err != nil {
		return nil, fmt.Errorf("reading vector size: %w", err)
	}

	if maxWords > 0 && uint64(maxWords) < nWords {
		nWords = uint64(maxWords)
	}

	embeds := NewEmbeddings(int(vSize))

	for w := uint64(0); w < nWords; w++ {
		word, err := r.ReadString(' ')
		if err != nil {
			return nil, fmt.Errorf("reading word %d: %w", w, err)
		}
		word = strings.TrimSpace(word)

		vec := make([]float32, vSize)
		if err = binary.Read(r, binary.LittleEndian, vec); err != nil {
			return nil, fmt.Errorf("reading vector of %q: %w", word, err)
		}

		if err := embeds.Put(word, vec); err != nil {
			return nil, err
		}
	}

	return embeds, nil
}

// ReadWord2VecText reads vectors in the text word2vec format: a header
// with the word count and vector size, then one word and its components
// per line. fastText .vec files use this format. At most maxWords words
// are read when maxWords is positive.
func ReadWord2VecText(r io.Reader, maxWords int) (*Embeddings, error) {
	br := bufio.NewReader(r)

	header, err := br.ReadString('\n')
	if err != nil && header == "" {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	fields := strings.Fields(header)
	if len(fields) != 2 {
		return nil, fmt.Errorf("header should hold word count and vector size, got %q", strings.TrimSpace(header))
	}

	nWords, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("reading word count: %w", err)
	}

	vSize, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("reading vector size: %w", err)
	}

	if maxWords > 0 && maxWords < nWords {
		nWords = maxWords
	}

	embeds := NewEmbeddings(vSize)
	if nWords <= 0 {
		return embeds, nil
	}

	lines, err := readLines(br, nWords)
	if err != nil {
		return nil, err
	}

	for idx, line := range lines {
		rec, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", idx+2, err)
		}

		vec := make([]float32, len(rec.Vector))
		for i, val := range rec.Vector {
			vec[i] = float32(val)
		}

		if err := embeds.Put(rec.Word, vec); err != nil {
			return nil, fmt.Errorf("line %d: %w", idx+2, err)
		}
	}

	return embeds, nil
}
