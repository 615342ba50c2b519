package projector

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding"
	"gonum.org/v1/gonum/mat"
)

const (
	DefaultVectorsName  = "vectors.tsv"
	DefaultMetadataName = "metadata.tsv"
	ReadmeName          = "README.md"

	// MetadataHeader is the first line of every metadata file.
	MetadataHeader = "Word"
)

// WriteOptions controls where and how staged output is written.
type WriteOptions struct {
	// Dir is created when absent. Empty means the working directory.
	Dir string

	// Encoding names the text encoding of all written files.
	Encoding string

	VectorsName  string
	MetadataName string

	// Readme also writes a README.md with corpus statistics.
	Readme bool
}

func (o WriteOptions) withDefaults() WriteOptions {
	if o.Dir == "" {
		o.Dir = "."
	}
	if o.VectorsName == "" {
		o.VectorsName = DefaultVectorsName
	}
	if o.MetadataName == "" {
		o.MetadataName = DefaultMetadataName
	}
	return o
}

// Paths lists the files a write produced. Readme is empty when no README
// was requested.
type Paths struct {
	Vectors  string
	Metadata string
	Readme   string
}

// Staged is output that has been fully computed but not yet written.
type Staged struct {
	words   []string
	vectors *mat.Dense
	dim     int
	bitSize int
}

// Stage computes the output rows of a corpus. Words and vectors are
// aligned before staging.
func Stage(c *Corpus, logger logrus.FieldLogger) (*Staged, error) {
	words, vectors := Align(c.Words(), c.Vectors(), logger)

	s := &Staged{
		words:   words,
		dim:     c.Dim,
		bitSize: c.BitSize,
	}
	if s.bitSize != 32 {
		s.bitSize = 64
	}

	if len(vectors) == 0 || c.Dim == 0 {
		return s, nil
	}

	s.vectors = mat.NewDense(len(vectors), c.Dim, nil)
	for idx, vec := range vectors {
		if len(vec) != c.Dim {
			return nil, fmt.Errorf("vector of %q has %d components, corpus dimension is %d", words[idx], len(vec), c.Dim)
		}
		s.vectors.SetRow(idx, vec)
	}

	return s, nil
}

// Rows returns the number of staged rows.
func (s *Staged) Rows() int {
	return len(s.words)
}

// Dim returns the staged vector dimensionality.
func (s *Staged) Dim() int {
	return s.dim
}

// UniqueWords returns the number of distinct staged words.
func (s *Staged) UniqueWords() int {
	seen := make(map[string]struct{}, len(s.words))
	for _, word := range s.words {
		seen[word] = struct{}{}
	}
	return len(seen)
}

// Write writes the vectors and metadata files, and the README when
// requested. On failure the files written by this call are removed.
func (s *Staged) Write(opts WriteOptions) (paths Paths, err error) {
	opts = opts.withDefaults()

	enc, err := LookupEncoding(opts.Encoding)
	if err != nil {
		return Paths{}, err
	}

	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return Paths{}, err
	}

	paths = Paths{
		Vectors:  filepath.Join(opts.Dir, opts.VectorsName),
		Metadata: filepath.Join(opts.Dir, opts.MetadataName),
	}
	if opts.Readme {
		paths.Readme = filepath.Join(opts.Dir, ReadmeName)
	}

	var written []string
	defer func() {
		if err != nil {
			for _, path := range written {
				os.Remove(path)
			}
		}
	}()

	written = append(written, paths.Vectors)
	if err := writeFile(paths.Vectors, enc, s.writeVectors); err != nil {
		return Paths{}, fmt.Errorf("writing vectors: %w", err)
	}

	written = append(written, paths.Metadata)
	if err := writeFile(paths.Metadata, enc, s.writeMetadata); err != nil {
		return Paths{}, fmt.Errorf("writing metadata: %w", err)
	}

	if opts.Readme {
		written = append(written, paths.Readme)
		err := writeFile(paths.Readme, enc, func(w io.Writer) error {
			return s.writeReadme(w, paths)
		})
		if err != nil {
			return Paths{}, fmt.Errorf("writing readme: %w", err)
		}
	}

	return paths, nil
}

func writeFile(path string, enc encoding.Encoding, fill func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	tw := NewEncodingWriter(f, enc)
	bw := bufio.NewWriter(tw)

	if err := fill(bw); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}

	return tw.Close()
}

func (s *Staged) writeVectors(w io.Writer) error {
	var buf []byte
	for row := 0; row < s.Rows(); row++ {
		buf = buf[:0]
		if s.vectors != nil {
			for idx, val := range s.vectors.RawRowView(row) {
				if idx > 0 {
					buf = append(buf, '\t')
				}
				buf = strconv.AppendFloat(buf, val, 'g', -1, s.bitSize)
			}
		}
		buf = append(buf, '\n')

		if _, err := w.Write(buf); err != nil {
			return err
		}
	}

	return nil
}

func (s *Staged) writeMetadata(w io.Writer) error {
	if _, err := io.WriteString(w, MetadataHeader+"\n"); err != nil {
		return err
	}

	for _, word := range s.words {
		if _, err := io.WriteString(w, word+"\n"); err != nil {
			return err
		}
	}

	return nil
}

func (s *Staged) writeReadme(w io.Writer, paths Paths) error {
	_, err := fmt.Fprintf(w, `# Embedding Projector Files

These files (%s and %s) are generated for use with the [TensorFlow Embedding Projector](https://projector.tensorflow.org/).

## Statistics

- Number of vectors: %d
- Vector dimension: %d
- Number of unique words: %d

Vectors saved to %s.
Metadata saved to %s.
`,
		"`"+filepath.Base(paths.Vectors)+"`", "`"+filepath.Base(paths.Metadata)+"`",
		s.Rows(), s.Dim(), s.UniqueWords(),
		"`"+paths.Vectors+"`", "`"+paths.Metadata+"`")

	return err
}

// Report holds the line counts of a written vectors/metadata pair.
type Report struct {
	VectorLines   int
	MetadataLines int
}

// Consistent reports whether there is one vector line per metadata line,
// not counting the metadata header.
func (r Report) Consistent() bool {
	return r.VectorLines == r.MetadataLines-1
}

// Verify re-reads written files and checks that their line counts agree.
// A disagreement is logged as a warning and is not an error; errors are
// only returned when the files cannot be read.
func Verify(paths Paths, encodingName string, logger logrus.FieldLogger) (Report, error) {
	var report Report
	var err error

	if report.VectorLines, err = countLines(paths.Vectors, encodingName); err != nil {
		return Report{}, err
	}
	if report.MetadataLines, err = countLines(paths.Metadata, encodingName); err != nil {
		return Report{}, err
	}

	entry := logger.WithField("action", "verify_output").
		WithField("vectors", report.VectorLines).
		WithField("metadata", report.MetadataLines)

	if !report.Consistent() {
		entry.Warnf("vectors file has %d lines but metadata file has %d data lines",
			report.VectorLines, report.MetadataLines-1)
	} else {
		entry.Debug("output files are row-aligned")
	}

	return report, nil
}

func countLines(path, encodingName string) (int, error) {
	f, err := OpenDecoded(path, encodingName)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	n := 0
	for {
		line, err := r.ReadString('\n')
		if len(line) > 0 {
			n++
		}
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return 0, err
		}
	}
}
