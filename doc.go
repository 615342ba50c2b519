// Package projector converts word embeddings to Embedding Projector files.
//
// This package reads GloVe text dumps and word2vec binary or text files
// (the latter also covers fastText .vec exports) and writes a vectors.tsv
// and metadata.tsv pair that the TensorFlow Embedding Projector loads.
//
// GloVe dumps carry no header and are often hand-edited or truncated, so
// ReadGloVe skips malformed lines, keeps the majority vector dimension and
// drops the rows that disagree with it. word2vec sources are read through
// the Source interface and need none of that.
//
// Vector math uses gonum. gonum's pure Go BLAS is used by default; see the
// gonum documentation for linking a C BLAS implementation through cgo.
package projector
