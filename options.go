package projector

import "fmt"

// Options controls how a source is turned into a corpus.
type Options struct {
	// Limit caps the input. For GloVe files it counts raw input lines, so a
	// blank or corrupt line within the first Limit lines still uses up a
	// slot. For word2vec sources it counts words. Zero means no limit.
	Limit int

	// Dimensions truncates vectors to their first Dimensions components when
	// smaller than the corpus dimension. Zero keeps the vectors as they are.
	Dimensions int

	// Normalize scales every vector to unit length after truncation.
	Normalize bool

	// Workers shards GloVe line parsing over this many goroutines. Values
	// below two parse sequentially.
	Workers int
}

// Validate rejects negative limits, dimensions and worker counts.
func (o Options) Validate() error {
	if o.Limit < 0 {
		return fmt.Errorf("%w: limit must not be negative, got %d", ErrInvalidOptions, o.Limit)
	}
	if o.Dimensions < 0 {
		return fmt.Errorf("%w: dimensions must not be negative, got %d", ErrInvalidOptions, o.Dimensions)
	}
	if o.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidOptions, o.Workers)
	}
	return nil
}
