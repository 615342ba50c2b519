package projector

import "github.com/sirupsen/logrus"

// DimensionCount is the number of records with a given vector length.
type DimensionCount struct {
	Dim   int
	Count int
}

// DimensionProfile tallies vector lengths in the order they were first
// seen.
type DimensionProfile []DimensionCount

// Profile tallies the vector lengths of records.
func Profile(records []Record) DimensionProfile {
	var profile DimensionProfile
	pos := make(map[int]int)

	for _, rec := range records {
		dim := len(rec.Vector)
		idx, ok := pos[dim]
		if !ok {
			idx = len(profile)
			pos[dim] = idx
			profile = append(profile, DimensionCount{Dim: dim})
		}
		profile[idx].Count++
	}

	return profile
}

// Canonical returns the most frequent length. Ties go to the length that
// was seen first. ok is false for an empty profile.
func (p DimensionProfile) Canonical() (dim int, ok bool) {
	best := -1
	for idx, dc := range p {
		if best == -1 || dc.Count > p[best].Count {
			best = idx
		}
	}

	if best == -1 {
		return 0, false
	}

	return p[best].Dim, true
}

// Reconcile settles the corpus on its canonical dimension, dropping every
// record of a different length. It returns ErrNoConsistentVectors when no
// record remains.
func (c *Corpus) Reconcile(logger logrus.FieldLogger) error {
	profile := Profile(c.Records)

	dim, ok := profile.Canonical()
	if !ok {
		return ErrNoConsistentVectors
	}

	if len(profile) > 1 {
		kept := make([]Record, 0, len(c.Records))
		for _, rec := range c.Records {
			if len(rec.Vector) == dim {
				kept = append(kept, rec)
			}
		}

		logger.WithField("action", "reconcile_dimensions").
			WithField("dimensions", len(profile)).
			WithField("dim", dim).
			WithField("retained", len(kept)).
			WithField("dropped", len(c.Records)-len(kept)).
			Warnf("inconsistent vector dimensions, keeping %d records of dimension %d", len(kept), dim)

		c.Records = kept
		c.index = nil
	}

	if len(c.Records) == 0 {
		return ErrNoConsistentVectors
	}

	c.Dim = dim

	return nil
}

// Align makes words and vectors the same length, cutting both to the
// shorter one. Lists derived from one corpus always agree; a mismatch is
// logged.
func Align(words []string, vectors [][]float64, logger logrus.FieldLogger) ([]string, [][]float64) {
	if len(words) == len(vectors) {
		return words, vectors
	}

	n := min(len(words), len(vectors))

	logger.WithField("action", "align_rows").
		WithField("words", len(words)).
		WithField("vectors", len(vectors)).
		Warnf("word and vector counts differ (%d != %d), truncating both to %d",
			len(words), len(vectors), n)

	return words[:n], vectors[:n]
}
