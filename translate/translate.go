// Package translate adds a translation column to Embedding Projector
// metadata files.
package translate

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Translator translates a single word.
type Translator interface {
	Translate(ctx context.Context, word string) (string, error)
}

// Zip pairs the words of a metadata file with the lines of a translation
// file that holds one translation per word, in metadata order and without
// a header. It writes a Word/Translation metadata file to w and returns
// the number of rows written. Pairing stops at the shorter input.
func Zip(metadata, translations io.Reader, w io.Writer, logger logrus.FieldLogger) (int, error) {
	words, err := readWords(metadata)
	if err != nil {
		return 0, fmt.Errorf("reading metadata: %w", err)
	}

	var trans []string
	scanner := bufio.NewScanner(translations)
	for scanner.Scan() {
		field, _, _ := strings.Cut(scanner.Text(), "\t")
		trans = append(trans, strings.TrimRight(field, "\r"))
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("reading translations: %w", err)
	}

	if len(words) != len(trans) {
		logger.WithField("action", "zip_translations").
			WithField("words", len(words)).
			WithField("translations", len(trans)).
			Warnf("metadata has %d words but there are %d translations, writing %d rows",
				len(words), len(trans), min(len(words), len(trans)))
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Word\tTranslation\n")

	n := 0
	for ; n < len(words) && n < len(trans); n++ {
		fmt.Fprintf(bw, "%s\t%s\n", words[n], trans[n])
	}

	return n, bw.Flush()
}

// Annotate translates every word of a metadata file with t and writes a
// two-column metadata file to w, using header as the name of the second
// column. Words that fail to translate are logged and written with an
// empty translation. Cancelling ctx stops the annotation with ctx's error.
func Annotate(ctx context.Context, metadata io.Reader, w io.Writer, t Translator,
	header string, logger logrus.FieldLogger) (int, error) {
	words, err := readWords(metadata)
	if err != nil {
		return 0, fmt.Errorf("reading metadata: %w", err)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Word\t%s\n", header)

	failed := 0
	for idx, word := range words {
		translation, err := t.Translate(ctx, word)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				bw.Flush()
				return idx, err
			}

			logger.WithField("action", "translate_word").
				WithField("word", word).
				WithError(err).
				Warn("translation failed")
			failed++
			translation = ""
		}

		fmt.Fprintf(bw, "%s\t%s\n", word, sanitize(translation))

		if (idx+1)%1000 == 0 {
			logger.WithField("action", "translate_progress").
				Infof("translated %d of %d words", idx+1, len(words))
		}
	}

	if failed > 0 {
		logger.WithField("action", "translate_words").
			WithField("failed", failed).
			Warnf("%d of %d words could not be translated", failed, len(words))
	}

	return len(words), bw.Flush()
}

// readWords returns the first column of every metadata row after the
// header.
func readWords(r io.Reader) ([]string, error) {
	var words []string

	scanner := bufio.NewScanner(r)
	header := true
	for scanner.Scan() {
		if header {
			header = false
			continue
		}
		word, _, _ := strings.Cut(scanner.Text(), "\t")
		words = append(words, strings.TrimRight(word, "\r"))
	}

	return words, scanner.Err()
}

// sanitize keeps a translation on one metadata cell.
func sanitize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
