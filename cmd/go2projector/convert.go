// Copyright 2015 Daniël de Kok
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/danieldk/projector"
	"github.com/danieldk/projector/cmd/common"
	"github.com/spf13/cobra"
)

var gloveCmd = &cobra.Command{
	Use:   "glove <input.txt>",
	Short: "Convert a GloVe text file",
	Long: `Convert a GloVe text file. Malformed lines are skipped. When lines
disagree on the vector dimension, the most frequent dimension is kept and
the other lines are dropped.

--limit counts input lines, including lines that turn out to be malformed.`,
	Args: cobra.ExactArgs(1),
	RunE: runGloVe,
}

var word2vecCmd = &cobra.Command{
	Use:     "word2vec <model.bin|model.vec|model.txt>",
	Aliases: []string{"fasttext", "gensim"},
	Short:   "Convert a word2vec binary or text file (also fastText .vec)",
	Args:    cobra.ExactArgs(1),
	RunE:    runWord2Vec,
}

func init() {
	common.AddConversionFlags(gloveCmd.Flags())
	common.AddConversionFlags(word2vecCmd.Flags())
	word2vecCmd.Flags().Bool("binary", false, "Read the binary word2vec format (default: true for .bin files)")

	rootCmd.AddCommand(gloveCmd, word2vecCmd)
}

func runGloVe(cmd *cobra.Command, args []string) error {
	wopts, err := common.ApplyConversionFlags(cmd.Flags(), cfg)
	if err != nil {
		return err
	}

	logger.WithField("action", "glove_read").Infof("Converting GloVe model from %s", args[0])

	f, err := projector.OpenDecoded(args[0], cfg.Encoding)
	if err != nil {
		return err
	}
	defer f.Close()

	corpus, err := projector.ReadGloVe(f, cfg.Options(), logger)
	if err != nil {
		return err
	}

	return export(corpus, wopts)
}

func runWord2Vec(cmd *cobra.Command, args []string) error {
	wopts, err := common.ApplyConversionFlags(cmd.Flags(), cfg)
	if err != nil {
		return err
	}

	binary := strings.EqualFold(filepath.Ext(args[0]), ".bin")
	if cmd.Flags().Changed("binary") {
		binary, _ = cmd.Flags().GetBool("binary")
	}

	var embeds *projector.Embeddings
	if binary {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		embeds, err = projector.ReadWord2VecBinary(bufio.NewReader(f), cfg.Limit)
		if err != nil {
			return err
		}
	} else {
		f, err := projector.OpenDecoded(args[0], cfg.Encoding)
		if err != nil {
			return err
		}
		defer f.Close()

		embeds, err = projector.ReadWord2VecText(f, cfg.Limit)
		if err != nil {
			return err
		}
	}

	logger.WithField("action", "word2vec_read").
		WithField("words", embeds.Size()).
		WithField("dim", embeds.VectorSize()).
		Infof("Loaded %d words from %s", embeds.Size(), args[0])

	corpus, err := projector.FromSource(embeds, cfg.Limit)
	if err != nil {
		return err
	}
	corpus.Transform(cfg.Options())

	return export(corpus, wopts)
}

func export(corpus *projector.Corpus, wopts projector.WriteOptions) error {
	staged, err := projector.Stage(corpus, logger)
	if err != nil {
		return err
	}

	paths, err := staged.Write(wopts)
	if err != nil {
		return err
	}

	for _, path := range []string{paths.Vectors, paths.Metadata, paths.Readme} {
		if path == "" {
			continue
		}
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		logger.WithField("action", "export").Infof("Saved %s", path)
	}

	if _, err := projector.Verify(paths, wopts.Encoding, logger); err != nil {
		logger.WithField("action", "verify_output").WithError(err).Warn("could not verify output files")
	}

	return nil
}
