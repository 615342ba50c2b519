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
	"fmt"
	"os"

	"github.com/danieldk/projector"
	"github.com/spf13/cobra"
)

var nearestCmd = &cobra.Command{
	Use:   "nearest <vectors.tsv> <metadata.tsv>",
	Short: "Print the nearest neighbours of words read from stdin",
	Long: `Read an exported vectors/metadata pair and print, for every word read
from standard input, its most similar words by cosine similarity.`,
	Args: cobra.ExactArgs(2),
	RunE: runNearest,
}

func init() {
	nearestCmd.Flags().IntP("neighbours", "k", 10, "Number of neighbours to print")
	rootCmd.AddCommand(nearestCmd)
}

func runNearest(cmd *cobra.Command, args []string) error {
	k, _ := cmd.Flags().GetInt("neighbours")

	vecs, err := projector.OpenDecoded(args[0], cfg.Encoding)
	if err != nil {
		return err
	}
	defer vecs.Close()

	meta, err := projector.OpenDecoded(args[1], cfg.Encoding)
	if err != nil {
		return err
	}
	defer meta.Close()

	corpus, err := projector.ReadProjector(vecs, meta)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		token := scanner.Text()
		results, err := corpus.Similarity(token, k)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			continue
		}

		for _, wordSimilarity := range results {
			fmt.Println(wordSimilarity.Word, wordSimilarity.Similarity)
		}
	}

	return scanner.Err()
}
