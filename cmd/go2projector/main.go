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

// Command go2projector converts word embeddings to TensorFlow Embedding
// Projector files.
package main

import (
	"fmt"
	"os"

	"github.com/danieldk/projector/cmd/common"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfgPath  string
	logLevel string

	cfg    *common.Config
	logger *logrus.Logger
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		if logger != nil {
			logger.Error(err)
		} else {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
	}
	os.Exit(common.ExitCode(err))
}

var rootCmd = &cobra.Command{
	Use:   "go2projector",
	Short: "Convert word embeddings to Embedding Projector files",
	Long: `go2projector converts GloVe, word2vec and fastText (.vec) embeddings
to the vectors.tsv and metadata.tsv files read by the TensorFlow Embedding
Projector, and annotates metadata files with translations.

Settings are read from go2projector.yaml in the working directory (or the
file given with --config); command line flags take precedence.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to YAML config file (default: "+common.DefaultConfigPath+")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

func setup(cmd *cobra.Command, args []string) error {
	// Credentials for the translation service may live in .env.
	_ = godotenv.Load()

	var err error
	if logger, err = common.NewLogger(os.Stderr, logLevel); err != nil {
		return err
	}

	path := cfgPath
	if path == "" {
		path = common.DefaultConfigPath
	} else if _, err := os.Stat(path); err != nil {
		return &common.ConfigError{Err: err}
	}

	cfg, err = common.Load(path)
	return err
}
