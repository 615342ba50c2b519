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
	"context"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/danieldk/projector"
	"github.com/danieldk/projector/translate"
	"github.com/spf13/cobra"
)

var zipCmd = &cobra.Command{
	Use:   "zip-translations <metadata.tsv> <translations.txt> <output.tsv>",
	Short: "Add a translation column from a file with one translation per word",
	Args:  cobra.ExactArgs(3),
	RunE:  runZip,
}

var translateCmd = &cobra.Command{
	Use:   "translate <metadata.tsv>",
	Short: "Add a translation column using the MyMemory translation service",
	Args:  cobra.ExactArgs(1),
	RunE:  runTranslate,
}

func init() {
	translateCmd.Flags().StringP("output", "o", "", "Output file (default: metadata_translated.tsv next to the input)")
	translateCmd.Flags().String("source", "", "Source language (default from config: auto)")
	translateCmd.Flags().String("target", "", "Target language (default from config: en)")
	translateCmd.Flags().String("target-name", "", "Header of the translation column (default from config: English)")

	rootCmd.AddCommand(zipCmd, translateCmd)
}

func runZip(cmd *cobra.Command, args []string) error {
	meta, err := projector.OpenDecoded(args[0], cfg.Encoding)
	if err != nil {
		return err
	}
	defer meta.Close()

	trans, err := projector.OpenDecoded(args[1], cfg.Encoding)
	if err != nil {
		return err
	}
	defer trans.Close()

	out, err := projector.CreateEncoded(args[2], cfg.Encoding)
	if err != nil {
		return err
	}

	n, err := translate.Zip(meta, trans, out, logger)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	logger.WithField("action", "zip_translations").Infof("Wrote %d rows to %s", n, args[2])

	return nil
}

func runTranslate(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	for name, dst := range map[string]*string{
		"source":      &cfg.Translate.SourceLang,
		"target":      &cfg.Translate.TargetLang,
		"target-name": &cfg.Translate.TargetName,
	} {
		if flags.Changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}

	output, _ := flags.GetString("output")
	if output == "" {
		output = filepath.Join(filepath.Dir(args[0]), "metadata_translated.tsv")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	meta, err := projector.OpenDecoded(args[0], cfg.Encoding)
	if err != nil {
		return err
	}
	defer meta.Close()

	out, err := projector.CreateEncoded(output, cfg.Encoding)
	if err != nil {
		return err
	}

	client := translate.NewMyMemory(cfg.TranslatorConfig())
	n, err := translate.Annotate(ctx, meta, out, client, cfg.Translate.TargetName, logger)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	logger.WithField("action", "translate").Infof("Translated metadata saved to %s (%d words)", output, n)

	return nil
}
