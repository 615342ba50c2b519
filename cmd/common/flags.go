package common

import (
	"github.com/danieldk/projector"
	"github.com/spf13/pflag"
)

// AddConversionFlags registers the flags that override conversion
// settings of the configuration file.
func AddConversionFlags(f *pflag.FlagSet) {
	f.Int("limit", 0, "Limit the number of input lines (GloVe) or words (word2vec) to process")
	f.Int("dimensions", 0, "Truncate vectors to this many dimensions")
	f.StringP("output-dir", "o", "", "Output directory (default: current directory)")
	f.String("encoding", "", "Text encoding of input and output files (default: utf-8)")
	f.Bool("normalize", false, "Scale vectors to unit length")
	f.Bool("readme", false, "Write a README.md with statistics next to the output")
	f.Int("workers", 0, "Number of goroutines used to parse GloVe lines")
	f.String("vectors", projector.DefaultVectorsName, "File name of the vectors output")
	f.String("metadata", projector.DefaultMetadataName, "File name of the metadata output")
}

// ApplyConversionFlags copies explicitly set flags into cfg and returns
// the resulting output options.
func ApplyConversionFlags(f *pflag.FlagSet, cfg *Config) (projector.WriteOptions, error) {
	var err error
	set := func(name string, apply func() error) {
		if err == nil && f.Changed(name) {
			err = apply()
		}
	}

	set("limit", func() (e error) { cfg.Limit, e = f.GetInt("limit"); return })
	set("dimensions", func() (e error) { cfg.Dimensions, e = f.GetInt("dimensions"); return })
	set("output-dir", func() (e error) { cfg.OutputDir, e = f.GetString("output-dir"); return })
	set("encoding", func() (e error) { cfg.Encoding, e = f.GetString("encoding"); return })
	set("normalize", func() (e error) { cfg.Normalize, e = f.GetBool("normalize"); return })
	set("readme", func() (e error) { cfg.Readme, e = f.GetBool("readme"); return })
	set("workers", func() (e error) { cfg.Workers, e = f.GetInt("workers"); return })
	if err != nil {
		return projector.WriteOptions{}, err
	}

	if err := cfg.validate(); err != nil {
		return projector.WriteOptions{}, err
	}

	opts := cfg.WriteOptions()
	if opts.VectorsName, err = f.GetString("vectors"); err != nil {
		return projector.WriteOptions{}, err
	}
	if opts.MetadataName, err = f.GetString("metadata"); err != nil {
		return projector.WriteOptions{}, err
	}

	return opts, nil
}
