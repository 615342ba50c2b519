package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/danieldk/projector"
	"github.com/danieldk/projector/translate"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "go2projector.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, projector.DefaultEncoding, cfg.Encoding)
	assert.Equal(t, "auto", cfg.Translate.SourceLang)
	assert.Equal(t, "en", cfg.Translate.TargetLang)
	assert.Equal(t, "English", cfg.Translate.TargetName)
	assert.Equal(t, translate.DefaultEndpoint, cfg.Translate.Endpoint)
	assert.Equal(t, projector.Options{}, cfg.Options())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
limit: 1000
dimensions: 50
output_dir: out
encoding: latin1
normalize: true
readme: true
workers: 4
translate:
  source_lang: de
  email_env: TEST_MYMEMORY_EMAIL
  timeout_secs: 3
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, projector.Options{Limit: 1000, Dimensions: 50, Normalize: true, Workers: 4}, cfg.Options())
	assert.Equal(t, projector.WriteOptions{Dir: "out", Encoding: "latin1", Readme: true}, cfg.WriteOptions())

	t.Setenv("TEST_MYMEMORY_EMAIL", "me@example.org")
	tc := cfg.TranslatorConfig()
	assert.Equal(t, "de", tc.SourceLang)
	assert.Equal(t, "en", tc.TargetLang)
	assert.Equal(t, "me@example.org", tc.Email)
	assert.Equal(t, 3*time.Second, tc.Timeout)
	assert.Equal(t, 2.0, tc.RatePerSecond)
}

func TestLoadInvalid(t *testing.T) {
	for name, content := range map[string]string{
		"syntax":         "limit: [",
		"negative limit": "limit: -5",
		"encoding":       "encoding: klingon",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			require.Error(t, err)
			assert.Equal(t, ExitConfigError, ExitCode(err))
		})
	}
}

func TestApplyConversionFlags(t *testing.T) {
	cfg, err := Load(writeConfig(t, "limit: 10\ndimensions: 20\noutput_dir: cfg-out\n"))
	require.NoError(t, err)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddConversionFlags(flags)
	require.NoError(t, flags.Parse([]string{"--dimensions", "5", "-o", "flag-out", "--readme", "--metadata", "words.tsv"}))

	wopts, err := ApplyConversionFlags(flags, cfg)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Limit, "unset flags keep the config value")
	assert.Equal(t, 5, cfg.Dimensions)
	assert.Equal(t, projector.WriteOptions{
		Dir:          "flag-out",
		Encoding:     projector.DefaultEncoding,
		VectorsName:  projector.DefaultVectorsName,
		MetadataName: "words.tsv",
		Readme:       true,
	}, wopts)
}

func TestApplyConversionFlagsValidates(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddConversionFlags(flags)
	require.NoError(t, flags.Parse([]string{"--limit", "-1"}))

	_, err := ApplyConversionFlags(flags, Default())
	require.ErrorIs(t, err, projector.ErrInvalidOptions)
	assert.Equal(t, ExitConfigError, ExitCode(err))
}
