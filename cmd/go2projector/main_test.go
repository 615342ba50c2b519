package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danieldk/projector"
	"github.com/danieldk/projector/cmd/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()

	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestGloVeCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "glove.txt")
	require.NoError(t, os.WriteFile(input, []byte(
		"the 0.1 0.2 0.3\n"+
			"of 0.4 0.5 0.6\n"+
			"oops not numbers\n"+
			"and 0.7 0.8 0.9 1.0\n"+
			"to 1 2 3\n"), 0o644))

	out := filepath.Join(dir, "out")
	err := execute(t, "glove", input, "-o", out, "--dimensions", "2", "--limit", "4", "--readme", "--log-level", "error")
	require.NoError(t, err)

	vectors, err := os.ReadFile(filepath.Join(out, projector.DefaultVectorsName))
	require.NoError(t, err)
	assert.Equal(t, "0.1\t0.2\n0.4\t0.5\n", string(vectors))

	metadata, err := os.ReadFile(filepath.Join(out, projector.DefaultMetadataName))
	require.NoError(t, err)
	assert.Equal(t, "Word\nthe\nof\n", string(metadata))

	assert.FileExists(t, filepath.Join(out, projector.ReadmeName))
}

func TestGloVeCommandNothingUsable(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "glove.txt")
	require.NoError(t, os.WriteFile(input, []byte("foo bar baz\n\n"), 0o644))

	out := filepath.Join(dir, "empty-out")
	err := execute(t, "glove", input, "-o", out, "--dimensions", "0", "--limit", "0", "--log-level", "error")
	require.ErrorIs(t, err, projector.ErrNoConsistentVectors)
	assert.Equal(t, common.ExitDataError, common.ExitCode(err))

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWord2VecCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "model.vec")
	require.NoError(t, os.WriteFile(input, []byte("3 2\nBerlin 0.5 1\nPotsdam 0.25 -2\nBonn 3 4\n"), 0o644))

	out := filepath.Join(dir, "out")
	err := execute(t, "fasttext", input, "-o", out, "--limit", "2", "--normalize", "--log-level", "error")
	require.NoError(t, err)

	metadata, err := os.ReadFile(filepath.Join(out, projector.DefaultMetadataName))
	require.NoError(t, err)
	assert.Equal(t, "Word\nBerlin\nPotsdam\n", string(metadata))

	vectors, err := os.ReadFile(filepath.Join(out, projector.DefaultVectorsName))
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(vectors)), "\n"), 2)
}

func TestZipTranslationsCommand(t *testing.T) {
	dir := t.TempDir()
	meta := filepath.Join(dir, "metadata.tsv")
	trans := filepath.Join(dir, "translations.txt")
	out := filepath.Join(dir, "annotated.tsv")
	require.NoError(t, os.WriteFile(meta, []byte("Word\nHund\nKatze\n"), 0o644))
	require.NoError(t, os.WriteFile(trans, []byte("dog\ncat\n"), 0o644))

	require.NoError(t, execute(t, "zip-translations", meta, trans, out, "--log-level", "error"))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "Word\tTranslation\nHund\tdog\nKatze\tcat\n", string(data))
}

func TestMissingConfigFile(t *testing.T) {
	err := execute(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "zip-translations", "a", "b", "c")
	require.Error(t, err)
	assert.Equal(t, common.ExitConfigError, common.ExitCode(err))
}
