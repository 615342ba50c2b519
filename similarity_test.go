package projector

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testVectorsTSV = "1\t0\n0.9\t0.1\n0\t1\n-1\t0\n0.5\t0.5\n"

const testMetadataTSV = "Word\tEnglish\nHund\tdog\nHündin\tbitch\nKatze\tcat\nFisch\tfish\nWolf\twolf\n"

func TestReadProjector(t *testing.T) {
	c, err := ReadProjector(strings.NewReader(testVectorsTSV), strings.NewReader(testMetadataTSV))
	require.NoError(t, err)

	assert.Equal(t, 5, c.Len())
	assert.Equal(t, 2, c.Dim)
	assert.Equal(t, []string{"Hund", "Hündin", "Katze", "Fisch", "Wolf"}, c.Words())

	vec, ok := c.Vector("Katze")
	require.True(t, ok)
	assert.Equal(t, []float64{0, 1}, vec)
}

func TestReadProjectorErrors(t *testing.T) {
	_, err := ReadProjector(strings.NewReader(testVectorsTSV), strings.NewReader("Word\na\n"))
	assert.Error(t, err)

	_, err = ReadProjector(strings.NewReader("1\t2\n3\n"), strings.NewReader("Word\na\nb\n"))
	assert.Error(t, err)

	_, err = ReadProjector(strings.NewReader("1\tx\n"), strings.NewReader("Word\na\n"))
	assert.Error(t, err)

	_, err = ReadProjector(strings.NewReader(""), strings.NewReader(""))
	assert.Error(t, err)
}

func TestSimilarity(t *testing.T) {
	c, err := ReadProjector(strings.NewReader(testVectorsTSV), strings.NewReader(testMetadataTSV))
	require.NoError(t, err)

	answers, err := c.Similarity("Hund", 3)
	require.NoError(t, err)
	require.Len(t, answers, 3)

	order := []string{"Hündin", "Wolf", "Katze"}
	for idx, wordSimilarity := range answers {
		assert.Equal(t, order[idx], wordSimilarity.Word, "position %d", idx)
	}
	assert.InDelta(t, 0.9/0.9055385138137417, answers[0].Similarity, 1e-9)
	assert.InDelta(t, 0, answers[2].Similarity, 1e-12)

	answers, err = c.Similarity("Hund", 10)
	require.NoError(t, err)
	require.Len(t, answers, 4)
	assert.Equal(t, "Fisch", answers[3].Word)
	assert.InDelta(t, -1, answers[3].Similarity, 1e-12)

	_, err = c.Similarity("Bogus", 3)
	assert.Error(t, err)
}
