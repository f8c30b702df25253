package fixedwidth

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngest_SkipsHeaderAndTallies(t *testing.T) {
	tree := newTestTree(t)

	source := strings.Join([]string{
		"HDR01 would not classify",
		"HDR02 would not classify",
		alphaLine("KSEA", " ", "042", "N47153000", "M", "HELLO"),
		alphaLine("KSEA", "2", "042", "N47153000", "M", "WORLD"),
		"BKBFI",
		"Xjunk",
	}, "\n") + "\n"

	stats, err := tree.Ingest(strings.NewReader(source), 2)
	require.NoError(t, err)

	assert.Equal(t, Stats{
		Lines:                4,
		Stored:               1,
		MergedAuxiliary:      1,
		Unclassified:         1,
		DroppedContinuations: 1,
	}, stats)
	assert.Len(t, tree.Find("Alpha").Instances(), 1)
	assert.Len(t, tree.Find("Beta").Instances(), 1)
}

func TestIngest_TrimsCarriageReturns(t *testing.T) {
	tree := newTestTree(t)

	source := "BKBFI\r\nBKSEA\r\n"
	stats, err := tree.Ingest(strings.NewReader(source), 0)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Stored)

	name, err := tree.Find("Beta").Instances()[0].Name()
	require.NoError(t, err)
	assert.Equal(t, "KBFI", name)
}

func TestIngest_FatalErrorCarriesLineNumber(t *testing.T) {
	tree := newTestTree(t)

	source := strings.Join([]string{
		"HDR01",
		"BKBFI",
		alphaLine("KSEA", "X", "042", "N47153000", "M", ""),
	}, "\n")

	stats, err := tree.Ingest(strings.NewReader(source), 1)
	require.Error(t, err)
	assert.ErrorContains(t, err, "line 3")

	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, ContinuationField, derr.Field)

	// The line before the failure still counted.
	assert.Equal(t, 1, stats.Stored)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk gone")
}

func TestIngest_ReaderError(t *testing.T) {
	tree := newTestTree(t)

	_, err := tree.Ingest(failingReader{}, 0)
	require.Error(t, err)
	assert.ErrorContains(t, err, "reading source")
}

func TestIngest_EmptySource(t *testing.T) {
	tree := newTestTree(t)

	stats, err := tree.Ingest(strings.NewReader(""), 5)
	require.NoError(t, err)
	assert.Equal(t, Stats{}, stats)
	assert.Empty(t, tree.Diagnostics())
}
