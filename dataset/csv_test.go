package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wantHeader = "self_score,opp_score,opp_stands,result_card_val,result_stand,score"

func TestWriteReadRoundTrip(t *testing.T) {
	d := New()
	d.Append(Row{SelfScore: 12, OppScore: 9, OppStands: false, PlayedCardValue: -3, Stood: false, Label: Resolved(0.3)})
	d.Append(Row{SelfScore: 17, OppScore: 9, OppStands: true, PlayedCardValue: 0, Stood: true, Label: Resolved(1)})
	d.Append(Row{SelfScore: 5, OppScore: 20, OppStands: true, PlayedCardValue: 6, Stood: false, Label: Resolved(-0.3)})

	path := filepath.Join(t.TempDir(), "result.csv")
	require.NoError(t, d.WriteFile(path))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, d.Rows(), got.Rows())
}

func TestWriteFileHeader(t *testing.T) {
	d := New()
	d.Append(Row{SelfScore: 12, OppScore: 9, Label: Resolved(0)})

	path := filepath.Join(t.TempDir(), "result.csv")
	require.NoError(t, d.WriteFile(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, wantHeader, strings.TrimSpace(lines[0]))
	assert.Equal(t, "12,9,0,0,0,0", strings.TrimSpace(lines[1]))
}

func TestWriteEmptyDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.csv")
	require.NoError(t, New().WriteFile(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, wantHeader, strings.TrimSpace(string(raw)))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}

func TestWriteRefusesPendingLabels(t *testing.T) {
	d := New()
	d.Append(Row{SelfScore: 12, OppScore: 9})

	path := filepath.Join(t.TempDir(), "result.csv")
	err := d.WriteFile(path)

	require.ErrorIs(t, err, ErrUnresolved)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no file should be written")
}

func TestWriteCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "result.csv")
	require.NoError(t, New().WriteFile(path))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestReadMissingFile(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}

func TestReadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte(wantHeader+"\n1,2,three,4,5,6\n"), 0644))

	_, err := ReadFile(path)
	assert.Error(t, err)
}
