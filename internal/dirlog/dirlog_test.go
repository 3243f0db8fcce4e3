package dirlog

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendCreatesFileWithHeader(t *testing.T) {
	fs := afero.NewMemMapFs()

	rec := Record{Timestamp: "May 17, 2025 at 8:08 PM", Directory: "1-data", Path: "/work/1-data"}
	require.NoError(t, Append(fs, "/logs/smartdirs.log", rec))

	content, err := afero.ReadFile(fs, "/logs/smartdirs.log")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Date,Directory,Path", lines[0])
	assert.Equal(t, `"May 17, 2025 at 8:08 PM","1-data","/work/1-data"`, lines[1])
}

func TestAppendWritesHeaderOnlyOnce(t *testing.T) {
	fs := afero.NewMemMapFs()
	logPath := "/logs/smartdirs.log"

	require.NoError(t, Append(fs, logPath, Record{Timestamp: "a", Directory: "b", Path: "c"}))
	require.NoError(t, Append(fs, logPath, Record{Timestamp: "d", Directory: "e", Path: "f"}))

	content, err := afero.ReadFile(fs, logPath)
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(string(content), "Date,Directory,Path"))
	assert.Equal(t, 3, strings.Count(string(content), "\n"))
}

func TestRoundTripWithCommasAndQuotes(t *testing.T) {
	fs := afero.NewMemMapFs()
	logPath := "/logs/smartdirs.log"

	rec := Record{
		Timestamp: "May 17, 2025 at 8:08 PM",
		Directory: `1-say-"hi"`,
		Path:      `/work/a,b/1-say-"hi"`,
	}
	require.NoError(t, Append(fs, logPath, rec))

	records, err := ReadAll(fs, logPath)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, rec, records[0])
}

func TestReadAllPreservesInsertionOrder(t *testing.T) {
	fs := afero.NewMemMapFs()
	logPath := "/logs/smartdirs.log"

	for _, name := range []string{"1-data", "2-data", "3-data"} {
		require.NoError(t, Append(fs, logPath, Record{Timestamp: "t", Directory: name, Path: "/w/" + name}))
	}

	records, err := ReadAll(fs, logPath)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "1-data", records[0].Directory)
	assert.Equal(t, "3-data", records[2].Directory)
}

func TestReadAllMissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	records, err := ReadAll(fs, "/logs/smartdirs.log")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestAppendCreatesLogDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()

	require.NoError(t, Append(fs, "/deep/nested/logs/smartdirs.log", Record{Timestamp: "t", Directory: "d", Path: "p"}))

	exists, err := afero.DirExists(fs, "/deep/nested/logs")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestNewRecordTimestampFormat(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	rec := NewRecord(time.Date(2025, 5, 17, 20, 8, 0, 0, loc), "/work/1-data")

	assert.Equal(t, "May 17, 2025 at 8:08 PM", rec.Timestamp)
	assert.Equal(t, "1-data", rec.Directory)
	assert.Equal(t, "/work/1-data", rec.Path)
}
