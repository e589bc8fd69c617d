package iofs_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pjordaan/asset-lib/internal/iofs"
)

func TestMockInfersDirectoriesFromFilePaths(t *testing.T) {
	m := iofs.NewMock(map[string]string{"src/lib/a.js": ``})

	assert.True(t, iofs.IsDir(m, "src"))
	assert.True(t, iofs.IsDir(m, "src/lib"))
	assert.False(t, iofs.IsDir(m, "src/lib/a.js"))
	assert.True(t, iofs.Exists(m, "src/lib/a.js"))
	assert.False(t, iofs.Exists(m, "src/lib/missing.js"))
}

func TestMockReadFileAndWriteFileRoundTrip(t *testing.T) {
	m := iofs.NewMock(map[string]string{})

	require.NoError(t, m.WriteFile("out.js", []byte("content")))
	content, err := m.ReadFile("out.js")
	require.NoError(t, err)
	assert.Equal(t, "content", content)
}

func TestMockSetMTimeIsObservedByStat(t *testing.T) {
	m := iofs.NewMock(map[string]string{"a.js": ``})
	stamp := time.Now()
	m.SetMTime("a.js", stamp)

	mtime, isDir, exists := m.Stat("a.js")
	assert.True(t, exists)
	assert.False(t, isDir)
	assert.True(t, mtime.Equal(stamp))
}
