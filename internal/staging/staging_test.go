package staging

import (
	"errors"
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("stream broke")
}

func TestStageWritesContent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := New(dir)

	staged, err := s.Stage(strings.NewReader("some bytes"), "cat.jpg")
	require.NoError(t, err)
	defer staged.Cleanup()

	assert.True(t, strings.HasSuffix(staged.Path(), ".jpg"), "extension preserved")

	rc, err := staged.Open()
	require.NoError(t, err)
	defer func() { _ = rc.Close() }()

	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "some bytes", string(content))
}

func TestStageUniqueNamesUnderConcurrency(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := New(dir)

	const n = 20
	paths := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			staged, err := s.Stage(strings.NewReader("x"), "same-name.jpg")
			if err != nil {
				t.Errorf("stage: %v", err)
				return
			}
			paths[i] = staged.Path()
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool, n)
	for _, p := range paths {
		assert.False(t, seen[p], "duplicate staging path %q", p)
		seen[p] = true
	}
}

func TestCleanupRemovesFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := New(dir)

	staged, err := s.Stage(strings.NewReader("x"), "cat.jpg")
	require.NoError(t, err)

	path := staged.Path()
	staged.Cleanup()

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "staged file should be gone")

	// Calling again must be safe.
	staged.Cleanup()
}

func TestStageReadErrorLeavesNothingBehind(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := New(dir)

	_, err := s.Stage(failingReader{}, "cat.jpg")
	require.Error(t, err)

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "failed staging must not leave temp files")
}
