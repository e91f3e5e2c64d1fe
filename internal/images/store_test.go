package images

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowed(t *testing.T) {
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)

	tests := []struct {
		contentType string
		want        bool
	}{
		{"image/png", true},
		{"image/jpg", true},
		{"image/jpeg", true},
		{"IMAGE/PNG", true},
		{" image/png ", true},
		{"image/gif", false},
		{"application/pdf", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Allowed(tt.contentType))
		})
	}
}

func TestSaveUsesUniqueNames(t *testing.T) {
	s, err := NewStore(filepath.Join(t.TempDir(), "images"))
	require.NoError(t, err)

	first, err := s.Save(strings.NewReader("one"), "cat.png")
	require.NoError(t, err)
	second, err := s.Save(strings.NewReader("two"), "cat.png")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasSuffix(first, "-cat.png"))

	data, err := os.ReadFile(filepath.FromSlash(first))
	require.NoError(t, err)
	assert.Equal(t, "one", string(data))
}

func TestSaveStripsDirectories(t *testing.T) {
	s, err := NewStore(filepath.Join(t.TempDir(), "images"))
	require.NoError(t, err)

	path, err := s.Save(strings.NewReader("x"), "../../etc/passwd")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, filepath.ToSlash(s.Dir())+"/"))
	assert.True(t, strings.HasSuffix(path, "-passwd"))
}

func TestRemove(t *testing.T) {
	s, err := NewStore(filepath.Join(t.TempDir(), "images"))
	require.NoError(t, err)

	path, err := s.Save(strings.NewReader("x"), "cat.png")
	require.NoError(t, err)

	require.NoError(t, s.Remove(path))
	_, err = os.Stat(filepath.FromSlash(path))
	assert.True(t, os.IsNotExist(err))

	t.Run("missing file is fine", func(t *testing.T) {
		assert.NoError(t, s.Remove(path))
	})

	t.Run("empty path is a no-op", func(t *testing.T) {
		assert.NoError(t, s.Remove(""))
	})

	t.Run("outside the images dir is refused", func(t *testing.T) {
		assert.Error(t, s.Remove("/etc/passwd"))
		assert.Error(t, s.Remove(s.Dir()+"/../secret"))
	})
}
