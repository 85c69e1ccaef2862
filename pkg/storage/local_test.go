package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaveReadDelete(t *testing.T) {
	ls, err := NewLocalStorage(filepath.Join(t.TempDir(), "uploads"))
	assert.NoError(t, err)

	locator, err := ls.Save("sess-1", "my photo.jpg", []byte("jpeg-bytes"))
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(locator, "/uploads/sess-1/"))
	assert.True(t, strings.HasSuffix(locator, "_my_photo.jpg"))

	data, err := ls.Read(locator)
	assert.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)

	deleted, err := ls.Delete(locator)
	assert.NoError(t, err)
	assert.True(t, deleted)

	// deleting again is a no-op, not an error
	deleted, err = ls.Delete(locator)
	assert.NoError(t, err)
	assert.False(t, deleted)
}

func TestDeleteSession(t *testing.T) {
	base := filepath.Join(t.TempDir(), "uploads")
	ls, err := NewLocalStorage(base)
	assert.NoError(t, err)

	_, err = ls.Save("sess-1", "a.jpg", []byte("a"))
	assert.NoError(t, err)
	_, err = ls.Save("sess-1", "b.jpg", []byte("b"))
	assert.NoError(t, err)

	assert.NoError(t, ls.DeleteSession("sess-1"))
	_, err = os.Stat(filepath.Join(base, "sess-1"))
	assert.True(t, os.IsNotExist(err))

	assert.Error(t, ls.DeleteSession("../etc"))
	assert.Error(t, ls.DeleteSession(""))
}

func TestResolveRejectsTraversal(t *testing.T) {
	ls, err := NewLocalStorage(filepath.Join(t.TempDir(), "uploads"))
	assert.NoError(t, err)

	_, err = ls.Read("/uploads/../../etc/passwd")
	assert.Error(t, err)
}
