package storage

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeFiles(t *testing.T, sizes []int, contentTypes []string) []*multipart.FileHeader {
	t.Helper()
	require.Equal(t, len(sizes), len(contentTypes))

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for i := range sizes {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="photos"; filename="p%d.jpg"`, i))
		header.Set("Content-Type", contentTypes[i])
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(bytes.Repeat([]byte("x"), sizes[i]))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(64 << 20)
	require.NoError(t, err)
	return form.File["photos"]
}

func TestValidateImages(t *testing.T) {
	ok := makeFiles(t, []int{10, 10}, []string{"image/jpeg", "image/png"})
	assert.NoError(t, ValidateImages(ok))

	assert.NoError(t, ValidateImages(nil))

	notImage := makeFiles(t, []int{10, 10}, []string{"image/jpeg", "application/pdf"})
	assert.ErrorIs(t, ValidateImages(notImage), ErrNotAnImage)

	tooLarge := makeFiles(t, []int{MaxFileSize + 1}, []string{"image/jpeg"})
	assert.ErrorIs(t, ValidateImages(tooLarge), ErrFileTooLarge)

	sizes := make([]int, MaxFilesCount+1)
	types := make([]string, MaxFilesCount+1)
	for i := range sizes {
		sizes[i] = 1
		types[i] = "image/jpeg"
	}
	assert.ErrorIs(t, ValidateImages(makeFiles(t, sizes, types)), ErrTooManyFiles)
}

func TestSavePhotosWritesUnderPhotoDir(t *testing.T) {
	root := t.TempDir()
	files := makeFiles(t, []int{5, 5}, []string{"image/jpeg", "image/png"})

	paths, err := SavePhotos(root, files)
	require.NoError(t, err)
	require.Len(t, paths, 2)

	for _, p := range paths {
		assert.True(t, strings.HasPrefix(p, PhotoDir+"/"), p)
		assert.True(t, strings.HasSuffix(p, ".jpg"), p)

		info, err := os.Stat(root + "/" + p)
		require.NoError(t, err)
		assert.Equal(t, int64(5), info.Size())
	}
	assert.NotEqual(t, paths[0], paths[1])
}
