package uploads_test

import (
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"course-catalog/src/services/uploads"
	"course-catalog/src/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageIntakeAcceptsWhitelistedTypes(t *testing.T) {
	cases := []struct {
		contentType string
		content     []byte
		ext         string
	}{
		{"image/png", testutil.PNGBytes, ".png"},
		{"image/jpeg", testutil.JPEGBytes, ".jpeg"},
		{"image/jpg", testutil.JPEGBytes, ".jpg"},
	}
	for _, tc := range cases {
		t.Run(tc.contentType, func(t *testing.T) {
			dir := t.TempDir()
			intake := uploads.NewImageIntake(uploads.DiskStorage{Dir: dir}, 1<<20)

			fh := testutil.FileHeader(t, testutil.FormFile{FileName: "my cover", ContentType: tc.contentType, Content: tc.content})
			require.NoError(t, intake.Check(fh))

			name, err := intake.Store(fh)
			require.NoError(t, err)
			assert.Regexp(t, `^my-cover-\d+`+regexpQuote(tc.ext)+`$`, name)

			stored, err := os.ReadFile(filepath.Join(dir, name))
			require.NoError(t, err)
			assert.Equal(t, tc.content, stored)
		})
	}
}

func regexpQuote(ext string) string {
	return `\` + ext
}

func TestImageIntakeRejectsBeforeWriting(t *testing.T) {
	dir := t.TempDir()
	intake := uploads.NewImageIntake(uploads.DiskStorage{Dir: dir}, 64)

	cases := map[string]testutil.FormFile{
		"gif":       {FileName: "a.gif", ContentType: "image/gif", Content: []byte("GIF89a")},
		"spoofed":   {FileName: "a.png", ContentType: "image/png", Content: []byte("plain text, not an image")},
		"mismatch":  {FileName: "a.png", ContentType: "image/png", Content: testutil.JPEGBytes},
		"too large": {FileName: "big.png", ContentType: "image/png", Content: append(append([]byte{}, testutil.PNGBytes...), make([]byte, 100)...)},
	}
	for name, f := range cases {
		fh := testutil.FileHeader(t, f)
		_, err := intake.Store(fh)
		if name == "too large" {
			assert.ErrorIs(t, err, uploads.ErrImageTooLarge, name)
		} else {
			assert.ErrorIs(t, err, uploads.ErrInvalidImageType, name)
		}
	}

	entries, _ := os.ReadDir(dir)
	assert.Empty(t, entries)
}

func TestStoredFileName(t *testing.T) {
	at := time.UnixMilli(1700000000123)

	assert.Equal(t, "my-photo.png-1700000000123.png", uploads.StoredFileName("my photo.png", "png", at))
	assert.Equal(t, "passwd-1700000000123.jpg", uploads.StoredFileName("../../etc/passwd", "jpg", at))
	assert.Equal(t, "evil-1700000000123.jpeg", uploads.StoredFileName(`..\..\evil`, "jpeg", at))
	assert.Equal(t, "image-1700000000123.png", uploads.StoredFileName("", "png", at))
}

func TestPublicURLRoundTrip(t *testing.T) {
	u := uploads.PublicURL("http://localhost:8888", "/public/uploads", "a.png-1.png")
	assert.Equal(t, "http://localhost:8888/public/uploads/a.png-1.png", u)
	assert.Equal(t, "a.png-1.png", uploads.FileNameFromURL(u, "/public/uploads"))

	assert.Equal(t, "", uploads.FileNameFromURL("", "/public/uploads"))
	assert.Equal(t, "", uploads.FileNameFromURL("https://cdn.example.com/other/a.png", "/public/uploads"))
	assert.Equal(t, "", uploads.FileNameFromURL("http://h/public/uploads/", "/public/uploads"))
}

func TestPublicURLEscapesName(t *testing.T) {
	for _, name := range []string{"my#cover.png-1.png", "50%off.png-1.png", "what?.png-1.png"} {
		u := uploads.PublicURL("http://localhost:8888", "/public/uploads", name)
		parsed, err := url.Parse(u)
		require.NoError(t, err, u)
		assert.Empty(t, parsed.Fragment, u)
		assert.Empty(t, parsed.RawQuery, u)
		assert.Equal(t, name, uploads.FileNameFromURL(u, "/public/uploads"), u)
	}
}

func TestDiskStorageRemoveMissingFile(t *testing.T) {
	storage := uploads.DiskStorage{Dir: t.TempDir()}
	assert.NoError(t, storage.Remove("does-not-exist.png"))
}
