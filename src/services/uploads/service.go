package uploads

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// FileTypeMap lists the accepted upload MIME types and the extension each is stored with.
var FileTypeMap = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpeg",
	"image/jpg":  "jpg",
}

// sniffedAs maps a declared type to what the file content must detect as.
var sniffedAs = map[string]string{
	"image/png":  "image/png",
	"image/jpeg": "image/jpeg",
	"image/jpg":  "image/jpeg",
}

var (
	ErrInvalidImageType = errors.New("invalid image type")
	ErrImageTooLarge    = errors.New("image too large")
)

// Storage persists uploaded files under a flat namespace of file names.
type Storage interface {
	Save(name string, r io.Reader) error
	Remove(name string) error
}

// DiskStorage keeps files in a single local directory.
type DiskStorage struct {
	Dir string
}

func (d DiskStorage) Save(name string, r io.Reader) error {
	if err := os.MkdirAll(d.Dir, 0755); err != nil {
		return fmt.Errorf("create upload dir: %w", err)
	}
	dst, err := os.Create(filepath.Join(d.Dir, filepath.Base(name)))
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, r); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}

// Remove deletes a stored file. A file that is already gone is not an error.
func (d DiskStorage) Remove(name string) error {
	err := os.Remove(filepath.Join(d.Dir, filepath.Base(name)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// ImageIntake enforces the image upload policy and stores accepted files.
type ImageIntake struct {
	storage Storage
	maxSize int64
	now     func() time.Time
}

func NewImageIntake(storage Storage, maxSize int64) *ImageIntake {
	return &ImageIntake{storage: storage, maxSize: maxSize, now: time.Now}
}

// Check validates an upload without writing anything.
func (i *ImageIntake) Check(file *multipart.FileHeader) error {
	_, err := i.check(file)
	return err
}

func (i *ImageIntake) check(file *multipart.FileHeader) (string, error) {
	declared := file.Header.Get("Content-Type")
	ext, ok := FileTypeMap[declared]
	if !ok {
		return "", ErrInvalidImageType
	}
	if i.maxSize > 0 && file.Size > i.maxSize {
		return "", ErrImageTooLarge
	}

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	detected, err := mimetype.DetectReader(f)
	if err != nil {
		return "", err
	}
	if !detected.Is(sniffedAs[declared]) {
		return "", ErrInvalidImageType
	}
	return ext, nil
}

// Store validates the upload and writes it, returning the stored file name.
func (i *ImageIntake) Store(file *multipart.FileHeader) (string, error) {
	ext, err := i.check(file)
	if err != nil {
		return "", err
	}

	name := StoredFileName(file.Filename, ext, i.now())

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := i.storage.Save(name, src); err != nil {
		return "", fmt.Errorf("save %s: %w", name, err)
	}
	return name, nil
}

// Remove deletes a previously stored file, logging instead of failing.
func (i *ImageIntake) Remove(name string) {
	if name == "" {
		return
	}
	if err := i.storage.Remove(name); err != nil {
		log.Println("⚠️ Failed to remove uploaded file:", name, err)
	}
}

// StoredFileName derives a collision-resistant name from the client's file
// name: directories are stripped, spaces become hyphens, and the upload time
// in milliseconds plus the type's extension are appended.
func StoredFileName(original, ext string, at time.Time) string {
	base := path.Base(strings.ReplaceAll(original, "\\", "/"))
	if base == "." || base == "/" || base == ".." {
		base = "image"
	}
	base = strings.Join(strings.Split(base, " "), "-")
	return fmt.Sprintf("%s-%d.%s", base, at.UnixMilli(), ext)
}

// PublicURL is the absolute URL an uploaded file is served at. The name is
// path-escaped; FileNameFromURL reverses it.
func PublicURL(baseURL, publicPath, name string) string {
	return strings.TrimRight(baseURL, "/") + "/" + strings.Trim(publicPath, "/") + "/" + url.PathEscape(name)
}

// FileNameFromURL returns the stored file name behind a URL built by
// PublicURL, or "" when the URL does not point under publicPath.
func FileNameFromURL(rawURL, publicPath string) string {
	if rawURL == "" {
		return ""
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	prefix := "/" + strings.Trim(publicPath, "/") + "/"
	if !strings.HasPrefix(u.Path, prefix) {
		return ""
	}
	name := strings.TrimPrefix(u.Path, prefix)
	if name == "" || strings.Contains(name, "/") {
		return ""
	}
	return name
}
