package testutil

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
)

// PNGBytes is the smallest content that sniffs as image/png.
var PNGBytes = append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 24)...)

// JPEGBytes sniffs as image/jpeg.
var JPEGBytes = append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, make([]byte, 24)...)

// FormFile describes one file part of a multipart request.
type FormFile struct {
	Field       string
	FileName    string
	ContentType string
	Content     []byte
}

// MultipartBody encodes fields and files and returns the body together
// with its Content-Type header value.
func MultipartBody(t *testing.T, fields map[string]string, files ...FormFile) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, f.Field, f.FileName))
		h.Set("Content-Type", f.ContentType)
		part, err := w.CreatePart(h)
		if err != nil {
			t.Fatalf("create part %s: %v", f.Field, err)
		}
		if _, err := part.Write(f.Content); err != nil {
			t.Fatalf("write part %s: %v", f.Field, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return body, w.FormDataContentType()
}

// MultipartRequest builds a request carrying a multipart body.
func MultipartRequest(t *testing.T, method, target string, fields map[string]string, files ...FormFile) *http.Request {
	t.Helper()
	body, contentType := MultipartBody(t, fields, files...)
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", contentType)
	return req
}

// FileHeader returns the parsed header of a single uploaded file.
func FileHeader(t *testing.T, f FormFile) *multipart.FileHeader {
	t.Helper()
	if f.Field == "" {
		f.Field = "image"
	}
	body, contentType := MultipartBody(t, nil, f)
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", contentType)
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatalf("parse multipart: %v", err)
	}
	return req.MultipartForm.File[f.Field][0]
}
