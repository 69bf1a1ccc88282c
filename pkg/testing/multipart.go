package testing

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// PNGBytes is a minimal payload sniffed as image/png.
var PNGBytes = append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...)

// NewMultipartRequest builds a multipart/form-data request with one file
// part under fileField and the given plain form fields.
func NewMultipartRequest(
	t *testing.T,
	method, target string,
	fileField, fileName string,
	content []byte,
	fields map[string]string,
) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileField != "" {
		part, err := mw.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}
