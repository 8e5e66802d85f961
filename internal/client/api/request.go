package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path"

	"github.com/google/uuid"

	"github.com/forkedapp/forked/internal/common"
)

// request is a complete descriptor of an outbound call: method, path,
// query, headers, and body. Builders produce descriptors; Client.do turns
// them into actual HTTP requests.
type request struct {
	method string
	path   string
	query  url.Values
	header http.Header
	body   []byte
}

func newRequest(method, p string) *request {
	return &request{
		method: method,
		path:   p,
		query:  url.Values{},
		header: http.Header{},
	}
}

// withJSON attaches a JSON body.
func (r *request) withJSON(v any) (*request, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}
	r.body = data
	r.header.Set("Content-Type", "application/json")
	return r, nil
}

// filePart is a binary payload for a multipart request.
type filePart struct {
	field string
	data  []byte
}

// withMultipart encodes a multipart/form-data body. Scalar fields are
// written first, in the order given; file parts are appended strictly after
// them. The backend's form parser depends on this ordering.
func (r *request) withMultipart(fields [][2]string, files []filePart) (*request, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return nil, fmt.Errorf("writing form field %q: %w", f[0], err)
		}
	}
	for _, f := range files {
		part, err := w.CreateFormFile(f.field, uuid.NewString()+".jpg")
		if err != nil {
			return nil, fmt.Errorf("creating form file %q: %w", f.field, err)
		}
		if _, err := part.Write(f.data); err != nil {
			return nil, fmt.Errorf("writing form file %q: %w", f.field, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	r.body = buf.Bytes()
	r.header.Set("Content-Type", w.FormDataContentType())
	return r, nil
}

// httpRequest materializes the descriptor against the given base URL.
func (r *request) httpRequest(base string) (*http.Request, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, err
	}
	u.Path = path.Join(u.Path, r.path)
	// path.Join strips the trailing slash the backend's router requires
	if len(r.path) > 1 && r.path[len(r.path)-1] == '/' {
		u.Path += "/"
	}
	u.RawQuery = r.query.Encode()

	var body io.Reader
	if r.body != nil {
		body = bytes.NewReader(r.body)
	}

	req, err := http.NewRequest(r.method, u.String(), body)
	if err != nil {
		return nil, err
	}
	for k, vs := range r.header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// authedRequest builds a descriptor carrying the session token. If no token
// is available the builder fails fast with ErrUnauthorized and no request is
// issued.
func (c *Client) authedRequest(method, p string) (*request, error) {
	token, ok := c.tokens.Token()
	if !ok {
		return nil, fmt.Errorf("%s %s: %w", method, p, ErrUnauthorized)
	}
	r := newRequest(method, p)
	r.header.Set(common.AuthHeaderName, common.AuthScheme+" "+token)
	return r, nil
}
