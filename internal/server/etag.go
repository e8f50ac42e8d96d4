package server

import (
	"bytes"
	"crypto/md5"
	"fmt"
	"net/http"
)

// WrapResponseWriter buffers the response and serves 304s against
// If-None-Match using an MD5 ETag of the body.
func WrapResponseWriter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := newWrapperResponseWriter(w)
		next.ServeHTTP(ww, r)
		_, _ = ww.Flush(r.Header.Get("If-None-Match"))
	})
}

type wrapperResponseWriter struct {
	http.ResponseWriter
	buf         *bytes.Buffer
	statusCode  int
	wroteHeader bool
}

func newWrapperResponseWriter(w http.ResponseWriter) *wrapperResponseWriter {
	return &wrapperResponseWriter{ResponseWriter: w, buf: new(bytes.Buffer), statusCode: http.StatusOK}
}

func (w *wrapperResponseWriter) Write(b []byte) (int, error) {
	return w.buf.Write(b)
}

func (w *wrapperResponseWriter) WriteHeader(code int) {
	w.statusCode = code
	w.wroteHeader = true
}

func (w *wrapperResponseWriter) Flush(ifNoneMatch string) (int64, error) {
	if 200 <= w.statusCode && w.statusCode < 300 {
		etag := fmt.Sprintf("\"%x\"", md5.Sum(w.buf.Bytes()))
		w.Header().Set("ETag", etag)
		if ifNoneMatch == etag {
			w.ResponseWriter.WriteHeader(http.StatusNotModified)
			w.buf.Reset()
			return 0, nil
		}
	}

	if w.wroteHeader {
		w.ResponseWriter.WriteHeader(w.statusCode)
	}
	return w.buf.WriteTo(w.ResponseWriter)
}
