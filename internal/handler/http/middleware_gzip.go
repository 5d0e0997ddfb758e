package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

// Pooled gzip writers and readers shared across requests. Resetting a pooled
// writer is much cheaper than allocating one per response.
var (
	gzipWriterPool = sync.Pool{
		New: func() any { return gzip.NewWriter(io.Discard) },
	}
	gzipReaderPool = sync.Pool{
		New: func() any { return new(gzip.Reader) },
	}
)

// withGZip transparently inflates gzip request bodies and compresses
// responses for clients that send "Accept-Encoding: gzip".
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if strings.Contains(req.Header.Get("Content-Encoding"), "gzip") && req.Body != nil {
			if err := decompressRequestBody(req); err != nil {
				http.Error(w, "Invalid gzip data", http.StatusBadRequest)
				return
			}
		}

		if !strings.Contains(req.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, req)
			return
		}

		gzipWriter := gzipWriterPool.Get().(*gzip.Writer)
		gzipWriter.Reset(w)

		next.ServeHTTP(&gzipResponseWriter{ResponseWriter: w, gzipWriter: gzipWriter}, req)

		gzipWriter.Close()
		gzipWriterPool.Put(gzipWriter)
	})
}

// decompressRequestBody swaps req.Body for a reader that inflates the gzip
// payload. The pooled reader is returned on Close.
func decompressRequestBody(req *http.Request) error {
	gzipReader := gzipReaderPool.Get().(*gzip.Reader)
	if err := gzipReader.Reset(req.Body); err != nil {
		gzipReaderPool.Put(gzipReader)
		return err
	}

	req.Body = &wrappedReadCloser{
		Reader: gzipReader,
		OnClose: func() {
			gzipReader.Close()
			gzipReaderPool.Put(gzipReader)
		},
	}
	req.Header.Del("Content-Encoding")

	return nil
}

// wrappedReadCloser turns a plain io.Reader into an io.ReadCloser with a
// close hook, used to hand pooled gzip readers back on body close.
type wrappedReadCloser struct {
	io.Reader
	OnClose func()
}

func (w *wrappedReadCloser) Close() error {
	if w.OnClose != nil {
		w.OnClose()
	}
	return nil
}

type gzipResponseWriter struct {
	http.ResponseWriter
	gzipWriter *gzip.Writer
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	w.Header().Set("Content-Encoding", "gzip")
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	return w.gzipWriter.Write(data)
}
