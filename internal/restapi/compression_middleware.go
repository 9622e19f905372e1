package restapi

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
	"github.com/klauspost/compress/gzip"
)

// gzipMinSize leaves brand, fuel and band lists as they are; valuation reports and the
// debug dump are larger.
const gzipMinSize = 1024

var gzipContentTypes = []string{"application/json", "text/html", "text/plain"}

// CompressionMiddleware gzips JSON and HTML bodies of at least gzipMinSize bytes for
// clients that accept it.
func CompressionMiddleware(next http.Handler) http.Handler {
	wrap, err := gzhttp.NewWrapper(
		gzhttp.MinSize(gzipMinSize),
		gzhttp.CompressionLevel(gzip.DefaultCompression),
		gzhttp.ContentTypes(gzipContentTypes),
	)
	if err != nil {
		// Unreachable with the options above.
		return gzhttp.GzipHandler(next)
	}
	return wrap(next)
}
