package extensions

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime"
	"net/http"
	"strings"

	"github.com/pysugar/backend/errors"
	"github.com/pysugar/backend/units"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// DefaultJSONLimit bounds the raw (inflated) body size the parser accepts.
const DefaultJSONLimit = 100 * units.KB

var (
	errUnsupportedCharset  = errors.New("unsupported charset")
	errUnsupportedEncoding = errors.New("unsupported content encoding")
	errTooLarge            = errors.New("request entity too large")
	errStrictJSON          = errors.New("JSON body must be an object or an array")
	errMalformedJSON       = errors.New("malformed JSON body")
)

type JSONBodyOptions struct {
	// Limit is the maximum body size, zero means DefaultJSONLimit.
	Limit units.ByteSize
	// Strict accepts only objects and arrays at the top level.
	Strict bool
}

type jsonBodyKey struct{}

// JSONBody returns the value decoded by the JSON body parser for r, if any.
func JSONBody(r *http.Request) (any, bool) {
	v, ok := r.Context().Value(jsonBodyKey{}).(jsonValue)
	if !ok {
		return nil, false
	}
	return v.value, true
}

type jsonValue struct {
	value any
}

// JSONBodyMiddleware parses application/json bodies with the default options.
func JSONBodyMiddleware(next http.Handler) http.Handler {
	return NewJSONBodyMiddleware(JSONBodyOptions{Strict: true})(next)
}

func NewJSONBodyMiddleware(opts JSONBodyOptions) func(http.Handler) http.Handler {
	if opts.Limit == 0 {
		opts.Limit = DefaultJSONLimit
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !hasBody(r) || !isJSON(r) {
				next.ServeHTTP(w, r)
				return
			}

			raw, value, status, err := parseJSONBody(r, opts)
			if err != nil {
				log.Printf("Error parsing JSON body of %s %s: %v", r.Method, r.URL.RequestURI(), err)
				http.Error(w, err.Error(), status)
				return
			}

			r.Body = io.NopCloser(bytes.NewReader(raw))
			r.ContentLength = int64(len(raw))
			r.Header.Del("Content-Encoding")
			ctx := context.WithValue(r.Context(), jsonBodyKey{}, jsonValue{value: value})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// hasBody treats a declared Content-Length, zero included, as a body.
func hasBody(r *http.Request) bool {
	if r.Body == nil {
		return false
	}
	if r.Header.Get("Content-Length") != "" || len(r.TransferEncoding) > 0 {
		return true
	}
	return r.Body != http.NoBody && r.ContentLength != 0
}

func isJSON(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return false
	}
	return mediaType == "application/json"
}

func parseJSONBody(r *http.Request, opts JSONBodyOptions) ([]byte, any, int, error) {
	_, params, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	decoder, err := charsetDecoder(params["charset"])
	if err != nil {
		return nil, nil, http.StatusUnsupportedMediaType, err
	}

	if r.ContentLength > int64(opts.Limit) {
		return nil, nil, http.StatusRequestEntityTooLarge, tooLarge(opts.Limit)
	}

	defer r.Body.Close()
	body, status, err := inflate(r)
	if err != nil {
		return nil, nil, status, err
	}
	defer body.Close()

	raw, err := io.ReadAll(io.LimitReader(body, int64(opts.Limit)+1))
	if err != nil {
		return nil, nil, http.StatusBadRequest, errors.Single(errMalformedJSON, err)
	}
	if int64(len(raw)) > int64(opts.Limit) {
		return nil, nil, http.StatusRequestEntityTooLarge, tooLarge(opts.Limit)
	}
	if decoder != nil {
		if raw, err = decoder.Bytes(raw); err != nil {
			return nil, nil, http.StatusBadRequest, errors.Single(errMalformedJSON, err)
		}
		r.Header.Set("Content-Type", "application/json; charset=utf-8")
	}
	raw = bytes.TrimPrefix(raw, utf8BOM)

	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return raw, map[string]any{}, 0, nil
	}
	if opts.Strict && trimmed[0] != '{' && trimmed[0] != '[' {
		return nil, nil, http.StatusBadRequest, errStrictJSON
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, nil, http.StatusBadRequest, errors.Single(errMalformedJSON, err)
	}
	return raw, value, 0, nil
}

var utf8BOM = []byte("\xef\xbb\xbf")

// charsetDecoder returns nil for UTF-8 bodies. Other UTF encodings are
// transcoded, anything else is unsupported.
func charsetDecoder(charset string) (*encoding.Decoder, error) {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "utf-16":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder(), nil
	case "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder(), nil
	case "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder(), nil
	case "utf-32":
		return utf32.UTF32(utf32.LittleEndian, utf32.UseBOM).NewDecoder(), nil
	case "utf-32le":
		return utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM).NewDecoder(), nil
	case "utf-32be":
		return utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM).NewDecoder(), nil
	default:
		return nil, fmt.Errorf("%w %q", errUnsupportedCharset, charset)
	}
}

func tooLarge(limit units.ByteSize) error {
	return fmt.Errorf("%w, limit %s", errTooLarge, limit)
}

func inflate(r *http.Request) (io.ReadCloser, int, error) {
	ce := strings.ToLower(strings.TrimSpace(r.Header.Get("Content-Encoding")))
	switch ce {
	case "", "identity":
		return io.NopCloser(r.Body), 0, nil
	case "gzip":
		zr, err := gzip.NewReader(r.Body)
		if err != nil {
			return nil, http.StatusBadRequest, errors.Single(errMalformedJSON, err)
		}
		return zr, 0, nil
	case "deflate":
		zr, err := zlib.NewReader(r.Body)
		if err != nil {
			return nil, http.StatusBadRequest, errors.Single(errMalformedJSON, err)
		}
		return zr, 0, nil
	default:
		return nil, http.StatusUnsupportedMediaType, fmt.Errorf("%w %q", errUnsupportedEncoding, ce)
	}
}
