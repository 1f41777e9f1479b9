package middleware

import (
	"net/url"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const redacted = "[REDACTED]"

// RedactOptions extends the built-in scrubbing of RedactingLogger.
type RedactOptions struct {
	// MaskHeaders are masked entirely, in addition to Authorization, Cookie
	// and Set-Cookie. Case-insensitive.
	MaskHeaders []string
	// MaskQueryKeys are query parameters whose values are masked entirely,
	// such as free-text fields typed by users.
	MaskQueryKeys []string
}

// UUIDs are matched before phone numbers so the loose phone pattern cannot
// eat the digit groups of an ID.
var (
	uuidRE  = regexp.MustCompile(`(?i)\b[0-9a-f]{8}-[0-9a-f]{4}-[1-5][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}\b`)
	emailRE = regexp.MustCompile(`(?i)\b[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}\b`)
	phoneRE = regexp.MustCompile(`\b(?:\+?\d{1,3}[ .-]?)?(?:\(?\d{2,4}\)?[ .-]?)?\d{3,4}[ .-]?\d{4}\b`)
)

// Redactor scrubs identifiers (UUIDs, emails, phone numbers) from strings,
// query strings and headers.
type Redactor struct {
	maskHeaders map[string]struct{}
	maskQuery   map[string]struct{}
}

// NewRedactor builds a Redactor for opts.
func NewRedactor(opts RedactOptions) *Redactor {
	r := &Redactor{
		maskHeaders: map[string]struct{}{"authorization": {}, "cookie": {}, "set-cookie": {}},
		maskQuery:   map[string]struct{}{},
	}
	for _, h := range opts.MaskHeaders {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			r.maskHeaders[h] = struct{}{}
		}
	}
	for _, k := range opts.MaskQueryKeys {
		if k = strings.TrimSpace(k); k != "" {
			r.maskQuery[k] = struct{}{}
		}
	}
	return r
}

// String replaces identifiers in s with typed placeholders.
func (r *Redactor) String(s string) string {
	if s == "" {
		return s
	}
	s = uuidRE.ReplaceAllString(s, "[REDACTED:id]")
	s = emailRE.ReplaceAllString(s, "[REDACTED:email]")
	return phoneRE.ReplaceAllString(s, "[REDACTED:phone]")
}

// Query decodes raw, masks configured keys, scrubs the other values and
// re-joins the pairs in key order. Values are left unescaped so that
// placeholders stay readable. Undecodable input is scrubbed as a string.
func (r *Redactor) Query(raw string) string {
	if raw == "" {
		return ""
	}
	vals, err := url.ParseQuery(raw)
	if err != nil {
		return r.String(truncate(raw, maxQueryLogLength))
	}
	keys := make([]string, 0, len(vals))
	for k := range vals {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		_, masked := r.maskQuery[k]
		for _, v := range vals[k] {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(k)
			b.WriteByte('=')
			if masked {
				b.WriteString(redacted)
			} else {
				b.WriteString(r.String(v))
			}
		}
	}
	return truncate(b.String(), maxQueryLogLength)
}

// Headers returns the scrubbed request headers, one joined value per name.
func (r *Redactor) Headers(h map[string][]string) map[string]string {
	out := make(map[string]string, len(h))
	for k, vv := range h {
		if _, ok := r.maskHeaders[strings.ToLower(k)]; ok {
			out[k] = redacted
			continue
		}
		out[k] = r.String(strings.Join(vv, ", "))
	}
	return out
}

// RedactingLogger is Logger with PII scrubbing: it never logs bodies, masks
// sensitive headers and query keys and replaces identifiers in the rest.
// The scrubbed request-scoped logger is available through LoggerFrom.
func RedactingLogger(opts RedactOptions) gin.HandlerFunc {
	red := NewRedactor(opts)

	return func(c *gin.Context) {
		start := time.Now()

		l := requestLogger(c).With().
			Str("query", red.Query(c.Request.URL.RawQuery)).
			Logger()
		c.Set(loggerKey, &l)
		headers := red.Headers(c.Request.Header)

		c.Next()

		eventFor(&l, c).
			Int("status", c.Writer.Status()).
			Int("bytes", c.Writer.Size()).
			Dur("latency", time.Since(start)).
			Interface("headers", headers).
			Msg("http_request")
	}
}
