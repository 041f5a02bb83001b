package reindex

import (
	"regexp"
	"strings"
)

// DefaultFields are the front-matter keys whose index prefix is kept in sync.
var DefaultFields = []string{"title", "alias"}

// valuePattern is the shape a field value must have to be rewritten:
// "<digits>.<alphanumerics> - <free text>". Only the index part is replaced.
const valuePattern = `[0-9]+\.[0-9a-zA-Z]+( - .*)`

// Rewriter substitutes the index prefix of a fixed, ordered set of fields.
type Rewriter struct {
	fields   []string
	patterns []*regexp.Regexp
}

var defaultRewriter = NewRewriter(DefaultFields...)

// NewRewriter compiles one pattern per field. Substitutions run in the order
// given, each on the output of the previous one.
func NewRewriter(fields ...string) *Rewriter {
	r := &Rewriter{fields: append([]string(nil), fields...)}
	for _, f := range fields {
		r.patterns = append(r.patterns, regexp.MustCompile(`(`+regexp.QuoteMeta(f)+`:\s)`+valuePattern))
	}
	return r
}

// Fields returns the field names handled by r.
func (r *Rewriter) Fields() []string {
	return append([]string(nil), r.fields...)
}

// Rewrite replaces the index portion of every matching field value with index.
// Fields that are absent or whose value has another shape are left alone.
func (r *Rewriter) Rewrite(content, index string) string {
	// index is inserted literally; "$" would otherwise start a group reference.
	repl := "${1}" + strings.ReplaceAll(index, "$", "$$") + "${2}"
	for _, p := range r.patterns {
		content = p.ReplaceAllString(content, repl)
	}
	return content
}

// RewriteFields rewrites the title and alias fields of content to carry index.
func RewriteFields(content, index string) string {
	return defaultRewriter.Rewrite(content, index)
}
