package tailkeep

import (
	"regexp"
	"strings"
)

// Filter decides whether a document participates in padding and stripping.
type Filter struct {
	exts    map[string]bool
	pattern string
	warn    WarnFunc
}

// NewFilter builds a filter for the given extensions (".txt" form, the dot
// optional, case-insensitive) and exclude pattern. warn receives soft
// failures such as an unparseable pattern; nil discards them.
func NewFilter(exts []string, pattern string, warn WarnFunc) *Filter {
	m := make(map[string]bool, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		m[e] = true
	}
	if warn == nil {
		warn = func(string, ...any) {}
	}
	return &Filter{exts: m, pattern: pattern, warn: warn}
}

// SupportedType reports whether doc's extension is one the filter manages.
func (f *Filter) SupportedType(doc Document) bool {
	return f.exts[doc.Ext()]
}

// Eligible reports whether doc may be padded or stripped. content is the
// text the exclude pattern is matched against alongside the path; a match
// on either excludes the document.
//
// An invalid pattern fails open: the document stays eligible and the warn
// sink gets one message per evaluation. Fail-open is part of the contract
// here; excluding nothing beats silently excluding everything.
func (f *Filter) Eligible(doc Document, content string) bool {
	if !f.SupportedType(doc) {
		return false
	}
	if f.pattern == "" {
		return true
	}

	re, err := regexp.Compile(f.pattern)
	if err != nil {
		f.warn("exclude pattern %q: %v", f.pattern, err)
		return true
	}
	if re.MatchString(doc.Path) || re.MatchString(content) {
		return false
	}
	return true
}
