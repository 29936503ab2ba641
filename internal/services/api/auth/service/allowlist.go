package service

import (
	"sort"
	"strings"
)

// AllowList is the immutable set of emails that may use the dashboard
// matching ignores case and surrounding space
type AllowList struct {
	emails map[string]struct{}
}

// NewAllowList builds the list; blank entries are dropped
func NewAllowList(emails ...string) *AllowList {
	a := &AllowList{emails: make(map[string]struct{}, len(emails))}
	for _, e := range emails {
		if e = normalizeEmail(e); e != "" {
			a.emails[e] = struct{}{}
		}
	}
	return a
}

// With returns a new list holding both a's emails and more
func (a *AllowList) With(more ...string) *AllowList {
	return NewAllowList(append(a.Emails(), more...)...)
}

// Allowed reports whether email is on the list
func (a *AllowList) Allowed(email string) bool {
	if a == nil {
		return false
	}
	_, ok := a.emails[normalizeEmail(email)]
	return ok
}

// Len returns the number of allowed emails
func (a *AllowList) Len() int {
	if a == nil {
		return 0
	}
	return len(a.emails)
}

// Emails returns the sorted allowed emails
func (a *AllowList) Emails() []string {
	if a == nil {
		return nil
	}
	out := make([]string, 0, len(a.emails))
	for e := range a.emails {
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}

func normalizeEmail(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
