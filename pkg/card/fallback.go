package card

import (
	"strconv"
	"time"
)

// Fallbacks holds the literal text shown for absent fields.
type Fallbacks struct {
	Unknown       string // absent owner, name, or date
	NoDescription string // absent description
	Zero          string // absent count
	NotAvailable  string // absent language or license where a value must be shown
}

// DefaultFallbacks is the fallback wording used by every generator.
var DefaultFallbacks = Fallbacks{
	Unknown:       "Unknown",
	NoDescription: "No description available",
	Zero:          "0",
	NotAvailable:  "N/A",
}

// Fields is a record with the fallback policy applied. Every string is
// display-ready.
type Fields struct {
	Owner       string
	Name        string
	Description string

	// Language is the language or the N/A fallback; HasLanguage reports
	// whether the record carried one, for styles that omit the stat instead.
	Language    string
	HasLanguage bool

	// License is the SPDX id or the N/A fallback.
	License string

	Stars  string
	Forks  string
	Issues string

	Created string
	Pushed  string

	Topics       []string
	Contributors []Contributor
}

// Resolve applies [DefaultFallbacks] to rec.
func Resolve(rec RepositoryRecord) Fields {
	return DefaultFallbacks.Resolve(rec)
}

// Resolve applies f to rec.
func (f Fallbacks) Resolve(rec RepositoryRecord) Fields {
	return Fields{
		Owner:        orDefault(rec.OwnerLogin, f.Unknown),
		Name:         orDefault(rec.Name, f.Unknown),
		Description:  orDefault(rec.Description, f.NoDescription),
		Language:     orDefault(rec.Language, f.NotAvailable),
		HasLanguage:  rec.Language != "",
		License:      orDefault(rec.License, f.NotAvailable),
		Stars:        f.count(rec.StarCount),
		Forks:        f.count(rec.ForkCount),
		Issues:       f.count(rec.OpenIssueCount),
		Created:      f.date(rec.CreatedAt),
		Pushed:       f.date(rec.PushedAt),
		Topics:       rec.Topics,
		Contributors: rec.Contributors,
	}
}

func (f Fallbacks) count(n int) string {
	if n <= 0 {
		return f.Zero
	}
	return FormatCount(n)
}

func (f Fallbacks) date(t *time.Time) string {
	if t == nil || t.IsZero() {
		return f.Unknown
	}
	return FormatDate(*t)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// FormatCount groups digits in thousands: 1234567 → "1,234,567".
func FormatCount(n int) string {
	s := strconv.Itoa(n)
	neg := n < 0
	if neg {
		s = s[1:]
	}
	if len(s) <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}
	out := make([]byte, 0, len(s)+len(s)/3+1)
	if neg {
		out = append(out, '-')
	}
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	out = append(out, s[:lead]...)
	for i := lead; i < len(s); i += 3 {
		out = append(out, ',')
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}

// FormatDate renders t as a short calendar date, e.g. "Mar 5, 2024".
func FormatDate(t time.Time) string {
	return t.UTC().Format("Jan 2, 2006")
}
