package douban

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Kind selects the media section of the category endpoint.
type Kind string

const (
	KindTV    Kind = "tv"
	KindMovie Kind = "movie"
)

const (
	DefaultPageLimit = 20
	DefaultPageStart = 0

	CategoriesPath = "/api/douban/categories"
)

// ParseKind accepts "tv" or "movie" in any case.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindTV, KindMovie:
		return k, nil
	default:
		return "", fmt.Errorf("unknown kind %q (expected tv or movie)", s)
	}
}

// CategoryParams describes one page of a category listing. Zero PageLimit means
// DefaultPageLimit.
type CategoryParams struct {
	Kind      Kind
	Category  string
	Type      string
	PageLimit int
	PageStart int
}

func (p CategoryParams) withDefaults() CategoryParams {
	if p.PageLimit == 0 {
		p.PageLimit = DefaultPageLimit
	}
	return p
}

// BuildCategoriesQuery renders kind, category, type, limit and start in that order.
// url.Values is not used because it sorts keys.
func BuildCategoriesQuery(p CategoryParams) string {
	p = p.withDefaults()
	pairs := [...][2]string{
		{"kind", string(p.Kind)},
		{"category", p.Category},
		{"type", p.Type},
		{"limit", strconv.Itoa(p.PageLimit)},
		{"start", strconv.Itoa(p.PageStart)},
	}

	var b strings.Builder
	for i, kv := range pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(kv[0])
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv[1]))
	}
	return b.String()
}

// CategoriesURL joins base, CategoriesPath and the query for p.
func CategoriesURL(base string, p CategoryParams) string {
	return strings.TrimRight(base, "/") + CategoriesPath + "?" + BuildCategoriesQuery(p)
}
