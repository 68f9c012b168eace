// Package csvimport reads bulk page definitions from CSV files.
//
// The first line is a header. Recognised columns (case-insensitive, spaces
// and dashes treated as underscores):
//
//	title, url_slug (alias slug), content, is_pillar_page (alias pillar),
//	parent_slug (alias parent), meta_title, meta_description,
//	focus_keyword, secondary_keywords (";" separated)
//
// title and url_slug are required; unknown columns are ignored.
package csvimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sitegenie/sitegenie/internal/modules/model"
	"github.com/sitegenie/sitegenie/internal/pkg/utils"
)

var (
	ErrEmptyFile     = errors.New("csv file is empty")
	ErrMissingColumn = errors.New("csv header is missing a required column")
)

type Row struct {
	// Line is the 1-based line number in the file (header is line 1).
	Line              int      `json:"line"`
	Title             string   `json:"title"`
	URLSlug           string   `json:"url_slug"`
	Content           string   `json:"content,omitempty"`
	IsPillarPage      bool     `json:"is_pillar_page"`
	ParentSlug        string   `json:"parent_slug,omitempty"`
	MetaTitle         string   `json:"meta_title,omitempty"`
	MetaDescription   string   `json:"meta_description,omitempty"`
	FocusKeyword      string   `json:"focus_keyword,omitempty"`
	SecondaryKeywords []string `json:"secondary_keywords,omitempty"`
}

func (r Row) HasSEO() bool {
	return r.MetaTitle != "" || r.MetaDescription != "" || r.FocusKeyword != "" || len(r.SecondaryKeywords) > 0
}

var aliases = map[string]string{
	"slug":   "url_slug",
	"url":    "url_slug",
	"pillar": "is_pillar_page",
	"parent": "parent_slug",
}

func normalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.NewReplacer(" ", "_", "-", "_").Replace(h)
	if a, ok := aliases[h]; ok {
		return a
	}
	return h
}

// Parse decodes every data line of r. Lines whose cells cannot be decoded
// are reported as row errors; a malformed file or header is a fatal error.
func Parse(r io.Reader) ([]Row, []model.RowError, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, ErrEmptyFile
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read csv header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		name := normalizeHeader(h)
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}
	for _, required := range []string{"title", "url_slug"} {
		if _, ok := cols[required]; !ok {
			return nil, nil, fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}
	}

	var (
		rows    []Row
		rowErrs []model.RowError
	)
	line := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read csv line %d: %w", line+1, err)
		}
		line, _ = cr.FieldPos(0)

		get := func(col string) string {
			i, ok := cols[col]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}

		if isBlank(rec) {
			continue
		}

		pillar, err := parseBool(get("is_pillar_page"))
		if err != nil {
			rowErrs = append(rowErrs, model.RowError{Row: line, Message: err.Error()})
			continue
		}

		rows = append(rows, Row{
			Line:              line,
			Title:             get("title"),
			URLSlug:           get("url_slug"),
			Content:           get("content"),
			IsPillarPage:      pillar,
			ParentSlug:        get("parent_slug"),
			MetaTitle:         get("meta_title"),
			MetaDescription:   get("meta_description"),
			FocusKeyword:      get("focus_keyword"),
			SecondaryKeywords: splitKeywords(get("secondary_keywords")),
		})
	}

	return rows, rowErrs, nil
}

// Validate normalizes slugs and checks each row against the slugs that
// already exist in the project and the rows accepted before it.
// It returns the accepted rows in file order.
func Validate(rows []Row, existingSlugs map[string]bool) ([]Row, []model.RowError) {
	seen := make(map[string]bool, len(rows))
	valid := make([]Row, 0, len(rows))
	var rowErrs []model.RowError

	fail := func(r Row, format string, args ...any) {
		rowErrs = append(rowErrs, model.RowError{Row: r.Line, Message: fmt.Sprintf(format, args...)})
	}

	for _, r := range rows {
		if r.Title == "" {
			fail(r, "title is required")
			continue
		}
		slug := utils.Slugify(r.URLSlug)
		if slug == "" {
			fail(r, "url_slug is required")
			continue
		}
		if existingSlugs[slug] || seen[slug] {
			fail(r, "url_slug %q already exists in project", slug)
			continue
		}
		r.URLSlug = slug

		if r.ParentSlug != "" {
			parent := utils.Slugify(r.ParentSlug)
			switch {
			case parent == slug:
				fail(r, "page cannot be its own parent")
				continue
			case !existingSlugs[parent] && !seen[parent]:
				fail(r, "parent_slug %q does not match an existing page or an earlier row", parent)
				continue
			}
			r.ParentSlug = parent
		}

		seen[slug] = true
		valid = append(valid, r)
	}

	return valid, rowErrs
}

// MergeErrors combines row error lists ordered by row number.
func MergeErrors(lists ...[]model.RowError) []model.RowError {
	var out []model.RowError
	for _, l := range lists {
		out = append(out, l...)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Row < out[j].Row })
	return out
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "", "0", "false", "no", "n":
		return false, nil
	case "1", "true", "yes", "y", "x":
		return true, nil
	}
	return false, fmt.Errorf("is_pillar_page: cannot parse %q as boolean", s)
}

func splitKeywords(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, k := range strings.Split(s, ";") {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}

func isBlank(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
