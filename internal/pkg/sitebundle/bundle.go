// Package sitebundle renders a project's pages into a static site zip archive.
package sitebundle

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"html/template"
	"io"
	"path"
	"sort"
	"strings"
	"time"
)

type Page struct {
	Slug            string
	Title           string
	Content         string
	IsPillarPage    bool
	ParentSlug      string
	MetaTitle       string
	MetaDescription string
	Keywords        []string
}

type Site struct {
	Name     string
	Language string
	// BaseURL prefixes sitemap locations; may be empty.
	BaseURL string
	// Design holds free-form theme settings; string values for
	// primary_color, background_color, text_color and font_family are used.
	Design    map[string]interface{}
	Pages     []Page
	UpdatedAt time.Time
}

type Stats struct {
	Pages int
	Files int
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
{{- if .Description}}
<meta name="description" content="{{.Description}}">
{{- end}}
{{- if .Keywords}}
<meta name="keywords" content="{{.Keywords}}">
{{- end}}
<link rel="stylesheet" href="{{.Root}}assets/site.css">
</head>
<body>
<header><a href="{{.Root}}index.html">{{.SiteName}}</a></header>
<main>
<h1>{{.Heading}}</h1>
{{.Body}}
</main>
{{- if .Links}}
<nav>
<ul>
{{- range .Links}}
<li><a href="{{$.Root}}{{.Href}}">{{.Title}}</a></li>
{{- end}}
</ul>
</nav>
{{- end}}
</body>
</html>
`))

type link struct {
	Href  string
	Title string
}

type pageView struct {
	Lang        string
	Title       string
	Description string
	Keywords    string
	Root        string
	SiteName    string
	Heading     string
	Body        template.HTML
	Links       []link
}

// Build writes the archive to w. onPage, if set, is called after each page
// is written so callers can report progress.
func Build(w io.Writer, site Site, onPage func(done, total int)) (Stats, error) {
	zw := zip.NewWriter(w)
	stats := Stats{}
	modified := site.UpdatedAt
	if modified.IsZero() {
		modified = time.Now()
	}

	create := func(name string) (io.Writer, error) {
		stats.Files++
		return zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate, Modified: modified})
	}

	children := make(map[string][]link)
	var roots []link
	for _, p := range site.Pages {
		l := link{Href: p.Slug + "/index.html", Title: p.Title}
		if p.ParentSlug != "" {
			children[p.ParentSlug] = append(children[p.ParentSlug], l)
		} else {
			roots = append(roots, l)
		}
	}

	lang := site.Language
	if lang == "" {
		lang = "en"
	}

	total := len(site.Pages)
	for i, p := range site.Pages {
		f, err := create(path.Join(p.Slug, "index.html"))
		if err != nil {
			return stats, fmt.Errorf("create page %s: %w", p.Slug, err)
		}
		title := p.MetaTitle
		if title == "" {
			title = p.Title
		}
		view := pageView{
			Lang:        lang,
			Title:       title,
			Description: p.MetaDescription,
			Keywords:    strings.Join(p.Keywords, ", "),
			Root:        strings.Repeat("../", strings.Count(p.Slug, "/")+1),
			SiteName:    site.Name,
			Heading:     p.Title,
			// page content is authored HTML
			Body:  template.HTML(p.Content),
			Links: children[p.Slug],
		}
		if err := pageTmpl.Execute(f, view); err != nil {
			return stats, fmt.Errorf("render page %s: %w", p.Slug, err)
		}
		stats.Pages++
		if onPage != nil {
			onPage(i+1, total)
		}
	}

	f, err := create("index.html")
	if err != nil {
		return stats, err
	}
	sort.SliceStable(roots, func(i, j int) bool { return roots[i].Title < roots[j].Title })
	if err := pageTmpl.Execute(f, pageView{
		Lang:     lang,
		Title:    site.Name,
		SiteName: site.Name,
		Heading:  site.Name,
		Links:    roots,
	}); err != nil {
		return stats, fmt.Errorf("render index: %w", err)
	}

	f, err = create("assets/site.css")
	if err != nil {
		return stats, err
	}
	if _, err := io.WriteString(f, stylesheet(site.Design)); err != nil {
		return stats, err
	}

	f, err = create("sitemap.xml")
	if err != nil {
		return stats, err
	}
	if err := writeSitemap(f, site, modified); err != nil {
		return stats, fmt.Errorf("write sitemap: %w", err)
	}

	return stats, zw.Close()
}

func designValue(design map[string]interface{}, key, fallback string) string {
	if v, ok := design[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func stylesheet(design map[string]interface{}) string {
	return fmt.Sprintf(`body { margin: 0 auto; max-width: 960px; font-family: %s; color: %s; background: %s; }
a { color: %s; }
header { padding: 1rem 0; border-bottom: 2px solid %s; }
`,
		designValue(design, "font_family", "system-ui, sans-serif"),
		designValue(design, "text_color", "#1f2933"),
		designValue(design, "background_color", "#ffffff"),
		designValue(design, "primary_color", "#2563eb"),
		designValue(design, "primary_color", "#2563eb"),
	)
}

type urlset struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc      string `xml:"loc"`
	LastMod  string `xml:"lastmod"`
	Priority string `xml:"priority"`
}

func writeSitemap(w io.Writer, site Site, modified time.Time) error {
	base := strings.TrimSuffix(site.BaseURL, "/")
	set := urlset{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, p := range site.Pages {
		prio := "0.5"
		if p.IsPillarPage {
			prio = "0.8"
		}
		set.URLs = append(set.URLs, sitemapURL{
			Loc:      base + "/" + p.Slug + "/",
			LastMod:  modified.UTC().Format("2006-01-02"),
			Priority: prio,
		})
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	return enc.Encode(set)
}
