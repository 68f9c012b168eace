package sitebundle

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readZip(t *testing.T, b []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(b), int64(len(b)))
	require.NoError(t, err)
	out := map[string]string{}
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		out[f.Name] = string(data)
	}
	return out
}

func TestBuild(t *testing.T) {
	site := Site{
		Name:     "Acme Coffee",
		Language: "de",
		BaseURL:  "https://acme.example/",
		Design:   map[string]interface{}{"primary_color": "#ff6600", "font_family": 12},
		Pages: []Page{
			{Slug: "home", Title: "Home", Content: "<p>Hello</p>", IsPillarPage: true, MetaTitle: "Acme | Home", MetaDescription: "Best <coffee>", Keywords: []string{"coffee", "beans"}},
			{Slug: "blog/first", Title: "First post", Content: "<p>Post</p>", ParentSlug: "home"},
		},
		UpdatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	var progress [][2]int
	var buf bytes.Buffer
	stats, err := Build(&buf, site, func(done, total int) {
		progress = append(progress, [2]int{done, total})
	})
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Pages)
	assert.Equal(t, 5, stats.Files)
	assert.Equal(t, [][2]int{{1, 2}, {2, 2}}, progress)

	files := readZip(t, buf.Bytes())
	require.Contains(t, files, "home/index.html")
	require.Contains(t, files, "blog/first/index.html")
	require.Contains(t, files, "index.html")
	require.Contains(t, files, "assets/site.css")
	require.Contains(t, files, "sitemap.xml")

	home := files["home/index.html"]
	assert.Contains(t, home, `<html lang="de">`)
	assert.Contains(t, home, "<title>Acme | Home</title>")
	assert.Contains(t, home, `content="Best &lt;coffee&gt;"`)
	assert.Contains(t, home, "<p>Hello</p>")
	assert.Contains(t, home, `href="../blog/first/index.html"`)

	assert.Contains(t, files["blog/first/index.html"], `href="../../assets/site.css"`)
	assert.Contains(t, files["index.html"], `href="home/index.html"`)
	assert.NotContains(t, files["index.html"], "blog/first")

	assert.Contains(t, files["assets/site.css"], "#ff6600")
	assert.Contains(t, files["assets/site.css"], "system-ui")

	assert.Contains(t, files["sitemap.xml"], "<loc>https://acme.example/home/</loc>")
	assert.Contains(t, files["sitemap.xml"], "<priority>0.8</priority>")
	assert.Contains(t, files["sitemap.xml"], "<lastmod>2026-01-02</lastmod>")
}

func TestBuild_EmptySite(t *testing.T) {
	var buf bytes.Buffer
	stats, err := Build(&buf, Site{Name: "Empty"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Pages)

	files := readZip(t, buf.Bytes())
	assert.Contains(t, files["index.html"], `<html lang="en">`)
	assert.Len(t, files, 3)
}
