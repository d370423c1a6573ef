package views

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/eringen/folio/portfolio"
)

// esc escapes text for HTML output.
func esc(s string) string {
	return html.EscapeString(s)
}

// component wraps a body writer in the shared page chrome.
func component(site Site, snap *portfolio.Snapshot, title string, body func(w io.Writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s | %s</title>
<meta name="description" content="%s">
<link rel="stylesheet" href="/static/css/main.css">
<script type="application/ld+json">%s</script>
</head>
<body>
`, esc(title), esc(site.Name), esc(site.Description), WebsiteJsonLD(site))
		writeNav(w, site)
		body(w)
		writeFooter(w, snap)
		_, err := fmt.Fprint(w, "<script src=\"/static/js/main.js\" defer></script>\n</body>\n</html>\n")
		return err
	})
}

func writeNav(w io.Writer, site Site) {
	fmt.Fprintf(w, `<nav class="site-nav">
<a class="brand" href="/">%s</a>
<div class="links">
<a href="/projects">Projects</a>
<a href="/articles">Articles</a>
</div>
</nav>
`, esc(site.Name))
}

func writeFooter(w io.Writer, snap *portfolio.Snapshot) {
	if snap == nil {
		return
	}
	contact := snap.Contact
	fmt.Fprint(w, `<footer class="site-footer"><div class="social">`)
	writeLink := func(href, label string) {
		if href != "" {
			fmt.Fprintf(w, `<a href="%s" rel="noopener">%s</a>`, esc(href), esc(label))
		}
	}
	if contact.Email != "" {
		writeLink("mailto:"+contact.Email, "Email")
	}
	writeLink(contact.LinkedIn, "LinkedIn")
	writeLink(contact.GitHub, "GitHub")
	writeLink(contact.Twitter, "Twitter")
	writeLink(contact.Medium, "Medium")
	fmt.Fprint(w, "</div></footer>\n")
}

func writeProjectCard(w io.Writer, p portfolio.Project) {
	fmt.Fprintf(w, `<article class="project-card" data-category="%s">`, esc(p.Category))
	if p.ImageURL != "" {
		fmt.Fprintf(w, `<img src="/%s" alt="%s" loading="lazy">`, esc(p.ImageURL), esc(p.Title))
	}
	fmt.Fprintf(w, `<h3>%s</h3><p>%s</p><ul class="tech">`, esc(p.Title), esc(p.Description))
	for _, t := range p.TechStack {
		fmt.Fprintf(w, "<li>%s</li>", esc(t))
	}
	fmt.Fprint(w, "</ul><div class=\"actions\">")
	if p.GitHubURL != "" {
		fmt.Fprintf(w, `<a href="%s" rel="noopener">Code</a>`, esc(p.GitHubURL))
	}
	if p.DemoURL != "" {
		fmt.Fprintf(w, `<a href="%s" rel="noopener">Demo</a>`, esc(p.DemoURL))
	}
	fmt.Fprint(w, "</div></article>\n")
}

func writeArticleCard(w io.Writer, a portfolio.Article) {
	fmt.Fprintf(w, `<article class="article-card" data-category="%s">`, esc(a.Category))
	fmt.Fprintf(w, `<span class="category">%s</span>`, esc(a.Category))
	title := esc(a.Title)
	if a.ExternalURL != "" {
		fmt.Fprintf(w, `<h3><a href="%s" rel="noopener">%s</a></h3>`, esc(a.ExternalURL), title)
	} else {
		fmt.Fprintf(w, "<h3>%s</h3>", title)
	}
	fmt.Fprintf(w, `<p>%s</p><div class="meta"><time datetime="%s">%s</time><span>%d min read</span></div>`,
		esc(a.Excerpt),
		a.PublishedDate.Format("2006-01-02"),
		a.PublishedDate.Format("Jan 2, 2006"),
		a.ReadTime)
	fmt.Fprint(w, `<ul class="tags">`)
	for _, t := range a.Tags {
		fmt.Fprintf(w, "<li>%s</li>", esc(t))
	}
	fmt.Fprint(w, "</ul></article>\n")
}
