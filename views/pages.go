package views

import (
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/eringen/folio/portfolio"
)

// Home renders the landing page: intro, featured work, education,
// certifications, and the tech stack grid.
func Home(site Site, snap *portfolio.Snapshot, featuredProjects []portfolio.Project, featuredArticles []portfolio.Article) templ.Component {
	return component(site, snap, snap.Personal.Name, func(w io.Writer) {
		p := snap.Personal
		fmt.Fprintf(w, `<header class="hero"><h1>%s</h1><p class="title">%s</p><p class="bio">%s</p></header>
`, esc(p.Intro), esc(p.Title), esc(p.Bio))

		fmt.Fprint(w, `<section id="featured-projects"><h2>Featured Projects</h2><div class="grid">`)
		for _, proj := range featuredProjects {
			writeProjectCard(w, proj)
		}
		fmt.Fprint(w, "</div></section>\n")

		fmt.Fprint(w, `<section id="featured-articles"><h2>Latest Writing</h2><div class="grid">`)
		for _, a := range featuredArticles {
			writeArticleCard(w, a)
		}
		fmt.Fprint(w, "</div></section>\n")

		fmt.Fprint(w, `<section id="education"><h2>Education</h2><ul class="timeline">`)
		for _, e := range snap.Education {
			current := ""
			if e.Current {
				current = ` <span class="badge">current</span>`
			}
			fmt.Fprintf(w, "<li><strong>%s</strong>%s<br>%s · %s<p>%s</p></li>",
				esc(e.Degree), current, esc(e.Institution), esc(e.Year), esc(e.Description))
		}
		fmt.Fprint(w, "</ul></section>\n")

		fmt.Fprint(w, `<section id="certifications"><h2>Certifications</h2><ul>`)
		for _, c := range snap.Certifications {
			fmt.Fprintf(w, `<li><a href="%s" rel="noopener">%s</a> — %s (%s)</li>`,
				esc(c.CredentialURL), esc(c.Title), esc(c.Issuer), esc(c.Year))
		}
		fmt.Fprint(w, "</ul></section>\n")

		fmt.Fprint(w, `<section id="tech-stack"><h2>Tech Stack</h2><ul class="tech-grid">`)
		for _, t := range snap.TechStack {
			fmt.Fprintf(w, `<li data-category="%s"><i class="%s"></i>%s</li>`,
				esc(t.Category), esc(t.Icon), esc(t.Name))
		}
		fmt.Fprint(w, "</ul></section>\n")
	})
}

// Projects renders the full project listing.
func Projects(site Site, snap *portfolio.Snapshot) templ.Component {
	return component(site, snap, "Projects", func(w io.Writer) {
		fmt.Fprint(w, `<section id="projects"><h1>Projects</h1><div class="grid">`)
		for _, p := range snap.Projects {
			writeProjectCard(w, p)
		}
		fmt.Fprint(w, "</div></section>\n")
	})
}

// Articles renders the curated article listing.
func Articles(site Site, snap *portfolio.Snapshot) templ.Component {
	return component(site, snap, "Articles", func(w io.Writer) {
		fmt.Fprint(w, `<section id="articles"><h1>Articles</h1><div class="grid">`)
		for _, a := range snap.Articles {
			writeArticleCard(w, a)
		}
		fmt.Fprint(w, "</div></section>\n")
	})
}

// AllArticles renders every article with category filter buttons; the
// client-side script handles filtering and pagination.
func AllArticles(site Site, snap *portfolio.Snapshot) templ.Component {
	return component(site, snap, "All Articles", func(w io.Writer) {
		fmt.Fprint(w, `<section id="all-articles"><h1>All Articles</h1><div class="filters">`)
		seen := map[string]bool{}
		for _, a := range snap.Articles {
			if !seen[a.Category] {
				seen[a.Category] = true
				fmt.Fprintf(w, `<button data-filter="%s">%s</button>`, esc(a.Category), esc(a.Category))
			}
		}
		fmt.Fprint(w, `</div><div class="grid">`)
		for _, a := range snap.Articles {
			writeArticleCard(w, a)
		}
		fmt.Fprint(w, "</div></section>\n")
	})
}

// NotFound renders the 404 page.
func NotFound(site Site) templ.Component {
	return component(site, nil, "Not Found", func(w io.Writer) {
		fmt.Fprint(w, `<section class="error-page"><h1>404</h1><p>That page doesn't exist.</p><a href="/">Back home</a></section>
`)
	})
}

// ServerError renders the 500 page.
func ServerError(site Site) templ.Component {
	return component(site, nil, "Server Error", func(w io.Writer) {
		fmt.Fprint(w, `<section class="error-page"><h1>500</h1><p>Something went wrong on our end.</p><a href="/">Back home</a></section>
`)
	})
}
