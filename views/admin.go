package views

import (
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/eringen/folio/portfolio"
)

// AdminLogin renders the login form with the TOTP field.
func AdminLogin(site Site, showError bool) templ.Component {
	return component(site, nil, "Admin Login", func(w io.Writer) {
		fmt.Fprint(w, `<section class="admin-login"><h1>Admin Login</h1>
`)
		if showError {
			fmt.Fprint(w, `<p class="error">Login failed. Check your credentials and one-time code.</p>
`)
		}
		fmt.Fprint(w, `<form method="post" action="/admin/login">
<label>Username <input type="text" name="username" autocomplete="username" required></label>
<label>Password <input type="password" name="password" autocomplete="current-password" required></label>
<label>One-time code <input type="text" name="totp_code" inputmode="numeric" pattern="[0-9]*" autocomplete="one-time-code" required></label>
<button type="submit">Sign in</button>
</form></section>
`)
	})
}

// AdminAddArticle renders the article creation form with category/tag
// dropdowns populated from the metadata index, plus the Medium import box.
func AdminAddArticle(site Site, snap *portfolio.Snapshot, meta portfolio.Metadata) templ.Component {
	return component(site, snap, "Add Article", func(w io.Writer) {
		fmt.Fprint(w, `<section class="admin-add-article"><h1>Add Article</h1>
<div class="medium-import">
<label>Import from Medium <input type="url" id="medium-url" placeholder="https://medium.com/..."></label>
<button id="medium-fetch" type="button">Fetch</button>
</div>
<form id="article-form">
<label>ID / slug <input type="text" name="id" required></label>
<label>Title <input type="text" name="title" required></label>
<label>Excerpt <textarea name="excerpt" rows="3" required></textarea></label>
<label>Category <input type="text" name="category" list="known-categories" required></label>
<datalist id="known-categories">`)
		for _, c := range meta.Categories {
			fmt.Fprintf(w, `<option value="%s">`, esc(c))
		}
		fmt.Fprint(w, `</datalist>
<label>Tags <input type="text" name="tags" placeholder="comma, separated" list="known-tags"></label>
<datalist id="known-tags">`)
		for _, t := range meta.Tags {
			fmt.Fprintf(w, `<option value="%s">`, esc(t))
		}
		fmt.Fprint(w, `</datalist>
<label>Published date <input type="text" name="published_date" placeholder="YYYY-MM-DD"></label>
<label>Read time (minutes) <input type="number" name="read_time" min="1" value="5"></label>
<label>Featured <input type="checkbox" name="featured"></label>
<label>Image URL <input type="url" name="image_url"></label>
<label>External URL <input type="url" name="external_url"></label>
<button type="submit">Save article</button>
</form></section>
`)
	})
}

// AdminManageArticles renders the article list with delete buttons.
func AdminManageArticles(site Site, snap *portfolio.Snapshot) templ.Component {
	return component(site, snap, "Manage Articles", func(w io.Writer) {
		fmt.Fprint(w, `<section class="admin-manage"><h1>Manage Articles</h1>
<p><a href="/admin/add-article">Add article</a> · <a href="/admin/logout">Log out</a></p>
<table><thead><tr><th>Title</th><th>Category</th><th>Published</th><th></th></tr></thead><tbody>
`)
		for _, a := range snap.Articles {
			fmt.Fprintf(w, `<tr><td>%s</td><td>%s</td><td>%s</td><td><button class="delete" data-id="%s">Delete</button></td></tr>
`, esc(a.Title), esc(a.Category), a.PublishedDate.Format("2006-01-02"), esc(a.ID))
		}
		fmt.Fprint(w, "</tbody></table></section>\n")
	})
}
