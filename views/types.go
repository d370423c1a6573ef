// Package views renders the site's pages as templ components. Components
// are authored in code with templ.ComponentFunc so the page structure
// stays a plain Go value flow: handlers pass the portfolio snapshot in,
// components write HTML out.
package views

// Site carries the configuration-derived values templates need.
type Site struct {
	Name        string
	URL         string
	Description string
	Author      string
}
