// Package portfolio holds the site's data model: the fixed personal
// dataset compiled into the binary plus article records persisted as
// JSON files on disk. A Repository merges both into an immutable
// snapshot that handlers read from.
package portfolio

import "time"

// PersonalInfo describes the site owner.
type PersonalInfo struct {
	Name         string `json:"name"`
	Title        string `json:"title"`
	Intro        string `json:"intro"`
	Bio          string `json:"bio"`
	Location     string `json:"location,omitempty"`
	ProfileImage string `json:"profile_image,omitempty"`
}

// ContactInfo holds contact links shown in the footer and the /api/contact
// endpoint. All values come from configuration.
type ContactInfo struct {
	Email    string `json:"email"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Twitter  string `json:"twitter,omitempty"`
	Medium   string `json:"medium,omitempty"`
}

// Education is a single degree or program entry.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	Description string `json:"description,omitempty"`
	Current     bool   `json:"current"`
}

// Certification is a professional credential.
type Certification struct {
	Title         string `json:"title"`
	Issuer        string `json:"issuer"`
	Year          string `json:"year"`
	CredentialURL string `json:"credential_url,omitempty"`
	Description   string `json:"description,omitempty"`
}

// TechStack is one technology with a display icon and a 1-5 proficiency.
type TechStack struct {
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Category    string `json:"category"`
	Proficiency int    `json:"proficiency,omitempty"`
}

// Project is a portfolio project card.
type Project struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	LongDescription string    `json:"long_description,omitempty"`
	ImageURL        string    `json:"image_url,omitempty"`
	TechStack       []string  `json:"tech_stack"`
	DemoURL         string    `json:"demo_url,omitempty"`
	GitHubURL       string    `json:"github_url,omitempty"`
	Category        string    `json:"category"`
	Featured        bool      `json:"featured"`
	CreatedDate     time.Time `json:"created_date,omitempty"`
}

// Article is a blog article record. Seeded articles are compiled in;
// admin-created articles are persisted one JSON file each under the data
// directory. PrimaryID is a generated record id distinct from the
// human-facing ID/Slug.
type Article struct {
	ID            string    `json:"id"`
	PrimaryID     string    `json:"primary_id,omitempty"`
	Slug          string    `json:"slug,omitempty"`
	Title         string    `json:"title"`
	Excerpt       string    `json:"excerpt"`
	Content       string    `json:"content,omitempty"`
	ImageURL      string    `json:"image_url,omitempty"`
	Category      string    `json:"category"`
	Tags          []string  `json:"tags"`
	PublishedDate time.Time `json:"published_date"`
	ReadTime      int       `json:"read_time"`
	Featured      bool      `json:"featured"`
	ExternalURL   string    `json:"external_url,omitempty"`
}

// Metadata is the shared index of known article categories and tags. It
// grows additively as articles introduce new values and is never pruned.
type Metadata struct {
	Categories []string `json:"categories"`
	Tags       []string `json:"tags"`
}

// Stats summarizes the dataset for the admin dashboard.
type Stats struct {
	TotalProjects       int `json:"total_projects"`
	FeaturedProjects    int `json:"featured_projects"`
	TotalArticles       int `json:"total_articles"`
	FeaturedArticles    int `json:"featured_articles"`
	TotalCertifications int `json:"total_certifications"`
	TotalTechnologies   int `json:"total_technologies"`
	EducationLevels     int `json:"education_levels"`
}
