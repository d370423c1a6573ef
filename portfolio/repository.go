package portfolio

import (
	"sort"
	"strings"
	"sync/atomic"
)

// Snapshot is one immutable view of the full dataset. Handlers read a
// snapshot pointer and never mutate it; Refresh builds a replacement and
// swaps the pointer whole, so concurrent readers never observe a partial
// update.
type Snapshot struct {
	Personal       PersonalInfo
	Contact        ContactInfo
	Education      []Education
	Certifications []Certification
	TechStack      []TechStack
	Projects       []Project
	Articles       []Article
}

// Repository combines the compiled-in seed dataset with article records
// loaded from the ArticleStore.
type Repository struct {
	seed    Snapshot
	store   *ArticleStore
	current atomic.Pointer[Snapshot]
}

// NewRepository builds the initial snapshot from seed data plus whatever
// the store has on disk.
func NewRepository(seed Snapshot, store *ArticleStore) (*Repository, error) {
	r := &Repository{seed: seed, store: store}
	if err := r.Refresh(); err != nil {
		return nil, err
	}
	return r, nil
}

// Refresh reloads disk articles and atomically swaps in a new snapshot.
func (r *Repository) Refresh() error {
	snap := r.seed
	if r.store != nil {
		stored, err := r.store.LoadAll()
		if err != nil {
			return err
		}
		snap.Articles = append(append([]Article{}, r.seed.Articles...), stored...)
	}
	sort.SliceStable(snap.Articles, func(i, j int) bool {
		return snap.Articles[i].PublishedDate.After(snap.Articles[j].PublishedDate)
	})
	r.current.Store(&snap)
	return nil
}

// Snapshot returns the current immutable dataset view.
func (r *Repository) Snapshot() *Snapshot {
	return r.current.Load()
}

// Articles returns all articles, newest first.
func (r *Repository) Articles() []Article {
	return r.Snapshot().Articles
}

// Projects returns all projects.
func (r *Repository) Projects() []Project {
	return r.Snapshot().Projects
}

// FeaturedProjects returns up to limit featured projects, falling back to
// the first projects when nothing is flagged.
func (r *Repository) FeaturedProjects(limit int) []Project {
	projects := r.Projects()
	var featured []Project
	for _, p := range projects {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	if featured == nil {
		featured = projects
	}
	if len(featured) > limit {
		featured = featured[:limit]
	}
	return featured
}

// FeaturedArticles returns up to limit featured articles, falling back to
// the newest articles when nothing is flagged.
func (r *Repository) FeaturedArticles(limit int) []Article {
	articles := r.Articles()
	var featured []Article
	for _, a := range articles {
		if a.Featured {
			featured = append(featured, a)
		}
	}
	if featured == nil {
		featured = articles
	}
	if len(featured) > limit {
		featured = featured[:limit]
	}
	return featured
}

// ProjectByID looks up a project; ok is false when absent.
func (r *Repository) ProjectByID(id string) (Project, bool) {
	for _, p := range r.Projects() {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

// ArticleByID looks up an article; ok is false when absent.
func (r *Repository) ArticleByID(id string) (Article, bool) {
	for _, a := range r.Articles() {
		if a.ID == id {
			return a, true
		}
	}
	return Article{}, false
}

// FilterProjects returns projects matching the optional category and
// featured filters. featured == nil means no filter.
func (r *Repository) FilterProjects(category string, featured *bool) []Project {
	out := []Project{}
	for _, p := range r.Projects() {
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		if featured != nil && p.Featured != *featured {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FilterArticles returns articles matching the optional category and
// featured filters.
func (r *Repository) FilterArticles(category string, featured *bool) []Article {
	out := []Article{}
	for _, a := range r.Articles() {
		if category != "" && !strings.EqualFold(a.Category, category) {
			continue
		}
		if featured != nil && a.Featured != *featured {
			continue
		}
		out = append(out, a)
	}
	return out
}

// TechByCategory returns the tech stack filtered by category; an empty
// category returns everything.
func (r *Repository) TechByCategory(category string) []TechStack {
	stack := r.Snapshot().TechStack
	if category == "" {
		return stack
	}
	out := []TechStack{}
	for _, t := range stack {
		if strings.EqualFold(t.Category, category) {
			out = append(out, t)
		}
	}
	return out
}

// Stats summarizes the current snapshot.
func (r *Repository) Stats() Stats {
	snap := r.Snapshot()
	st := Stats{
		TotalProjects:       len(snap.Projects),
		TotalArticles:       len(snap.Articles),
		TotalCertifications: len(snap.Certifications),
		TotalTechnologies:   len(snap.TechStack),
		EducationLevels:     len(snap.Education),
	}
	for _, p := range snap.Projects {
		if p.Featured {
			st.FeaturedProjects++
		}
	}
	for _, a := range snap.Articles {
		if a.Featured {
			st.FeaturedArticles++
		}
	}
	return st
}
