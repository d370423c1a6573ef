package portfolio

import (
	"testing"
	"time"
)

func testSeed() Snapshot {
	return Snapshot{
		Projects: []Project{
			{ID: "proj-a", Title: "Project A", Category: "web", Featured: true},
			{ID: "proj-b", Title: "Project B", Category: "ml"},
			{ID: "proj-c", Title: "Project C", Category: "web"},
		},
		Articles: []Article{
			{ID: "older", Title: "Older", Category: "go", PublishedDate: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
			{ID: "newer", Title: "Newer", Category: "devops", Featured: true, PublishedDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		},
		TechStack: []TechStack{
			{Name: "Go", Category: "backend"},
			{Name: "Postgres", Category: "database"},
			{Name: "Echo", Category: "backend"},
		},
	}
}

func newTestRepo(t *testing.T) (*Repository, *ArticleStore) {
	t.Helper()
	store := newTestStore(t)
	repo, err := NewRepository(testSeed(), store)
	if err != nil {
		t.Fatalf("NewRepository: %v", err)
	}
	return repo, store
}

func TestRepositorySortsArticlesNewestFirst(t *testing.T) {
	repo, _ := newTestRepo(t)
	articles := repo.Articles()
	if len(articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(articles))
	}
	if articles[0].ID != "newer" || articles[1].ID != "older" {
		t.Fatalf("wrong order: %s, %s", articles[0].ID, articles[1].ID)
	}
}

func TestRepositoryRefreshMergesStoredArticles(t *testing.T) {
	repo, store := newTestRepo(t)

	saved, err := store.Save(Article{
		ID:            "fresh-from-disk",
		Title:         "Fresh",
		Category:      "go",
		PublishedDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Not visible until the snapshot is refreshed.
	if _, ok := repo.ArticleByID(saved.ID); ok {
		t.Fatalf("stored article visible before refresh")
	}
	if err := repo.Refresh(); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	got, ok := repo.ArticleByID(saved.ID)
	if !ok {
		t.Fatalf("stored article missing after refresh")
	}
	if got.Title != "Fresh" {
		t.Fatalf("unexpected article: %+v", got)
	}
	if repo.Articles()[0].ID != saved.ID {
		t.Fatalf("expected newest stored article first")
	}
}

func TestFeaturedFallsBackWhenNothingFlagged(t *testing.T) {
	seed := testSeed()
	for i := range seed.Projects {
		seed.Projects[i].Featured = false
	}
	repo, err := NewRepository(seed, nil)
	if err != nil {
		t.Fatalf("NewRepository: %v", err)
	}

	featured := repo.FeaturedProjects(2)
	if len(featured) != 2 {
		t.Fatalf("expected fallback to first 2 projects, got %d", len(featured))
	}
}

func TestFeaturedRespectsLimit(t *testing.T) {
	repo, _ := newTestRepo(t)
	if got := repo.FeaturedProjects(3); len(got) != 1 || got[0].ID != "proj-a" {
		t.Fatalf("expected only flagged project, got %+v", got)
	}
	if got := repo.FeaturedArticles(1); len(got) != 1 || got[0].ID != "newer" {
		t.Fatalf("expected flagged article, got %+v", got)
	}
}

func TestFilterProjects(t *testing.T) {
	repo, _ := newTestRepo(t)

	if got := repo.FilterProjects("web", nil); len(got) != 2 {
		t.Fatalf("category filter: got %d, want 2", len(got))
	}
	featured := true
	if got := repo.FilterProjects("", &featured); len(got) != 1 || got[0].ID != "proj-a" {
		t.Fatalf("featured filter: got %+v", got)
	}
	notFeatured := false
	if got := repo.FilterProjects("web", &notFeatured); len(got) != 1 || got[0].ID != "proj-c" {
		t.Fatalf("combined filter: got %+v", got)
	}
	if got := repo.FilterProjects("nope", nil); len(got) != 0 {
		t.Fatalf("unknown category: got %+v", got)
	}
}

func TestFilterArticlesCaseInsensitive(t *testing.T) {
	repo, _ := newTestRepo(t)
	if got := repo.FilterArticles("GO", nil); len(got) != 1 || got[0].ID != "older" {
		t.Fatalf("got %+v", got)
	}
}

func TestTechByCategory(t *testing.T) {
	repo, _ := newTestRepo(t)
	if got := repo.TechByCategory(""); len(got) != 3 {
		t.Fatalf("empty category should return all, got %d", len(got))
	}
	if got := repo.TechByCategory("backend"); len(got) != 2 {
		t.Fatalf("backend: got %d, want 2", len(got))
	}
}

func TestProjectLookup(t *testing.T) {
	repo, _ := newTestRepo(t)
	if _, ok := repo.ProjectByID("proj-b"); !ok {
		t.Fatalf("expected proj-b")
	}
	if _, ok := repo.ProjectByID("missing"); ok {
		t.Fatalf("did not expect missing project")
	}
}

func TestStatsCounts(t *testing.T) {
	repo, _ := newTestRepo(t)
	st := repo.Stats()
	if st.TotalProjects != 3 || st.FeaturedProjects != 1 {
		t.Fatalf("project stats: %+v", st)
	}
	if st.TotalArticles != 2 || st.FeaturedArticles != 1 {
		t.Fatalf("article stats: %+v", st)
	}
	if st.TotalTechnologies != 3 {
		t.Fatalf("tech stats: %+v", st)
	}
}
