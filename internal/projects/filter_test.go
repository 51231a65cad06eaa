package projects

import (
	"reflect"
	"testing"
)

func sampleProjects() []Project {
	return []Project{
		{Title: "Cloud City", Category: "Environment", Tools: []string{"Blender", "Houdini"}},
		{Title: "Neon Identity", Category: "Branding", Tools: []string{"After Effects"}},
		{Title: "Wanderer", Category: "Character", Tools: []string{"ZBrush", "Blender"}},
	}
}

func titles(items []Project) []string {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, p.Title)
	}
	return out
}

func TestFilterQueryMatchesTitleAndTools(t *testing.T) {
	items := sampleProjects()

	got := titles(Filter(items, ListFilter{Query: "cloud"}))
	if !reflect.DeepEqual(got, []string{"Cloud City"}) {
		t.Fatalf("title match: got %v", got)
	}

	got = titles(Filter(items, ListFilter{Query: "blender"}))
	if !reflect.DeepEqual(got, []string{"Cloud City", "Wanderer"}) {
		t.Fatalf("tool match: got %v", got)
	}
}

func TestFilterCategoryExactWithAllSentinel(t *testing.T) {
	items := sampleProjects()

	got := titles(Filter(items, ListFilter{Category: "Branding"}))
	if !reflect.DeepEqual(got, []string{"Neon Identity"}) {
		t.Fatalf("category match: got %v", got)
	}

	if len(Filter(items, ListFilter{Category: CategoryAll})) != len(items) {
		t.Fatal("sentinel All must not filter anything")
	}
	if len(Filter(items, ListFilter{})) != len(items) {
		t.Fatal("empty filter must return everything")
	}
}

func TestFilterBothConditionsMustHold(t *testing.T) {
	items := sampleProjects()

	got := Filter(items, ListFilter{Query: "blender", Category: "Character"})
	if len(got) != 1 || got[0].Title != "Wanderer" {
		t.Fatalf("expected only Wanderer, got %v", titles(got))
	}

	got = Filter(items, ListFilter{Query: "neon", Category: "Character"})
	if len(got) != 0 {
		t.Fatalf("mismatched query and category must yield nothing, got %v", titles(got))
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	items := sampleProjects()
	f := ListFilter{Query: "blender", Category: "Environment"}

	once := Filter(items, f)
	twice := Filter(once, f)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("re-applying the same filter changed the result: %v vs %v", titles(once), titles(twice))
	}
}

func TestFilterConditionsCommute(t *testing.T) {
	items := sampleProjects()
	queryOnly := ListFilter{Query: "blender"}
	categoryOnly := ListFilter{Category: "Environment"}

	a := Filter(Filter(items, queryOnly), categoryOnly)
	b := Filter(Filter(items, categoryOnly), queryOnly)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("filter order changed the result: %v vs %v", titles(a), titles(b))
	}
}

func TestClassifyMedia(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://cdn.example.com/a.jpg", MediaImage},
		{"https://cdn.example.com/a.MP4", MediaVideo},
		{"https://cdn.example.com/a.webm?v=2", MediaVideo},
		{"https://cdn.example.com/a.png#frag", MediaImage},
		{"https://cdn.example.com/a", MediaImage},
		{"https://cdn.example.com/clip.mov", MediaVideo},
	}
	for _, c := range cases {
		if got := ClassifyMedia(c.url); got != c.want {
			t.Errorf("ClassifyMedia(%q) = %q, want %q", c.url, got, c.want)
		}
	}
}
