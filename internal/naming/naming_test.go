package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWords(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"camel case", "GettingStarted", []string{"Getting", "Started"}},
		{"trailing acronym", "MyCoolAPI", []string{"My", "Cool", "API"}},
		{"inner acronym", "OpenAPISpec", []string{"Open", "API", "Spec"}},
		{"leading acronym", "HTTPServer", []string{"HTTP", "Server"}},
		{"lowercase", "intro", []string{"intro"}},
		{"leading lowercase", "iPhone", []string{"i", "Phone"}},
		{"digits stay attached", "Version2Notes", []string{"Version2", "Notes"}},
		{"separators", "getting-started_now", []string{"getting", "started", "now"}},
		{"spaces", "Getting Started", []string{"Getting", "Started"}},
		{"single capital", "A", []string{"A"}},
		{"non-ascii letter inside word", "Café", []string{"Café"}},
		{"non-ascii leading letter", "Über", []string{"Über"}},
		{"non-ascii after camel boundary", "ÜberCafé", []string{"Über", "Café"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Words(tt.in))
		})
	}
}

func TestTitleizeAndSlugize(t *testing.T) {
	tests := []struct {
		in    string
		title string
		slug  string
	}{
		{"MyCoolAPI", "My Cool API", "my-cool-api"},
		{"OpenAPISpec", "Open API Spec", "open-api-spec"},
		{"GettingStarted", "Getting Started", "getting-started"},
		{"Setup", "Setup", "setup"},
		{"intro", "intro", "intro"},
		{"", "", ""},
		{"---", "---", "---"},
		{"Café", "Café", "café"},
		{"Über", "Über", "über"},
		{"naïve-Notes", "naïve Notes", "naïve-notes"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.title, Titleize(tt.in))
			assert.Equal(t, tt.slug, Slugize(tt.in))
		})
	}
}

func TestTitleAndSlugSplitIdentically(t *testing.T) {
	for _, name := range []string{"MyCoolAPI", "OpenAPISpec", "XMLHttpRequest", "Release2024Notes", "plain"} {
		title := Titleize(name)
		slug := Slugize(name)
		assert.Equal(t, slug, Slugize(title), "slug of the title must equal slug of %q", name)
	}
}

func TestSingularize(t *testing.T) {
	assert.Equal(t, "Widget", Singularize("Widgets"))
	assert.Equal(t, "Category", Singularize("Categories"))
	assert.Equal(t, "Guide", Singularize("Guide"))
}

func TestIsIndexFor(t *testing.T) {
	assert.True(t, IsIndexFor("Widgets", "widgets"))
	assert.True(t, IsIndexFor("Widgets", "widget"))
	assert.True(t, IsIndexFor("Widgets", "index"))
	assert.True(t, IsIndexFor("Stories", "Story"))
	assert.False(t, IsIndexFor("Widgets", "other"))
}
