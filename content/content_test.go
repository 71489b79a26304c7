package content

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSplitFrontMatter(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantFront string
		wantBody  string
		hasFront  bool
	}{
		{"yaml block", "---\ntitle: Hi\n---\nbody\n", "title: Hi\n", "body\n", true},
		{"crlf", "---\r\ntitle: Hi\r\n---\r\nbody", "title: Hi\r\n", "body", true},
		{"no front matter", "# Heading\n", "", "# Heading\n", false},
		{"empty block", "---\n---\nbody", "", "body", true},
		{"delimiter at eof", "---\na: 1\n---", "a: 1\n", "", true},
		{"bom", "\xef\xbb\xbf---\na: 1\n---\nx", "a: 1\n", "x", true},
		{"thematic break later", "text\n---\nmore", "", "text\n---\nmore", false},
	}
	for _, tt := range tests {
		front, body, err := SplitFrontMatter([]byte(tt.input))
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		if (front != nil) != tt.hasFront {
			t.Errorf("%s: front present = %v, want %v", tt.name, front != nil, tt.hasFront)
		}
		if string(front) != tt.wantFront {
			t.Errorf("%s: front = %q, want %q", tt.name, front, tt.wantFront)
		}
		if string(body) != tt.wantBody {
			t.Errorf("%s: body = %q, want %q", tt.name, body, tt.wantBody)
		}
	}
}

func TestSplitFrontMatterUnterminated(t *testing.T) {
	for _, in := range []string{"---\ntitle: x\n", "---", "---\n"} {
		if _, _, err := SplitFrontMatter([]byte(in)); !errors.Is(err, ErrUnterminatedFrontMatter) {
			t.Errorf("SplitFrontMatter(%q) error = %v, want ErrUnterminatedFrontMatter", in, err)
		}
	}
}

func TestParseFrontMatterMap(t *testing.T) {
	meta, body, err := ParseFrontMatter(strings.NewReader("---\ntitle: Hello\nextra: 3\n---\nText"))
	if err != nil {
		t.Fatalf("ParseFrontMatter unexpected error: %v", err)
	}
	if meta["title"] != "Hello" || meta["extra"] != 3 {
		t.Errorf("meta = %v", meta)
	}
	if string(body) != "Text" {
		t.Errorf("body = %q, want %q", body, "Text")
	}

	meta, _, err = ParseFrontMatter(strings.NewReader("plain"))
	if err != nil || meta != nil {
		t.Errorf("plain input: meta = %v, err = %v; want nil, nil", meta, err)
	}
}

func TestParsePost(t *testing.T) {
	src := "---\ntitle: First Post\ndate: 2024-03-01\ntags: [Go, web]\nsummary: Short\n---\n# Hello\n"
	p, err := Parse("posts/First Post.mdx", []byte(src))
	if err != nil {
		t.Fatalf("Parse unexpected error: %v", err)
	}
	if p.Slug != "posts/First Post" {
		t.Errorf("Slug = %q, want %q", p.Slug, "posts/First Post")
	}
	if p.Title != "First Post" || p.Date != "2024-03-01" || p.Summary != "Short" {
		t.Errorf("Parse = %+v", p)
	}
	if strings.Join(p.Tags, ",") != "Go,web" {
		t.Errorf("Tags = %v", p.Tags)
	}
	if !p.HasFrontMatter || p.Draft {
		t.Errorf("HasFrontMatter = %v, Draft = %v", p.HasFrontMatter, p.Draft)
	}
	if p.Body != "# Hello\n" {
		t.Errorf("Body = %q", p.Body)
	}
	if len(p.Hash) != 64 {
		t.Errorf("Hash = %q, want 64 hex chars", p.Hash)
	}
	if p.Link() != "/posts/posts/First%20Post/" {
		t.Errorf("Link() = %q", p.Link())
	}
	if !p.HasTag(" go ") {
		t.Errorf("HasTag(go) = false")
	}
}

func TestParsePostVariants(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		check func(t *testing.T, p Post)
	}{
		{"comma tags", "---\ntags: a, b ,\n---\n", func(t *testing.T, p Post) {
			if strings.Join(p.Tags, "|") != "a|b" {
				t.Errorf("Tags = %v", p.Tags)
			}
		}},
		{"slug override", "---\nslug: /notes//custom/\n---\n", func(t *testing.T, p Post) {
			if p.Slug != "notes/custom" {
				t.Errorf("Slug = %q", p.Slug)
			}
		}},
		{"published false", "---\npublished: false\n---\n", func(t *testing.T, p Post) {
			if !p.Draft {
				t.Errorf("Draft = false, want true")
			}
		}},
		{"description fallback", "---\ndescription: Desc\n---\n", func(t *testing.T, p Post) {
			if p.Summary != "Desc" {
				t.Errorf("Summary = %q", p.Summary)
			}
		}},
		{"rfc3339 date", "---\ndate: 2024-05-06T10:00:00Z\n---\n", func(t *testing.T, p Post) {
			if p.Date != "2024-05-06" {
				t.Errorf("Date = %q", p.Date)
			}
		}},
		{"no front matter", "Just text", func(t *testing.T, p Post) {
			if p.HasFrontMatter || p.Title != "Hello World" {
				t.Errorf("HasFrontMatter = %v, Title = %q", p.HasFrontMatter, p.Title)
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse("hello-world.md", []byte(tt.src))
			if err != nil {
				t.Fatalf("Parse unexpected error: %v", err)
			}
			tt.check(t, p)
		})
	}
}

func TestParseInvalidYAML(t *testing.T) {
	if _, err := Parse("x.md", []byte("---\ntitle: [unclosed\n---\n")); err == nil {
		t.Fatalf("Parse should fail on invalid YAML")
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Hello World", "hello-world"},
		{"  Go & Templ!  ", "go-templ"},
		{"already-slugged", "already-slugged"},
		{"---", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.input); got != tt.expected {
			t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoaderLoad(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "older.md"), "---\ntitle: Older\ndate: 2023-01-01\ntags: [go]\n---\nold")
	writeFile(t, filepath.Join(root, "newer.mdx"), "---\ntitle: Newer\ndate: 2024-01-01\ntags: [Web, go]\n---\nnew")
	writeFile(t, filepath.Join(root, "notes.txt"), "ignored")
	writeFile(t, filepath.Join(root, ".hidden", "secret.md"), "ignored")
	writeFile(t, filepath.Join(root, "dist", "copy.md"), "ignored")
	writeFile(t, filepath.Join(root, "about.md"), "no front matter")

	posts, err := NewLoader(root, filepath.Join(root, "dist")).Load()
	if err != nil {
		t.Fatalf("Load unexpected error: %v", err)
	}
	var slugs []string
	for _, p := range posts {
		slugs = append(slugs, p.Slug)
	}
	if got := strings.Join(slugs, ","); got != "newer,older,about" {
		t.Errorf("slugs = %q, want %q", got, "newer,older,about")
	}
	if got := strings.Join(Tags(posts), ","); got != "go,web" {
		t.Errorf("Tags = %q, want %q", got, "go,web")
	}
	if n := len(Listed(posts, false)); n != 2 {
		t.Errorf("Listed = %d posts, want 2", n)
	}
}

func TestSlugFromPath(t *testing.T) {
	tests := []struct {
		rel, want string
	}{
		{"hello.mdx", "hello"},
		{"日本語.mdx", "日本語"},
		{"2024/はじめに.mdx", "2024/はじめに"},
		{"notes/My Post.md", "notes/My Post"},
		{"a/.b/c.md", "a/c"},
		{"v1.2.md", "v1.2"},
	}
	for _, tt := range tests {
		if got := SlugFromPath(tt.rel); got != tt.want {
			t.Errorf("SlugFromPath(%q) = %q, want %q", tt.rel, got, tt.want)
		}
	}
}

func TestLoaderNonASCIINames(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "はじめに.mdx"), "---\ntitle: Intro\ndate: 2024-02-01\n---\nbody")
	writeFile(t, filepath.Join(root, "2024", "はじめに.mdx"), "---\ndate: 2024-01-01\n---\nbody")

	posts, err := NewLoader(root).Load()
	if err != nil {
		t.Fatalf("Load unexpected error: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("Load = %d posts, want 2", len(posts))
	}
	if posts[0].Slug != "はじめに" || posts[1].Slug != "2024/はじめに" {
		t.Errorf("slugs = %q, %q", posts[0].Slug, posts[1].Slug)
	}
	if posts[1].Title != "はじめに" {
		t.Errorf("Title = %q, want the file name", posts[1].Title)
	}
	want := "/posts/2024/%E3%81%AF%E3%81%98%E3%82%81%E3%81%AB/"
	if got := posts[1].Link(); got != want {
		t.Errorf("Link() = %q, want %q", got, want)
	}
	if got := posts[1].Route(); got != "/posts/2024/はじめに/" {
		t.Errorf("Route() = %q", got)
	}
}

func TestLoaderDuplicateSlug(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.md"), "one")
	writeFile(t, filepath.Join(root, "a.mdx"), "two")

	if _, err := NewLoader(root).Load(); err == nil {
		t.Fatalf("Load should reject duplicate slugs")
	}
}

func TestLoaderMissingRoot(t *testing.T) {
	posts, err := NewLoader(filepath.Join(t.TempDir(), "missing")).Load()
	if err != nil || len(posts) != 0 {
		t.Fatalf("Load on missing root = %v, %v; want no posts, nil", posts, err)
	}
}

func TestListedDrafts(t *testing.T) {
	posts := []Post{
		{Slug: "a", HasFrontMatter: true},
		{Slug: "b", HasFrontMatter: true, Draft: true},
		{Slug: "c"},
	}
	if n := len(Listed(posts, false)); n != 1 {
		t.Errorf("Listed(false) = %d, want 1", n)
	}
	if n := len(Listed(posts, true)); n != 2 {
		t.Errorf("Listed(true) = %d, want 2", n)
	}
}
