package trend

import (
	"testing"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Cats", "cats"},
		{"CATS ", "cats"},
		{"Super Bowl", "super-bowl"},
		{"Hello, World!", "hello-world"},
		{"  --Foo__Bar--  ", "foo-bar"},
		{"Taylor Swift: The Eras Tour", "taylor-swift-the-eras-tour"},
		{"100 Days", "100-days"},
		{"!!!", ""},
		{"", ""},
	}

	for _, c := range cases {
		if got := Slugify(c.title); got != c.want {
			t.Errorf("Slugify(%q) = %q, want %q", c.title, got, c.want)
		}
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	titles := []string{
		"Cats", "Super Bowl", "Hello, World!", "  spaced  out  ",
		"already-a-slug", "MiXeD CaSe 42", "", "!!!",
	}

	for _, title := range titles {
		once := Slugify(title)
		twice := Slugify(once)
		if once != twice {
			t.Errorf("Slugify not idempotent for %q: %q != %q", title, once, twice)
		}
	}
}
