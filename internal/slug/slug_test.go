package slug

import "testing"

func TestMake(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  Community   Garden!  ", "community-garden"},
		{"Crème brûlée", "creme-brulee"},
		{"already-a-slug", "already-a-slug"},
		{"Trailing---", "trailing"},
		{"MiXeD Case 42", "mixed-case-42"},
		{"!!!", ""},
	}
	for _, c := range cases {
		if got := Make(c.in); got != c.want {
			t.Errorf("Make(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestMakeTransliterates(t *testing.T) {
	got := Make("नमस्ते")
	if got == "" {
		t.Fatalf("expected a non-empty ASCII slug for Devanagari input")
	}
	for _, r := range got {
		if r > 127 {
			t.Fatalf("slug %q contains non-ASCII rune %q", got, r)
		}
	}
}
