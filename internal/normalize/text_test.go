package normalize

import "testing"

func TestText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"\t\n", ""},
		{"Apple Pie", "Apple Pie"},
		{"  Apple   Pie  ", "Apple Pie"},
		{"3x\nApple", "3x Apple"},
		{"a\tb\r\nc", "a b c"},
	}
	for _, c := range cases {
		if got := Text(c.in); got != c.want {
			t.Errorf("Text(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTextIdempotent(t *testing.T) {
	inputs := []string{"", " ", "a  b", "\n\t x \n", "already clean"}
	for _, in := range inputs {
		once := Text(in)
		twice := Text(once)
		if once != twice {
			t.Errorf("Text not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Apple Pie", "apple_pie"},
		{"Fisherman's Boat", "fishermans_boat"},
		{"  DIY Workbench!  ", "diy_workbench"},
		{"K.K. Slider", "k_k_slider"},
		{"---", ""},
	}
	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Errorf("Slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestUniqueKeepOrder(t *testing.T) {
	got := UniqueKeepOrder([]string{"b", "", "a", "b", "c", "a"})
	want := []string{"b", "a", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %q, want %q", i, got[i], want[i])
		}
	}
}
