package normalize

import "testing"

func TestSourceEN(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Any villager Restaurant", "Any villager, Restaurant"},
		{"A ,  B", "A, B"},
		{"Tom Nook Nook's Cranny", "Tom Nook, Nook's Cranny"},
		{"Crafting", "Crafting"},
		{", leading and trailing ,", "leading and trailing"},
		{"", ""},
		{"  ", ""},
	}
	for _, c := range cases {
		if got := SourceEN(c.in); got != c.want {
			t.Errorf("SourceEN(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSourceENIdempotent(t *testing.T) {
	inputs := []string{"Any villager Restaurant", "A ,B ,  C", "Nook's Cranny"}
	for _, in := range inputs {
		once := SourceEN(in)
		if twice := SourceEN(once); once != twice {
			t.Errorf("SourceEN not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestSplitSourceTokens(t *testing.T) {
	got := SplitSourceTokens("Tom Nook,  Nook's Cranny, , Balloons")
	want := []string{"Tom Nook", "Nook's Cranny", "Balloons"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSourceKOTokenRebuild(t *testing.T) {
	// A glossary hit discards the machine translation entirely.
	got := SourceKO("Tom Nook, Nook's Cranny", "톰 누크, 누크의 크래니")
	if got != "Tom Nook, 너굴상점" {
		t.Errorf("SourceKO rebuild = %q, want %q", got, "Tom Nook, 너굴상점")
	}

	// Noise in the translation is irrelevant once a token matches.
	got = SourceKO("Celeste, Balloons", "whatever the engine said")
	if got != "부옥, 풍선" {
		t.Errorf("SourceKO rebuild = %q, want %q", got, "부옥, 풍선")
	}
}

func TestSourceKORebuildRepass(t *testing.T) {
	// A lower-case token misses the glossary and passes through in English;
	// the closing fixups still localize it.
	got := SourceKO("Nook's Cranny, message bottle", "any machine text")
	if got != "너굴상점, 메시지 보틀" {
		t.Errorf("SourceKO = %q, want %q", got, "너굴상점, 메시지 보틀")
	}
}

func TestSourceKOSubstitutionBranch(t *testing.T) {
	cases := []struct {
		sourceEN string
		sourceKO string
		want     string
	}{
		// No glossary token: the translation itself gets patched.
		{"From a message bottle on the beach", "해변의 메시지 병에서", "해변의 메시지 보틀에서"},
		{"Given by Celeste during meteor showers", "유성우 동안 셀레스트가 줌", "유성우 동안 부옥가 줌"},
		{"Given by Celeste during meteor showers", "유성우 동안 셀레스테가 줌", "유성우 동안 부옥가 줌"},
		{"Reward from the village elder", "마을 장로의 보상", "마을 장로의 보상"},
	}
	for _, c := range cases {
		if got := SourceKO(c.sourceEN, c.sourceKO); got != c.want {
			t.Errorf("SourceKO(%q, %q) = %q, want %q", c.sourceEN, c.sourceKO, got, c.want)
		}
	}
}

func TestSourceKOEmptyInputs(t *testing.T) {
	if got := SourceKO("", "아무거나"); got != "" {
		t.Errorf("SourceKO with empty English = %q, want empty", got)
	}
	if got := SourceKO("Nook's Cranny", ""); got != "" {
		t.Errorf("SourceKO with empty Korean = %q, want empty", got)
	}
	if got := SourceKO("", ""); got != "" {
		t.Errorf("SourceKO with both empty = %q, want empty", got)
	}
}
