package normalize

import (
	"regexp"
	"strings"
)

// sourceGlossary maps canonical English source tokens to the game's Korean
// localization. Keys are compared against whole tokens after SourceEN
// normalization; tokens without an entry pass through in English.
var sourceGlossary = map[string]string{
	// Shops and services
	"Nook's Cranny":         "너굴상점",
	"Nook Shopping":         "너굴쇼핑",
	"Nook Miles Redemption": "마일 교환",
	"Able Sisters":          "에이블시스터즈",

	// Named NPCs
	"Celeste":   "부옥",
	"Blathers":  "부엉",
	"Isabelle":  "여울",
	"Pascal":    "랏코",
	"Daisy Mae": "무파니",

	// Recurring obtain methods
	"Message bottle": "메시지 보틀",
	"Balloons":       "풍선",
	"Snowboy":        "눈사람",
	"Any villager":   "아무 주민",
	"All villagers":  "모든 주민",

	// Events
	"Bunny Day":       "이스터",
	"Fishing Tourney": "낚시 대회",
	"Bug-Off":         "곤충 박람회",

	// Recipe packs sold at Nook's Cranny
	"DIY for Beginners":         "초보자용 DIY 레시피",
	"Test Your DIY Skills":      "DIY 실력 테스트",
	"Wildest Dreams DIY":        "꿈의 DIY 레시피",
	"Pretty Good Tools Recipes": "제법 좋은 도구 레시피",
	"Be a Chef! DIY Recipes+":   "요리사가 되자! DIY 레시피+",
}

type substitution struct {
	pattern *regexp.Regexp
	repl    string
}

// koSubstitutions patch a machine-translated source string in place. The
// list is ordered: the message-bottle fix must run before any rule that
// could introduce the word 병, and NPC fixes fold every observed variant of
// a name, raw English included, into the localized form.
var koSubstitutions = []substitution{
	{regexp.MustCompile(`(?i)message\s*bottles?|메시지\s*병`), "메시지 보틀"},
	{regexp.MustCompile(`(?i)\bceleste\b|셀레스테|셀레스트`), "부옥"},
	{regexp.MustCompile(`(?i)nook'?s\s*cranny|너굴\s*상점`), "너굴상점"},
	{regexp.MustCompile(`(?i)nook\s*shopping`), "너굴쇼핑"},
	{regexp.MustCompile(`(?i)able\s*sisters`), "에이블시스터즈"},
	{regexp.MustCompile(`(?i)blathers|블래더스`), "부엉"},
	{regexp.MustCompile(`(?i)pascal|파스칼`), "랏코"},
	{regexp.MustCompile(`(?i)daisy\s*mae|데이지\s*메이`), "무파니"},
	{regexp.MustCompile(`(?i)snowboy|스노우보이|눈사람\s*소년`), "눈사람"},
	{regexp.MustCompile(`(?i)balloons?`), "풍선"},
	{regexp.MustCompile(`(?i)all\s*villagers|모든\s*마을\s*주민`), "모든 주민"},
	{regexp.MustCompile(`(?i)any\s*villager|아무\s*마을\s*주민`), "아무 주민"},
	{regexp.MustCompile(`(?i)bunny\s*day|토끼의\s*날`), "이스터"},
	{regexp.MustCompile(`(?i)fishing\s*tourney|낚시\s*토너먼트`), "낚시 대회"},
	{regexp.MustCompile(`(?i)bug-?\s*off|벌레\s*잡기\s*대회`), "곤충 박람회"},
}

// The glossary rebuild passes unknown tokens through in English, so these
// two fixes run once more after either branch. Only these two terms are
// known to resurface that way.
var (
	messageBottleFix = substitution{regexp.MustCompile(`(?i)message\s*bottles?|메시지\s*병`), "메시지 보틀"}
	celesteFix       = substitution{regexp.MustCompile(`(?i)\bceleste\b|셀레스테|셀레스트`), "부옥"}
)

// SourceKO makes the Korean source string consistent with the canonical
// English tokens. When any token has a glossary entry the machine
// translation is discarded and the string rebuilt token by token; otherwise
// the substitution list patches the translation itself.
func SourceKO(sourceEN, sourceKO string) string {
	if Text(sourceKO) == "" || Text(sourceEN) == "" {
		return ""
	}

	tokens := SplitSourceTokens(SourceEN(sourceEN))
	rebuild := false
	for _, token := range tokens {
		if _, ok := sourceGlossary[token]; ok {
			rebuild = true
			break
		}
	}

	var out string
	if rebuild {
		mapped := make([]string, 0, len(tokens))
		for _, token := range tokens {
			if ko, ok := sourceGlossary[token]; ok {
				mapped = append(mapped, ko)
			} else {
				mapped = append(mapped, token)
			}
		}
		out = strings.Join(mapped, ", ")
	} else {
		out = Text(sourceKO)
		for _, sub := range koSubstitutions {
			out = sub.pattern.ReplaceAllString(out, sub.repl)
		}
	}

	out = commaSpacingRE.ReplaceAllString(out, ", ")
	out = strings.Trim(out, ", ")
	out = messageBottleFix.pattern.ReplaceAllString(out, messageBottleFix.repl)
	out = celesteFix.pattern.ReplaceAllString(out, celesteFix.repl)
	return out
}
