package language

import (
	"errors"
	"fmt"
	"strings"

	xlanguage "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// ErrUnknownLanguage is returned when input cannot be resolved to a language.
var ErrUnknownLanguage = errors.New("unknown language")

type entry struct {
	code2 string   // ISO 639-1 (2-letter)
	code3 string   // ISO 639-2 primary (3-letter)
	alt3  string   // ISO 639-2 alternate (e.g. "fre" vs "fra")
	tag   string   // regional tag recognition engines expect
	words []string // Full word forms (e.g. "english")
}

var languages = []entry{
	{"ar", "ara", "", "ar-SA", []string{"arabic"}},
	{"en", "eng", "", "en-US", []string{"english"}},
	{"es", "spa", "", "es-ES", []string{"spanish"}},
	{"fr", "fra", "fre", "fr-FR", []string{"french"}},
	{"de", "deu", "ger", "de-DE", []string{"german"}},
	{"it", "ita", "", "it-IT", []string{"italian"}},
	{"pt", "por", "", "pt-BR", []string{"portuguese"}},
	{"tr", "tur", "", "tr-TR", []string{"turkish"}},
	{"ur", "urd", "", "ur-PK", []string{"urdu"}},
	{"hi", "hin", "", "hi-IN", []string{"hindi"}},
	{"ja", "jpn", "", "ja-JP", []string{"japanese"}},
	{"zh", "zho", "chi", "zh-CN", []string{"chinese"}},
}

// Index maps built at init time.
var (
	byCode2 map[string]*entry
	byCode3 map[string]*entry
	byWord  map[string]*entry
)

func init() {
	byCode2 = make(map[string]*entry, len(languages))
	byCode3 = make(map[string]*entry, len(languages)*2)
	byWord = make(map[string]*entry, len(languages))
	for i := range languages {
		e := &languages[i]
		byCode2[e.code2] = e
		byCode3[e.code3] = e
		if e.alt3 != "" {
			byCode3[e.alt3] = e
		}
		for _, w := range e.words {
			byWord[w] = e
		}
	}
}

func lookup(code string) *entry {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return nil
	}
	if e, ok := byCode2[code]; ok {
		return e
	}
	if e, ok := byCode3[code]; ok {
		return e
	}
	if e, ok := byWord[code]; ok {
		return e
	}
	return nil
}

// Selection is a resolved transcription language.
type Selection struct {
	Tag     xlanguage.Tag
	Base    string // ISO 639-1 where one exists, else the tag's base subtag
	Display string // English name of the base language
}

// String returns the BCP-47 form of the selection.
func (s Selection) String() string {
	return s.Tag.String()
}

// Resolve maps user input to a Selection.
func Resolve(input string) (Selection, error) {
	value := strings.TrimSpace(input)
	if inner, ok := labelTag(value); ok {
		value = inner
	}
	if value == "" {
		return Selection{}, fmt.Errorf("%w: empty selection", ErrUnknownLanguage)
	}
	if e := lookup(value); e != nil {
		return newSelection(xlanguage.MustParse(e.tag)), nil
	}
	tag, err := xlanguage.Parse(value)
	if err != nil {
		return Selection{}, fmt.Errorf("%w: %q", ErrUnknownLanguage, input)
	}
	if base, _ := tag.Base(); base.String() == "und" {
		return Selection{}, fmt.Errorf("%w: %q", ErrUnknownLanguage, input)
	}
	return newSelection(tag), nil
}

func newSelection(tag xlanguage.Tag) Selection {
	base, _ := tag.Base()
	return Selection{
		Tag:     tag,
		Base:    base.String(),
		Display: display.English.Languages().Name(base),
	}
}

// labelTag extracts "ar-SA" from a selector label like "Arabic (ar-SA)".
func labelTag(value string) (string, bool) {
	open := strings.LastIndex(value, "(")
	if open == -1 || !strings.HasSuffix(value, ")") {
		return "", false
	}
	return strings.TrimSpace(value[open+1 : len(value)-1]), true
}

// Supported returns the languages offered for selection, in display order.
func Supported() []Selection {
	out := make([]Selection, 0, len(languages))
	for _, e := range languages {
		out = append(out, newSelection(xlanguage.MustParse(e.tag)))
	}
	return out
}

// Label renders a selection the way the language selector shows it.
func Label(sel Selection) string {
	return fmt.Sprintf("%s (%s)", sel.Display, sel.Tag)
}

// ToISO2 converts any recognized language code, word or tag to ISO 639-1.
// Returns empty string for unrecognized input.
func ToISO2(code string) string {
	if e := lookup(code); e != nil {
		return e.code2
	}
	sel, err := Resolve(code)
	if err != nil {
		return ""
	}
	return sel.Base
}

// ToISO3 converts any recognized language to ISO 639-2, or "und".
func ToISO3(code string) string {
	if e := lookup(code); e != nil {
		return e.code3
	}
	sel, err := Resolve(code)
	if err != nil {
		return "und"
	}
	base, _ := sel.Tag.Base()
	return base.ISO3()
}

// DisplayName returns a human-readable language name for any recognized code.
// Returns "Unknown" for empty input, or the uppercased code for unrecognized input.
func DisplayName(code string) string {
	if strings.TrimSpace(code) == "" {
		return "Unknown"
	}
	if sel, err := Resolve(code); err == nil {
		return sel.Display
	}
	return strings.ToUpper(strings.TrimSpace(code))
}
