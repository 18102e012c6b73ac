package mathsheet

import (
	"strings"

	"golang.org/x/text/language"
)

// Language is a supported worksheet language.
type Language int

// Supported languages. English is the zero value and the fallback.
const (
	English Language = iota
	Norwegian
	Polish
)

// Strings holds the localized text printed on a worksheet.
type Strings struct {
	Title            string
	WorksheetIDLabel string
	Instructions     string
}

type languageEntry struct {
	code    string
	name    string
	tag     language.Tag
	strings Strings
}

var languageTable = [...]languageEntry{
	English: {
		code: "en",
		name: "English",
		tag:  language.English,
		strings: Strings{
			Title:            "Multiplication Table Test 1–10",
			WorksheetIDLabel: "Worksheet ID:",
			Instructions:     "Calculate all results. Write answers in the blanks.",
		},
	},
	Norwegian: {
		code: "no",
		name: "Norwegian",
		tag:  language.Norwegian,
		strings: Strings{
			Title:            "Gangetabell Test 1–10",
			WorksheetIDLabel: "Oppgavesett ID:",
			Instructions:     "Regn ut alle resultatene. Skriv svarene på strekene.",
		},
	},
	Polish: {
		code: "pl",
		name: "Polish",
		tag:  language.Polish,
		strings: Strings{
			Title:            "Test Tabliczki Mnożenia 1–10",
			WorksheetIDLabel: "ID Arkusza:",
			Instructions:     "Oblicz wszystkie wyniki. Wpisz odpowiedzi w kratkach.",
		},
	},
}

// Bokmål and Nynorsk both print the Norwegian sheet.
var languageAliases = map[string]Language{
	"no": Norwegian,
	"nb": Norwegian,
	"nn": Norwegian,
}

// Code returns the short code ("en", "no", "pl").
func (l Language) Code() string {
	return languageTable[l.normalize()].code
}

// String returns the English name of the language.
func (l Language) String() string {
	return languageTable[l.normalize()].name
}

func (l Language) normalize() Language {
	if l < 0 || int(l) >= len(languageTable) {
		return English
	}
	return l
}

// Lookup returns the strings for l. Out-of-range values get English.
func Lookup(l Language) Strings {
	return languageTable[l.normalize()].strings
}

// SupportedLanguages lists every language in table order.
func SupportedLanguages() []Language {
	langs := make([]Language, len(languageTable))
	for i := range languageTable {
		langs[i] = Language(i)
	}
	return langs
}

// ParseLanguage resolves a code to a Language, falling back to English.
func ParseLanguage(code string) Language {
	l, _ := MatchLanguage(code)
	return l
}

// MatchLanguage resolves a code to a Language and reports whether it matched.
// Exact codes are tried first, then the base language of a BCP 47 tag
// ("pl-PL" is Polish, "nb" is Norwegian). Related but unsupported languages
// such as Danish do not match. Unmatched or malformed codes return English
// and false.
func MatchLanguage(code string) (Language, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return English, false
	}

	for i, e := range languageTable {
		if e.code == code {
			return Language(i), true
		}
	}

	tag, err := language.Parse(strings.ReplaceAll(code, "_", "-"))
	if err != nil {
		return English, false
	}

	// "und" and similar yield a guessed base; only an explicit one counts.
	base, confidence := tag.Base()
	if confidence < language.High {
		return English, false
	}
	if l, ok := languageAliases[base.String()]; ok {
		return l, true
	}
	for i, e := range languageTable {
		if b, _ := e.tag.Base(); b == base {
			return Language(i), true
		}
	}
	return English, false
}
