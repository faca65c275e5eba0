package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Language selects the text used for battery messages
type Language int

const (
	English Language = iota
	German
)

// Languages lists every supported language, default first
var Languages = []Language{English, German}

var languageTags = []language.Tag{language.English, language.German}

var matcher = language.NewMatcher(languageTags)

// Names accepted by ParseLanguage in addition to BCP 47 tags
var languageNames = map[string]Language{
	"english": English,
	"german":  German,
	"deutsch": German,
}

// Tag returns the BCP 47 tag of the language
func (l Language) Tag() language.Tag {
	if l.Valid() {
		return languageTags[l]
	}
	return language.Und
}

// Valid reports whether l is a supported language
func (l Language) Valid() bool {
	return l >= 0 && int(l) < len(languageTags)
}

// String returns the language's tag, e.g. "en"
func (l Language) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Language(%d)", int(l))
	}
	return l.Tag().String()
}

// ParseLanguage accepts a BCP 47 tag ("de", "en-GB") or a language name ("german").
// Regional variants match their base language.
func ParseLanguage(s string) (Language, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if l, ok := languageNames[s]; ok {
		return l, nil
	}

	tag, err := language.Parse(s)
	if err != nil {
		return English, fmt.Errorf("parse language %q: %w", s, err)
	}

	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return English, fmt.Errorf("unsupported language %q", s)
	}
	return Language(index), nil
}
