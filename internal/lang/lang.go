// Package lang defines the set of languages the translation relay supports
// and the script-range heuristics used for detection and quality scoring.
package lang

import "unicode"

// Code is a short language identifier, e.g. "en" or "ar".
type Code string

// Language holds display metadata for a supported language.
type Language struct {
	Name string `json:"name"`
	Flag string `json:"flag"`
}

// Supported is the full set of languages the relay accepts in requests.
var Supported = map[Code]Language{
	"en": {Name: "English", Flag: "🇺🇸"},
	"ar": {Name: "Arabic", Flag: "🇸🇦"},
	"es": {Name: "Spanish", Flag: "🇪🇸"},
	"fr": {Name: "French", Flag: "🇫🇷"},
	"de": {Name: "German", Flag: "🇩🇪"},
	"it": {Name: "Italian", Flag: "🇮🇹"},
	"pt": {Name: "Portuguese", Flag: "🇵🇹"},
	"ru": {Name: "Russian", Flag: "🇷🇺"},
	"ja": {Name: "Japanese", Flag: "🇯🇵"},
	"ko": {Name: "Korean", Flag: "🇰🇷"},
	"zh": {Name: "Chinese", Flag: "🇨🇳"},
	"hi": {Name: "Hindi", Flag: "🇮🇳"},
}

// IsSupported reports whether code is in the supported set.
func IsSupported(code Code) bool {
	_, ok := Supported[code]
	return ok
}

var scriptRanges = map[Code]*unicode.RangeTable{
	"ar": unicode.Arabic,
	"ru": unicode.Cyrillic,
	"ko": unicode.Hangul,
	"zh": unicode.Han,
	"hi": unicode.Devanagari,
	"ja": {R16: []unicode.Range16{
		{Lo: 0x3040, Hi: 0x309f, Stride: 1}, // hiragana
		{Lo: 0x30a0, Hi: 0x30ff, Stride: 1}, // katakana
	}},
}

// Detect guesses the language of text from its dominant script.
// Latin-script text defaults to English.
func Detect(text string) Code {
	for _, code := range []Code{"ar", "zh", "ja", "ko", "ru", "hi"} {
		if containsScript(text, scriptRanges[code]) {
			return code
		}
	}
	return "en"
}

// ScriptMatches reports whether text looks like it is written in the script
// family expected for target. Non-Latin targets match when at least one rune
// falls in the target script range; Latin targets match when the text is
// entirely Latin letters, digits, spaces and basic punctuation.
func ScriptMatches(target Code, text string) bool {
	if text == "" {
		return false
	}
	if rt, ok := scriptRanges[target]; ok {
		return containsScript(text, rt)
	}
	for _, r := range text {
		switch {
		case unicode.Is(unicode.Latin, r):
		case unicode.IsDigit(r) || unicode.IsSpace(r):
		case r == '.' || r == ',' || r == '!' || r == '?' || r == '\'' || r == '"' || r == '-':
		default:
			return false
		}
	}
	return true
}

func containsScript(text string, rt *unicode.RangeTable) bool {
	for _, r := range text {
		if unicode.Is(rt, r) {
			return true
		}
	}
	return false
}
