// Package i18n holds the bilingual translation table and the active-language rules:
// Arabic is the default, the only other language is English, and text direction
// follows the language.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Language string

const (
	Arabic  Language = "ar"
	English Language = "en"

	Default = Arabic
)

type Direction string

const (
	RTL Direction = "rtl"
	LTR Direction = "ltr"
)

// Text is one translation table entry.
type Text struct {
	AR string
	EN string
}

// Toggle flips between Arabic and English.
func (l Language) Toggle() Language {
	if l == English {
		return Arabic
	}
	return English
}

func (l Language) Dir() Direction {
	if l == English {
		return LTR
	}
	return RTL
}

func (l Language) Tag() language.Tag {
	if l == English {
		return language.English
	}
	return language.Arabic
}

func (l Language) String() string {
	return string(l)
}

// Parse accepts any BCP 47 tag whose base language is ar or en ("en-US", "ar-YE", ...).
func Parse(s string) (Language, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	switch base.String() {
	case "ar":
		return Arabic, true
	case "en":
		return English, true
	}
	return "", false
}

// Lookup resolves key in the active language. Unknown keys and missing variants yield key.
func Lookup(l Language, key string) string {
	entry, ok := texts[key]
	if !ok {
		return key
	}
	v := entry.AR
	if l == English {
		v = entry.EN
	}
	if v == "" {
		return key
	}
	return v
}

// Pick chooses between the two literal variants of a bilingual record field.
func Pick(l Language, ar, en string) string {
	if l == English {
		return en
	}
	return ar
}

// FormatNumber groups digits the way the active language does.
func FormatNumber(l Language, n any) string {
	return message.NewPrinter(l.Tag()).Sprint(n)
}

// Len returns how many entries the table holds.
func Len() int {
	return len(texts)
}
