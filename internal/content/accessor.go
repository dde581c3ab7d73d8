// Package content resolves display strings from multilingual record fields.
package content

import (
	"sort"

	"github.com/heritagecraft/sousuo/internal/models"
)

// Accessor resolves a display string for a localized field given a requested
// language, falling back in the declared supported-language order so that
// resolution never depends on map iteration order.
type Accessor struct {
	languages       []string
	defaultLanguage string
}

// NewAccessor creates an Accessor. languages is the declared supported-language
// list; defaultLanguage is the first fallback tier. When defaultLanguage is not
// in languages it is still honoured as a fallback key.
func NewAccessor(languages []string, defaultLanguage string) *Accessor {
	return &Accessor{
		languages:       languages,
		defaultLanguage: defaultLanguage,
	}
}

// Languages returns the declared supported-language list.
func (a *Accessor) Languages() []string {
	return a.languages
}

// DefaultLanguage returns the default fallback language.
func (a *Accessor) DefaultLanguage() string {
	return a.defaultLanguage
}

// Resolve returns the display string for the requested language.
// Fallback tiers: requested language, then the default language, then the
// remaining supported languages in declared order, then any other keys in
// sorted order. Absence of content yields "" rather than an error.
func (a *Accessor) Resolve(text models.LocalizedText, language string) string {
	return a.resolve(text, language, true)
}

// ResolveStrict returns the requested language's value only, without fallback.
func (a *Accessor) ResolveStrict(text models.LocalizedText, language string) string {
	return a.resolve(text, language, false)
}

func (a *Accessor) resolve(text models.LocalizedText, language string, fallback bool) string {
	if len(text) == 0 {
		return ""
	}
	if v := text[language]; v != "" {
		return v
	}
	if !fallback {
		return ""
	}
	if v := text[a.defaultLanguage]; v != "" {
		return v
	}
	seen := map[string]bool{language: true, a.defaultLanguage: true}
	for _, lang := range a.languages {
		if seen[lang] {
			continue
		}
		seen[lang] = true
		if v := text[lang]; v != "" {
			return v
		}
	}
	// Content in a language outside the declared list. Sorted key order keeps
	// repeated calls stable within a query.
	keys := make([]string, 0, len(text))
	for k := range text {
		if !seen[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		if v := text[k]; v != "" {
			return v
		}
	}
	return ""
}
