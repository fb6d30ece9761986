// Package i18n holds the client-facing message catalogue. Message keys are the
// English format strings themselves, so an unknown language prints English.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var supported = []language.Tag{
	language.English,
	language.Vietnamese,
}

var (
	matcher = language.NewMatcher(supported)
	builder = catalog.NewBuilder(catalog.Fallback(language.English))
)

func init() {
	for key, msg := range vietnamese {
		if err := builder.SetString(language.Vietnamese, key, msg); err != nil {
			panic(fmt.Sprintf("i18n: bad catalogue entry %q: %v", key, err))
		}
	}
}

// FromAcceptLanguage picks the best supported language for an Accept-Language
// header value. An empty or unparseable header yields English.
func FromAcceptLanguage(header string) language.Tag {
	if header == "" {
		return language.English
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return language.English
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return language.English
	}
	return supported[idx]
}

// Sprintf formats key in the given language.
func Sprintf(tag language.Tag, key string, args ...any) string {
	if tag == language.English {
		if len(args) == 0 {
			return key
		}
		return fmt.Sprintf(key, args...)
	}
	p := message.NewPrinter(tag, message.Catalog(builder))
	return p.Sprintf(key, args...)
}
