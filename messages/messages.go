/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package messages renders user-facing warnings in the configured language.
package messages

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. The key doubles as the English text.
const (
	// RootInterfaceUnavailable is reported once per class name whose methods
	// could not be determined. Argument: the class name as supplied.
	RootInterfaceUnavailable = "Cannot obtain method information for root interface %s"
)

var translations = map[language.Tag]map[string]string{
	language.German: {
		RootInterfaceUnavailable: "Methodeninformationen für Root-Interface %s können nicht ermittelt werden",
	},
	language.Japanese: {
		RootInterfaceUnavailable: "ルートインターフェース %s のメソッド情報を取得できません",
	},
}

var cat = newCatalog()

func newCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, msgs := range translations {
		for key, msg := range msgs {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(fmt.Sprintf("rootiface(messages): %s %q: %v", tag, key, err))
			}
		}
	}
	return b
}

// Printer formats catalog messages for one language.
type Printer struct {
	p *message.Printer
}

// NewPrinter returns a Printer for a BCP 47 tag such as "en" or "de-CH".
// Unknown or malformed tags fall back to English.
func NewPrinter(lang string) *Printer {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	return &Printer{p: message.NewPrinter(tag, message.Catalog(cat))}
}

// Sprintf formats the message stored under key.
func (p *Printer) Sprintf(key string, args ...any) string {
	return p.p.Sprintf(key, args...)
}

// RootInterfaceUnavailable formats the RootInterfaceUnavailable warning.
func (p *Printer) RootInterfaceUnavailable(className string) string {
	return p.Sprintf(RootInterfaceUnavailable, className)
}
