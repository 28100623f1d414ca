// DeliMatch Core
// Copyright (c) 2026 The DeliMatch Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of DeliMatch Core.
//
// DeliMatch Core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// DeliMatch Core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with DeliMatch Core.  If not, see <http://www.gnu.org/licenses/>.

package textnorm

import "sort"

// specialFoldings maps characters that Unicode decomposition alone cannot
// reduce to ASCII. Keys are lowercase; folding runs after case folding.
var specialFoldings = map[rune]string{
	'ß': "ss",
	'æ': "ae",
	'œ': "oe",
	'ø': "o",
	'đ': "d",
	'ð': "d",
	'þ': "th",
	'ł': "l",
}

// typoCorrections maps common misspellings of food terms to their canonical
// spelling. No value may be, or contain, a key of the table, and no value
// may be a prefix of its own key: replacement output never matches the
// table again.
var typoCorrections = map[string]string{
	"avacado":    "avocado",
	"brocolli":   "broccoli",
	"burguer":    "burger",
	"cappucino":  "cappuccino",
	"capuccino":  "cappuccino",
	"ceasar":     "caesar",
	"hamburguer": "hamburger",
	"linguini":   "linguine",
	"mozarella":  "mozzarella",
	"mozzarela":  "mozzarella",
	"peperoni":   "pepperoni",
	"sandwhich":  "sandwich",
	"spageti":    "spaghetti",
	"spagetti":   "spaghetti",
}

// typoKeysByLength holds the correction keys longest first, so a key that
// contains a shorter key (hamburguer vs burguer) is always applied whole.
var typoKeysByLength = sortedKeysByLength(typoCorrections)

// phoneticPairs reduce letter clusters that sound alike to a single
// surrogate. Patterns are disjoint from each other and surrogates use
// letters that appear in no pattern and no typo key, so applying the table
// never creates new matches for any table.
var phoneticPairs = []struct {
	pattern   string
	surrogate string
}{
	{"ph", "f"},
	{"sh", "x"},
	{"ch", "x"},
	{"qu", "k"},
}

// abbreviations maps short forms customers type to the full term. Applied
// on word boundaries by the variation generator only; keys must survive
// Normalize unchanged to stay findable.
var abbreviations = map[string]string{
	"avo":  "avocado",
	"bbq":  "barbecue",
	"guac": "guacamole",
	"mayo": "mayonnaise",
	"oj":   "orange juice",
	"parm": "parmesan",
	"pb":   "peanut butter",
	"veg":  "vegetarian",
	"x":    "cheese",
}

var abbreviationKeys = sortedKeys(abbreviations)

// vocabulary maps a normalized canonical dish name to spellings of it seen
// in menu data: plurals, regional names, accented forms. Variants are raw
// spellings and may carry diacritics; canonicals must be fixed points of
// Normalize.
var vocabulary = map[string][]string{
	"acai":      {"açaí", "assai"},
	"barbecue":  {"barbeque", "churrasco"},
	"burger":    {"burgers", "hamburger"},
	"coffee":    {"coffees", "cafe"},
	"crepe":     {"crepes", "crêpe"},
	"croissant": {"croissants", "croassam"},
	"espresso":  {"expresso", "espressos"},
	"juice":     {"juices", "suco"},
	"pasta":     {"pastas", "massa"},
	"pizza":     {"pizzas", "pizzaria"},
	"salad":     {"salads", "salada"},
	"taco":      {"tacos", "taquito"},
	"tomato":    {"tomatoes", "tomatoe"},
}

var vocabularyKeys = sortedKeys(vocabulary)

// Vocabulary returns a copy of the built-in canonical-to-variants table.
func Vocabulary() map[string][]string {
	vocab := make(map[string][]string, len(vocabulary))
	for canonical, variants := range vocabulary {
		vocab[canonical] = append([]string(nil), variants...)
	}
	return vocab
}

func sortedKeysByLength(table map[string]string) []string {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
