// Package parser converts command strings into Intent structs.
// Intentionally dumb: no NLP, just pattern matching.
package parser

import (
	"strings"
)

// Intent is a parsed command: a canonical verb and the raw names of what it
// acts on. Names are resolved to entities later.
type Intent struct {
	Verb   string
	Object string
	Target string
}

// IsZero reports whether nothing was parsed.
func (i Intent) IsZero() bool {
	return i.Verb == ""
}

var verbAliases = map[string]string{
	// Look
	"l":    "look",
	"view": "look",

	// Examine
	"x":        "examine",
	"check":    "examine",
	"observe":  "examine",
	"describe": "examine",
	"study":    "examine",

	// Glance
	"peek": "glance",
	"scan": "glance",

	// Inspect
	"search": "inspect",
	"probe":  "inspect",
	"frisk":  "inspect",

	// Attack
	"hit":    "attack",
	"fight":  "attack",
	"strike": "attack",
	"kill":   "attack",
	"stab":   "attack",
	"slash":  "attack",
	"smash":  "attack",

	// Cast
	"invoke": "cast",
	"chant":  "cast",

	// Take
	"get":  "take",
	"grab": "take",

	// Loot
	"plunder": "loot",
	"rob":     "loot",
	"strip":   "loot",

	// Equip
	"wield": "ready",
	"draw":  "ready",
	"don":   "wear",
	"stow":  "pack",
	"store": "pack",
	"stash": "hide",
	"tuck":  "hide",

	// Exit
	"exit":  "go",
	"leave": "go",
	"walk":  "go",
	"enter": "go",
	"climb": "go",

	// Miscellaneous
	"inv":    "inventory",
	"i":      "inventory",
	"me":     "status",
	"health": "status",
	"hp":     "status",
	"memory": "spells",
	"?":      "help",
}

var prepositions = map[string]bool{
	"on": true, "at": true, "to": true,
	"with": true, "in": true, "from": true,
	"into": true, "through": true, "off": true,
}

var articles = map[string]bool{
	"the": true, "a": true, "an": true, "some": true,
}

// Parse converts a raw command string into an Intent.
func Parse(input string) Intent {
	input = strings.TrimSpace(input)
	if input == "" {
		return Intent{}
	}

	words := strings.Fields(strings.ToLower(input))

	// Handle multi-word verb phrases before general parsing.
	words = expandMultiWordVerbs(words)

	// Apply verb aliases.
	if alias, ok := verbAliases[words[0]]; ok {
		words[0] = alias
	}

	verb := words[0]
	rest := stripArticles(words[1:])

	// "go through the door" drops the leading preposition.
	if verb == "go" && len(rest) > 0 && prepositions[rest[0]] {
		rest = rest[1:]
	}

	// Use the first preposition as a delimiter between object and target.
	object, target := splitOnPreposition(rest)

	return Intent{
		Verb:   verb,
		Object: object,
		Target: target,
	}
}

// expandMultiWordVerbs handles "look at", "pick up", "put away" etc.
func expandMultiWordVerbs(words []string) []string {
	if len(words) < 2 {
		return words
	}

	switch words[0] {
	case "look":
		if words[1] == "at" || words[1] == "in" || words[1] == "into" {
			return append([]string{"examine"}, words[2:]...)
		}
		if words[1] == "around" {
			return append([]string{"look"}, words[2:]...)
		}
	case "quick":
		if words[1] == "look" {
			return append([]string{"glance"}, words[2:]...)
		}
	case "pick":
		if words[1] == "up" {
			return append([]string{"take"}, words[2:]...)
		}
	case "put":
		if words[1] == "on" {
			return append([]string{"wear"}, words[2:]...)
		}
		if words[1] == "away" {
			return append([]string{"pack"}, words[2:]...)
		}
	case "go", "walk":
		if words[1] == "through" || words[1] == "into" || words[1] == "out" {
			return append([]string{"go"}, words[2:]...)
		}
	}

	return words
}

// stripArticles removes articles ("the", "a", "an") from the word list.
func stripArticles(words []string) []string {
	result := make([]string, 0, len(words))
	for _, w := range words {
		if !articles[w] {
			result = append(result, w)
		}
	}
	return result
}

// splitOnPreposition splits words on the first preposition.
// Words before the preposition become the object, words after become the target.
// If no preposition is found, all words become the object.
func splitOnPreposition(words []string) (object, target string) {
	for i, w := range words {
		if prepositions[w] {
			object = strings.Join(words[:i], " ")
			target = strings.Join(words[i+1:], " ")
			return object, target
		}
	}
	return strings.Join(words, " "), ""
}
