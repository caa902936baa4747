package render

import (
	"fmt"
	"sort"
	"strings"
)

// Vars maps placeholder names to the values substituted for them
type Vars map[string]interface{}

// Placeholder returns the literal token replaced for key, e.g. "{{ name }}"
func Placeholder(key string) string {
	return "{{ " + key + " }}"
}

// Substitute replaces every occurrence of the placeholder for each key in vars
// with the string form of its value. Keys are applied one at a time in sorted
// order. Placeholders without a matching key are left as they are.
func Substitute(text string, vars Vars) string {
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		text = strings.Replace(text, Placeholder(key), fmt.Sprint(vars[key]), -1)
	}
	return text
}
