package fieldfmt

import (
	"fmt"
	"sort"
	"strings"
)

// Kind selects which rendering rule applies to a raw value.
type Kind int

const (
	// Monetary renders a decimal amount as grouped dollars, e.g. "$1,234.57".
	Monetary Kind = iota
	// Date renders a timestamp in the local display form.
	Date
	// Masked replaces every character of the value's text with '*'.
	Masked
	// Percentage renders a 0-1 ratio as "NN.NN%".
	Percentage
	// Boolean renders the words "True" or "False".
	Boolean
	// Duration renders an elapsed interval in days, H:MM:SS form.
	Duration
)

var kindNames = map[Kind]string{
	Monetary:   "monetary",
	Date:       "date",
	Masked:     "masked",
	Percentage: "percentage",
	Boolean:    "boolean",
	Duration:   "duration",
}

var kindsByName = map[string]Kind{
	"monetary":   Monetary,
	"date":       Date,
	"masked":     Masked,
	"percentage": Percentage,
	"boolean":    Boolean,
	"duration":   Duration,
}

// aliasMap provides user-friendly synonyms for kind names.
var aliasMap = map[string]string{
	"money":     "monetary",
	"currency":  "monetary",
	"datetime":  "date",
	"timestamp": "date",
	"secret":    "masked",
	"percent":   "percentage",
	"ratio":     "percentage",
	"bool":      "boolean",
	"flag":      "boolean",
	"elapsed":   "duration",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// NormalizeKindName lowers and resolves aliases.
func NormalizeKindName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// ParseKind resolves a kind name or alias to its Kind.
func ParseKind(name string) (Kind, error) {
	if k, ok := kindsByName[NormalizeKindName(name)]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("unknown formatter kind %q", name)
}

// KindNames returns the canonical kind names, sorted.
func KindNames() []string {
	names := make([]string, 0, len(kindsByName))
	for name := range kindsByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// KindAliases returns the supported alias keys, sorted.
func KindAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
