package stacking

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/statforge/statforge/internal/entities"
)

// ComputeMind derives Mind as round(sqrt(intelligence * wisdom)).
// Negative inputs clamp to zero; a negative product would otherwise put
// NaN under the square root.
func (e *Engine) ComputeMind(intelligence, wisdom float64) float64 {
	i := math.Max(0, intelligence)
	w := math.Max(0, wisdom)
	return math.Round(math.Sqrt(i * w))
}

// keyFolder lower-cases and strips diacritics, so sheets authored with
// accented or differently-cased attribute names still resolve the
// Intelligence/Wisdom inputs for Mind. Attribute matching everywhere
// else stays case-sensitive.
var keyFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func foldKey(key string) string {
	folded, _, err := transform.String(keyFolder, key)
	if err != nil {
		folded = key
	}
	return strings.ToLower(folded)
}

// LookupBaseValue reads a base attribute value using the same loose
// key matching Mind derivation uses. Missing attributes read 0.
func (e *Engine) LookupBaseValue(stats map[string]entities.AttributeValue, attribute string) float64 {
	if av, ok := stats[findAttributeKey(stats, attribute)]; ok {
		return av.Value
	}
	return 0
}

// findAttributeKey locates the sheet key that loosely matches want,
// falling back to want itself when the sheet has no such entry. Keys
// are scanned in sorted order so a sheet carrying two keys that fold
// to the same string always resolves to the same one.
func findAttributeKey(stats map[string]entities.AttributeValue, want string) string {
	folded := foldKey(want)
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if foldKey(k) == folded {
			return k
		}
	}
	return want
}
