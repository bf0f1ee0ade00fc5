package pointer

import "unicode"

// CamelCase is the naming policy that lower-cases the leading upper-case run
// of a declared field name: "Value" becomes "value", "URLValue" becomes
// "urlValue". Names not starting with an upper-case letter pass through
// unchanged.
func CamelCase(declared string) string {
	runes := []rune(declared)
	if len(runes) == 0 || !unicode.IsUpper(runes[0]) {
		return declared
	}
	for i := 0; i < len(runes); i++ {
		if !unicode.IsUpper(runes[i]) {
			break
		}
		// Keep the capital that starts the next word.
		if i > 0 && i+1 < len(runes) && !unicode.IsUpper(runes[i+1]) {
			break
		}
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}
