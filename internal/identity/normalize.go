package identity

import "strings"

// placeholderTokens are literal strings that upstream extraction emits for
// absent values. They normalize to the empty string.
var placeholderTokens = map[string]struct{}{
	"nan":  {},
	"none": {},
	"null": {},
}

// generationalSuffixes lists the surname suffixes stripped by NormalizeLast,
// ordered longest first so " iii" is never partially consumed by " ii".
// Suffixes match only at the end of the string.
var generationalSuffixes = []string{
	", jr.", ", sr.", ", iii",
	", jr", ", sr", ", ii", ", iv", " jr.", " sr.", " iii",
	", v", " jr", " sr", " ii", " iv",
	" v",
}

// NormalizeText trims and lowercases a raw field value. Placeholder tokens
// and whitespace-only input normalize to "".
func NormalizeText(value string) string {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if _, ok := placeholderTokens[normalized]; ok {
		return ""
	}
	return normalized
}

// NormalizeFirst returns the canonical comparison form of a first name: the
// first whitespace-delimited token of the normalized text. "Mary Ann" and
// "Mary" both normalize to "mary"; this permissive policy is deliberate.
func NormalizeFirst(value string) string {
	normalized := NormalizeText(value)
	if normalized == "" {
		return ""
	}
	if fields := strings.Fields(normalized); len(fields) > 0 {
		return fields[0]
	}
	return ""
}

// NormalizeLast returns the canonical comparison form of a surname: the
// normalized text with one trailing generational suffix removed.
func NormalizeLast(value string) string {
	normalized := NormalizeText(value)
	if normalized == "" {
		return ""
	}
	for _, suffix := range generationalSuffixes {
		if strings.HasSuffix(normalized, suffix) {
			return strings.TrimSpace(strings.TrimSuffix(normalized, suffix))
		}
	}
	return normalized
}
