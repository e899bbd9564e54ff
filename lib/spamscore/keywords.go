package spamscore

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
)

// defaultKeywords is the built-in spam vocabulary.
// "risk-free" and "act now" never match a single token, kept as is for compatibility
// with existing scores.
var defaultKeywords = []string{
	"free", "win", "winner", "won", "prize", "money", "cash", "lottery", "million",
	"dollar", "investment", "profit", "guaranteed", "risk-free", "casino", "gambling",
	"click", "limited", "offer", "expires", "urgent", "act now", "congratulations",
	"inheritance", "bank", "account", "password", "verify", "suspicious", "unusual",
	"security", "update", "confirm", "login", "credential",
}

// DefaultKeywords returns a sorted copy of the built-in spam keywords
func DefaultKeywords() []string {
	res := make([]string, len(defaultKeywords))
	copy(res, defaultKeywords)
	sort.Strings(res)
	return res
}

// LoadKeywords reads keywords from a reader, one keyword per line.
// Lines are trimmed and lowercased, empty lines and lines starting with # are skipped.
func LoadKeywords(r io.Reader) ([]string, error) {
	res := []string{}
	seen := map[string]struct{}{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		kw := strings.ToLower(strings.Trim(scanner.Text(), " \n\r\t"))
		if kw == "" || strings.HasPrefix(kw, "#") {
			continue
		}
		if _, ok := seen[kw]; ok {
			continue
		}
		seen[kw] = struct{}{}
		res = append(res, kw)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read keywords: %w", err)
	}
	return res, nil
}
