package domain

import (
	"strings"
)

// Kebabize converts a registry export name to its lookup key.
//
// A hyphen is inserted before every run of capitals that is not followed by a
// lowercase letter, and before every single capital that starts a word; the
// result is lowercased. A run followed by a lowercase letter gives up its last
// capital to the next word, so "BSCTestnet" becomes "bsc-testnet".
//
//	ArbitrumOne -> arbitrum-one
//	BSC         -> bsc
//	opBNB       -> op-bnb
func Kebabize(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)

	for i := 0; i < len(name); {
		if !isUpper(name[i]) {
			b.WriteByte(name[i])
			i++
			continue
		}

		j := i
		for j < len(name) && isUpper(name[j]) {
			j++
		}
		end := j
		if j < len(name) && isLower(name[j]) && j-i > 1 {
			end = j - 1
		}

		if i > 0 {
			b.WriteByte('-')
		}
		b.WriteString(strings.ToLower(name[i:end]))
		i = end
	}

	return b.String()
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
