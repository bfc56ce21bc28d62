package loader

import (
	"github.com/ngorogiannis/cyclist/closure"
)

// ParseFlags decodes a flag-letter string into a closure.Flags, validating
// every character against the recognized set {f,s,i,m,D,X,O,K,A} and failing
// with ErrUnknownFlagLetter on the first character outside it. This is the
// strict entry point the CLI uses; closure.ParseFlags itself silently
// ignores unrecognized letters, which suits callers (tests, other packages)
// that build flags programmatically from a string they already trust.
func ParseFlags(s string) (closure.Flags, error) {
	const known = "fsimDXOKA"
	for _, c := range s {
		found := false
		for _, k := range known {
			if c == k {
				found = true
				break
			}
		}
		if !found {
			return 0, loaderErrorf(ErrUnknownFlagLetter, "%q", c)
		}
	}
	return closure.ParseFlags(s), nil
}
