package codegen

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize applies the named Unicode normalization form to text.
// Accepted forms are NFC, NFD, NFKC, NFKD and none; the empty name means none.
func Normalize(form, text string) (string, error) {
	switch strings.ToUpper(strings.TrimSpace(form)) {
	case "", "NONE":
		return text, nil
	case "NFC":
		return norm.NFC.String(text), nil
	case "NFD":
		return norm.NFD.String(text), nil
	case "NFKC":
		return norm.NFKC.String(text), nil
	case "NFKD":
		return norm.NFKD.String(text), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownForm, form)
	}
}
