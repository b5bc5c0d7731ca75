package codegen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
)

// Width selects the element type of a generated literal.
type Width string

// Supported widths. Aliases are accepted by ParseWidth.
const (
	Narrow Width = "8"
	UTF8   Width = "u8"
	UTF16  Width = "16"
	UTF32  Width = "32"
	Wide   Width = "wide"
)

type widthInfo struct {
	ctor   string
	elem   string
	digits int
	encode func(string) []uint32
}

var widths = map[Width]widthInfo{
	Narrow: {ctor: "Lit", elem: "byte", digits: 2, encode: encodeBytes},
	UTF8:   {ctor: "U8Lit", elem: "fixedstr.Char8", digits: 2, encode: encodeBytes},
	UTF16:  {ctor: "U16Lit", elem: "uint16", digits: 4, encode: encodeUTF16},
	UTF32:  {ctor: "U32Lit", elem: "uint32", digits: 8, encode: encodeRunes},
	Wide:   {ctor: "WLit", elem: "rune", digits: 8, encode: encodeRunes},
}

var widthAliases = map[string]Width{
	"":      Narrow,
	"8":     Narrow,
	"char":  Narrow,
	"u8":    UTF8,
	"utf8":  UTF8,
	"16":    UTF16,
	"u16":   UTF16,
	"utf16": UTF16,
	"32":    UTF32,
	"u32":   UTF32,
	"utf32": UTF32,
	"wide":  Wide,
	"w":     Wide,
}

// ParseWidth resolves a width name or alias. An empty name means Narrow.
func ParseWidth(name string) (Width, error) {
	w, ok := widthAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownWidth, name)
	}
	return w, nil
}

// Encode returns the code units of text for width w.
func (w Width) Encode(text string) []uint32 {
	return widths[w].encode(text)
}

func encodeBytes(text string) []uint32 {
	units := make([]uint32, len(text))
	for i := 0; i < len(text); i++ {
		units[i] = uint32(text[i])
	}
	return units
}

func encodeUTF16(text string) []uint32 {
	enc := utf16.Encode([]rune(text))
	units := make([]uint32, len(enc))
	for i, u := range enc {
		units[i] = uint32(u)
	}
	return units
}

func encodeRunes(text string) []uint32 {
	runes := []rune(text)
	units := make([]uint32, len(runes))
	for i, r := range runes {
		units[i] = uint32(r)
	}
	return units
}

// element renders one code unit as a Go constant expression.
func (w Width) element(u uint32) string {
	switch {
	case u == 0:
		return "0"
	case u >= 0x20 && u < 0x7f:
		return strconv.QuoteRune(rune(u))
	default:
		return fmt.Sprintf("0x%0*x", widths[w].digits, u)
	}
}
