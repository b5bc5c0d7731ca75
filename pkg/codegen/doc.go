// Package codegen generates Go source for the fixedstr package and its users.
//
// Two generators are provided. Storage writes the Storage constraint, the
// union of every array type a fixed string may be backed by. Literals turns
// a manifest of named texts into package-level variables built with
// fixedstr.Lit and its per-width siblings, so the slot count of each value is
// fixed at compile time without writing array literals by hand.
//
// # Manifests
//
// A manifest is read from YAML or TOML, picked by file extension:
//
//	package: greetings
//	normalize: NFC
//	literals:
//	  - name: Hello
//	    text: hello
//	  - name: Clef
//	    text: "𝄞"
//	    width: u16
//	  - name: Buffer
//	    text: hi
//	    slots: 16
//
// Width selects the element type: 8 (byte, the default), u8 (fixedstr.Char8),
// 16 (uint16), 32 (uint32) or wide (rune). Slots defaults to the encoded
// length plus one for the terminator. Text is normalized with
// golang.org/x/text/unicode/norm before encoding.
//
// # Usage
//
//	m, err := codegen.LoadManifest("literals.yaml")
//	if err != nil {
//		return err
//	}
//	gen := codegen.New(codegen.WithLogger(log))
//	if err := gen.Literals(out, m); err != nil {
//		return err
//	}
//
// The Hello entry above becomes:
//
//	Hello = fixedstr.Lit([6]byte{'h', 'e', 'l', 'l', 'o', 0})
//
// # Errors
//
// Validation failures wrap the sentinel errors in errors.go, for example
// ErrSlotsTooSmall when a requested slot count cannot hold the text and its
// terminator, or ErrEmbeddedTerminator when the text contains a zero element.
package codegen
