// Package textkit provides stateless text normalization utilities.
//
// textkit is designed to be imported à la carte. Each subpackage can be used
// independently:
//
//   - charclass: Unicode rune classification (alphanumeric, upper, lower, special)
//   - diacritic: Accented Latin letters to ASCII, one rune for one rune
//   - casing: camelCase and kebab-case conversion with word segmentation
//   - truncate: Rune-safe prefix, suffix and truncation helpers
//   - template: Compiled "{ key }" and "{N}" placeholder templates
//   - catalog: Named template sets loaded from YAML or TOML, with hot reload
//
// # Quick Start
//
// Case conversion:
//
//	import "github.com/randalmurphal/textkit/casing"
//	casing.CamelCase("Rio de Janeiro") // "rioDeJaneiro"
//	casing.KebabCase("fooBar")         // "foo-bar"
//
// ASCII output composes the two steps explicitly:
//
//	import "github.com/randalmurphal/textkit/diacritic"
//	casing.KebabCase(diacritic.ReplaceExtendedASCII("São Paulo")) // "sao-paulo"
//
// Templates:
//
//	import "github.com/randalmurphal/textkit/template"
//	t := template.Compile("https://api.com/{ user_id }")
//	t.Execute(map[string]string{"user_id": "85"}) // "https://api.com/85"
//
// # Design Philosophy
//
// textkit follows these principles:
//
//   - Every transform is pure, total and O(n) in its input
//   - Positions and lengths count runes, never bytes
//   - Compiled values are immutable and safe for concurrent use
//   - Each package usable independently
package textkit
