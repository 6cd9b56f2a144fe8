package diacritic

// families groups accented letters by the ASCII letter they fold to.
// Only letters with a single-letter ASCII equivalent are listed, so a
// replacement never changes the rune count.
var families = map[rune]string{
	'A': "ÀÁÂÃÄÅĀĂĄǍǺȀȂȦ",
	'a': "àáâãäåāăąǎǻȁȃȧ",
	'C': "ÇĆĈĊČ",
	'c': "çćĉċč",
	'D': "ĎĐ",
	'd': "ďđ",
	'E': "ÈÉÊËĒĔĖĘĚȄȆȨ",
	'e': "èéêëēĕėęěȅȇȩ",
	'G': "ĜĞĠĢǦǴ",
	'g': "ĝğġģǧǵ",
	'H': "ĤĦȞ",
	'h': "ĥħȟ",
	'I': "ÌÍÎÏĨĪĬĮİǏȈȊ",
	'i': "ìíîïĩīĭįıǐȉȋ",
	'J': "Ĵ",
	'j': "ĵǰ",
	'K': "ĶǨ",
	'k': "ķǩ",
	'L': "ĹĻĽĿŁ",
	'l': "ĺļľŀł",
	'N': "ÑŃŅŇǸ",
	'n': "ñńņňǹ",
	'O': "ÒÓÔÕÖØŌŎŐǑǾȌȎȮ",
	'o': "òóôõöøōŏőǒǿȍȏȯ",
	'R': "ŔŖŘȐȒ",
	'r': "ŕŗřȑȓ",
	'S': "ŚŜŞŠȘ",
	's': "śŝşšș",
	'T': "ŢŤŦȚ",
	't': "ţťŧț",
	'U': "ÙÚÛÜŨŪŬŮŰŲǓǕǗǙǛȔȖ",
	'u': "ùúûüũūŭůűųǔǖǘǚǜȕȗ",
	'W': "Ŵ",
	'w': "ŵ",
	'Y': "ÝŶŸȲ",
	'y': "ýÿŷȳ",
	'Z': "ŹŻŽ",
	'z': "źżž",
}

// table maps each accented letter to its ASCII replacement.
// It is built once and never written afterwards.
var table = buildTable()

func buildTable() map[rune]rune {
	m := make(map[rune]rune, 400)
	for base, accented := range families {
		for _, r := range accented {
			m[r] = base
		}
	}
	return m
}
