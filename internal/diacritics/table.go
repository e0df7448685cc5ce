package diacritics

// letters maps code points that survive NFKD unchanged to their base
// letters. Read-only after init.
var letters = map[rune]string{
	// upper case
	'Ⱥ': "A", 'Ɐ': "A",
	'Ꜳ': "AA", 'Æ': "AE", 'Ǽ': "AE", 'Ǣ': "AE", 'Ꜵ': "AO", 'Ꜷ': "AU",
	'Ꜹ': "AV", 'Ꜻ': "AV", 'Ꜽ': "AY",
	'Ƀ': "B", 'Ƃ': "B", 'Ɓ': "B",
	'Ƈ': "C", 'Ȼ': "C", 'Ꜿ': "C",
	'Đ': "D", 'Ƌ': "D", 'Ɗ': "D", 'Ɖ': "D", 'Ꝺ': "D",
	'Ɛ': "E", 'Ǝ': "E",
	'Ƒ': "F", 'Ꝼ': "F",
	'Ǥ': "G", 'Ɠ': "G", 'Ꞡ': "G", 'Ᵹ': "G", 'Ꝿ': "G",
	'Ħ': "H", 'Ⱨ': "H", 'Ⱶ': "H", 'Ɥ': "H",
	'Ɨ': "I",
	'Ɉ': "J",
	'Ƙ': "K", 'Ⱪ': "K", 'Ꝁ': "K", 'Ꝃ': "K", 'Ꝅ': "K", 'Ꞣ': "K",
	'Ł': "L", 'Ƚ': "L", 'Ɫ': "L", 'Ⱡ': "L", 'Ꝉ': "L", 'Ꝇ': "L", 'Ꞁ': "L",
	'Ɱ': "M", 'Ɯ': "M",
	'Ƞ': "N", 'Ɲ': "N", 'Ꞑ': "N", 'Ꞥ': "N",
	'Ø': "O", 'Ǿ': "O", 'Ɔ': "O", 'Ɵ': "O", 'Ꝋ': "O", 'Ꝍ': "O",
	'Ƣ': "OI", 'Ꝏ': "OO", 'Ȣ': "OU", 'Œ': "OE",
	'Ƥ': "P", 'Ᵽ': "P", 'Ꝑ': "P", 'Ꝓ': "P", 'Ꝕ': "P",
	'Ꝗ': "Q", 'Ꝙ': "Q", 'Ɋ': "Q",
	'Ɍ': "R", 'Ɽ': "R", 'Ꝛ': "R", 'Ꞧ': "R", 'Ꞃ': "R",
	'ẞ': "S", 'Ȿ': "S", 'Ꞩ': "S", 'Ꞅ': "S",
	'Ŧ': "T", 'Ƭ': "T", 'Ʈ': "T", 'Ⱦ': "T", 'Ꞇ': "T",
	'Ꜩ': "TZ",
	'Ʉ': "U",
	'Ʋ': "V", 'Ꝟ': "V", 'Ʌ': "V",
	'Ꝡ': "VY",
	'Ⱳ': "W",
	'Ƴ': "Y", 'Ɏ': "Y", 'Ỿ': "Y",
	'Ƶ': "Z", 'Ȥ': "Z", 'Ɀ': "Z", 'Ⱬ': "Z", 'Ꝣ': "Z",

	// lower case
	'ⱥ': "a", 'ɐ': "a",
	'ꜳ': "aa", 'æ': "ae", 'ǽ': "ae", 'ǣ': "ae", 'ꜵ': "ao", 'ꜷ': "au",
	'ꜹ': "av", 'ꜻ': "av", 'ꜽ': "ay",
	'ƀ': "b", 'ƃ': "b", 'ɓ': "b",
	'ƈ': "c", 'ȼ': "c", 'ꜿ': "c", 'ↄ': "c",
	'đ': "d", 'ƌ': "d", 'ɖ': "d", 'ɗ': "d", 'ꝺ': "d",
	'ɇ': "e", 'ɛ': "e", 'ǝ': "e",
	'ƒ': "f", 'ꝼ': "f",
	'ǥ': "g", 'ɠ': "g", 'ꞡ': "g", 'ᵹ': "g", 'ꝿ': "g",
	'ħ': "h", 'ⱨ': "h", 'ⱶ': "h", 'ɥ': "h",
	'ƕ': "hv",
	'ɨ': "i", 'ı': "i",
	'ɉ': "j",
	'ƙ': "k", 'ⱪ': "k", 'ꝁ': "k", 'ꝃ': "k", 'ꝅ': "k", 'ꞣ': "k",
	'ł': "l", 'ƚ': "l", 'ɫ': "l", 'ⱡ': "l", 'ꝉ': "l", 'ꞁ': "l", 'ꝇ': "l",
	'ɱ': "m", 'ɯ': "m",
	'ƞ': "n", 'ɲ': "n", 'ꞑ': "n", 'ꞥ': "n",
	'ø': "o", 'ǿ': "o", 'ɔ': "o", 'ꝋ': "o", 'ꝍ': "o", 'ɵ': "o",
	'ƣ': "oi", 'ȣ': "ou", 'ꝏ': "oo", 'œ': "oe",
	'ƥ': "p", 'ᵽ': "p", 'ꝑ': "p", 'ꝓ': "p", 'ꝕ': "p",
	'ɋ': "q", 'ꝗ': "q", 'ꝙ': "q",
	'ɍ': "r", 'ɽ': "r", 'ꝛ': "r", 'ꞧ': "r", 'ꞃ': "r",
	'ß': "s", 'ȿ': "s", 'ꞩ': "s", 'ꞅ': "s",
	'ŧ': "t", 'ƭ': "t", 'ʈ': "t", 'ⱦ': "t", 'ꞇ': "t",
	'ꜩ': "tz",
	'ʉ': "u",
	'ʋ': "v", 'ꝟ': "v", 'ʌ': "v",
	'ꝡ': "vy",
	'ⱳ': "w",
	'ƴ': "y", 'ɏ': "y", 'ỿ': "y",
	'ƶ': "z", 'ȥ': "z", 'ɀ': "z", 'ⱬ': "z", 'ꝣ': "z",
}
