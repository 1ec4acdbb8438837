package constants

// HalfWidthKana is the half-width katakana block U+FF61..U+FF9D
const HalfWidthKana = "｡｢｣､･" +
	"ｦｧｨｩｪｫｬｭｮｯ" +
	"ｰ" +
	"ｱｲｳｴｵ" +
	"ｶｷｸｹｺ" +
	"ｻｼｽｾｿ" +
	"ﾀﾁﾂﾃﾄ" +
	"ﾅﾆﾇﾈﾉ" +
	"ﾊﾋﾌﾍﾎ" +
	"ﾏﾐﾑﾒﾓ" +
	"ﾔﾕﾖ" +
	"ﾗﾘﾙﾚﾛ" +
	"ﾜﾝ"

// UpperAlphanumeric contains A-Z followed by 0-9
const UpperAlphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// ReversedAlphabet contains Z-A
const ReversedAlphabet = "ZYXWVUTSRQPONMLKJIHGFEDCBA"
