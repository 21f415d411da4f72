package toon

// Structural literals and punctuation used by TOON-Text.
const (
	colon        = ":"
	comma        = ","
	space        = " "
	newline      = "\n"
	hash         = "#"
	openBracket  = "["
	closeBracket = "]"
	openBrace    = "{"
	closeBrace   = "}"
	doubleQuote  = "\""
	backslash    = "\\"

	nullLiteral  = "null"
	trueLiteral  = "true"
	falseLiteral = "false"
)

// compactMagic is the five-byte TOON-Compact prefix: "TOON" followed by
// version byte 0x01.
var compactMagic = [5]byte{'T', 'O', 'O', 'N', 0x01}

// Tag bytes for the TOON-Compact tagged-value framing.
const (
	tagNull   byte = 0x00
	tagFalse  byte = 0x01
	tagTrue   byte = 0x02
	tagInt64  byte = 0x03
	tagFloat  byte = 0x04
	tagString byte = 0x05
	tagArray  byte = 0x06
	tagObject byte = 0x07
)
