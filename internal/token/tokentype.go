package token

type TokenType int

const (
	WORD TokenType = iota
	LEFT_BRACE
	RIGHT_BRACE
	EQUAL

	// Keywords.
	FUNC
	STRING
	INT
	FLOAT
	BOOL
)

var tokenTypeNames = [...]string{
	WORD:        "WORD",
	LEFT_BRACE:  "LEFT_BRACE",
	RIGHT_BRACE: "RIGHT_BRACE",
	EQUAL:       "EQUAL",
	FUNC:        "FUNC",
	STRING:      "STRING",
	INT:         "INT",
	FLOAT:       "FLOAT",
	BOOL:        "BOOL",
}

var keywords = map[string]TokenType{
	"func":   FUNC,
	"string": STRING,
	"int":    INT,
	"float":  FLOAT,
	"bool":   BOOL,
	"{":      LEFT_BRACE,
	"}":      RIGHT_BRACE,
	"=":      EQUAL,
}

// Lookup classifies a word. Anything that is not a keyword or a
// punctuation word is a WORD.
func Lookup(word string) TokenType {
	if t, ok := keywords[word]; ok {
		return t
	}
	return WORD
}

// IsPrimitiveType reports whether t introduces a typed variable declaration.
func (t TokenType) IsPrimitiveType() bool {
	switch t {
	case STRING, INT, FLOAT, BOOL:
		return true
	}
	return false
}

func (t TokenType) String() string {
	if t >= 0 && int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "UNKNOWN"
}
