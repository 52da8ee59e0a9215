package pathutil

import (
	"regexp"
	"strconv"
	"strings"
)

// Root is the location of the document itself.
const Root = "$"

// Key returns the location of member key inside the object at parent.
func Key(parent, key string) string {
	if isIdentifier(key) {
		return parent + "." + key
	}
	var b strings.Builder
	b.Grow(len(parent) + len(key) + 4)
	b.WriteString(parent)
	b.WriteString("['")
	for i := 0; i < len(key); i++ {
		c := key[i]
		if c == '\'' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteString("']")
	return b.String()
}

// Index returns the location of element i inside the array at parent.
func Index(parent string, i int) string {
	return parent + "[" + strconv.Itoa(i) + "]"
}

func isIdentifier(key string) bool {
	if key == "" {
		return false
	}
	for i := 0; i < len(key); i++ {
		c := key[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_', c == '$':
		case c >= '0' && c <= '9', c == '-':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// TemplateParamRegex matches {name} placeholders in path and server URL templates.
var TemplateParamRegex = regexp.MustCompile(`\{[^{}]*\}`)
