package argument

import (
	"strconv"
	"strings"
)

// Usage is the help text of an argument. Text holds the rendering without the brackets of an
// optional argument.
type Usage struct {
	Text     string
	Optional bool
}

// Required returns the usage of a mandatory argument called name
func Required(name string) Usage {
	return Usage{Text: "<" + name + ">"}
}

func (u Usage) String() string {
	if u.Optional {
		return "[" + u.Text + "]"
	}
	return u.Text
}

// AsOptional returns u marked optional
func (u Usage) AsOptional() Usage {
	u.Optional = true
	return u
}

// Renamed keeps the optionality of u but displays it as <name>
func (u Usage) Renamed(name string) Usage {
	return Usage{Text: "<" + name + ">", Optional: u.Optional}
}

// Repeated appends the repeat bounds to u. A negative max means unbounded.
func (u Usage) Repeated(min, max int) Usage {
	return Usage{Text: u.Text + "{" + formatBounds(min, max) + "}"}
}

func formatBounds(min, max int) string {
	switch {
	case max < 0 && min <= 0:
		return ".."
	case max < 0:
		return strconv.Itoa(min) + ".."
	case min == max:
		return strconv.Itoa(min)
	case min <= 0:
		return ".." + strconv.Itoa(max)
	default:
		return strconv.Itoa(min) + ".." + strconv.Itoa(max)
	}
}

// JoinUsage joins parts with sep. When every part is optional the result is a single
// optional usage instead of one bracket pair per part.
func JoinUsage(sep string, parts ...Usage) Usage {
	allOptional := len(parts) > 0
	for _, p := range parts {
		allOptional = allOptional && p.Optional
	}

	texts := make([]string, len(parts))
	for i, p := range parts {
		if allOptional {
			texts[i] = p.Text
		} else {
			texts[i] = p.String()
		}
	}

	return Usage{Text: strings.Join(texts, sep), Optional: allOptional}
}
