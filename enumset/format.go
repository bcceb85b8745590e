package enumset

import (
	"strconv"
	"strings"
)

// String returns a description of s in the form "Name(2){A, B}".
//
// If the domain uses the compact format, the members are summarized rather
// than listed, as in "Name(2){/* 2 items */}".
func (s Set[S, W]) String() string {
	return s.format(false)
}

// GoString returns a multi-line description of s. It is used by the %#v verb.
func (s Set[S, W]) GoString() string {
	return s.format(true)
}

func (s Set[S, W]) format(pretty bool) string {
	d := domainOf[S, W]()
	n := s.Len()

	var w strings.Builder
	w.WriteString(d.Name())

	if pretty {
		w.WriteString(" (")
		w.WriteString(strconv.Itoa(n))
		w.WriteString(") ")
	} else {
		w.WriteString("(")
		w.WriteString(strconv.Itoa(n))
		w.WriteString(")")
	}

	switch {
	case n == 0:
		w.WriteString("{}")
	case d.CompactFormat():
		w.WriteString("{/* ")
		w.WriteString(strconv.Itoa(n))
		if n == 1 {
			w.WriteString(" item */}")
		} else {
			w.WriteString(" items */}")
		}
	case pretty:
		w.WriteString("{\n")
		for _, name := range s.Names() {
			w.WriteString("    ")
			w.WriteString(name)
			w.WriteString(",\n")
		}
		w.WriteString("}")
	default:
		w.WriteString("{")
		w.WriteString(strings.Join(s.Names(), ", "))
		w.WriteString("}")
	}

	return w.String()
}
