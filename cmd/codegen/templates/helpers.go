package templates

import (
	"strconv"
	"strings"
)

func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// pairedStrings joins "<left>i<sep><right>i" for i in [0, count).
func pairedStrings(left, sep, right string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(left)
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(sep)
		sb.WriteString(right)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

func typeList(count int) string {
	return prefixedStrings("A", count)
}

func params(count int) string {
	return pairedStrings("a", " ", "A", count)
}

func args(count int) string {
	return prefixedStrings("a", count)
}

func leading(s string) string {
	if s == "" {
		return ""
	}
	return ", " + s
}

func trailing(s string) string {
	if s == "" {
		return ""
	}
	return s + ", "
}

// typeDecl is the type parameter list of a generic declaration, empty when
// there is nothing to parameterise.
func typeDecl(count int) string {
	if count == 0 {
		return ""
	}
	return "[" + typeList(count) + " any]"
}

func typeInst(count int) string {
	if count == 0 {
		return ""
	}
	return "[" + typeList(count) + "]"
}

func describe(count int) string {
	if count == 0 {
		return "no arguments"
	}
	return strconv.Itoa(count) + " argument(s)"
}

func withArgs(count int) string {
	if count == 0 {
		return "no arguments"
	}
	return strconv.Itoa(count) + " arguments"
}

func methodDecl(count int) string {
	if count == 0 {
		return "[T Receiver]"
	}
	return "[T Receiver, " + typeList(count) + " any]"
}

func argsFields(count int) string {
	if count == 0 {
		return "struct{}"
	}
	var sb strings.Builder
	sb.WriteString("struct {\n")
	for i := 0; i < count; i++ {
		sb.WriteString("\tV")
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(" A")
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString("\n")
	}
	sb.WriteString("}")
	return sb.String()
}

func argsInit(count int) string {
	return pairedStrings("V", ": a", "", count)
}

func argsSpread(count int) string {
	return prefixedStrings("arg.V", count)
}

func argName(count int) string {
	if count == 0 {
		return "_"
	}
	return "arg"
}

// arities lists the fixed arity signals to generate. Arity 1 is Signal[A]
// itself and never generated.
func arities(max int) []int {
	out := []int{0}
	for i := 2; i <= max; i++ {
		out = append(out, i)
	}
	return out
}
