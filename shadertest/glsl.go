package shadertest

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	versionRe = regexp.MustCompile(`(?m)^[ \t]*#version[ \t]+\d+`)
	mainRe    = regexp.MustCompile(`\bvoid\s+main\s*\(\s*(void)?\s*\)`)
	declRe    = regexp.MustCompile(`(?m)^[ \t]*(?:layout\s*\([^)]*\)\s*)?(?:flat\s+|smooth\s+|noperspective\s+)?(in|out|uniform)\s+(?:(?:lowp|mediump|highp)\s+)?(\w+)\s+(\w+)\s*(?:\[[^\]]*\])?\s*;`)
	commentRe = regexp.MustCompile(`(?s)//[^\n]*|/\*.*?\*/`)
)

// declarations are the interface variables of one stage.
type declarations struct {
	inputs         []string
	outputs        []string
	activeUniforms []string
}

// check returns a compiler log for source, or "" if it compiles.
func check(source string) string {
	code := commentRe.ReplaceAllString(source, "")
	if !versionRe.MatchString(code) {
		return "0:1(1): error: missing #version directive\n"
	}
	if line, ok := unbalanced(code); ok {
		return fmt.Sprintf("0:%d(1): error: syntax error, unbalanced braces or parentheses\n", line)
	}
	if !mainRe.MatchString(code) {
		return "0:0(0): error: function `main' is not defined\n"
	}
	return ""
}

// unbalanced reports the line of the first unmatched bracket.
func unbalanced(code string) (int, bool) {
	var stack []rune
	line := 1
	pairs := map[rune]rune{'}': '{', ')': '('}
	for _, c := range code {
		switch c {
		case '\n':
			line++
		case '{', '(':
			stack = append(stack, c)
		case '}', ')':
			if len(stack) == 0 || stack[len(stack)-1] != pairs[c] {
				return line, true
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) > 0 {
		return line, true
	}
	return 0, false
}

func scan(source string) declarations {
	code := commentRe.ReplaceAllString(source, "")
	var d declarations
	for _, m := range declRe.FindAllStringSubmatch(code, -1) {
		qualifier, name := m[1], m[3]
		switch qualifier {
		case "in":
			d.inputs = append(d.inputs, name)
		case "out":
			d.outputs = append(d.outputs, name)
		case "uniform":
			if referenced(code, name) {
				d.activeUniforms = append(d.activeUniforms, name)
			}
		}
	}
	return d
}

// referenced reports whether name appears outside its own declaration.
func referenced(code, name string) bool {
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`)
	return len(re.FindAllStringIndex(code, -1)) > 1
}

// linkInterface returns a linker log if a fragment input has no matching
// vertex output.
func linkInterface(vertex, fragment declarations) string {
	outputs := make(map[string]bool, len(vertex.outputs))
	for _, name := range vertex.outputs {
		outputs[name] = true
	}
	var b strings.Builder
	for _, name := range fragment.inputs {
		if !outputs[name] {
			fmt.Fprintf(&b, "error: fragment shader input `%s' has no matching vertex shader output\n", name)
		}
	}
	return b.String()
}
