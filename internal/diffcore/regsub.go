package diffcore

import (
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
)

// applyRegsub runs each (pattern, replacement) pair over s in order,
// supporting backreferences (&, \0..\9) in the replacement. A pattern
// that fails to compile is silently skipped -- "Silent failure on regex
// error (original string retained)" (spec.md S4.1 step 2).
func applyRegsub(s string, rules []RegsubRule) string {
	for _, rule := range rules {
		re, err := regexp2.Compile(rule.Pattern, regexp2.None)
		if err != nil {
			continue
		}
		out, err := regsubAll(re, s, rule.Replacement)
		if err != nil {
			continue
		}
		s = out
	}
	return s
}

// regsubAll replaces every match of re in s with replacement, expanding
// & and \0..\9 backreferences (\0 and & both mean "the whole match").
func regsubAll(re *regexp2.Regexp, s, replacement string) (string, error) {
	var b strings.Builder
	last := 0
	m, err := re.FindStringMatch(s)
	if err != nil {
		return "", err
	}
	for m != nil {
		b.WriteString(s[last:m.Index])
		b.WriteString(expandBackrefs(m, replacement))
		last = m.Index + m.Length
		if m.Length == 0 {
			// avoid an infinite loop on a zero-width match
			if last < len(s) {
				b.WriteByte(s[last])
				last++
			} else {
				break
			}
		}
		m, err = re.FindNextMatch(m)
		if err != nil {
			return "", err
		}
	}
	b.WriteString(s[last:])
	return b.String(), nil
}

func expandBackrefs(m *regexp2.Match, replacement string) string {
	var b strings.Builder
	groups := m.Groups()
	for i := 0; i < len(replacement); i++ {
		c := replacement[i]
		if c == '&' {
			b.WriteString(m.String())
			continue
		}
		if c == '\\' && i+1 < len(replacement) {
			next := replacement[i+1]
			if next >= '0' && next <= '9' {
				idx, _ := strconv.Atoi(string(next))
				if idx < len(groups) {
					b.WriteString(groups[idx].String())
				}
				i++
				continue
			}
			if next == '\\' {
				b.WriteByte('\\')
				i++
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}
