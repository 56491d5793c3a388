package unire

import (
	"strconv"
	"strings"

	"github.com/avigne/unire/util"
)

// expand writes the expansion of a replacement template to b.
// Supported references are $$ for a literal dollar sign, $1 for a group
// number and ${1} or ${name} for a braced group number or name.
// References to groups that did not participate in the match expand to "".
// A dollar sign that does not start a valid reference is kept as is.
func (re *Regexp) expand(b *strings.Builder, template, src string, a []int) {
	for {
		i := strings.IndexByte(template, '$')
		if i < 0 {
			b.WriteString(template)
			return
		}

		b.WriteString(template[:i])
		template = template[i+1:]

		if template == "" {
			b.WriteByte('$')
			return
		}

		if template[0] == '$' {
			b.WriteByte('$')
			template = template[1:]
			continue
		}

		gid, rest, ok := re.groupRef(template)
		if !ok {
			b.WriteByte('$')
			continue
		}

		template = rest

		if 2*gid+1 < len(a) && a[2*gid] >= 0 {
			b.WriteString(src[a[2*gid]:a[2*gid+1]])
		}
	}
}

// groupRef parses a group reference at the start of the template, after the
// dollar sign has been consumed.
func (re *Regexp) groupRef(template string) (int, string, bool) {
	if strings.HasPrefix(template, "{") {
		name, rest, ok := strings.Cut(template[1:], "}")
		if !ok || name == "" {
			return 0, template, false
		}

		if gid, err := strconv.Atoi(name); err == nil && gid >= 0 {
			return gid, rest, true
		}

		gid := re.SubexpIndex(name)
		if gid < 0 {
			return 0, template, false
		}

		return gid, rest, true
	}

	i := 0
	for i < len(template) && util.IsDigit(template[i]) {
		i++
	}
	if i == 0 {
		return 0, template, false
	}

	gid, err := strconv.Atoi(template[:i])
	if err != nil {
		return 0, template, false
	}

	return gid, template[i:], true
}
