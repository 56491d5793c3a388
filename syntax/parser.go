package syntax

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/avigne/unire/ucp"
	"github.com/avigne/unire/util"
)

// Error is a pattern syntax error. Pos is the byte offset into the pattern
// at which the error was detected.
type Error struct {
	Msg string
	Pos int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at position %d", e.Msg, e.Pos)
}

type state struct {
	flags            int
	groupdict        map[string]int
	groupwidths      []bool
	lookbehindgroups int
	grouprefpos      map[int]int
}

func (s *state) init(flags int) {
	s.flags = flags
	s.groupdict = make(map[string]int)
	s.groupwidths = []bool{false}
	s.lookbehindgroups = -1
	s.grouprefpos = make(map[int]int)
}

func (s *state) groups() int {
	return len(s.groupwidths)
}

func (s *state) opengroup(name string) (int, error) {
	gid := s.groups()
	s.groupwidths = append(s.groupwidths, false)
	if s.groups() > maxGroups {
		return 0, &Error{Msg: "too many groups"}
	}
	if name != "" {
		ogid, ok := s.groupdict[name]
		if ok {
			return 0, &Error{Msg: fmt.Sprintf("redefinition of group name '%s' as group %d; was group %d", name, gid, ogid)}
		}

		s.groupdict[name] = gid
	}

	return gid, nil
}

func (s *state) closegroup(gid int) {
	s.groupwidths[gid] = true
}

func (s *state) checkgroup(gid int) bool {
	return gid < s.groups() && s.groupwidths[gid]
}

func (s *state) checklookbehindgroup(gid int) error {
	if s.lookbehindgroups != -1 {
		if !s.checkgroup(gid) {
			return &Error{Msg: "cannot refer to an open group"}
		}
		if gid >= s.lookbehindgroups {
			return &Error{Msg: "cannot refer to group defined in the same lookbehind subpattern"}
		}
	}

	return nil
}

func parse(str string, flags int) (*subPattern, error) {
	var state state
	state.init(flags)

	var s source
	s.init(str)

	p, err := parseSub(&s, &state, state.flags&FlagExtended != 0, 0)
	if err != nil {
		return nil, patternError(err, &s)
	}

	if _, ok := s.peek(); ok {
		return nil, patternError(&Error{Msg: "unbalanced parenthesis"}, &s)
	}

	for g := range p.state.grouprefpos {
		if g >= p.state.groups() {
			return nil, &Error{Msg: fmt.Sprintf("invalid group reference %d", g), Pos: p.state.grouprefpos[g]}
		}
	}

	return p, nil
}

// patternError attaches the current pattern position to the error.
func patternError(err error, s *source) error {
	if e, ok := err.(*Error); ok {
		if e.Pos == 0 {
			e.Pos = s.tell()
		}
		return e
	}

	return &Error{Msg: err.Error(), Pos: s.tell()}
}

func parseSub(s *source, state *state, verbose bool, nested int) (*subPattern, error) {
	// parse an alternation: a|b|c

	var items []*subPattern

	for {
		t, err := parseInternal(s, state, verbose, nested+1, nested == 0 && len(items) == 0)
		if err != nil {
			return nil, err
		}

		items = append(items, t)

		if !s.match('|') {
			break
		}

		if nested == 0 {
			verbose = state.flags&FlagExtended != 0
		}
	}

	if len(items) == 1 {
		return items[0], nil
	}

	sp := newSubpattern(state)

	// check if all items share a common prefix
	for {
		var prefix *node
		hasPrefix := true

		for _, item := range items {
			if item.len() == 0 {
				hasPrefix = false
				break
			}

			if prefix == nil {
				prefix = item.get(0)
			} else if !item.get(0).equals(prefix) {
				hasPrefix = false
				break
			}
		}

		if hasPrefix {
			// all subitems start with a common "prefix".
			// move it out of the branch
			for _, item := range items {
				item.del(0)
			}
			sp.append(prefix)
			continue // check next one
		}

		break
	}

	appendSub := true

	// check if the branch can be replaced by a character set
	var set []*node
	for _, item := range items {
		if item.len() != 1 {
			appendSub = false
			break
		}
		t := item.get(0)
		op := t.opcode
		if op == opLiteral {
			set = append(set, t)
		} else if op == opIn && t.items()[0].opcode != opNegate {
			set = append(set, t.items()...)
		} else {
			appendSub = false
			break
		}
	}

	if appendSub {
		// we can store this as a character set instead of a
		// branch (the compiler may optimize this even more)
		sp.append(newInNode(unique(set)))
	} else {
		sp.append(newBranchNode(items))
	}

	return sp, nil
}

func unique(items []*node) []*node {
	m := make(map[opcode][]*node)

	for _, t := range items {
		if l, ok := m[t.opcode]; ok {
			add := true
			for _, i := range l {
				if i.equals(t) {
					add = false
					break
				}
			}

			if add {
				m[t.opcode] = append(l, t)
			}
		} else {
			m[t.opcode] = []*node{t}
		}
	}

	var res []*node
	for _, l := range m {
		res = append(res, l...)
	}

	return res
}

func parseInternal(s *source, state *state, verbose bool, nested int, first bool) (*subPattern, error) {
	// parse a simple pattern

	sp := newSubpattern(state)

	var err error
	for {
		c, ok := s.peek()
		if !ok {
			break // end of pattern
		}

		if c == '|' || c == ')' { // end of subpattern
			break
		}

		s.read()

		if verbose {
			// skip whitespace and comments
			if isWhitespace(c) {
				continue
			}
			if c == '#' {
				s.skipLine()
				continue
			}
		}

		switch c {
		default:
			sp.append(newLiteral(c))
		// ')', '|' already handled
		case '\\':
			t, err := parseEscape(s, state, false /* not class */)
			if err != nil {
				return nil, err
			}

			sp.append(t)
		case '[':
			t, err := parseSet(s, state)
			if err != nil {
				return nil, err
			}

			sp.append(t)

		case '*', '+', '?', '{':
			// repeat previous item
			here := s.str()

			var min, max int
			switch c {
			case '?':
				min, max = 0, 1
			case '*':
				min, max = 0, maxRepeat
			case '+':
				min, max = 1, maxRepeat
			case '{':
				if next, ok := s.peek(); ok && next == '}' {
					sp.append(newLiteral(c))
					continue
				}

				min = s.nextInt()

				if s.match(',') {
					if next, ok := s.peek(); ok && isDigit(next) {
						max = s.nextInt()
					} else {
						max = maxRepeat
					}
				} else {
					max = min
				}

				if !s.match('}') {
					sp.append(newLiteral(c))
					s.restore(here)
					continue
				}

				if min > maxRepeat || max > maxRepeat {
					return nil, &Error{Msg: "the repetition number is too large"}
				}
				if max < min {
					return nil, &Error{Msg: "min repeat greater than max repeat"}
				}
			}

			// figure out which item to repeat
			var item *node
			if sp.len() > 0 {
				item = sp.get(-1)
			}
			if item == nil || item.opcode == opAt {
				return nil, &Error{Msg: "nothing to repeat"}
			}
			if isRepeatCode(item.opcode) {
				return nil, &Error{Msg: "multiple repeat"}
			}

			var subitem *subPattern
			if item.opcode == opSubpattern {
				p := item.params.(subPatternParams)
				if p.group == -1 && p.addFlags == 0 && p.delFlags == 0 {
					subitem = p.p
				}
			}
			if subitem == nil {
				subitem = newSubpattern(state)
				subitem.append(item)
			}

			if s.match('?') {
				// lazy match
				sp.set(-1, newRepeatNode(opMinRepeat, min, max, subitem))
			} else if s.match('+') {
				// possessive match (always greedy)
				sp.set(-1, newRepeatNode(opPossessiveRepeat, min, max, subitem))
			} else {
				// greedy match
				sp.set(-1, newRepeatNode(opMaxRepeat, min, max, subitem))
			}

		case '.':
			sp.append(newEmptyNode(opAny))

		case '(':
			capture := true
			atomic := false
			name := ""
			addFlags := 0
			delFlags := 0

			if s.match('?') {
				// options
				char, ok := s.read()
				if !ok {
					return nil, &Error{Msg: "unexpected end of pattern"}
				}

				switch char {
				case 'P':
					// legacy named group syntax
					if s.match('<') {
						// named group: skip forward to end of name
						name, err = s.getUntil('>', "group name")
						if err != nil {
							return nil, err
						}

						err = checkgroupname(name)
						if err != nil {
							return nil, err
						}
					} else if s.match('=') {
						// named backreference
						name, err = s.getUntil(')', "group name")
						if err != nil {
							return nil, err
						}

						t, err := namedGroupref(state, name)
						if err != nil {
							return nil, err
						}

						sp.append(t)
						continue

					} else {
						char, ok = s.read()
						if !ok {
							return nil, &Error{Msg: "unexpected end of pattern"}
						}

						return nil, &Error{Msg: fmt.Sprintf("unknown extension ?P%c", char)}
					}
				case ':':
					// non-capturing group
					capture = false
				case '#':
					// comment
					for {
						if _, ok = s.peek(); !ok {
							return nil, &Error{Msg: "missing ), unterminated comment"}
						}

						if ch, ok := s.read(); ok && ch == ')' {
							break
						}
					}

					continue
				case '=', '!', '<':
					if char == '<' {
						if next, ok := s.peek(); ok && next != '=' && next != '!' {
							// (?<name>...) named group
							name, err = s.getUntil('>', "group name")
							if err != nil {
								return nil, err
							}

							err = checkgroupname(name)
							if err != nil {
								return nil, err
							}

							break
						}
					}

					// lookaround assertions
					dir := 1
					lookbehindgroups := -1

					if char == '<' {
						char, ok = s.read()
						if !ok {
							return nil, &Error{Msg: "unexpected end of pattern"}
						}

						dir = -1 // lookbehind
						lookbehindgroups = state.lookbehindgroups
						if lookbehindgroups == -1 {
							state.lookbehindgroups = state.groups()
						}
					}

					p, err := parseSub(s, state, verbose, nested+1)
					if err != nil {
						return nil, err
					}

					if dir < 0 {
						if lookbehindgroups == -1 {
							state.lookbehindgroups = -1
						}
					}

					if !s.match(')') {
						return nil, &Error{Msg: "missing ), unterminated subpattern"}
					}

					if char == '=' {
						sp.append(newAssertNode(opAssert, dir, p))
					} else if p.len() > 0 {
						sp.append(newAssertNode(opAssertNot, dir, p))
					} else {
						sp.append(newEmptyNode(opFailure))
					}

					continue
				case '(':
					// conditional reference group
					var condgroup int
					condname, err := s.getUntil(')', "group name")
					if err != nil {
						return nil, err
					}

					if !(isDigitString(condname) && util.IsASCIIString(condname)) {
						err = checkgroupname(condname)
						if err != nil {
							return nil, err
						}

						condgroup, ok = state.groupdict[condname]
						if !ok {
							return nil, &Error{Msg: fmt.Sprintf("unknown group name '%s'", condname)}
						}
					} else {
						condgroup, err = strconv.Atoi(condname)
						if err != nil || condgroup == 0 {
							return nil, &Error{Msg: "bad group number"}
						}

						if condgroup >= maxGroups {
							return nil, &Error{Msg: fmt.Sprintf("invalid group reference %d", condgroup)}
						}

						if _, ok = state.grouprefpos[condgroup]; !ok {
							state.grouprefpos[condgroup] = s.tell() - len(condname) - 1
						}
					}

					err = state.checklookbehindgroup(condgroup)
					if err != nil {
						return nil, err
					}

					var itemYes, itemNo *subPattern

					itemYes, err = parseInternal(s, state, verbose, nested+1, false)
					if err != nil {
						return nil, err
					}

					if s.match('|') {
						itemNo, err = parseInternal(s, state, verbose, nested+1, false)
						if err != nil {
							return nil, err
						}

						if next, ok := s.peek(); ok && next == '|' {
							return nil, &Error{Msg: "conditional reference with more than two branches"}
						}
					}

					if !s.match(')') {
						return nil, &Error{Msg: "missing ), unterminated subpattern"}
					}

					sp.append(newGrouprefExistsNode(condgroup, itemYes, itemNo))
					continue

				case '>':
					// non-capturing, atomic group
					capture = false
					atomic = true
				default:
					if isFlag(char) || char == '-' {
						// flags
						addFlags, delFlags, ok, err = parseFlags(s, state, char)
						if err != nil {
							return nil, err
						}

						if !ok { // global flags
							if !first || sp.len() > 0 {
								return nil, &Error{Msg: "global flags not at the start of the expression"}
							}

							verbose = state.flags&FlagExtended != 0
							continue
						}

						capture = false
					} else {
						return nil, &Error{Msg: fmt.Sprintf("unknown extension ?%c", char)}
					}
				}
			}

			// parse group contents

			group := -1
			if capture {
				group, err = state.opengroup(name)
				if err != nil {
					return nil, err
				}
			}

			subVerbose := ((verbose || (addFlags&FlagExtended != 0)) && !(delFlags&FlagExtended != 0))

			p, err := parseSub(s, state, subVerbose, nested+1)
			if err != nil {
				return nil, err
			}

			if !s.match(')') {
				return nil, &Error{Msg: "missing ), unterminated subpattern"}
			}

			if group != -1 {
				state.closegroup(group)
			}

			if atomic {
				sp.append(newAtomicGroupNode(p))
			} else {
				sp.append(newSubPatternNode(group, addFlags, delFlags, p))
			}

		case '^':
			sp.append(newAtNode(atBeginning))
		case '$':
			sp.append(newAtNode(atEnd))
		}
	}

	// unpack non-capturing groups
	for i := sp.len() - 1; i >= 0; i-- {
		t := sp.get(i)
		if t.opcode == opSubpattern {
			p := t.params.(subPatternParams)
			if p.group == -1 && p.addFlags == 0 && p.delFlags == 0 {
				sp.replace(i, p.p)
			}
		}
	}

	return sp, nil
}

// parseSet parses a character set; the leading '[' is already consumed.
func parseSet(s *source, state *state) (*node, error) {
	negate := s.match('^')

	var set []*node

	for {
		c, ok := s.read()
		if !ok {
			return nil, &Error{Msg: "unterminated character set"}
		}

		var code1, code2 *node
		var err error

		if c == ']' && len(set) > 0 {
			break
		} else if c == '\\' {
			code1, err = parseEscape(s, state, true /* is class */)
			if err != nil {
				return nil, err
			}
		} else if c == '[' {
			if next, ok := s.peek(); ok && next == ':' {
				s.read()

				code1, err = parsePosixClass(s)
				if err != nil {
					return nil, err
				}
			} else {
				code1 = newLiteral(c)
			}
		} else {
			code1 = newLiteral(c)
		}

		if s.match('-') {
			// potential range
			ch, ok := s.read()
			if !ok {
				return nil, &Error{Msg: "unterminated character set"}
			}

			if ch == ']' {
				set = appendSetItem(set, code1)
				set = append(set, newLiteral('-'))
				break
			}

			if ch == '\\' {
				code2, err = parseEscape(s, state, true /* is class */)
				if err != nil {
					return nil, err
				}
			} else {
				code2 = newLiteral(ch)
			}

			if code1.opcode != opLiteral || code2.opcode != opLiteral {
				return nil, &Error{Msg: fmt.Sprintf("bad character range %c-%c", c, ch)}
			}

			lo := code1.c
			hi := code2.c
			if hi < lo {
				return nil, &Error{Msg: fmt.Sprintf("bad character range %c-%c", c, ch)}
			}

			set = append(set, newRangeNode(lo, hi))
		} else {
			set = appendSetItem(set, code1)
		}
	}

	set = unique(set)

	if len(set) == 1 && set[0].opcode == opLiteral {
		if negate {
			return newCharNode(opNotLiteral, set[0].c), nil
		}
		return set[0], nil
	}

	if negate {
		set = slices.Insert(set, 0, newEmptyNode(opNegate))
	}

	return newInNode(set), nil
}

// appendSetItem adds an escape result to a set, flattening nested IN nodes.
func appendSetItem(set []*node, t *node) []*node {
	if t.opcode == opIn {
		return append(set, t.items()...)
	}
	return append(set, t)
}

// parsePosixClass parses a [[:name:]] class; "[:" is already consumed.
func parsePosixClass(s *source) (*node, error) {
	negated := s.match('^')

	name, err := s.getUntil(':', "POSIX class name")
	if err != nil {
		return nil, err
	}
	if !s.match(']') {
		return nil, &Error{Msg: "missing :], unterminated POSIX class"}
	}

	switch name {
	case "alnum":
		return newPropertyNode(ucp.Alnum{}, negated), nil
	case "alpha":
		return newPropertyNode(ucp.Category{Code: ucp.CatL}, negated), nil
	case "ascii":
		return newPropertyNode(ucp.Binary{Code: ucp.BinASCII}, negated), nil
	case "cntrl":
		return newPropertyNode(ucp.Category{Code: ucp.CatCc}, negated), nil
	case "digit":
		if negated {
			return newCategoryNode(categoryNotDigit), nil
		}
		return newCategoryNode(categoryDigit), nil
	case "lower":
		return newPropertyNode(ucp.Binary{Code: ucp.BinLowercase}, negated), nil
	case "punct":
		return newPropertyNode(ucp.Category{Code: ucp.CatP}, negated), nil
	case "space":
		if negated {
			return newCategoryNode(categoryNotSpace), nil
		}
		return newCategoryNode(categorySpace), nil
	case "upper":
		return newPropertyNode(ucp.Binary{Code: ucp.BinUppercase}, negated), nil
	case "word":
		if negated {
			return newCategoryNode(categoryNotWord), nil
		}
		return newCategoryNode(categoryWord), nil
	case "blank":
		if negated {
			return nil, &Error{Msg: "negated POSIX class blank is not supported"}
		}
		return newInNode([]*node{newLiteral('\t'), newLiteral(' ')}), nil
	case "xdigit":
		if negated {
			return nil, &Error{Msg: "negated POSIX class xdigit is not supported"}
		}
		return newInNode([]*node{
			newRangeNode('0', '9'),
			newRangeNode('A', 'F'),
			newRangeNode('a', 'f'),
		}), nil
	default:
		return nil, &Error{Msg: fmt.Sprintf("unknown POSIX class name '%s'", name)}
	}
}

func namedGroupref(state *state, name string) (*node, error) {
	if err := checkgroupname(name); err != nil {
		return nil, err
	}

	gid, ok := state.groupdict[name]
	if !ok {
		return nil, &Error{Msg: fmt.Sprintf("unknown group name '%s'", name)}
	}
	if !state.checkgroup(gid) {
		return nil, &Error{Msg: "cannot refer to an open group"}
	}

	if err := state.checklookbehindgroup(gid); err != nil {
		return nil, err
	}

	return newGrouprefNode(gid), nil
}

func parseEscape(s *source, state *state, inCls bool) (*node, error) {
	// handle escape code in expression

	c, ok := s.read()
	if !ok {
		return nil, &Error{Msg: "bad escape"}
	}

	switch c {
	case 'x':
		// hexadecimal escape, either \xhh or \x{...}

		if s.match('{') {
			e, err := s.getUntil('}', "hexadecimal value")
			if err != nil {
				return nil, err
			}

			v, err := strconv.ParseUint(e, 16, 32)
			if err != nil || v > utf8.MaxRune {
				return nil, &Error{Msg: fmt.Sprintf(`bad escape \x{%s}`, e)}
			}

			return newLiteral(rune(v)), nil
		}

		e := s.nextHex(2)
		if len(e) != 2 {
			return nil, &Error{Msg: fmt.Sprintf(`incomplete escape \%c%s`, c, e)}
		}

		return newLiteral(parseIntRune(e, 16)), nil
	case 'o':
		// octal escape \o{...}

		if !s.match('{') {
			return nil, &Error{Msg: `missing { after \o`}
		}

		e, err := s.getUntil('}', "octal value")
		if err != nil {
			return nil, err
		}

		v, err := strconv.ParseUint(e, 8, 32)
		if err != nil || v > utf8.MaxRune {
			return nil, &Error{Msg: fmt.Sprintf(`bad escape \o{%s}`, e)}
		}

		return newLiteral(rune(v)), nil
	case '0':
		// octal escape

		e := s.nextOct(2)
		r := parseIntRune(e, 8)

		return newLiteral(r), nil
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		// octal escape *or* decimal group reference (only if not in class)

		value := digit(c)

		if !inCls {
			if c1, ok := s.peek(); ok && isDigit(c1) {
				s.read()

				if isOctDigit(c) && isOctDigit(c1) {
					if c2, ok := s.peek(); ok && isOctDigit(c2) {
						s.read()

						value = 8*(8*value+digit(c1)) + digit(c2)
						if value > 0o377 {
							return nil, &Error{Msg: fmt.Sprintf(`octal escape value \%c%c%c outside of range 0-0o377`, c, c1, c2)}
						}

						return newLiteral(rune(value)), nil
					}
				}

				value = 10*value + digit(c1)
			}

			// not an octal escape, so this is a group reference
			group := value
			if group < state.groups() {
				if !state.checkgroup(group) {
					return nil, &Error{Msg: "cannot refer to an open group"}
				}

				err := state.checklookbehindgroup(group)
				if err != nil {
					return nil, err
				}

				return newGrouprefNode(group), nil
			}

			return nil, &Error{Msg: fmt.Sprintf("invalid group reference %d", value)}
		}

		if c >= '8' {
			return nil, &Error{Msg: fmt.Sprintf(`bad escape \%c`, c)}
		}

		e := s.nextOct(2)

		r := rune((1<<(3*len(e)))*value) + parseIntRune(e, 8) // 8 * value if len(e) == 1 else 64 * value
		if r > 0o377 {
			return nil, &Error{Msg: fmt.Sprintf(`octal escape value \%c%s outside of range 0-0o377`, c, e)}
		}

		return newLiteral(r), nil
	case 'k':
		// named backreference \k<name>

		if inCls {
			return nil, &Error{Msg: `bad escape \k`}
		}

		if !s.match('<') {
			return nil, &Error{Msg: `missing < after \k`}
		}

		name, err := s.getUntil('>', "group name")
		if err != nil {
			return nil, err
		}

		return namedGroupref(state, name)
	case 'c':
		// control character \cx

		ch, ok := s.read()
		if !ok || ch > 0x7f {
			return nil, &Error{Msg: `bad escape \c`}
		}

		if 'a' <= ch && ch <= 'z' {
			ch -= 'a' - 'A'
		}

		return newLiteral(ch ^ 0x40), nil

	// escapes
	case 'a':
		return newLiteral('\a'), nil
	case 'b':
		if inCls {
			return newLiteral('\b'), nil
		}
		return newAtNode(atBoundary), nil
	case 'e':
		return newLiteral('\x1b'), nil
	case 'f':
		return newLiteral('\f'), nil
	case 'n':
		return newLiteral('\n'), nil
	case 'r':
		return newLiteral('\r'), nil
	case 't':
		return newLiteral('\t'), nil
	case '\\':
		return newLiteral('\\'), nil

	// assertions
	case 'A':
		// start of subject
		if !inCls {
			return newAtNode(atBeginningString), nil
		}
	case 'B':
		if !inCls {
			return newAtNode(atNonBoundary), nil
		}
	case 'Z':
		// end of subject, before a final newline
		if !inCls {
			return newAtNode(atEndString), nil
		}
	case 'z':
		// absolute end of subject
		if !inCls {
			return newAtNode(atEndStringAbs), nil
		}

	// categories
	case 'd':
		return newInNode([]*node{newCategoryNode(categoryDigit)}), nil
	case 'D':
		return newInNode([]*node{newCategoryNode(categoryNotDigit)}), nil
	case 's':
		return newInNode([]*node{newCategoryNode(categorySpace)}), nil
	case 'S':
		return newInNode([]*node{newCategoryNode(categoryNotSpace)}), nil
	case 'w':
		return newInNode([]*node{newCategoryNode(categoryWord)}), nil
	case 'W':
		return newInNode([]*node{newCategoryNode(categoryNotWord)}), nil
	case 'h':
		return newInNode([]*node{newCategoryNode(categoryHorizSpace)}), nil
	case 'H':
		return newInNode([]*node{newCategoryNode(categoryNotHorizSpace)}), nil
	case 'v':
		return newInNode([]*node{newCategoryNode(categoryVertSpace)}), nil
	case 'V':
		return newInNode([]*node{newCategoryNode(categoryNotVertSpace)}), nil

	case 'N':
		// any character except a newline, also inside classes
		if !inCls {
			return newCharNode(opNotLiteral, '\n'), nil
		}

	case 'p', 'P':
		// unicode property escape
		return parseProperty(s, c == 'P')

	case 'R':
		// any newline sequence
		if !inCls {
			return newEmptyNode(opNewline), nil
		}

	case 'X':
		// extended grapheme cluster, approximated as an atomic
		// (?>\P{M}\p{M}*) sequence
		if !inCls {
			return graphemeCluster(state), nil
		}

	default:
		if !isASCIILetter(c) {
			return newLiteral(c), nil
		}
	}

	return nil, &Error{Msg: fmt.Sprintf("bad escape \\%c", c)}
}

// parseProperty parses the name part of a \p or \P escape, which is either a
// single character or a braced name. Inside braces, a leading '^' negates the
// test and a "qualifier:" prefix restricts the property family.
func parseProperty(s *source, negated bool) (*node, error) {
	c, ok := s.read()
	if !ok {
		return nil, &Error{Msg: `missing property name after \p`}
	}

	var name string
	if c == '{' {
		var err error
		name, err = s.getUntil('}', "property name")
		if err != nil {
			return nil, err
		}

		if strings.HasPrefix(name, "^") {
			negated = !negated
			name = name[1:]
		}
	} else {
		name = string(c)
	}

	prop, err := resolveProperty(name)
	if err != nil {
		return nil, err
	}

	return newPropertyNode(prop, negated), nil
}

// resolveProperty resolves a property name, honoring the optional family
// qualifiers sc:, script:, scx:, scriptextensions:, bc: and bidiclass:.
// The qualifier may be separated by ':' or '='.
func resolveProperty(name string) (ucp.Property, error) {
	qual, rest, ok := strings.Cut(name, ":")
	if !ok {
		qual, rest, ok = strings.Cut(name, "=")
	}
	if !ok {
		return ucp.Resolve(name)
	}

	switch normalizeQualifier(qual) {
	case "sc", "script":
		p, err := ucp.Resolve(rest)
		if err != nil {
			return nil, err
		}

		switch p := p.(type) {
		case ucp.Script:
			return p, nil
		case ucp.ScriptExt:
			return ucp.Script{Code: p.Code}, nil
		}

		return nil, &Error{Msg: fmt.Sprintf("'%s' is not a script name", rest)}
	case "scx", "scriptextensions":
		p, err := ucp.Resolve(rest)
		if err != nil {
			return nil, err
		}

		switch p := p.(type) {
		case ucp.Script:
			return ucp.ScriptExt{Code: p.Code}, nil
		case ucp.ScriptExt:
			return p, nil
		}

		return nil, &Error{Msg: fmt.Sprintf("'%s' is not a script name", rest)}
	case "bc", "bidiclass":
		p, err := ucp.Resolve("bidi" + rest)
		if err != nil {
			return nil, &Error{Msg: fmt.Sprintf("unknown bidi class '%s'", rest)}
		}

		if p, ok := p.(ucp.BidiClass); ok {
			return p, nil
		}

		return nil, &Error{Msg: fmt.Sprintf("'%s' is not a bidi class", rest)}
	default:
		// not a recognized qualifier; try the name as a whole, which
		// reports it as unknown
		return ucp.Resolve(name)
	}
}

func normalizeQualifier(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_' || c == ' ':
			// skip
		case 'A' <= c && c <= 'Z':
			b.WriteByte(c + ('a' - 'A'))
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}

func graphemeCluster(state *state) *node {
	mark := ucp.Category{Code: ucp.CatM}

	marks := newSubpattern(state)
	marks.append(newPropertyNode(mark, false))

	sp := newSubpattern(state)
	sp.append(newPropertyNode(mark, true))
	sp.append(newRepeatNode(opMaxRepeat, 0, maxRepeat, marks))

	return newAtomicGroupNode(sp)
}

func checkgroupname(name string) error {
	if !util.IsIdentifier(name) {
		return &Error{Msg: fmt.Sprintf("bad character in group name '%s'", name)}
	}
	return nil
}

func parseFlags(s *source, state *state, char rune) (addFlags int, delFlags int, result bool, err error) {
	var ok bool

	if char != '-' {
		for {
			flag := getFlag(char)

			addFlags |= flag

			char, ok = s.read()
			if !ok {
				err = &Error{Msg: "missing -, : or )"}
				return
			}

			if strings.ContainsRune(")-:", char) {
				break
			}

			if !isFlag(char) {
				if isASCIILetter(char) {
					err = &Error{Msg: "unknown flag"}
					return
				}

				err = &Error{Msg: "missing -, : or )"}
				return
			}
		}
	}

	if char == ')' {
		state.flags |= addFlags
		return
	}

	if char == '-' {
		char, ok = s.read()
		if !ok {
			err = &Error{Msg: "missing flag"}
			return
		}

		if !isFlag(char) {
			if isASCIILetter(char) {
				err = &Error{Msg: "unknown flag"}
				return
			}

			err = &Error{Msg: "missing flag"}
			return
		}

		for {
			delFlags |= getFlag(char)

			char, ok = s.read()
			if !ok {
				err = &Error{Msg: "missing :"}
				return
			}

			if char == ':' {
				break
			}

			if !isFlag(char) {
				if isASCIILetter(char) {
					err = &Error{Msg: "unknown flag"}
					return
				}

				err = &Error{Msg: "missing :"}
				return
			}
		}
	}

	if addFlags&delFlags != 0 {
		err = &Error{Msg: "bad inline flags: flag turned on and off"}
		return
	}

	result = true
	return
}
