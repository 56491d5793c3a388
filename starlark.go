package unire

import (
	"container/list"
	"fmt"

	"go.starlark.net/starlark"
	stsyntax "go.starlark.net/syntax"

	"github.com/avigne/unire/util"
)

// Maximum cache size; 32 should be more than enough, because Starlark scripts
// stay relatively small.
const maxRegexpCacheSize = 32

var zeroInt = starlark.MakeInt(0)

// Module is the Starlark binding of this package.
// A new type is implemented instead of using the `starlarkstruct.Module`
// type, since the module contains a LRU cache for compiled regexps.
// The cache is implemented with a map and a linked list.
// When the cache exceeds the maximum size, the oldest used element is purged.
type Module struct {
	members starlark.StringDict

	list  *list.List                 // least recently used regexps
	cache map[cacheKey]*list.Element // mapping of patterns to list elements
}

type cacheKey struct {
	pattern string
	flags   int
}

// Is necessary, because each list element needs to store the key in the map.
type cacheValue struct {
	pattern *Pattern
	key     cacheKey
}

// NewModule creates a new regex module.
func NewModule() *Module {
	members := starlark.StringDict{
		"I":          starlark.MakeInt(IgnoreCase),
		"IGNORECASE": starlark.MakeInt(IgnoreCase),
		"M":          starlark.MakeInt(Multiline),
		"MULTILINE":  starlark.MakeInt(Multiline),
		"S":          starlark.MakeInt(DotAll),
		"DOTALL":     starlark.MakeInt(DotAll),
		"X":          starlark.MakeInt(Extended),
		"VERBOSE":    starlark.MakeInt(Extended),
		"NOFLAG":     zeroInt,

		"compile": starlark.NewBuiltin("compile", reCompile),
		"purge":   starlark.NewBuiltin("purge", rePurge),

		"search":    starlark.NewBuiltin("search", rePatternFunc("search", patternSearch)),
		"match":     starlark.NewBuiltin("match", rePatternFunc("match", patternMatch)),
		"fullmatch": starlark.NewBuiltin("fullmatch", rePatternFunc("fullmatch", patternFullmatch)),
		"findall":   starlark.NewBuiltin("findall", rePatternFunc("findall", patternFindall)),
		"split":     starlark.NewBuiltin("split", reSplit),
		"sub":       starlark.NewBuiltin("sub", reSub),
		"escape":    starlark.NewBuiltin("escape", reEscape),
	}

	m := Module{
		members: members,
		list:    list.New(),
		cache:   make(map[cacheKey]*list.Element),
	}

	return &m
}

var (
	_ starlark.Value    = (*Module)(nil)
	_ starlark.HasAttrs = (*Module)(nil)
)

func (m *Module) Freeze()               { m.members.Freeze() }
func (m *Module) Hash() (uint32, error) { return 0, fmt.Errorf("unhashable: %s", m.Type()) }
func (m *Module) String() string        { return "<module re>" }
func (m *Module) Truth() starlark.Bool  { return true }
func (m *Module) Type() string          { return "module" }

func (m *Module) Attr(name string) (starlark.Value, error) {
	if v, ok := m.members[name]; ok {
		if b, ok := v.(*starlark.Builtin); ok {
			return b.BindReceiver(m), nil
		}

		return v, nil
	}

	return nil, nil
}

func (m *Module) AttrNames() []string { return m.members.Keys() }

// compile compiles a regex pattern. If the pattern is already in the cache,
// the compiled pattern is returned from the cache.
// Else, the pattern is compiled and then added to the cache.
// If the cache exceeds `maxRegexpCacheSize`, the oldest element is purged.
func (m *Module) compile(pattern string, flags int) (*Pattern, error) {
	key := cacheKey{
		pattern,
		flags,
	}

	if e, ok := m.cache[key]; ok { // pattern found in the cache
		m.list.MoveToFront(e) // "refresh" the pattern in the linked list
		return e.Value.(*cacheValue).pattern, nil
	}

	// purge the oldest element, if the size exceeds the threshold
	if m.list.Len() >= maxRegexpCacheSize {
		last := m.list.Back()
		lastKey := last.Value.(*cacheValue).key

		delete(m.cache, lastKey)
		m.list.Remove(last)
	}

	re, err := Compile(pattern, flags)
	if err != nil {
		return nil, err
	}

	p := &Pattern{re: re}

	v := &cacheValue{
		pattern: p,
		key:     key,
	}

	m.cache[key] = m.list.PushFront(v)

	return p, nil
}

func (m *Module) purge() {
	m.list.Init()
	clear(m.cache)
}

// patternParam accepts either a pattern string or a compiled pattern.
type patternParam struct {
	compiled *Pattern
	raw      string
}

var _ starlark.Unpacker = (*patternParam)(nil)

func (p *patternParam) Unpack(v starlark.Value) error {
	switch t := v.(type) {
	case *Pattern:
		p.compiled = t
	case starlark.String:
		p.raw = string(t)
	default:
		return fmt.Errorf("first argument must be string or compiled pattern, got %s", v.Type())
	}

	return nil
}

func compilePattern(b *starlark.Builtin, pattern patternParam, flags int) (*Pattern, error) {
	if pattern.compiled != nil {
		if flags != 0 {
			return nil, fmt.Errorf("%s: cannot process flags argument with a compiled pattern", b.Name())
		}

		return pattern.compiled, nil
	}

	m := b.Receiver().(*Module)
	return m.compile(pattern.raw, flags)
}

func reCompile(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var (
		pattern patternParam
		flags   int
	)
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "pattern", &pattern, "flags?", &flags); err != nil {
		return nil, err
	}

	return compilePattern(b, pattern, flags)
}

func rePurge(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
		return nil, err
	}

	m := b.Receiver().(*Module)
	m.purge()

	return starlark.None, nil
}

// rePatternFunc builds a module function that compiles its pattern argument
// and delegates to the corresponding pattern method.
func rePatternFunc(name string, fn func(p *Pattern, s string) (starlark.Value, error)) func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error) {
	return func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var (
			pattern patternParam
			str     string
			flags   int
		)
		if err := starlark.UnpackArgs(name, args, kwargs, "pattern", &pattern, "string", &str, "flags?", &flags); err != nil {
			return nil, err
		}

		p, err := compilePattern(b, pattern, flags)
		if err != nil {
			return nil, err
		}

		return fn(p, str)
	}
}

func reSplit(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var (
		pattern  patternParam
		str      string
		maxsplit int
		flags    int
	)
	if err := starlark.UnpackArgs("split", args, kwargs, "pattern", &pattern, "string", &str, "maxsplit?", &maxsplit, "flags?", &flags); err != nil {
		return nil, err
	}

	p, err := compilePattern(b, pattern, flags)
	if err != nil {
		return nil, err
	}

	return patternSplit(p, str, maxsplit)
}

func reSub(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var (
		pattern patternParam
		repl    string
		str     string
		flags   int
	)
	if err := starlark.UnpackArgs("sub", args, kwargs, "pattern", &pattern, "repl", &repl, "string", &str, "flags?", &flags); err != nil {
		return nil, err
	}

	p, err := compilePattern(b, pattern, flags)
	if err != nil {
		return nil, err
	}

	return starlark.String(p.re.ReplaceAllString(str, repl)), nil
}

func reEscape(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var pattern string
	if err := starlark.UnpackArgs("escape", args, kwargs, "pattern", &pattern); err != nil {
		return nil, err
	}

	return starlark.String(Escape(pattern)), nil
}

// Pattern is the Starlark value of a compiled pattern.
type Pattern struct {
	re *Regexp
}

var (
	_ starlark.Value    = (*Pattern)(nil)
	_ starlark.HasAttrs = (*Pattern)(nil)
)

func (p *Pattern) Freeze()               {}
func (p *Pattern) Hash() (uint32, error) { return starlark.String(p.re.String()).Hash() }
func (p *Pattern) String() string {
	return fmt.Sprintf("re.compile(%s)", util.Repr(p.re.String()))
}
func (p *Pattern) Truth() starlark.Bool { return true }
func (p *Pattern) Type() string         { return "pattern" }

var patternMethods = map[string]func(p *Pattern) *starlark.Builtin{
	"search":    patternMethod("search", patternSearch),
	"match":     patternMethod("match", patternMatch),
	"fullmatch": patternMethod("fullmatch", patternFullmatch),
	"findall":   patternMethod("findall", patternFindall),
}

func patternMethod(name string, fn func(p *Pattern, s string) (starlark.Value, error)) func(p *Pattern) *starlark.Builtin {
	return func(p *Pattern) *starlark.Builtin {
		return starlark.NewBuiltin(name, func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var str string
			if err := starlark.UnpackArgs(name, args, kwargs, "string", &str); err != nil {
				return nil, err
			}

			return fn(b.Receiver().(*Pattern), str)
		})
	}
}

func (p *Pattern) Attr(name string) (starlark.Value, error) {
	switch name {
	case "pattern":
		return starlark.String(p.re.String()), nil
	case "flags":
		return starlark.MakeInt(p.re.Flags()), nil
	case "groups":
		return starlark.MakeInt(p.re.NumSubexp()), nil
	case "split":
		return starlark.NewBuiltin("split", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var (
				str      string
				maxsplit int
			)
			if err := starlark.UnpackArgs("split", args, kwargs, "string", &str, "maxsplit?", &maxsplit); err != nil {
				return nil, err
			}

			return patternSplit(b.Receiver().(*Pattern), str, maxsplit)
		}).BindReceiver(p), nil
	case "sub":
		return starlark.NewBuiltin("sub", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var repl, str string
			if err := starlark.UnpackArgs("sub", args, kwargs, "repl", &repl, "string", &str); err != nil {
				return nil, err
			}

			pt := b.Receiver().(*Pattern)
			return starlark.String(pt.re.ReplaceAllString(str, repl)), nil
		}).BindReceiver(p), nil
	}

	if m, ok := patternMethods[name]; ok {
		return m(p).BindReceiver(p), nil
	}

	return nil, nil
}

func (p *Pattern) AttrNames() []string {
	names := []string{"pattern", "flags", "groups", "split", "sub"}
	for name := range patternMethods {
		names = append(names, name)
	}

	return names
}

func patternSearch(p *Pattern, s string) (starlark.Value, error) {
	return newMatchOrNone(p, s, p.re.FindStringSubmatchIndex(s)), nil
}

func patternMatch(p *Pattern, s string) (starlark.Value, error) {
	a := p.re.FindStringSubmatchIndex(s)
	if a != nil && a[0] != 0 {
		a = nil
	}

	return newMatchOrNone(p, s, a), nil
}

func patternFullmatch(p *Pattern, s string) (starlark.Value, error) {
	return newMatchOrNone(p, s, p.re.fullMatchIndex(s)), nil
}

func patternFindall(p *Pattern, s string) (starlark.Value, error) {
	matches := p.re.FindAllStringSubmatchIndex(s, -1)

	res := make([]starlark.Value, 0, len(matches))
	for _, a := range matches {
		switch p.re.NumSubexp() {
		case 0:
			res = append(res, starlark.String(s[a[0]:a[1]]))
		case 1:
			res = append(res, groupValue(s, a, 1))
		default:
			groups := make([]starlark.Value, p.re.NumSubexp())
			for i := range groups {
				groups[i] = groupValue(s, a, i+1)
			}
			res = append(res, starlark.Tuple(groups))
		}
	}

	return starlark.NewList(res), nil
}

func patternSplit(p *Pattern, s string, maxsplit int) (starlark.Value, error) {
	var parts []string
	switch {
	case maxsplit < 0:
		// no splits are performed for a negative maxsplit
		parts = []string{s}
	case maxsplit == 0:
		parts = p.re.Split(s, -1)
	default:
		parts = p.re.Split(s, maxsplit)
	}

	res := make([]starlark.Value, len(parts))
	for i, part := range parts {
		res[i] = starlark.String(part)
	}

	return starlark.NewList(res), nil
}

func groupValue(s string, a []int, gid int) starlark.Value {
	if 2*gid+1 >= len(a) || a[2*gid] < 0 {
		return starlark.String("")
	}

	return starlark.String(s[a[2*gid]:a[2*gid+1]])
}

// Match is the Starlark value of a single match.
type Match struct {
	pattern *Pattern
	str     string
	indices []int
}

func newMatchOrNone(p *Pattern, s string, a []int) starlark.Value {
	if a == nil {
		return starlark.None
	}

	return &Match{
		pattern: p,
		str:     s,
		indices: a,
	}
}

var (
	_ starlark.Value    = (*Match)(nil)
	_ starlark.HasAttrs = (*Match)(nil)
)

func (m *Match) Freeze()               {}
func (m *Match) Hash() (uint32, error) { return 0, fmt.Errorf("unhashable: %s", m.Type()) }
func (m *Match) String() string {
	return fmt.Sprintf("<re.Match object; span=(%d, %d), match=%s>",
		m.indices[0], m.indices[1], util.Repr(m.str[m.indices[0]:m.indices[1]]))
}
func (m *Match) Truth() starlark.Bool { return true }
func (m *Match) Type() string         { return "match" }

func (m *Match) Attr(name string) (starlark.Value, error) {
	switch name {
	case "re":
		return m.pattern, nil
	case "string":
		return starlark.String(m.str), nil
	case "group":
		return m.builtin("group", matchGroup), nil
	case "groups":
		return m.builtin("groups", matchGroups), nil
	case "start":
		return m.builtin("start", matchStart), nil
	case "end":
		return m.builtin("end", matchEnd), nil
	case "span":
		return m.builtin("span", matchSpan), nil
	}

	return nil, nil
}

func (m *Match) AttrNames() []string {
	return []string{"re", "string", "group", "groups", "start", "end", "span"}
}

func (m *Match) builtin(name string, fn func(m *Match, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error)) *starlark.Builtin {
	return starlark.NewBuiltin(name, func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		return fn(b.Receiver().(*Match), b, args, kwargs)
	}).BindReceiver(m)
}

// groupIndex resolves a group argument, which is either an index or a name.
func (m *Match) groupIndex(v starlark.Value) (int, error) {
	switch t := v.(type) {
	case starlark.Int:
		gid, ok := t.Int64()
		if !ok || gid < 0 || int(gid) > m.pattern.re.NumSubexp() {
			return 0, fmt.Errorf("no such group: %s", t.String())
		}

		return int(gid), nil
	case starlark.String:
		gid := m.pattern.re.SubexpIndex(string(t))
		if gid < 0 {
			return 0, fmt.Errorf("no such group: %s", util.Repr(string(t)))
		}

		return gid, nil
	default:
		return 0, fmt.Errorf("group argument must be int or str, got %s", v.Type())
	}
}

func matchGroup(m *Match, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if len(kwargs) > 0 {
		return nil, fmt.Errorf("%s: unexpected keyword arguments", b.Name())
	}

	if len(args) == 0 {
		return m.group(0), nil
	}

	if len(args) == 1 {
		gid, err := m.groupIndex(args[0])
		if err != nil {
			return nil, err
		}

		return m.group(gid), nil
	}

	res := make([]starlark.Value, len(args))
	for i, arg := range args {
		gid, err := m.groupIndex(arg)
		if err != nil {
			return nil, err
		}

		res[i] = m.group(gid)
	}

	return starlark.Tuple(res), nil
}

func (m *Match) group(gid int) starlark.Value {
	if 2*gid+1 >= len(m.indices) || m.indices[2*gid] < 0 {
		return starlark.None
	}

	return starlark.String(m.str[m.indices[2*gid]:m.indices[2*gid+1]])
}

func matchGroups(m *Match, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
		return nil, err
	}

	n := m.pattern.re.NumSubexp()
	res := make([]starlark.Value, n)
	for i := range res {
		res[i] = m.group(i + 1)
	}

	return starlark.Tuple(res), nil
}

func (m *Match) spanArgs(b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (int, int, error) {
	var group starlark.Value
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "group?", &group); err != nil {
		return 0, 0, err
	}

	gid := 0
	if group != nil {
		var err error
		gid, err = m.groupIndex(group)
		if err != nil {
			return 0, 0, err
		}
	}

	if 2*gid+1 >= len(m.indices) || m.indices[2*gid] < 0 {
		return -1, -1, nil
	}

	return m.indices[2*gid], m.indices[2*gid+1], nil
}

func matchStart(m *Match, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	start, _, err := m.spanArgs(b, args, kwargs)
	if err != nil {
		return nil, err
	}

	return starlark.MakeInt(start), nil
}

func matchEnd(m *Match, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	_, end, err := m.spanArgs(b, args, kwargs)
	if err != nil {
		return nil, err
	}

	return starlark.MakeInt(end), nil
}

func matchSpan(m *Match, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	start, end, err := m.spanArgs(b, args, kwargs)
	if err != nil {
		return nil, err
	}

	return starlark.Tuple{starlark.MakeInt(start), starlark.MakeInt(end)}, nil
}

// ExecScript runs a Starlark script with the module preloaded as "re".
// Intended for tests and embedding examples.
func ExecScript(filename string, src any) error {
	thread := &starlark.Thread{Name: "unire"}

	predeclared := starlark.StringDict{
		"re": NewModule(),
	}

	opts := &stsyntax.FileOptions{
		GlobalReassign: true,
	}

	_, err := starlark.ExecFileOptions(opts, thread, filename, src, predeclared)
	return err
}
