package syntax

import (
	"slices"

	"github.com/avigne/unire/ucp"
)

type node struct {
	opcode opcode
	c      rune // literals are the most used node, so they get their own field
	params any
}

type assertParams struct {
	dir int
	p   *subPattern
}

type grouprefExParams struct {
	condgroup int
	itemYes   *subPattern
	itemNo    *subPattern
}

type repeatParams struct {
	min  int
	max  int
	item *subPattern
}

type rangeParams struct {
	lo rune
	hi rune
}

type subPatternParams struct {
	group    int
	addFlags int
	delFlags int
	p        *subPattern
}

type propertyParams struct {
	prop    ucp.Property
	negated bool
}

func (t *node) equals(o *node) bool {
	if t.opcode != o.opcode {
		return false
	}

	switch t.opcode {
	case opFailure, opAny, opNegate, opNewline:
		return true
	case opAssert, opAssertNot:
		return t.params.(assertParams) == o.params.(assertParams)
	case opAt:
		return t.params.(atcode) == o.params.(atcode)
	case opBranch:
		p1 := t.params.([]*subPattern)
		p2 := o.params.([]*subPattern)
		return slices.Equal(p1, p2)
	case opCategory:
		return t.params.(catcode) == o.params.(catcode)
	case opGroupref:
		return t.params.(int) == o.params.(int)
	case opGrouprefExists:
		return t.params.(grouprefExParams) == o.params.(grouprefExParams)
	case opIn:
		p1 := t.params.([]*node)
		p2 := o.params.([]*node)
		return slices.EqualFunc(p1, p2, func(t1, t2 *node) bool {
			return t1.equals(t2)
		})
	case opLiteral, opNotLiteral:
		return t.c == o.c
	case opMinRepeat, opMaxRepeat, opPossessiveRepeat:
		return t.params.(repeatParams) == o.params.(repeatParams)
	case opProperty:
		return t.params.(propertyParams) == o.params.(propertyParams)
	case opRange:
		return t.params.(rangeParams) == o.params.(rangeParams)
	case opSubpattern:
		return t.params.(subPatternParams) == o.params.(subPatternParams)
	case opAtomicGroup:
		return t.params.(*subPattern) == o.params.(*subPattern)
	}

	return false
}

func (t *node) items() []*node {
	return t.params.([]*node)
}

func newEmptyNode(op opcode) *node {
	return &node{
		opcode: op,
	}
}

// additional function, because it is called very often
func newLiteral(c rune) *node {
	return newCharNode(opLiteral, c)
}

func newCharNode(op opcode, c rune) *node {
	return &node{
		opcode: op,
		c:      c,
	}
}

func newAssertNode(op opcode, dir int, p *subPattern) *node {
	return &node{
		opcode: op,
		params: assertParams{
			dir: dir,
			p:   p,
		},
	}
}

func newAtNode(at atcode) *node {
	return &node{
		opcode: opAt,
		params: at,
	}
}

func newBranchNode(items []*subPattern) *node {
	return &node{
		opcode: opBranch,
		params: items,
	}
}

func newCategoryNode(code catcode) *node {
	return &node{
		opcode: opCategory,
		params: code,
	}
}

func newGrouprefNode(ref int) *node {
	return &node{
		opcode: opGroupref,
		params: ref,
	}
}

func newGrouprefExistsNode(condgroup int, itemYes, itemNo *subPattern) *node {
	return &node{
		opcode: opGrouprefExists,
		params: grouprefExParams{
			condgroup: condgroup,
			itemYes:   itemYes,
			itemNo:    itemNo,
		},
	}
}

func newInNode(items []*node) *node {
	return &node{
		opcode: opIn,
		params: items,
	}
}

func newPropertyNode(prop ucp.Property, negated bool) *node {
	return &node{
		opcode: opProperty,
		params: propertyParams{
			prop:    prop,
			negated: negated,
		},
	}
}

func newRepeatNode(op opcode, min, max int, item *subPattern) *node {
	return &node{
		opcode: op,
		params: repeatParams{
			min:  min,
			max:  max,
			item: item,
		},
	}
}

func newRangeNode(lo, hi rune) *node {
	return &node{
		opcode: opRange,
		params: rangeParams{
			lo: lo,
			hi: hi,
		},
	}
}

func newSubPatternNode(group, addFlags, delFlags int, p *subPattern) *node {
	return &node{
		opcode: opSubpattern,
		params: subPatternParams{
			group:    group,
			addFlags: addFlags,
			delFlags: delFlags,
			p:        p,
		},
	}
}

func newAtomicGroupNode(p *subPattern) *node {
	return &node{
		opcode: opAtomicGroup,
		params: p,
	}
}
