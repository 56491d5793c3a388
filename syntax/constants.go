package syntax

import "math"

// Pattern flags. They can be set at compile time or inline with (?imsx).
const (
	FlagIgnoreCase = 1 << iota
	FlagMultiline
	FlagDotAll
	FlagExtended
)

const (
	maxRepeat = math.MaxInt
	maxGroups = math.MaxInt / 2
)

type opcode uint32

const (
	// Skip zero opcode
	opFailure opcode = iota

	opAny
	opAssert
	opAssertNot
	opAt
	opBranch
	opCategory
	opGroupref
	opGrouprefExists
	opIn
	opLiteral
	opMinRepeat
	opMaxRepeat
	opNotLiteral
	opNegate
	opNewline
	opProperty
	opRange
	opSubpattern
	opAtomicGroup
	opPossessiveRepeat
)

func (o opcode) String() string {
	switch o {
	case opFailure:
		return "FAILURE"
	case opAny:
		return "ANY"
	case opAssert:
		return "ASSERT"
	case opAssertNot:
		return "ASSERT_NOT"
	case opAt:
		return "AT"
	case opBranch:
		return "BRANCH"
	case opCategory:
		return "CATEGORY"
	case opGroupref:
		return "GROUPREF"
	case opGrouprefExists:
		return "GROUPREF_EXISTS"
	case opIn:
		return "IN"
	case opLiteral:
		return "LITERAL"
	case opMinRepeat:
		return "MIN_REPEAT"
	case opMaxRepeat:
		return "MAX_REPEAT"
	case opNotLiteral:
		return "NOT_LITERAL"
	case opNegate:
		return "NEGATE"
	case opNewline:
		return "NEWLINE"
	case opProperty:
		return "PROPERTY"
	case opRange:
		return "RANGE"
	case opSubpattern:
		return "SUBPATTERN"
	case opAtomicGroup:
		return "ATOMIC_GROUP"
	case opPossessiveRepeat:
		return "POSSESSIVE_REPEAT"
	default:
		return "???"
	}
}

type atcode uint32

const (
	atBeginning       atcode = iota // ^
	atBeginningString               // \A
	atBoundary                      // \b
	atNonBoundary                   // \B
	atEnd                           // $
	atEndString                     // \Z
	atEndStringAbs                  // \z
)

type catcode uint32

const (
	categoryDigit catcode = iota
	categoryNotDigit
	categorySpace
	categoryNotSpace
	categoryWord
	categoryNotWord
	categoryHorizSpace
	categoryNotHorizSpace
	categoryVertSpace
	categoryNotVertSpace
)
