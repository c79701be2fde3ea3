// Command find4 generates the SSE4.1 window kernel of package search.
//
//	go run ./internal/asm/find4 -out find4_amd64.s -stubs find4_stub_amd64.go -pkg search
package main

import (
	. "github.com/mmcloughlin/avo/build"
	. "github.com/mmcloughlin/avo/operand"
	"github.com/mmcloughlin/avo/reg"
)

const (
	windowStep = 8

	// avo takes the comma form and writes a //go:build line
	constraint = "amd64,!noasm"
)

func main() {
	ConstraintExpr(constraint)

	TEXT("find4SSE41", NOSPLIT, "func(text []byte, windows int, pattern uint32) int")
	Pragma("noescape")
	Doc(
		"find4SSE41 scores windows 16-byte windows of text, 8 bytes apart, against",
		"the little-endian pattern and returns the offset of the first match or -1.",
		"Every window must lie inside text.",
	)

	ptr := Load(Param("text").Base(), GP64())
	n := Load(Param("windows"), GP64())
	p := GP32()
	Load(Param("pattern"), p)

	pattern, zero := inlineSplat(p)

	off := GP64()
	XORQ(off, off)

	Label("window_loop")
	CMPQ(n, Imm(0))
	JE(LabelRef("not_found"))

	mask := inlineScoreWindow(pattern, zero, ptr, off)
	TESTL(mask, mask)
	JNZ(LabelRef("found"))

	ADDQ(Imm(windowStep), off)
	DECQ(n)
	JMP(LabelRef("window_loop"))

	Label("found")
	Comment("two mask bits per 16-bit lane")
	BSFL(mask, mask)
	SHRL(Imm(1), mask)
	ADDQ(mask.As64(), off)
	Store(off, ReturnIndex(0))
	RET()

	Label("not_found")
	MOVQ(I64(-1), off)
	Store(off, ReturnIndex(0))
	RET()

	Generate()
}

// inlineSplat moves the 4 pattern bytes into the low dword of an XMM register
// and returns it along with an all-zero register.
func inlineSplat(p reg.GPVirtual) (reg.VecVirtual, reg.VecVirtual) {
	Comment("pattern in bytes 0-3, zero elsewhere")
	pattern := XMM()
	MOVQ(p.As64(), pattern)

	zero := XMM()
	PXOR(zero, zero)
	return pattern, zero
}

// inlineScoreWindow loads the window at ptr+off, computes the 8 packed SAD
// scores against pattern and returns the PMOVMSKB mask of the zero scores.
func inlineScoreWindow(pattern, zero reg.VecVirtual, ptr, off reg.Register) reg.GPVirtual {
	Comment("score 8 candidate offsets of the window")
	window := XMM()
	MOVOU(Mem{Base: ptr, Index: off, Scale: 1}, window)
	MPSADBW(Imm(0), pattern, window)

	Comment("zero score means all 4 bytes match")
	PCMPEQW(zero, window)
	mask := GP32()
	PMOVMSKB(window, mask)
	return mask
}
