package usecase

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// DiffTag marks a line of a line-level diff.
type DiffTag byte

const (
	DiffRemoved DiffTag = '-'
	DiffCommon  DiffTag = ' '
	DiffAdded   DiffTag = '+'
)

// DiffLine is one tagged line of a diff.
type DiffLine struct {
	Tag  DiffTag
	Text string
}

func (l DiffLine) String() string {
	return string(l.Tag) + l.Text
}

// DiffLines computes a line-level diff of left against right.
func DiffLines(left, right string) []DiffLine {
	a := strings.Split(left, "\n")
	b := strings.Split(right, "\n")

	matcher := difflib.NewMatcherWithJunk(a, b, false, nil)

	var out []DiffLine
	for _, op := range matcher.GetOpCodes() {
		switch op.Tag {
		case 'e':
			for _, line := range a[op.I1:op.I2] {
				out = append(out, DiffLine{Tag: DiffCommon, Text: line})
			}
		case 'd':
			for _, line := range a[op.I1:op.I2] {
				out = append(out, DiffLine{Tag: DiffRemoved, Text: line})
			}
		case 'i':
			for _, line := range b[op.J1:op.J2] {
				out = append(out, DiffLine{Tag: DiffAdded, Text: line})
			}
		case 'r':
			for _, line := range a[op.I1:op.I2] {
				out = append(out, DiffLine{Tag: DiffRemoved, Text: line})
			}
			for _, line := range b[op.J1:op.J2] {
				out = append(out, DiffLine{Tag: DiffAdded, Text: line})
			}
		}
	}
	return out
}
