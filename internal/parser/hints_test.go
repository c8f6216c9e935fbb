package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_HintFor_MissingSemicolonAtEOF(t *testing.T) {
	assert.Equal(t, "statement appears incomplete", hintFor([]string{";"}, ""))
}

func Test_HintFor_UnclosedBrace(t *testing.T) {
	assert.Equal(t, "unclosed '{'", hintFor([]string{"}"}, ""))
}

func Test_HintFor_UnclosedParen(t *testing.T) {
	assert.Equal(t, "unclosed '('", hintFor([]string{")"}, ""))
}

func Test_HintFor_UnclosedBracket(t *testing.T) {
	assert.Equal(t, "unclosed '['", hintFor([]string{"]"}, ""))
}

func Test_HintFor_MissingSeparatorBetweenStatements(t *testing.T) {
	assert.Equal(t, "statements must be separated by ';'", hintFor([]string{";"}, "IDENT"))
}

func Test_HintFor_MissingElseBranch(t *testing.T) {
	assert.Equal(t, "IF expressions require an ELSE branch in this language", hintFor([]string{"ELSE"}, "THEN"))
}

func Test_HintFor_NoHintForUnrelatedExpectation(t *testing.T) {
	assert.Equal(t, "", hintFor([]string{"+", "-"}, "IDENT"))
}

func Test_HintFor_NoHintWhenEOFButNothingRecognizable(t *testing.T) {
	assert.Equal(t, "", hintFor([]string{"+"}, ""))
}
