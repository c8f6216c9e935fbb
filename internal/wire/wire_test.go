package wire

import (
	"testing"

	"github.com/edgeql-go/eqlparse/internal/lexer"
	"github.com/edgeql-go/eqlparse/internal/normalize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Tokens_RoundTrip(t *testing.T) {
	toks, lerr := lexer.Tokenize([]byte("SELECT 1 + 2;"))
	require.Nil(t, lerr)

	packed, err := EncodeTokens(toks)
	require.NoError(t, err)
	assert.Equal(t, byte(VersionTokens), packed[0])

	decoded, err := DecodeTokens(packed)
	require.NoError(t, err)
	require.Len(t, decoded, len(toks))
	for i := range toks {
		assert.Equal(t, toks[i].Kind, decoded[i].Kind)
		assert.Equal(t, toks[i].Text, decoded[i].Text)
		assert.Equal(t, toks[i].Span, decoded[i].Span)
	}
}

func Test_NormalizedEntry_RoundTrip_PreservesFingerprint(t *testing.T) {
	toks, lerr := lexer.Tokenize([]byte("SELECT User FILTER User.name = 'a';"))
	require.Nil(t, lerr)

	entry, nerr := normalize.Normalize(toks)
	require.Nil(t, nerr)

	packed, err := EncodeNormalized(entry)
	require.NoError(t, err)
	assert.Equal(t, byte(VersionNormalizedEntry), packed[0])

	decoded, err := DecodeNormalized(packed)
	require.NoError(t, err)
	assert.Equal(t, entry.Fingerprint, decoded.Fingerprint)
	assert.Equal(t, entry.ProcessedSourceText, decoded.ProcessedSourceText)
	require.Len(t, decoded.Literals, len(entry.Literals))
	for i := range entry.Literals {
		assert.Equal(t, entry.Literals[i].Index, decoded.Literals[i].Index)
		assert.Equal(t, entry.Literals[i].Text, decoded.Literals[i].Text)
	}
}

func Test_Decode_DispatchesOnVersionByte(t *testing.T) {
	toks, lerr := lexer.Tokenize([]byte("SELECT 1;"))
	require.Nil(t, lerr)
	packed, err := EncodeTokens(toks)
	require.NoError(t, err)

	gotToks, gotEntry, err := Decode(packed)
	require.NoError(t, err)
	assert.Nil(t, gotEntry)
	assert.Len(t, gotToks, len(toks))
}

func Test_Decode_RejectsUnknownVersionByte(t *testing.T) {
	_, _, err := Decode([]byte{0x02, 0x00})
	assert.ErrorIs(t, err, ErrInvalidVersion)
}

func Test_Decode_RejectsEmptyInput(t *testing.T) {
	_, _, err := Decode(nil)
	assert.ErrorIs(t, err, ErrInvalidVersion)
}
