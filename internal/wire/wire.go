// Package wire implements the versioned packed-entry binary format
// spec.md §6 describes: a single leading version byte followed by a
// rezi-encoded payload, built on github.com/dekarrin/rezi -- the same
// self-describing, length-prefixed encoding the teacher uses for its
// own save-game persistence (server/dao/sqlite/sqlite.go).
package wire

import (
	"errors"

	"github.com/dekarrin/rezi"
	"github.com/edgeql-go/eqlparse/internal/normalize"
	"github.com/edgeql-go/eqlparse/internal/token"
)

// Version identifies the payload shape of a packed entry.
type Version byte

const (
	// VersionTokens packs a plain token vector: a tokenize() result with
	// no normalization metadata attached.
	VersionTokens Version = 0x00
	// VersionNormalizedEntry packs a full normalize.NormalizedEntry.
	VersionNormalizedEntry Version = 0x01
)

// ErrInvalidVersion is returned by Decode/DecodeTokens/DecodeNormalized
// when the leading byte of a packed entry is not a recognized Version
// (spec.md §8 "Packed entry version byte").
var ErrInvalidVersion = errors.New("wire: invalid packed entry version byte")

// EncodeTokens packs toks as a VersionTokens entry.
func EncodeTokens(toks []token.Token) ([]byte, error) {
	var data []byte
	data = append(data, byte(VersionTokens))

	enc, err := rezi.Enc(len(toks))
	if err != nil {
		return nil, err
	}
	data = append(data, enc...)

	for _, tok := range toks {
		enc, err := rezi.EncBinary(tok)
		if err != nil {
			return nil, err
		}
		data = append(data, enc...)
	}

	return data, nil
}

// EncodeNormalized packs entry as a VersionNormalizedEntry entry.
func EncodeNormalized(entry *normalize.NormalizedEntry) ([]byte, error) {
	var data []byte
	data = append(data, byte(VersionNormalizedEntry))

	enc, err := rezi.EncBinary(*entry)
	if err != nil {
		return nil, err
	}
	data = append(data, enc...)

	return data, nil
}

// Decode inspects the leading version byte of data and dispatches to
// the matching decoder. It returns exactly one of toks/entry non-nil.
func Decode(data []byte) (toks []token.Token, entry *normalize.NormalizedEntry, err error) {
	if len(data) == 0 {
		return nil, nil, ErrInvalidVersion
	}

	switch Version(data[0]) {
	case VersionTokens:
		toks, err = DecodeTokens(data)
		return toks, nil, err
	case VersionNormalizedEntry:
		entry, err = DecodeNormalized(data)
		return nil, entry, err
	default:
		return nil, nil, ErrInvalidVersion
	}
}

// DecodeTokens decodes a VersionTokens packed entry.
func DecodeTokens(data []byte) ([]token.Token, error) {
	if len(data) == 0 || Version(data[0]) != VersionTokens {
		return nil, ErrInvalidVersion
	}
	data = data[1:]

	var count int
	n, err := rezi.Dec(data, &count)
	if err != nil {
		return nil, err
	}
	data = data[n:]

	toks := make([]token.Token, count)
	for i := 0; i < count; i++ {
		n, err := rezi.DecBinary(data, &toks[i])
		if err != nil {
			return nil, err
		}
		data = data[n:]
	}

	return toks, nil
}

// DecodeNormalized decodes a VersionNormalizedEntry packed entry.
func DecodeNormalized(data []byte) (*normalize.NormalizedEntry, error) {
	if len(data) == 0 || Version(data[0]) != VersionNormalizedEntry {
		return nil, ErrInvalidVersion
	}
	data = data[1:]

	var entry normalize.NormalizedEntry
	if _, err := rezi.DecBinary(data, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}
