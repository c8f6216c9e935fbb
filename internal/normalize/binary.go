package normalize

import (
	"github.com/dekarrin/rezi"
	"github.com/edgeql-go/eqlparse/internal/token"
)

// MarshalBinary encodes l as its Index, Kind, Text, Value and Span.
func (l ExtractedLiteral) MarshalBinary() ([]byte, error) {
	var data []byte
	enc, err := rezi.Enc(l.Index)
	if err != nil {
		return nil, err
	}
	data = append(data, enc...)

	enc, err = rezi.Enc(string(l.Kind))
	if err != nil {
		return nil, err
	}
	data = append(data, enc...)

	enc, err = rezi.Enc(l.Text)
	if err != nil {
		return nil, err
	}
	data = append(data, enc...)

	enc, err = rezi.EncBinary(l.Value)
	if err != nil {
		return nil, err
	}
	data = append(data, enc...)

	enc, err = rezi.EncBinary(l.Span)
	if err != nil {
		return nil, err
	}
	data = append(data, enc...)

	return data, nil
}

// UnmarshalBinary decodes l from data produced by MarshalBinary.
func (l *ExtractedLiteral) UnmarshalBinary(data []byte) error {
	n, err := rezi.Dec(data, &l.Index)
	if err != nil {
		return err
	}
	data = data[n:]

	var kind string
	n, err = rezi.Dec(data, &kind)
	if err != nil {
		return err
	}
	l.Kind = token.Kind(kind)
	data = data[n:]

	n, err = rezi.Dec(data, &l.Text)
	if err != nil {
		return err
	}
	data = data[n:]

	n, err = rezi.DecBinary(data, &l.Value)
	if err != nil {
		return err
	}
	data = data[n:]

	_, err = rezi.DecBinary(data, &l.Span)
	return err
}

// MarshalBinary encodes e per §6's packed "full normalized entry" shape:
// the rewritten token vector, the extracted-literal table, the
// first-extracted-index/first-capture pair, the canonical processed
// text, and the fingerprint bytes -- every field needed to reconstruct e
// exactly, so a round trip through the wire codec never changes the
// fingerprint (spec.md §8 "Fingerprint stability").
func (e NormalizedEntry) MarshalBinary() ([]byte, error) {
	var data []byte

	enc, err := rezi.Enc(len(e.Tokens))
	if err != nil {
		return nil, err
	}
	data = append(data, enc...)
	for _, tok := range e.Tokens {
		enc, err = rezi.EncBinary(tok)
		if err != nil {
			return nil, err
		}
		data = append(data, enc...)
	}

	enc, err = rezi.Enc(len(e.Literals))
	if err != nil {
		return nil, err
	}
	data = append(data, enc...)
	for _, lit := range e.Literals {
		enc, err = rezi.EncBinary(lit)
		if err != nil {
			return nil, err
		}
		data = append(data, enc...)
	}

	enc, err = rezi.Enc(e.FirstExtractedIndex)
	if err != nil {
		return nil, err
	}
	data = append(data, enc...)

	enc, err = rezi.Enc(e.FirstCapture)
	if err != nil {
		return nil, err
	}
	data = append(data, enc...)

	enc, err = rezi.Enc(e.ProcessedSourceText)
	if err != nil {
		return nil, err
	}
	data = append(data, enc...)

	enc, err = rezi.Enc(e.Fingerprint[:])
	if err != nil {
		return nil, err
	}
	data = append(data, enc...)

	return data, nil
}

// UnmarshalBinary decodes e from data produced by MarshalBinary.
func (e *NormalizedEntry) UnmarshalBinary(data []byte) error {
	var count int
	n, err := rezi.Dec(data, &count)
	if err != nil {
		return err
	}
	data = data[n:]

	e.Tokens = make([]token.Token, count)
	for i := 0; i < count; i++ {
		n, err = rezi.DecBinary(data, &e.Tokens[i])
		if err != nil {
			return err
		}
		data = data[n:]
	}

	n, err = rezi.Dec(data, &count)
	if err != nil {
		return err
	}
	data = data[n:]

	e.Literals = make([]ExtractedLiteral, count)
	for i := 0; i < count; i++ {
		n, err = rezi.DecBinary(data, &e.Literals[i])
		if err != nil {
			return err
		}
		data = data[n:]
	}

	n, err = rezi.Dec(data, &e.FirstExtractedIndex)
	if err != nil {
		return err
	}
	data = data[n:]

	n, err = rezi.Dec(data, &e.FirstCapture)
	if err != nil {
		return err
	}
	data = data[n:]

	n, err = rezi.Dec(data, &e.ProcessedSourceText)
	if err != nil {
		return err
	}
	data = data[n:]

	var fp []byte
	_, err = rezi.Dec(data, &fp)
	if err != nil {
		return err
	}
	copy(e.Fingerprint[:], fp)

	return nil
}
