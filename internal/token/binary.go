package token

import "github.com/dekarrin/rezi"

// This file gives Position, Span, Value and Token the
// encoding.BinaryMarshaler/BinaryUnmarshaler pair internal/wire needs to
// embed a token stream in a packed entry, built on rezi's primitive
// encoders (the same self-describing, length-prefixed binary shape the
// teacher uses rezi for at its save-game persistence boundary).

// MarshalBinary encodes p as its three ints, in field order.
func (p Position) MarshalBinary() ([]byte, error) {
	var data []byte
	enc, err := rezi.Enc(p.Offset)
	if err != nil {
		return nil, err
	}
	data = append(data, enc...)

	enc, err = rezi.Enc(p.Line)
	if err != nil {
		return nil, err
	}
	data = append(data, enc...)

	enc, err = rezi.Enc(p.Column)
	if err != nil {
		return nil, err
	}
	data = append(data, enc...)

	return data, nil
}

// UnmarshalBinary decodes p from data produced by MarshalBinary.
func (p *Position) UnmarshalBinary(data []byte) error {
	n, err := rezi.Dec(data, &p.Offset)
	if err != nil {
		return err
	}
	data = data[n:]

	n, err = rezi.Dec(data, &p.Line)
	if err != nil {
		return err
	}
	data = data[n:]

	_, err = rezi.Dec(data, &p.Column)
	return err
}

// MarshalBinary encodes s as its Start and End positions.
func (s Span) MarshalBinary() ([]byte, error) {
	var data []byte
	enc, err := rezi.EncBinary(s.Start)
	if err != nil {
		return nil, err
	}
	data = append(data, enc...)

	enc, err = rezi.EncBinary(s.End)
	if err != nil {
		return nil, err
	}
	data = append(data, enc...)

	return data, nil
}

// UnmarshalBinary decodes s from data produced by MarshalBinary.
func (s *Span) UnmarshalBinary(data []byte) error {
	n, err := rezi.DecBinary(data, &s.Start)
	if err != nil {
		return err
	}
	data = data[n:]

	_, err = rezi.DecBinary(data, &s.End)
	return err
}

// MarshalBinary encodes v as its IsSet flag followed by whichever of
// Str/Bytes/Bool is meaningful (always all three fields, to keep the
// format fixed-shape regardless of kind; the unused fields cost a few
// bytes of zero value in exchange for a decoder that never needs to
// consult Kind).
func (v Value) MarshalBinary() ([]byte, error) {
	var data []byte
	enc, err := rezi.Enc(v.IsSet)
	if err != nil {
		return nil, err
	}
	data = append(data, enc...)

	enc, err = rezi.Enc(v.Str)
	if err != nil {
		return nil, err
	}
	data = append(data, enc...)

	enc, err = rezi.Enc(v.Bytes)
	if err != nil {
		return nil, err
	}
	data = append(data, enc...)

	enc, err = rezi.Enc(v.Bool)
	if err != nil {
		return nil, err
	}
	data = append(data, enc...)

	return data, nil
}

// UnmarshalBinary decodes v from data produced by MarshalBinary.
func (v *Value) UnmarshalBinary(data []byte) error {
	n, err := rezi.Dec(data, &v.IsSet)
	if err != nil {
		return err
	}
	data = data[n:]

	n, err = rezi.Dec(data, &v.Str)
	if err != nil {
		return err
	}
	data = data[n:]

	n, err = rezi.Dec(data, &v.Bytes)
	if err != nil {
		return err
	}
	data = data[n:]

	_, err = rezi.Dec(data, &v.Bool)
	return err
}

// MarshalBinary encodes t as its Kind, Text, Value and Span, in field
// order.
func (t Token) MarshalBinary() ([]byte, error) {
	var data []byte
	enc, err := rezi.Enc(string(t.Kind))
	if err != nil {
		return nil, err
	}
	data = append(data, enc...)

	enc, err = rezi.Enc(t.Text)
	if err != nil {
		return nil, err
	}
	data = append(data, enc...)

	enc, err = rezi.EncBinary(t.Value)
	if err != nil {
		return nil, err
	}
	data = append(data, enc...)

	enc, err = rezi.EncBinary(t.Span)
	if err != nil {
		return nil, err
	}
	data = append(data, enc...)

	return data, nil
}

// UnmarshalBinary decodes t from data produced by MarshalBinary.
func (t *Token) UnmarshalBinary(data []byte) error {
	var kind string
	n, err := rezi.Dec(data, &kind)
	if err != nil {
		return err
	}
	t.Kind = Kind(kind)
	data = data[n:]

	n, err = rezi.Dec(data, &t.Text)
	if err != nil {
		return err
	}
	data = data[n:]

	n, err = rezi.DecBinary(data, &t.Value)
	if err != nil {
		return err
	}
	data = data[n:]

	_, err = rezi.DecBinary(data, &t.Span)
	return err
}
