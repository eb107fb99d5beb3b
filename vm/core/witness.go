package core

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/spacemeshos/go-scale"
)

const (
	witnessArgsFields = 3
	witnessArgsHeader = 4 * (1 + witnessArgsFields)
	// MaxWitnessArgsSize is the largest WitnessArgs accepted by the decoder.
	MaxWitnessArgsSize = 1 << 20
)

var errMalformedTable = errors.New("malformed witness args table")

// WitnessArgs is a molecule table with three optional byte fields.
//
//	total_size u32 | offsets [3]u32 | lock | input_type | output_type
//
// Absent field is encoded as zero bytes, present field as u32 length followed by bytes.
type WitnessArgs struct {
	Lock       fn.Option[[]byte]
	InputType  fn.Option[[]byte]
	OutputType fn.Option[[]byte]
}

func (w *WitnessArgs) fields() [witnessArgsFields]fn.Option[[]byte] {
	return [witnessArgsFields]fn.Option[[]byte]{w.Lock, w.InputType, w.OutputType}
}

func optionSize(opt fn.Option[[]byte]) int {
	return fn.MapOptionZ(opt, func(b []byte) int { return 4 + len(b) })
}

// Size returns the length of the encoded table.
func (w *WitnessArgs) Size() int {
	size := witnessArgsHeader
	for _, field := range w.fields() {
		size += optionSize(field)
	}
	return size
}

// EncodeScale implements scale codec interface.
func (w *WitnessArgs) EncodeScale(enc *scale.Encoder) (total int, err error) {
	fields := w.fields()
	if w.Size() > MaxWitnessArgsSize {
		return 0, fmt.Errorf("witness args size %d exceeds %d", w.Size(), MaxWitnessArgsSize)
	}
	{
		n, err := scale.EncodeUint32(enc, uint32(w.Size()))
		if err != nil {
			return total, err
		}
		total += n
	}
	offset := witnessArgsHeader
	for _, field := range fields {
		n, err := scale.EncodeUint32(enc, uint32(offset))
		if err != nil {
			return total, err
		}
		total += n
		offset += optionSize(field)
	}
	for _, field := range fields {
		if field.IsNone() {
			continue
		}
		value := field.UnsafeFromSome()
		n, err := scale.EncodeUint32(enc, uint32(len(value)))
		if err != nil {
			return total, err
		}
		total += n
		n, err = scale.EncodeByteArray(enc, value)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// DecodeScale implements scale codec interface.
func (w *WitnessArgs) DecodeScale(dec *scale.Decoder) (total int, err error) {
	size, n, err := scale.DecodeUint32(dec)
	if err != nil {
		return total, err
	}
	total += n
	if size < witnessArgsHeader {
		return total, fmt.Errorf("%w: size %d is smaller than header", errMalformedTable, size)
	}
	if size > MaxWitnessArgsSize {
		return total, fmt.Errorf("%w: size %d exceeds %d", errMalformedTable, size, MaxWitnessArgsSize)
	}
	// buf is indexed by table offsets, first 4 bytes hold total size and stay unused
	buf := make([]byte, size)
	n, err =scale.DecodeByteArray(dec, buf[4:])
	if err != nil {
		return total, err
	}
	total += n

	offsets, err := decodeOffsets(buf[4:witnessArgsHeader], size)
	if err != nil {
		return total, err
	}
	var fields [witnessArgsFields]fn.Option[[]byte]
	for i := range fields {
		end := size
		if i+1 < len(offsets) {
			end = offsets[i+1]
		}
		fields[i], err = decodeBytesOpt(buf[offsets[i]:end])
		if err != nil {
			return total, fmt.Errorf("field %d: %w", i, err)
		}
	}
	w.Lock, w.InputType, w.OutputType = fields[0], fields[1], fields[2]
	return total, nil
}

func decodeOffsets(header []byte, size uint32) ([]uint32, error) {
	dec := scale.NewDecoder(bytes.NewReader(header))
	offsets := make([]uint32, 0, witnessArgsFields)
	for i := 0; i < witnessArgsFields; i++ {
		offset, _, err := scale.DecodeUint32(dec)
		if err != nil {
			return nil, err
		}
		offsets = append(offsets, offset)
	}
	if offsets[0] != witnessArgsHeader {
		return nil, fmt.Errorf("%w: expected %d fields", errMalformedTable, witnessArgsFields)
	}
	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			return nil, fmt.Errorf("%w: offsets are not ordered", errMalformedTable)
		}
	}
	if offsets[len(offsets)-1] > size {
		return nil, fmt.Errorf("%w: offset out of bound", errMalformedTable)
	}
	return offsets, nil
}

func decodeBytesOpt(raw []byte) (fn.Option[[]byte], error) {
	if len(raw) == 0 {
		return fn.None[[]byte](), nil
	}
	if len(raw) < 4 {
		return fn.None[[]byte](), fmt.Errorf("%w: bytes header is truncated", errMalformedTable)
	}
	length, _, err := scale.DecodeUint32(scale.NewDecoder(bytes.NewReader(raw[:4])))
	if err != nil {
		return fn.None[[]byte](), err
	}
	if uint64(length) != uint64(len(raw)-4) {
		return fn.None[[]byte](), fmt.Errorf("%w: bytes length %d doesn't match %d", errMalformedTable, length, len(raw)-4)
	}
	return fn.Some(raw[4:]), nil
}
