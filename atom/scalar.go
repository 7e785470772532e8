package atom

import (
	"math"
	"strconv"

	"github.com/wippyai/atom-runtime/errors"
	"github.com/wippyai/atom-runtime/internal/abi"
)

// Body widths of the fixed-size atom types.
const (
	BoolSize   = 4
	IntSize    = 4
	LongSize   = 8
	FloatSize  = 4
	DoubleSize = 8
	URIDSize   = 4
)

func checkEncode(dst []byte, width uint32) error {
	if !abi.Fits(0, width, bufLen(dst)) {
		return errors.BufferOverflow(errors.PhaseEncode, 0, width, bufLen(dst))
	}
	return nil
}

func checkDecode(src []byte, width uint32, kind Kind) error {
	if uint64(len(src)) != uint64(width) {
		return errors.New(errors.PhaseDecode, errors.KindMalformed).
			Path(kind.String()).
			Got(strconv.Itoa(len(src)) + " bytes").
			Want(strconv.FormatUint(uint64(width), 10) + " bytes").
			Build()
	}
	return nil
}

// EncodeBool writes v into dst as an int32 0 or 1.
func EncodeBool(dst []byte, v bool) error {
	if err := checkEncode(dst, BoolSize); err != nil {
		return err
	}
	var n uint32
	if v {
		n = 1
	}
	abi.PutU32(dst, 0, n)
	return nil
}

// DecodeBool reads a Bool body. Any non-zero value is true.
func DecodeBool(src []byte) (bool, error) {
	if err := checkDecode(src, BoolSize, KindBool); err != nil {
		return false, err
	}
	return abi.U32(src, 0) != 0, nil
}

func EncodeInt(dst []byte, v int32) error {
	if err := checkEncode(dst, IntSize); err != nil {
		return err
	}
	abi.PutU32(dst, 0, uint32(v))
	return nil
}

func DecodeInt(src []byte) (int32, error) {
	if err := checkDecode(src, IntSize, KindInt); err != nil {
		return 0, err
	}
	return int32(abi.U32(src, 0)), nil
}

func EncodeLong(dst []byte, v int64) error {
	if err := checkEncode(dst, LongSize); err != nil {
		return err
	}
	abi.PutU64(dst, 0, uint64(v))
	return nil
}

func DecodeLong(src []byte) (int64, error) {
	if err := checkDecode(src, LongSize, KindLong); err != nil {
		return 0, err
	}
	return int64(abi.U64(src, 0)), nil
}

func EncodeFloat(dst []byte, v float32) error {
	if err := checkEncode(dst, FloatSize); err != nil {
		return err
	}
	abi.PutU32(dst, 0, math.Float32bits(v))
	return nil
}

func DecodeFloat(src []byte) (float32, error) {
	if err := checkDecode(src, FloatSize, KindFloat); err != nil {
		return 0, err
	}
	return math.Float32frombits(abi.U32(src, 0)), nil
}

func EncodeDouble(dst []byte, v float64) error {
	if err := checkEncode(dst, DoubleSize); err != nil {
		return err
	}
	abi.PutU64(dst, 0, math.Float64bits(v))
	return nil
}

func DecodeDouble(src []byte) (float64, error) {
	if err := checkDecode(src, DoubleSize, KindDouble); err != nil {
		return 0, err
	}
	return math.Float64frombits(abi.U64(src, 0)), nil
}

func EncodeURID(dst []byte, v URID) error {
	if err := checkEncode(dst, URIDSize); err != nil {
		return err
	}
	abi.PutU32(dst, 0, v)
	return nil
}

func DecodeURID(src []byte) (URID, error) {
	if err := checkDecode(src, URIDSize, KindURID); err != nil {
		return 0, err
	}
	return abi.U32(src, 0), nil
}
