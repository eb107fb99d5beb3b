package checkpoint

import (
	"github.com/spacemeshos/go-scale"
	"lukechampine.com/uint128"
)

func encodeUint128(enc *scale.Encoder, value uint128.Uint128) (int, error) {
	var buf [16]byte
	value.PutBytes(buf[:])
	return scale.EncodeByteArray(enc, buf[:])
}

func decodeUint128(dec *scale.Decoder) (uint128.Uint128, int, error) {
	var buf [16]byte
	n, err := scale.DecodeByteArray(dec, buf[:])
	if err != nil {
		return uint128.Zero, n, err
	}
	return uint128.FromBytes(buf[:]), n, nil
}

func (t *Record) EncodeScale(enc *scale.Encoder) (total int, err error) {
	{
		n, err := scale.EncodeByte(enc, t.Version)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeByte(enc, t.State)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeUint64(enc, t.Period)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeUint64(enc, t.Era)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeByteArray(enc, t.BlockHash[:])
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeUint32(enc, t.PeriodInterval)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeUint32(enc, t.EraPeriod)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeUint32(enc, t.UnlockPeriod)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := encodeUint128(enc, t.BaseReward)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeUint64(enc, t.HalfPeriod)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeByteArray(enc, t.SudtTypeHash[:])
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeByteArray(enc, t.StakeTypeHash[:])
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeByteArray(enc, t.WithdrawalLockCodeHash[:])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

func (t *Record) DecodeScale(dec *scale.Decoder) (total int, err error) {
	{
		field, n, err := scale.DecodeByte(dec)
		if err != nil {
			return total, err
		}
		total += n
		t.Version = field
	}
	{
		field, n, err := scale.DecodeByte(dec)
		if err != nil {
			return total, err
		}
		total += n
		t.State = field
	}
	{
		field, n, err := scale.DecodeUint64(dec)
		if err != nil {
			return total, err
		}
		total += n
		t.Period = field
	}
	{
		field, n, err := scale.DecodeUint64(dec)
		if err != nil {
			return total, err
		}
		total += n
		t.Era = field
	}
	{
		n, err := scale.DecodeByteArray(dec, t.BlockHash[:])
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		field, n, err := scale.DecodeUint32(dec)
		if err != nil {
			return total, err
		}
		total += n
		t.PeriodInterval = field
	}
	{
		field, n, err := scale.DecodeUint32(dec)
		if err != nil {
			return total, err
		}
		total += n
		t.EraPeriod = field
	}
	{
		field, n, err := scale.DecodeUint32(dec)
		if err != nil {
			return total, err
		}
		total += n
		t.UnlockPeriod = field
	}
	{
		field, n, err := decodeUint128(dec)
		if err != nil {
			return total, err
		}
		total += n
		t.BaseReward = field
	}
	{
		field, n, err := scale.DecodeUint64(dec)
		if err != nil {
			return total, err
		}
		total += n
		t.HalfPeriod = field
	}
	{
		n, err := scale.DecodeByteArray(dec, t.SudtTypeHash[:])
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.DecodeByteArray(dec, t.StakeTypeHash[:])
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.DecodeByteArray(dec, t.WithdrawalLockCodeHash[:])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

func (t *Args) EncodeScale(enc *scale.Encoder) (total int, err error) {
	{
		n, err := t.AdminIdentity.EncodeScale(enc)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeByteArray(enc, t.TypeIDHash[:])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

func (t *Args) DecodeScale(dec *scale.Decoder) (total int, err error) {
	{
		n, err := t.AdminIdentity.DecodeScale(dec)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.DecodeByteArray(dec, t.TypeIDHash[:])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
