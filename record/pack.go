// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/cfishd/account"
	"github.com/bitmark-inc/cfishd/fault"
	"github.com/bitmark-inc/cfishd/util"
)

// Packed - packed records are just a byte slice
type Packed []byte

// TagType - type code for records
type TagType uint64

// AppendString - append a string prefixed by Varint64(length)
func AppendString(buffer []byte, s string) []byte {
	buffer = util.AppendVarint64(buffer, uint64(len(s)))
	return append(buffer, s...)
}

// AppendBytes - append bytes prefixed by Varint64(length)
func AppendBytes(buffer []byte, data []byte) []byte {
	buffer = util.AppendVarint64(buffer, uint64(len(data)))
	return append(buffer, data...)
}

// AppendAccount - append the fixed 32 bytes of an account
func AppendAccount(buffer []byte, a account.Account) []byte {
	return append(buffer, a[:]...)
}

// AppendUint64 - append a Varint64
func AppendUint64(buffer []byte, value uint64) []byte {
	return util.AppendVarint64(buffer, value)
}

// AppendInt64 - times are stored as their two's complement bits
func AppendInt64(buffer []byte, value int64) []byte {
	return util.AppendVarint64(buffer, uint64(value))
}

// AppendBool - append 0x00 or 0x01
func AppendBool(buffer []byte, b bool) []byte {
	if b {
		return append(buffer, 0x01)
	}
	return append(buffer, 0x00)
}

// Reader - sequential field decoder
//
// the first failure sticks; later reads return zero values so a
// decoder can read every field and check Err once at the end
type Reader struct {
	buffer []byte
	n      int
	err    error
}

// NewReader - start reading at the beginning of a buffer
func NewReader(buffer []byte) *Reader {
	return &Reader{
		buffer: buffer,
	}
}

// Err - the first error encountered
func (r *Reader) Err() error {
	return r.err
}

// Offset - number of bytes consumed so far
func (r *Reader) Offset() int {
	return r.n
}

// Uint64 - read a Varint64
func (r *Reader) Uint64() uint64 {
	if nil != r.err {
		return 0
	}
	value, count := util.FromVarint64(r.buffer[r.n:])
	if 0 == count {
		r.err = fault.ErrTruncatedRecord
		return 0
	}
	r.n += count
	return value
}

// Int64 - read a Varint64 holding a signed value
func (r *Reader) Int64() int64 {
	return int64(r.Uint64())
}

// Bool - read a single 0x00 or 0x01 byte
func (r *Reader) Bool() bool {
	b := r.fixed(1)
	if nil == b {
		return false
	}
	switch b[0] {
	case 0x00:
		return false
	case 0x01:
		return true
	default:
		r.err = fault.ErrUnexpectedRecordType
		return false
	}
}

// Byte - read a single byte
func (r *Reader) Byte() uint8 {
	b := r.fixed(1)
	if nil == b {
		return 0
	}
	return b[0]
}

// Account - read the fixed 32 bytes of an account
func (r *Reader) Account() account.Account {
	a := account.Account{}
	b := r.fixed(account.KeyLength)
	if nil != b {
		copy(a[:], b)
	}
	return a
}

// Bytes - read length prefixed bytes, rejecting anything longer than maximum
func (r *Reader) Bytes(maximum int, tooLong error) []byte {
	length := r.Uint64()
	if nil != r.err {
		return nil
	}
	if length > uint64(maximum) {
		r.err = tooLong
		return nil
	}
	b := r.fixed(int(length))
	if nil == b {
		return nil
	}
	return append([]byte{}, b...)
}

// String - read a length prefixed string
func (r *Reader) String(maximum int, tooLong error) string {
	return string(r.Bytes(maximum, tooLong))
}

func (r *Reader) fixed(length int) []byte {
	if nil != r.err {
		return nil
	}
	if len(r.buffer)-r.n < length {
		r.err = fault.ErrTruncatedRecord
		return nil
	}
	b := r.buffer[r.n : r.n+length]
	r.n += length
	return b
}
