// Copyright 2024 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package abi

import (
	"errors"
	"fmt"
)

var errBufferOverrun = errors.New("abi: encode buffer too small")

// EncodeBuffer is a cursor over a caller-owned span laid out as the ABI head
// followed by the data area. Each encoder takes exactly its slot from the head
// and, if dynamic, exactly its payload from the data area. Offsets written
// into the head are relative to the start of the span.
//
// A nested frame (see Frame) is itself an EncodeBuffer whose span is the
// encoding of one dynamic array's elements; element offsets are relative to
// that frame, as the ABI requires.
// EncodeBuffer 是在调用方提供的字节区间上的游标：前部为头部，后部为数据区。
type EncodeBuffer struct {
	head       []byte // unwritten part of the head
	data       []byte // unwritten part of the data area
	headLength int
	dataOffset int // offset of data[0] from the span start
}

// NewEncodeBuffer slices span into [0, headLength) as the head and the rest
// as the data area.
func NewEncodeBuffer(span []byte, headLength int) *EncodeBuffer {
	return &EncodeBuffer{
		head:       span[:headLength:headLength],
		data:       span[headLength:],
		headLength: headLength,
		dataOffset: headLength,
	}
}

// HeadLength returns the head size the buffer was created with.
func (b *EncodeBuffer) HeadLength() int { return b.headLength }

// DataOffset returns the offset, relative to the span start, at which the
// next data payload will be written.
func (b *EncodeBuffer) DataOffset() int { return b.dataOffset }

// takeHead consumes the next n head bytes.
func (b *EncodeBuffer) takeHead(n int) ([]byte, error) {
	if n > len(b.head) {
		return nil, fmt.Errorf("%w: head needs %d bytes, %d left", errBufferOverrun, n, len(b.head))
	}
	slot := b.head[:n:n]
	b.head = b.head[n:]
	return slot, nil
}

// takeData consumes the next n data bytes and returns them together with the
// offset they start at.
func (b *EncodeBuffer) takeData(n int) ([]byte, int, error) {
	if n > len(b.data) {
		return nil, 0, fmt.Errorf("%w: data needs %d bytes, %d left", errBufferOverrun, n, len(b.data))
	}
	offset := b.dataOffset
	payload := b.data[:n:n]
	b.data = b.data[n:]
	b.dataOffset += n
	return payload, offset, nil
}

// Frame reserves a length-prefixed region of the data area: one word holding
// count, followed by size bytes that are returned as a nested buffer with a
// head of headLength bytes. The returned offset points at the count word and
// is what the parent head slot must hold. Offsets written inside the nested
// buffer are relative to its own start, i.e. the word after the count.
// Frame 在数据区预留带长度前缀的区域，并返回嵌套缓冲区及其偏移量。
func (b *EncodeBuffer) Frame(count, headLength, size int) (*EncodeBuffer, int, error) {
	if headLength > size {
		return nil, 0, fmt.Errorf("%w: frame head %d exceeds frame size %d", errBufferOverrun, headLength, size)
	}
	region, offset, err := b.takeData(32 + size)
	if err != nil {
		return nil, 0, err
	}
	putUint64Word(region[:32], uint64(count))
	return NewEncodeBuffer(region[32:], headLength), offset, nil
}

// Finish verifies that every head and data byte was written exactly once.
func (b *EncodeBuffer) Finish() error {
	if len(b.head) != 0 || len(b.data) != 0 {
		return fmt.Errorf("abi: encoding left %d head and %d data bytes unwritten", len(b.head), len(b.data))
	}
	return nil
}

// DecodeBuffer is the read side of EncodeBuffer. It keeps the whole span so
// that an offset in the head can address any later part of the encoding.
// DecodeBuffer 保留整个字节区间，使头部中的偏移量可以指向任意后续数据。
type DecodeBuffer struct {
	span   []byte
	head   []byte // unread part of the head
	strict bool
}

// NewDecodeBuffer creates a decoder over span. In strict mode padding bytes
// and the leading bytes of narrow values are checked.
func NewDecodeBuffer(span []byte, strict bool) *DecodeBuffer {
	return &DecodeBuffer{span: span, head: span, strict: strict}
}

// Strict reports whether padding validation is enabled.
func (b *DecodeBuffer) Strict() bool { return b.strict }

// Consumed returns how many head bytes were read so far.
func (b *DecodeBuffer) Consumed() int { return len(b.span) - len(b.head) }

func (b *DecodeBuffer) takeHead(n int) ([]byte, error) {
	if n > len(b.head) {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", errShortData, n, b.Consumed(), len(b.head))
	}
	slot := b.head[:n:n]
	b.head = b.head[n:]
	return slot, nil
}

// slice returns span[offset:offset+n] or an error if it is out of bounds.
func (b *DecodeBuffer) slice(offset, n uint64) ([]byte, error) {
	if offset > uint64(len(b.span)) {
		return nil, fmt.Errorf("%w: %d > %d", errBadOffset, offset, len(b.span))
	}
	if n > uint64(len(b.span))-offset {
		return nil, fmt.Errorf("%w: %d bytes at offset %d, span is %d", errBadLength, n, offset, len(b.span))
	}
	return b.span[offset : offset+n : offset+n], nil
}

// Frame reads the count word at offset and returns it with a nested decoder
// over the bytes that follow it. It is the read side of EncodeBuffer.Frame.
func (b *DecodeBuffer) Frame(offset uint64) (uint64, *DecodeBuffer, error) {
	word, err := b.slice(offset, 32)
	if err != nil {
		return 0, nil, err
	}
	count, err := readSize(word)
	if err != nil {
		return 0, nil, err
	}
	return count, NewDecodeBuffer(b.span[offset+32:], b.strict), nil
}

// Len returns the size of the whole span.
func (b *DecodeBuffer) Len() int { return len(b.span) }
