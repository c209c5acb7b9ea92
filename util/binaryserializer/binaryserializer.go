package binaryserializer

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// maxItems is the number of buffers to keep in the free
// list to use for binary serialization and deserialization.
const maxItems = 64

// binaryFreeList provides a free list of 4-byte buffers used for
// serializing and deserializing the header's integer fields. A header
// carries four of them, so decoding a long header stream would otherwise
// allocate four small buffers per record.
var binaryFreeList = make(chan []byte, maxItems)

// Borrow returns a byte slice from the free list with a length of 4. A new
// buffer is allocated if there are not any available on the free list.
func Borrow() []byte {
	var buf []byte
	select {
	case buf = <-binaryFreeList:
	default:
		buf = make([]byte, 4)
	}
	return buf[:4]
}

// Return puts the provided byte slice back on the free list. The buffer MUST
// have been obtained via the Borrow function and therefore have a cap of 4.
func Return(buf []byte) {
	select {
	case binaryFreeList <- buf:
	default:
		// Let it go to the garbage collector.
	}
}

// Uint32 reads four bytes from the provided reader using a buffer from the
// free list and returns them as a little-endian uint32.
func Uint32(r io.Reader) (uint32, error) {
	buf := Borrow()
	defer Return(buf)
	if _, err := io.ReadFull(r, buf); err != nil {
		return 0, errors.WithStack(err)
	}
	return binary.LittleEndian.Uint32(buf), nil
}

// Int32 reads four bytes from the provided reader and returns them as a
// little-endian int32.
func Int32(r io.Reader) (int32, error) {
	rv, err := Uint32(r)
	return int32(rv), err
}

// PutUint32 serializes the provided uint32 as little-endian into a buffer
// from the free list and writes the resulting four bytes to the given writer.
func PutUint32(w io.Writer, val uint32) error {
	buf := Borrow()
	defer Return(buf)
	binary.LittleEndian.PutUint32(buf, val)
	_, err := w.Write(buf)
	return errors.WithStack(err)
}

// PutInt32 serializes the provided int32 as little-endian to the given writer.
func PutInt32(w io.Writer, val int32) error {
	return PutUint32(w, uint32(val))
}
