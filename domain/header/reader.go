package header

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// readerBufferSize is sized to hold a few thousand headers per read call.
const readerBufferSize = 1 << 18

// Reader reads consecutive HeaderSize records out of a stream.
type Reader struct {
	r       *bufio.Reader
	buf     [HeaderSize]byte
	count   uint64
	partial int
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReaderSize(r, readerBufferSize)}
}

// ReadBlock decodes the next header record. It returns io.EOF once the
// stream is exhausted. A trailing record shorter than HeaderSize is discarded
// and also reported as io.EOF.
func (hr *Reader) ReadBlock() (*Block, error) {
	n, err := io.ReadFull(hr.r, hr.buf[:])
	switch {
	case errors.Is(err, io.EOF):
		return nil, io.EOF
	case errors.Is(err, io.ErrUnexpectedEOF):
		hr.partial = n
		log.Debugf("Discarding %d trailing bytes after %d headers", n, hr.count)
		return nil, io.EOF
	case err != nil:
		return nil, errors.Wrapf(err, "failed reading header #%d", hr.count)
	}

	block, err := DecodeBlock(hr.buf[:])
	if err != nil {
		return nil, err
	}
	hr.count++
	log.Tracef("Read header #%d: %s", hr.count-1, block)
	return block, nil
}

// Count returns the number of headers decoded so far.
func (hr *Reader) Count() uint64 {
	return hr.count
}

// PartialBytes returns the size of the discarded trailing record, if any.
func (hr *Reader) PartialBytes() int {
	return hr.partial
}

// ReadAll decodes every header in r.
func ReadAll(r io.Reader) ([]*Block, error) {
	hr := NewReader(r)
	var blocks []*Block
	for {
		block, err := hr.ReadBlock()
		if errors.Is(err, io.EOF) {
			return blocks, nil
		}
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}
}
