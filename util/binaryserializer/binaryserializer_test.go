package binaryserializer

import (
	"bytes"
	"io"
	"testing"

	"github.com/pkg/errors"
)

func TestUint32RoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		value   uint32
		encoded []byte
	}{
		{name: "zero", value: 0, encoded: []byte{0, 0, 0, 0}},
		{name: "compact bits", value: 0x1d00ffff, encoded: []byte{0xff, 0xff, 0x00, 0x1d}},
		{name: "max", value: 0xffffffff, encoded: []byte{0xff, 0xff, 0xff, 0xff}},
	}

	for _, test := range tests {
		var buf bytes.Buffer
		err := PutUint32(&buf, test.value)
		if err != nil {
			t.Fatalf("%s: PutUint32: %v", test.name, err)
		}
		if !bytes.Equal(buf.Bytes(), test.encoded) {
			t.Errorf("%s: PutUint32 wrote %x, want %x", test.name, buf.Bytes(), test.encoded)
		}

		value, err := Uint32(&buf)
		if err != nil {
			t.Fatalf("%s: Uint32: %v", test.name, err)
		}
		if value != test.value {
			t.Errorf("%s: Uint32 got %d, want %d", test.name, value, test.value)
		}
	}
}

func TestInt32Negative(t *testing.T) {
	var buf bytes.Buffer
	err := PutInt32(&buf, -2)
	if err != nil {
		t.Fatalf("PutInt32: %v", err)
	}
	value, err := Int32(&buf)
	if err != nil {
		t.Fatalf("Int32: %v", err)
	}
	if value != -2 {
		t.Errorf("Int32 got %d, want -2", value)
	}
}

func TestUint32ShortRead(t *testing.T) {
	_, err := Uint32(bytes.NewReader([]byte{0x01, 0x02}))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("Uint32: got error %v, want %v", err, io.ErrUnexpectedEOF)
	}
}
