package common

import "encoding/binary"

func AppendBinary(b []byte) []byte {
	var t []byte

	l := make([]byte, 4)
	binary.LittleEndian.PutUint32(l, uint32(len(b)))
	t = append(t, l...)
	t = append(t, b...)

	return t
}

// ExtractBinary reads one length-prefixed item from the head of b. It returns
// the item and the number of bytes consumed, or -1 when b is too short.
func ExtractBinary(b []byte) ([]byte, int) {
	if len(b) < 4 {
		return nil, -1
	}

	l := int(binary.LittleEndian.Uint32(b[:4]))
	if len(b) < 4+l {
		return nil, -1
	}

	return b[4 : 4+l], 4 + l
}

// ExtractBinaries splits b into the length-prefixed items written by
// AppendBinary.
func ExtractBinaries(b []byte) ([][]byte, error) {
	var items [][]byte

	var offset int
	for offset < len(b) {
		e, o := ExtractBinary(b[offset:])
		if o < 0 {
			return nil, InvalidBinaryError.Newf("not enough to read item; offset=%d length=%d", offset, len(b))
		}

		items = append(items, e)
		offset += o
	}

	return items, nil
}
