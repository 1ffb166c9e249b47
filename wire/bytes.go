package wire

import "github.com/arloliu/ethabi/errs"

// DecodeBytes decodes a variable-length `bytes` value. pos is the resolved
// byte position of the value's own encoding (the caller has already added
// any enclosing base to the head offset it read). The 32-byte length word at
// pos is read via mode, then a borrowed view of the next length bytes is
// returned; the 32-byte alignment padding the ABI adds after the data is
// excluded from the view.
func DecodeBytes(buf []byte, mode OffsetMode, pos int) (Bytes, error) {
	length, err := mode.ReadOffset(buf, pos)
	if err != nil {
		return nil, err
	}

	dataStart := pos + 32
	dataEnd := dataStart + length
	if dataEnd > len(buf) {
		return nil, errs.At(pos, errs.ErrMalformedLength)
	}

	return Bytes(buf[dataStart:dataEnd:dataEnd]), nil
}
