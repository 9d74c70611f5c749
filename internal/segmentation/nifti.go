package segmentation

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/klauspost/compress/gzip"
)

// NIfTI-1 single file layout.
const (
	headerSize    = 348
	dataOffset    = 352
	maxDims       = 7
	dimPos        = 40
	datatypePos   = 70
	bitpixPos     = 72
	pixdimPos     = 76
	voxOffsetPos  = 108
	sclSlopePos   = 112
	sclInterPos   = 116
	calMaxPos     = 124
	calMinPos     = 128
	magicPos      = 344
	singleFileTag = "n+1"
)

const (
	dtUint8   int16 = 2
	dtInt16   int16 = 4
	dtInt32   int16 = 8
	dtFloat32 int16 = 16
	dtFloat64 int16 = 64
	dtInt8    int16 = 256
	dtUint16  int16 = 512
	dtUint32  int16 = 768
)

var datatypeSizes = map[int16]int{
	dtUint8:   1,
	dtInt8:    1,
	dtInt16:   2,
	dtUint16:  2,
	dtInt32:   4,
	dtUint32:  4,
	dtFloat32: 4,
	dtFloat64: 8,
}

// Volume is a decoded intensity grid. Data is laid out as stored in the file
// (first dimension varies fastest).
type Volume struct {
	Dims []int
	Data []float32

	header []byte
	order  binary.ByteOrder
}

// NewVolume builds a little-endian float32 volume with unit voxel spacing.
func NewVolume(dims []int, data []float32) *Volume {
	hdr := make([]byte, headerSize)
	order := binary.LittleEndian

	order.PutUint32(hdr[0:], headerSize)
	order.PutUint16(hdr[dimPos:], uint16(len(dims)))
	for i, d := range dims {
		order.PutUint16(hdr[dimPos+2*(i+1):], uint16(d))
		order.PutUint32(hdr[pixdimPos+4*(i+1):], math.Float32bits(1))
	}
	order.PutUint16(hdr[datatypePos:], uint16(dtFloat32))
	order.PutUint16(hdr[bitpixPos:], 32)
	order.PutUint32(hdr[voxOffsetPos:], math.Float32bits(dataOffset))
	order.PutUint32(hdr[sclSlopePos:], math.Float32bits(1))
	copy(hdr[magicPos:], singleFileTag+"\x00")

	return &Volume{
		Dims:   dims,
		Data:   data,
		header: hdr,
		order:  order,
	}
}

// Decode reads a NIfTI-1 image, gzip-compressed or not.
func Decode(r io.Reader) (*Volume, error) {
	br := bufio.NewReader(r)

	var src io.Reader = br
	if magic, err := br.Peek(2); err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, loadError(err, "failed to open gzip stream")
		}
		defer gz.Close()

		src = gz
	}

	raw, err := io.ReadAll(src)
	if err != nil {
		return nil, loadError(err, "failed to read image")
	}

	return decode(raw)
}

func decode(raw []byte) (*Volume, error) {
	if len(raw) < headerSize {
		return nil, loadError(nil, "file is %d bytes, shorter than a NIfTI-1 header", len(raw))
	}

	var order binary.ByteOrder = binary.LittleEndian
	if order.Uint32(raw[0:]) != headerSize {
		order = binary.BigEndian
		if order.Uint32(raw[0:]) != headerSize {
			return nil, loadError(nil, "not a NIfTI-1 header")
		}
	}

	if tag := string(bytes.TrimRight(raw[magicPos:magicPos+4], "\x00")); tag != singleFileTag {
		return nil, loadError(nil, "unsupported magic %q, only single-file NIfTI-1 is supported", tag)
	}

	ndim := int(int16(order.Uint16(raw[dimPos:])))
	if ndim < 1 || ndim > maxDims {
		return nil, loadError(nil, "invalid number of dimensions %d", ndim)
	}

	dims := make([]int, ndim)
	count := 1
	for i := range dims {
		d := int(int16(order.Uint16(raw[dimPos+2*(i+1):])))
		if d < 0 {
			return nil, loadError(nil, "invalid size %d of dimension %d", d, i+1)
		}
		if d > 0 && count > len(raw)/d {
			return nil, loadError(nil, "dimensions exceed file size")
		}

		dims[i] = d
		count *= d
	}

	datatype := int16(order.Uint16(raw[datatypePos:]))
	size, ok := datatypeSizes[datatype]
	if !ok {
		return nil, loadError(nil, "unsupported datatype %d", datatype)
	}

	offset := int(math.Float32frombits(order.Uint32(raw[voxOffsetPos:])))
	if offset < dataOffset {
		return nil, loadError(nil, "invalid voxel offset %d", offset)
	}

	end := offset + count*size
	if len(raw) < end {
		return nil, loadError(io.ErrUnexpectedEOF, "voxel data truncated: need %d bytes, have %d", end, len(raw))
	}

	slope := float64(math.Float32frombits(order.Uint32(raw[sclSlopePos:])))
	inter := float64(math.Float32frombits(order.Uint32(raw[sclInterPos:])))
	scaled := slope != 0 && !math.IsNaN(slope) && !(slope == 1 && inter == 0)

	payload := raw[offset:end]
	data := make([]float32, count)
	for i := range data {
		v := voxel(payload[i*size:], datatype, order)
		if scaled {
			v = v*slope + inter
		}
		data[i] = float32(v)
	}

	return &Volume{
		Dims:   dims,
		Data:   data,
		header: bytes.Clone(raw[:headerSize]),
		order:  order,
	}, nil
}

func voxel(b []byte, datatype int16, order binary.ByteOrder) float64 {
	switch datatype {
	case dtUint8:
		return float64(b[0])
	case dtInt8:
		return float64(int8(b[0]))
	case dtInt16:
		return float64(int16(order.Uint16(b)))
	case dtUint16:
		return float64(order.Uint16(b))
	case dtInt32:
		return float64(int32(order.Uint32(b)))
	case dtUint32:
		return float64(order.Uint32(b))
	case dtFloat32:
		return float64(math.Float32frombits(order.Uint32(b)))
	case dtFloat64:
		return math.Float64frombits(order.Uint64(b))
	default:
		return math.NaN()
	}
}

// EncodeMask writes mask as a gzip NIfTI-1 uint8 image sharing the volume geometry.
func (v *Volume) EncodeMask(mask []uint8) ([]byte, error) {
	if len(mask) != len(v.Data) {
		return nil, fmt.Errorf("mask has %d voxels, volume has %d", len(mask), len(v.Data))
	}

	hdr := bytes.Clone(v.header)
	v.order.PutUint16(hdr[datatypePos:], uint16(dtUint8))
	v.order.PutUint16(hdr[bitpixPos:], 8)
	v.order.PutUint32(hdr[voxOffsetPos:], math.Float32bits(dataOffset))
	v.order.PutUint32(hdr[sclSlopePos:], math.Float32bits(1))
	v.order.PutUint32(hdr[sclInterPos:], math.Float32bits(0))
	v.order.PutUint32(hdr[calMaxPos:], math.Float32bits(1))
	v.order.PutUint32(hdr[calMinPos:], math.Float32bits(0))

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)

	// header, empty extension flag, voxels
	_, err := gz.Write(hdr)
	if err == nil {
		_, err = gz.Write(make([]byte, dataOffset-headerSize))
	}
	if err == nil {
		_, err = gz.Write(mask)
	}
	if err = errors.Join(err, gz.Close()); err != nil {
		return nil, fmt.Errorf("failed to compress mask: %w", err)
	}

	return buf.Bytes(), nil
}
