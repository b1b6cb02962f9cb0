package blobstore

import (
	"context"
	"encoding/binary"
	"errors"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression defines the compression algorithm used by a CompressedStore.
type Compression uint8

const (
	// CompressionNone stores blobs uncompressed.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses ZSTD block compression (better ratio).
	CompressionZSTD Compression = 2
)

// Blob frame: [Algorithm uint8][UncompressedSize uint32][Data...]
// Algorithm 0 means the payload is stored raw; the frame is self-describing,
// so a CompressedStore can read blobs written with any algorithm.
const frameHeaderSize = 5

var errFrameTooSmall = errors.New("blobstore: blob too small for compression frame")

// ZSTD encoder/decoder pools for efficiency
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// CompressedStore wraps a Store and adds transparent blob compression.
type CompressedStore struct {
	inner Store
	algo  Compression
}

// NewCompressedStore creates a new CompressedStore writing with the given
// algorithm. Reads auto-detect the algorithm from the frame header.
func NewCompressedStore(inner Store, algo Compression) *CompressedStore {
	return &CompressedStore{
		inner: inner,
		algo:  algo,
	}
}

// Put compresses the blob and writes it through to the inner store.
// If compression does not help, the payload is framed raw.
func (s *CompressedStore) Put(ctx context.Context, name string, data []byte) error {
	framed, err := compressFrame(data, s.algo)
	if err != nil {
		return err
	}
	return s.inner.Put(ctx, name, framed)
}

// Get reads a blob from the inner store and decompresses it.
func (s *CompressedStore) Get(ctx context.Context, name string) ([]byte, error) {
	framed, err := s.inner.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	return decompressFrame(framed)
}

// List returns the names of blobs starting with prefix, sorted.
func (s *CompressedStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

// Delete removes a blob.
func (s *CompressedStore) Delete(ctx context.Context, name string) error {
	return s.inner.Delete(ctx, name)
}

// compressFrame compresses data with the given algorithm and prepends the
// frame header. Falls back to a raw frame when the ratio is poor (> 0.9).
func compressFrame(data []byte, algo Compression) ([]byte, error) {
	var compressed []byte
	var err error

	switch algo {
	case CompressionLZ4:
		compressed, err = compressLZ4(data)
	case CompressionZSTD:
		compressed = compressZSTD(data)
	}

	if err != nil {
		return nil, err
	}

	if compressed == nil || float64(len(compressed)) > float64(len(data))*0.9 {
		return frame(CompressionNone, data, data), nil
	}

	return frame(algo, data, compressed), nil
}

func frame(algo Compression, raw, payload []byte) []byte {
	result := make([]byte, frameHeaderSize+len(payload))
	result[0] = byte(algo)
	binary.LittleEndian.PutUint32(result[1:], uint32(len(raw)))
	copy(result[frameHeaderSize:], payload)
	return result
}

func compressLZ4(data []byte) ([]byte, error) {
	compressed := make([]byte, lz4.CompressBlockBound(len(data)))

	n, err := lz4.CompressBlock(data, compressed, nil)
	if err != nil {
		return nil, err
	}

	if n == 0 {
		return nil, nil // Incompressible
	}

	return compressed[:n], nil
}

func compressZSTD(data []byte) []byte {
	enc := getZstdEncoder()
	defer putZstdEncoder(enc)

	return enc.EncodeAll(data, nil)
}

// decompressFrame decodes a framed blob, auto-detecting the algorithm.
func decompressFrame(framed []byte) ([]byte, error) {
	if len(framed) < frameHeaderSize {
		return nil, errFrameTooSmall
	}

	algo := Compression(framed[0])
	uncompressedSize := binary.LittleEndian.Uint32(framed[1:])
	payload := framed[frameHeaderSize:]

	switch algo {
	case CompressionNone:
		if uint32(len(payload)) != uncompressedSize {
			return nil, errors.New("blobstore: raw frame size mismatch")
		}
		return payload, nil

	case CompressionLZ4:
		result := make([]byte, uncompressedSize)
		n, err := lz4.UncompressBlock(payload, result)
		if err != nil {
			return nil, err
		}
		if uint32(n) != uncompressedSize {
			return nil, errors.New("blobstore: decompressed size mismatch")
		}
		return result, nil

	case CompressionZSTD:
		dec := getZstdDecoder()
		defer putZstdDecoder(dec)

		decoded, err := dec.DecodeAll(payload, make([]byte, 0, uncompressedSize))
		if err != nil {
			return nil, err
		}
		if uint32(len(decoded)) != uncompressedSize {
			return nil, errors.New("blobstore: decompressed size mismatch")
		}
		return decoded, nil

	default:
		return nil, errors.New("blobstore: unknown compression algorithm")
	}
}
