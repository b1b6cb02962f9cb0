package bank

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/hupe1980/thomasq/blobstore"
	"github.com/hupe1980/thomasq/codec"
)

// Blob layout: [magic "TQBK"][version uint8][codec name length uint8]
// [codec name][payload]. The codec name makes blobs self-describing, so a
// bank written with one codec can be loaded while another is the default.
var blobMagic = []byte("TQBK")

const blobFormatVersion = 1

// ErrMalformedBlob is returned when a blob does not parse as a bank.
var ErrMalformedBlob = errors.New("bank: malformed bank blob")

// Save encodes the bank with the given codec and writes it to the store.
// A nil codec selects codec.Default.
func (b *Bank) Save(ctx context.Context, store blobstore.Store, name string, c codec.Codec) error {
	if c == nil {
		c = codec.Default
	}

	payload, err := c.Marshal(b)
	if err != nil {
		return fmt.Errorf("bank: encode with codec %s: %w", c.Name(), err)
	}

	cname := c.Name()
	if len(cname) == 0 || len(cname) > 255 {
		return fmt.Errorf("bank: codec name %q not encodable", cname)
	}

	blob := make([]byte, 0, len(blobMagic)+2+len(cname)+len(payload))
	blob = append(blob, blobMagic...)
	blob = append(blob, blobFormatVersion, byte(len(cname)))
	blob = append(blob, cname...)
	blob = append(blob, payload...)

	return store.Put(ctx, name, blob)
}

// Load reads a bank blob from the store and decodes it with the codec named
// in its header.
func Load(ctx context.Context, store blobstore.Store, name string) (*Bank, error) {
	blob, err := store.Get(ctx, name)
	if err != nil {
		return nil, err
	}

	if len(blob) < len(blobMagic)+2 || !bytes.Equal(blob[:len(blobMagic)], blobMagic) {
		return nil, ErrMalformedBlob
	}

	version := blob[len(blobMagic)]
	if version != blobFormatVersion {
		return nil, fmt.Errorf("bank: unsupported blob format version %d", version)
	}

	nameLen := int(blob[len(blobMagic)+1])
	headerLen := len(blobMagic) + 2 + nameLen
	if len(blob) < headerLen {
		return nil, ErrMalformedBlob
	}

	cname := string(blob[len(blobMagic)+2 : headerLen])
	c, ok := codec.ByName(cname)
	if !ok {
		return nil, fmt.Errorf("bank: unknown codec %q", cname)
	}

	var b Bank
	if err := c.Unmarshal(blob[headerLen:], &b); err != nil {
		return nil, fmt.Errorf("bank: decode with codec %s: %w", cname, err)
	}

	return &b, nil
}
