// Package demofile frames the top-level command stream spec.md §1 and §6
// name as the external "DemoFile" collaborator: demo-file framing and
// protobuf message dispatch. Real Source 2 demo framing is pinned to a
// specific game build's .proto schema, which this pack does not carry; this
// implements the varint + protobuf + optional-snappy framing idiom the
// teacher uses for its own wire messages
// (beacon-chain/p2p/encoder.SszNetworkEncoder), documented as a substitute
// container format for fixture streams rather than a real .dem reader.
package demofile

import (
	"encoding/binary"
	"io"

	"github.com/golang/snappy"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// compressedFlag is OR'd into a command's Kind on the wire when its payload
// was snappy-compressed before framing, mirroring the high bit Source demo
// files reserve on their own command-kind byte for the same purpose.
const compressedFlag = 1 << 30

// Kind discriminates a command's payload.
type Kind uint32

const (
	// KindPacketEntities carries a bit stream of packet-entity records:
	// slot index, DeltaHeader, and the per-entity delta payloads that
	// internal/entities.Container.HandleCreate/HandleUpdate/HandleDelete
	// consume.
	KindPacketEntities Kind = 1
	// KindStop marks the end of the command stream.
	KindStop Kind = 2
	// KindInstanceBaseline carries one instance-baseline table update: a
	// varint32 class id followed by that class's baseline byte blob.
	KindInstanceBaseline Kind = 3
)

// Command is one framed entry in a demo command stream.
type Command struct {
	Kind    Kind
	Tick    uint32
	Payload []byte
}

// Writer frames commands onto an io.Writer. Used by fixture-building code
// and tests; not part of the read-only core.
type Writer struct {
	w io.Writer
}

// NewWriter returns a Writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteCommand frames one command. If compress is true, the protobuf
// payload is snappy-compressed before the length prefix.
func (w *Writer) WriteCommand(kind Kind, tick uint32, payload []byte, compress bool) error {
	msg := &wrapperspb.BytesValue{Value: payload}
	raw, err := proto.Marshal(msg)
	if err != nil {
		return errors.Wrap(err, "demofile: failed to marshal command envelope")
	}

	wireKind := uint32(kind)
	if compress {
		raw = snappy.Encode(nil, raw)
		wireKind |= compressedFlag
	}

	if err := writeUvarint(w.w, uint64(wireKind)); err != nil {
		return err
	}
	if err := writeUvarint(w.w, uint64(tick)); err != nil {
		return err
	}
	if err := writeUvarint(w.w, uint64(len(raw))); err != nil {
		return err
	}
	_, err = w.w.Write(raw)
	return errors.Wrap(err, "demofile: failed to write command payload")
}

// Reader reads commands off an io.Reader.
type Reader struct {
	r io.ByteReader
}

// byteReaderFrom adapts a plain io.Reader to io.ByteReader when it doesn't
// already implement it, the same fallback bufio.NewReader provides.
func byteReaderFrom(r io.Reader) io.ByteReader {
	if br, ok := r.(io.ByteReader); ok {
		return br
	}
	return &singleByteReader{r: r}
}

type singleByteReader struct {
	r   io.Reader
	buf [1]byte
}

func (s *singleByteReader) ReadByte() (byte, error) {
	if _, err := io.ReadFull(s.r, s.buf[:]); err != nil {
		return 0, err
	}
	return s.buf[0], nil
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: byteReaderFrom(r)}
}

// ReadCommand reads and decodes the next command, returning io.EOF once the
// stream is exhausted cleanly at a command boundary.
func (r *Reader) ReadCommand() (*Command, error) {
	wireKind, err := binary.ReadUvarint(r.r)
	if err != nil {
		return nil, err
	}
	tick, err := binary.ReadUvarint(r.r)
	if err != nil {
		return nil, errors.Wrap(err, "demofile: failed to read tick")
	}
	size, err := binary.ReadUvarint(r.r)
	if err != nil {
		return nil, errors.Wrap(err, "demofile: failed to read payload size")
	}

	raw := make([]byte, size)
	for i := range raw {
		b, err := r.r.ReadByte()
		if err != nil {
			return nil, errors.Wrap(err, "demofile: failed to read payload bytes")
		}
		raw[i] = b
	}

	compressed := wireKind&compressedFlag != 0
	wireKind &^= compressedFlag

	if compressed {
		raw, err = snappy.Decode(nil, raw)
		if err != nil {
			return nil, errors.Wrap(err, "demofile: failed to decompress payload")
		}
	}

	var msg wrapperspb.BytesValue
	if err := proto.Unmarshal(raw, &msg); err != nil {
		return nil, errors.Wrap(err, "demofile: failed to unmarshal command envelope")
	}

	return &Command{Kind: Kind(wireKind), Tick: uint32(tick), Payload: msg.Value}, nil
}

func writeUvarint(w io.Writer, v uint64) error {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(buf[:], v)
	_, err := w.Write(buf[:n])
	return errors.Wrap(err, "demofile: failed to write varint")
}
