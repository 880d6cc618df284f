// Package messaging implements the browser native messaging framing: every
// message is a 32-bit little-endian length followed by that many bytes of
// UTF-8 JSON.
package messaging

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/drupalpod/drupalpod-cli/internal/domain/entities"
)

const (
	headerSize = 4
	// MaxOutgoingSize is the largest message a browser accepts from a host.
	MaxOutgoingSize = 1 << 20
	// MaxIncomingSize bounds what the host is willing to buffer.
	MaxIncomingSize = 64 << 20
)

var (
	ErrMessageTooLarge = errors.New("native message exceeds the size limit")
	ErrTruncated       = errors.New("native message truncated")
)

// NativeCodec reads requests from and writes responses to a native
// messaging channel. Writes are serialised.
type NativeCodec struct {
	reader io.Reader
	writer io.Writer
	mu     sync.Mutex
}

func NewNativeCodec(reader io.Reader, writer io.Writer) *NativeCodec {
	return &NativeCodec{reader: reader, writer: writer}
}

// Read returns the next message. io.EOF is returned untouched when the
// browser closes the channel between messages.
func (it *NativeCodec) Read() (*entities.Message, error) {
	var header [headerSize]byte
	if _, err := io.ReadFull(it.reader, header[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrTruncated
		}
		return nil, err
	}

	size := binary.LittleEndian.Uint32(header[:])
	if size > MaxIncomingSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrMessageTooLarge, size)
	}

	payload := make([]byte, size)
	if _, err := io.ReadFull(it.reader, payload); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTruncated, err)
	}

	var message entities.Message
	if err := json.Unmarshal(payload, &message); err != nil {
		return nil, fmt.Errorf("invalid native message: %w", err)
	}
	return &message, nil
}

// Write frames and sends a response.
func (it *NativeCodec) Write(response any) error {
	payload, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("failed to encode native message: %w", err)
	}
	if len(payload) > MaxOutgoingSize {
		return fmt.Errorf("%w: %d bytes", ErrMessageTooLarge, len(payload))
	}

	frame := make([]byte, headerSize+len(payload))
	binary.LittleEndian.PutUint32(frame, uint32(len(payload)))
	copy(frame[headerSize:], payload)

	it.mu.Lock()
	defer it.mu.Unlock()
	_, err = it.writer.Write(frame)
	return err
}
