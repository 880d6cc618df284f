//go:build unit

package messaging_test

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drupalpod/drupalpod-cli/internal/domain/entities"
	"github.com/drupalpod/drupalpod-cli/internal/infrastructure/repositories/messaging"
)

func frame(payload string) []byte {
	buf := make([]byte, 4+len(payload))
	binary.LittleEndian.PutUint32(buf, uint32(len(payload)))
	copy(buf[4:], payload)
	return buf
}

func TestNativeCodec_Read(t *testing.T) {
	t.Parallel()

	t.Run("should decode consecutive frames and then report EOF", func(t *testing.T) {
		t.Parallel()
		// given
		input := append(
			frame(`{"message":"fetch-drupalpod-repo"}`),
			frame(`{"action":"getPageInfo","url":"https://www.drupal.org/project/token/issues/1"}`)...,
		)
		codec := messaging.NewNativeCodec(bytes.NewReader(input), io.Discard)

		// when
		first, firstErr := codec.Read()
		second, secondErr := codec.Read()
		_, eofErr := codec.Read()

		// then
		require.NoError(t, firstErr)
		require.NoError(t, secondErr)
		assert.Equal(t, entities.MessageFetchRepo, first.Message)
		assert.Equal(t, entities.ActionGetPageInfo, second.Action)
		assert.Equal(t, "https://www.drupal.org/project/token/issues/1", second.URL)
		assert.ErrorIs(t, eofErr, io.EOF)
	})

	t.Run("should report a truncated payload", func(t *testing.T) {
		t.Parallel()
		// given
		input := frame(`{"message":"fetch-drupalpod-repo"}`)
		codec := messaging.NewNativeCodec(bytes.NewReader(input[:10]), io.Discard)

		// when
		_, err := codec.Read()

		// then
		assert.ErrorIs(t, err, messaging.ErrTruncated)
	})

	t.Run("should reject frames above the size limit", func(t *testing.T) {
		t.Parallel()
		// given
		header := make([]byte, 4)
		binary.LittleEndian.PutUint32(header, messaging.MaxIncomingSize+1)
		codec := messaging.NewNativeCodec(bytes.NewReader(header), io.Discard)

		// when
		_, err := codec.Read()

		// then
		assert.ErrorIs(t, err, messaging.ErrMessageTooLarge)
	})
}

func TestNativeCodec_Write(t *testing.T) {
	t.Parallel()

	t.Run("should prefix the JSON payload with its little-endian length", func(t *testing.T) {
		t.Parallel()
		// given
		var out bytes.Buffer
		codec := messaging.NewNativeCodec(bytes.NewReader(nil), &out)

		// when
		err := codec.Write(entities.MessageResponse{Message: entities.MessageAcknowledge})

		// then
		require.NoError(t, err)
		payload := `{"message":"great success"}`
		assert.Equal(t, frame(payload), out.Bytes())
	})
}
