package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_WriteAndBytes(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.MustWrite([]byte("hello"))
	require.Equal(t, 5, bb.Len())
	require.Equal(t, []byte("hello"), bb.Bytes())

	n, err := bb.Write([]byte(" world"))
	require.NoError(t, err)
	require.Equal(t, 6, n)
	require.Equal(t, "hello world", string(bb.Bytes()))
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.MustWrite([]byte("data"))
	capBefore := bb.Cap()

	bb.Reset()
	require.Equal(t, 0, bb.Len())
	// Reset keeps the allocation for reuse.
	require.Equal(t, capBefore, bb.Cap())
}

func TestByteBuffer_Grow(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.Grow(1024)
	require.GreaterOrEqual(t, bb.Cap(), 1024)
	require.Equal(t, 0, bb.Len())

	// Growing within capacity is a no-op.
	capBefore := bb.Cap()
	bb.Grow(16)
	require.Equal(t, capBefore, bb.Cap())
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.MustWrite([]byte("payload"))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(7), n)
	require.Equal(t, "payload", out.String())
}

func TestByteBufferPool_GetPut(t *testing.T) {
	p := NewByteBufferPool(16, 64)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.MustWrite([]byte("abc"))
	p.Put(bb)

	// Buffers returned to the pool come back reset.
	bb2 := p.Get()
	require.Equal(t, 0, bb2.Len())
	p.Put(bb2)
}

func TestByteBufferPool_DiscardsOversized(t *testing.T) {
	p := NewByteBufferPool(16, 32)

	bb := p.Get()
	bb.Grow(1024)
	p.Put(bb) // exceeds threshold, must not panic

	p.Put(nil) // nil is ignored
}

func TestSnapshotBufferHelpers(t *testing.T) {
	bb := GetSnapshotBuffer()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())
	bb.MustWrite([]byte{1, 2, 3})
	PutSnapshotBuffer(bb)
}
