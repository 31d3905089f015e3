package handler

import (
	"bytes"
	"sync"
)

// responseBufferSize covers typical task/yol payloads without regrowing
const responseBufferSize = 512

// bufferPool recycles encode buffers so JSON responses don't allocate per request
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, responseBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufferPool.Put(buf)
}
