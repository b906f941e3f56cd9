package iobuf

import (
	"errors"
	"io"

	"github.com/injoyai/iobuf/buf"
)

var (
	ErrInvalidUTF8   = buf.ErrInvalidUTF8
	ErrInvalidRead   = buf.ErrInvalidRead
	ErrInvalidWrite  = errors.New("写入返回了无效的长度")
	ErrWriteZero     = errors.New("写入返回0字节")
	ErrNegativeSeek  = errors.New("无效的偏移位置")
	ErrWhence        = errors.New("无效的whence")
	ErrWriterClosed  = errors.New("写入已关闭的缓存")
	ErrBufferFull    = errors.New("超出缓存容量")
	ErrNegativeCount = errors.New("无效的负数长度")
)

// dealErr 把没有返回错误的短写入整理成错误
func dealErr(n, want int, err error) error {
	if err == nil && n < want {
		if n == 0 {
			return ErrWriteZero
		}
		return io.ErrShortWrite
	}
	return err
}
