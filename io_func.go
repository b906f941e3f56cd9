package iobuf

import (
	"io"

	"github.com/injoyai/iobuf/buf"
)

var (
	ReadWithAll      = buf.ReadWithAll
	ReadWithLine     = buf.ReadWithLine
	NewReadWithDelim = buf.NewReadWithDelim
	NewReadWithKB    = buf.NewReadWithKB
	ReadPrefix       = buf.ReadPrefix
	ReadLeast        = buf.ReadLeast
)

// CopyBuf 把r剩余的数据写入w,直接写入r的缓存,不额外分配
func CopyBuf(w Writer, r BufRead) (int64, error) {
	return CopyBufWith(w, r, nil)
}

// CopyBufWith 同CopyBuf,并提供函数监听
func CopyBufWith(w Writer, r BufRead, fn func(p []byte)) (int64, error) {
	var total int64
	for {
		bs, err := r.FillBuf()
		if err != nil {
			if err == io.EOF {
				return total, nil
			}
			return total, err
		}
		if fn != nil {
			fn(bs)
		}
		n, err := w.Write(bs)
		if n < 0 || n > len(bs) {
			return total, ErrInvalidWrite
		}
		r.Consume(n)
		total += int64(n)
		if err = dealErr(n, len(bs), err); err != nil {
			return total, err
		}
	}
}

// CopyWith 复制数据,每次最多1KB,并提供函数监听
func CopyWith(w Writer, r Reader, fn func(p []byte)) (int64, error) {
	if b, ok := r.(BufRead); ok {
		return CopyBufWith(w, b, fn)
	}
	return CopyBufWith(w, NewReader(r), fn)
}

type Read func(p []byte) (int, error)

func (this Read) Read(p []byte) (int, error) {
	return this(p)
}

type Write func(p []byte) (int, error)

func (this Write) Write(p []byte) (int, error) {
	return this(p)
}
