package iobuf

import (
	"errors"
	"io"
	"sync"
)

var ErrInvalidStep = errors.New("分块处理返回了无效的长度")

// scratchPool 分块传输的中转区域,每次传输只借用一块,大小和传输总量无关
var scratchPool = sync.Pool{New: func() interface{} { return new([DefaultScratchSize]byte) }}

// StepFunc 分块处理函数,返回处理(或生成)的字节数,小于len(p)时传输结束
type StepFunc func(p []byte) (int, error)

// Consume 把b剩余的数据分块(最大4KB)读取出来交给fn处理,返回fn处理的总字节数
func Consume(b Buf, fn StepFunc) (int, error) {
	scratch := scratchPool.Get().(*[DefaultScratchSize]byte)
	defer scratchPool.Put(scratch)
	return ConsumeWith(b, scratch[:], fn)
}

// ConsumeWith 同Consume,使用调用方提供的中转区域
// 每次读取min(len(scratch),剩余长度)字节,fn处理的少于读取的时候结束
func ConsumeWith(b Buf, scratch []byte, fn StepFunc) (int, error) {
	size := b.Remaining()
	if size > 0 && len(scratch) == 0 {
		return 0, io.ErrShortBuffer
	}
	count := 0
	for {
		n := size - count
		if n > len(scratch) {
			n = len(scratch)
		}
		if n <= 0 {
			return count, nil
		}
		if _, err := io.ReadFull(b, scratch[:n]); err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return count, err
		}
		read, err := fn(scratch[:n])
		if read < 0 || read > n {
			return count, ErrInvalidStep
		}
		count += read
		if err != nil {
			return count, err
		}
		if read < n {
			return count, nil
		}
	}
}

// Fill 由fn分块(最大4KB)生成数据写入b,直到写满b的剩余空间,返回写入的总字节数
func Fill(b BufMut, fn StepFunc) (int, error) {
	scratch := scratchPool.Get().(*[DefaultScratchSize]byte)
	defer scratchPool.Put(scratch)
	return FillWith(b, scratch[:], fn)
}

// FillWith 同Fill,使用调用方提供的中转区域
// fn生成的少于请求的时候结束
func FillWith(b BufMut, scratch []byte, fn StepFunc) (int, error) {
	size := b.Remaining()
	if size > 0 && len(scratch) == 0 {
		return 0, io.ErrShortBuffer
	}
	count := 0
	for {
		n := size - count
		if n > len(scratch) {
			n = len(scratch)
		}
		if n <= 0 {
			return count, nil
		}
		written, err := fn(scratch[:n])
		if written < 0 || written > n {
			return count, ErrInvalidStep
		}
		if written > 0 {
			if _, werr := b.Write(scratch[:written]); werr != nil {
				return count, werr
			}
		}
		count += written
		if err != nil {
			return count, err
		}
		if written < n {
			return count, nil
		}
	}
}
