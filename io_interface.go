package iobuf

import (
	"github.com/injoyai/iobuf/buf"
)

type (
	// BufRead 带缓存的读取,FillBuf+Consume
	BufRead = buf.BufRead

	// InitReader 支持初始化提示的读取
	InitReader = buf.InitReader

	// ReadFunc 从缓存中读取一条消息
	ReadFunc = buf.ReadFunc
)

// Remainder 确定长度的数据源或写入目标
type Remainder interface {
	// Remaining 剩余可读取(或可写入)的字节数
	Remaining() int
}

// Buf 知道自己剩余长度的数据源
type Buf interface {
	Reader
	Remainder
}

// BufMut 知道自己剩余空间的写入目标
type BufMut interface {
	Writer
	Remainder
}

// Flusher 写入缓存
type Flusher interface {
	Flush() error
}

// ExactReader 读满p,数据不足时返回错误
type ExactReader interface {
	ReadExact(p []byte) error
}

// EndReader 读取全部剩余数据追加到p
type EndReader interface {
	ReadToEnd(p *[]byte) (int, error)
}

// Debugger 是否调试
type Debugger interface{ Debug(b ...bool) }
