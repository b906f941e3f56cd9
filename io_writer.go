package iobuf

import (
	"runtime"

	"github.com/injoyai/iobuf/buf"
	"github.com/injoyai/logs"
)

var (
	_ Writer       = (*BufWriter)(nil)
	_ BufMut       = (*BufWriter)(nil)
	_ Flusher      = (*BufWriter)(nil)
	_ StringWriter = (*BufWriter)(nil)
	_ ByteWriter   = (*BufWriter)(nil)
)

// NewWriter 新建写入缓存,固定容量1KB
func NewWriter(w Writer, options ...OptionWriter) *BufWriter {
	return NewWriterSize(w, DefaultBufferSize, options...)
}

// NewWriterSize 新建固定容量的写入缓存
func NewWriterSize(w Writer, size int, options ...OptionWriter) *BufWriter {
	return newWriter(w, buf.NewFixedStage(size), options...)
}

// NewWriterGrow 新建可扩容的写入缓存,size是初始容量
func NewWriterGrow(w Writer, size int, options ...OptionWriter) *BufWriter {
	return newWriter(w, buf.NewGrowStage(size), options...)
}

// NewWriterWithConfig 根据配置新建写入缓存
func NewWriterWithConfig(w Writer, c *Config, options ...OptionWriter) *BufWriter {
	c = c.copyInit()
	var b *BufWriter
	if c.WriterGrow {
		b = NewWriterGrow(w, c.WriterSize)
	} else {
		b = NewWriterSize(w, c.WriterSize)
	}
	b.Logger = c.logger()
	for _, v := range options {
		v(b)
	}
	return b
}

func newWriter(w Writer, stage buf.Stage, options ...OptionWriter) *BufWriter {
	b := &BufWriter{
		Logger: defaultLogger(),
		inner:  w,
		stage:  stage,
	}
	for _, v := range options {
		v(b)
	}
	runtime.SetFinalizer(b, (*BufWriter).finalize)
	return b
}

// BufWriter 写入缓存,缓存满时自动写入底层
// 使用完需要调用Flush或者Close,被回收时才写入的数据无法返回错误
type BufWriter struct {
	Logger *logger
	inner  Writer
	stage  buf.Stage
	closed bool
}

//================================Nature================================

// Inner 底层写入,直接写入前需要先Flush
func (this *BufWriter) Inner() Writer {
	return this.inner
}

// Reset 丢弃未写入的数据,切换写入目标,关闭后可以重新使用
func (this *BufWriter) Reset(w Writer) {
	this.inner = w
	this.stage.Reset()
	if this.closed {
		this.closed = false
		runtime.SetFinalizer(this, (*BufWriter).finalize)
	}
}

// Buffer 等待写入的数据
func (this *BufWriter) Buffer() []byte {
	return this.stage.Bytes()
}

// Buffered 等待写入的字节数
func (this *BufWriter) Buffered() int {
	return this.stage.Len()
}

// Available 缓存剩余空间
func (this *BufWriter) Available() int {
	return this.stage.Spare()
}

// Capacity 缓存容量
func (this *BufWriter) Capacity() int {
	return this.stage.Cap()
}

// Grow 可扩容的缓存扩大容量到至少n,固定容量的缓存返回false
func (this *BufWriter) Grow(n int) bool {
	s, ok := this.stage.(*buf.GrowStage)
	if ok {
		s.Grow(n)
	}
	return ok
}

// Remaining 底层剩余空间减去等待写入的字节数
// 底层不支持Remainder时返回缓存剩余空间
func (this *BufWriter) Remaining() int {
	r, ok := this.inner.(Remainder)
	if !ok {
		return this.stage.Spare()
	}
	if n := r.Remaining() - this.stage.Len(); n > 0 {
		return n
	}
	return 0
}

//================================Write================================

// Write 实现io.Writer
// 放不下时先写入缓存的数据,仍然不小于缓存容量时直接写入底层
func (this *BufWriter) Write(p []byte) (int, error) {
	if this.closed {
		return 0, ErrWriterClosed
	}
	if len(p) > this.stage.Spare() {
		if err := this.flushBuf(); err != nil {
			return 0, err
		}
	}
	if len(p) >= this.stage.Cap() {
		n, err := this.inner.Write(p)
		if n < 0 || n > len(p) {
			return 0, ErrInvalidWrite
		}
		this.Logger.Writeln("", p[:n])
		return n, dealErr(n, len(p), err)
	}
	return this.stage.Append(p), nil
}

// WriteString 写入字符串,实现io.StringWriter
func (this *BufWriter) WriteString(s string) (int, error) {
	return this.Write([]byte(s))
}

// WriteByte 写入一字节,实现io.ByteWriter
func (this *BufWriter) WriteByte(c byte) error {
	_, err := this.Write([]byte{c})
	return err
}

// Flush 写入缓存中的全部数据,并刷新底层
// 失败时已写入的部分会从缓存中移除,再次Flush不会重复写入
func (this *BufWriter) Flush() error {
	if err := this.flushBuf(); err != nil {
		return err
	}
	if f, ok := this.inner.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

// Close 写入缓存中的全部数据,再关闭底层
// 写入失败时不会关闭,可以重试
func (this *BufWriter) Close() error {
	if this.closed {
		return nil
	}
	if err := this.Flush(); err != nil {
		return err
	}
	this.closed = true
	runtime.SetFinalizer(this, nil)
	if c, ok := this.inner.(Closer); ok {
		return c.Close()
	}
	return nil
}

func (this *BufWriter) flushBuf() error {
	for this.stage.Len() > 0 {
		bs := this.stage.Bytes()
		n, err := this.inner.Write(bs)
		if n < 0 || n > len(bs) {
			return ErrInvalidWrite
		}
		this.Logger.Writeln("", bs[:n])
		this.stage.Consume(n)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrWriteZero
		}
	}
	return nil
}

// finalize 被回收时尝试写入,失败只能打印日志
func (this *BufWriter) finalize() {
	if this.closed || this.stage.Len() == 0 {
		return
	}
	n := this.stage.Len()
	if err := this.flushBuf(); err != nil {
		logs.Errf("[iobuf] 写入缓存被回收时写入失败,丢失%d/%d字节: %v", this.stage.Len(), n, err)
	}
}
