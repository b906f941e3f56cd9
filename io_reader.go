package iobuf

import (
	"io"
	"unicode/utf8"

	"github.com/injoyai/iobuf/buf"
)

var (
	_ BufRead    = (*BufReader)(nil)
	_ Buf        = (*BufReader)(nil)
	_ ByteReader = (*BufReader)(nil)
	_ WriterTo   = (*BufReader)(nil)
)

// NewReader 新建读取缓存,默认大小1KB
func NewReader(r Reader, options ...OptionReader) *BufReader {
	return NewReaderSize(r, DefaultBufferSize, options...)
}

// NewReaderSize 新建读取缓存,自定义缓存大小
func NewReaderSize(r Reader, size int, options ...OptionReader) *BufReader {
	b := &BufReader{
		Logger: defaultLogger(),
		inner:  r,
		window: buf.NewWindow(size),
	}
	for _, v := range options {
		v(b)
	}
	return b
}

// NewReaderWithConfig 根据配置新建读取缓存
func NewReaderWithConfig(r Reader, c *Config, options ...OptionReader) *BufReader {
	c = c.copyInit()
	b := NewReaderSize(r, c.ReaderSize)
	b.Logger = c.logger()
	for _, v := range options {
		v(b)
	}
	return b
}

// BufReader 读取缓存,小数据量读取会合并成大块的底层读取
// 包装后不能再直接读取底层,否则数据会错乱;不能并发使用
type BufReader struct {
	Logger *logger
	inner  Reader
	window *buf.Window
	err    error //和数据一起返回的错误,缓存读完后再返回
}

//================================Nature================================

// Inner 底层数据源,直接读取会跳过缓存中的数据
func (this *BufReader) Inner() Reader {
	return this.inner
}

// Reset 丢弃缓存的数据,切换数据源
func (this *BufReader) Reset(r Reader) {
	this.inner = r
	this.err = nil
	this.window.Discard()
}

// Buffer 缓存中未读取的数据,不会触发读取
func (this *BufReader) Buffer() []byte {
	return this.window.Buffer()
}

// Buffered 缓存中未读取的字节数
func (this *BufReader) Buffered() int {
	return this.window.Len()
}

// Capacity 缓存容量
func (this *BufReader) Capacity() int {
	return this.window.Capacity()
}

// Remaining 剩余可读取的字节数,缓存中的加上底层剩余的
// 底层不支持Remainder时只返回缓存中的字节数
func (this *BufReader) Remaining() int {
	n := this.window.Len()
	if r, ok := this.inner.(Remainder); ok {
		n += r.Remaining()
	}
	return n
}

func (this *BufReader) readErr() error {
	err := this.err
	this.err = nil
	return err
}

//================================BufRead================================

// FillBuf 缓存为空时从底层读取,返回缓存中未读取的数据,不会标记为已读
// 连续调用不会重复读取底层,数据读完时返回io.EOF
func (this *BufReader) FillBuf() ([]byte, error) {
	if !this.window.Empty() {
		return this.window.Buffer(), nil
	}
	if err := this.readErr(); err != nil {
		return nil, err
	}
	bs, err := this.window.Fill(this.inner)
	this.Logger.Readln("", bs)
	if len(bs) > 0 {
		this.err = err
		return bs, nil
	}
	if err == nil {
		err = io.EOF
	}
	return nil, err
}

// Consume 标记n字节已读取,超过缓存的部分会被忽略
func (this *BufReader) Consume(n int) {
	this.window.Consume(n)
}

// Unconsume 回退n字节,最多回退到缓存开头
func (this *BufReader) Unconsume(n int) {
	this.window.Unconsume(n)
}

// Peek 返回接下来的n字节,不会标记为已读,n不能超过缓存容量
// 数据不足时返回现有的数据和错误
func (this *BufReader) Peek(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	if n > this.window.Capacity() {
		return this.window.Buffer(), ErrBufferFull
	}
	for this.window.Len() < n {
		if this.window.Capacity()-this.window.Pos() < n {
			this.window.Backshift()
		}
		if err := this.readErr(); err != nil {
			return this.window.Buffer(), err
		}
		num, err := this.window.ReadMore(this.inner)
		this.Logger.Readln("", this.window.Buffer()[this.window.Len()-num:])
		switch {
		case err != nil:
			this.err = err
		case num == 0:
			this.err = io.EOF
		}
	}
	return this.window.Buffer()[:n], nil
}

//================================Read================================

// Read 实现io.Reader,缓存为空且p不小于缓存容量时直接读取底层
func (this *BufReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if this.window.Empty() && len(p) >= this.window.Capacity() {
		if err := this.readErr(); err != nil {
			return 0, err
		}
		this.window.Discard()
		n, err := this.inner.Read(p)
		if n < 0 || n > len(p) {
			return 0, ErrInvalidRead
		}
		this.Logger.Readln("", p[:n])
		if n == 0 && err == nil {
			err = io.EOF
		}
		return n, err
	}
	bs, err := this.FillBuf()
	if err != nil {
		return 0, err
	}
	n := copy(p, bs)
	this.window.Consume(n)
	return n, nil
}

// ReadByte 读取一字节
func (this *BufReader) ReadByte() (byte, error) {
	bs, err := this.FillBuf()
	if err != nil {
		return 0, err
	}
	this.window.Consume(1)
	return bs[0], nil
}

// ReadExact 读满p,缓存中数据足够时不会读取底层
// 一个字节都没读到时返回io.EOF,读到部分数据时返回io.ErrUnexpectedEOF
func (this *BufReader) ReadExact(p []byte) error {
	if this.window.ConsumeWith(len(p), func(bs []byte) { copy(p, bs) }) {
		return nil
	}
	n := copy(p, this.window.Buffer())
	this.window.Consume(n)
	err := this.readErr()
	if err == nil {
		rest := p[n:]
		if r, ok := this.inner.(ExactReader); ok {
			err = r.ReadExact(rest)
		} else {
			_, err = io.ReadFull(this.inner, rest)
		}
		if err == nil {
			this.Logger.Readln("", rest)
		}
	}
	if err == io.EOF && n > 0 {
		err = io.ErrUnexpectedEOF
	}
	return err
}

// ReadToEnd 读取全部剩余数据追加到p,先取出缓存中的数据,剩余的交给底层读取
func (this *BufReader) ReadToEnd(p *[]byte) (int, error) {
	bs := this.window.Buffer()
	*p = append(*p, bs...)
	n := len(bs)
	this.window.Discard()
	if err := this.readErr(); err != nil {
		if err == io.EOF {
			return n, nil
		}
		return n, err
	}
	m, err := readToEnd(this.inner, p)
	return n + m, err
}

// ReadToString 读取全部剩余数据追加到s,新读取的数据整体校验UTF-8
// 校验失败时返回ErrInvalidUTF8,已读取的数据会被丢弃
func (this *BufReader) ReadToString(s *string) (int, error) {
	var bs []byte
	n, err := this.ReadToEnd(&bs)
	if !utf8.Valid(bs) {
		if err == nil {
			err = ErrInvalidUTF8
		}
		return 0, err
	}
	*s += string(bs)
	return n, err
}

// WriteTo 实现io.WriterTo,把剩余数据写入w
func (this *BufReader) WriteTo(w Writer) (int64, error) {
	return CopyBuf(w, this)
}

//================================Delim================================

// HasDataLeft 是否还有数据可以读取
func (this *BufReader) HasDataLeft() (bool, error) {
	return buf.HasDataLeft(this)
}

// SkipUntil 跳过数据直到分隔符(包含),返回跳过的字节数
func (this *BufReader) SkipUntil(delim byte) (int, error) {
	return buf.SkipUntil(this, delim)
}

// ReadUntil 读取数据直到分隔符(包含),追加到p
func (this *BufReader) ReadUntil(delim byte, p *[]byte) (int, error) {
	return buf.ReadUntil(this, delim, p)
}

// ReadLine 读取一行(包含换行符),追加到s
func (this *BufReader) ReadLine(s *string) (int, error) {
	return buf.ReadLine(this, s)
}

// Split 按分隔符拆分剩余数据
func (this *BufReader) Split(delim byte) *buf.Split {
	return buf.NewSplit(this, delim)
}

// Lines 按行拆分剩余数据
func (this *BufReader) Lines() *buf.Lines {
	return buf.NewLines(this)
}

// MessageReader 按读取函数分包
func (this *BufReader) MessageReader(fn ReadFunc) buf.MessageReader {
	return buf.NewMessageReader(this, fn)
}

/*



 */

// readToEnd 读取全部数据追加到p,底层实现了EndReader时交给底层
func readToEnd(r Reader, p *[]byte) (int, error) {
	if v, ok := r.(EndReader); ok {
		return v.ReadToEnd(p)
	}
	start := len(*p)
	b := *p
	for {
		if len(b) == cap(b) {
			b = append(b, 0)[:len(b)]
		}
		n, err := r.Read(b[len(b):cap(b)])
		if n < 0 || n > cap(b)-len(b) {
			*p = b
			return len(b) - start, ErrInvalidRead
		}
		b = b[:len(b)+n]
		if err != nil {
			*p = b
			if err == io.EOF {
				err = nil
			}
			return len(b) - start, err
		}
	}
}
