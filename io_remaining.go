package iobuf

import (
	"io"
)

var (
	_ Buf         = (*Slice)(nil)
	_ ExactReader = (*Slice)(nil)
	_ EndReader   = (*Slice)(nil)
	_ BufMut      = (*SliceMut)(nil)
	_ Buf         = (*Cursor)(nil)
	_ Seeker      = (*Cursor)(nil)
	_ Buf         = (*ChainBuf)(nil)
	_ Buf         = (*TakeBuf)(nil)
)

//================================Slice================================

// NewSlice 从字节切片读取,读取不会复制原数据
func NewSlice(p []byte) *Slice {
	return &Slice{data: p}
}

type Slice struct {
	data []byte
}

// Bytes 剩余未读取的数据
func (this *Slice) Bytes() []byte { return this.data }

func (this *Slice) Remaining() int { return len(this.data) }

func (this *Slice) Read(p []byte) (int, error) {
	if len(this.data) == 0 {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}
	n := copy(p, this.data)
	this.data = this.data[n:]
	return n, nil
}

// ReadExact 数据不足时返回错误,不会读取任何数据
func (this *Slice) ReadExact(p []byte) error {
	if len(p) > len(this.data) {
		if len(this.data) == 0 {
			return io.EOF
		}
		return io.ErrUnexpectedEOF
	}
	n := copy(p, this.data)
	this.data = this.data[n:]
	return nil
}

func (this *Slice) ReadToEnd(p *[]byte) (int, error) {
	n := len(this.data)
	*p = append(*p, this.data...)
	this.data = this.data[n:]
	return n, nil
}

//================================SliceMut================================

// NewSliceMut 写入到固定大小的字节切片
func NewSliceMut(p []byte) *SliceMut {
	return &SliceMut{data: p}
}

type SliceMut struct {
	data []byte
	n    int
}

// Bytes 已写入的数据
func (this *SliceMut) Bytes() []byte { return this.data[:this.n] }

func (this *SliceMut) Remaining() int { return len(this.data) - this.n }

// Write 空间不足时写入能写入的部分,返回io.ErrShortWrite
func (this *SliceMut) Write(p []byte) (int, error) {
	n := copy(this.data[this.n:], p)
	this.n += n
	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

//================================Cursor================================

// NewCursor 可以Seek的字节切片读取
func NewCursor(p []byte) *Cursor {
	return &Cursor{data: p}
}

type Cursor struct {
	data []byte
	pos  int64
}

// Position 当前位置
func (this *Cursor) Position() int64 { return this.pos }

// Remaining 当前位置之后的字节数,位置超出数据时为0
func (this *Cursor) Remaining() int {
	if this.pos >= int64(len(this.data)) {
		return 0
	}
	return len(this.data) - int(this.pos)
}

func (this *Cursor) Read(p []byte) (int, error) {
	if this.Remaining() == 0 {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}
	n := copy(p, this.data[this.pos:])
	this.pos += int64(n)
	return n, nil
}

func (this *Cursor) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case SeekStart:
		pos = offset
	case SeekCurrent:
		pos = this.pos + offset
	case SeekEnd:
		pos = int64(len(this.data)) + offset
	default:
		return 0, ErrWhence
	}
	if pos < 0 {
		return 0, ErrNegativeSeek
	}
	this.pos = pos
	return pos, nil
}

//================================Chain================================

// Chain 先读取first,读完后读取second
func Chain(first, second Buf) *ChainBuf {
	return &ChainBuf{first: first, second: second}
}

type ChainBuf struct {
	first, second Buf
	done          bool //first已读完
}

func (this *ChainBuf) Remaining() int {
	return this.first.Remaining() + this.second.Remaining()
}

func (this *ChainBuf) Read(p []byte) (int, error) {
	if !this.done && len(p) > 0 {
		n, err := this.first.Read(p)
		if n > 0 || (err != nil && err != io.EOF) {
			return n, err
		}
		this.done = true
	}
	return this.second.Read(p)
}

//================================Take================================

// Take 最多读取n字节
func Take(r Reader, n int) *TakeBuf {
	return &TakeBuf{r: r, limit: n}
}

type TakeBuf struct {
	r     Reader
	limit int
}

// Remaining 剩余限制和底层剩余的较小值,底层不支持Remainder时返回剩余限制
func (this *TakeBuf) Remaining() int {
	if r, ok := this.r.(Remainder); ok && r.Remaining() < this.limit {
		return r.Remaining()
	}
	return this.limit
}

func (this *TakeBuf) Read(p []byte) (int, error) {
	if this.limit <= 0 {
		return 0, io.EOF
	}
	if len(p) > this.limit {
		p = p[:this.limit]
	}
	n, err := this.r.Read(p)
	this.limit -= n
	return n, err
}
