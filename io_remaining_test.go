package iobuf

import (
	"math"
	"testing"
)

func TestRemaining_Slice(t *testing.T) {
	s := NewSlice([]byte{1, 2, 3, 4, 5})
	if s.Remaining() != 5 {
		t.Errorf("剩余(%d)", s.Remaining())
	}
	p := make([]byte, 3)
	s.Read(p)
	if s.Remaining() != 2 {
		t.Errorf("剩余(%d)", s.Remaining())
	}
	if err := s.ReadExact(p); err != ErrUnexpectedEOF || s.Remaining() != 2 {
		t.Errorf("数据不足时不应该读取,剩余(%d),错误(%v)", s.Remaining(), err)
	}
	s.Read(p)
	if s.Remaining() != 0 {
		t.Errorf("剩余(%d)", s.Remaining())
	}
	if n, err := s.Read(p); n != 0 || err != EOF {
		t.Errorf("得到(%d),错误(%v)", n, err)
	}
}

func TestRemaining_SliceMut(t *testing.T) {
	s := NewSliceMut(make([]byte, 5))
	if s.Remaining() != 5 {
		t.Errorf("剩余(%d)", s.Remaining())
	}
	s.Write([]byte{1, 2, 3})
	if s.Remaining() != 2 {
		t.Errorf("剩余(%d)", s.Remaining())
	}
	n, err := s.Write([]byte{4, 5, 6})
	if n != 2 || err != ErrShortWrite || s.Remaining() != 0 {
		t.Errorf("得到(%d),错误(%v)", n, err)
	}
	if string(s.Bytes()) != string([]byte{1, 2, 3, 4, 5}) {
		t.Errorf("得到(%v)", s.Bytes())
	}
}

func TestRemaining_Chain(t *testing.T) {
	c := Chain(NewSlice([]byte{1, 2, 3}), NewSlice([]byte{4, 5}))
	if c.Remaining() != 5 {
		t.Errorf("剩余(%d)", c.Remaining())
	}
	p := make([]byte, 4)
	n, _ := c.Read(p)
	if n != 3 || c.Remaining() != 2 {
		t.Errorf("读取(%d),剩余(%d)", n, c.Remaining())
	}
	n, _ = c.Read(p)
	if n != 2 || c.Remaining() != 0 || p[0] != 4 {
		t.Errorf("读取(%d),剩余(%d)", n, c.Remaining())
	}
	if _, err := c.Read(p); err != EOF {
		t.Errorf("预期EOF,得到(%v)", err)
	}
}

func TestRemaining_Cursor(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3, 4, 5})
	if c.Remaining() != 5 {
		t.Errorf("剩余(%d)", c.Remaining())
	}
	c.Seek(2, SeekStart)
	if c.Remaining() != 3 || c.Position() != 2 {
		t.Errorf("剩余(%d)", c.Remaining())
	}
	c.Seek(-1, SeekEnd)
	if c.Remaining() != 1 {
		t.Errorf("剩余(%d)", c.Remaining())
	}
	//超出数据长度
	c.Seek(10, SeekCurrent)
	if c.Remaining() != 0 {
		t.Errorf("剩余(%d)", c.Remaining())
	}
	if n, err := c.Read(make([]byte, 1)); n != 0 || err != EOF {
		t.Errorf("得到(%d),错误(%v)", n, err)
	}
	if _, err := c.Seek(-100, SeekCurrent); err != ErrNegativeSeek {
		t.Errorf("预期(%v),得到(%v)", ErrNegativeSeek, err)
	}
	if _, err := c.Seek(0, 3); err != ErrWhence {
		t.Errorf("预期(%v),得到(%v)", ErrWhence, err)
	}
}

func TestRemaining_Empty(t *testing.T) {
	if Empty().Remaining() != 0 || Null.Remaining() != 0 {
		t.Error("剩余应该是0")
	}
	if n, err := Null.Write([]byte{1, 2}); n != 2 || err != nil {
		t.Errorf("得到(%d),错误(%v)", n, err)
	}
}

func TestRemaining_Repeat(t *testing.T) {
	r := Repeat(7)
	p := make([]byte, 3)
	r.Read(p)
	if r.Remaining() != math.MaxInt || p[2] != 7 {
		t.Errorf("剩余(%d)", r.Remaining())
	}
}

func TestRemaining_Sink(t *testing.T) {
	s := Sink()
	s.Write(make([]byte, 100))
	if s.Remaining() != math.MaxInt {
		t.Errorf("剩余(%d)", s.Remaining())
	}
}

func TestRemaining_Take(t *testing.T) {
	{
		r := Take(NewSlice([]byte{1, 2, 3, 4, 5}), 3)
		if r.Remaining() != 3 {
			t.Errorf("剩余(%d)", r.Remaining())
		}
		bs, _ := ReadAll(r)
		if len(bs) != 3 || r.Remaining() != 0 {
			t.Errorf("得到(%v)", bs)
		}
	}
	{
		r := Take(NewSlice([]byte{1, 2}), 10)
		if r.Remaining() != 2 {
			t.Errorf("剩余(%d)", r.Remaining())
		}
	}
	{
		r := Take(Repeat(1), 10)
		if r.Remaining() != 10 {
			t.Errorf("剩余(%d)", r.Remaining())
		}
	}
}

func TestRemaining_BufReader(t *testing.T) {
	r := NewReaderSize(NewSlice([]byte{1, 2, 3, 4, 5}), 2)
	if r.Remaining() != 5 {
		t.Errorf("剩余(%d)", r.Remaining())
	}
	p := make([]byte, 1)
	r.Read(p)
	if r.Remaining() != 4 {
		t.Errorf("剩余(%d)", r.Remaining())
	}
	//缓存中只剩1字节,不会再读取底层
	p = make([]byte, 2)
	if n, _ := r.Read(p); n != 1 {
		t.Errorf("读取(%d)", n)
	}
	if r.Remaining() != 3 {
		t.Errorf("剩余(%d)", r.Remaining())
	}
	if NewReader(&chunkReader{data: []byte{1}}).Remaining() != 0 {
		t.Error("底层不支持Remainder时只返回缓存中的字节数")
	}
}

func TestRemaining_BufWriter(t *testing.T) {
	w := NewWriter(NewSliceMut(make([]byte, 5)))
	if w.Remaining() != 5 {
		t.Errorf("剩余(%d)", w.Remaining())
	}
	w.Write([]byte{1, 2, 3})
	if w.Remaining() != 2 {
		t.Errorf("剩余(%d)", w.Remaining())
	}
	w.Write([]byte{4, 5, 6})
	if w.Remaining() != 0 {
		t.Errorf("剩余(%d)", w.Remaining())
	}
	if err := w.Flush(); err != ErrShortWrite {
		t.Errorf("预期(%v),得到(%v)", ErrShortWrite, err)
	}
	if NewWriterSize(newRecordWriter(), 16).Remaining() != 16 {
		t.Error("底层不支持Remainder时返回缓存剩余空间")
	}
}
