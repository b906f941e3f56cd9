package buf

import (
	"bytes"
	"encoding/hex"
	"errors"
	"io"
	"testing"
)

// testReader 基于Window的简单BufRead
type testReader struct {
	r io.Reader
	w *Window
}

func newTestReader(size int, data []byte) *testReader {
	return &testReader{r: bytes.NewReader(data), w: NewWindow(size)}
}

func (this *testReader) Read(p []byte) (int, error) {
	bs, err := this.FillBuf()
	if err != nil {
		return 0, err
	}
	n := copy(p, bs)
	this.Consume(n)
	return n, nil
}

func (this *testReader) FillBuf() ([]byte, error) {
	bs, err := this.w.Fill(this.r)
	if len(bs) > 0 {
		return bs, nil
	}
	if err == nil {
		err = io.EOF
	}
	return nil, err
}

func (this *testReader) Consume(n int) { this.w.Consume(n) }

func TestReadUntil(t *testing.T) {
	r := newTestReader(4, []byte("a\nbc\n"))
	for _, want := range []string{"a\n", "bc\n"} {
		bs := []byte(nil)
		n, err := ReadUntil(r, '\n', &bs)
		if err != nil || n != len(want) || string(bs) != want {
			t.Errorf("预期(%q),得到(%q)(%d),错误(%v)", want, bs, n, err)
		}
	}
	bs := []byte(nil)
	n, err := ReadUntil(r, '\n', &bs)
	if n != 0 || err != io.EOF || len(bs) != 0 {
		t.Errorf("预期EOF,得到(%q)(%d),错误(%v)", bs, n, err)
	}
}

func TestReadUntil_AcrossFill(t *testing.T) {
	//分隔符在第三次填充中
	r := newTestReader(3, []byte("0123456;789"))
	bs := []byte("x")
	n, err := ReadUntil(r, ';', &bs)
	if err != nil || n != 8 || string(bs) != "x0123456;" {
		t.Errorf("得到(%q)(%d),错误(%v)", bs, n, err)
	}
	//最后一段没有分隔符
	bs = nil
	n, err = ReadUntil(r, ';', &bs)
	if err != nil || n != 3 || string(bs) != "789" {
		t.Errorf("得到(%q)(%d),错误(%v)", bs, n, err)
	}
}

func TestReadUntil_Error(t *testing.T) {
	errRead := errors.New("read")
	data := []byte("abc")
	r := &testReader{w: NewWindow(2), r: readFunc(func(p []byte) (int, error) {
		if len(data) == 0 {
			return 0, errRead
		}
		n := copy(p, data)
		data = data[n:]
		return n, nil
	})}
	bs := []byte(nil)
	n, err := ReadUntil(r, '\n', &bs)
	if err != errRead || n != 3 || string(bs) != "abc" {
		t.Errorf("已读取的数据应该保留,得到(%q)(%d),错误(%v)", bs, n, err)
	}
}

func TestSkipUntil(t *testing.T) {
	r := newTestReader(2, []byte("skip me|rest"))
	n, err := SkipUntil(r, '|')
	if err != nil || n != 8 {
		t.Errorf("得到(%d),错误(%v)", n, err)
	}
	bs, _ := ReadWithAll(r)
	if string(bs) != "re" {
		t.Errorf("得到(%s)", bs)
	}
}

func TestReadLine(t *testing.T) {
	r := newTestReader(4, []byte("你好\r\nworld"))
	s := "head:"
	n, err := ReadLine(r, &s)
	if err != nil || n != 8 || s != "head:你好\r\n" {
		t.Errorf("得到(%q)(%d),错误(%v)", s, n, err)
	}

	//多字节字符被截断
	r = newTestReader(4, []byte{'o', 'k', 0xe4, 0xbd, '\n'})
	s = "keep"
	n, err = ReadLine(r, &s)
	if err != ErrInvalidUTF8 || n != 0 || s != "keep" {
		t.Errorf("得到(%q)(%d),错误(%v)", s, n, err)
	}
}

func TestSplit(t *testing.T) {
	sp := NewSplit(newTestReader(3, []byte("a,bb,,ccc")), ',')
	want := []string{"a", "bb", "", "ccc"}
	for _, v := range want {
		bs, err := sp.Next()
		if err != nil || string(bs) != v {
			t.Errorf("预期(%q),得到(%q),错误(%v)", v, bs, err)
		}
	}
	if _, err := sp.Next(); err != io.EOF {
		t.Errorf("预期EOF,得到(%v)", err)
	}
}

func TestSplit_ErrorItem(t *testing.T) {
	errRead := errors.New("read")
	times := 0
	sp := NewSplit(&testReader{w: NewWindow(4), r: readFunc(func(p []byte) (int, error) {
		times++
		switch times {
		case 1:
			return 0, errRead
		case 2:
			return copy(p, "ok;"), nil
		}
		return 0, io.EOF
	})}, ';')
	if _, err := sp.Next(); err != errRead {
		t.Errorf("错误应该作为结果返回,得到(%v)", err)
	}
	if bs, err := sp.Next(); err != nil || string(bs) != "ok" {
		t.Errorf("错误后应该继续读取,得到(%q),错误(%v)", bs, err)
	}
	if _, err := sp.Next(); err != io.EOF {
		t.Errorf("预期EOF,得到(%v)", err)
	}
}

func TestLines(t *testing.T) {
	l := NewLines(newTestReader(5, []byte("one\r\ntwo\n\nthree")))
	for _, v := range []string{"one", "two", "", "three"} {
		s, err := l.Next()
		if err != nil || s != v {
			t.Errorf("预期(%q),得到(%q),错误(%v)", v, s, err)
		}
	}
	if _, err := l.Next(); err != io.EOF {
		t.Errorf("预期EOF,得到(%v)", err)
	}
}

func TestHasDataLeft(t *testing.T) {
	r := newTestReader(4, []byte("a"))
	if ok, err := HasDataLeft(r); !ok || err != nil {
		t.Errorf("得到(%v),错误(%v)", ok, err)
	}
	r.Consume(1)
	if ok, err := HasDataLeft(r); ok || err != nil {
		t.Errorf("得到(%v),错误(%v)", ok, err)
	}
}

func TestMessageReader(t *testing.T) {
	m := NewMessageReader(newTestReader(4, []byte{0x03, 0x11, 0x7E, 0x04, 0x05, 0x7E}), NewReadWithDelim(0x7E))
	for _, want := range [][]byte{{0x03, 0x11}, {0x04, 0x05}} {
		val, err := m.ReadMessage()
		if err != nil {
			t.Error(err)
		}
		if hex.EncodeToString(val) != hex.EncodeToString(want) {
			t.Error("测试失败" + hex.EncodeToString(val))
		}
	}
	if _, err := m.ReadMessage(); err != io.EOF {
		t.Errorf("预期EOF,得到(%v)", err)
	}
}

func TestReadPrefix(t *testing.T) {
	r := newTestReader(3, []byte{0x03, 0x11, 0x11, 0x03, 0x03, 0x11, 0x11, 0x04, 0x04, 0x05})
	bs, err := ReadPrefix(r, []byte{0x03, 0x03, 0x11})
	if err != nil {
		t.Error(err)
	}
	if hex.EncodeToString(bs) != "031111030311" {
		t.Error("测试失败" + hex.EncodeToString(bs))
	}
	bs, err = NewReadWithKB(1)(r)
	if err != nil {
		t.Error(err)
	}
	if hex.EncodeToString(bs) != "110404" {
		t.Error("测试失败" + hex.EncodeToString(bs))
	}
	bs, err = ReadWithLine(r)
	if err != nil || hex.EncodeToString(bs) != "05" {
		t.Errorf("得到(%x),错误(%v)", bs, err)
	}
}

func TestReadLeast(t *testing.T) {
	bs, err := ReadLeast(bytes.NewReader([]byte("abc")), 2)
	if err != nil || string(bs) != "ab" {
		t.Errorf("得到(%s),错误(%v)", bs, err)
	}
	_, err = ReadLeast(bytes.NewReader([]byte("a")), 2)
	if err != io.ErrUnexpectedEOF {
		t.Errorf("预期(%v),得到(%v)", io.ErrUnexpectedEOF, err)
	}
}
