package iobuf

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestConsume(t *testing.T) {
	data := make([]byte, 10000)
	for i := range data {
		data[i] = byte(i)
	}
	result := []byte(nil)
	sizes := []int(nil)
	n, err := Consume(NewSlice(data), func(p []byte) (int, error) {
		sizes = append(sizes, len(p))
		result = append(result, p...)
		return len(p), nil
	})
	if err != nil || n != len(data) {
		t.Errorf("得到(%d),错误(%v)", n, err)
	}
	if !bytes.Equal(result, data) {
		t.Error("数据不一致")
	}
	want := []int{4096, 4096, 1808}
	if len(sizes) != len(want) {
		t.Errorf("分块(%v)", sizes)
		return
	}
	for i := range want {
		if sizes[i] != want[i] {
			t.Errorf("分块(%v)", sizes)
		}
	}
}

func TestConsume_Stop(t *testing.T) {
	src := NewSlice(make([]byte, 10000))
	times := 0
	n, err := Consume(src, func(p []byte) (int, error) {
		times++
		return len(p) / 2, nil
	})
	if err != nil || n != 2048 || times != 1 {
		t.Errorf("得到(%d),次数(%d),错误(%v)", n, times, err)
	}
	//已读取的块从数据源中移除
	if src.Remaining() != 10000-4096 {
		t.Errorf("剩余(%d)", src.Remaining())
	}
}

func TestConsume_Error(t *testing.T) {
	errStep := errors.New("step")
	n, err := Consume(NewSlice(make([]byte, 100)), func(p []byte) (int, error) {
		return 10, errStep
	})
	if err != errStep || n != 10 {
		t.Errorf("得到(%d),错误(%v)", n, err)
	}
	if _, err = Consume(NewSlice(make([]byte, 100)), func(p []byte) (int, error) {
		return len(p) + 1, nil
	}); err != ErrInvalidStep {
		t.Errorf("预期(%v),得到(%v)", ErrInvalidStep, err)
	}
}

func TestConsume_Empty(t *testing.T) {
	for _, b := range []Buf{Empty(), Null, NewSlice(nil)} {
		n, err := Consume(b, func(p []byte) (int, error) {
			t.Error("没有数据时不应该调用")
			return len(p), nil
		})
		if n != 0 || err != nil {
			t.Errorf("得到(%d),错误(%v)", n, err)
		}
	}
}

func TestConsumeWith(t *testing.T) {
	{
		sizes := []int(nil)
		n, err := ConsumeWith(NewSlice([]byte("0123456789")), make([]byte, 4), func(p []byte) (int, error) {
			sizes = append(sizes, len(p))
			return len(p), nil
		})
		if err != nil || n != 10 || len(sizes) != 3 || sizes[2] != 2 {
			t.Errorf("得到(%d),分块(%v),错误(%v)", n, sizes, err)
		}
	}
	{
		times := 0
		n, err := ConsumeWith(NewSlice([]byte("0123456789")), make([]byte, 64), func(p []byte) (int, error) {
			times++
			return len(p), nil
		})
		if err != nil || n != 10 || times != 1 {
			t.Errorf("得到(%d),次数(%d),错误(%v)", n, times, err)
		}
	}
	{
		if _, err := ConsumeWith(NewSlice([]byte("0")), nil, nil); err != io.ErrShortBuffer {
			t.Errorf("预期(%v),得到(%v)", io.ErrShortBuffer, err)
		}
	}
}

func TestConsume_Take(t *testing.T) {
	total := 0
	n, err := Consume(Take(Repeat('x'), 5000), func(p []byte) (int, error) {
		if bytes.Count(p, []byte{'x'}) != len(p) {
			t.Error("数据错误")
		}
		total += len(p)
		return len(p), nil
	})
	if err != nil || n != 5000 || total != 5000 {
		t.Errorf("得到(%d),错误(%v)", n, err)
	}
}

func TestConsume_UnexpectedEOF(t *testing.T) {
	//声明的剩余长度多于实际数据
	b := Take(&chunkReader{data: []byte("abc"), n: 100}, 10)
	n, err := Consume(b, func(p []byte) (int, error) { return len(p), nil })
	if err != ErrUnexpectedEOF || n != 0 {
		t.Errorf("得到(%d),错误(%v)", n, err)
	}
}

func TestFill(t *testing.T) {
	dst := NewSliceMut(make([]byte, 10000))
	i := 0
	sizes := []int(nil)
	n, err := Fill(dst, func(p []byte) (int, error) {
		sizes = append(sizes, len(p))
		for j := range p {
			p[j] = byte(i)
			i++
		}
		return len(p), nil
	})
	if err != nil || n != 10000 || dst.Remaining() != 0 {
		t.Errorf("得到(%d),错误(%v)", n, err)
	}
	if len(sizes) != 3 || sizes[0] != 4096 || sizes[2] != 1808 {
		t.Errorf("分块(%v)", sizes)
	}
	for j, v := range dst.Bytes() {
		if v != byte(j) {
			t.Errorf("第%d字节错误", j)
			break
		}
	}
}

func TestFill_Stop(t *testing.T) {
	{
		dst := NewSliceMut(make([]byte, 10000))
		n, err := Fill(dst, func(p []byte) (int, error) {
			return 100, nil
		})
		if err != nil || n != 100 || len(dst.Bytes()) != 100 {
			t.Errorf("得到(%d),错误(%v)", n, err)
		}
	}
	{
		times := 0
		n, err := Fill(Sink(), func(p []byte) (int, error) {
			times++
			if times > 2 {
				return 10, nil
			}
			return len(p), nil
		})
		if err != nil || n != 4096*2+10 {
			t.Errorf("得到(%d),错误(%v)", n, err)
		}
	}
	{
		if n, err := Fill(NewSliceMut(nil), nil); err != nil || n != 0 {
			t.Errorf("得到(%d),错误(%v)", n, err)
		}
	}
}

func TestFillWith_BufWriter(t *testing.T) {
	w := newRecordWriter()
	b := NewWriterSize(w, 8)
	scratch := make([]byte, 3)
	times := 0
	//底层不支持Remainder,剩余空间是缓存的剩余空间
	n, err := FillWith(b, scratch, func(p []byte) (int, error) {
		times++
		for i := range p {
			p[i] = 'a'
		}
		return len(p), nil
	})
	if err != nil || n != 8 || times != 3 {
		t.Errorf("得到(%d),次数(%d),错误(%v)", n, times, err)
	}
	b.Flush()
	if w.String() != "aaaaaaaa" {
		t.Errorf("得到(%s)", w.String())
	}
}
