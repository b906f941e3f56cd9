package buf

import (
	"bytes"
	"io"
	"unicode/utf8"
)

// BufRead 带缓存的读取,分隔符读取等函数都只依赖这个接口
type BufRead interface {
	io.Reader

	// FillBuf 缓存为空时从数据源填充,返回缓存中未读取的数据
	// 数据源结束时返回io.EOF
	FillBuf() ([]byte, error)

	// Consume 标记n字节已读取
	Consume(n int)
}

// HasDataLeft 是否还有数据可以读取
func HasDataLeft(r BufRead) (bool, error) {
	bs, err := r.FillBuf()
	if err == io.EOF {
		return false, nil
	}
	return len(bs) > 0, err
}

// SkipUntil 跳过数据直到分隔符(包含)或者数据结束,返回跳过的字节数
func SkipUntil(r BufRead, delim byte) (int, error) {
	return scanUntil(r, delim, nil)
}

// ReadUntil 读取数据直到分隔符(包含)或者数据结束,追加到p,返回读取的字节数
// 最后一段没有分隔符的数据正常返回,数据已经读完时返回(0,io.EOF)
func ReadUntil(r BufRead, delim byte, p *[]byte) (int, error) {
	return scanUntil(r, delim, func(bs []byte) { *p = append(*p, bs...) })
}

// ReadLine 读取一行(包含换行符),追加到s
// 读取的数据会先整体校验UTF-8,校验失败时不会追加,返回ErrInvalidUTF8
func ReadLine(r BufRead, s *string) (int, error) {
	var bs []byte
	n, err := ReadUntil(r, '\n', &bs)
	if !utf8.Valid(bs) {
		if err == nil {
			err = ErrInvalidUTF8
		}
		return 0, err
	}
	*s += string(bs)
	return n, err
}

func scanUntil(r BufRead, delim byte, fn func(bs []byte)) (int, error) {
	read := 0
	for {
		available, err := r.FillBuf()
		if err != nil {
			if err == io.EOF && read > 0 {
				return read, nil
			}
			return read, err
		}
		used, done := len(available), false
		if i := bytes.IndexByte(available, delim); i >= 0 {
			used, done = i+1, true
		}
		if fn != nil {
			fn(available[:used])
		}
		r.Consume(used)
		read += used
		if done {
			return read, nil
		}
		if used == 0 {
			if read == 0 {
				return 0, io.EOF
			}
			return read, nil
		}
	}
}

/*



 */

// ReadFunc 从缓存中读取一条消息
type ReadFunc func(r BufRead) ([]byte, error)

// ReadWithAll 读取缓存中现有的全部数据,缓存为空时会填充一次
func ReadWithAll(r BufRead) ([]byte, error) {
	available, err := r.FillBuf()
	if err != nil {
		return nil, err
	}
	bs := make([]byte, len(available))
	copy(bs, available)
	r.Consume(len(bs))
	return bs, nil
}

// ReadWithLine 读取一行,去掉结尾的\r\n
func ReadWithLine(r BufRead) ([]byte, error) {
	var bs []byte
	if _, err := ReadUntil(r, '\n', &bs); err != nil {
		return nil, err
	}
	return trimLine(bs), nil
}

// NewReadWithDelim 根据分隔符分包,返回的数据不包含分隔符
func NewReadWithDelim(delim byte) ReadFunc {
	return func(r BufRead) ([]byte, error) {
		var bs []byte
		if _, err := ReadUntil(r, delim, &bs); err != nil {
			return nil, err
		}
		return trimDelim(bs, delim), nil
	}
}

// NewReadWithKB 每次最多读取n KB
func NewReadWithKB(n uint) ReadFunc {
	return func(r BufRead) ([]byte, error) {
		bs := make([]byte, n<<10)
		length, err := r.Read(bs)
		return bs[:length], err
	}
}

// ReadPrefix 从流中读取到前缀为止,返回已读取部分(以前缀结尾)
func ReadPrefix(r BufRead, prefix []byte) ([]byte, error) {
	cache := []byte(nil)
	for len(prefix) > 0 && !bytes.HasSuffix(cache, prefix) {
		b, err := readByte(r)
		if err != nil {
			return cache, err
		}
		cache = append(cache, b)
	}
	return cache, nil
}

// ReadLeast 读取至少min字节,除非返回错误
func ReadLeast(r io.Reader, min int) ([]byte, error) {
	bs := make([]byte, min)
	n, err := io.ReadAtLeast(r, bs, min)
	return bs[:n], err
}

func readByte(r BufRead) (byte, error) {
	available, err := r.FillBuf()
	if err != nil {
		return 0, err
	}
	if len(available) == 0 {
		return 0, io.EOF
	}
	b := available[0]
	r.Consume(1)
	return b, nil
}

func trimDelim(bs []byte, delim byte) []byte {
	if n := len(bs); n > 0 && bs[n-1] == delim {
		return bs[:n-1]
	}
	return bs
}

func trimLine(bs []byte) []byte {
	if n := len(bs); n > 0 && bs[n-1] == '\n' {
		bs = bs[:n-1]
		if n := len(bs); n > 0 && bs[n-1] == '\r' {
			bs = bs[:n-1]
		}
	}
	return bs
}
