package buf

// NewSplit 按分隔符拆分数据流,每次Next读取一段
func NewSplit(r BufRead, delim byte) *Split {
	return &Split{r: r, delim: delim}
}

// Split 惰性的分段读取,不能重新开始
type Split struct {
	r     BufRead
	delim byte
}

// Next 读取下一段,不包含分隔符
// 数据结束时返回io.EOF,其他错误作为本次的结果返回,不会结束拆分
func (this *Split) Next() ([]byte, error) {
	bs := []byte{}
	if _, err := ReadUntil(this.r, this.delim, &bs); err != nil {
		return nil, err
	}
	return trimDelim(bs, this.delim), nil
}

// NewLines 按行拆分数据流
func NewLines(r BufRead) *Lines {
	return &Lines{r: r}
}

// Lines 按行读取,去掉结尾的\n和\r\n
type Lines struct {
	r BufRead
}

// Next 读取下一行,数据结束时返回io.EOF
func (this *Lines) Next() (string, error) {
	s := ""
	if _, err := ReadLine(this.r, &s); err != nil {
		return "", err
	}
	if n := len(s); n > 0 && s[n-1] == '\n' {
		s = s[:n-1]
		if n := len(s); n > 0 && s[n-1] == '\r' {
			s = s[:n-1]
		}
	}
	return s, nil
}
