package buf

type MessageReader interface {
	// ReadMessage 读取拆包后的数据
	ReadMessage() ([]byte, error)
}

type messageReader struct {
	buf      BufRead
	readFunc ReadFunc
}

// SetReadFunc 设置读取函数,默认读取全部
func (this *messageReader) SetReadFunc(fn ReadFunc) *messageReader {
	this.readFunc = fn
	return this
}

// ReadMessage 读取数据 实现接口 MessageReader
func (this *messageReader) ReadMessage() ([]byte, error) {
	if this.readFunc == nil {
		this.readFunc = ReadWithAll
	}
	return this.readFunc(this.buf)
}

func NewMessageReader(r BufRead, fn ReadFunc) MessageReader {
	m := &messageReader{buf: r}
	m.SetReadFunc(fn)
	return m
}
