package iobuf

var _ ReadWriteCloser = (*Stream)(nil)

// NewStream 同时缓存读写,例如tcp连接,串口
func NewStream(rw ReadWriter, c *Config) *Stream {
	return &Stream{
		BufReader: NewReaderWithConfig(rw, c),
		BufWriter: NewWriterWithConfig(rw, c),
		rw:        rw,
	}
}

// Stream 读写缓存,读和写分别使用独立的缓存
type Stream struct {
	*BufReader
	*BufWriter
	rw ReadWriter
}

// Inner 底层读写
func (this *Stream) Inner() ReadWriter {
	return this.rw
}

// Debug 打印底层读写
func (this *Stream) Debug(b ...bool) {
	this.BufReader.Logger.Debug(b...)
	this.BufWriter.Logger.Debug(b...)
}

// Close 写入缓存的数据后关闭底层
func (this *Stream) Close() error {
	return this.BufWriter.Close()
}
