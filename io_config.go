package iobuf

import (
	"github.com/injoyai/conv/cfg"
)

// Config 缓存配置
type Config struct {
	ReaderSize int    //读取缓存大小
	WriterSize int    //写入缓存大小
	WriterGrow bool   //写入缓存是否可扩容
	Debug      bool   //打印底层读写
	Logger     Logger //日志,默认github.com/injoyai/logs
}

// DefaultConfig 默认配置,可以通过配置文件覆盖
//
//	iobuf:
//	  reader_size: 4096
//	  writer_size: 4096
func DefaultConfig() *Config {
	return (&Config{
		ReaderSize: cfg.GetInt("iobuf.reader_size", DefaultBufferSize),
		WriterSize: cfg.GetInt("iobuf.writer_size", DefaultBufferSize),
	}).init()
}

func (this *Config) init() *Config {
	if this.ReaderSize <= 0 {
		this.ReaderSize = DefaultBufferSize
	}
	if this.WriterSize <= 0 {
		this.WriterSize = DefaultBufferSize
	}
	return this
}

// copyInit 补全默认值到副本,不修改调用方的配置
func (this *Config) copyInit() *Config {
	if this == nil {
		return DefaultConfig()
	}
	c := *this
	return c.init()
}

func (this *Config) logger() *logger {
	l := defaultLogger()
	if this.Logger != nil {
		l = NewLogger(this.Logger)
	}
	l.Debug(this.Debug)
	return l
}

// OptionReader 读取缓存选项
type OptionReader func(r *BufReader)

// OptionWriter 写入缓存选项
type OptionWriter func(w *BufWriter)

// WithReaderDebug 打印底层读取
func WithReaderDebug(b ...bool) OptionReader {
	return func(r *BufReader) { r.Logger.Debug(b...) }
}

// WithReaderLogger 设置读取日志
func WithReaderLogger(l Logger) OptionReader {
	return func(r *BufReader) {
		debug := r.Logger.debug
		r.Logger = NewLogger(l)
		r.Logger.Debug(debug)
	}
}

// WithWriterDebug 打印底层写入
func WithWriterDebug(b ...bool) OptionWriter {
	return func(w *BufWriter) { w.Logger.Debug(b...) }
}

// WithWriterLogger 设置写入日志
func WithWriterLogger(l Logger) OptionWriter {
	return func(w *BufWriter) {
		debug := w.Logger.debug
		w.Logger = NewLogger(l)
		w.Logger.Debug(debug)
	}
}
