package iobuf

import "io"

var (

	// Discard 丢弃写入的数据,实现接口
	Discard = io.Discard

	// ReadFull 读满buf大小的数据
	ReadFull = io.ReadFull

	// ReadAtLeast 限制了至少读取数量
	ReadAtLeast = io.ReadAtLeast

	// ReadAll 读取全部数据
	ReadAll = io.ReadAll

	// MultiReader 合并多个reader成1个reader
	MultiReader = io.MultiReader
)

const (
	SeekStart   = io.SeekStart   // seek relative to the origin of the file
	SeekCurrent = io.SeekCurrent // seek relative to the current offset
	SeekEnd     = io.SeekEnd     // seek relative to the end
)

var (

	// EOF is the error returned by Read when no more input is available.
	// "EOF"
	EOF = io.EOF

	// ErrUnexpectedEOF means that EOF was encountered in the
	// middle of reading a fixed-size block or data structure.
	// "unexpected EOF"
	ErrUnexpectedEOF = io.ErrUnexpectedEOF

	// ErrShortWrite means that a write accepted fewer bytes than requested
	// but failed to return an explicit error.
	// "short write"
	ErrShortWrite = io.ErrShortWrite
)

type (
	Reader          = io.Reader
	Writer          = io.Writer
	Closer          = io.Closer
	Seeker          = io.Seeker
	ReadWriter      = io.ReadWriter
	ReadCloser      = io.ReadCloser
	WriteCloser     = io.WriteCloser
	ReadWriteCloser = io.ReadWriteCloser
	ByteReader      = io.ByteReader
	ByteWriter      = io.ByteWriter
	StringWriter    = io.StringWriter
	WriterTo        = io.WriterTo
)
