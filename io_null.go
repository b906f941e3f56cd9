package iobuf

import (
	"io"
	"math"
)

var (
	// Null 读取时结束,写入时丢弃
	Null = &null{}
)

type null struct{}

func (this *null) Remaining() int { return 0 }

func (this *null) Write(p []byte) (int, error) { return len(p), nil }

func (this *null) Read(p []byte) (int, error) { return 0, io.EOF }

func (this *null) Close() error { return nil }

// Empty 没有数据的数据源
func Empty() Buf { return &empty{} }

type empty struct{}

func (this *empty) Remaining() int { return 0 }

func (this *empty) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	return 0, io.EOF
}

// Repeat 无限重复一个字节的数据源
func Repeat(b byte) Buf { return &repeat{b: b} }

type repeat struct{ b byte }

func (this *repeat) Remaining() int { return math.MaxInt }

func (this *repeat) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = this.b
	}
	return len(p), nil
}

// Sink 丢弃所有数据的写入目标
func Sink() BufMut { return &sink{} }

type sink struct{}

func (this *sink) Remaining() int { return math.MaxInt }

func (this *sink) Write(p []byte) (int, error) { return len(p), nil }
