package iobuf

import (
	"fmt"
	"time"

	"github.com/injoyai/base/bytes"
	"github.com/injoyai/logs"
)

const (
	LevelAll Level = iota
	LevelWrite
	LevelRead
	LevelInfo
	LevelError
	LevelNone Level = 999
)

type Level int

var (
	LevelMap = map[Level]string{
		LevelWrite: TagWrite,
		LevelRead:  TagRead,
		LevelInfo:  TagInfo,
		LevelError: TagErr,
	}
)

func (this Level) String() string {
	return LevelMap[this]
}

// Message 读写的数据,方便HEX/ASCII打印
type Message = bytes.Entity

func defaultLogger() *logger {
	return newLogger(NewLoggerWithLogs())
}

func NewLogger(l Logger) *logger {
	return newLogger(l)
}

func newLogger(l Logger) *logger {
	return &logger{
		Logger: l,
		level:  LevelAll,
		debug:  false,
		coding: "ascii",
	}
}

// logger 底层读写的调试日志,默认不打印
type logger struct {
	Logger
	level  Level  //日志等级
	debug  bool   //是否打印调试
	coding string //编码
}

func (this *logger) SetLevel(level Level) {
	this.level = level
}

func (this *logger) Debug(b ...bool) {
	this.debug = !(len(b) > 0 && !b[0])
}

func (this *logger) SetPrintWithHEX() {
	this.coding = "hex"
}

func (this *logger) SetPrintWithASCII() {
	this.coding = "ascii"
}

func (this *logger) enable(level Level) bool {
	return this != nil && this.debug && level >= this.level
}

func (this *logger) Readln(prefix string, p []byte) {
	if this.enable(LevelRead) {
		this.Logger.Readf("%s%s", prefix, this.format(p))
	}
}

func (this *logger) Writeln(prefix string, p []byte) {
	if this.enable(LevelWrite) {
		this.Logger.Writef("%s%s", prefix, this.format(p))
	}
}

func (this *logger) Infof(format string, v ...interface{}) {
	if this.enable(LevelInfo) {
		this.Logger.Infof(format, v...)
	}
}

func (this *logger) Errorf(format string, v ...interface{}) {
	if this.enable(LevelError) {
		this.Logger.Errorf(format, v...)
	}
}

func (this *logger) format(p []byte) string {
	msg := Message(p)
	if this.coding == "hex" {
		return msg.HEX()
	}
	return msg.ASCII()
}

/*



 */

// NewLoggerWithLogs 使用github.com/injoyai/logs输出
func NewLoggerWithLogs() Logger {
	return &logsLogger{}
}

func NewLoggerWithWriter(w Writer) Logger {
	return &printer{w}
}

func NewLoggerWithChan(c chan []byte) Logger {
	return NewLoggerWithWriter(Write(func(p []byte) (int, error) {
		select {
		case c <- append([]byte(nil), p...):
		default:
		}
		return len(p), nil
	}))
}

type Logger interface {
	Readf(format string, v ...interface{})
	Writef(format string, v ...interface{})
	Infof(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

type logsLogger struct{}

func (logsLogger) Readf(format string, v ...interface{}) {
	logs.Debugf("["+TagRead+"] "+format, v...)
}

func (logsLogger) Writef(format string, v ...interface{}) {
	logs.Debugf("["+TagWrite+"] "+format, v...)
}

func (logsLogger) Infof(format string, v ...interface{}) {
	logs.Debugf("["+TagInfo+"] "+format, v...)
}

func (logsLogger) Errorf(format string, v ...interface{}) {
	logs.Errf(format, v...)
}

type printer struct{ Writer }

func (p printer) Readf(format string, v ...interface{})  { p.printf(LevelRead, format, v...) }
func (p printer) Writef(format string, v ...interface{}) { p.printf(LevelWrite, format, v...) }
func (p printer) Infof(format string, v ...interface{})  { p.printf(LevelInfo, format, v...) }
func (p printer) Errorf(format string, v ...interface{}) { p.printf(LevelError, format, v...) }

func (p printer) printf(level Level, format string, v ...interface{}) {
	timeStr := time.Now().Format("2006-01-02 15:04:05 ")
	p.Writer.Write([]byte(fmt.Sprintf(timeStr+"["+level.String()+"] "+format+"\n", v...)))
}
