package buf

import (
	"io"
)

// InitReader 支持初始化提示的读取
// init 表示p的前init字节已经是确定的数据,实现方可以跳过对这部分的清零,
// 返回读取到的字节数n和读取后p的已初始化长度initN(initN>=n,initN>=init)
type InitReader interface {
	ReadInit(p []byte, init int) (n, initN int, err error)
}

// ReadInit 按初始化提示读取,普通io.Reader只会初始化读取到的部分
func ReadInit(r io.Reader, p []byte, init int) (n, initN int, err error) {
	if v, ok := r.(InitReader); ok {
		n, initN, err = v.ReadInit(p, init)
	} else {
		n, err = r.Read(p)
		initN = init
	}
	if n < 0 || n > len(p) {
		return 0, init, ErrInvalidRead
	}
	if initN < init {
		initN = init
	}
	if initN < n {
		initN = n
	}
	if initN > len(p) {
		initN = len(p)
	}
	return
}

// NewWindow 新建读取缓存窗口,内存只在这里分配并清零一次
func NewWindow(size int) *Window {
	if size <= 0 {
		size = DefaultSize
	}
	return &Window{buf: make([]byte, size)}
}

// Window 读取缓存
// 0 <= pos <= filled <= init <= cap
// [pos,filled) 是未读取的数据,[0,init) 是曾经写入过的数据
type Window struct {
	buf    []byte
	pos    int //已消费位置
	filled int //已填充位置
	init   int //已初始化的最大位置,只增不减
}

// Capacity 缓存容量
func (this *Window) Capacity() int { return len(this.buf) }

// Pos 已消费位置
func (this *Window) Pos() int { return this.pos }

// Filled 已填充位置
func (this *Window) Filled() int { return this.filled }

// Initialized 已初始化长度
func (this *Window) Initialized() int { return this.init }

// Len 未读取的字节数
func (this *Window) Len() int { return this.filled - this.pos }

// Empty 是否没有未读取的数据
func (this *Window) Empty() bool { return this.pos >= this.filled }

// Buffer 未读取的数据,不会触发读取,返回值在下次填充前有效
func (this *Window) Buffer() []byte {
	return this.buf[this.pos:this.filled]
}

// Discard 丢弃未读取的数据,保留已初始化标记
func (this *Window) Discard() {
	this.pos = 0
	this.filled = 0
}

// Consume 消费n字节,超出可读数据的部分会被忽略
func (this *Window) Consume(n int) {
	if n <= 0 {
		return
	}
	if n > this.filled-this.pos {
		n = this.filled - this.pos
	}
	this.pos += n
}

// ConsumeWith 有n字节可读时,把这n字节交给fn处理并消费,返回true
// 可读数据不足时不做任何改变,返回false
func (this *Window) ConsumeWith(n int, fn func(p []byte)) bool {
	if n < 0 || n > this.filled-this.pos {
		return false
	}
	fn(this.buf[this.pos : this.pos+n])
	this.pos += n
	return true
}

// Unconsume 回退n字节,最多回退到0
func (this *Window) Unconsume(n int) {
	if n <= 0 {
		return
	}
	if n > this.pos {
		n = this.pos
	}
	this.pos -= n
}

// Backshift 把未读取的数据移动到开头,腾出尾部空间
func (this *Window) Backshift() {
	if this.pos == 0 {
		return
	}
	//copy 可以处理重叠的内存
	n := copy(this.buf, this.buf[this.pos:this.filled])
	this.filled = n
	this.pos = 0
}

// ReadMore 在不丢弃数据的情况下,读取数据到尾部空闲区域,返回新增的字节数
func (this *Window) ReadMore(r io.Reader) (int, error) {
	tail := this.buf[this.filled:]
	if len(tail) == 0 {
		return 0, nil
	}
	oldInit := this.init - this.filled
	if oldInit < 0 {
		oldInit = 0
	}
	n, initN, err := ReadInit(r, tail, oldInit)
	this.filled += n
	if initN > oldInit {
		this.init += initN - oldInit
	}
	if this.init < this.filled {
		this.init = this.filled
	}
	return n, err
}

// Fill 缓存为空时从r读取数据,填满整个缓存区域,缓存不为空时不做操作
// 读取到数据的同时返回错误时,数据仍然会保留
func (this *Window) Fill(r io.Reader) ([]byte, error) {
	if this.pos < this.filled {
		return this.Buffer(), nil
	}
	n, initN, err := ReadInit(r, this.buf, this.init)
	this.pos = 0
	this.filled = n
	this.init = initN
	return this.Buffer(), err
}
