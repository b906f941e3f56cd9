package buf

// Stage 写入缓存,[0,Len) 是等待写入的数据
type Stage interface {
	// Len 等待写入的字节数
	Len() int
	// Cap 缓存容量
	Cap() int
	// Spare 剩余可写入的字节数
	Spare() int
	// Bytes 等待写入的数据,在下次修改前有效
	Bytes() []byte
	// Append 追加数据,最多追加Spare字节,返回追加的字节数
	Append(p []byte) int
	// Consume 移除已经写入的前n字节
	Consume(n int)
	// Reset 清空
	Reset()
}

var (
	_ Stage = (*FixedStage)(nil)
	_ Stage = (*GrowStage)(nil)
)

/*



 */

// NewFixedStage 固定容量的写入缓存
func NewFixedStage(size int) *FixedStage {
	if size <= 0 {
		size = DefaultSize
	}
	return &FixedStage{buf: make([]byte, size)}
}

// FixedStage 固定容量,消费时把剩余数据移动到开头
type FixedStage struct {
	buf []byte
	n   int
}

func (this *FixedStage) Len() int { return this.n }

func (this *FixedStage) Cap() int { return len(this.buf) }

func (this *FixedStage) Spare() int { return len(this.buf) - this.n }

func (this *FixedStage) Bytes() []byte { return this.buf[:this.n] }

func (this *FixedStage) Append(p []byte) int {
	n := copy(this.buf[this.n:], p)
	this.n += n
	return n
}

func (this *FixedStage) Consume(n int) {
	if n <= 0 {
		return
	}
	if n >= this.n {
		this.n = 0
		return
	}
	this.n = copy(this.buf, this.buf[n:this.n])
}

func (this *FixedStage) Reset() { this.n = 0 }

/*



 */

// NewGrowStage 可扩容的写入缓存,size是初始容量
func NewGrowStage(size int) *GrowStage {
	if size <= 0 {
		size = DefaultSize
	}
	return &GrowStage{buf: make([]byte, 0, size), max: size}
}

// GrowStage 可扩容,消费时只移动头部位置,追加空间不足时才整理
type GrowStage struct {
	buf  []byte //[head,len(buf)) 是等待写入的数据
	head int
	max  int //容量
}

func (this *GrowStage) Len() int { return len(this.buf) - this.head }

func (this *GrowStage) Cap() int { return this.max }

func (this *GrowStage) Spare() int { return this.max - this.Len() }

func (this *GrowStage) Bytes() []byte { return this.buf[this.head:] }

// Grow 扩大容量到至少size
func (this *GrowStage) Grow(size int) {
	if size <= this.max {
		return
	}
	this.max = size
	if cap(this.buf)-this.head < size {
		buf := make([]byte, this.Len(), size)
		copy(buf, this.buf[this.head:])
		this.buf = buf
		this.head = 0
	}
}

func (this *GrowStage) Append(p []byte) int {
	if spare := this.Spare(); len(p) > spare {
		p = p[:spare]
	}
	if len(p) == 0 {
		return 0
	}
	if cap(this.buf)-len(this.buf) < len(p) && this.head > 0 {
		//尾部空间不足,整理到开头
		n := copy(this.buf, this.buf[this.head:])
		this.buf = this.buf[:n]
		this.head = 0
	}
	this.buf = append(this.buf, p...)
	return len(p)
}

func (this *GrowStage) Consume(n int) {
	if n <= 0 {
		return
	}
	if n >= this.Len() {
		this.Reset()
		return
	}
	this.head += n
}

func (this *GrowStage) Reset() {
	this.buf = this.buf[:0]
	this.head = 0
}
