package dial

import (
	"context"
	"net"
	"os"
	"time"

	"github.com/injoyai/iobuf"
)

const (
	NetTCP = "tcp"
	NetUDP = "udp"

	// DefaultConnectTimeout 默认连接超时时间
	DefaultConnectTimeout = time.Second * 10
)

// DialFunc 连接函数,返回连接和标识(例如地址)
type DialFunc func(ctx context.Context) (iobuf.ReadWriteCloser, string, error)

// New 连接并包装读写缓存,c为nil时使用默认配置
func New(ctx context.Context, dial DialFunc, c *iobuf.Config) (*Conn, error) {
	rwc, key, err := dial(ctx)
	if err != nil {
		return nil, err
	}
	return NewConn(rwc, key, c), nil
}

// NewConn 包装已经建立的连接
func NewConn(rwc iobuf.ReadWriteCloser, key string, c *iobuf.Config) *Conn {
	return &Conn{
		Stream: Buffered(rwc, c),
		key:    key,
	}
}

// Buffered 包装读写缓存,读和写使用独立的缓存
func Buffered(rw iobuf.ReadWriter, c *iobuf.Config) *iobuf.Stream {
	return iobuf.NewStream(rw, c)
}

// Conn 带读写缓存的连接,写入后需要Flush,关闭时会先写入缓存的数据
type Conn struct {
	*iobuf.Stream
	key string
}

// Key 连接标识,例如地址
func (this *Conn) Key() string {
	return this.key
}

// SetKey 设置连接标识
func (this *Conn) SetKey(key string) *Conn {
	this.key = key
	return this
}

// WriteFlush 写入并立即发送
func (this *Conn) WriteFlush(p []byte) (int, error) {
	n, err := this.Write(p)
	if err != nil {
		return n, err
	}
	return n, this.Flush()
}

// WriteRead 发送后读取一次响应,读取的数据会被复制
func (this *Conn) WriteRead(p []byte) ([]byte, error) {
	if _, err := this.WriteFlush(p); err != nil {
		return nil, err
	}
	return iobuf.ReadWithAll(this.BufReader)
}

//================================Memory================================

// Memory 内存中的一对连接,一端写入的数据从另一端读取,同步且没有底层缓存
func Memory(c *iobuf.Config) (*Conn, *Conn) {
	c1, c2 := net.Pipe()
	return NewConn(c1, "memory", c), NewConn(c2, "memory", c)
}

//================================TCP================================

// TCP 连接
func TCP(addr string) (net.Conn, error) {
	return TCPTimeout(addr, DefaultConnectTimeout)
}

func TCPTimeout(addr string, timeout time.Duration) (net.Conn, error) {
	return net.DialTimeout(NetTCP, addr, timeout)
}

// WithTCP 连接函数
func WithTCP(addr string) DialFunc {
	return func(ctx context.Context) (iobuf.ReadWriteCloser, string, error) {
		d := &net.Dialer{Timeout: DefaultConnectTimeout}
		c, err := d.DialContext(ctx, NetTCP, addr)
		return c, addr, err
	}
}

// NewTCP 新建带缓存的TCP连接
func NewTCP(addr string, c *iobuf.Config) (*Conn, error) {
	return New(context.Background(), WithTCP(addr), c)
}

//================================UDP================================

// UDP 连接,每次Flush发送一个数据包
func UDP(addr string) (net.Conn, error) {
	return net.DialTimeout(NetUDP, addr, DefaultConnectTimeout)
}

// WithUDP 连接函数
func WithUDP(addr string) DialFunc {
	return func(ctx context.Context) (iobuf.ReadWriteCloser, string, error) {
		d := &net.Dialer{Timeout: DefaultConnectTimeout}
		c, err := d.DialContext(ctx, NetUDP, addr)
		return c, addr, err
	}
}

// NewUDP 新建带缓存的UDP连接
func NewUDP(addr string, c *iobuf.Config) (*Conn, error) {
	return New(context.Background(), WithUDP(addr), c)
}

//================================File================================

// File 打开文件读写,不存在时新建
func File(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0666)
}

// WithFile 打开文件函数
func WithFile(path string) DialFunc {
	return func(ctx context.Context) (iobuf.ReadWriteCloser, string, error) {
		f, err := File(path)
		return f, path, err
	}
}

// NewFile 新建带缓存的文件读写
func NewFile(path string, c *iobuf.Config) (*Conn, error) {
	return New(context.Background(), WithFile(path), c)
}
