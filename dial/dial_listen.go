package dial

import (
	"context"
	"errors"
	"net"
	"sync"

	"github.com/injoyai/iobuf"
	"github.com/injoyai/logs"
)

//================================TCPListen================================

// ListenTCP 监听TCP,接收的连接都包装读写缓存
func ListenTCP(addr string, c *iobuf.Config) (*Listener, error) {
	listener, err := net.Listen(NetTCP, addr)
	if err != nil {
		return nil, err
	}
	return NewListener(listener, c), nil
}

// NewListener 包装监听
func NewListener(listener net.Listener, c *iobuf.Config) *Listener {
	return &Listener{Listener: listener, config: c}
}

type Listener struct {
	net.Listener
	config *iobuf.Config
}

// Addr 监听地址
func (this *Listener) Addr() string {
	return this.Listener.Addr().String()
}

// Accept 等待连接,标识是对方地址
func (this *Listener) Accept() (*Conn, error) {
	c, err := this.Listener.Accept()
	if err != nil {
		return nil, err
	}
	return NewConn(c, c.RemoteAddr().String(), this.config), nil
}

// Run 接收连接,每个连接在单独的协程处理,处理结束后关闭连接
// ctx取消时关闭监听,等待所有连接处理结束
func (this *Listener) Run(ctx context.Context, handler func(c *Conn)) error {
	go func() {
		<-ctx.Done()
		this.Listener.Close()
	}()
	wg := sync.WaitGroup{}
	defer wg.Wait()
	for {
		c, err := this.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return ctx.Err()
			}
			return err
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if err := c.Close(); err != nil {
					logs.Errf("[%s] 关闭连接失败: %v", c.Key(), err)
				}
			}()
			handler(c)
		}()
	}
}
