package dial

import (
	"context"
	"io"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/injoyai/iobuf"
)

//================================Websocket================================

type WebsocketConfig struct {
	Dial        *websocket.Dialer
	Url         string
	Header      http.Header
	MessageType int //写入的消息类型,默认二进制
}

// DialFunc 连接函数
func (this *WebsocketConfig) DialFunc() DialFunc {
	return func(ctx context.Context) (iobuf.ReadWriteCloser, string, error) {
		if this.Dial == nil {
			this.Dial = websocket.DefaultDialer
		}
		c, _, err := this.Dial.DialContext(ctx, this.Url, this.Header)
		if err != nil {
			return nil, this.Url, err
		}
		return NewWebsocketClient(c, this.MessageType), this.Url, nil
	}
}

// Websocket 连接
func Websocket(url string, header http.Header) (*WebsocketClient, error) {
	c, _, err := websocket.DefaultDialer.Dial(url, header)
	if err != nil {
		return nil, err
	}
	return NewWebsocketClient(c, websocket.BinaryMessage), nil
}

// WithWebsocket 连接函数
func WithWebsocket(url string, header http.Header) DialFunc {
	return (&WebsocketConfig{Url: url, Header: header}).DialFunc()
}

// NewWebsocket 新建带缓存的websocket连接,每次Flush发送一条消息
func NewWebsocket(url string, header http.Header, c *iobuf.Config) (*Conn, error) {
	return New(context.Background(), WithWebsocket(url, header), c)
}

// NewWebsocketClient 把消息转换成字节流,消息边界不保留
func NewWebsocketClient(c *websocket.Conn, messageType int) *WebsocketClient {
	if messageType == 0 {
		messageType = websocket.BinaryMessage
	}
	return &WebsocketClient{Conn: c, messageType: messageType}
}

type WebsocketClient struct {
	*websocket.Conn
	messageType int
	reader      io.Reader //当前消息
}

// Read 依次读取每条消息的数据,对方正常关闭时返回io.EOF
func (this *WebsocketClient) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for {
		if this.reader == nil {
			_, r, err := this.Conn.NextReader()
			if err != nil {
				if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					return 0, io.EOF
				}
				return 0, err
			}
			this.reader = r
		}
		n, err := this.reader.Read(p)
		if err == io.EOF {
			this.reader = nil
			if n == 0 {
				continue
			}
			return n, nil
		}
		return n, err
	}
}

// Write 写入一条消息
func (this *WebsocketClient) Write(p []byte) (int, error) {
	if err := this.Conn.WriteMessage(this.messageType, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Close 发送关闭消息后关闭连接
func (this *WebsocketClient) Close() error {
	this.Conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return this.Conn.Close()
}
