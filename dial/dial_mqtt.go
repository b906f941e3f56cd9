package dial

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/injoyai/conv"
	"github.com/injoyai/iobuf"
)

//================================MQTT================================

var ErrConnectTimeout = errors.New("连接超时")

type MQTTConfig = mqtt.ClientOptions

// NewMQTTOptions 新建默认配置信息
func NewMQTTOptions() *MQTTConfig {
	return mqtt.NewClientOptions()
}

// MQTTEasyConfig 常用的连接配置
type MQTTEasyConfig struct {
	BrokerURL string        //必选,不要忘记 tcp://
	ClientID  string        //可选,默认当前时间戳
	Username  string        //用户名
	Password  string        //密码
	Timeout   time.Duration //连接超时时间,默认10秒
	KeepAlive time.Duration //心跳时间,0是不启用该机制
}

func (this *MQTTEasyConfig) init() *MQTTEasyConfig {
	if !strings.Contains(this.BrokerURL, "://") {
		this.BrokerURL = "tcp://" + this.BrokerURL
	}
	if len(this.ClientID) == 0 {
		this.ClientID = conv.String(time.Now().UnixNano())
	}
	if this.Timeout <= 0 {
		this.Timeout = DefaultConnectTimeout
	}
	return this
}

// Options 转换成完整配置
func (this *MQTTEasyConfig) Options() *MQTTConfig {
	this.init()
	return mqtt.NewClientOptions().
		AddBroker(this.BrokerURL).
		SetClientID(this.ClientID).
		SetUsername(this.Username).
		SetPassword(this.Password).
		SetConnectTimeout(this.Timeout).
		SetKeepAlive(this.KeepAlive).
		SetAutoReconnect(false).
		SetCleanSession(true)
}

// MQTT 连接,订阅subscribe的消息作为读取的数据,写入的数据发布到publish
func MQTT(subscribe, publish string, qos byte, cfg *MQTTConfig) (*MQTTClient, error) {
	if cfg == nil {
		cfg = NewMQTTOptions()
	}
	c := mqtt.NewClient(cfg)
	token := c.Connect()
	if !token.WaitTimeout(cfg.ConnectTimeout) {
		return nil, ErrConnectTimeout
	}
	if token.Error() != nil {
		return nil, token.Error()
	}
	r := newMQTTClient(c, subscribe, publish, qos)
	token = c.Subscribe(subscribe, qos, func(client mqtt.Client, msg mqtt.Message) {
		r.receive(msg.Payload())
		msg.Ack()
	})
	token.Wait()
	if token.Error() != nil {
		c.Disconnect(0)
		return nil, token.Error()
	}
	return r, nil
}

// WithMQTT 连接函数
func WithMQTT(subscribe, publish string, qos byte, cfg *MQTTConfig) DialFunc {
	return func(ctx context.Context) (iobuf.ReadWriteCloser, string, error) {
		c, err := MQTT(subscribe, publish, qos, cfg)
		if err != nil {
			return nil, publish, err
		}
		return c, publish, nil
	}
}

// NewMQTT 新建带缓存的MQTT连接,每次Flush发布一条消息
func NewMQTT(subscribe, publish string, qos byte, cfg *MQTTConfig, c *iobuf.Config) (*Conn, error) {
	return New(context.Background(), WithMQTT(subscribe, publish, qos, cfg), c)
}

func newMQTTClient(c mqtt.Client, subscribe, publish string, qos byte) *MQTTClient {
	return &MQTTClient{
		Client:    c,
		subscribe: subscribe,
		publish:   publish,
		qos:       qos,
		ch:        make(chan []byte, 1000),
		done:      make(chan struct{}),
	}
}

// MQTTClient 把订阅的消息转换成字节流
type MQTTClient struct {
	mqtt.Client
	subscribe string
	publish   string
	qos       byte
	ch        chan []byte
	cache     []byte //当前消息未读取的部分
	done      chan struct{}
	closeOnce sync.Once
}

func (this *MQTTClient) receive(p []byte) {
	select {
	case this.ch <- p:
	case <-this.done:
	}
}

// Read 依次读取每条消息的数据,关闭后返回io.EOF
func (this *MQTTClient) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for len(this.cache) == 0 {
		select {
		case this.cache = <-this.ch:
		case <-this.done:
			return 0, io.EOF
		}
	}
	n := copy(p, this.cache)
	this.cache = this.cache[n:]
	return n, nil
}

// Write 发布一条消息
func (this *MQTTClient) Write(p []byte) (int, error) {
	token := this.Client.Publish(this.publish, this.qos, false, p)
	token.Wait()
	if token.Error() != nil {
		return 0, token.Error()
	}
	return len(p), nil
}

// Close 取消订阅并断开连接
func (this *MQTTClient) Close() (err error) {
	this.closeOnce.Do(func() {
		close(this.done)
		if this.Client == nil {
			return
		}
		token := this.Client.Unsubscribe(this.subscribe)
		token.Wait()
		err = token.Error()
		this.Client.Disconnect(250)
	})
	return
}
