package dial

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/injoyai/iobuf"
	"golang.org/x/crypto/ssh"
)

//================================SSH================================

// SSHConfig 终端配置,Type为key时使用私钥登录
type SSHConfig struct {
	Addr          string        //地址,不带端口时使用22
	User          string        //默认root
	Password      string        //Type为password
	Type          string        //password 或者 key
	Key           string        //Type为key,PEM格式的私钥
	KeyPassword   string        //Type为key,私钥密码
	Network       string        //默认tcp
	Timeout       time.Duration //连接超时,默认1秒
	Term          string        //默认xterm-256color
	Rows          int           //终端行数,默认32
	Cols          int           //终端列数,默认300
	TerminalModes ssh.TerminalModes
}

func (this *SSHConfig) init() *SSHConfig {
	if !strings.Contains(this.Addr, ":") {
		this.Addr += ":22"
	}
	this.User = defaultString(this.User, "root")
	this.Network = defaultString(this.Network, NetTCP)
	this.Term = defaultString(this.Term, "xterm-256color")
	if this.Timeout <= 0 {
		this.Timeout = time.Second
	}
	if this.Rows <= 0 {
		this.Rows = 32
	}
	if this.Cols <= 0 {
		this.Cols = 300
	}
	modes := ssh.TerminalModes{
		ssh.TTY_OP_ISPEED: 14400,
		ssh.TTY_OP_OSPEED: 14400,
	}
	for k, v := range this.TerminalModes {
		modes[k] = v
	}
	this.TerminalModes = modes
	return this
}

func (this *SSHConfig) auth() ([]ssh.AuthMethod, error) {
	if this.Type != "key" {
		return []ssh.AuthMethod{ssh.Password(this.Password)}, nil
	}
	signer, err := ssh.ParsePrivateKeyWithPassphrase([]byte(this.Key), []byte(this.KeyPassword))
	if err != nil {
		return nil, err
	}
	return []ssh.AuthMethod{ssh.PublicKeys(signer)}, nil
}

// SSHClient 终端的标准输入和标准输出组成的字节流
type SSHClient struct {
	io.Writer
	io.Reader
	Stderr  io.Reader
	Session *ssh.Session
	Client  *ssh.Client
}

// Close 关闭会话和连接
func (this *SSHClient) Close() error {
	this.Session.Close()
	return this.Client.Close()
}

// SSH 连接并打开终端
func SSH(cfg *SSHConfig) (*SSHClient, error) {
	cfg.init()
	auth, err := cfg.auth()
	if err != nil {
		return nil, err
	}
	client, err := ssh.Dial(cfg.Network, cfg.Addr, &ssh.ClientConfig{
		User:            cfg.User,
		Auth:            auth,
		Timeout:         cfg.Timeout,
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
	})
	if err != nil {
		return nil, err
	}
	c, err := openShell(client, cfg)
	if err != nil {
		client.Close()
		return nil, err
	}
	return c, nil
}

func openShell(client *ssh.Client, cfg *SSHConfig) (*SSHClient, error) {
	session, err := client.NewSession()
	if err != nil {
		return nil, err
	}
	c := &SSHClient{Session: session, Client: client}
	if c.Reader, err = session.StdoutPipe(); err != nil {
		return nil, err
	}
	if c.Stderr, err = session.StderrPipe(); err != nil {
		return nil, err
	}
	if c.Writer, err = session.StdinPipe(); err != nil {
		return nil, err
	}
	if err = session.RequestPty(cfg.Term, cfg.Rows, cfg.Cols, cfg.TerminalModes); err != nil {
		return nil, err
	}
	return c, session.Shell()
}

// WithSSH 连接函数
func WithSSH(cfg *SSHConfig) DialFunc {
	return func(ctx context.Context) (iobuf.ReadWriteCloser, string, error) {
		c, err := SSH(cfg)
		if err != nil {
			return nil, cfg.Addr, err
		}
		return c, cfg.Addr, nil
	}
}

// NewSSH 新建带缓存的终端,按行读取输出时可以使用Lines
func NewSSH(cfg *SSHConfig, c *iobuf.Config) (*Conn, error) {
	return New(context.Background(), WithSSH(cfg), c)
}

func defaultString(s, def string) string {
	if len(s) == 0 {
		return def
	}
	return s
}
