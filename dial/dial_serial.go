package dial

import (
	"context"
	"time"

	"github.com/goburrow/serial"
	"github.com/injoyai/iobuf"
	"github.com/injoyai/logs"
	serial2 "go.bug.st/serial"
)

//================================SerialDial================================

const (
	SerialParityNone = "N" //无校验
	SerialParityEven = "E" //奇校验
	SerialParityOdd  = "O" //偶校验
)

type (
	SerialConfig      = serial.Config
	SerialRS485Config = serial.RS485Config
)

// SerialDefault 补全串口配置,默认COM3,115200,8,1,无校验
func SerialDefault(cfg *SerialConfig) *SerialConfig {
	if cfg == nil {
		cfg = &SerialConfig{}
	}
	cfg.Address = defaultString(cfg.Address, "COM3")
	cfg.Parity = defaultString(cfg.Parity, SerialParityNone)
	cfg.BaudRate = defaultInt(cfg.BaudRate, 115200)
	cfg.DataBits = defaultInt(cfg.DataBits, 8)
	cfg.StopBits = defaultInt(cfg.StopBits, 1)
	return cfg
}

// Serial 打开串口
func Serial(cfg *SerialConfig) (serial.Port, error) {
	return serial.Open(SerialDefault(cfg))
}

// WithSerial 打开串口函数
func WithSerial(cfg *SerialConfig) DialFunc {
	return func(ctx context.Context) (iobuf.ReadWriteCloser, string, error) {
		cfg = SerialDefault(cfg)
		p, err := serial.Open(cfg)
		return p, cfg.Address, err
	}
}

// NewSerial 打开带缓存的串口
func NewSerial(cfg *SerialConfig, c *iobuf.Config) (*Conn, error) {
	return New(context.Background(), WithSerial(cfg), c)
}

//================================SerialOther================================

// GetSerialPortList 获取当前串口列表
func GetSerialPortList() ([]string, error) {
	return serial2.GetPortsList()
}

// GetSerialBaudRate 获取波特率列表
func GetSerialBaudRate() []int {
	return []int{
		50, 75,
		110, 134, 150, 200, 300, 600,
		1200, 1800, 2400, 4800, 7200, 9600,
		14400, 19200, 28800, 38400, 57600, 76800,
		115200, 230400,
	}
}

// ScanSerial 扫描串口参数,依次发送write,返回第一个有响应的配置和响应
func ScanSerial(addr string, timeout time.Duration, write []byte) (*SerialConfig, []byte) {
	for _, cfg := range serialCandidates(addr, timeout) {
		resp, err := probeSerial(cfg, write)
		if err == nil {
			return cfg, resp
		}
		logs.Errf("[%s] 波特率:%d 数据位:%d 停止位:%d 校验:%s 错误:%v",
			addr, cfg.BaudRate, cfg.DataBits, cfg.StopBits, cfg.Parity, err)
	}
	return nil, nil
}

func serialCandidates(addr string, timeout time.Duration) []*SerialConfig {
	list := []*SerialConfig(nil)
	for _, dataBits := range []int{8, 7, 6, 5} {
		for _, stopBits := range []int{1, 2} {
			for _, parity := range []string{SerialParityNone, SerialParityEven, SerialParityOdd} {
				for _, baudRate := range GetSerialBaudRate() {
					list = append(list, &SerialConfig{
						Address:  addr,
						BaudRate: baudRate,
						DataBits: dataBits,
						StopBits: stopBits,
						Parity:   parity,
						Timeout:  timeout,
					})
				}
			}
		}
	}
	return list
}

// probeSerial 打开串口发送一次,读取一次响应
func probeSerial(cfg *SerialConfig, write []byte) ([]byte, error) {
	c, err := NewSerial(cfg, nil)
	if err != nil {
		return nil, err
	}
	defer c.Close()
	return c.WriteRead(write)
}

func defaultInt(n, def int) int {
	if n == 0 {
		return def
	}
	return n
}
