package iobuf

import "github.com/injoyai/iobuf/buf"

const (
	B   = 1         //1B
	KB  = 1024 * B  //1KB
	KB4 = 4 * KB    //4KB
	MB  = 1024 * KB //1MB

	DefaultBufferSize  = buf.DefaultSize //默认读写缓存大小,1KB
	DefaultScratchSize = KB4             //分块传输的中转大小,4KB
)

const (
	TagRead  = "接收"
	TagWrite = "发送"
	TagErr   = "错误"
	TagInfo  = "信息"
)
