package buf

import "errors"

const (
	KB          = 1024
	DefaultSize = KB //默认缓存大小,1KB
)

var (
	ErrInvalidRead = errors.New("读取返回了无效的长度")
	ErrInvalidUTF8 = errors.New("数据不是有效的UTF-8编码")
)
