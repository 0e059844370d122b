//go:build !mobile

package mobile

// Dummy 与移动端构建导出相同的符号，桌面端 go build ./... 也能编译本包
func Dummy() {}
