//go:build !mobile

// stub.go - 非移动端构建时的占位文件
//
// 普通构建（go build ./...、go test ./...）只编译此文件，
// 避免 embed.go 要求 mobile/assets 和 mobile/data 目录存在。
package mobile

// Dummy 占位导出函数
func Dummy() {}
