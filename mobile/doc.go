// Package mobile 提供 ebitenmobile 绑定入口
//
// 资源通过 go:embed 嵌入，需要先把根目录的 assets/ 和 data/ 复制到本目录：
//
//	go generate ./mobile
//
// 然后构建：
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.balloonpump -o build/android/balloonpump.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/BalloonPump.xcframework -v ./mobile
//
// 世界尺寸取设备屏幕尺寸（第一次 Layout 的外部尺寸）。
package mobile

//go:generate go run ../cmd/prepare_mobile -root .. -out .
