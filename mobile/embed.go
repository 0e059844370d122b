//go:build mobile

package mobile

import "embed"

// 以下目录由 go generate ./mobile 从项目根目录复制
//
//go:embed all:assets
var assetsFS embed.FS

//go:embed data
var dataFS embed.FS
