package utils

import "math/rand"

// Between 返回 [min, max] 闭区间内均匀分布的随机整数
// 当 min > max 时交换两者
func Between(rng *rand.Rand, min, max int) int {
	if min > max {
		min, max = max, min
	}
	return min + rng.Intn(max-min+1)
}

// NewRand 创建随机数生成器
// seed 为 0 时使用 rand 的全局源生成种子
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = rand.Int63()
	}
	return rand.New(rand.NewSource(seed))
}
