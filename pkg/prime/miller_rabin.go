// Package prime 实现 64 位无符号整数的确定性 Miller-Rabin 素性判定。
//
// 与概率版不同，这里不随机选底：对 n < 3,317,044,064,679,887,385,961,981
// 的输入，只要依次测试 2..37 这 12 个素数底，结论就是数学上确定的，
// 而 2^64-1 远小于这个上界。判定过程没有任何共享状态，可以被任意多个
// goroutine 并发调用。
package prime

import "prime-crypto/pkg/mod"

// Verdict 表示素性判定的结论，零值为 Composite：
// 除非所有见证底都认证通过，n 一律按合数处理。
type Verdict int

const (
	Composite Verdict = iota
	Prime
)

func (v Verdict) String() string {
	if v == Prime {
		return "prime"
	}
	return "composite"
}

// 固定的 12 个见证底，表序即测试顺序，初始化后只读。
// 覆盖 n < 2^64 全范围的确定性充分底集；若要覆盖到
// 3,317,044,064,679,887,385,961,981 还需要补一个 41。
var witnesses = [12]uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// MillerRabin 判定 n 的素性。
//
// 前置条件：n 为奇数且 n > 3，由调用方保证。偶数或 n <= 3 的输入
// 属于契约违反，结论未定义，函数内部不做校验。
func MillerRabin(n uint64) Verdict {
	// 分解 n-1：不断右移低位的 0 并计数，遇到 1 停下，剩下的奇数是 q。
	// k 从 1 起算、每移一位加一，内层见证循环正好做 k-1 轮检查。
	q := n - 1
	k := uint(1)
	for q&1 == 0 {
		k++
		q >>= 1
	}

	for _, a := range witnesses {
		if a%n == 0 {
			// 底是 n 的倍数时幂恒为 0，提供不了任何合数证据，
			// 换下一个底。n 落在见证表内（如 5、7）时会走到这里。
			continue
		}
		// x = a^q mod n。x = 1 说明这个底找不到合数证据，直接认证。
		x := mod.Pow(a, q, n)
		if x == 1 {
			continue
		}
		// 依次检查 a^(q*2^j) mod n（j = 0..k-2）是否等于 n-1，
		// 每轮把 x 平方一次推进。
		certified := false
		for j := uint(0); j < k-1; j++ {
			if x == n-1 {
				certified = true
				break
			}
			x = mod.Mul(x, x, n)
		}
		// 任何一个底找到了合数证据，立即判合数，后面的底不再测。
		if !certified {
			return Composite
		}
	}
	return Prime
}

// IsPrime 是 MillerRabin 的布尔包装，前置条件相同。
func IsPrime(n uint64) bool {
	return MillerRabin(n) == Prime
}
