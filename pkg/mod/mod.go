// Package mod 提供 64 位无符号整数上的模运算原语。
//
// 所有函数都是纯函数，返回值保证落在 [0, m) 内，模数 m 可以取到
// uint64 的全范围（1 <= m <= 2^64-1）。实现上完全避开原生宽度的
// 静默溢出：加法用先比较后运算的方式绕开 a+b 的回绕，乘法和幂运算
// 分别归约为模加法与模乘法。
//
// 前置条件 m >= 1 由调用方保证；m = 0 会在第一次取模时触发除零
// panic，属于契约违反，不作为错误返回。
package mod

// Add 计算 (a + b) mod m。
// a、b 先归约到 [0, m)，之后 a+b 仍可能超过 64 位，所以不直接求和，
// 改判 a >= m-b（b < m 时 m-b 不会下溢），成立则返回 a-(m-b)，
// 否则返回 a+b。比较必须写成 a >= m-b 而不是 a+b >= m。
func Add(a, b, m uint64) uint64 {
	a %= m
	b %= m
	if a >= m-b {
		return a - (m - b)
	}
	return a + b
}

// Sub 计算 (a - b) mod m。
// 无符号表示下 a < b 时不能直接相减，先补一个 m：b < m 保证
// m-b >= 1，再加上 a < m 也不会回绕。
func Sub(a, b, m uint64) uint64 {
	a %= m
	b %= m
	if a < b {
		return m - b + a
	}
	return a - b
}

// Mul 计算 (a * b) mod m。
// 64x64 的直接乘积会溢出，改用 double-and-add：按 b 的二进制位
// 逐位累加，每一步只调用 Add，整个过程不会越界。O(log b) 次模加法。
func Mul(a, b, m uint64) uint64 {
	var r uint64
	a %= m
	b %= m
	for b > 0 {
		if b&1 == 1 {
			r = Add(r, a, m)
		}
		b >>= 1
		a = Add(a, a, m)
	}
	return r
}

// Pow 计算 (a ^ b) mod m，square-and-multiply。
// 底数 a 只在进入循环前归约一次；指数 b 是真实的位串，绝不能对 m
// 归约。累积值从 1 % m 起步，既满足 a^0 = 1 的约定，也覆盖 m = 1
// 时一切结果都是 0 的情形。O(log b) 次模乘法。
func Pow(a, b, m uint64) uint64 {
	r := 1 % m
	a %= m
	for b > 0 {
		if b&1 == 1 {
			r = Mul(r, a, m)
		}
		b >>= 1
		a = Mul(a, a, m)
	}
	return r
}
