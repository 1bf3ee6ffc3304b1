// Package triangle searches for the first triangular number T(k) = k(k+1)/2
// whose divisor count exceeds a threshold.
//
// T(k) is never factorized directly. Since k and k+1 are coprime, halving
// the even one splits T(k) into two coprime parts whose divisor counts
// multiply to d(T(k)).
package triangle
