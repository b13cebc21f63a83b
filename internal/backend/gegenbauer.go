package backend

// Gegenbauer (ultraspherical) polynomials C_n^lambda via the recurrence
// n C_n = 2x(n+lambda-1) C_{n-1} - (n+2lambda-2) C_{n-2}.

// Gegenbauer evaluates C_n^lambda(x).
func Gegenbauer(n int32, lambda, x float64) float64 {
	if n == 0 {
		return 1
	}
	prev, cur := 1.0, 2*lambda*x
	for k := int32(2); k <= n; k++ {
		fk := float64(k)
		prev, cur = cur, (2*x*(fk+lambda-1)*cur-(fk+2*lambda-2)*prev)/fk
	}
	return cur
}

// Gegenbauer32 is the native Reduced kernel for C_n^lambda(x).
func Gegenbauer32(n int32, lambda, x float32) float32 {
	if n == 0 {
		return 1
	}
	prev, cur := float32(1), 2*lambda*x
	for k := int32(2); k <= n; k++ {
		fk := float32(k)
		prev, cur = cur, (2*x*(fk+lambda-1)*cur-(fk+2*lambda-2)*prev)/fk
	}
	return cur
}

// GegenbauerPrime evaluates d/dx C_n^lambda(x) through the derivative
// identity C_n^lambda' = 2 lambda C_{n-1}^(lambda+1).
func GegenbauerPrime(n int32, lambda, x float64) float64 {
	if n == 0 {
		return 0
	}
	return 2 * lambda * Gegenbauer(n-1, lambda+1, x)
}
