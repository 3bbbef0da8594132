// Package curve collects the small set of BLS12-381 group operations the
// Oberon core needs on top of github.com/consensys/gnark-crypto: scalar
// conversion, G1/G2 sum-of-products, and the paired Miller-loop/final-
// exponentiation identity check used by both token verification and proof
// opening.
package curve

import (
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// ScalarOrder is the BLS12-381 Fr modulus.
var ScalarOrder, _ = new(big.Int).SetString(
	"73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001", 16)

// RandomScalar draws 48 bytes from rng (wide enough to make the modular
// reduction bias negligible) and reduces them into a scalar.
func RandomScalar(rng io.Reader) (fr.Element, error) {
	buf := make([]byte, 48)
	if _, err := io.ReadFull(rng, buf); err != nil {
		return fr.Element{}, err
	}
	v := new(big.Int).SetBytes(buf)
	v.Mod(v, ScalarOrder)
	var s fr.Element
	s.SetBigInt(v)
	return s, nil
}

// ScalarToBigInt returns the canonical, non-Montgomery big.Int for s.
func ScalarToBigInt(s *fr.Element) *big.Int {
	var v big.Int
	s.BigInt(&v)
	return &v
}

// G1SumOfProducts returns sum(scalars[i] * bases[i]). len(bases) must equal
// len(scalars) and be at least 1.
func G1SumOfProducts(bases []bls12381.G1Affine, scalars []fr.Element) bls12381.G1Affine {
	var acc bls12381.G1Jac
	acc.FromAffine(&bases[0])
	acc.ScalarMultiplication(&acc, ScalarToBigInt(&scalars[0]))

	for i := 1; i < len(bases); i++ {
		var term bls12381.G1Jac
		term.FromAffine(&bases[i])
		term.ScalarMultiplication(&term, ScalarToBigInt(&scalars[i]))
		acc.AddAssign(&term)
	}

	var res bls12381.G1Affine
	res.FromJacobian(&acc)
	return res
}

// G2SumOfProducts returns sum(scalars[i] * bases[i]) in G2.
func G2SumOfProducts(bases []bls12381.G2Affine, scalars []fr.Element) bls12381.G2Affine {
	var acc bls12381.G2Jac
	acc.FromAffine(&bases[0])
	acc.ScalarMultiplication(&acc, ScalarToBigInt(&scalars[0]))

	for i := 1; i < len(bases); i++ {
		var term bls12381.G2Jac
		term.FromAffine(&bases[i])
		term.ScalarMultiplication(&term, ScalarToBigInt(&scalars[i]))
		acc.AddAssign(&term)
	}

	var res bls12381.G2Affine
	res.FromJacobian(&acc)
	return res
}

// G1Add returns a+b.
func G1Add(a, b bls12381.G1Affine) bls12381.G1Affine {
	var aj, bj bls12381.G1Jac
	aj.FromAffine(&a)
	bj.FromAffine(&b)
	aj.AddAssign(&bj)
	var res bls12381.G1Affine
	res.FromJacobian(&aj)
	return res
}

// G1Sub returns a-b.
func G1Sub(a, b bls12381.G1Affine) bls12381.G1Affine {
	var aj, bj bls12381.G1Jac
	aj.FromAffine(&a)
	bj.FromAffine(&b)
	aj.SubAssign(&bj)
	var res bls12381.G1Affine
	res.FromJacobian(&aj)
	return res
}

// G1ScalarMul returns s*p.
func G1ScalarMul(p bls12381.G1Affine, s *fr.Element) bls12381.G1Affine {
	var pj bls12381.G1Jac
	pj.FromAffine(&p)
	pj.ScalarMultiplication(&pj, ScalarToBigInt(s))
	var res bls12381.G1Affine
	res.FromJacobian(&pj)
	return res
}

// G2ScalarMul returns s*p.
func G2ScalarMul(p bls12381.G2Affine, s *fr.Element) bls12381.G2Affine {
	var pj bls12381.G2Jac
	pj.FromAffine(&p)
	pj.ScalarMultiplication(&pj, ScalarToBigInt(s))
	var res bls12381.G2Affine
	res.FromJacobian(&pj)
	return res
}

// G1Neg returns -p.
func G1Neg(p bls12381.G1Affine) bls12381.G1Affine {
	var res bls12381.G1Affine
	res.Neg(&p)
	return res
}

// G2Generator returns g2.
func G2Generator() bls12381.G2Affine {
	_, _, _, g2 := bls12381.Generators()
	return g2
}

// G2NegGenerator returns -g2.
func G2NegGenerator() bls12381.G2Affine {
	g2 := G2Generator()
	var neg bls12381.G2Affine
	neg.Neg(&g2)
	return neg
}

// PairingProductIsOne evaluates e(p0,q0)*e(p1,q1) via a single multi-Miller-
// loop and final exponentiation, returning whether the product is the
// identity in GT.
func PairingProductIsOne(p0, p1 bls12381.G1Affine, q0, q1 bls12381.G2Affine) bool {
	ok, err := bls12381.PairingCheck([]bls12381.G1Affine{p0, p1}, []bls12381.G2Affine{q0, q1})
	if err != nil {
		return false
	}
	return ok
}
