package curve

// CombineGT "combines" a set of pairing outputs by position-wise XOR of
// their 576-byte encodings. This is not a group operation in GT — it is
// the protocol's defined combination rule, deliberately kept as XOR
// rather than GT multiplication.
// Both Encapsulate and Decapsulate must call this same routine for the
// session key to round-trip: correctness relies on identical inputs
// (e(U, k21) == e(U, y3) and e(V_i, k22) == e(V_i, y4) whenever k21 = y3
// and k22 = y4) producing identical XOR output, not on any group-theoretic
// property of XOR itself.
func CombineGT(elements ...GT) [GTSize]byte {
	var out [GTSize]byte
	for _, el := range elements {
		b := el.Bytes()
		for i := range out {
			out[i] ^= b[i]
		}
	}
	return out
}
