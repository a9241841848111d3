package erasure

// gfMatrix is a dense matrix over GF(2^8) stored row-major.
type gfMatrix struct {
	rows, cols int
	data       [][]byte
}

func newGFMatrix(rows, cols int) *gfMatrix {
	data := make([][]byte, rows)
	for r := range data {
		data[r] = make([]byte, cols)
	}
	return &gfMatrix{rows: rows, cols: cols, data: data}
}

// buildVandermonde builds the (k+m) x k encode matrix E in systematic form.
// It starts from the Vandermonde matrix V with V[r][c] = pow(r, c) and
// multiplies it by the inverse of V's top k x k block, so the top k rows of
// E are the identity (data fragments are the input itself) and the bottom m
// rows hold the parity coefficients. Since E is V times an invertible
// matrix, every k x k submatrix formed by k distinct rows is nonsingular,
// which is what lets decode invert any k present rows.
func buildVandermonde(k, m int) *gfMatrix {
	n := k + m
	vm := newGFMatrix(n, k)
	for r := 0; r < n; r++ {
		for c := 0; c < k; c++ {
			vm.data[r][c] = gfPow(byte(r), c)
		}
	}
	top := make([]int, k)
	for i := range top {
		top[i] = i
	}
	topInv, err := vm.subMatrix(top).invert()
	if err != nil {
		panic(err)
	}
	mat := newGFMatrix(n, k)
	for r := 0; r < n; r++ {
		for c := 0; c < k; c++ {
			for i := 0; i < k; i++ {
				mat.data[r][c] ^= gfMul(vm.data[r][i], topInv.data[i][c])
			}
		}
	}
	return mat
}

// subMatrix extracts the rows of mat named by indices, producing a square
// matrix suitable for inversion.
func (mat *gfMatrix) subMatrix(indices []int) *gfMatrix {
	sub := newGFMatrix(len(indices), mat.cols)
	for i, r := range indices {
		copy(sub.data[i], mat.data[r])
	}
	return sub
}

// invert computes the inverse of a k x k matrix over GF(2^8) via Gaussian
// elimination on the augmented matrix [M | I]. A missing pivot means the
// matrix is singular, which for a submatrix of the Vandermonde encode matrix
// can only happen due to an implementation bug or a corrupted set of
// fragment indices.
func (mat *gfMatrix) invert() (*gfMatrix, error) {
	k := mat.rows
	aug := newGFMatrix(k, 2*k)
	for i := 0; i < k; i++ {
		copy(aug.data[i], mat.data[i])
		aug.data[i][k+i] = 1
	}

	for i := 0; i < k; i++ {
		pivotRow := -1
		for j := i; j < k; j++ {
			if aug.data[j][i] != 0 {
				pivotRow = j
				break
			}
		}
		if pivotRow == -1 {
			return nil, newMatrixSingularError(i)
		}
		if pivotRow != i {
			aug.data[i], aug.data[pivotRow] = aug.data[pivotRow], aug.data[i]
		}

		scale := gfInv(aug.data[i][i])
		for c := 0; c < 2*k; c++ {
			aug.data[i][c] = gfMul(aug.data[i][c], scale)
		}

		for j := 0; j < k; j++ {
			if j == i || aug.data[j][i] == 0 {
				continue
			}
			factor := aug.data[j][i]
			for c := 0; c < 2*k; c++ {
				aug.data[j][c] ^= gfMul(factor, aug.data[i][c])
			}
		}
	}

	inv := newGFMatrix(k, k)
	for i := 0; i < k; i++ {
		copy(inv.data[i], aug.data[i][k:])
	}
	return inv, nil
}
