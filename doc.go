// Package sparsemat is an in-memory sparse matrix algebra engine: a family
// of interchangeable storage representations unified behind one capability
// contract, plus an iterative linear solver built purely on that contract.
//
// 🚀 What is sparsemat?
//
//	A generic, dependency-light library that brings together:
//		• Numeric capability sets: fixed-width unsigned indices with an
//		  Unset sentinel, ring-like value types
//		• Three storage engines behind one Matrix contract:
//		  ListMat (incremental linked chains), CRSMat (compressed rows),
//		  RowVecMat (per-row dynamic arrays)
//		• Default algorithms written once against the contract:
//		  add/sub/scale, matrix-vector product, transpose, symmetry check,
//		  density, sorting, row formatting
//		• Format conversion (linked → CRS) and on-demand column views
//		• Sparse × sparse product (sort-merge over row and column views)
//		• Conjugate gradient solver with convergence stats (solve/)
//		• Block-partitioned wrapper with a fork-join parallel MVP
//
// ✨ Why choose sparsemat?
//
//   - Write once, specialize storage — algorithms see only the contract,
//     engines keep their performance character
//   - Explicit trade-offs — every engine documents its append/lookup/
//     traversal costs; nothing resorts silently
//   - Typed sentinel errors, checked preconditions, no hidden state
//
// Under the hood, everything is organized as a root package plus three
// collaborators:
//
//	(root)  — contract, engines, kernels, conversion, product, block wrapper
//	vec/    — dense and sparse vector containers (growth-on-write)
//	solve/  — conjugate gradient over the contract
//	export/ — plain-text and PBM bitmap dumps
//
// Typical flow: assemble incrementally in ListMat, convert once with
// NewCRSFromList for read-mostly numeric work, and hand the result to
// solve.NewCG.
//
//	go get github.com/katalvlaran/sparsemat
package sparsemat
