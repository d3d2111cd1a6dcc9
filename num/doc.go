// SPDX-License-Identifier: MIT

// Package num fixes the scalar width shared by every lvmath package.
//
// What & Why:
//
//	The matrix kernel and the CORDIC engine operate on one floating-point
//	type per build. The default build uses float64; building with the
//	`real32` tag switches the whole module to float32 (the width used on
//	small FPU-only targets). The two widths are never mixed in one binary.
//
//	go build -tags real32 ./...
package num
