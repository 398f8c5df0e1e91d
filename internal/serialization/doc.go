// Package serialization saves and loads tensors in the SafeTensors format.
//
//	Format Structure:
//	  [8 bytes: Header Size (uint64 LE)]
//	  [Header: JSON, space-padded to a multiple of 8 bytes]
//	  [Tensor data: raw little-endian bytes, tensors in name order]
//
// Shapes are written outermost axis first, as other SafeTensors tools
// expect, and reversed on load into the innermost-first order used by
// package tensor. The element layout needs no conversion.
//
// Write records a SHA-256 checksum of the data section in the metadata
// under ChecksumKey; Read verifies it when present.
//
// Example usage:
//
//	err := serialization.Save("results.safetensors",
//	    map[string]*tensor.Tensor[float64]{"inverse": inv}, nil)
//
//	tensors, meta, err := serialization.Load[float64]("results.safetensors")
package serialization
