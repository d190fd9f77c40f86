// Package protos holds the Go code generated from onnx.proto, the subset of ONNX's onnx.proto3 used
// to store operator conformance cases.
//
// Field numbers and enum values match upstream, so the files written with these messages are regular
// ONNX models and tensors, and upstream fields not in the subset survive a decode/encode round trip
// as unknown fields.
package protos

//go:generate protoc --go_out=. --go_opt=paths=source_relative onnx.proto
