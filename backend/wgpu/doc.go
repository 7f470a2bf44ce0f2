// Package wgpu provides a WebGPU render target for convexaa meshes.
//
// The package bridges the pure tessellation in the root package to a
// wgpu/hal device: it batches reserved vertex and index data on the CPU,
// uploads it as buffers, and records draws into a hal render pass using
// a pipeline whose fragment stage evaluates the per-edge coverage
// encoded in the mesh attributes.
//
// Basic usage:
//
//	target, err := wgpu.NewTarget(provider)
//	if err != nil { ... }
//	defer target.Destroy()
//
//	r := convexaa.NewRenderer()
//	if r.CanDraw(target.Caps(), path, convexaa.FillWinding, true) {
//	    r.Draw(target, path)
//	}
//	target.Flush(renderPass, width, height)
//
// The provider is any value exposing HAL device access, such as a gogpu
// window's GPU context provider.
package wgpu
