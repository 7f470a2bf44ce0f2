package wgpu

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/convexaa"
)

// Target errors.
var (
	// ErrNilProvider is returned when creating a target from a nil provider.
	ErrNilProvider = errors.New("convexaa: device provider is nil")

	// ErrNoHALAccess is returned when the provider does not expose
	// wgpu/hal device types.
	ErrNoHALAccess = errors.New("convexaa: provider does not expose HAL types")
)

// TargetConfig holds configuration for a Target.
type TargetConfig struct {
	// Format is the color attachment format of the render pass the
	// target draws into. Default: BGRA8Unorm.
	Format gputypes.TextureFormat

	// SampleCount is the MSAA sample count of the render pass.
	// Default: 4.
	SampleCount uint32

	// MaxVertices caps the number of vertices batched between flushes.
	// Default: convexaa.MaxVertices.
	MaxVertices int
}

// DefaultTargetConfig returns the default target configuration.
func DefaultTargetConfig() TargetConfig {
	return TargetConfig{
		Format:      gputypes.TextureFormatBGRA8Unorm,
		SampleCount: 4,
		MaxVertices: convexaa.MaxVertices,
	}
}

// drawCall records one indexed draw within the batched buffers.
type drawCall struct {
	firstIndex uint32
	indexCount uint32
	baseVertex int32
}

// frameResources holds per-flush GPU buffers and the bind group.
type frameResources struct {
	vertBuf    hal.Buffer
	idxBuf     hal.Buffer
	uniformBuf hal.Buffer
	bindGroup  hal.BindGroup
}

func (r *frameResources) destroy(device hal.Device) {
	if r.bindGroup != nil {
		device.DestroyBindGroup(r.bindGroup)
	}
	if r.uniformBuf != nil {
		device.DestroyBuffer(r.uniformBuf)
	}
	if r.idxBuf != nil {
		device.DestroyBuffer(r.idxBuf)
	}
	if r.vertBuf != nil {
		device.DestroyBuffer(r.vertBuf)
	}
}

// Target batches convexaa meshes and draws them through a wgpu/hal
// render pass. It implements convexaa.Target.
//
// Target is not safe for concurrent use.
type Target struct {
	device hal.Device
	queue  hal.Queue

	cfg  TargetConfig
	pipe pipeline

	view convexaa.Matrix
	tex  convexaa.Matrix

	color [4]float32

	verts       []convexaa.Vertex
	idxs        []uint16
	lastReserve int
	draws       []drawCall

	// Resources from the previous flush, destroyed on the next flush
	// or on Destroy.
	frame *frameResources
}

// DeviceProvider is the gpucontext device sharing interface. Host
// applications (a gogpu window, for example) implement it and hand it
// to libraries so GPU resources are shared rather than duplicated.
type DeviceProvider = gpucontext.DeviceProvider

// NewTarget creates a Target from an external device provider. The
// provider must implement HalDevice() any and HalQueue() any returning
// wgpu/hal types, such as a gogpu window's GPU context provider.
func NewTarget(provider any) (*Target, error) {
	return NewTargetConfig(provider, DefaultTargetConfig())
}

// NewTargetFromContext creates a Target from a gpucontext device
// provider. The provider must additionally expose the HAL handles via
// HalDevice() any and HalQueue() any.
func NewTargetFromContext(provider DeviceProvider, cfg TargetConfig) (*Target, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	return NewTargetConfig(provider, cfg)
}

// NewTargetConfig is like NewTarget with explicit configuration.
func NewTargetConfig(provider any, cfg TargetConfig) (*Target, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, ErrNoHALAccess
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: HalDevice is not hal.Device", ErrNoHALAccess)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("%w: HalQueue is not hal.Queue", ErrNoHALAccess)
	}
	return NewTargetWithDevice(device, queue, cfg)
}

// NewTargetWithDevice creates a Target from hal device and queue
// handles directly.
func NewTargetWithDevice(device hal.Device, queue hal.Queue, cfg TargetConfig) (*Target, error) {
	if device == nil {
		return nil, ErrNoHALAccess
	}
	if cfg.Format == 0 {
		cfg.Format = DefaultTargetConfig().Format
	}
	if cfg.SampleCount == 0 {
		cfg.SampleCount = DefaultTargetConfig().SampleCount
	}
	if cfg.MaxVertices <= 0 {
		cfg.MaxVertices = convexaa.MaxVertices
	}
	return &Target{
		device: device,
		queue:  queue,
		cfg:    cfg,
		pipe:   pipeline{device: device},
		view:   convexaa.Identity(),
		tex:    convexaa.Identity(),
		color:  [4]float32{0, 0, 0, 1},
	}, nil
}

// Destroy releases all GPU resources held by the target. Safe to call
// multiple times.
func (t *Target) Destroy() {
	if t.frame != nil {
		t.frame.destroy(t.device)
		t.frame = nil
	}
	t.pipe.destroy()
}

// SetColor sets the premultiplied fill color for subsequent flushes.
func (t *Target) SetColor(r, g, b, a float32) {
	t.color = [4]float32{r, g, b, a}
}

// Caps reports the target's capabilities. The WGSL fragment stage has
// dpdx/dpdy, so curved edges are supported.
func (t *Target) Caps() convexaa.Caps {
	return convexaa.Caps{ShaderDerivatives: true}
}

// ViewTransform returns the current geometry transform.
func (t *Target) ViewTransform() convexaa.Matrix {
	return t.view
}

// SetViewTransform replaces the geometry transform.
func (t *Target) SetViewTransform(m convexaa.Matrix) {
	t.view = m
}

// ConcatTextureTransform folds m into the texture coordinate transform.
func (t *Target) ConcatTextureTransform(m convexaa.Matrix) {
	t.tex = t.tex.Multiply(m)
}

// TextureTransform returns the accumulated texture coordinate transform.
func (t *Target) TextureTransform() convexaa.Matrix {
	return t.tex
}

// ReserveVertices returns a writable slice of n vertices appended to
// the batch, or false if the batch would exceed the configured limit.
func (t *Target) ReserveVertices(n int) ([]convexaa.Vertex, bool) {
	if n <= 0 || len(t.verts)+n > t.cfg.MaxVertices {
		return nil, false
	}
	t.verts = append(t.verts, make([]convexaa.Vertex, n)...)
	t.lastReserve = n
	return t.verts[len(t.verts)-n:], true
}

// ReserveIndices returns a writable slice of n indices appended to the
// batch, or false if n is not positive.
func (t *Target) ReserveIndices(n int) ([]uint16, bool) {
	if n <= 0 {
		return nil, false
	}
	t.idxs = append(t.idxs, make([]uint16, n)...)
	return t.idxs[len(t.idxs)-n:], true
}

// ReleaseVertices returns the most recent vertex reservation unused.
func (t *Target) ReleaseVertices() {
	t.verts = t.verts[:len(t.verts)-t.lastReserve]
	t.lastReserve = 0
}

// DrawIndexed records a draw covering the most recent reservations.
func (t *Target) DrawIndexed(vertexCount, indexCount int) {
	t.draws = append(t.draws, drawCall{
		firstIndex: uint32(len(t.idxs) - indexCount), //nolint:gosec // batch sizes are bounded by MaxVertices
		indexCount: uint32(indexCount),               //nolint:gosec // batch sizes are bounded by MaxVertices
		baseVertex: int32(len(t.verts) - vertexCount), //nolint:gosec // batch sizes are bounded by MaxVertices
	})
	t.lastReserve = 0
}

// HasPendingDraws reports whether the batch holds recorded draws.
func (t *Target) HasPendingDraws() bool {
	return len(t.draws) > 0
}

// Flush uploads the batched geometry and records all pending draws into
// rp. The render pass must match the target's configured format and
// sample count. Resources from the previous flush are released.
//
// After Flush the batch is empty and ready for the next frame.
func (t *Target) Flush(rp hal.RenderPassEncoder, width, height uint32) error {
	if len(t.draws) == 0 {
		t.resetBatch()
		return nil
	}

	if err := t.pipe.ensure(t.cfg); err != nil {
		return err
	}

	if t.frame != nil {
		t.frame.destroy(t.device)
		t.frame = nil
	}

	vertBuf, err := t.createAndUploadBuffer("convexaa_verts", vertexData(t.verts),
		gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
	if err != nil {
		return err
	}

	idxBuf, err := t.createAndUploadBuffer("convexaa_indices", indexData(t.idxs),
		gputypes.BufferUsageIndex|gputypes.BufferUsageCopyDst)
	if err != nil {
		t.device.DestroyBuffer(vertBuf)
		return err
	}

	uniformBuf, err := t.createAndUploadBuffer("convexaa_uniform",
		uniformData(width, height, t.color),
		gputypes.BufferUsageUniform|gputypes.BufferUsageCopyDst)
	if err != nil {
		t.device.DestroyBuffer(idxBuf)
		t.device.DestroyBuffer(vertBuf)
		return err
	}

	bindGroup, err := t.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "convexaa_bind",
		Layout: t.pipe.uniformLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: uniformBuf.NativeHandle(), Offset: 0, Size: uniformSize,
			}},
		},
	})
	if err != nil {
		t.device.DestroyBuffer(uniformBuf)
		t.device.DestroyBuffer(idxBuf)
		t.device.DestroyBuffer(vertBuf)
		return fmt.Errorf("convexaa: create bind group: %w", err)
	}

	t.frame = &frameResources{
		vertBuf:    vertBuf,
		idxBuf:     idxBuf,
		uniformBuf: uniformBuf,
		bindGroup:  bindGroup,
	}

	rp.SetPipeline(t.pipe.pipeline)
	rp.SetBindGroup(0, bindGroup, nil)
	rp.SetVertexBuffer(0, vertBuf, 0)
	rp.SetIndexBuffer(idxBuf, gputypes.IndexFormatUint16, 0)
	for _, d := range t.draws {
		rp.DrawIndexed(d.indexCount, 1, d.firstIndex, d.baseVertex, 0)
	}

	t.resetBatch()
	return nil
}

func (t *Target) resetBatch() {
	t.verts = t.verts[:0]
	t.idxs = t.idxs[:0]
	t.draws = t.draws[:0]
	t.lastReserve = 0
}

func (t *Target) createAndUploadBuffer(label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	buf, err := t.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("convexaa: create %s: %w", label, err)
	}
	t.queue.WriteBuffer(buf, 0, data)
	return buf, nil
}

// vertexData serializes vertices into little-endian bytes matching the
// pipeline's vertex layout.
func vertexData(verts []convexaa.Vertex) []byte {
	data := make([]byte, len(verts)*convexaa.VertexStride)
	off := 0
	for i := range verts {
		vt := &verts[i]
		binary.LittleEndian.PutUint32(data[off:], math.Float32bits(vt.X))
		binary.LittleEndian.PutUint32(data[off+4:], math.Float32bits(vt.Y))
		binary.LittleEndian.PutUint32(data[off+8:], math.Float32bits(vt.U))
		binary.LittleEndian.PutUint32(data[off+12:], math.Float32bits(vt.V))
		binary.LittleEndian.PutUint32(data[off+16:], math.Float32bits(vt.D0))
		binary.LittleEndian.PutUint32(data[off+20:], math.Float32bits(vt.D1))
		off += convexaa.VertexStride
	}
	return data
}

// indexData serializes indices into little-endian bytes.
func indexData(idxs []uint16) []byte {
	data := make([]byte, len(idxs)*2)
	for i, idx := range idxs {
		binary.LittleEndian.PutUint16(data[i*2:], idx)
	}
	return data
}

// uniformData builds the 32-byte uniform buffer: viewport extent and
// premultiplied fill color.
func uniformData(width, height uint32, color [4]float32) []byte {
	buf := make([]byte, uniformSize)
	binary.LittleEndian.PutUint32(buf[0:], math.Float32bits(float32(width)))
	binary.LittleEndian.PutUint32(buf[4:], math.Float32bits(float32(height)))
	for i, c := range color {
		binary.LittleEndian.PutUint32(buf[16+i*4:], math.Float32bits(c))
	}
	return buf
}
