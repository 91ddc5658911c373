package demo2d

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/bocanonline/demo2d/render"
	"github.com/bocanonline/demo2d/scene"
	"github.com/bocanonline/demo2d/shaders"
	"github.com/cogentcore/webgpu/wgpu"
)

// FrameRenderer is the drawing surface the scene systems talk to.
type FrameRenderer interface {
	scene.Uploader
	scene.Submitter
	BeginFrame()
	// EndFrame draws and presents everything submitted since BeginFrame.
	EndFrame() error
	// Discard drops the submitted calls without presenting.
	Discard()
	Resize(width, height int)
	Size() (width, height int)
}

// ClientModule renders line lists to the shared window through wgpu.
type ClientModule struct{}

func (mod ClientModule) Install(app *App, cmd *Commands) error {
	ensureSingleRenderer(app, RendererWGPU)

	ws, ok := Resource[WindowState](app)
	if !ok {
		return errors.New("wgpu renderer needs a window")
	}

	gpuState, err := createGpuState(ws)
	if err != nil {
		return err
	}
	renderer, err := newLineRenderer(gpuState)
	if err != nil {
		gpuState.release()
		return err
	}
	app.OnClose(renderer.release)

	cmd.AddResources(gpuState, renderer)
	app.Logger().Infof("wgpu surface configured: %dx%d, format %v", ws.Width, ws.Height, gpuState.surfaceConfig.Format)
	return nil
}

type lineDraw struct {
	firstVertex uint32
	vertexCount uint32
}

// LineRenderer draws every submitted call as one instance of a line-list pipeline. All
// uploaded shapes share a single vertex buffer addressed by first vertex and count.
type LineRenderer struct {
	gpu      *GpuState
	pipeline *wgpu.RenderPipeline
	meshes   *render.MeshServer

	vertexBuffer   *wgpu.Buffer
	vertexVersion  uint
	instanceBuffer *wgpu.Buffer

	calls     []scene.DrawCall
	instances []LineInstance
	draws     []lineDraw
}

func newLineRenderer(gpuState *GpuState) (*LineRenderer, error) {
	pipeline, err := createLinePipeline("LinePipeline", shaders.LinesWGSL, gpuState)
	if err != nil {
		return nil, err
	}
	return &LineRenderer{
		gpu:      gpuState,
		pipeline: pipeline,
		meshes:   render.NewMeshServer(),
	}, nil
}

func (r *LineRenderer) UploadVertexBuffer(points []float32) (scene.BufferHandle, error) {
	return r.meshes.Load(points)
}

func (r *LineRenderer) Submit(call scene.DrawCall) {
	r.calls = append(r.calls, call)
}

func (r *LineRenderer) BeginFrame() {
	r.calls = r.calls[:0]
}

func (r *LineRenderer) Discard() {
	r.calls = r.calls[:0]
}

func (r *LineRenderer) Resize(width, height int) {
	r.gpu.configure(width, height)
}

func (r *LineRenderer) Size() (int, int) {
	return int(r.gpu.surfaceConfig.Width), int(r.gpu.surfaceConfig.Height)
}

func (r *LineRenderer) EndFrame() error {
	defer func() { r.calls = r.calls[:0] }()

	if err := r.syncVertices(); err != nil {
		return err
	}
	if err := r.syncInstances(); err != nil {
		return err
	}

	nextTexture, err := r.gpu.surface.GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("acquire surface texture: %w", err)
	}
	defer nextTexture.Release()

	view, err := nextTexture.CreateView(nil)
	if err != nil {
		return fmt.Errorf("create view: %w", err)
	}
	defer view.Release()

	encoder, err := r.gpu.device.CreateCommandEncoder(nil)
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: wgpu.Color{R: 0, G: 0, B: 0, A: 1},
		}},
	})
	if len(r.draws) > 0 {
		pass.SetPipeline(r.pipeline)
		pass.SetVertexBuffer(0, r.vertexBuffer, 0, r.vertexBuffer.GetSize())
		pass.SetVertexBuffer(1, r.instanceBuffer, 0, r.instanceBuffer.GetSize())
		for i, d := range r.draws {
			pass.Draw(d.vertexCount, 1, d.firstVertex, uint32(i))
		}
	}
	if err := pass.End(); err != nil {
		return fmt.Errorf("line pass: %w", err)
	}

	cmdBuf, err := encoder.Finish(nil)
	if err != nil {
		return fmt.Errorf("finish encoder: %w", err)
	}
	defer cmdBuf.Release()

	r.gpu.queue.Submit(cmdBuf)
	r.gpu.surface.Present()
	return nil
}

// syncVertices re-uploads the packed vertex array after new shapes were loaded.
func (r *LineRenderer) syncVertices() error {
	if r.vertexBuffer != nil && r.vertexVersion == r.meshes.Version() {
		return nil
	}
	vertices := packVertices(r.meshes.Packed())
	if len(vertices) == 0 {
		return nil
	}
	size := uint64(len(vertices)) * uint64(unsafe.Sizeof(LineVertex{}))

	buf, err := ensureBuffer("LineVertexBuffer", r.vertexBuffer, size, r.gpu)
	if err != nil {
		return fmt.Errorf("vertex buffer: %w", err)
	}
	r.vertexBuffer = buf
	if err := r.gpu.queue.WriteBuffer(r.vertexBuffer, 0, sliceBytes(vertices)); err != nil {
		return fmt.Errorf("write vertices: %w", err)
	}
	r.vertexVersion = r.meshes.Version()
	return nil
}

func (r *LineRenderer) syncInstances() error {
	r.instances = r.instances[:0]
	r.draws = r.draws[:0]

	for _, call := range r.calls {
		mesh, ok := r.meshes.Mesh(call.Buffer)
		if !ok {
			return fmt.Errorf("draw %s: unknown buffer %q", call.Entity, call.Buffer)
		}
		count := min(uint32(max(call.VertexCount, 0)), mesh.VertexCount)
		r.instances = append(r.instances, LineInstance{MVP: call.MVP, Color: [4]float32(call.Color)})
		r.draws = append(r.draws, lineDraw{firstVertex: mesh.FirstVertex, vertexCount: count})
	}
	if len(r.instances) == 0 {
		return nil
	}

	size := uint64(len(r.instances)) * uint64(unsafe.Sizeof(LineInstance{}))
	buf, err := ensureBuffer("LineInstanceBuffer", r.instanceBuffer, size, r.gpu)
	if err != nil {
		return fmt.Errorf("instance buffer: %w", err)
	}
	r.instanceBuffer = buf
	if err := r.gpu.queue.WriteBuffer(r.instanceBuffer, 0, sliceBytes(r.instances)); err != nil {
		return fmt.Errorf("write instances: %w", err)
	}
	return nil
}

func (r *LineRenderer) release() {
	if r.instanceBuffer != nil {
		r.instanceBuffer.Release()
	}
	if r.vertexBuffer != nil {
		r.vertexBuffer.Release()
	}
	r.pipeline.Release()
	r.gpu.release()
}
