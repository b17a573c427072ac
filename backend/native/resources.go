package native

import (
	"fmt"

	"github.com/gogpu/rawshade"
	"github.com/gogpu/rawshade/gpucore"
)

// dispatchResources holds every GPU resource one Dispatch call creates:
// textures for the input image, blur buffers, mask-influence maps, and
// the output, plus the uniform/storage buffers carrying the adjustment
// parameters. All of it is torn down at the end of the dispatch;
// raw_pipeline.wgsl's kernel is cheap enough per tile that there is no
// cross-dispatch resource cache (unlike the compiled pipeline itself,
// which lives for the accelerator's whole lifetime).
type dispatchResources struct {
	input  gpucore.TextureID
	output gpucore.TextureID

	blurSharpness gpucore.TextureID
	blurClarity   gpucore.TextureID
	blurStructure gpucore.TextureID
	blurTonal     gpucore.TextureID

	maskTextures [gpucore.MaxMasks]gpucore.TextureID

	cfgBuf      gpucore.BufferID
	globalBuf   gpucore.BufferID
	lumaBuf     gpucore.BufferID
	agxBuf      gpucore.BufferID
	agxInvBuf   gpucore.BufferID
	maskParamsBuf gpucore.BufferID
}

func (n *NativeAccelerator) uploadResources(tile *rawshade.TileInputs, width, height uint32) (*dispatchResources, error) {
	a := n.adapter
	r := &dispatchResources{}

	var err error
	if r.input, err = a.CreateTexture(width, height, gpucore.TextureFormatRGBA32Float, gpucore.TextureUsageTextureBinding|gpucore.TextureUsageCopyDst); err != nil {
		return nil, fmt.Errorf("native: create input texture: %w", err)
	}
	if err := a.WriteTexture(r.input, colorTextureBytes(tile.Input), width*16); err != nil {
		n.releaseResources(r)
		return nil, fmt.Errorf("native: write input texture: %w", err)
	}

	if r.output, err = a.CreateTexture(width, height, gpucore.TextureFormatRGBA8Unorm, gpucore.TextureUsageStorageBinding|gpucore.TextureUsageCopySrc); err != nil {
		n.releaseResources(r)
		return nil, fmt.Errorf("native: create output texture: %w", err)
	}

	blurs := []struct {
		dst *gpucore.TextureID
		src *rawshade.ColorTexture
	}{
		{&r.blurSharpness, tile.Blurs.Sharpness},
		{&r.blurClarity, tile.Blurs.Clarity},
		{&r.blurStructure, tile.Blurs.Structure},
		{&r.blurTonal, tile.Blurs.Tonal},
	}
	for _, b := range blurs {
		id, err := a.CreateTexture(width, height, gpucore.TextureFormatRGBA32Float, gpucore.TextureUsageTextureBinding|gpucore.TextureUsageCopyDst)
		if err != nil {
			n.releaseResources(r)
			return nil, fmt.Errorf("native: create blur texture: %w", err)
		}
		*b.dst = id
		if err := a.WriteTexture(id, colorTextureBytes(b.src), width*16); err != nil {
			n.releaseResources(r)
			return nil, fmt.Errorf("native: write blur texture: %w", err)
		}
	}

	for i := 0; i < gpucore.MaxMasks; i++ {
		id, err := a.CreateTexture(width, height, gpucore.TextureFormatR32Float, gpucore.TextureUsageTextureBinding|gpucore.TextureUsageCopyDst)
		if err != nil {
			n.releaseResources(r)
			return nil, fmt.Errorf("native: create mask texture: %w", err)
		}
		r.maskTextures[i] = id
		if i < tile.Uniform.MaskCount && tile.Masks[i] != nil {
			if err := a.WriteTexture(id, scalarTextureBytes(tile.Masks[i]), width*4); err != nil {
				n.releaseResources(r)
				return nil, fmt.Errorf("native: write mask texture: %w", err)
			}
		}
	}

	cfg := gpucore.TileDispatchConfig{
		ViewportWidth:  uint32(tile.ImgWidth),
		ViewportHeight: uint32(tile.ImgHeight),
		TileOffsetX:    uint32(tile.Uniform.TileOffsetX),
		TileOffsetY:    uint32(tile.Uniform.TileOffsetY),
		TileWidth:      width,
		TileHeight:     height,
		MaskCount:      uint32(tile.Uniform.MaskCount),
		AtlasCols:      uint32(tile.Uniform.AtlasCols),
	}
	if r.cfgBuf, err = n.uploadUniform(cfg.Bytes()); err != nil {
		n.releaseResources(r)
		return nil, err
	}

	global := convertGlobalParamsGPU(tile.Uniform.Global)
	if r.globalBuf, err = n.uploadUniform(global.Bytes()); err != nil {
		n.releaseResources(r)
		return nil, err
	}

	luma := convertCurveGPU(tile.Uniform.Global.CurveLuma)
	if r.lumaBuf, err = n.uploadUniform(luma.Bytes()); err != nil {
		n.releaseResources(r)
		return nil, err
	}

	agx := convertMatrix3GPU(tile.Uniform.Global.AgXMatrix)
	if r.agxBuf, err = n.uploadUniform(agx.Bytes()); err != nil {
		n.releaseResources(r)
		return nil, err
	}
	agxInv := convertMatrix3GPU(tile.Uniform.Global.AgXMatrixInverse)
	if r.agxInvBuf, err = n.uploadUniform(agxInv.Bytes()); err != nil {
		n.releaseResources(r)
		return nil, err
	}

	var maskParams [gpucore.MaxMasks]gpucore.MaskParamsGPU
	for i := 0; i < tile.Uniform.MaskCount; i++ {
		maskParams[i] = convertMaskParamsGPU(tile.Uniform.Masks[i])
	}
	maskBytes := gpucore.PackMaskParamsArray(maskParams)
	maskBuf, err := a.CreateBuffer(uint64(len(maskBytes)), gpucore.BufferUsageStorage|gpucore.BufferUsageCopyDst)
	if err != nil {
		n.releaseResources(r)
		return nil, fmt.Errorf("native: create mask params buffer: %w", err)
	}
	if err := a.WriteBuffer(maskBuf, 0, maskBytes); err != nil {
		n.releaseResources(r)
		return nil, fmt.Errorf("native: write mask params buffer: %w", err)
	}
	r.maskParamsBuf = maskBuf

	return r, nil
}

func (n *NativeAccelerator) uploadUniform(data []byte) (gpucore.BufferID, error) {
	buf, err := n.adapter.CreateBuffer(uint64(len(data)), gpucore.BufferUsageUniform|gpucore.BufferUsageCopyDst)
	if err != nil {
		return gpucore.InvalidID, fmt.Errorf("native: create uniform buffer: %w", err)
	}
	if err := n.adapter.WriteBuffer(buf, 0, data); err != nil {
		return gpucore.InvalidID, fmt.Errorf("native: write uniform buffer: %w", err)
	}
	return buf, nil
}

func (n *NativeAccelerator) releaseResources(r *dispatchResources) {
	a := n.adapter
	a.DestroyTexture(r.input)
	a.DestroyTexture(r.output)
	a.DestroyTexture(r.blurSharpness)
	a.DestroyTexture(r.blurClarity)
	a.DestroyTexture(r.blurStructure)
	a.DestroyTexture(r.blurTonal)
	for _, id := range r.maskTextures {
		a.DestroyTexture(id)
	}
	a.DestroyBuffer(r.cfgBuf)
	a.DestroyBuffer(r.globalBuf)
	a.DestroyBuffer(r.lumaBuf)
	a.DestroyBuffer(r.agxBuf)
	a.DestroyBuffer(r.agxInvBuf)
	a.DestroyBuffer(r.maskParamsBuf)
}

func (n *NativeAccelerator) buildBindGroups(r *dispatchResources) (*bindGroupSet, error) {
	a := n.adapter
	var groups bindGroupSet

	image, err := a.CreateBindGroup(n.imageLayout, []gpucore.BindGroupEntry{
		{Binding: 0, Texture: r.input},
		{Binding: 1, Texture: r.output},
		{Binding: 2, Buffer: r.cfgBuf},
		{Binding: 3, Buffer: r.globalBuf},
		{Binding: 4, Buffer: r.lumaBuf},
		{Binding: 5, Buffer: r.agxBuf},
		{Binding: 6, Buffer: r.agxInvBuf},
	})
	if err != nil {
		return nil, fmt.Errorf("native: image bind group: %w", err)
	}
	groups.image = image

	blurs, err := a.CreateBindGroup(n.blursLayout, []gpucore.BindGroupEntry{
		{Binding: 0, Texture: r.blurSharpness},
		{Binding: 1, Texture: r.blurClarity},
		{Binding: 2, Texture: r.blurStructure},
		{Binding: 3, Texture: r.blurTonal},
	})
	if err != nil {
		a.DestroyBindGroup(image)
		return nil, fmt.Errorf("native: blurs bind group: %w", err)
	}
	groups.blurs = blurs

	maskEntries := make([]gpucore.BindGroupEntry, 0, 1+gpucore.MaxMasks)
	maskEntries = append(maskEntries, gpucore.BindGroupEntry{Binding: 0, Buffer: r.maskParamsBuf})
	for i, id := range r.maskTextures {
		maskEntries = append(maskEntries, gpucore.BindGroupEntry{Binding: uint32(1 + i), Texture: id})
	}
	masks, err := a.CreateBindGroup(n.masksLayout, maskEntries)
	if err != nil {
		a.DestroyBindGroup(image)
		a.DestroyBindGroup(blurs)
		return nil, fmt.Errorf("native: masks bind group: %w", err)
	}
	groups.masks = masks

	return &groups, nil
}

func (n *NativeAccelerator) releaseBindGroups(g *bindGroupSet) {
	n.adapter.DestroyBindGroup(g.image)
	n.adapter.DestroyBindGroup(g.blurs)
	n.adapter.DestroyBindGroup(g.masks)
}
