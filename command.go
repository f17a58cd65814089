package vulkantest

import (
	vk "github.com/vulkan-go/vulkan"
)

// createCommandPool creates the pool on the graphics family with individual
// buffer reset enabled, so the single buffer can be re-recorded every frame
// without reallocating.
func (c *Core) createCommandPool() error {
	var pool vk.CommandPool
	ret := vk.CreateCommandPool(c.device, &vk.CommandPoolCreateInfo{
		SType:            vk.StructureTypeCommandPoolCreateInfo,
		Flags:            vk.CommandPoolCreateFlags(vk.CommandPoolCreateResetCommandBufferBit),
		QueueFamilyIndex: c.graphicsFamily,
	}, nil, &pool)
	if ret != vk.Success {
		return newResultError(KindCreationFailed, "vkCreateCommandPool", ret)
	}
	c.commandPool = pool

	// The buffer allocated from this pool is freed with it.
	c.cleanup.push(func() {
		vk.DestroyCommandPool(c.device, c.commandPool, nil)
	})
	return nil
}

func (c *Core) allocateCommandBuffer() error {
	buffers := make([]vk.CommandBuffer, 1)
	ret := vk.AllocateCommandBuffers(c.device, &vk.CommandBufferAllocateInfo{
		SType:              vk.StructureTypeCommandBufferAllocateInfo,
		CommandPool:        c.commandPool,
		Level:              vk.CommandBufferLevelPrimary,
		CommandBufferCount: 1,
	}, buffers)
	if ret != vk.Success {
		return newResultError(KindCreationFailed, "vkAllocateCommandBuffers", ret)
	}
	c.commandBuffer = buffers[0]
	return nil
}

// recordCommands resets and re-records the command buffer for the given
// framebuffer: one render pass cleared to opaque black, dynamic viewport and
// scissor covering the full swap extent, and a single 3-vertex draw.
func (c *Core) recordCommands(imageIndex uint32) error {
	cmd := c.commandBuffer

	if ret := vk.ResetCommandBuffer(cmd, 0); ret != vk.Success {
		return newResultError(KindRecordingFailed, "vkResetCommandBuffer", ret)
	}
	if ret := vk.BeginCommandBuffer(cmd, &vk.CommandBufferBeginInfo{
		SType: vk.StructureTypeCommandBufferBeginInfo,
	}); ret != vk.Success {
		return newResultError(KindRecordingFailed, "vkBeginCommandBuffer", ret)
	}

	clearColor := []vk.ClearValue{
		vk.NewClearValue([]float32{0.0, 0.0, 0.0, 1.0}),
	}
	vk.CmdBeginRenderPass(cmd, &vk.RenderPassBeginInfo{
		SType:       vk.StructureTypeRenderPassBeginInfo,
		RenderPass:  c.renderPass,
		Framebuffer: c.framebuffers[imageIndex],
		RenderArea: vk.Rect2D{
			Offset: vk.Offset2D{},
			Extent: c.swapExtent,
		},
		ClearValueCount: 1,
		PClearValues:    clearColor,
	}, vk.SubpassContentsInline)

	vk.CmdBindPipeline(cmd, vk.PipelineBindPointGraphics, c.pipeline)

	vk.CmdSetViewport(cmd, 0, 1, []vk.Viewport{{
		X:        0.0,
		Y:        0.0,
		Width:    float32(c.swapExtent.Width),
		Height:   float32(c.swapExtent.Height),
		MinDepth: 0.0,
		MaxDepth: 1.0,
	}})
	vk.CmdSetScissor(cmd, 0, 1, []vk.Rect2D{{
		Offset: vk.Offset2D{},
		Extent: c.swapExtent,
	}})

	vk.CmdDraw(cmd, 3, 1, 0, 0)
	vk.CmdEndRenderPass(cmd)

	if ret := vk.EndCommandBuffer(cmd); ret != vk.Success {
		return newResultError(KindRecordingFailed, "vkEndCommandBuffer", ret)
	}
	return nil
}
