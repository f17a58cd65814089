package vulkantest

import (
	vk "github.com/vulkan-go/vulkan"
)

// createRenderPass describes the single color-attachment pass: cleared on
// load, stored for presentation, with an external dependency that holds
// color-attachment output until the acquired image is ready.
func (c *Core) createRenderPass() error {
	const op = "vkCreateRenderPass"

	colorAttachment := vk.AttachmentDescription{
		Format:         c.swapFormat,
		Samples:        vk.SampleCount1Bit,
		LoadOp:         vk.AttachmentLoadOpClear,
		StoreOp:        vk.AttachmentStoreOpStore,
		StencilLoadOp:  vk.AttachmentLoadOpDontCare,
		StencilStoreOp: vk.AttachmentStoreOpDontCare,
		InitialLayout:  vk.ImageLayoutUndefined,
		FinalLayout:    vk.ImageLayoutPresentSrc,
	}

	subpass := vk.SubpassDescription{
		PipelineBindPoint:    vk.PipelineBindPointGraphics,
		ColorAttachmentCount: 1,
		PColorAttachments: []vk.AttachmentReference{{
			Attachment: 0,
			Layout:     vk.ImageLayoutColorAttachmentOptimal,
		}},
	}

	dependency := vk.SubpassDependency{
		SrcSubpass:    vk.SubpassExternal,
		DstSubpass:    0,
		SrcStageMask:  vk.PipelineStageFlags(vk.PipelineStageColorAttachmentOutputBit),
		SrcAccessMask: 0,
		DstStageMask:  vk.PipelineStageFlags(vk.PipelineStageColorAttachmentOutputBit),
		DstAccessMask: vk.AccessFlags(vk.AccessColorAttachmentWriteBit),
	}

	var renderPass vk.RenderPass
	ret := vk.CreateRenderPass(c.device, &vk.RenderPassCreateInfo{
		SType:           vk.StructureTypeRenderPassCreateInfo,
		AttachmentCount: 1,
		PAttachments:    []vk.AttachmentDescription{colorAttachment},
		SubpassCount:    1,
		PSubpasses:      []vk.SubpassDescription{subpass},
		DependencyCount: 1,
		PDependencies:   []vk.SubpassDependency{dependency},
	}, nil, &renderPass)
	if ret != vk.Success {
		return newResultError(KindCreationFailed, op, ret)
	}
	c.renderPass = renderPass

	c.cleanup.push(func() {
		vk.DestroyRenderPass(c.device, c.renderPass, nil)
	})
	return nil
}

// createImageViews builds one 2D identity-swizzle color view per swap image.
// A failure at any index aborts the whole set; views created before the
// failure are released by the unwind.
func (c *Core) createImageViews() error {
	for i := uint32(0); i < c.swapImageCount; i++ {
		var view vk.ImageView
		ret := vk.CreateImageView(c.device, &vk.ImageViewCreateInfo{
			SType:    vk.StructureTypeImageViewCreateInfo,
			Image:    c.swapImages[i],
			ViewType: vk.ImageViewType2d,
			Format:   c.swapFormat,
			Components: vk.ComponentMapping{
				R: vk.ComponentSwizzleIdentity,
				G: vk.ComponentSwizzleIdentity,
				B: vk.ComponentSwizzleIdentity,
				A: vk.ComponentSwizzleIdentity,
			},
			SubresourceRange: vk.ImageSubresourceRange{
				AspectMask:     vk.ImageAspectFlags(vk.ImageAspectColorBit),
				BaseMipLevel:   0,
				LevelCount:     1,
				BaseArrayLayer: 0,
				LayerCount:     1,
			},
		}, nil, &view)
		if ret != vk.Success {
			return newResultError(KindCreationFailed, "vkCreateImageView", ret).at(i)
		}
		c.swapImageViews[i] = view

		i := i
		c.cleanup.push(func() {
			vk.DestroyImageView(c.device, c.swapImageViews[i], nil)
		})
	}
	return nil
}

// createFramebuffers binds each view to the render pass at the swap extent.
// Per-image arrays always share the length recorded by createSwapchain.
func (c *Core) createFramebuffers() error {
	for i := uint32(0); i < c.swapImageCount; i++ {
		var framebuffer vk.Framebuffer
		ret := vk.CreateFramebuffer(c.device, &vk.FramebufferCreateInfo{
			SType:           vk.StructureTypeFramebufferCreateInfo,
			RenderPass:      c.renderPass,
			AttachmentCount: 1,
			PAttachments:    []vk.ImageView{c.swapImageViews[i]},
			Width:           c.swapExtent.Width,
			Height:          c.swapExtent.Height,
			Layers:          1,
		}, nil, &framebuffer)
		if ret != vk.Success {
			return newResultError(KindCreationFailed, "vkCreateFramebuffer", ret).at(i)
		}
		c.framebuffers[i] = framebuffer

		i := i
		c.cleanup.push(func() {
			vk.DestroyFramebuffer(c.device, c.framebuffers[i], nil)
		})
	}
	return nil
}
