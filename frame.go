package vulkantest

import (
	vk "github.com/vulkan-go/vulkan"
)

// frameBackend is one frame's worth of driver interaction. The loop logic is
// separated from the Vulkan calls so submission ordering is testable.
type frameBackend interface {
	waitForFence() error
	resetFence() error
	acquireImage() (uint32, error)
	recordCommands(imageIndex uint32) error
	submit() error
	present(imageIndex uint32) error
}

var _ frameBackend = (*Core)(nil)

// drawFrame runs one iteration of the acquire/record/submit/present cycle.
// The fence wait is the sole pacing mechanism: the command buffer and
// semaphores are never reused while the previous frame's GPU work may still
// be executing. A failed step abandons the frame; the next iteration's fence
// wait and acquire resynchronize.
func drawFrame(b frameBackend) error {
	if err := b.waitForFence(); err != nil {
		return err
	}
	if err := b.resetFence(); err != nil {
		return err
	}
	imageIndex, err := b.acquireImage()
	if err != nil {
		return err
	}
	if err := b.recordCommands(imageIndex); err != nil {
		return err
	}
	if err := b.submit(); err != nil {
		return err
	}
	return b.present(imageIndex)
}

// createSyncObjects builds the single in-flight frame's synchronization set.
// The fence starts signaled so the first frame's wait returns immediately.
func (c *Core) createSyncObjects() error {
	semaphoreInfo := vk.SemaphoreCreateInfo{
		SType: vk.StructureTypeSemaphoreCreateInfo,
	}

	if ret := vk.CreateSemaphore(c.device, &semaphoreInfo, nil, &c.imageAvailable); ret != vk.Success {
		return newResultError(KindCreationFailed, "vkCreateSemaphore", ret)
	}
	c.cleanup.push(func() {
		vk.DestroySemaphore(c.device, c.imageAvailable, nil)
	})

	if ret := vk.CreateSemaphore(c.device, &semaphoreInfo, nil, &c.renderFinished); ret != vk.Success {
		return newResultError(KindCreationFailed, "vkCreateSemaphore", ret)
	}
	c.cleanup.push(func() {
		vk.DestroySemaphore(c.device, c.renderFinished, nil)
	})

	ret := vk.CreateFence(c.device, &vk.FenceCreateInfo{
		SType: vk.StructureTypeFenceCreateInfo,
		Flags: vk.FenceCreateFlags(vk.FenceCreateSignaledBit),
	}, nil, &c.inFlightFence)
	if ret != vk.Success {
		return newResultError(KindCreationFailed, "vkCreateFence", ret)
	}
	c.cleanup.push(func() {
		vk.DestroyFence(c.device, c.inFlightFence, nil)
	})
	return nil
}

// waitForFence blocks until the previous submission retired.
func (c *Core) waitForFence() error {
	fences := []vk.Fence{c.inFlightFence}
	if ret := vk.WaitForFences(c.device, 1, fences, vk.True, vk.MaxUint64); ret != vk.Success {
		return newResultError(KindSubmitFailed, "vkWaitForFences", ret)
	}
	return nil
}

func (c *Core) resetFence() error {
	fences := []vk.Fence{c.inFlightFence}
	if ret := vk.ResetFences(c.device, 1, fences); ret != vk.Success {
		return newResultError(KindSubmitFailed, "vkResetFences", ret)
	}
	return nil
}

// acquireImage requests the next presentable image slot; the image-available
// semaphore is signaled once the driver hands the image over.
func (c *Core) acquireImage() (uint32, error) {
	var imageIndex uint32
	ret := vk.AcquireNextImage(c.device, c.swapchain, vk.MaxUint64,
		c.imageAvailable, vk.NullFence, &imageIndex)
	if ret != vk.Success {
		return 0, newResultError(KindAcquireFailed, "vkAcquireNextImageKHR", ret)
	}
	return imageIndex, nil
}

// submit hands the recorded buffer to the graphics queue: color-attachment
// output waits on image-available, render-finished signals completion, and
// the in-flight fence is armed to signal when this submission retires.
func (c *Core) submit() error {
	submitInfo := vk.SubmitInfo{
		SType:              vk.StructureTypeSubmitInfo,
		WaitSemaphoreCount: 1,
		PWaitSemaphores:    []vk.Semaphore{c.imageAvailable},
		PWaitDstStageMask: []vk.PipelineStageFlags{
			vk.PipelineStageFlags(vk.PipelineStageColorAttachmentOutputBit),
		},
		CommandBufferCount:   1,
		PCommandBuffers:      []vk.CommandBuffer{c.commandBuffer},
		SignalSemaphoreCount: 1,
		PSignalSemaphores:    []vk.Semaphore{c.renderFinished},
	}
	ret := vk.QueueSubmit(c.graphicsQueue, 1, []vk.SubmitInfo{submitInfo}, c.inFlightFence)
	if ret != vk.Success {
		return newResultError(KindSubmitFailed, "vkQueueSubmit", ret)
	}
	return nil
}

func (c *Core) present(imageIndex uint32) error {
	ret := vk.QueuePresent(c.presentQueue, &vk.PresentInfo{
		SType:              vk.StructureTypePresentInfo,
		WaitSemaphoreCount: 1,
		PWaitSemaphores:    []vk.Semaphore{c.renderFinished},
		SwapchainCount:     1,
		PSwapchains:        []vk.Swapchain{c.swapchain},
		PImageIndices:      []uint32{imageIndex},
	})
	if ret != vk.Success {
		return newResultError(KindPresentFailed, "vkQueuePresentKHR", ret)
	}
	return nil
}
