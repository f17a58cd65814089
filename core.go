// Package vulkantest drives a minimal Vulkan renderer: one window, one
// device, one graphics pipeline drawing a single triangle, with one frame in
// flight. Initialization is a fixed sequence of stages that each record their
// own teardown, so a failure anywhere releases exactly what was created, in
// reverse order.
package vulkantest

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	vk "github.com/vulkan-go/vulkan"
)

// Core owns every driver object from the instance down to the per-frame
// synchronization set. Per-image state lives in fixed arrays of maxSwapImages
// slots; swapImageCount records how many are in use.
type Core struct {
	window           *glfw.Window
	appName          string
	enableValidation bool

	instance vk.Instance
	surface  vk.Surface
	gpu      vk.PhysicalDevice
	device   vk.Device

	graphicsFamily uint32
	presentFamily  uint32
	graphicsQueue  vk.Queue
	presentQueue   vk.Queue

	swapchain      vk.Swapchain
	swapFormat     vk.Format
	swapExtent     vk.Extent2D
	swapImages     [maxSwapImages]vk.Image
	swapImageViews [maxSwapImages]vk.ImageView
	framebuffers   [maxSwapImages]vk.Framebuffer
	swapImageCount uint32

	renderPass     vk.RenderPass
	pipelineLayout vk.PipelineLayout
	pipeline       vk.Pipeline

	commandPool   vk.CommandPool
	commandBuffer vk.CommandBuffer

	imageAvailable vk.Semaphore
	renderFinished vk.Semaphore
	inFlightFence  vk.Fence

	cleanup teardown
}

func NewCore(window *glfw.Window, appName string, enableValidation bool) *Core {
	return &Core{
		window:           window,
		appName:          appName,
		enableValidation: enableValidation,
	}
}

// Init runs the full bring-up sequence. On the first failing stage the
// already-created objects are released and the error is returned; a partially
// initialized Core is never handed back.
func (c *Core) Init() error {
	stages := []func() error{
		c.createInstance,
		c.createSurface,
		c.selectAdapter,
		c.resolveQueueFamilies,
		c.openDevice,
		c.createSwapchain,
		c.createImageViews,
		c.createRenderPass,
		c.createPipeline,
		c.createFramebuffers,
		c.createCommandPool,
		c.allocateCommandBuffer,
		c.createSyncObjects,
	}
	for _, stage := range stages {
		if err := stage(); err != nil {
			c.cleanup.unwind()
			return err
		}
	}
	return nil
}

// Destroy drains the device and releases everything Init created. Safe to
// call after a failed Init or more than once.
func (c *Core) Destroy() {
	if c.device != nil {
		vk.DeviceWaitIdle(c.device)
	}
	c.cleanup.unwind()
}
