package vulkantest

import (
	vk "github.com/vulkan-go/vulkan"
)

// maxSwapImages is the fixed number of image slots the core carries.
// Surfaces whose minimum image count exceeds it are rejected.
const maxSwapImages = 10

// chooseSurfaceFormat requires an exact match on 8-bit-per-channel sRGB with
// the sRGB nonlinear color space. There is no fallback tier.
func chooseSurfaceFormat(formats []vk.SurfaceFormat) (vk.SurfaceFormat, error) {
	for _, format := range formats {
		if format.Format == vk.FormatB8g8r8a8Srgb && format.ColorSpace == vk.ColorSpaceSrgbNonlinear {
			return format, nil
		}
	}
	return vk.SurfaceFormat{}, newError(KindCapabilityMissing, "vkGetPhysicalDeviceSurfaceFormatsKHR",
		"surface offers no B8G8R8A8_SRGB format with sRGB nonlinear color space")
}

func clampExtent(value int, min, max uint32) uint32 {
	v := uint32(value)
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// chooseExtent uses the driver-reported extent verbatim unless the driver
// leaves it undefined (the MaxUint32 sentinel), in which case the window's
// framebuffer pixel size is clamped per axis into the reported range.
func chooseExtent(caps vk.SurfaceCapabilities, fbWidth, fbHeight int) vk.Extent2D {
	if caps.CurrentExtent.Width != vk.MaxUint32 {
		return caps.CurrentExtent
	}
	return vk.Extent2D{
		Width:  clampExtent(fbWidth, caps.MinImageExtent.Width, caps.MaxImageExtent.Width),
		Height: clampExtent(fbHeight, caps.MinImageExtent.Height, caps.MaxImageExtent.Height),
	}
}

// chooseImageCount asks for one image above the surface minimum, bounded by
// a nonzero surface maximum and by the core's fixed slot capacity.
func chooseImageCount(caps vk.SurfaceCapabilities) (uint32, error) {
	if caps.MinImageCount > maxSwapImages {
		return 0, newError(KindCapacityExceeded, "vkCreateSwapchainKHR",
			"surface minimum image count %d exceeds the %d-slot capacity",
			caps.MinImageCount, maxSwapImages)
	}
	count := caps.MinImageCount + 1
	if caps.MaxImageCount > 0 && count > caps.MaxImageCount {
		count = caps.MaxImageCount
	}
	if count > maxSwapImages {
		count = maxSwapImages
	}
	return count, nil
}

// imageSharing collapses to exclusive sharing with no index list when one
// queue family serves both roles; otherwise the images are shared
// concurrently between the two families.
func imageSharing(graphicsFamily, presentFamily uint32) (vk.SharingMode, []uint32) {
	if graphicsFamily == presentFamily {
		return vk.SharingModeExclusive, nil
	}
	return vk.SharingModeConcurrent, []uint32{graphicsFamily, presentFamily}
}

// createSwapchain negotiates format, extent and image count against the
// surface capabilities and creates the presentable image ring. The actual
// image count is re-read from the driver, which may hand back more images
// than requested.
func (c *Core) createSwapchain() error {
	const op = "vkCreateSwapchainKHR"

	formats, err := surfaceFormats(c.gpu, c.surface)
	if err != nil {
		return err
	}
	if len(formats) == 0 {
		return newError(KindCapabilityMissing, op, "surface reports no pixel formats")
	}

	// FIFO is the one mode the driver must support; the list is probed only
	// to reject surfaces that report none at all.
	presentModes, err := surfacePresentModes(c.gpu, c.surface)
	if err != nil {
		return err
	}
	if len(presentModes) == 0 {
		return newError(KindCapabilityMissing, op, "surface reports no present modes")
	}

	var caps vk.SurfaceCapabilities
	if ret := vk.GetPhysicalDeviceSurfaceCapabilities(c.gpu, c.surface, &caps); ret != vk.Success {
		return newResultError(KindCapabilityMissing, "vkGetPhysicalDeviceSurfaceCapabilitiesKHR", ret)
	}
	caps.Deref()
	caps.CurrentExtent.Deref()
	caps.MinImageExtent.Deref()
	caps.MaxImageExtent.Deref()

	format, err := chooseSurfaceFormat(formats)
	if err != nil {
		return err
	}
	fbWidth, fbHeight := c.window.GetFramebufferSize()
	extent := chooseExtent(caps, fbWidth, fbHeight)
	imageCount, err := chooseImageCount(caps)
	if err != nil {
		return err
	}
	sharingMode, familyIndices := imageSharing(c.graphicsFamily, c.presentFamily)

	createInfo := vk.SwapchainCreateInfo{
		SType:            vk.StructureTypeSwapchainCreateInfo,
		Surface:          c.surface,
		MinImageCount:    imageCount,
		ImageFormat:      format.Format,
		ImageColorSpace:  format.ColorSpace,
		ImageExtent:      extent,
		ImageArrayLayers: 1,
		ImageUsage:       vk.ImageUsageFlags(vk.ImageUsageColorAttachmentBit),
		ImageSharingMode: sharingMode,
		PreTransform:     caps.CurrentTransform,
		CompositeAlpha:   vk.CompositeAlphaOpaqueBit,
		PresentMode:      vk.PresentModeFifo,
		Clipped:          vk.True,
	}
	if len(familyIndices) > 0 {
		createInfo.QueueFamilyIndexCount = uint32(len(familyIndices))
		createInfo.PQueueFamilyIndices = familyIndices
	}

	var swapchain vk.Swapchain
	if ret := vk.CreateSwapchain(c.device, &createInfo, nil, &swapchain); ret != vk.Success {
		return newResultError(KindCreationFailed, op, ret)
	}
	c.swapchain = swapchain

	c.cleanup.push(func() {
		vk.DestroySwapchain(c.device, c.swapchain, nil)
	})

	var actual uint32
	if ret := vk.GetSwapchainImages(c.device, c.swapchain, &actual, nil); ret != vk.Success {
		return newResultError(KindCreationFailed, "vkGetSwapchainImagesKHR", ret)
	}
	images, err := boundedPrefix("vkGetSwapchainImagesKHR", c.swapImages[:], actual)
	if err != nil {
		return err
	}
	if ret := vk.GetSwapchainImages(c.device, c.swapchain, &actual, images); ret != vk.Success {
		return newResultError(KindCreationFailed, "vkGetSwapchainImagesKHR", ret)
	}
	c.swapImageCount = actual
	c.swapFormat = format.Format
	c.swapExtent = extent

	infoLog.Printf("swapchain: %d images, %dx%d", c.swapImageCount, extent.Width, extent.Height)
	return nil
}
