package vulkantest

import (
	vk "github.com/vulkan-go/vulkan"
)

// selectAdapter picks the first enumerated physical device. No scoring
// heuristic: multi-adapter selection is out of scope.
func (c *Core) selectAdapter() error {
	gpus, err := physicalDevices(c.instance)
	if err != nil {
		return err
	}
	if len(gpus) == 0 {
		return newError(KindCapabilityMissing, "vkEnumeratePhysicalDevices",
			"no graphics adapters present")
	}
	c.gpu = gpus[0]
	return nil
}

// resolveQueueFamilies scans the adapter's queue families in enumeration
// order, taking the first family that advertises draw capability and,
// independently, the first family that can present to the surface. The two
// scans are separate, so the indices may differ.
func (c *Core) resolveQueueFamilies() error {
	const op = "vkGetPhysicalDeviceQueueFamilyProperties"

	families, err := queueFamilyProperties(c.gpu)
	if err != nil {
		return err
	}

	graphicsFound := false
	for i := range families {
		families[i].Deref()
		if families[i].QueueFlags&vk.QueueFlags(vk.QueueGraphicsBit) != 0 {
			c.graphicsFamily = uint32(i)
			graphicsFound = true
			break
		}
	}

	presentFound := false
	for i := range families {
		var supported vk.Bool32
		vk.GetPhysicalDeviceSurfaceSupport(c.gpu, uint32(i), c.surface, &supported)
		if supported.B() {
			c.presentFamily = uint32(i)
			presentFound = true
			break
		}
	}

	if !graphicsFound {
		return newError(KindCapabilityMissing, op, "no queue family advertises graphics")
	}
	if !presentFound {
		return newError(KindCapabilityMissing, op, "no queue family can present to the surface")
	}
	return nil
}

// queueCreateInfos builds the queue-creation descriptors for the device.
// When both roles live in one family the list collapses to a single entry;
// duplicate family indices in one device creation are invalid.
func queueCreateInfos(graphicsFamily, presentFamily uint32) []vk.DeviceQueueCreateInfo {
	priority := []float32{1.0}
	infos := []vk.DeviceQueueCreateInfo{{
		SType:            vk.StructureTypeDeviceQueueCreateInfo,
		QueueFamilyIndex: graphicsFamily,
		QueueCount:       1,
		PQueuePriorities: priority,
	}}
	if presentFamily != graphicsFamily {
		infos = append(infos, vk.DeviceQueueCreateInfo{
			SType:            vk.StructureTypeDeviceQueueCreateInfo,
			QueueFamilyIndex: presentFamily,
			QueueCount:       1,
			PQueuePriorities: priority,
		})
	}
	return infos
}

// openDevice creates the logical device with the swapchain extension and
// retrieves one queue per resolved family.
func (c *Core) openDevice() error {
	const op = "vkCreateDevice"

	extensions, err := deviceExtensionNames(c.gpu)
	if err != nil {
		return err
	}
	if !containsName(extensions, vk.KhrSwapchainExtensionName) {
		return newError(KindCapabilityMissing, op,
			"adapter does not support %s", vk.KhrSwapchainExtensionName)
	}

	queueInfos := queueCreateInfos(c.graphicsFamily, c.presentFamily)
	deviceExtensions := safeStrings([]string{vk.KhrSwapchainExtensionName})

	var device vk.Device
	ret := vk.CreateDevice(c.gpu, &vk.DeviceCreateInfo{
		SType:                   vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount:    uint32(len(queueInfos)),
		PQueueCreateInfos:       queueInfos,
		EnabledExtensionCount:   uint32(len(deviceExtensions)),
		PpEnabledExtensionNames: deviceExtensions,
	}, nil, &device)
	if ret != vk.Success {
		return newResultError(KindCreationFailed, op, ret)
	}
	c.device = device

	c.cleanup.push(func() {
		vk.DestroyDevice(c.device, nil)
	})

	vk.GetDeviceQueue(c.device, c.graphicsFamily, 0, &c.graphicsQueue)
	vk.GetDeviceQueue(c.device, c.presentFamily, 0, &c.presentQueue)
	return nil
}
