package vulkantest

import (
	vk "github.com/vulkan-go/vulkan"
)

// maxDriverResults is the fixed capacity for every variable-length list the
// driver reports. Adapters with pathological capability counts are rejected
// rather than accommodated; the probe never grows a buffer to fit one.
const maxDriverResults = 256

// boundedPrefix admits a driver-reported count into a fixed capability
// buffer. A count beyond the buffer's capacity fails with
// KindCapacityExceeded and leaves the buffer untouched.
func boundedPrefix[T any](op string, buf []T, count uint32) ([]T, error) {
	if int(count) > len(buf) {
		return nil, newError(KindCapacityExceeded, op,
			"driver reported %d results, capacity is %d", count, len(buf))
	}
	return buf[:count], nil
}

// instanceLayerNames enumerates the layers available on the loader.
func instanceLayerNames() ([]string, error) {
	const op = "vkEnumerateInstanceLayerProperties"

	var count uint32
	if ret := vk.EnumerateInstanceLayerProperties(&count, nil); ret != vk.Success {
		return nil, newResultError(KindCapabilityMissing, op, ret)
	}
	var buf [maxDriverResults]vk.LayerProperties
	list, err := boundedPrefix(op, buf[:], count)
	if err != nil {
		return nil, err
	}
	if ret := vk.EnumerateInstanceLayerProperties(&count, list); ret != vk.Success {
		return nil, newResultError(KindCapabilityMissing, op, ret)
	}

	names := make([]string, 0, len(list))
	for _, layer := range list {
		layer.Deref()
		names = append(names, vk.ToString(layer.LayerName[:]))
	}
	return names, nil
}

func physicalDevices(instance vk.Instance) ([]vk.PhysicalDevice, error) {
	const op = "vkEnumeratePhysicalDevices"

	var count uint32
	if ret := vk.EnumeratePhysicalDevices(instance, &count, nil); ret != vk.Success {
		return nil, newResultError(KindCapabilityMissing, op, ret)
	}
	var buf [maxDriverResults]vk.PhysicalDevice
	list, err := boundedPrefix(op, buf[:], count)
	if err != nil {
		return nil, err
	}
	if ret := vk.EnumeratePhysicalDevices(instance, &count, list); ret != vk.Success {
		return nil, newResultError(KindCapabilityMissing, op, ret)
	}
	return list, nil
}

func queueFamilyProperties(gpu vk.PhysicalDevice) ([]vk.QueueFamilyProperties, error) {
	const op = "vkGetPhysicalDeviceQueueFamilyProperties"

	var count uint32
	vk.GetPhysicalDeviceQueueFamilyProperties(gpu, &count, nil)
	var buf [maxDriverResults]vk.QueueFamilyProperties
	list, err := boundedPrefix(op, buf[:], count)
	if err != nil {
		return nil, err
	}
	vk.GetPhysicalDeviceQueueFamilyProperties(gpu, &count, list)
	return list, nil
}

// deviceExtensionNames enumerates the extensions the adapter supports.
func deviceExtensionNames(gpu vk.PhysicalDevice) ([]string, error) {
	const op = "vkEnumerateDeviceExtensionProperties"

	var count uint32
	if ret := vk.EnumerateDeviceExtensionProperties(gpu, "", &count, nil); ret != vk.Success {
		return nil, newResultError(KindCapabilityMissing, op, ret)
	}
	var buf [maxDriverResults]vk.ExtensionProperties
	list, err := boundedPrefix(op, buf[:], count)
	if err != nil {
		return nil, err
	}
	if ret := vk.EnumerateDeviceExtensionProperties(gpu, "", &count, list); ret != vk.Success {
		return nil, newResultError(KindCapabilityMissing, op, ret)
	}

	names := make([]string, 0, len(list))
	for _, ext := range list {
		ext.Deref()
		names = append(names, vk.ToString(ext.ExtensionName[:]))
	}
	return names, nil
}

func surfaceFormats(gpu vk.PhysicalDevice, surface vk.Surface) ([]vk.SurfaceFormat, error) {
	const op = "vkGetPhysicalDeviceSurfaceFormatsKHR"

	var count uint32
	if ret := vk.GetPhysicalDeviceSurfaceFormats(gpu, surface, &count, nil); ret != vk.Success {
		return nil, newResultError(KindCapabilityMissing, op, ret)
	}
	var buf [maxDriverResults]vk.SurfaceFormat
	list, err := boundedPrefix(op, buf[:], count)
	if err != nil {
		return nil, err
	}
	if ret := vk.GetPhysicalDeviceSurfaceFormats(gpu, surface, &count, list); ret != vk.Success {
		return nil, newResultError(KindCapabilityMissing, op, ret)
	}
	for i := range list {
		list[i].Deref()
	}
	return list, nil
}

func surfacePresentModes(gpu vk.PhysicalDevice, surface vk.Surface) ([]vk.PresentMode, error) {
	const op = "vkGetPhysicalDeviceSurfacePresentModesKHR"

	var count uint32
	if ret := vk.GetPhysicalDeviceSurfacePresentModes(gpu, surface, &count, nil); ret != vk.Success {
		return nil, newResultError(KindCapabilityMissing, op, ret)
	}
	var buf [maxDriverResults]vk.PresentMode
	list, err := boundedPrefix(op, buf[:], count)
	if err != nil {
		return nil, err
	}
	if ret := vk.GetPhysicalDeviceSurfacePresentModes(gpu, surface, &count, list); ret != vk.Success {
		return nil, newResultError(KindCapabilityMissing, op, ret)
	}
	return list, nil
}
