package vulkantest

import (
	vk "github.com/vulkan-go/vulkan"
)

// requiredValidationLayers are enabled when diagnostics are requested.
var requiredValidationLayers = []string{
	"VK_LAYER_KHRONOS_validation",
}

// validateLayers reports whether every requested layer is present on the
// loader. Used only when diagnostics are enabled.
func validateLayers(requested []string) (bool, error) {
	available, err := instanceLayerNames()
	if err != nil {
		return false, err
	}
	return len(missingNames(requested, available)) == 0, nil
}

// createInstance opens the process-wide connection to the graphics driver,
// enabling the window system's required extensions and, when diagnostics are
// on, the validation layers.
func (c *Core) createInstance() error {
	const op = "vkCreateInstance"

	if c.enableValidation {
		ok, err := validateLayers(requiredValidationLayers)
		if err != nil {
			return err
		}
		if !ok {
			return newError(KindCapabilityMissing, op,
				"validation layers %v not present on this loader", requiredValidationLayers)
		}
	}

	required := c.window.GetRequiredInstanceExtensions()

	createInfo := vk.InstanceCreateInfo{
		SType: vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo: &vk.ApplicationInfo{
			SType:              vk.StructureTypeApplicationInfo,
			PApplicationName:   safeString(c.appName),
			ApplicationVersion: uint32(vk.MakeVersion(0, 1, 0)),
			PEngineName:        safeString("No engine"),
			ApiVersion:         uint32(vk.ApiVersion10),
		},
		EnabledExtensionCount:   uint32(len(required)),
		PpEnabledExtensionNames: safeStrings(required),
	}
	if c.enableValidation {
		layers := safeStrings(requiredValidationLayers)
		createInfo.EnabledLayerCount = uint32(len(layers))
		createInfo.PpEnabledLayerNames = layers
	}

	var instance vk.Instance
	if ret := vk.CreateInstance(&createInfo, nil, &instance); ret != vk.Success {
		return newResultError(KindCreationFailed, op, ret)
	}
	c.instance = instance
	vk.InitInstance(instance)

	c.cleanup.push(func() {
		vk.DestroyInstance(c.instance, nil)
	})
	return nil
}

// createSurface binds the native window to the driver's presentation
// subsystem. The window system owns the native handle; the surface belongs
// to the instance and is destroyed before it.
func (c *Core) createSurface() error {
	surfPtr, err := c.window.CreateWindowSurface(c.instance, nil)
	if err != nil {
		return newError(KindCreationFailed, "glfwCreateWindowSurface", "%v", err)
	}
	c.surface = vk.SurfaceFromPointer(surfPtr)

	c.cleanup.push(func() {
		vk.DestroySurface(c.instance, c.surface, nil)
	})
	return nil
}
