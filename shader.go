package vulkantest

import (
	"os"

	vk "github.com/vulkan-go/vulkan"
)

// loadShaderCode reads a precompiled shader binary. The driver consumes the
// blob as a raw stream of 32-bit instructions, so the byte length must be a
// whole number of machine words; no header parsing happens here.
func loadShaderCode(path string) ([]byte, error) {
	const op = "loadShaderCode"

	code, err := os.ReadFile(path)
	if err != nil {
		return nil, newError(KindCreationFailed, op, "read %s: %v", path, err)
	}
	if len(code) == 0 || len(code)%4 != 0 {
		return nil, newError(KindCreationFailed, op,
			"%s: %d bytes is not a whole number of 32-bit words", path, len(code))
	}
	return code, nil
}

func (c *Core) createShaderModule(code []byte) (vk.ShaderModule, error) {
	var module vk.ShaderModule
	ret := vk.CreateShaderModule(c.device, &vk.ShaderModuleCreateInfo{
		SType:    vk.StructureTypeShaderModuleCreateInfo,
		CodeSize: uint(len(code)),
		PCode:    sliceUint32(code),
	}, nil, &module)
	if ret != vk.Success {
		return vk.NullShaderModule, newResultError(KindCreationFailed, "vkCreateShaderModule", ret)
	}
	return module, nil
}

func (c *Core) destroyShaderModule(module vk.ShaderModule) {
	vk.DestroyShaderModule(c.device, module, nil)
}
