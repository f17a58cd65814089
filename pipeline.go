package vulkantest

import (
	vk "github.com/vulkan-go/vulkan"
)

const (
	vertexShaderPath   = "./shaders/vertex.spv"
	fragmentShaderPath = "./shaders/fragment.spv"
)

// pipelineDevice is the slice of the logical device the pipeline builder
// touches, narrowed to an interface so shader-module lifetimes can be
// accounted for without a driver.
type pipelineDevice interface {
	createShaderModule(code []byte) (vk.ShaderModule, error)
	destroyShaderModule(module vk.ShaderModule)
	createPipelineLayout() (vk.PipelineLayout, error)
	destroyPipelineLayout(layout vk.PipelineLayout)
	createGraphicsPipeline(info vk.GraphicsPipelineCreateInfo) (vk.Pipeline, error)
}

// buildGraphicsPipeline loads the two shader binaries and assembles the
// fixed-function pipeline with its empty layout. The shader modules are
// scratch inputs to pipeline compilation: a release scope destroys both on
// every exit path, success or failure.
func buildGraphicsPipeline(dev pipelineDevice, renderPass vk.RenderPass, vertexPath, fragmentPath string) (vk.Pipeline, vk.PipelineLayout, error) {
	var scope teardown
	defer scope.unwind()

	vertexCode, err := loadShaderCode(vertexPath)
	if err != nil {
		return vk.NullPipeline, vk.NullPipelineLayout, err
	}
	fragmentCode, err := loadShaderCode(fragmentPath)
	if err != nil {
		return vk.NullPipeline, vk.NullPipelineLayout, err
	}

	vertexModule, err := dev.createShaderModule(vertexCode)
	if err != nil {
		return vk.NullPipeline, vk.NullPipelineLayout, err
	}
	scope.push(func() {
		dev.destroyShaderModule(vertexModule)
	})

	fragmentModule, err := dev.createShaderModule(fragmentCode)
	if err != nil {
		return vk.NullPipeline, vk.NullPipelineLayout, err
	}
	scope.push(func() {
		dev.destroyShaderModule(fragmentModule)
	})

	stages := []vk.PipelineShaderStageCreateInfo{
		{
			SType:  vk.StructureTypePipelineShaderStageCreateInfo,
			Stage:  vk.ShaderStageVertexBit,
			Module: vertexModule,
			PName:  safeString("main"),
		},
		{
			SType:  vk.StructureTypePipelineShaderStageCreateInfo,
			Stage:  vk.ShaderStageFragmentBit,
			Module: fragmentModule,
			PName:  safeString("main"),
		},
	}

	// Viewport and scissor are set per frame, not baked into the pipeline.
	dynamicState := vk.PipelineDynamicStateCreateInfo{
		SType:             vk.StructureTypePipelineDynamicStateCreateInfo,
		DynamicStateCount: 2,
		PDynamicStates:    []vk.DynamicState{vk.DynamicStateViewport, vk.DynamicStateScissor},
	}

	// No vertex input bindings: the vertex stage generates its own vertices.
	vertexInput := vk.PipelineVertexInputStateCreateInfo{
		SType:                           vk.StructureTypePipelineVertexInputStateCreateInfo,
		VertexBindingDescriptionCount:   0,
		VertexAttributeDescriptionCount: 0,
	}

	inputAssembly := vk.PipelineInputAssemblyStateCreateInfo{
		SType:                  vk.StructureTypePipelineInputAssemblyStateCreateInfo,
		Topology:               vk.PrimitiveTopologyTriangleList,
		PrimitiveRestartEnable: vk.False,
	}

	viewportState := vk.PipelineViewportStateCreateInfo{
		SType:         vk.StructureTypePipelineViewportStateCreateInfo,
		ViewportCount: 1,
		ScissorCount:  1,
	}

	rasterizer := vk.PipelineRasterizationStateCreateInfo{
		SType:                   vk.StructureTypePipelineRasterizationStateCreateInfo,
		DepthClampEnable:        vk.False,
		RasterizerDiscardEnable: vk.False,
		PolygonMode:             vk.PolygonModeFill,
		CullMode:                vk.CullModeFlags(vk.CullModeBackBit),
		FrontFace:               vk.FrontFaceClockwise,
		DepthBiasEnable:         vk.False,
		LineWidth:               1.0,
	}

	multisampling := vk.PipelineMultisampleStateCreateInfo{
		SType:                vk.StructureTypePipelineMultisampleStateCreateInfo,
		SampleShadingEnable:  vk.False,
		RasterizationSamples: vk.SampleCount1Bit,
		MinSampleShading:     1.0,
	}

	// Standard alpha-over blending on the single color attachment.
	colorBlendAttachment := vk.PipelineColorBlendAttachmentState{
		ColorWriteMask: vk.ColorComponentFlags(vk.ColorComponentRBit) |
			vk.ColorComponentFlags(vk.ColorComponentGBit) |
			vk.ColorComponentFlags(vk.ColorComponentBBit) |
			vk.ColorComponentFlags(vk.ColorComponentABit),
		BlendEnable:         vk.True,
		SrcColorBlendFactor: vk.BlendFactorOne,
		DstColorBlendFactor: vk.BlendFactorOneMinusSrcAlpha,
		ColorBlendOp:        vk.BlendOpAdd,
		SrcAlphaBlendFactor: vk.BlendFactorOne,
		DstAlphaBlendFactor: vk.BlendFactorZero,
		AlphaBlendOp:        vk.BlendOpAdd,
	}

	colorBlend := vk.PipelineColorBlendStateCreateInfo{
		SType:           vk.StructureTypePipelineColorBlendStateCreateInfo,
		LogicOpEnable:   vk.False,
		LogicOp:         vk.LogicOpCopy,
		AttachmentCount: 1,
		PAttachments:    []vk.PipelineColorBlendAttachmentState{colorBlendAttachment},
	}

	layout, err := dev.createPipelineLayout()
	if err != nil {
		return vk.NullPipeline, vk.NullPipelineLayout, err
	}

	pipeline, err := dev.createGraphicsPipeline(vk.GraphicsPipelineCreateInfo{
		SType:               vk.StructureTypeGraphicsPipelineCreateInfo,
		StageCount:          uint32(len(stages)),
		PStages:             stages,
		PVertexInputState:   &vertexInput,
		PInputAssemblyState: &inputAssembly,
		PViewportState:      &viewportState,
		PRasterizationState: &rasterizer,
		PMultisampleState:   &multisampling,
		PColorBlendState:    &colorBlend,
		PDynamicState:       &dynamicState,
		Layout:              layout,
		RenderPass:          renderPass,
		Subpass:             0,
		BasePipelineIndex:   -1,
	})
	if err != nil {
		dev.destroyPipelineLayout(layout)
		return vk.NullPipeline, vk.NullPipelineLayout, err
	}

	return pipeline, layout, nil
}

// createPipelineLayout builds the empty layout: no descriptor sets, no push
// constants. A scope boundary, not a placeholder.
func (c *Core) createPipelineLayout() (vk.PipelineLayout, error) {
	var layout vk.PipelineLayout
	ret := vk.CreatePipelineLayout(c.device, &vk.PipelineLayoutCreateInfo{
		SType:                  vk.StructureTypePipelineLayoutCreateInfo,
		SetLayoutCount:         0,
		PushConstantRangeCount: 0,
	}, nil, &layout)
	if ret != vk.Success {
		return vk.NullPipelineLayout, newResultError(KindCreationFailed, "vkCreatePipelineLayout", ret)
	}
	return layout, nil
}

func (c *Core) destroyPipelineLayout(layout vk.PipelineLayout) {
	vk.DestroyPipelineLayout(c.device, layout, nil)
}

func (c *Core) createGraphicsPipeline(info vk.GraphicsPipelineCreateInfo) (vk.Pipeline, error) {
	pipelines := make([]vk.Pipeline, 1)
	ret := vk.CreateGraphicsPipelines(c.device, nil, 1,
		[]vk.GraphicsPipelineCreateInfo{info}, nil, pipelines)
	if ret != vk.Success {
		return vk.NullPipeline, newResultError(KindCreationFailed, "vkCreateGraphicsPipelines", ret)
	}
	return pipelines[0], nil
}

// createPipeline runs the builder against the real device and records the
// teardown for the layout and pipeline (pipeline destroyed first).
func (c *Core) createPipeline() error {
	pipeline, layout, err := buildGraphicsPipeline(c, c.renderPass, vertexShaderPath, fragmentShaderPath)
	if err != nil {
		return err
	}
	c.pipeline = pipeline
	c.pipelineLayout = layout

	c.cleanup.push(func() {
		vk.DestroyPipelineLayout(c.device, c.pipelineLayout, nil)
	})
	c.cleanup.push(func() {
		vk.DestroyPipeline(c.device, c.pipeline, nil)
	})
	return nil
}
