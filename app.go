package vulkantest

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	vk "github.com/vulkan-go/vulkan"
)

// App ties the window system to the renderer core and owns the event loop.
type App struct {
	config Config
	window *glfw.Window
	core   *Core
}

func NewApp(config Config) *App {
	return &App{config: config}
}

// Run opens the window, brings up the renderer and drives the frame loop
// until the window is closed. Initialization errors are fatal; frame errors
// abandon the frame and the loop continues.
func (a *App) Run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(a.config.Width, a.config.Height, a.config.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	a.window = window
	defer window.Destroy()

	vk.SetGetInstanceProcAddr(glfw.GetVulkanGetInstanceProcAddress())
	if err := vk.Init(); err != nil {
		return fmt.Errorf("init vulkan loader: %w", err)
	}

	a.core = NewCore(window, a.config.Title, a.config.Debug)
	if err := a.core.Init(); err != nil {
		errorLog.Printf("renderer bring-up failed: %v", err)
		return err
	}
	defer a.core.Destroy()

	a.loop()
	return nil
}

func (a *App) loop() {
	for !a.window.ShouldClose() {
		glfw.PollEvents()
		if err := drawFrame(a.core); err != nil {
			warnLog.Printf("frame abandoned: %v", err)
		}
	}
}
