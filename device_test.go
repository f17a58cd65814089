package vulkantest

import (
	"testing"
)

func TestQueueCreateInfosCollapse(t *testing.T) {
	infos := queueCreateInfos(2, 2)
	if len(infos) != 1 {
		t.Fatalf("same family: %d create infos, want 1", len(infos))
	}
	if infos[0].QueueFamilyIndex != 2 {
		t.Errorf("family index = %d, want 2", infos[0].QueueFamilyIndex)
	}
	if infos[0].QueueCount != 1 {
		t.Errorf("queue count = %d, want 1", infos[0].QueueCount)
	}
}

func TestQueueCreateInfosDistinct(t *testing.T) {
	infos := queueCreateInfos(0, 1)
	if len(infos) != 2 {
		t.Fatalf("distinct families: %d create infos, want 2", len(infos))
	}
	if infos[0].QueueFamilyIndex != 0 || infos[1].QueueFamilyIndex != 1 {
		t.Errorf("family indices = %d, %d, want 0, 1",
			infos[0].QueueFamilyIndex, infos[1].QueueFamilyIndex)
	}
	for i, info := range infos {
		if info.QueueCount != 1 {
			t.Errorf("infos[%d].QueueCount = %d, want 1", i, info.QueueCount)
		}
		if len(info.PQueuePriorities) != 1 || info.PQueuePriorities[0] != 1.0 {
			t.Errorf("infos[%d] priorities = %v, want [1.0]", i, info.PQueuePriorities)
		}
	}
}

func TestMissingNames(t *testing.T) {
	actual := []string{"VK_LAYER_KHRONOS_validation", "VK_LAYER_MESA_overlay"}

	if missing := missingNames([]string{"VK_LAYER_KHRONOS_validation"}, actual); len(missing) != 0 {
		t.Errorf("missingNames = %v, want none", missing)
	}
	missing := missingNames([]string{"VK_LAYER_KHRONOS_validation", "VK_LAYER_LUNARG_api_dump"}, actual)
	if len(missing) != 1 || missing[0] != "VK_LAYER_LUNARG_api_dump" {
		t.Errorf("missingNames = %v, want [VK_LAYER_LUNARG_api_dump]", missing)
	}
}

func TestContainsName(t *testing.T) {
	names := []string{"VK_KHR_swapchain", "VK_KHR_maintenance1"}
	if !containsName(names, "VK_KHR_swapchain") {
		t.Error("containsName missed a present name")
	}
	if containsName(names, "VK_KHR_display") {
		t.Error("containsName reported an absent name")
	}
}
