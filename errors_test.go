package vulkantest

import (
	"errors"
	"strings"
	"testing"

	vk "github.com/vulkan-go/vulkan"
)

func TestIsKind(t *testing.T) {
	err := newError(KindCapabilityMissing, "vkCreateInstance", "no loader")
	if !IsKind(err, KindCapabilityMissing) {
		t.Error("IsKind missed a matching kind")
	}
	if IsKind(err, KindCreationFailed) {
		t.Error("IsKind matched the wrong kind")
	}
	if IsKind(errors.New("plain"), KindCapabilityMissing) {
		t.Error("IsKind matched a plain error")
	}
}

func TestErrorMessage(t *testing.T) {
	err := newResultError(KindSubmitFailed, "vkQueueSubmit", vk.ErrorOutOfDate)
	msg := err.Error()
	for _, want := range []string{"vkQueueSubmit", "submit failed"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, want it to contain %q", msg, want)
		}
	}

	err = newError(KindCapacityExceeded, "vkGetSwapchainImagesKHR", "%d results", 300)
	if msg := err.Error(); !strings.Contains(msg, "300 results") {
		t.Errorf("Error() = %q, want the formatted message", msg)
	}
}

func TestErrorAt(t *testing.T) {
	err := newResultError(KindCreationFailed, "vkCreateImageView", vk.ErrorExtensionNotPresent).at(2)
	if !strings.Contains(err.Error(), "vkCreateImageView[2]") {
		t.Errorf("Error() = %q, want the indexed operation", err.Error())
	}
}
