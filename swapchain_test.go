package vulkantest

import (
	"testing"

	vk "github.com/vulkan-go/vulkan"
)

func TestChooseImageCount(t *testing.T) {
	cases := []struct {
		name    string
		min     uint32
		max     uint32
		want    uint32
		wantErr bool
	}{
		{name: "one above minimum", min: 1, max: 0, want: 2},
		{name: "clamped by maximum", min: 2, max: 2, want: 2},
		{name: "room below maximum", min: 1, max: 3, want: 2},
		{name: "minimum at capacity", min: 10, max: 0, want: 10},
		{name: "clamped by capacity", min: 9, max: 0, want: 10},
		{name: "minimum beyond capacity", min: 11, max: 0, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			caps := vk.SurfaceCapabilities{
				MinImageCount: tc.min,
				MaxImageCount: tc.max,
			}
			got, err := chooseImageCount(caps)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("chooseImageCount(min=%d, max=%d) = %d, want error", tc.min, tc.max, got)
				}
				if !IsKind(err, KindCapacityExceeded) {
					t.Fatalf("error kind = %v, want capacity exceeded", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("chooseImageCount(min=%d, max=%d): %v", tc.min, tc.max, err)
			}
			if got != tc.want {
				t.Errorf("chooseImageCount(min=%d, max=%d) = %d, want %d", tc.min, tc.max, got, tc.want)
			}
		})
	}
}

func TestChooseExtentDriverDefined(t *testing.T) {
	caps := vk.SurfaceCapabilities{
		CurrentExtent:  vk.Extent2D{Width: 800, Height: 600},
		MinImageExtent: vk.Extent2D{Width: 1, Height: 1},
		MaxImageExtent: vk.Extent2D{Width: 4096, Height: 4096},
	}
	got := chooseExtent(caps, 1280, 720)
	if got.Width != 800 || got.Height != 600 {
		t.Errorf("chooseExtent = %dx%d, want the driver extent 800x600", got.Width, got.Height)
	}
}

func TestChooseExtentClampsWindowSize(t *testing.T) {
	cases := []struct {
		name              string
		fbWidth, fbHeight int
		wantW, wantH      uint32
	}{
		{name: "within range", fbWidth: 1280, fbHeight: 720, wantW: 1280, wantH: 720},
		{name: "clamped to maximum", fbWidth: 5000, fbHeight: 5000, wantW: 2048, wantH: 1536},
		{name: "clamped to minimum", fbWidth: 0, fbHeight: 0, wantW: 64, wantH: 48},
	}
	caps := vk.SurfaceCapabilities{
		CurrentExtent:  vk.Extent2D{Width: vk.MaxUint32, Height: vk.MaxUint32},
		MinImageExtent: vk.Extent2D{Width: 64, Height: 48},
		MaxImageExtent: vk.Extent2D{Width: 2048, Height: 1536},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := chooseExtent(caps, tc.fbWidth, tc.fbHeight)
			if got.Width != tc.wantW || got.Height != tc.wantH {
				t.Errorf("chooseExtent(%d, %d) = %dx%d, want %dx%d",
					tc.fbWidth, tc.fbHeight, got.Width, got.Height, tc.wantW, tc.wantH)
			}
		})
	}
}

// Both axes are clamped by the same rule: swapping the axes of the inputs
// swaps the axes of the result.
func TestChooseExtentAxisSymmetry(t *testing.T) {
	caps := vk.SurfaceCapabilities{
		CurrentExtent:  vk.Extent2D{Width: vk.MaxUint32, Height: vk.MaxUint32},
		MinImageExtent: vk.Extent2D{Width: 100, Height: 100},
		MaxImageExtent: vk.Extent2D{Width: 500, Height: 500},
	}
	sizes := []int{50, 100, 300, 500, 900}
	for _, w := range sizes {
		for _, h := range sizes {
			straight := chooseExtent(caps, w, h)
			swapped := chooseExtent(caps, h, w)
			if straight.Width != swapped.Height || straight.Height != swapped.Width {
				t.Errorf("chooseExtent(%d, %d) = %dx%d but chooseExtent(%d, %d) = %dx%d",
					w, h, straight.Width, straight.Height,
					h, w, swapped.Width, swapped.Height)
			}
		}
	}
}

func TestChooseSurfaceFormat(t *testing.T) {
	want := vk.SurfaceFormat{Format: vk.FormatB8g8r8a8Srgb, ColorSpace: vk.ColorSpaceSrgbNonlinear}

	got, err := chooseSurfaceFormat([]vk.SurfaceFormat{
		{Format: vk.FormatR8g8b8a8Unorm, ColorSpace: vk.ColorSpaceSrgbNonlinear},
		want,
	})
	if err != nil {
		t.Fatalf("chooseSurfaceFormat: %v", err)
	}
	if got.Format != want.Format || got.ColorSpace != want.ColorSpace {
		t.Errorf("chooseSurfaceFormat = %+v, want %+v", got, want)
	}
}

// A near miss on either field is not accepted; there is no fallback tier.
func TestChooseSurfaceFormatNoFallback(t *testing.T) {
	cases := []struct {
		name    string
		formats []vk.SurfaceFormat
	}{
		{name: "empty list", formats: nil},
		{name: "wrong format", formats: []vk.SurfaceFormat{
			{Format: vk.FormatR8g8b8a8Srgb, ColorSpace: vk.ColorSpaceSrgbNonlinear},
		}},
		{name: "wrong color space", formats: []vk.SurfaceFormat{
			{Format: vk.FormatB8g8r8a8Srgb, ColorSpace: vk.ColorSpace(1)},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := chooseSurfaceFormat(tc.formats); !IsKind(err, KindCapabilityMissing) {
				t.Errorf("chooseSurfaceFormat = %v, want capability missing", err)
			}
		})
	}
}

func TestImageSharing(t *testing.T) {
	mode, indices := imageSharing(3, 3)
	if mode != vk.SharingModeExclusive || indices != nil {
		t.Errorf("same family: mode=%v indices=%v, want exclusive with no index list", mode, indices)
	}

	mode, indices = imageSharing(0, 2)
	if mode != vk.SharingModeConcurrent {
		t.Errorf("distinct families: mode=%v, want concurrent", mode)
	}
	if len(indices) != 2 || indices[0] != 0 || indices[1] != 2 {
		t.Errorf("distinct families: indices=%v, want [0 2]", indices)
	}
}

// A 1280x720 window on a surface with an undefined current extent, a minimum
// of two images and no maximum negotiates three 1280x720 sRGB images.
func TestSwapchainNegotiationScenario(t *testing.T) {
	caps := vk.SurfaceCapabilities{
		MinImageCount:  2,
		MaxImageCount:  0,
		CurrentExtent:  vk.Extent2D{Width: vk.MaxUint32, Height: vk.MaxUint32},
		MinImageExtent: vk.Extent2D{Width: 1, Height: 1},
		MaxImageExtent: vk.Extent2D{Width: 16384, Height: 16384},
	}
	formats := []vk.SurfaceFormat{
		{Format: vk.FormatR5g6b5UnormPack16, ColorSpace: vk.ColorSpaceSrgbNonlinear},
		{Format: vk.FormatB8g8r8a8Srgb, ColorSpace: vk.ColorSpaceSrgbNonlinear},
	}

	format, err := chooseSurfaceFormat(formats)
	if err != nil {
		t.Fatalf("chooseSurfaceFormat: %v", err)
	}
	extent := chooseExtent(caps, 1280, 720)
	count, err := chooseImageCount(caps)
	if err != nil {
		t.Fatalf("chooseImageCount: %v", err)
	}

	if format.Format != vk.FormatB8g8r8a8Srgb {
		t.Errorf("format = %v, want B8G8R8A8_SRGB", format.Format)
	}
	if extent.Width != 1280 || extent.Height != 720 {
		t.Errorf("extent = %dx%d, want 1280x720", extent.Width, extent.Height)
	}
	if count != 3 {
		t.Errorf("image count = %d, want 3", count)
	}
}
