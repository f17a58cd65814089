package vulkantest

import "unsafe"

// safeString null-terminates s for the C side of the bindings.
func safeString(s string) string {
	if len(s) == 0 {
		return "\x00"
	}
	if s[len(s)-1] != '\x00' {
		return s + "\x00"
	}
	return s
}

func safeStrings(list []string) []string {
	out := make([]string, len(list))
	for i := range list {
		out[i] = safeString(list[i])
	}
	return out
}

// sliceUint32 reinterprets a SPIR-V byte stream as the 32-bit words the
// driver expects. The caller must have verified word alignment.
func sliceUint32(data []byte) []uint32 {
	return unsafe.Slice((*uint32)(unsafe.Pointer(&data[0])), len(data)/4)
}
