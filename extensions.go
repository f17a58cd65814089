package vulkantest

// missingNames returns the required entries that do not appear in actual.
func missingNames(required, actual []string) []string {
	var missing []string
	for _, req := range required {
		has := false
		for _, act := range actual {
			if req == act {
				has = true
				break
			}
		}
		if !has {
			missing = append(missing, req)
		}
	}
	return missing
}

func containsName(actual []string, name string) bool {
	for _, act := range actual {
		if act == name {
			return true
		}
	}
	return false
}
