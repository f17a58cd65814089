package vulkantest

// teardown is a stack of release actions, recorded as resources are created.
// Unwinding runs them newest-first, so destruction is always the strict
// reverse of creation order no matter how far the owning sequence got.
type teardown struct {
	releases []func()
}

func (t *teardown) push(release func()) {
	t.releases = append(t.releases, release)
}

// unwind runs every recorded release in reverse order, exactly once.
// A second unwind is a no-op.
func (t *teardown) unwind() {
	for i := len(t.releases) - 1; i >= 0; i-- {
		t.releases[i]()
	}
	t.releases = nil
}
