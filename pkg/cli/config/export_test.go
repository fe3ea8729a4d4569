package config

// SetPath sets the policy path directly for tests that bypass flag parsing
func SetPath(p *Policy, path string) {
	p.path = path
}
