package platform

// The accessibility glue is platform-specific and ships as a separate
// package; it registers its constructor at init time. Without a registered
// host the in-memory simulator backs the service, which is what development
// and CI run against.

var newHost func() (SystemOperations, error)

// RegisterHost installs the host adapter constructor. Called from the host
// glue's init.
func RegisterHost(fn func() (SystemOperations, error)) { newHost = fn }

// New returns the registered host adapter, or the simulator when none is
// registered.
func New() (SystemOperations, error) {
	if newHost != nil {
		return newHost()
	}
	return NewSimulator(), nil
}
