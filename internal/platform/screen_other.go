//go:build !linux && !windows

package platform

func screenSize() (int, int, error) {
	return 0, 0, ErrUnsupported
}
