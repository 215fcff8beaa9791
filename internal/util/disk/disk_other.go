//go:build !linux && !darwin

package disk

// FreeBytes is not implemented here.
func FreeBytes(string) (Space, error) {
	return Space{}, ErrUnsupported
}
