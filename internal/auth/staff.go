package auth

import "crypto/subtle"

// StaffKey guards the staff endpoints with a shared bearer key.
type StaffKey struct {
	key []byte
}

// NewStaffKey creates a checker for the given key.
func NewStaffKey(key string) *StaffKey {
	return &StaffKey{key: []byte(key)}
}

// Check compares the presented key in constant time.
func (k *StaffKey) Check(presented string) error {
	if len(k.key) == 0 || subtle.ConstantTimeCompare(k.key, []byte(presented)) != 1 {
		return ErrInvalidStaffKey
	}
	return nil
}
