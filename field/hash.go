package field

import "github.com/tmr232/kitty-go/khash"

// TypeHash seeds a field's structural hash from its Go type name. Leaves
// call this as the base of their own Hash(); containers fold in each
// child's hash on top of it.
func TypeHash(typeName string) uint32 {
	return khash.String(typeName)
}
