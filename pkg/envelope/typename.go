package envelope

import "reflect"

// TypeName renders the declared name of T for use in CRUD confirmation
// messages, e.g. TypeName[User]() == "User". Unnamed types (slices, maps,
// pointers) have no declared name and fall back to their full type string.
func TypeName[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}
