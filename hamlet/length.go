package hamlet

import "reflect"

func lengthOf(value interface{}) int {
	defer func() {
		recover()
	}()
	return reflect.ValueOf(value).Len()
}
