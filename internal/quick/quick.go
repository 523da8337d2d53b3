// Package quick is inspired by the standard testing/quick package, but
// exercises arrays of larger and more adversarial sizes than the maximum of
// 50 hardcoded in the standard library. The sizes cover the interesting
// boundaries of 8-value packed batches (7, 8, 9, 63, 64, 65, ...).
package quick

import (
	"fmt"
	"math/rand"
	"reflect"
)

var sizes = [...]int{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9,
	15, 16, 17,
	31, 32, 33,
	63, 64, 65,
	127, 128, 129,
	255, 256, 257,
	1000, 1023, 1024, 1025,
}

// Check calls f three times per input size with pseudo-random arrays of the
// type of its single argument, and reports the first input for which f
// returned false. The random source is seeded with a constant so failures
// reproduce.
func Check(f interface{}) error {
	v := reflect.ValueOf(f)
	r := rand.New(rand.NewSource(0))

	var makeArray func(int) interface{}
	switch t := v.Type().In(0); t.Elem().Kind() {
	case reflect.Int32:
		makeArray = func(n int) interface{} {
			v := make([]int32, n)
			for i := range v {
				v[i] = r.Int31()
			}
			return v
		}

	case reflect.Int64:
		makeArray = func(n int) interface{} {
			v := make([]int64, n)
			for i := range v {
				v[i] = r.Int63()
			}
			return v
		}

	case reflect.Uint32:
		makeArray = func(n int) interface{} {
			v := make([]uint32, n)
			for i := range v {
				v[i] = r.Uint32()
			}
			return v
		}

	case reflect.Uint8:
		makeArray = func(n int) interface{} {
			v := make([]byte, n)
			r.Read(v)
			return v
		}
	}

	if makeArray == nil {
		panic("cannot run quick check on function with input of type " + v.Type().In(0).String())
	}

	for _, n := range sizes {
		for i := 0; i < 3; i++ {
			in := makeArray(n)
			ok := v.Call([]reflect.Value{reflect.ValueOf(in)})
			if !ok[0].Bool() {
				return fmt.Errorf("test #%d: failed on input of size %d: %#v", i+1, n, in)
			}
		}
	}
	return nil
}
