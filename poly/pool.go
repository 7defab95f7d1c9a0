package poly

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Sets a maximum for the array sizes we keep in pool
const maxNForLargePool int = 1 << 22
const maxNForSmallPool int = 256

// Aliases because it is annoying to use arrays in all the places
type largeArr = [maxNForLargePool]fr.Element
type smallArr = [maxNForSmallPool]fr.Element

var rC sync.Map = sync.Map{}

var (
	largePool = sync.Pool{
		New: func() interface{} {
			var res largeArr
			return &res
		},
	}
	smallPool = sync.Pool{
		New: func() interface{} {
			var res smallArr
			return &res
		},
	}
)

// Make returns a table of size n backed by the pool. The prover's working
// tables cycle through here once per round. Give the table back with Dump.
func Make(n int) MultiLin {
	if n > maxNForLargePool {
		panic(fmt.Sprintf("been provided with size of %v but the maximum is %v", n, maxNForLargePool))
	}

	if n <= maxNForSmallPool {
		ptr := smallPool.Get().(*smallArr)
		rC.Store(ptr, struct{}{}) // remember the pointer is being used
		return (*ptr)[:n]
	}

	ptr := largePool.Get().(*largeArr)
	rC.Store(ptr, struct{}{})
	return (*ptr)[:n]
}

// Dump returns the tables to the pool
func Dump(arrs ...MultiLin) {
	for _, arr := range arrs {
		switch cap(arr) {
		case maxNForSmallPool:
			ptr := arr.ptrSmall()
			// If rC did not register, then either the table was allocated
			// somewhere else and it is fine to ignore, or this is a double
			// put and we MUST ignore
			if _, ok := rC.Load(ptr); ok {
				smallPool.Put(ptr)
			}
			rC.Delete(ptr)
		case maxNForLargePool:
			ptr := arr.ptrLarge()
			if _, ok := rC.Load(ptr); ok {
				largePool.Put(ptr)
			}
			rC.Delete(ptr)
		default:
			// not pool-backed, nothing to give back
		}
	}
}

// Get the pointer from the header of the slice
func (m MultiLin) ptrLarge() *largeArr {
	if cap(m) != maxNForLargePool {
		panic(fmt.Sprintf("can't cast to large array, the put array's capacity is %v, it should be %v", cap(m), maxNForLargePool))
	}
	return (*largeArr)(unsafe.Pointer(&m[0]))
}

// Get the pointer from the header of the slice
func (m MultiLin) ptrSmall() *smallArr {
	if cap(m) != maxNForSmallPool {
		panic(fmt.Sprintf("can't cast to small array, the put array's capacity is %v, it should be %v", cap(m), maxNForSmallPool))
	}
	return (*smallArr)(unsafe.Pointer(&m[0]))
}
