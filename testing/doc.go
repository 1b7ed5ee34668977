// Package testing provides test utilities for the famalloc library.
//
// It offers a logger that writes through testing.TB and ready-made families
// taken from the worked examples of the RWAV paper, so that tests of different
// packages share the same inputs. It follows Go's convention of providing
// testing utilities in a dedicated package (similar to net/http/httptest).
//
// Example usage:
//
//	import (
//	    "testing"
//	    famtest "github.com/erelsgl/family-fair-allocation/testing"
//	)
//
//	func TestMyProtocol(t *testing.T) {
//	    families, goods := famtest.RWAVExample()
//	    // allocate goods among families
//	}
package testing
