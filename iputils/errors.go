package iputils

import "github.com/pkg/errors"

// PowerOfTwoError is the error returned from CheckPow2 or other methods when
// a block size or alignment that must be a power of two is not one
var PowerOfTwoError error = errors.New("number must be a power of two")
