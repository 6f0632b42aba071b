package cart

import "errors"

var ErrQuantityInvalid = errors.New("quantity must be > 0")
