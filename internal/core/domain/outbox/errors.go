package outbox

import "errors"

var ErrMessageDoesNotExist = errors.New("outbox message does not exist")
