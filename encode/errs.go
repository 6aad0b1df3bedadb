package encode

import "errors"

// ErrEncoding reports content that cannot be represented even in the
// long form, e.g. text or comments holding invalid UTF-8, or a
// document comment that would read back as a hashbang.
var ErrEncoding = errors.New("encoding error")
