package preview

import "errors"

// ErrAborted signals the user aborted input (e.g., Ctrl+C). The CLI treats
// it as a clean exit.
var ErrAborted = errors.New("preview: aborted")
