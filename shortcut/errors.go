package shortcut

import "errors"

var errNoClipboard = errors.New("shortcut: no clipboard configured")
