package app

import "errors"

// ErrHeadless is returned by Show when the binary was built without ebiten.
var ErrHeadless = errors.New("app: display requires building with the 'ebiten' tag")
