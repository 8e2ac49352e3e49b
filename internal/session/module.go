package session

import "go.uber.org/fx"

// Module wires the session holder for dependency injection.
var Module = fx.Provide(NewHolder)
