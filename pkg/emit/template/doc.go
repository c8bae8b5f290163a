// Package template defines emitter-agnostic template interfaces and adapters
// so emitters can swap template engines without changing their rendering
// code.
package template
