// Package app defines the runtime contract shared by the cmd/* entrypoints.
//
// It lets a binary start the API server without depending on how the server
// assembles its stores, gateway and router.
package app

// Runner represents a runnable application component.
type Runner interface {
	Run() error
}
