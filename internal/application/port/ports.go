// Package port contains the port interfaces (driven ports) for the application layer.
// Ports define the interfaces that the application layer requires from external
// collaborators such as logging and the bin-packing solver.
//
// In Hexagonal Architecture (ports & adapters):
//   - Ports are interfaces that define what the application needs.
//   - Adapters are implementations of these interfaces
//   - this enables loose coupling and easy testing/swapping of implementations.
package port

import (
	"context"

	"github.com/hapkiduki/measure-go/internal/application/dto"
)

// Logger defines the interface for structured logging.
// Implementation may use zap, logrus, or the standard library.
//
// Example usage:
//
//	logger.Info("packing finished", "boxes", len(packed), "unpacked", len(leftovers))
type Logger interface {
	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs.
	Info(msg string, keysAndValues ...interface{})

	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs.
	Error(msg string, keysAndValues ...interface{})

	// With return a logger with additional context fields.
	With(keysAndValues ...interface{}) Logger

	// WithContext return a logger with context information (e.g., operation ID).
	WithContext(ctx context.Context) Logger
}

// Packer defines the interface for an external bin-packing solver.
// The solver only sees plain integer descriptors: centimeters for
// dimensions and grams for weights.
type Packer interface {
	// Pack distributes items over the available boxes.
	//
	// Parameters:
	//   - ctx: cancellation for long-running solvers
	//   - boxes: box types with the number of boxes available of each
	//   - items: items to place
	//
	// Returns:
	//   - []dto.PackedBox: one entry per box actually used, listing the
	//     references of the items placed in it. Items missing from every
	//     entry were left unpacked.
	//   - error: solver failure
	Pack(ctx context.Context, boxes []dto.BoxDescriptor, items []dto.ItemDescriptor) ([]dto.PackedBox, error)
}
