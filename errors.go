package rawshade

import "fmt"

// ErrorKind classifies a PipelineError for programmatic handling by the host.
type ErrorKind uint8

const (
	// ErrMissingResource indicates the host omitted a required binding:
	// the LUT when HasLUT is set, the flare texture when FlareAmount > 0,
	// or a mask texture implied by MaskCount.
	ErrMissingResource ErrorKind = iota

	// ErrDimensionMismatch indicates the input, blur, or mask textures
	// differ in size, or the output texture is smaller than the tile.
	ErrDimensionMismatch

	// ErrInvalidCurve indicates a curve's point count is outside {2..16}
	// or its x values are not strictly ascending.
	ErrInvalidCurve

	// ErrDeviceLost indicates a GPU-level failure; the host should retry
	// the dispatch after recreating resources.
	ErrDeviceLost

	// ErrTimeout indicates the dispatch did not complete within the
	// adapter's deadline; the host should retry.
	ErrTimeout
)

// String returns a human-readable name for the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrMissingResource:
		return "MissingResource"
	case ErrDimensionMismatch:
		return "DimensionMismatch"
	case ErrInvalidCurve:
		return "InvalidCurve"
	case ErrDeviceLost:
		return "DeviceLost"
	case ErrTimeout:
		return "Timeout"
	default:
		return "Unknown"
	}
}

// PipelineError is the error type surfaced to the host before or during a
// dispatch. Kind categorizes the failure so the host can decide whether to
// repair the uniform bundle and retry (InvalidCurve), recreate the device
// (DeviceLost, Timeout), or simply bind the missing resource
// (MissingResource, DimensionMismatch).
type PipelineError struct {
	Kind ErrorKind
	Op   string // component/stage that detected the failure, e.g. "dispatcher.bind"
	Err  error  // wrapped cause, if any
}

func (e *PipelineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("rawshade: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("rawshade: %s: %s", e.Op, e.Kind)
}

func (e *PipelineError) Unwrap() error { return e.Err }

// newPipelineError builds a PipelineError, optionally wrapping a cause.
func newPipelineError(kind ErrorKind, op string, cause error) *PipelineError {
	return &PipelineError{Kind: kind, Op: op, Err: cause}
}
