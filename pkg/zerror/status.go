package zerror

// Status is a transport agnostic error class.
type Status uint8

const (
	StatusUnknown Status = iota
	StatusNotFound
	StatusInternalServerError
)

func (s Status) String() string {
	switch s {
	case StatusNotFound:
		return "NOT_FOUND"
	case StatusInternalServerError:
		return "INTERNAL_SERVER_ERROR"
	default:
		return "UNKNOWN"
	}
}
