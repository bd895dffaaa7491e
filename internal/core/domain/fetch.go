package domain

type FetchStatus int

const (
	FetchIdle FetchStatus = iota
	FetchLoading
	FetchReady
	FetchFailed
)

func (s FetchStatus) String() string {
	switch s {
	case FetchIdle:
		return "idle"
	case FetchLoading:
		return "loading"
	case FetchReady:
		return "ready"
	case FetchFailed:
		return "failed"
	}
	return "unknown"
}

// FetchState is the state of one view's data pipeline.
//
// Data is only meaningful when Status is FetchReady, Err only when
// Status is FetchFailed. Seq identifies the request that produced it.
type FetchState[T any] struct {
	Status FetchStatus
	Data   T
	Err    error
	Seq    uint64
}
