package domain

import (
	"fmt"
	"net/http"
	"time"
)

// ByteRange is an inclusive byte window into a file
type ByteRange struct {
	Start int64
	End   int64
}

// Length returns the number of bytes covered by the range
func (b ByteRange) Length() int64 {
	return b.End - b.Start + 1
}

// CacheValidators are the conditional-request validators of a file
type CacheValidators struct {
	ETag         string
	LastModified string
}

// StreamRequest carries the request headers the streamer consumes.
// Empty strings and a zero time mean the header was absent.
type StreamRequest struct {
	Range           string
	IfNoneMatch     string
	IfModifiedSince time.Time
}

// PlanKind is the outcome of planning a stream response
type PlanKind int

const (
	PlanFull PlanKind = iota
	PlanPartial
	PlanNotModified
	PlanUnsatisfiable
)

func (k PlanKind) String() string {
	switch k {
	case PlanFull:
		return "full"
	case PlanPartial:
		return "partial"
	case PlanNotModified:
		return "not_modified"
	case PlanUnsatisfiable:
		return "unsatisfiable"
	default:
		return "unknown"
	}
}

// StreamPlan describes the response to send for a stream request
type StreamPlan struct {
	Kind      PlanKind
	Range     ByteRange
	TotalSize int64
	CacheValidators
	CacheControl       string
	ContentType        string
	ContentDisposition string
}

// Status returns the HTTP status code of the plan
func (p StreamPlan) Status() int {
	switch p.Kind {
	case PlanPartial:
		return http.StatusPartialContent
	case PlanNotModified:
		return http.StatusNotModified
	case PlanUnsatisfiable:
		return http.StatusRequestedRangeNotSatisfiable
	default:
		return http.StatusOK
	}
}

// ContentLength returns the number of body bytes the plan transfers
func (p StreamPlan) ContentLength() int64 {
	switch p.Kind {
	case PlanFull, PlanPartial:
		return p.Range.Length()
	default:
		return 0
	}
}

// ContentRange returns the Content-Range header value, empty when none applies
func (p StreamPlan) ContentRange() string {
	switch p.Kind {
	case PlanPartial:
		return fmt.Sprintf("bytes %d-%d/%d", p.Range.Start, p.Range.End, p.TotalSize)
	case PlanUnsatisfiable:
		return fmt.Sprintf("bytes */%d", p.TotalSize)
	default:
		return ""
	}
}

// HasBody reports whether file bytes follow the headers
func (p StreamPlan) HasBody() bool {
	return (p.Kind == PlanFull || p.Kind == PlanPartial) && p.TotalSize > 0
}
