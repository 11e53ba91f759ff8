package rollup

import "github.com/luma/rollcall/protocol"

type Route int

const (
	RouteUnknown Route = iota
	RouteAdvance
	RouteInspect
)

func (r Route) String() string {
	switch r {
	case RouteAdvance:
		return "advance"
	case RouteInspect:
		return "inspect"
	default:
		return "unknown"
	}
}

// Classify picks the handling path for a request type.
func Classify(requestType protocol.RequestType) Route {
	switch requestType {
	case protocol.AdvanceState:
		return RouteAdvance
	case protocol.InspectState:
		return RouteInspect
	default:
		return RouteUnknown
	}
}
