package protocol

// Status is the verdict reported to the node for the last handled request.
type Status string

const (
	StatusAccept Status = "accept"
	StatusReject Status = "reject"
)

func (s Status) String() string {
	return string(s)
}
