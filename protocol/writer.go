package protocol

import (
	"github.com/tidwall/sjson"
)

// FinishBody builds the body of a finish call.
func FinishBody(status Status) ([]byte, error) {
	return sjson.SetBytes([]byte("{}"), "status", string(status))
}

// PayloadBody builds the body shared by notices and reports.
func PayloadBody(payload string) ([]byte, error) {
	return sjson.SetBytes([]byte("{}"), "payload", payload)
}
