package sheets

import "fmt"

// NetworkError covers transport failures and non-2xx responses: the request
// never produced a usable reply from the sheet endpoint.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("sheets: %s: network failure: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ProtocolError covers replies the endpoint did produce but that do not
// satisfy the contract: malformed JSON, an explicit error field, or a
// non-success status marker.
type ProtocolError struct {
	Op      string
	Message string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("sheets: %s: %s", e.Op, e.Message)
}
