package jsonrpc

import (
	"encoding/json"

	"github.com/theapemachine/a2a-bridge/pkg/errors"
)

/*
Response is a JSON-RPC 2.0 response envelope.  Exactly one of Result or
Error is populated; the ID always echoes the request ID verbatim, a nil
RawMessage marshalling to null for requests whose ID could not be read.
*/
type Response struct {
	JSONRPC string           `json:"jsonrpc"`
	ID      json.RawMessage  `json:"id"`
	Result  any              `json:"result,omitempty"`
	Error   *errors.RpcError `json:"error,omitempty"`
}

func NewResult(id json.RawMessage, result any) Response {
	return Response{
		JSONRPC: "2.0",
		ID:      id,
		Result:  result,
	}
}

func NewError(id json.RawMessage, e *errors.RpcError) Response {
	// Ensure mandatory Code/Message.
	if e == nil {
		e = errors.ErrInternal
	}

	return Response{
		JSONRPC: "2.0",
		ID:      id,
		Error:   e,
	}
}
