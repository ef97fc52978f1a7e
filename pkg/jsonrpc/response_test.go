package jsonrpc

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theapemachine/a2a-bridge/pkg/errors"
)

func TestNewResult(t *testing.T) {
	resp := NewResult(json.RawMessage(`"req-1"`), map[string]string{"ok": "yes"})

	buf, err := json.Marshal(resp)
	require.NoError(t, err)

	assert.JSONEq(t, `{"jsonrpc":"2.0","id":"req-1","result":{"ok":"yes"}}`, string(buf))
}

func TestNewErrorNilID(t *testing.T) {
	resp := NewError(nil, errors.ErrParseError)

	buf, err := json.Marshal(resp)
	require.NoError(t, err)

	// An unreadable request id serializes as null, never omitted.
	assert.JSONEq(t, `{"jsonrpc":"2.0","id":null,"error":{"code":-32700,"message":"Parse error"}}`, string(buf))
}

func TestNewErrorNilErrorDefaultsToInternal(t *testing.T) {
	resp := NewError(json.RawMessage(`5`), nil)

	require.NotNil(t, resp.Error)
	assert.Equal(t, -32603, resp.Error.Code)
}

func TestRequestRoundTrip(t *testing.T) {
	raw := `{"jsonrpc":"2.0","id":42,"method":"message/send","params":{"message":{"parts":[]}}}`

	var req Request
	require.NoError(t, json.Unmarshal([]byte(raw), &req))

	assert.Equal(t, "2.0", req.JSONRPC)
	assert.Equal(t, "message/send", req.Method)
	assert.JSONEq(t, `42`, string(req.ID))
	assert.NotEmpty(t, req.Params)
}
