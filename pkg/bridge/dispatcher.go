package bridge

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/theapemachine/a2a-bridge/pkg/errors"
	"github.com/theapemachine/a2a-bridge/pkg/jsonrpc"
)

// MethodMessageSend is the only method the bridge serves.
const MethodMessageSend = "message/send"

/*
Dispatcher authenticates and routes raw JSON-RPC envelopes.  It is transport
agnostic: it consumes a verb, a body and a credential set and produces a
response envelope plus the HTTP status to send it with, so it can be mounted
behind any server framework.
*/
type Dispatcher struct {
	secret     string
	translator *Translator
}

func NewDispatcher(cfg *Config, translator *Translator) *Dispatcher {
	return &Dispatcher{
		secret:     cfg.Secret,
		translator: translator,
	}
}

// Handle processes one inbound request. Authentication and malformed-input
// failures are rejected here and never reach the translator.
func (dispatcher *Dispatcher) Handle(ctx context.Context, verb string, body []byte, creds Credentials) (jsonrpc.Response, int) {
	if !authorize(dispatcher.secret, creds) {
		log.Warn("rejected unauthorized request")
		return jsonrpc.NewError(nil, errors.ErrUnauthorized), http.StatusUnauthorized
	}

	if verb != http.MethodPost {
		return jsonrpc.NewError(nil, errors.ErrInvalidRequest.WithMessagef("Method not allowed")), http.StatusMethodNotAllowed
	}

	var req jsonrpc.Request

	if err := json.Unmarshal(body, &req); err != nil {
		return jsonrpc.NewError(nil, errors.ErrParseError), http.StatusOK
	}

	if req.Method != MethodMessageSend {
		return jsonrpc.NewError(req.ID, errors.ErrMethodNotFound.WithMessagef("Method not found: %s", req.Method)), http.StatusOK
	}

	task, rpcErr := dispatcher.translator.MessageSend(ctx, req.Params)

	if rpcErr != nil {
		return jsonrpc.NewError(req.ID, rpcErr), http.StatusOK
	}

	return jsonrpc.NewResult(req.ID, task), http.StatusOK
}
