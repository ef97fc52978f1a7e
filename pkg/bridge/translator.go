package bridge

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/theapemachine/a2a-bridge/pkg/a2a"
	"github.com/theapemachine/a2a-bridge/pkg/errors"
	"github.com/theapemachine/a2a-bridge/pkg/upstream"
)

// Completer is the host collaborator seam: one blocking, single-turn
// completion per call.
type Completer interface {
	Complete(ctx context.Context, text string) (string, error)
}

/*
Translator converts message/send params into a single upstream completion
call and wraps the completion text back into a completed task.  Every call
is stateless: task and context identifiers are freshly generated and never
reused.
*/
type Translator struct {
	completer Completer
}

func NewTranslator(completer Completer) *Translator {
	return &Translator{
		completer: completer,
	}
}

func (translator *Translator) MessageSend(ctx context.Context, raw json.RawMessage) (*a2a.Task, *errors.RpcError) {
	var params a2a.MessageSendParams

	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, errors.ErrInvalidParams.WithMessagef("Invalid params: missing message.parts")
	}

	if params.Message == nil || params.Message.Parts == nil {
		return nil, errors.ErrInvalidParams.WithMessagef("Invalid params: missing message.parts")
	}

	text := params.Message.TextContent()

	if strings.TrimSpace(text) == "" {
		return nil, errors.ErrInvalidParams.WithMessagef("Invalid params: empty message text")
	}

	answer, err := translator.completer.Complete(ctx, text)

	if err != nil {
		var statusErr *upstream.StatusError

		if stderrors.As(err, &statusErr) {
			// Full detail stays in the server log; the caller only learns
			// the upstream status.
			log.Error("upstream completion failed", "status", statusErr.StatusCode, "body", statusErr.Body)
			return nil, errors.ErrInternal.WithMessagef("Internal error: upstream returned %d", statusErr.StatusCode)
		}

		log.Error("upstream completion failed", "error", err)
		return nil, errors.ErrInternal.WithMessagef("Internal error: upstream request failed")
	}

	return a2a.NewCompletedTask("response", answer), nil
}
