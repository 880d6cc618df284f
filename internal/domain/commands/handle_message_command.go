package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/drupalpod/drupalpod-cli/internal/domain/entities"
)

// HandleMessage is the interface for answering extension runtime messages.
type HandleMessage interface {
	Execute(ctx context.Context, message entities.Message) entities.MessageResponse
}

// HandleMessageCommand routes extension messages to the preference store and
// the page reader.
type HandleMessageCommand struct {
	preference RepoPreference
	reader     ReadIssue
}

// NewHandleMessageCommand creates a new HandleMessageCommand.
func NewHandleMessageCommand(preference RepoPreference, reader ReadIssue) *HandleMessageCommand {
	return &HandleMessageCommand{
		preference: preference,
		reader:     reader,
	}
}

// Execute answers a single message.
func (it *HandleMessageCommand) Execute(
	ctx context.Context,
	message entities.Message,
) entities.MessageResponse {
	switch {
	case message.Message == entities.MessageFetchRepo:
		return entities.MessageResponse{Message: it.preference.Get(ctx)}

	case message.Message == entities.MessageSetRepo:
		if err := it.preference.Set(ctx, message.URL, false); err != nil {
			logger.Errorf("[messages] Failed to set repo: %v", err)
			return failure(err.Error())
		}
		return entities.MessageResponse{Message: entities.MessageAcknowledge}

	case message.Action == entities.ActionGetPageInfo:
		metadata, err := it.reader.Execute(ctx, ReadIssueOptions{PageURL: message.URL})
		if err != nil {
			logger.Errorf("[messages] Error collecting page info: %v", err)
			return failure(err.Error())
		}
		success := true
		return entities.MessageResponse{Success: &success, Data: metadata}

	default:
		logger.Warnf("[messages] Unknown message: %+v", message)
		return failure("unknown message")
	}
}

func failure(reason string) entities.MessageResponse {
	success := false
	return entities.MessageResponse{Success: &success, Error: reason}
}
