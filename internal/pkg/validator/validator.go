package validator

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	api "github.com/s21platform/staff-chat-service/internal/generated"
	"github.com/s21platform/staff-chat-service/internal/model"
)

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateOpenDirectChannel(req *api.OpenDirectChannelRequest, requesterID string) error {
	if strings.TrimSpace(req.UserId) == "" {
		return fmt.Errorf("user_id is required")
	}
	if req.UserId == requesterID {
		return fmt.Errorf("cannot open a direct channel with yourself")
	}
	return nil
}

func (v *Validator) ValidateCreatePublicChannel(req *api.CreatePublicChannelRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if req.MemberIds != nil {
		for _, id := range *req.MemberIds {
			if strings.TrimSpace(id) == "" {
				return fmt.Errorf("member_ids must not contain empty ids")
			}
		}
	}
	return nil
}

func (v *Validator) ValidateAddChannelMember(req *api.AddChannelMemberRequest) error {
	if strings.TrimSpace(req.UserId) == "" {
		return fmt.Errorf("user_id is required")
	}
	return nil
}

func (v *Validator) ValidateSendMessage(req *api.SendMessageRequest) error {
	var attachments []api.Attachment
	if req.Attachments != nil {
		attachments = *req.Attachments
	}

	if strings.TrimSpace(req.Body) == "" && len(attachments) == 0 {
		return fmt.Errorf("body or attachments are required")
	}

	for i, attachment := range attachments {
		if strings.TrimSpace(attachment.Url) == "" {
			return fmt.Errorf("attachments[%d].url is required", i)
		}
		if !model.IsKnownAttachmentKind(attachment.Kind) {
			return fmt.Errorf("attachments[%d].kind '%s' is not supported", i, attachment.Kind)
		}
	}

	return nil
}

func (v *Validator) ValidateEditMessage(req *api.EditMessageRequest) error {
	if strings.TrimSpace(req.Body) == "" {
		return fmt.Errorf("body cannot be empty")
	}
	return nil
}

// ParsePage reads the pagination cursor. A zero limit means the server default.
func (v *Validator) ParsePage(params api.ListMessagesParams) (*model.MessageCursor, int, error) {
	var before *model.MessageCursor
	if params.Before != nil && *params.Before != "" {
		parsed, err := time.Parse(time.RFC3339Nano, *params.Before)
		if err != nil {
			return nil, 0, fmt.Errorf("before must be an RFC3339 timestamp: %v", err)
		}
		before = &model.MessageCursor{CreatedAt: parsed}
	}

	if params.BeforeId != nil && *params.BeforeId != "" {
		if before == nil {
			return nil, 0, fmt.Errorf("before_id requires before")
		}
		id, err := uuid.Parse(*params.BeforeId)
		if err != nil {
			return nil, 0, fmt.Errorf("before_id must be a message id: %v", err)
		}
		before.ID = &id
	}

	limit := 0
	if params.Limit != nil {
		if *params.Limit <= 0 {
			return nil, 0, fmt.Errorf("limit must be positive")
		}
		limit = *params.Limit
	}

	return before, limit, nil
}

// ParseReadAt returns nil when the client leaves the watermark to the server.
func (v *Validator) ParseReadAt(req *api.MarkChannelReadRequest) (*time.Time, error) {
	if req.ReadAt == nil || *req.ReadAt == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339Nano, *req.ReadAt)
	if err != nil {
		return nil, fmt.Errorf("read_at must be an RFC3339 timestamp: %v", err)
	}
	return &parsed, nil
}
