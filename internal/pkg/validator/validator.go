package validator

import (
	"fmt"
	"strings"

	"github.com/twitchcollab/collab-service/internal/api"
)

const maxMessageLength = 500

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateSendMessage(req *api.SendMessageRequest) error {
	if strings.TrimSpace(req.Content) == "" {
		return fmt.Errorf("content cannot be empty")
	}

	if strings.TrimSpace(req.ToUserId) == "" {
		return fmt.Errorf("toUserId is required")
	}

	if len([]rune(req.Content)) > maxMessageLength {
		return fmt.Errorf("content exceeds maximum length of %d characters", maxMessageLength)
	}

	return nil
}

func (v *Validator) ValidateCreateRequest(req *api.CreateRequestRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("title is required")
	}

	if strings.TrimSpace(req.Description) == "" {
		return fmt.Errorf("description is required")
	}

	return nil
}
