package usecase

import (
	"context"
	"strings"

	"hospital-booking/internal/delivery/dto"
	"hospital-booking/internal/domain/entity"
	"hospital-booking/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const firstAidPreamble = "You are a first-aid assistant. Provide safe, general advice, include urgent warning signs, and recommend seeking professional care when appropriate.\n\n"

// Assistant produces a reply for a prompt. It reports failures as reply text.
type Assistant interface {
	Generate(ctx context.Context, prompt string) string
}

type FirstAidUsecase interface {
	Ask(ctx context.Context, req *dto.FirstAidRequest) (*dto.FirstAidResponse, error)
}

type firstAidUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	chatRepo  repository.FirstAidChatRepository
	userRepo  repository.UserRepository
	assistant Assistant
}

func NewFirstAidUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	chatRepo repository.FirstAidChatRepository,
	userRepo repository.UserRepository,
	assistant Assistant,
) FirstAidUsecase {
	return &firstAidUsecase{
		db:        db,
		log:       log,
		chatRepo:  chatRepo,
		userRepo:  userRepo,
		assistant: assistant,
	}
}

// Ask forwards the prompt and logs the exchange. Upstream problems come back
// as the reply text, never as an error.
func (u *firstAidUsecase) Ask(ctx context.Context, req *dto.FirstAidRequest) (*dto.FirstAidResponse, error) {
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return nil, ErrPromptRequired
	}

	reply := u.assistant.Generate(ctx, firstAidPreamble+prompt)

	db := u.db.WithContext(ctx)
	chat := &entity.FirstAidChat{
		Prompt:   prompt,
		Response: reply,
	}

	if req.UserID != nil && *req.UserID != "" {
		user, err := u.userRepo.FindByID(db, *req.UserID)
		if err != nil {
			u.log.Warnf("Failed to find user by ID: %+v", err)
			return nil, err
		}
		// Unknown users are logged anonymously.
		if user != nil {
			chat.UserID = &user.ID
		}
	}

	if err := u.chatRepo.Create(db, chat); err != nil {
		u.log.Warnf("Failed to log first-aid chat: %+v", err)
		return nil, err
	}

	return &dto.FirstAidResponse{
		ID:       chat.ID,
		Prompt:   prompt,
		Response: reply,
	}, nil
}
