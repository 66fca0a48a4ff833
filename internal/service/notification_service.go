package service

import (
	"context"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
)

type NotificationService struct {
	uow              uow.UOW
	notificationRepo NotificationRepository
}

func NewNotificationService(u uow.UOW) (*NotificationService, error) {
	notificationRepo, repoErr :=
		uow.GetRepositoryAs[NotificationRepository](u, uow.RepositoryName(repoargs.NotificationRepoName))
	if repoErr != nil {
		return nil, repoErr
	}
	return &NotificationService{
		uow:              u,
		notificationRepo: notificationRepo,
	}, nil
}

// GetByUserID возвращает уведомления юзера, новые сверху.
func (s *NotificationService) GetByUserID(ctx context.Context, userID int64) ([]domain.Notification, error) {
	notifications, err := s.notificationRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return notifications, nil
}

// MarkRead помечает уведомление прочитанным. Чужое уведомление пометить нельзя:
// вернется domain.ErrRecordNotFound.
func (s *NotificationService) MarkRead(ctx context.Context, id, userID int64) (*domain.Notification, error) {
	notification, err := s.notificationRepo.MarkRead(ctx, id, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return notification, nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID int64) error {
	if err := s.notificationRepo.MarkAllRead(ctx, userID); err != nil {
		return err //nolint:wrapcheck
	}
	return nil
}
