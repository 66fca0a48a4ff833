package notify

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-market/internal/service"
)

const (
	// RewardReadyMessage - текст напоминания о ежедневной награде. По нему же
	// выполняется дедупликация: второе напоминание не уходит, пока первое не прочитано.
	RewardReadyMessage = "Your daily reward is ready to be claimed!"

	defaultCheckInterval = 1 * time.Hour
)

// RewardChecker периодически находит юзеров с доступной ежедневной наградой
// и напоминает им о ней через Notifier.
type RewardChecker struct {
	userRepo         service.UserRepository
	notificationRepo service.NotificationRepository
	notifier         service.Notifier
	log              logrus.FieldLogger
	interval         time.Duration
}

func NewRewardChecker(
	userRepo service.UserRepository,
	notificationRepo service.NotificationRepository,
	notifier service.Notifier,
	log logrus.FieldLogger,
) *RewardChecker {
	return &RewardChecker{
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		notifier:         notifier,
		log:              log,
		interval:         defaultCheckInterval,
	}
}

func (r *RewardChecker) SetInterval(interval time.Duration) *RewardChecker {
	r.interval = interval
	return r
}

// Run запускает цикл проверок до отмены ctx. Первая проверка выполняется сразу.
func (r *RewardChecker) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.checkOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.checkOnce(ctx)
		}
	}
}

func (r *RewardChecker) checkOnce(ctx context.Context) {
	ids, idsErr := r.userRepo.FindRewardEligibleIDs(ctx, service.RewardCooldown)
	if idsErr != nil {
		r.log.WithError(errors.Wrap(idsErr, "finding reward eligible users")).
			Warn("daily reward check skipped")
		return
	}

	for _, id := range ids {
		exists, existsErr := r.notificationRepo.ExistsUnread(ctx, id, RewardReadyMessage)
		if existsErr != nil {
			r.log.WithError(errors.Wrap(existsErr, "checking reward notification")).
				WithField("user_id", id).
				Warn("daily reward check skipped for user")
			continue
		}
		if exists {
			continue
		}
		r.notifier.Notify(id, RewardReadyMessage)
	}
}
