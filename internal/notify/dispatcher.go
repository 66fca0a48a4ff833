package notify

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/internal/service"
)

const (
	defaultQueueSize    = 256
	defaultWriteTimeout = 3 * time.Second
)

// Dispatcher - асинхронная очередь уведомлений. Notify кладет сообщение в буфер и сразу
// возвращается; фоновая горутина (Run) пишет уведомления в хранилище вне каких-либо
// транзакций вызывающего. Сбой записи или переполнение очереди логируется и не
// распространяется: уведомления best-effort и не могут откатить финансово
// закоммиченную сделку.
type Dispatcher struct {
	repo         service.NotificationRepository
	log          logrus.FieldLogger
	queue        chan repoargs.CreateNotification
	writeTimeout time.Duration
}

func NewDispatcher(repo service.NotificationRepository, log logrus.FieldLogger) *Dispatcher {
	return &Dispatcher{
		repo:         repo,
		log:          log,
		queue:        make(chan repoargs.CreateNotification, defaultQueueSize),
		writeTimeout: defaultWriteTimeout,
	}
}

// Notify ставит уведомление в очередь. Не блокирует: при переполненной очереди
// сообщение отбрасывается с предупреждением в логе.
func (d *Dispatcher) Notify(userID int64, message string) {
	select {
	case d.queue <- repoargs.CreateNotification{UserID: userID, Message: message}:
	default:
		d.log.WithField("user_id", userID).Warn("notification queue is full, message dropped")
	}
}

// Run обрабатывает очередь до отмены ctx, после чего дописывает накопившиеся сообщения
// и выходит.
func (d *Dispatcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			d.drain()
			return
		case msg := <-d.queue:
			d.persist(msg)
		}
	}
}

func (d *Dispatcher) drain() {
	for {
		select {
		case msg := <-d.queue:
			d.persist(msg)
		default:
			return
		}
	}
}

func (d *Dispatcher) persist(msg repoargs.CreateNotification) {
	// Контекст вызывающего к этому моменту уже завершен, у записи свой таймаут.
	ctx, cancel := context.WithTimeout(context.Background(), d.writeTimeout)
	defer cancel()

	if _, err := d.repo.Create(ctx, msg); err != nil {
		d.log.WithError(errors.Wrap(err, "persisting notification")).
			WithField("user_id", msg.UserID).
			Warn("notification lost")
	}
}
