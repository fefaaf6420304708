package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/m04kA/AgriRent-BookingService/internal/config"
)

const jobTimeout = time.Minute

// NotificationPurger удаляет прочитанные уведомления старше retention
type NotificationPurger interface {
	PurgeRead(ctx context.Context, now time.Time, retention time.Duration) (int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Scheduler запускает фоновые задачи по расписанию cron (UTC, с секундами)
type Scheduler struct {
	cron      *cron.Cron
	purger    NotificationPurger
	retention time.Duration
	now       func() time.Time
	logger    Logger
}

// New регистрирует задачи, некорректное расписание возвращает ошибку
func New(cfg config.SchedulerConfig, purger NotificationPurger, logger Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithSeconds(),
		),
		purger:    purger,
		retention: time.Duration(cfg.NotificationRetentionDays) * 24 * time.Hour,
		now:       time.Now,
		logger:    logger,
	}

	if _, err := s.cron.AddFunc(cfg.PurgeNotifications, s.PurgeNotifications); err != nil {
		return nil, fmt.Errorf("scheduler: invalid purge_notifications spec %q: %w", cfg.PurgeNotifications, err)
	}

	return s, nil
}

// PurgeNotifications задача очистки прочитанных уведомлений
func (s *Scheduler) PurgeNotifications() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	deleted, err := s.purger.PurgeRead(ctx, s.now().UTC(), s.retention)
	if err != nil {
		s.logger.Error("Scheduler: PurgeNotifications failed: %v", err)
		return
	}
	s.logger.Info("Scheduler: PurgeNotifications deleted %d notification(s)", deleted)
}

func (s *Scheduler) Start() {
	s.logger.Info("Scheduler: starting, %d job(s) registered", len(s.cron.Entries()))
	s.cron.Start()
}

// Stop останавливает планировщик и ждет завершения запущенных задач
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("Scheduler: stopped")
}
