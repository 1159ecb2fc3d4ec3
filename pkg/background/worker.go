// Package background запускает периодические задачи процесса.
package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"food-delivery/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// Task - периодическая задача.
type Task interface {
	// TTL - интервал между запусками.
	TTL() time.Duration
	Do(ctx context.Context) error
	// Info - имя задачи для логов.
	Info() string
}

type workerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}

type Worker struct {
	log   workerLogger
	tasks []Task
	wg    sync.WaitGroup
}

// New выполняет каждую задачу один раз синхронно и, если все прошли без ошибок,
// запускает их по расписанию до отмены ctx. Ошибка или паника первого запуска
// возвращается вызывающему, периодические ошибки только логируются.
func New(ctx context.Context, log workerLogger, tasks []Task) (*Worker, error) {
	worker := &Worker{
		log:   log,
		tasks: tasks,
	}
	if len(tasks) == 0 {
		return worker, nil
	}

	initGroup, initCtx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		initGroup.Go(func() error {
			log.Info("initializing task", logger.NewField("task", task.Info()))
			return worker.runOnce(initCtx, task)
		})
	}
	if err := initGroup.Wait(); err != nil {
		return nil, fmt.Errorf("background: init tasks: %w", err)
	}

	for _, task := range tasks {
		worker.wg.Add(1)
		go func() {
			defer worker.wg.Done()
			worker.loop(ctx, task)
		}()
	}

	return worker, nil
}

// Wait блокируется, пока все задачи не остановятся после отмены контекста.
func (w *Worker) Wait() {
	w.wg.Wait()
}

func (w *Worker) loop(ctx context.Context, task Task) {
	ttl := task.TTL()
	if ttl <= 0 {
		w.log.Warn("invalid TTL, skipping periodic execution",
			logger.NewField("task", task.Info()),
			logger.NewField("ttl", ttl.String()),
		)
		return
	}
	w.log.Info("starting periodic execution",
		logger.NewField("task", task.Info()),
		logger.NewField("ttl", ttl.String()),
	)

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("stopping task", logger.NewField("task", task.Info()))
			return
		case <-ticker.C:
			if err := w.runOnce(ctx, task); err != nil {
				w.log.Error("background task failed",
					logger.NewField("task", task.Info()),
					logger.NewField("error", err),
				)
			}
		}
	}
}

func (w *Worker) runOnce(ctx context.Context, task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			w.log.Error("background task panic",
				logger.NewField("task", task.Info()),
				logger.NewField("recover", r),
				logger.NewField("stack", string(stack)),
			)
			err = fmt.Errorf("task %q panicked: %v", task.Info(), r)
		}
	}()
	return task.Do(ctx)
}
