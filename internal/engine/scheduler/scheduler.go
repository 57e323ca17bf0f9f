// Package scheduler maps build configurations to worker tasks and executes
// them under a parallel or sequential policy.
package scheduler

import (
	"context"
	"sync"
	"time"

	"go.trai.ch/matrix/internal/core/domain"
	"go.trai.ch/matrix/internal/core/ports"
	"go.trai.ch/matrix/internal/engine/aggregate"
	"go.trai.ch/matrix/internal/engine/runner"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// TaskStatus represents the status of a scheduled task.
type TaskStatus string

const (
	// StatusPending indicates the task is waiting to be executed.
	StatusPending TaskStatus = "Pending"
	// StatusRunning indicates the task is currently executing.
	StatusRunning TaskStatus = "Running"
	// StatusCompleted indicates the task finished successfully.
	StatusCompleted TaskStatus = "Completed"
	// StatusFailed indicates the task's build phase failed.
	StatusFailed TaskStatus = "Failed"
	// StatusSkipped indicates the task was aborted by an earlier sequential failure.
	StatusSkipped TaskStatus = "Skipped"
)

// Task is the scheduled unit of work mapping one configuration to one worker
// execution. Config is a private clone: task-local mutation never reaches the
// originating configuration or a sibling task.
type Task struct {
	Key    string
	Config *domain.BuildConfig
}

// ScheduledSet is the outcome of day-of-week filtering: the tasks that will
// run this time, in declaration order. Aggregation sees exactly these
// configurations and no others.
type ScheduledSet struct {
	Tasks []Task
	// SkippedByDay lists configurations excluded by their run_on_days.
	SkippedByDay []string
}

// Configs returns the scheduled configurations in task order.
func (s ScheduledSet) Configs() []*domain.BuildConfig {
	configs := make([]*domain.BuildConfig, len(s.Tasks))
	for i, t := range s.Tasks {
		configs[i] = t.Config
	}
	return configs
}

// Scheduler executes a run request across worker tasks.
type Scheduler struct {
	runner     *runner.Runner
	aggregator *aggregate.Aggregator
	tracer     ports.Tracer
	logger     ports.Logger

	// now is swappable for day-of-week tests.
	now func() time.Time

	mu         sync.RWMutex
	taskStatus map[string]TaskStatus
}

// New creates a new Scheduler.
func New(
	taskRunner *runner.Runner,
	aggregator *aggregate.Aggregator,
	tracer ports.Tracer,
	logger ports.Logger,
) *Scheduler {
	return &Scheduler{
		runner:     taskRunner,
		aggregator: aggregator,
		tracer:     tracer,
		logger:     logger,
		now:        time.Now,
		taskStatus: make(map[string]TaskStatus),
	}
}

// SetClock overrides the scheduler's notion of now. Used for testing.
func (s *Scheduler) SetClock(now func() time.Time) {
	s.now = now
}

// Status returns the recorded status of a task key. With duplicate keys the
// last writer wins, which makes status reporting ambiguous for those keys; a
// known limitation, logged at schedule time.
func (s *Scheduler) Status(key string) TaskStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.taskStatus[key]
}

func (s *Scheduler) updateStatus(key string, status TaskStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.taskStatus[key] = status
}

// Schedule partitions the request's configurations by today's day-of-week
// eligibility and builds one task per surviving configuration.
func (s *Scheduler) Schedule(req *domain.RunRequest) ScheduledSet {
	today := s.now().Weekday()

	var set ScheduledSet
	seen := make(map[string]bool, len(req.Configs))
	for _, cfg := range req.Configs {
		if !cfg.EligibleOn(today) {
			s.logger.Info("skipping " + cfg.Name + ": not scheduled on " + today.String())
			set.SkippedByDay = append(set.SkippedByDay, cfg.Name)
			continue
		}

		key := cfg.TaskKey()
		if seen[key] {
			s.logger.Warn("duplicate task key " + key + ": status reporting will be ambiguous")
		}
		seen[key] = true

		set.Tasks = append(set.Tasks, Task{Key: key, Config: cfg.Clone()})
		s.updateStatus(key, StatusPending)
	}
	return set
}

// Run validates and executes the request, then aggregates exactly once over
// the scheduled configurations. The returned RunResult carries the verdict;
// the error is reserved for configuration errors, which fail the run before
// any task executes.
func (s *Scheduler) Run(ctx context.Context, req *domain.RunRequest, concurrent bool) (*domain.RunResult, error) {
	// All configuration errors must surface before anything is scheduled so
	// the run fails fast without partial execution.
	if err := req.Validate(); err != nil {
		return nil, err
	}

	set := s.Schedule(req)

	keys := make([]string, len(set.Tasks))
	for i, t := range set.Tasks {
		keys[i] = t.Key
	}
	s.tracer.EmitPlan(ctx, keys)

	results := make([]taskResult, len(set.Tasks))
	if concurrent {
		s.runParallel(ctx, set.Tasks, req.Policy.Credentials, results)
	} else {
		s.runSequential(ctx, set.Tasks, req.Policy.Credentials, results)
	}

	summaries := make([]domain.TestReportSummary, 0, len(results))
	buildFailed := false
	for _, res := range results {
		if res.err != nil {
			buildFailed = true
			s.logger.Error(res.err)
		}
		if res.summary != nil {
			summaries = append(summaries, *res.summary)
		}
	}

	// The post-run phase always runs exactly once, whatever the tasks did.
	return s.aggregator.Aggregate(ctx, set.Configs(), summaries, *req.Policy, buildFailed), nil
}

type taskResult struct {
	summary *domain.TestReportSummary
	err     error
}

// runParallel launches every task at once and blocks until all finish. A task
// failure never cancels siblings: once launched, all tasks run to completion.
func (s *Scheduler) runParallel(ctx context.Context, tasks []Task, creds []domain.CredentialRef, results []taskResult) {
	var g errgroup.Group
	for i, t := range tasks {
		g.Go(func() error {
			results[i] = s.runTask(ctx, t, creds)
			return nil
		})
	}
	// Errors are carried in the result slots; the group is only a join barrier.
	_ = g.Wait()
}

// runSequential runs tasks one at a time in list order. The first failure
// aborts the remaining sequence; the deliberate asymmetry with parallel mode.
func (s *Scheduler) runSequential(ctx context.Context, tasks []Task, creds []domain.CredentialRef, results []taskResult) {
	for i, t := range tasks {
		results[i] = s.runTask(ctx, t, creds)
		if results[i].err != nil {
			for _, rest := range tasks[i+1:] {
				s.logger.Warn("aborting " + rest.Key + ": earlier task failed")
				s.updateStatus(rest.Key, StatusSkipped)
			}
			return
		}
	}
}

func (s *Scheduler) runTask(ctx context.Context, t Task, creds []domain.CredentialRef) taskResult {
	s.updateStatus(t.Key, StatusRunning)
	_, span := s.tracer.Start(ctx, t.Key)

	summary, err := s.runner.RunTask(ctx, t.Config, creds)
	if err != nil {
		err = zerr.With(zerr.Wrap(err, "task execution failed"), "task", t.Key)
		s.updateStatus(t.Key, StatusFailed)
		span.RecordError(err)
		return taskResult{err: err}
	}

	s.updateStatus(t.Key, StatusCompleted)
	span.End()
	return taskResult{summary: summary}
}
