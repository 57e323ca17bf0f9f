// Package config provides the configuration loader for the build matrix.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"go.trai.ch/matrix/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new configuration Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the matrix file at path and returns the run request.
func (l *Loader) Load(path string) (*domain.RunRequest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read config file")
	}
	return Parse(data)
}

// Parse decodes one or more YAML documents into a run request. Config lists
// are concatenated in document order; at most one document may carry a job
// policy block.
func Parse(data []byte) (*domain.RunRequest, error) {
	req := &domain.RunRequest{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	for {
		var file Matrixfile
		if err := dec.Decode(&file); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, zerr.Wrap(err, "failed to parse config file")
		}

		if file.Job != nil {
			if req.Policy != nil {
				return nil, ErrMultiplePolicyBlocks()
			}
			req.Policy = jobFromDTO(file.Job)
		}

		for i := range file.Configs {
			cfg, err := configFromDTO(&file.Configs[i])
			if err != nil {
				return nil, err
			}
			req.Configs = append(req.Configs, cfg)
		}
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req, nil
}

// ErrMultiplePolicyBlocks wraps the domain sentinel for loader callers.
func ErrMultiplePolicyBlocks() error {
	return zerr.Wrap(domain.ErrMultiplePolicies, "at most one job block may be supplied")
}

func jobFromDTO(dto *JobDTO) *domain.JobConfig {
	job := domain.DefaultJobConfig()
	job.PostTestSummary = dto.PostTestSummary
	job.EnableEnvPublication = dto.EnableEnvPublication
	job.PublishEnvFilter = dto.PublishEnvFilter
	job.PublishEnvOverride = dto.PublishEnvOverride
	if dto.PublishOnSuccessOnly != nil {
		job.PublishOnSuccessOnly = *dto.PublishOnSuccessOnly
	}
	for _, cred := range dto.Credentials {
		if cred.Env != "" {
			job.Credentials = append(job.Credentials, domain.NamedCredential(cred.ID, cred.Env))
		} else {
			job.Credentials = append(job.Credentials, domain.BareCredential(cred.ID))
		}
	}
	return job
}

func configFromDTO(dto *ConfigDTO) (*domain.BuildConfig, error) {
	days, err := parseDays(dto.RunOnDays)
	if err != nil {
		return nil, zerr.With(err, "config", dto.Name)
	}

	cfg := &domain.BuildConfig{
		Name:      dto.Name,
		NodeType:  dto.NodeType,
		RunOnDays: days,
		BuildCmds: dto.Build,
		TestCmds:  dto.Test,
	}

	for _, v := range dto.Env {
		cfg.Env = append(cfg.Env, domain.EnvVar{
			Name:       v.Name,
			Value:      v.Value,
			LateExpand: v.LateExpand,
		})
	}

	if dto.Conda != nil {
		cfg.Packages = dto.Conda.Packages
		cfg.Channels = dto.Conda.Channels
		cfg.OverrideChannels = dto.Conda.OverrideChannels
	}

	if dto.Thresholds != nil {
		cfg.Thresholds = domain.Thresholds{
			FailedUnstable:  dto.Thresholds.FailedUnstable,
			FailedFailure:   dto.Thresholds.FailedFailure,
			SkippedUnstable: dto.Thresholds.SkippedUnstable,
			SkippedFailure:  dto.Thresholds.SkippedFailure,
		}
	}

	return cfg, nil
}

var dayNames = map[string]time.Weekday{
	"sun": time.Sunday, "sunday": time.Sunday,
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
}

func parseDays(names []string) ([]time.Weekday, error) {
	if len(names) == 0 {
		return nil, nil
	}
	days := make([]time.Weekday, 0, len(names))
	for _, name := range names {
		day, ok := dayNames[strings.ToLower(name)]
		if !ok {
			return nil, zerr.With(zerr.New("unknown day of week"), "day", name)
		}
		days = append(days, day)
	}
	return days, nil
}
