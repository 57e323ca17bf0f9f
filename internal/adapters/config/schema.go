package config

// Matrixfile represents one document of the matrix.yaml configuration file.
// A file may contain several YAML documents; their config lists are
// concatenated in order and at most one document may carry a job block.
type Matrixfile struct {
	Version string      `yaml:"version"`
	Job     *JobDTO     `yaml:"job"`
	Configs []ConfigDTO `yaml:"configs"`
}

// JobDTO represents the run-wide job policy block.
type JobDTO struct {
	PostTestSummary      bool            `yaml:"post_test_summary"`
	EnableEnvPublication bool            `yaml:"enable_env_publication"`
	PublishEnvFilter     string          `yaml:"publish_env_filter"`
	PublishEnvOverride   bool            `yaml:"publish_env_override"`
	PublishOnSuccessOnly *bool           `yaml:"publish_on_success_only"`
	Credentials          []CredentialDTO `yaml:"credentials"`
}

// CredentialDTO references a credential, optionally binding it to an explicit
// environment variable name.
type CredentialDTO struct {
	ID  string `yaml:"id"`
	Env string `yaml:"env"`
}

// ConfigDTO represents one build configuration entry.
type ConfigDTO struct {
	Name       string         `yaml:"name"`
	NodeType   string         `yaml:"node_type"`
	RunOnDays  []string       `yaml:"run_on_days"`
	Env        []EnvVarDTO    `yaml:"env"`
	Build      []string       `yaml:"build"`
	Test       []string       `yaml:"test"`
	Conda      *CondaDTO      `yaml:"conda"`
	Thresholds *ThresholdsDTO `yaml:"thresholds"`
}

// EnvVarDTO represents one declared environment variable.
type EnvVarDTO struct {
	Name       string `yaml:"name"`
	Value      string `yaml:"value"`
	LateExpand bool   `yaml:"late_expand"`
}

// CondaDTO represents the package provisioning block of a configuration.
type CondaDTO struct {
	Packages         []string `yaml:"packages"`
	Channels         []string `yaml:"channels"`
	OverrideChannels bool     `yaml:"override_channels"`
}

// ThresholdsDTO represents the optional report thresholds.
type ThresholdsDTO struct {
	FailedUnstable  *int `yaml:"failed_unstable"`
	FailedFailure   *int `yaml:"failed_failure"`
	SkippedUnstable *int `yaml:"skipped_unstable"`
	SkippedFailure  *int `yaml:"skipped_failure"`
}
