package types

import "errors"

// Referential delete policies for categories and products. The policy
// decides what happens to dependent rows when a referenced row is deleted.
const (
	DeleteBlock   = "block"
	DeleteCascade = "cascade"
	DeleteOrphan  = "orphan"
)

// DefaultDeletePolicy is applied when the config leaves the policy empty.
const DefaultDeletePolicy = DeleteBlock

// knownDeletePolicies lists the policies that Validate accepts.
var knownDeletePolicies = map[string]bool{
	DeleteBlock:   true,
	DeleteCascade: true,
	DeleteOrphan:  true,
}

// Config validation errors.
var (
	ErrDataDirEmpty        = errors.New("data dir must not be empty")
	ErrDeletePolicyUnknown = errors.New("unknown delete policy")
)

// Config holds the parameters for Store.Open and the domain services.
type Config struct {
	DataDir      string `json:"data_dir" yaml:"data_dir"`
	DeletePolicy string `json:"delete_policy" yaml:"delete_policy"`
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	if c.DeletePolicy != "" && !knownDeletePolicies[c.DeletePolicy] {
		return ErrDeletePolicyUnknown
	}
	return nil
}

// EffectiveDeletePolicy returns the configured delete policy, falling back
// to DefaultDeletePolicy when unset.
func (c Config) EffectiveDeletePolicy() string {
	if c.DeletePolicy == "" {
		return DefaultDeletePolicy
	}
	return c.DeletePolicy
}
