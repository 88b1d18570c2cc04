package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"bess-pcr/internal/model"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load BESS parameters from a separate YAML (e.g. examples/bess/*.yaml).
	// If both BessFile and Bess are provided, Bess overrides BessFile.
	BessFile string       `yaml:"bess_file"`
	Bess     BessConfig   `yaml:"bess"`
	Source   SourceConfig `yaml:"source"`
	Output   OutputConfig `yaml:"output"`
	Sweep    []Variation  `yaml:"sweep"`
}

type BessConfig struct {
	Name                   string  `yaml:"name"`
	CapacityMWh            float64 `yaml:"capacity_mwh"`
	PrequalifiedPowerMW    float64 `yaml:"prequalified_power_mw"`
	ChargeEfficiency       float64 `yaml:"charge_efficiency"`
	DischargeEfficiency    float64 `yaml:"discharge_efficiency"`
	SelfConsumptionMWhPerS float64 `yaml:"self_consumption_mwh_per_s"`
	NominalFrequencyHz     float64 `yaml:"nominal_frequency_hz"`

	TransactionBand BandConfig `yaml:"transaction_soc_band"`
	OverfulfillBand BandConfig `yaml:"overfulfillment_soc_band"`
	DeadbandBand    BandConfig `yaml:"deadband_soc_band"`

	TransactionPowerMW    float64 `yaml:"transaction_power_mw"`
	ContractDurationHours float64 `yaml:"contract_duration_hours"`
	LeadTimeHours         float64 `yaml:"lead_time_hours"`

	InitialSOCPct float64 `yaml:"initial_soc_pct"`

	UseOverfulfillment     bool `yaml:"use_overfulfillment"`
	UseDeadbandUtilization bool `yaml:"use_deadband_utilization"`
}

type BandConfig struct {
	LowPct  float64 `yaml:"low_pct"`
	HighPct float64 `yaml:"high_pct"`
}

// SourceConfig selects the frequency series: a data file (csv or json) or a
// synthetic profile. File wins when both are set.
type SourceConfig struct {
	File      string           `yaml:"file"`
	Format    string           `yaml:"format"` // "csv" or "json"; default by extension
	Limit     int              `yaml:"limit"`  // 0 = all samples
	Synthetic *SyntheticConfig `yaml:"synthetic"`
}

type SyntheticConfig struct {
	Samples     int     `yaml:"samples"`
	StepS       float64 `yaml:"step_s"`
	AmplitudeHz float64 `yaml:"amplitude_hz"`
	PeriodS     float64 `yaml:"period_s"`
	NoiseHz     float64 `yaml:"noise_hz"`
	Seed        int64   `yaml:"seed"`
}

type OutputConfig struct {
	CSV     string `yaml:"csv"`      // per-step ledger path
	PlotDir string `yaml:"plot_dir"` // directory for PNG charts
	Store   string `yaml:"store"`    // sqlite run-store path
}

// Variation is one entry of a scenario sweep: a named set of non-zero BESS
// overrides applied on top of the base configuration.
type Variation struct {
	Name string     `yaml:"name"`
	Bess BessConfig `yaml:"bess"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	// If initial_soc_pct is not provided, start halfway between the
	// transaction thresholds so a run does not open with an announcement.
	if c.Bess.InitialSOCPct == 0 {
		c.Bess.InitialSOCPct = (c.Bess.TransactionBand.LowPct + c.Bess.TransactionBand.HighPct) / 2
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If bess_file is set, load it and merge in any explicit overrides from c.Bess.
	if c.BessFile != "" {
		bessPath := c.BessFile
		if !filepath.IsAbs(bessPath) {
			// Prefer interpreting relative paths as relative to the config file
			// directory, but fall back to the provided path (relative to cwd)
			// if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), bessPath)
			if _, err := os.Stat(cand); err == nil {
				bessPath = cand
			}
		}
		loaded, err := LoadBessFile(bessPath)
		if err != nil {
			return nil, err
		}
		c.Bess = MergeBess(loaded, c.Bess)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Source.File == "" && c.Source.Synthetic == nil {
		return errors.New("source requires either a file or a synthetic profile")
	}
	// Validate BESS params by constructing the model record.
	if err := c.Bess.ToModelParams().Validate(); err != nil {
		return fmt.Errorf("bess config invalid: %w", err)
	}
	for _, v := range c.Sweep {
		if v.Name == "" {
			return errors.New("sweep variations require a name")
		}
		if err := MergeBess(c.Bess, v.Bess).ToModelParams().Validate(); err != nil {
			return fmt.Errorf("sweep variation %q invalid: %w", v.Name, err)
		}
	}
	return nil
}

func (b BessConfig) ToModelParams() model.Params {
	return model.Params{
		CapacityMWh:            b.CapacityMWh,
		PrequalifiedPowerMW:    b.PrequalifiedPowerMW,
		ChargeEfficiency:       b.ChargeEfficiency,
		DischargeEfficiency:    b.DischargeEfficiency,
		SelfConsumptionMWhPerS: b.SelfConsumptionMWhPerS,
		NominalFrequencyHz:     b.NominalFrequencyHz,
		TransactionBand:        model.SOCBand{LowPct: b.TransactionBand.LowPct, HighPct: b.TransactionBand.HighPct},
		OverfulfillBand:        model.SOCBand{LowPct: b.OverfulfillBand.LowPct, HighPct: b.OverfulfillBand.HighPct},
		DeadbandBand:           model.SOCBand{LowPct: b.DeadbandBand.LowPct, HighPct: b.DeadbandBand.HighPct},
		TransactionPowerMW:     b.TransactionPowerMW,
		ContractDurationHours:  b.ContractDurationHours,
		LeadTimeHours:          b.LeadTimeHours,
		InitialSOCPct:          b.InitialSOCPct,
		UseOverfulfillment:     b.UseOverfulfillment,
		UseDeadbandUtilization: b.UseDeadbandUtilization,
	}
}

type bessFileWrapper struct {
	Bess BessConfig `yaml:"bess"`
}

// LoadBessFile reads a standalone BESS parameter file of the shape
// `bess: {...}`.
func LoadBessFile(path string) (BessConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return BessConfig{}, err
	}
	var w bessFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return BessConfig{}, err
	}
	return w.Bess, nil
}

// MergeBess overlays non-zero fields from override onto base. Feature flags
// can only be switched on by an override, never off; variations that need a
// flag off should use a base with the flag off.
func MergeBess(base, override BessConfig) BessConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.CapacityMWh != 0 {
		out.CapacityMWh = override.CapacityMWh
	}
	if override.PrequalifiedPowerMW != 0 {
		out.PrequalifiedPowerMW = override.PrequalifiedPowerMW
	}
	if override.ChargeEfficiency != 0 {
		out.ChargeEfficiency = override.ChargeEfficiency
	}
	if override.DischargeEfficiency != 0 {
		out.DischargeEfficiency = override.DischargeEfficiency
	}
	if override.SelfConsumptionMWhPerS != 0 {
		out.SelfConsumptionMWhPerS = override.SelfConsumptionMWhPerS
	}
	if override.NominalFrequencyHz != 0 {
		out.NominalFrequencyHz = override.NominalFrequencyHz
	}
	if override.TransactionBand != (BandConfig{}) {
		out.TransactionBand = override.TransactionBand
	}
	if override.OverfulfillBand != (BandConfig{}) {
		out.OverfulfillBand = override.OverfulfillBand
	}
	if override.DeadbandBand != (BandConfig{}) {
		out.DeadbandBand = override.DeadbandBand
	}
	if override.TransactionPowerMW != 0 {
		out.TransactionPowerMW = override.TransactionPowerMW
	}
	if override.ContractDurationHours != 0 {
		out.ContractDurationHours = override.ContractDurationHours
	}
	if override.LeadTimeHours != 0 {
		out.LeadTimeHours = override.LeadTimeHours
	}
	if override.InitialSOCPct != 0 {
		out.InitialSOCPct = override.InitialSOCPct
	}
	if override.UseOverfulfillment {
		out.UseOverfulfillment = true
	}
	if override.UseDeadbandUtilization {
		out.UseDeadbandUtilization = true
	}
	return out
}
