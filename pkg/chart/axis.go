package chart

// AxisConfig controls one coordinate axis of a graph.
//
// When LogRegularization is set the axis is logarithmic: every coordinate v
// is displayed at log10(v + LogRegularization). The regularization keeps
// zero-valued data loggable; it must be non-negative, and both configured
// bounds (when set) must remain positive after the shift.
type AxisConfig struct {
	// Minimum is the lower display bound. Nil means "derive from the data".
	Minimum *float64 `json:"minimum,omitempty" toml:"minimum"`
	// Maximum is the upper display bound. Nil means "derive from the data".
	Maximum *float64 `json:"maximum,omitempty" toml:"maximum"`
	// LogRegularization switches the axis to log scale when set.
	LogRegularization *float64 `json:"log_regularization,omitempty" toml:"log_regularization"`
}

// IsLog reports whether the axis is logarithmic.
func (a *AxisConfig) IsLog() bool { return a.LogRegularization != nil }

// validate checks bound ordering and log-domain positivity. The path
// parameter locates the axis in the parent object (e.g.
// "configuration.x_axis").
func (a *AxisConfig) validate(path string) *Invalid {
	if invalid := validateRange(path, a.Minimum, a.Maximum); invalid != nil {
		return invalid
	}
	return validateLogRegularization(path, a.Minimum, a.Maximum, a.LogRegularization)
}

// validateRange checks Maximum > Minimum when both bounds are set.
func validateRange(path string, minimum, maximum *float64) *Invalid {
	if minimum != nil && maximum != nil && *maximum <= *minimum {
		return notLarger(path+".maximum", *maximum, path+".minimum", *minimum)
	}
	return nil
}

// validateLogRegularization checks the shifted domain stays loggable.
func validateLogRegularization(path string, minimum, maximum, reg *float64) *Invalid {
	if reg == nil {
		return nil
	}
	if *reg < 0 {
		return invalidf("%s.log_regularization: %s is negative", path, ftoa(*reg))
	}
	if minimum != nil && *minimum+*reg <= 0 {
		return invalidf("%s.minimum: %s plus %s.log_regularization: %s is not positive",
			path, ftoa(*minimum), path, ftoa(*reg))
	}
	if maximum != nil && *maximum+*reg <= 0 {
		return invalidf("%s.maximum: %s plus %s.log_regularization: %s is not positive",
			path, ftoa(*maximum), path, ftoa(*reg))
	}
	return nil
}
