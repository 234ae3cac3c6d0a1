package site

// Declaration produces the literal configuration a Builder validates.
type Declaration func() *SiteConfig

// Builder turns a Declaration into a validated SiteConfig.
type Builder struct {
	declare Declaration
}

// NewBuilder returns a Builder for the given declaration.
func NewBuilder(declare Declaration) *Builder {
	return &Builder{declare: declare}
}

// Build returns a fresh validated configuration, or the first *ConfigError.
// There is no partial result: on error the configuration is nil.
func (b *Builder) Build() (*SiteConfig, error) {
	cfg, report := b.BuildReport()
	if err := report.Err(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// BuildReport is Build plus the full validation report. The returned
// configuration is nil whenever the report holds errors.
func (b *Builder) BuildReport() (*SiteConfig, *Report) {
	var cfg *SiteConfig
	if b != nil && b.declare != nil {
		cfg = b.declare().Clone()
	}
	report := Validate(cfg)
	if !report.OK() {
		return nil, report
	}
	return cfg, report
}

// Static wraps an already constructed value as a Declaration.
// Each call returns a deep copy so builds never share state.
func Static(cfg *SiteConfig) Declaration {
	return func() *SiteConfig { return cfg.Clone() }
}

// Build builds the project's own navigation declared in Declare.
func Build() (*SiteConfig, error) {
	return NewBuilder(Declare).Build()
}
