package catalog

// ServiceEntry is one starter service in the YAML.
type ServiceEntry struct {
	Name  string `yaml:"name"`
	Price string `yaml:"price"`
	Image string `yaml:"image"`
}

// StarterEntry describes one business type.
type StarterEntry struct {
	Type      string         `yaml:"type"`
	Label     string         `yaml:"label"`
	Example   string         `yaml:"example"`
	Tagline   string         `yaml:"tagline"`
	Preset    string         `yaml:"preset"`
	Platforms []string       `yaml:"platforms"`
	Services  []ServiceEntry `yaml:"services"`
}

// Config is the root of a catalog file.
type Config struct {
	Starters []StarterEntry `yaml:"starters"`
}

// SeedBusiness is one business to create with `tapbook seed`.
type SeedBusiness struct {
	Name      string         `yaml:"name"`
	WhatsApp  string         `yaml:"whatsapp"`
	Instagram string         `yaml:"instagram"`
	Type      string         `yaml:"type"`
	Preset    string         `yaml:"preset"`
	Bio       string         `yaml:"bio"`
	Services  []ServiceEntry `yaml:"services"`
}

// SeedFile is the root of a seed file.
type SeedFile struct {
	Businesses []SeedBusiness `yaml:"businesses"`
}
