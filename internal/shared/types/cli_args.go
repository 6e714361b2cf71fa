package types

// CLIArgs represents the command-line arguments of the run command.
type CLIArgs struct {
	ConfigFile string
	Bucket     string
	TopicARN   string
	Profile    string
	Region     string
	KeyPrefix  string
	DryRun     bool
	Dir        string
}

// Overrides converte as flags em uma Config parcial para Config.Merge.
func (a *CLIArgs) Overrides() Config {
	return Config{
		Bucket:    a.Bucket,
		TopicARN:  a.TopicARN,
		Profile:   a.Profile,
		Region:    a.Region,
		KeyPrefix: a.KeyPrefix,
	}
}
