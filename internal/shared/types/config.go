package types

import (
	"fmt"
	"strings"
)

const (
	// DefaultBucket é o bucket S3 onde os relatórios são gravados quando nada é configurado.
	DefaultBucket = "cloud-cost-tracker-cloudwithpaula"
	// DefaultTopicARN é o tópico SNS que recebe as notificações de sucesso e falha.
	DefaultTopicARN = "arn:aws:sns:us-east-1:019511185150:CostAlerts"
	// DefaultKeyPrefix é o "diretório" dentro do bucket.
	DefaultKeyPrefix = "reports"
)

// Config represents the job configuration that can be loaded from a file.
// Bucket and TopicARN are the storage and notification targets.
type Config struct {
	Bucket    string `json:"bucket" yaml:"bucket" toml:"bucket"`
	TopicARN  string `json:"topic_arn" yaml:"topic_arn" toml:"topic_arn"`
	Profile   string `json:"profile" yaml:"profile" toml:"profile"`
	Region    string `json:"region" yaml:"region" toml:"region"`
	KeyPrefix string `json:"key_prefix" yaml:"key_prefix" toml:"key_prefix"`
}

// DefaultConfig retorna a configuração padrão do job.
func DefaultConfig() Config {
	return Config{
		Bucket:    DefaultBucket,
		TopicARN:  DefaultTopicARN,
		KeyPrefix: DefaultKeyPrefix,
	}
}

// Merge returns a copy of c where every non-empty field of override wins.
func (c Config) Merge(override Config) Config {
	merged := c
	if override.Bucket != "" {
		merged.Bucket = override.Bucket
	}
	if override.TopicARN != "" {
		merged.TopicARN = override.TopicARN
	}
	if override.Profile != "" {
		merged.Profile = override.Profile
	}
	if override.Region != "" {
		merged.Region = override.Region
	}
	if override.KeyPrefix != "" {
		merged.KeyPrefix = override.KeyPrefix
	}
	return merged
}

// Validate checks that both destinations are present.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Bucket) == "" {
		return fmt.Errorf("%w: bucket is required", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.TopicARN) == "" {
		return fmt.Errorf("%w: topic_arn is required", ErrInvalidConfig)
	}
	return nil
}
