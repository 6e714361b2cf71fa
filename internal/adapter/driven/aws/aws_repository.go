package aws

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/arn"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	ceTypes "github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	snsTypes "github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/diillson/aws-cost-report-go/internal/domain/entity"
	"github.com/diillson/aws-cost-report-go/internal/shared/types"
)

// Cost Explorer e o endpoint global de billing só respondem em us-east-1.
const costExplorerRegion = "us-east-1"

type costExplorerAPI interface {
	GetCostAndUsage(ctx context.Context, params *costexplorer.GetCostAndUsageInput, optFns ...func(*costexplorer.Options)) (*costexplorer.GetCostAndUsageOutput, error)
}

type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type snsAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type stsAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// AWSRepositoryImpl implementa CostRepository, ReportRepository e
// NotificationRepository com cache de config e de clientes. O cache
// sobrevive entre invocações de uma mesma instância Lambda.
type AWSRepositoryImpl struct {
	profile     string
	region      string
	cfgCache    map[string]aws.Config
	clientCache map[string]interface{}
	accountID   string
	mu          sync.Mutex
}

// NewAWSRepository cria uma nova implementação do repositório AWS.
// Credentials come from the default chain, optionally pinned to cfg.Profile.
func NewAWSRepository(cfg types.Config) *AWSRepositoryImpl {
	return &AWSRepositoryImpl{
		profile:     cfg.Profile,
		region:      cfg.Region,
		cfgCache:    make(map[string]aws.Config),
		clientCache: make(map[string]interface{}),
	}
}

func (r *AWSRepositoryImpl) getAWSConfig(ctx context.Context) (aws.Config, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cfg, ok := r.cfgCache[r.profile]; ok {
		return cfg, nil
	}

	var opts []func(*config.LoadOptions) error
	if r.profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(r.profile))
	}
	if r.region != "" {
		opts = append(opts, config.WithRegion(r.region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config for profile %q: %w", r.profile, err)
	}

	r.cfgCache[r.profile] = cfg
	return cfg, nil
}

func (r *AWSRepositoryImpl) getServiceClient(ctx context.Context, region, service string) (interface{}, error) {
	cacheKey := clientCacheKey(r.profile, region, service)

	r.mu.Lock()
	if client, ok := r.clientCache[cacheKey]; ok {
		r.mu.Unlock()
		return client, nil
	}
	r.mu.Unlock()

	cfg, err := r.getAWSConfig(ctx)
	if err != nil {
		return nil, err
	}

	regionalCfg := cfg.Copy()
	if region != "" {
		regionalCfg.Region = region
	}

	var client interface{}
	switch service {
	case "sts":
		client = sts.NewFromConfig(regionalCfg)
	case "costexplorer":
		regionalCfg.Region = costExplorerRegion
		client = costexplorer.NewFromConfig(regionalCfg)
	case "s3":
		client = s3.NewFromConfig(regionalCfg)
	case "sns":
		client = sns.NewFromConfig(regionalCfg)
	default:
		return nil, fmt.Errorf("unsupported service: %s", service)
	}

	r.mu.Lock()
	r.clientCache[cacheKey] = client
	r.mu.Unlock()

	return client, nil
}

func clientCacheKey(profile, region, service string) string {
	return fmt.Sprintf("%s-%s-%s", profile, region, service)
}

// GetAccountID retorna o ID da conta das credenciais em uso. O STS só é
// consultado na primeira chamada bem-sucedida; depois vem do cache.
func (r *AWSRepositoryImpl) GetAccountID(ctx context.Context) (string, error) {
	r.mu.Lock()
	cached := r.accountID
	r.mu.Unlock()
	if cached != "" {
		return cached, nil
	}

	client, err := r.getServiceClient(ctx, r.region, "sts")
	if err != nil {
		return "", err
	}
	stsClient := client.(stsAPI)

	result, err := stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("error getting account ID: %w", err)
	}

	accountID := aws.ToString(result.Account)
	r.mu.Lock()
	r.accountID = accountID
	r.mu.Unlock()
	return accountID, nil
}

// GetCostAndUsage consulta o Cost Explorer com granularidade diária, métrica
// UnblendedCost e agrupamento por serviço. Only the first page is returned.
func (r *AWSRepositoryImpl) GetCostAndUsage(ctx context.Context, window entity.TimeWindow) (entity.CostReport, error) {
	client, err := r.getServiceClient(ctx, "", "costexplorer")
	if err != nil {
		return nil, err
	}
	ceClient := client.(costExplorerAPI)

	result, err := ceClient.GetCostAndUsage(ctx, buildCostAndUsageInput(window))
	if err != nil {
		return nil, fmt.Errorf("error querying cost and usage for %s: %w", window, err)
	}
	return toCostReport(result.ResultsByTime), nil
}

func buildCostAndUsageInput(window entity.TimeWindow) *costexplorer.GetCostAndUsageInput {
	return &costexplorer.GetCostAndUsageInput{
		TimePeriod: &ceTypes.DateInterval{
			Start: aws.String(window.StartDate()),
			End:   aws.String(window.EndDate()),
		},
		Granularity: ceTypes.GranularityDaily,
		Metrics:     []string{entity.CostMetric},
		GroupBy: []ceTypes.GroupDefinition{
			{Type: ceTypes.GroupDefinitionTypeDimension, Key: aws.String("SERVICE")},
		},
	}
}

// toCostReport copia os resultados do SDK para o espelho do domínio, campo a campo.
func toCostReport(results []ceTypes.ResultByTime) entity.CostReport {
	report := make(entity.CostReport, 0, len(results))
	for _, res := range results {
		item := entity.ResultByTime{
			Total:     toMetrics(res.Total),
			Groups:    make([]entity.Group, 0, len(res.Groups)),
			Estimated: res.Estimated,
		}
		if res.TimePeriod != nil {
			item.TimePeriod = entity.DateInterval{
				Start: aws.ToString(res.TimePeriod.Start),
				End:   aws.ToString(res.TimePeriod.End),
			}
		}
		for _, g := range res.Groups {
			item.Groups = append(item.Groups, entity.Group{
				Keys:    append([]string{}, g.Keys...),
				Metrics: toMetrics(g.Metrics),
			})
		}
		report = append(report, item)
	}
	return report
}

func toMetrics(in map[string]ceTypes.MetricValue) map[string]entity.MetricValue {
	out := make(map[string]entity.MetricValue, len(in))
	for name, mv := range in {
		out[name] = entity.MetricValue{
			Amount: aws.ToString(mv.Amount),
			Unit:   aws.ToString(mv.Unit),
		}
	}
	return out
}

// PutReport grava o relatório no S3. A escrita é incondicional.
func (r *AWSRepositoryImpl) PutReport(ctx context.Context, bucket, key string, body []byte) error {
	client, err := r.getServiceClient(ctx, r.region, "s3")
	if err != nil {
		return err
	}
	s3Client := client.(s3API)

	_, err = s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("error uploading report to s3://%s/%s: %w", bucket, key, err)
	}
	return nil
}

// Location returns the s3:// URI of the object.
func (r *AWSRepositoryImpl) Location(bucket, key string) string {
	return fmt.Sprintf("s3://%s/%s", bucket, key)
}

// Publish envia a notificação ao tópico SNS. O cliente usa a região do ARN
// do tópico quando ela puder ser extraída.
func (r *AWSRepositoryImpl) Publish(ctx context.Context, topic string, notification entity.Notification) error {
	client, err := r.getServiceClient(ctx, topicRegion(topic, r.region), "sns")
	if err != nil {
		return err
	}
	snsClient := client.(snsAPI)

	_, err = snsClient.Publish(ctx, buildPublishInput(topic, notification))
	if err != nil {
		return fmt.Errorf("error publishing %s notification to %s: %w", notification.Outcome, topic, err)
	}
	return nil
}

func buildPublishInput(topic string, notification entity.Notification) *sns.PublishInput {
	attrs := map[string]snsTypes.MessageAttributeValue{}
	if notification.Outcome != "" {
		attrs["outcome"] = stringAttribute(string(notification.Outcome))
	}
	if notification.RunID != "" {
		attrs["run_id"] = stringAttribute(notification.RunID)
	}

	input := &sns.PublishInput{
		TopicArn: aws.String(topic),
		Subject:  aws.String(notification.Subject),
		Message:  aws.String(notification.Body),
	}
	if len(attrs) > 0 {
		input.MessageAttributes = attrs
	}
	return input
}

func stringAttribute(value string) snsTypes.MessageAttributeValue {
	return snsTypes.MessageAttributeValue{
		DataType:    aws.String("String"),
		StringValue: aws.String(value),
	}
}

func topicRegion(topic, fallback string) string {
	parsed, err := arn.Parse(topic)
	if err != nil || parsed.Region == "" {
		return fallback
	}
	return parsed.Region
}
