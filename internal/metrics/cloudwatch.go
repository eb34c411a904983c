package metrics

import (
	"context"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

const (
	httpStatusServerError    = 500
	cloudwatchTimeoutSeconds = 5
)

// Client wraps CloudWatch client for custom metrics
type Client struct {
	client      *cloudwatch.Client
	enabled     bool
	environment string
	namespace   string
}

// NewClient creates a new CloudWatch metrics client
func NewClient(ctx context.Context, environment, namespace string) (*Client, error) {
	// Only enable in production
	if environment != "production" {
		log.Printf("📊 CloudWatch Metrics: DISABLED (environment: %s)", environment)
		return NewDisabledClient(environment), nil
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		log.Printf("⚠️  Failed to load AWS config for CloudWatch: %v", err)
		return NewDisabledClient(environment), nil
	}

	client := cloudwatch.NewFromConfig(cfg)
	log.Printf("📊 CloudWatch Metrics: ✅ ENABLED (namespace: %s)", namespace)

	return &Client{
		client:      client,
		enabled:     true,
		environment: environment,
		namespace:   namespace,
	}, nil
}

// NewDisabledClient returns a client that drops every metric
func NewDisabledClient(environment string) *Client {
	return &Client{enabled: false, environment: environment}
}

// Enabled reports whether metrics are sent to CloudWatch
func (m *Client) Enabled() bool {
	return m != nil && m.enabled
}

// RecordAPIRequest records an API request metric
func (m *Client) RecordAPIRequest(endpoint string, statusCode int, duration time.Duration) {
	if !m.Enabled() {
		return
	}

	go func() {
		ctx := context.Background()
		metricName := "APIRequests"
		if statusCode >= httpStatusServerError {
			metricName = "APIErrors"
		}

		dimensions := []types.Dimension{
			{
				Name:  aws.String("Endpoint"),
				Value: aws.String(endpoint),
			},
			{
				Name:  aws.String("Environment"),
				Value: aws.String(m.environment),
			},
		}

		if err := m.putMetric(ctx, metricName, 1, types.StandardUnitCount, dimensions); err != nil {
			log.Printf("Failed to record %s metric: %v", metricName, err)
		}

		latencyMs := float64(duration.Milliseconds())
		if err := m.putMetric(ctx, "APILatency", latencyMs, types.StandardUnitMilliseconds, dimensions); err != nil {
			log.Printf("Failed to record APILatency metric: %v", err)
		}
	}()
}

// RecordGeneration counts generated progressions per mode and key
func (m *Client) RecordGeneration(mode, key string, found bool) {
	if !m.Enabled() {
		return
	}

	go func() {
		ctx := context.Background()
		dimensions := []types.Dimension{
			{
				Name:  aws.String("Mode"),
				Value: aws.String(mode),
			},
			{
				Name:  aws.String("Found"),
				Value: aws.String(boolToString(found)),
			},
			{
				Name:  aws.String("Environment"),
				Value: aws.String(m.environment),
			},
		}

		if err := m.putMetric(ctx, "Progressions", 1, types.StandardUnitCount, dimensions); err != nil {
			log.Printf("Failed to record Progressions metric: %v", err)
		}

		if key == "" {
			return
		}
		keyDimensions := []types.Dimension{
			{
				Name:  aws.String("Key"),
				Value: aws.String(key),
			},
			{
				Name:  aws.String("Environment"),
				Value: aws.String(m.environment),
			},
		}
		if err := m.putMetric(ctx, "ProgressionsByKey", 1, types.StandardUnitCount, keyDimensions); err != nil {
			log.Printf("Failed to record ProgressionsByKey metric: %v", err)
		}
	}()
}

// putMetric sends a metric to CloudWatch
func (m *Client) putMetric(
	_ context.Context,
	metricName string,
	value float64,
	unit types.StandardUnit,
	dimensions []types.Dimension,
) error {
	if !m.enabled || m.client == nil {
		return nil
	}

	timeout := time.Duration(cloudwatchTimeoutSeconds) * time.Second
	cwCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	_, err := m.client.PutMetricData(cwCtx, &cloudwatch.PutMetricDataInput{
		Namespace: aws.String(m.namespace),
		MetricData: []types.MetricDatum{
			{
				MetricName: aws.String(metricName),
				Value:      aws.Float64(value),
				Unit:       unit,
				Timestamp:  aws.Time(time.Now()),
				Dimensions: dimensions,
			},
		},
	})

	return err
}

func boolToString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
