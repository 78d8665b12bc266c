// Package main contains the Lambda warmup handler for preventing cold starts.
// A scheduled event with source "warmup" keeps instances (and their
// translator client) warm; a positive concurrency asks this instance to
// self-invoke that many times asynchronously.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	lambdasdk "github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"go.uber.org/zap"
)

const (
	// WarmupSource identifies warmup events from the scheduler.
	WarmupSource = "warmup"

	// WarmupDelay keeps this instance busy long enough for the
	// self-invocations to land on other instances.
	WarmupDelay = 75 * time.Millisecond

	// MaxWarmupConcurrency caps self-invocations per warmup event.
	MaxWarmupConcurrency = 50
)

// WarmupEvent is the scheduled event payload.
type WarmupEvent struct {
	Source      string `json:"source"`
	Concurrency int    `json:"concurrency"`
}

// WarmupResponse is returned for warmup events instead of a tool response.
type WarmupResponse struct {
	Status          string `json:"status"`
	InstancesWarmed int    `json:"instancesWarmed"`
}

// Invoker is the subset of the Lambda client used for self-invocation.
type Invoker interface {
	Invoke(ctx context.Context, params *lambdasdk.InvokeInput, optFns ...func(*lambdasdk.Options)) (*lambdasdk.InvokeOutput, error)
}

// invokerFactory returns a client and the name of the function to invoke.
type invokerFactory func(ctx context.Context) (Invoker, string, error)

// IsWarmupEvent checks if the event is a warmup event.
// A missing or non-numeric concurrency counts as zero.
func IsWarmupEvent(event json.RawMessage) (*WarmupEvent, bool) {
	var raw struct {
		Source      string `json:"source"`
		Concurrency any    `json:"concurrency"`
	}
	if err := json.Unmarshal(event, &raw); err != nil || raw.Source != WarmupSource {
		return nil, false
	}

	warmup := &WarmupEvent{Source: raw.Source}
	if n, ok := raw.Concurrency.(float64); ok && n > 0 {
		warmup.Concurrency = int(n)
	}
	return warmup, true
}

type warmer struct {
	newInvoker invokerFactory
	logger     *zap.Logger
	delay      time.Duration
}

func newWarmer(f invokerFactory, logger *zap.Logger) *warmer {
	return &warmer{newInvoker: f, logger: logger, delay: WarmupDelay}
}

// Handle processes a warmup event and optionally self-invokes
// to maintain multiple warm instances.
func (w *warmer) Handle(ctx context.Context, warmup *WarmupEvent) (*WarmupResponse, error) {
	instancesWarmed := 1 // This instance counts as 1

	count := warmup.Concurrency
	if count > MaxWarmupConcurrency {
		count = MaxWarmupConcurrency
	}
	if count > 0 {
		if err := w.selfInvoke(ctx, count); err != nil {
			w.logger.Warn("Warmup self-invocation failed", zap.Int("concurrency", count), zap.Error(err))
		} else {
			instancesWarmed += count
		}
	}

	time.Sleep(w.delay)

	return &WarmupResponse{Status: "warm", InstancesWarmed: instancesWarmed}, nil
}

// selfInvoke invokes this function count times asynchronously.
func (w *warmer) selfInvoke(ctx context.Context, count int) error {
	client, functionName, err := w.newInvoker(ctx)
	if err != nil {
		return err
	}

	// Child invocations carry concurrency 0 so they do not recurse.
	payload, err := json.Marshal(WarmupEvent{Source: WarmupSource})
	if err != nil {
		return err
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for i := 0; i < count; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := client.Invoke(ctx, &lambdasdk.InvokeInput{
				FunctionName:   aws.String(functionName),
				InvocationType: types.InvocationTypeEvent,
				Payload:        payload,
			})
			if err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	return errors.Join(errs...)
}

func lambdaInvokerFromEnv(ctx context.Context) (Invoker, string, error) {
	functionName := os.Getenv("AWS_LAMBDA_FUNCTION_NAME")
	if functionName == "" {
		return nil, "", fmt.Errorf("AWS_LAMBDA_FUNCTION_NAME is not set")
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load AWS config: %w", err)
	}
	return lambdasdk.NewFromConfig(cfg), functionName, nil
}
