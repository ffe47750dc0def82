package publishers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

// loadAWSConfig resolves the SDK config for region, preferring static keys
// when both are given.
func loadAWSConfig(ctx context.Context, region string, creds AWSCredentials) (aws.Config, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	opts := []func(*awscfg.LoadOptions) error{awscfg.WithRegion(region)}
	if creds.AccessKeyID != "" && creds.SecretAccessKey != "" {
		opts = append(opts, awscfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(creds.AccessKeyID, creds.SecretAccessKey, ""),
		))
	}

	cfg, err := awscfg.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("load aws config: %w", err)
	}
	return cfg, nil
}

// stringAttributes drops empty values, which AWS rejects.
func stringAttributes(evt Event) map[string]string {
	out := make(map[string]string)
	for k, v := range evt.attributes() {
		if v != "" {
			out[k] = v
		}
	}
	return out
}

// isFIFO reports whether a queue URL or topic ARN names a FIFO resource.
func isFIFO(target string) bool {
	return strings.HasSuffix(target, ".fifo")
}

// maxDedupID is the longest MessageDeduplicationId SQS and SNS accept.
const maxDedupID = 128

// fifoIDs orders messages per source. FIFO dedup spans the whole queue or
// topic, so the dedup id carries the source and collection time next to the
// digest; only a resend of the same event collapses.
func fifoIDs(evt Event) (group, dedup *string) {
	group = aws.String(evt.SourceID)
	if evt.Digest == "" {
		return group, nil
	}
	id := evt.SourceID + ":" + evt.Digest
	if !evt.CollectedAt.IsZero() {
		id += ":" + strconv.FormatInt(evt.CollectedAt.UnixMilli(), 10)
	}
	if len(id) > maxDedupID {
		sum := sha256.Sum256([]byte(id))
		id = hex.EncodeToString(sum[:])
	}
	return group, aws.String(id)
}
