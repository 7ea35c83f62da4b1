package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/cevlog/internal/source"
)

// s3SpecOrDefault resolves the S3 source: the --s3 flag always wins, and
// when neither a flag nor a positional file is given, CEV_S3_BUCKET and
// CEV_S3_KEY together supply the default.
func s3SpecOrDefault(args []string) string {
	if s3Spec != "" {
		return s3Spec
	}
	if len(args) == 0 && cfg.S3Bucket != "" && cfg.S3Key != "" {
		return cfg.S3Bucket + "/" + cfg.S3Key
	}
	return ""
}

// fetchS3 reads a log archived in object storage. spec is "bucket/key";
// region and endpoint come from CEV_S3_REGION / CEV_S3_ENDPOINT.
func fetchS3(cmd *cobra.Command, spec string) ([]byte, error) {
	bucket, key, ok := strings.Cut(spec, "/")
	if !ok || bucket == "" || key == "" {
		return nil, fmt.Errorf("invalid --s3 value %q, want bucket/key", spec)
	}
	src, err := source.NewS3(cmd.Context(), bucket, key, cfg.S3Region, cfg.S3Endpoint)
	if err != nil {
		return nil, err
	}
	return src.Fetch(cmd.Context())
}
