package repository

import "context"

// ReportRepository grava o relatório serializado. A escrita é incondicional:
// uma chave existente é sobrescrita.
type ReportRepository interface {
	PutReport(ctx context.Context, bucket, key string, body []byte) error
	// Location returns the fully-qualified address of bucket/key, ex.: s3://bucket/key.
	Location(bucket, key string) string
}
