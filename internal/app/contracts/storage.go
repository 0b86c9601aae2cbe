package contracts

import (
	"context"
	"time"
)

type Storage interface {
	UploadJSON(ctx context.Context, bucketName, objectName string, body []byte) (string, error)
	GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error)
}
