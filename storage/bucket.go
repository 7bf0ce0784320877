package storage

import (
	"strings"

	"blogserver/db"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

type StorageType uint8

const (
	StorageTypeFile StorageType = 0
	StorageTypeS3   StorageType = 1
)

// Bucket describes where uploaded images live: a writable directory on disk
// or an S3 bucket. AuthDetails in case of S3 is "key:secret".
type Bucket struct {
	ID          uint64 `gorm:"primaryKey"`
	CreatedAt   int64
	UpdatedAt   int64
	Name        string `gorm:"type:varchar(200)"`
	StorageType StorageType
	Path        string // Directory on disk or a prefix inside the S3 bucket
	Region      string `gorm:"type:varchar(32)"`
	Endpoint    string `gorm:"type:varchar(300)"` // For S3-compatible stores
	AuthDetails string
}

func (b *Bucket) Create() error {
	return db.Instance.Create(b).Error
}

func (b *Bucket) CreateSVC() *s3.S3 {
	key, secret, _ := strings.Cut(b.AuthDetails, ":")
	cfg := aws.Config{
		Region:      aws.String(b.Region),
		Credentials: credentials.NewStaticCredentials(key, secret, ""),
	}
	if b.Endpoint != "" {
		cfg.Endpoint = aws.String(b.Endpoint)
		cfg.S3ForcePathStyle = aws.Bool(true)
	}
	return s3.New(session.Must(session.NewSession(&cfg)))
}

func (b *Bucket) GetRemotePath(path string) string {
	if b.Path == "" {
		return path
	}
	return strings.TrimSuffix(b.Path, "/") + "/" + path
}
