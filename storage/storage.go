package storage

import (
	"io"
	"log"
	"net/http"

	"blogserver/db"
)

type StorageAPI interface {
	Save(path string, reader io.Reader) (int64, error)
	Load(path string, writer io.Writer) (int64, error)
	Serve(path string, request *http.Request, writer http.ResponseWriter)
	Delete(path string) error
	GetBucket() *Bucket
}

type Storage struct {
	Bucket Bucket
}

func (s *Storage) GetBucket() *Bucket {
	return &s.Bucket
}

var defaultStorage StorageAPI

// Init loads the bucket table and creates a default disk bucket when none
// is configured yet. The first bucket is where new uploads go.
func Init(mediaDir string) {
	db.Instance.AutoMigrate(&Bucket{})

	var buckets []Bucket
	if err := db.Instance.Find(&buckets).Error; err != nil {
		panic(err)
	}
	if len(buckets) == 0 {
		b := Bucket{
			Name:        "media",
			StorageType: StorageTypeFile,
			Path:        mediaDir,
		}
		if err := b.Create(); err != nil {
			panic(err)
		}
		buckets = append(buckets, b)
	}
	log.Printf("Storage buckets found: %d\n", len(buckets))
	first := buckets[0]
	defaultStorage = StorageFrom(&first)
}

func StorageFrom(bucket *Bucket) StorageAPI {
	if bucket.StorageType == StorageTypeS3 {
		return NewS3Storage(bucket)
	}
	return NewDiskStorage(bucket)
}

func GetDefaultStorage() StorageAPI {
	return defaultStorage
}
