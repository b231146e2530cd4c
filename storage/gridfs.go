package storage

import (
	"bytes"
	"context"
	"errors"
	"io"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GridFSStore keeps blobs in the database's GridFS bucket. This is the
// default backend: media lives next to the catalog documents and ids share
// the same ObjectID shape.
type GridFSStore struct {
	bucket *gridfs.Bucket
}

func NewGridFSStore(db *mongo.Database) (*GridFSStore, error) {
	bucket, err := gridfs.NewBucket(db)
	if err != nil {
		return nil, err
	}
	return &GridFSStore{bucket: bucket}, nil
}

func (s *GridFSStore) Put(ctx context.Context, data []byte, filename, contentType string) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	opts := options.GridFSUpload().SetMetadata(bson.M{"contentType": contentType})
	if err := s.bucket.UploadFromStreamWithID(id, filename, bytes.NewReader(data), opts); err != nil {
		return primitive.NilObjectID, err
	}
	return id, nil
}

func (s *GridFSStore) Get(ctx context.Context, id primitive.ObjectID) (io.ReadCloser, *BlobInfo, error) {
	stream, err := s.bucket.OpenDownloadStream(id)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	file := stream.GetFile()
	info := &BlobInfo{
		Filename:    file.Name,
		ContentType: "application/octet-stream",
		Length:      file.Length,
	}
	if ct, lookupErr := file.Metadata.LookupErr("contentType"); lookupErr == nil {
		if value, ok := ct.StringValueOK(); ok {
			info.ContentType = value
		}
	}
	return stream, info, nil
}

func (s *GridFSStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.bucket.Delete(id); err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *GridFSStore) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	count, err := s.bucket.GetFilesCollection().CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
