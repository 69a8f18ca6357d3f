package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubObjectAPI struct {
	putInput *s3.PutObjectInput
	putBody  []byte
	putErr   error

	headInput *s3.HeadObjectInput
	headOut   *s3.HeadObjectOutput
	headErr   error
}

func (s *stubObjectAPI) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	s.putInput = in
	if in.Body != nil {
		s.putBody, _ = io.ReadAll(in.Body)
	}
	if s.putErr != nil {
		return nil, s.putErr
	}
	return &s3.PutObjectOutput{}, nil
}

func (s *stubObjectAPI) HeadObject(_ context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	s.headInput = in
	return s.headOut, s.headErr
}

// Multipart paths are never hit for bodies under the part size; the stubs
// exist only to satisfy the uploader's client interface.
func (s *stubObjectAPI) UploadPart(context.Context, *s3.UploadPartInput, ...func(*s3.Options)) (*s3.UploadPartOutput, error) {
	return nil, errors.New("unexpected UploadPart")
}

func (s *stubObjectAPI) CreateMultipartUpload(context.Context, *s3.CreateMultipartUploadInput, ...func(*s3.Options)) (*s3.CreateMultipartUploadOutput, error) {
	return nil, errors.New("unexpected CreateMultipartUpload")
}

func (s *stubObjectAPI) CompleteMultipartUpload(context.Context, *s3.CompleteMultipartUploadInput, ...func(*s3.Options)) (*s3.CompleteMultipartUploadOutput, error) {
	return nil, errors.New("unexpected CompleteMultipartUpload")
}

func (s *stubObjectAPI) AbortMultipartUpload(context.Context, *s3.AbortMultipartUploadInput, ...func(*s3.Options)) (*s3.AbortMultipartUploadOutput, error) {
	return nil, errors.New("unexpected AbortMultipartUpload")
}

type stubPresignAPI struct {
	input   *s3.GetObjectInput
	expires time.Duration
	url     string
	err     error
}

func (s *stubPresignAPI) PresignGetObject(_ context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	s.input = in
	var opts s3.PresignOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	s.expires = opts.Expires
	if s.err != nil {
		return nil, s.err
	}
	return &v4.PresignedHTTPRequest{URL: s.url, Method: "GET"}, nil
}

func newTestClient(t *testing.T, api *stubObjectAPI, presign *stubPresignAPI) *Client {
	t.Helper()
	client, err := New(api, presign, "cadenza-recordings")
	require.NoError(t, err)
	return client
}

func TestStorageConstruction(t *testing.T) {
	t.Run("requires object API", func(t *testing.T) {
		_, err := New(nil, &stubPresignAPI{}, "bucket")
		require.Error(t, err)
	})

	t.Run("requires presign API", func(t *testing.T) {
		_, err := New(&stubObjectAPI{}, nil, "bucket")
		require.Error(t, err)
	})

	t.Run("requires bucket", func(t *testing.T) {
		_, err := New(&stubObjectAPI{}, &stubPresignAPI{}, "")
		require.Error(t, err)
	})
}

func TestUpload(t *testing.T) {
	ctx := context.Background()

	t.Run("streams body with content type", func(t *testing.T) {
		api := &stubObjectAPI{}
		client := newTestClient(t, api, &stubPresignAPI{})

		key := MediaKey("org-1", "user-1", "rec-1", "video/mp4")
		err := client.Upload(ctx, key, strings.NewReader("media-bytes"), "video/mp4")
		require.NoError(t, err)

		require.NotNil(t, api.putInput)
		assert.Equal(t, "cadenza-recordings", aws.ToString(api.putInput.Bucket))
		assert.Equal(t, key, aws.ToString(api.putInput.Key))
		assert.Equal(t, "video/mp4", aws.ToString(api.putInput.ContentType))
		assert.Equal(t, "media-bytes", string(api.putBody))
	})

	t.Run("omits empty content type", func(t *testing.T) {
		api := &stubObjectAPI{}
		client := newTestClient(t, api, &stubPresignAPI{})

		err := client.Upload(ctx, "some/key", strings.NewReader("x"), "")
		require.NoError(t, err)
		assert.Nil(t, api.putInput.ContentType)
	})

	t.Run("rejects empty key", func(t *testing.T) {
		client := newTestClient(t, &stubObjectAPI{}, &stubPresignAPI{})

		err := client.Upload(ctx, "", strings.NewReader("x"), "video/mp4")
		require.Error(t, err)
	})

	t.Run("wraps upload errors", func(t *testing.T) {
		api := &stubObjectAPI{putErr: errors.New("access denied")}
		client := newTestClient(t, api, &stubPresignAPI{})

		err := client.Upload(ctx, "some/key", strings.NewReader("x"), "video/mp4")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "some/key")
	})
}

func TestHead(t *testing.T) {
	ctx := context.Background()

	t.Run("returns object info", func(t *testing.T) {
		api := &stubObjectAPI{
			headOut: &s3.HeadObjectOutput{
				ContentLength: aws.Int64(2048),
				ContentType:   aws.String("video/mp4"),
			},
		}
		client := newTestClient(t, api, &stubPresignAPI{})

		info, err := client.Head(ctx, "some/key")
		require.NoError(t, err)
		assert.Equal(t, int64(2048), info.Size)
		assert.Equal(t, "video/mp4", info.ContentType)
		assert.Equal(t, "some/key", aws.ToString(api.headInput.Key))
	})

	t.Run("maps missing objects to ErrObjectNotFound", func(t *testing.T) {
		api := &stubObjectAPI{headErr: &types.NotFound{}}
		client := newTestClient(t, api, &stubPresignAPI{})

		_, err := client.Head(ctx, "missing/key")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrObjectNotFound)
	})

	t.Run("passes other errors through", func(t *testing.T) {
		api := &stubObjectAPI{headErr: errors.New("throttled")}
		client := newTestClient(t, api, &stubPresignAPI{})

		_, err := client.Head(ctx, "some/key")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrObjectNotFound)
	})
}

func TestPresignGet(t *testing.T) {
	ctx := context.Background()

	t.Run("mints seven day URL", func(t *testing.T) {
		presign := &stubPresignAPI{url: "https://s3.example.com/signed"}
		client := newTestClient(t, &stubObjectAPI{}, presign)

		url, err := client.PresignGet(ctx, "some/key")
		require.NoError(t, err)
		assert.Equal(t, "https://s3.example.com/signed", url)
		assert.Equal(t, PresignTTL, presign.expires)
		assert.Equal(t, "cadenza-recordings", aws.ToString(presign.input.Bucket))
		assert.Equal(t, "some/key", aws.ToString(presign.input.Key))
	})

	t.Run("wraps presign errors", func(t *testing.T) {
		presign := &stubPresignAPI{err: errors.New("no credentials")}
		client := newTestClient(t, &stubObjectAPI{}, presign)

		_, err := client.PresignGet(ctx, "some/key")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "some/key")
	})
}
