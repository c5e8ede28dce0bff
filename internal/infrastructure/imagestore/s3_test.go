package imagestore

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blog-app/blog-api/internal/core/domain"
)

type stubObjectAPI struct {
	objects map[string][]byte
	types   map[string]string
	deleted []string
	putErr  error
}

func newStubObjectAPI() *stubObjectAPI {
	return &stubObjectAPI{objects: map[string][]byte{}, types: map[string]string{}}
}

func (s *stubObjectAPI) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if s.putErr != nil {
		return nil, s.putErr
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	key := aws.ToString(in.Key)
	s.objects[key] = body
	s.types[key] = aws.ToString(in.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func (s *stubObjectAPI) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	key := aws.ToString(in.Key)
	s.deleted = append(s.deleted, key)
	delete(s.objects, key)
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3Store_StoreAndRemove(t *testing.T) {
	api := newStubObjectAPI()
	store := newS3Store(api, "blog", "https://cdn.example.com/blog/", zerolog.Nop())
	ctx := context.Background()

	ref, err := store.Store(ctx, "data:image/jpeg;base64,/9j/4A==")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "https://cdn.example.com/blog/images/image_"), ref)

	key := strings.TrimPrefix(ref, "https://cdn.example.com/blog/")
	require.Contains(t, api.objects, key)
	assert.Equal(t, "image/jpeg", api.types[key])
	assert.Len(t, api.objects[key], 4)

	require.NoError(t, store.Remove(ctx, ref))
	assert.Equal(t, []string{key}, api.deleted)
	assert.NotContains(t, api.objects, key)
}

func TestS3Store_InvalidPayload(t *testing.T) {
	api := newStubObjectAPI()
	store := newS3Store(api, "blog", "https://cdn.example.com/blog", zerolog.Nop())

	_, err := store.Store(context.Background(), "data:image/png;base64")
	assert.ErrorIs(t, err, domain.ErrInvalidImageFormat)
	assert.Empty(t, api.objects)
}

func TestS3Store_PutFailure(t *testing.T) {
	api := newStubObjectAPI()
	api.putErr = errors.New("bucket unavailable")
	store := newS3Store(api, "blog", "https://cdn.example.com/blog", zerolog.Nop())

	_, err := store.Store(context.Background(), "data:image/png;base64,AAAA")
	assert.ErrorContains(t, err, "bucket unavailable")
}

func TestS3Store_RemoveIgnoresForeignRefs(t *testing.T) {
	api := newStubObjectAPI()
	store := newS3Store(api, "blog", "https://cdn.example.com/blog", zerolog.Nop())

	for _, ref := range []string{
		"https://elsewhere.example.com/images/a.png",
		"/public/Images/a.png",
		"https://cdn.example.com/blog/avatars/a.png",
	} {
		assert.NoError(t, store.Remove(context.Background(), ref))
	}
	assert.Empty(t, api.deleted)
}
