package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"fibresite/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	uploads map[string][]byte
	deleted []string
	failure error
}

func newFakeClient() *fakeClient {
	return &fakeClient{uploads: map[string][]byte{}}
}

func (f *fakeClient) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	if f.failure != nil {
		return f.failure
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	f.uploads[key] = data
	return nil
}

func (f *fakeClient) Delete(ctx context.Context, key string) error {
	if f.failure != nil {
		return f.failure
	}
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeClient) URL(key string) string {
	return "https://media.example.com/" + key
}

func (f *fakeClient) HealthCheck() error {
	return f.failure
}

func makeFileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(1 << 20)
	require.NoError(t, err)
	require.Len(t, form.File["image"], 1)

	return form.File["image"][0]
}

func TestUploadImageReturnsAsset(t *testing.T) {
	client := newFakeClient()
	file := makeFileHeader(t, "router.png", "image/png", []byte("png-bytes"))

	asset, err := UploadImage(context.Background(), client, file, "plans", 1<<20)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(asset.ID, "plans/router_"), "key %q should be namespaced", asset.ID)
	assert.True(t, strings.HasSuffix(asset.ID, ".png"))
	assert.Equal(t, "https://media.example.com/"+asset.ID, asset.URL)
	assert.Equal(t, []byte("png-bytes"), client.uploads[asset.ID])
}

func TestUploadImageAllowsSVG(t *testing.T) {
	client := newFakeClient()
	file := makeFileHeader(t, "logo.svg", "image/svg+xml", []byte("<svg/>"))

	asset, err := UploadImage(context.Background(), client, file, "banners", 1<<20)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(asset.ID, ".svg"))
}

func TestUploadImageRejectsNonImage(t *testing.T) {
	client := newFakeClient()
	file := makeFileHeader(t, "notes.pdf", "application/pdf", []byte("%PDF"))

	_, err := UploadImage(context.Background(), client, file, "plans", 1<<20)
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrInvalidImage)
	assert.Empty(t, client.uploads)
}

func TestUploadImageRejectsOversizedFile(t *testing.T) {
	client := newFakeClient()
	file := makeFileHeader(t, "huge.png", "image/png", bytes.Repeat([]byte("a"), 64))

	_, err := UploadImage(context.Background(), client, file, "plans", 16)
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrInvalidImage)
}

func TestUploadImagePropagatesHostFailure(t *testing.T) {
	client := newFakeClient()
	client.failure = errors.New("bucket unavailable")
	file := makeFileHeader(t, "router.png", "image/png", []byte("png-bytes"))

	_, err := UploadImage(context.Background(), client, file, "plans", 1<<20)
	assert.Error(t, err)
}

func TestDeleteQuietlySwallowsFailure(t *testing.T) {
	client := newFakeClient()
	client.failure = errors.New("bucket unavailable")

	// Must not panic or propagate.
	DeleteQuietly(context.Background(), client, "plans/gone.png")
	DeleteQuietly(context.Background(), nil, "plans/gone.png")
	DeleteQuietly(context.Background(), client, "")
}

func TestDeleteQuietlyDeletesOnce(t *testing.T) {
	client := newFakeClient()

	DeleteQuietly(context.Background(), client, "plans/old.png")
	assert.Equal(t, []string{"plans/old.png"}, client.deleted)
}
