package http_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	api "github.com/Vrun1506/foto-AI/internal/adapters/http"
	"github.com/Vrun1506/foto-AI/internal/agent"
	"github.com/Vrun1506/foto-AI/internal/storage"
)

type fakeProcessor struct {
	lastImage  string
	lastPrompt string
	outcome    agent.Outcome
}

func (f *fakeProcessor) ProcessImage(_ context.Context, imagePath, prompt string) agent.Outcome {
	f.lastImage = imagePath
	f.lastPrompt = prompt
	return f.outcome
}

func newTestServer(t *testing.T, processor api.Processor) (*httptest.Server, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemory()
	srv := httptest.NewServer(api.NewHandler(store, "test-bucket", processor, nil))
	t.Cleanup(srv.Close)
	return srv, store
}

func multipartBody(t *testing.T, fields map[string]string, fileField, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileField != "" {
		fw, err := mw.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "healthy", body["status"])
}

func TestUpload_DefaultsObjectNameToFilename(t *testing.T) {
	srv, store := newTestServer(t, nil)

	buf, contentType := multipartBody(t, map[string]string{"prompt": "brighten it"}, "file", "photo.jpg", []byte("jpeg-bytes"))
	resp, err := http.Post(srv.URL+"/upload", contentType, buf)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "File uploaded successfully", body["message"])
	assert.Equal(t, "photo.jpg", body["object_name"])
	assert.Equal(t, "brighten it", body["prompt"])
	assert.Equal(t, "test-bucket", body["bucket"])

	data, _, err := store.Get(context.Background(), "photo.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)
}

func TestUpload_ExplicitObjectName(t *testing.T) {
	srv, store := newTestServer(t, nil)

	buf, contentType := multipartBody(t, map[string]string{"object_name": "renamed.png"}, "file", "photo.png", []byte("png"))
	resp, err := http.Post(srv.URL+"/upload", contentType, buf)
	require.NoError(t, err)

	body := decodeBody(t, resp)
	assert.Equal(t, "renamed.png", body["object_name"])

	_, err = store.Head(context.Background(), "renamed.png")
	assert.NoError(t, err)
}

func TestUpload_MissingFile(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	buf, contentType := multipartBody(t, map[string]string{"prompt": "hi"}, "", "", nil)
	resp, err := http.Post(srv.URL+"/upload", contentType, buf)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "No file provided", body["error"])
}

func TestDownload(t *testing.T) {
	srv, store := newTestServer(t, nil)
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "a.png", strings.NewReader("pixels"), 6, "image/png"))

	resp, err := http.Get(srv.URL + "/download/a.png")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "a.png", body["object_name"])
	assert.Equal(t, "image/png", body["content_type"])
	assert.Equal(t, float64(6), body["size"])
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("pixels")), body["data"])
}

func TestDownload_NotFound(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	resp, err := http.Get(srv.URL + "/download/nope.png")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "File not found", body["error"])
}

func TestList(t *testing.T) {
	srv, store := newTestServer(t, nil)
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "in-a.png", strings.NewReader("a"), 1, "image/png"))
	require.NoError(t, store.Put(ctx, "in-b.png", strings.NewReader("b"), 1, "image/png"))
	require.NoError(t, store.Put(ctx, "out-c.png", strings.NewReader("c"), 1, "image/png"))

	resp, err := http.Get(srv.URL + "/list?prefix=in-")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "test-bucket", body["bucket"])
	assert.Equal(t, float64(2), body["count"])
	objects := body["objects"].([]any)
	names := make([]string, 0, len(objects))
	for _, o := range objects {
		names = append(names, o.(map[string]any)["name"].(string))
	}
	assert.ElementsMatch(t, []string{"in-a.png", "in-b.png"}, names)
}

func TestDelete(t *testing.T) {
	srv, store := newTestServer(t, nil)
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "gone.png", strings.NewReader("x"), 1, "image/png"))

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/delete/gone.png", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "File deleted successfully", body["message"])

	_, err = store.Head(ctx, "gone.png")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/delete/ghost.png", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMetadata(t *testing.T) {
	srv, store := newTestServer(t, nil)
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "meta.png", strings.NewReader("abcd"), 4, "image/png"))

	resp, err := http.Get(srv.URL + "/metadata/meta.png")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "meta.png", body["object_name"])
	assert.Equal(t, "image/png", body["content_type"])
	assert.Equal(t, float64(4), body["content_length"])
	assert.NotEmpty(t, body["etag"])
}

func TestProcess(t *testing.T) {
	processor := &fakeProcessor{outcome: agent.Outcome{
		Status:  "success",
		Message: "Image processed successfully",
		Result:  "Done.",
	}}
	srv, store := newTestServer(t, processor)
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "job.png", strings.NewReader("x"), 1, "image/png"))

	payload := `{"object_name": "job.png", "prompt": "remove the background"}`
	resp, err := http.Post(srv.URL+"/process", "application/json", strings.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "Done.", body["result"])
	assert.Equal(t, "job.png", processor.lastImage)
	assert.Equal(t, "remove the background", processor.lastPrompt)
}

func TestProcess_ObjectMissing(t *testing.T) {
	processor := &fakeProcessor{}
	srv, _ := newTestServer(t, processor)

	payload := `{"object_name": "absent.png", "prompt": "anything"}`
	resp, err := http.Post(srv.URL+"/process", "application/json", strings.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Empty(t, processor.lastImage, "agent should not run for a missing object")
}

func TestProcess_AgentFailure(t *testing.T) {
	processor := &fakeProcessor{outcome: agent.Outcome{
		Status:  "error",
		Message: "Connection error: proxy unreachable",
	}}
	srv, store := newTestServer(t, processor)
	require.NoError(t, store.Put(context.Background(), "job.png", strings.NewReader("x"), 1, "image/png"))

	payload := `{"object_name": "job.png"}`
	resp, err := http.Post(srv.URL+"/process", "application/json", strings.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "error", body["status"])
}

func TestProcess_NoAgentConfigured(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	resp, err := http.Post(srv.URL+"/process", "application/json", strings.NewReader(`{"object_name":"x"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestUnknownEndpoint(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	resp, err := http.Get(srv.URL + "/nope")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Endpoint not found", body["error"])
}
