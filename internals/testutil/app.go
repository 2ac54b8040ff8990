package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"manrelbdg_backend/internals/configs"
	authService "manrelbdg_backend/internals/features/users/auth/service"
	helper "manrelbdg_backend/internals/helpers"
	helperOSS "manrelbdg_backend/internals/helpers/oss"
	routes "manrelbdg_backend/internals/route"
)

// Env: app lengkap + dependensi untuk satu test.
type Env struct {
	T     testing.TB
	App   *fiber.App
	DB    *gorm.DB
	Cfg   *configs.Config
	Store helperOSS.Storage
}

// Envelope: bentuk response API; Data dibiarkan mentah untuk di-decode per test.
type Envelope struct {
	Success    bool               `json:"success"`
	Data       json.RawMessage    `json:"data"`
	Message    string             `json:"message"`
	Error      string             `json:"error"`
	Pagination *helper.Pagination `json:"pagination"`
}

// NewEnv membangun app seperti produksi di atas sqlite in-memory.
// mutate (opsional) mengubah config sebelum route dipasang.
func NewEnv(t testing.TB, mutate ...func(*configs.Config)) *Env {
	t.Helper()
	authService.BcryptCost = bcrypt.MinCost

	db := NewDB(t)
	cfg := NewConfig(t)
	for _, m := range mutate {
		m(cfg)
	}
	store, err := helperOSS.NewLocalStorage(cfg.Storage.LocalDir, cfg.Storage.PublicBaseURL)
	if err != nil {
		t.Fatalf("local storage: %v", err)
	}

	log := zap.NewNop()
	app := routes.NewApp(log)
	routes.SetupRoutes(app, routes.Deps{DB: db, Cfg: cfg, Log: log, Store: store, Started: time.Now()})
	return &Env{T: t, App: app, DB: db, Cfg: cfg, Store: store}
}

// Do mengirim request JSON (body nil = tanpa body) dengan bearer token opsional.
func (e *Env) Do(method, path string, body any, token string) (*http.Response, Envelope) {
	e.T.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := sonic.Marshal(body)
		if err != nil {
			e.T.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	return e.Send(req, token)
}

// DoRaw mengirim body mentah (mis. JSON rusak).
func (e *Env) DoRaw(method, path, contentType, body, token string) (*http.Response, Envelope) {
	e.T.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set(fiber.HeaderContentType, contentType)
	return e.Send(req, token)
}

// Upload mengirim multipart dengan satu file + field tambahan.
func (e *Env) Upload(path, field, filename string, content []byte, fields map[string]string, token string) (*http.Response, Envelope) {
	e.T.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			e.T.Fatalf("write field: %v", err)
		}
	}
	fw, err := mw.CreateFormFile(field, filename)
	if err != nil {
		e.T.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		e.T.Fatalf("write file: %v", err)
	}
	if err := mw.Close(); err != nil {
		e.T.Fatalf("close multipart: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set(fiber.HeaderContentType, mw.FormDataContentType())
	return e.Send(req, token)
}

// Send menjalankan request lewat app.Test lalu men-decode envelope bila body JSON.
func (e *Env) Send(req *http.Request, token string) (*http.Response, Envelope) {
	e.T.Helper()
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := e.App.Test(req, -1)
	if err != nil {
		e.T.Fatalf("app.Test %s %s: %v", req.Method, req.URL.Path, err)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		e.T.Fatalf("read body: %v", err)
	}
	_ = resp.Body.Close()
	resp.Body = io.NopCloser(bytes.NewReader(raw))

	var env Envelope
	if len(raw) > 0 && raw[0] == '{' {
		if err := sonic.Unmarshal(raw, &env); err != nil {
			e.T.Fatalf("decode envelope: %v (%s)", err, raw)
		}
	}
	return resp, env
}

// Decode membaca env.Data ke out.
func Decode(t testing.TB, env Envelope, out any) {
	t.Helper()
	if err := sonic.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("decode data: %v (%s)", err, env.Data)
	}
}

// Login: buat user + token sekaligus.
func (e *Env) Login(email, role string) string {
	e.T.Helper()
	return Token(e.T, e.Cfg, CreateUser(e.T, e.DB, email, role, true))
}
