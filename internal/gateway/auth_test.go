package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/taskdesk/taskdesk/internal/api"
	"github.com/taskdesk/taskdesk/internal/model"
	"github.com/taskdesk/taskdesk/internal/session"
)

// newAuthFixture wires a session store and auth gateway against a test server
func newAuthFixture(t *testing.T, handler http.HandlerFunc) (*AuthGateway, *session.Store, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := session.NewStore(test.NewApp())
	client := api.NewClient(server.URL, store)
	return NewAuthGateway(client, store), store, server
}

func TestLogin_SuccessSavesSession(t *testing.T) {
	gw, store, _ := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
			t.Errorf("Unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"correct":true,"status":200,"object":{"token":"tok-1","username":"alice","idUsuario":7}}`))
	})

	result, err := gw.Login(context.Background(), model.Credentials{Username: "alice", Password: "secret"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !result.OK() {
		t.Error("Expected success envelope")
	}

	if store.Token() != "tok-1" {
		t.Errorf("Expected session token 'tok-1', got %q", store.Token())
	}
	if store.Username() != "alice" {
		t.Errorf("Expected session username 'alice', got %q", store.Username())
	}
	id, ok := store.UserID()
	if !ok || id != 7 {
		t.Errorf("Expected session user id 7, got %d (present=%v)", id, ok)
	}
}

func TestLogin_FailureLeavesSessionUntouched(t *testing.T) {
	gw, store, _ := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"correct":false,"status":400,"errorMessage":"bad credentials"}`))
	})

	result, err := gw.Login(context.Background(), model.Credentials{Username: "alice", Password: "wrong"})
	if err != nil {
		t.Fatalf("Expected no transport error, got %v", err)
	}
	if result.OK() {
		t.Error("Expected failure envelope")
	}
	if result.Message("generic") != "bad credentials" {
		t.Errorf("Expected envelope message, got %q", result.Message("generic"))
	}

	if store.IsAuthenticated() {
		t.Error("Failed login must not create a session")
	}
}

func TestLogin_SuccessWithoutPayloadDoesNotSave(t *testing.T) {
	gw, store, _ := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"correct":true,"status":200}`))
	})

	_, err := gw.Login(context.Background(), model.Credentials{Username: "alice", Password: "secret"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if store.IsAuthenticated() {
		t.Error("Login without a payload must not create a session")
	}
}

func TestRegister_NoSessionSideEffect(t *testing.T) {
	gw, store, _ := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/register" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"correct":true,"status":201}`))
	})

	result, err := gw.Register(context.Background(), model.Registration{
		Name: "Alice A", Username: "alice", Email: "a@example.com", Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !result.OK() {
		t.Error("Expected 201 envelope to count as success")
	}
	if store.IsAuthenticated() {
		t.Error("Register must not create a session")
	}
}

func TestVerify_TokenAsQueryParameter(t *testing.T) {
	var gotToken string
	gw, _, _ := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/auth/verify" {
			t.Errorf("Unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotToken = r.URL.Query().Get("token")
		w.Write([]byte(`{"correct":true,"status":200}`))
	})

	_, err := gw.Verify(context.Background(), "verify-token")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if gotToken != "verify-token" {
		t.Errorf("Expected token query parameter, got %q", gotToken)
	}
}

func TestPasswordCalls_QueryParameters(t *testing.T) {
	var gotPath string
	var gotQuery map[string]string
	handler := func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = map[string]string{}
		for key := range r.URL.Query() {
			gotQuery[key] = r.URL.Query().Get(key)
		}
		w.Write([]byte(`{"correct":true,"status":200}`))
	}

	gw, store, _ := newAuthFixture(t, handler)

	if _, err := gw.ForgotPassword(context.Background(), "a@example.com"); err != nil {
		t.Fatalf("ForgotPassword: %v", err)
	}
	if gotPath != "/auth/forgot" || gotQuery["email"] != "a@example.com" {
		t.Errorf("ForgotPassword mapped to %s %v", gotPath, gotQuery)
	}

	if _, err := gw.ResetPassword(context.Background(), "rt-1", "newpass"); err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}
	if gotPath != "/auth/reset" || gotQuery["token"] != "rt-1" || gotQuery["newPassword"] != "newpass" {
		t.Errorf("ResetPassword mapped to %s %v", gotPath, gotQuery)
	}

	if _, err := gw.ChangePassword(context.Background(), "alice", "newpass"); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}
	if gotPath != "/auth/change-password" || gotQuery["username"] != "alice" || gotQuery["newPassword"] != "newpass" {
		t.Errorf("ChangePassword mapped to %s %v", gotPath, gotQuery)
	}

	if store.IsAuthenticated() {
		t.Error("Password calls must not create a session")
	}
}

func TestLogout_LocalOnly(t *testing.T) {
	requests := 0
	gw, store, _ := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(`{"correct":true,"status":200}`))
	})

	store.Save("tok-1", "alice", 7)
	gw.Logout()

	if store.IsAuthenticated() {
		t.Error("Expected session to be cleared after Logout")
	}
	if requests != 0 {
		t.Errorf("Logout must not issue network requests, saw %d", requests)
	}
}
