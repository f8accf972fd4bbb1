package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/agroconnect/agroconnect-cli/internal/client/models"
	"github.com/agroconnect/agroconnect-cli/internal/common"
	"github.com/agroconnect/agroconnect-cli/internal/logging"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *RESTClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	log := logging.NewDefault(io.Discard, 0)
	return NewRESTClient(srv.URL, 5*time.Second, log)
}

func TestRESTClient_AuthHeaderLifecycle(t *testing.T) {
	var got []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(models.User{ID: "u1"})
	})

	ctx := context.Background()

	_, err := c.GetProfile(ctx)
	require.NoError(t, err)

	c.SetAuthToken("tok123")
	_, err = c.GetProfile(ctx)
	require.NoError(t, err)

	c.ClearAuthToken()
	_, err = c.GetProfile(ctx)
	require.NoError(t, err)

	require.Equal(t, []string{"", "Bearer tok123", ""}, got)
}

func TestRESTClient_Login_DecodesTokenAndUser(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "770000000", body["telephone"])
		require.Equal(t, "secret", body["mot_de_passe"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"_id": "u1", "prenom": "Awa", "nom": "Diop",
			"telephone": "770000000", "type_utilisateur": "acheteur",
			"token": "tok123",
		})
	})

	resp, err := c.Login(context.Background(), "770000000", "secret")
	require.NoError(t, err)
	require.Equal(t, "tok123", resp.Token)
	require.Equal(t, "Awa", resp.Prenom)
	require.Equal(t, models.RoleAcheteur, resp.TypeUtilisateur)
}

func TestRESTClient_MapsUnauthorized(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Token invalide"})
	})

	_, err := c.GetProfile(context.Background())
	require.ErrorIs(t, err, common.ErrUnauthorized)
	require.Equal(t, "Token invalide", ServerMessage(err, "fallback"))
}

func TestRESTClient_ServerMessageFallback(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("not json"))
	})

	_, err := c.GetProfile(context.Background())
	var se *ServerError
	require.ErrorAs(t, err, &se)
	require.Equal(t, http.StatusBadRequest, se.Status)
	require.Equal(t, "Erreur", ServerMessage(err, "Erreur"))
	require.NotErrorIs(t, err, common.ErrUnauthorized)
}

func TestRESTClient_NetworkErrorMapsToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused from here on
	log := logging.NewDefault(io.Discard, 0)
	c := NewRESTClient(srv.URL, time.Second, log)

	_, err := c.GetProfile(context.Background())
	require.ErrorIs(t, err, common.ErrUnavailable)
}

func TestRESTClient_ListQuery(t *testing.T) {
	var gotURL string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.String()
		_ = json.NewEncoder(w).Encode(models.ProductPage{})
	})

	_, err := c.ListProducts(context.Background(), 2, "riz")
	require.NoError(t, err)
	require.Equal(t, "/produits?keyword=riz&page=2", gotURL)

	_, err = c.ListProducts(context.Background(), 0, "")
	require.NoError(t, err)
	require.Equal(t, "/produits", gotURL)
}

func TestRESTClient_UploadPaymentProof_Multipart(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/paiements/p1/preuve", r.URL.Path)
		require.Contains(t, r.Header.Get("Content-Type"), "multipart/form-data")

		f, hdr, err := r.FormFile("preuve")
		require.NoError(t, err)
		defer f.Close()
		require.Equal(t, "recu.png", hdr.Filename)

		data, err := io.ReadAll(f)
		require.NoError(t, err)
		require.Equal(t, "fake-image", string(data))

		_ = json.NewEncoder(w).Encode(models.Payment{ID: "p1", Statut: "en_verification"})
	})

	p, err := c.UploadPaymentProof(context.Background(), "p1", "recu.png", strings.NewReader("fake-image"))
	require.NoError(t, err)
	require.Equal(t, "p1", p.ID)
}

func TestRESTClient_UpdateOrderStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/commandes/c1/statut", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "confirmee", body["statut"])

		_ = json.NewEncoder(w).Encode(models.Order{ID: "c1", Statut: "confirmee"})
	})

	o, err := c.UpdateOrderStatus(context.Background(), "c1", "confirmee")
	require.NoError(t, err)
	require.Equal(t, "confirmee", o.Statut)
}

func TestServerError_UnwrapOnlyAuthStatuses(t *testing.T) {
	require.ErrorIs(t, error(&ServerError{Status: 401}), common.ErrUnauthorized)
	require.ErrorIs(t, error(&ServerError{Status: 403}), common.ErrUnauthorized)
	require.NotErrorIs(t, error(&ServerError{Status: 500}), common.ErrUnauthorized)
}

func TestServerMessage_NonServerError(t *testing.T) {
	require.Equal(t, "générique", ServerMessage(errors.New("boom"), "générique"))
}
