package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newLoginServer(t *testing.T) (*httptest.Server, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := authenticating.NewService(mockUserRepo, &config.Config{SecretKey: "chave-de-teste"})

	mux := http.NewServeMux()
	mux.Handle("/v1/login", Login(service))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server, mockUserRepo
}

func TestLoginHandler(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("Senha@123"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("login válido devolve o token", func(t *testing.T) {
		server, mockUserRepo := newLoginServer(t)

		mockUserRepo.EXPECT().
			GetUserByEmail("maria@empresa.com").
			Return(&domain.User{
				ID:           7,
				Email:        "maria@empresa.com",
				PasswordHash: string(hash),
				Active:       true,
			}, nil)

		resp, err := http.Post(
			server.URL+"/v1/login",
			"application/json",
			strings.NewReader(`{"email":"maria@empresa.com","password":"Senha@123"}`),
		)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.NotEmpty(t, body["token"])
	})

	t.Run("senha incorreta responde com mensagem fixa", func(t *testing.T) {
		server, mockUserRepo := newLoginServer(t)

		mockUserRepo.EXPECT().
			GetUserByEmail("maria@empresa.com").
			Return(&domain.User{
				ID:           7,
				PasswordHash: string(hash),
				Active:       true,
			}, nil)

		resp, err := http.Post(
			server.URL+"/v1/login",
			"application/json",
			strings.NewReader(`{"email":"maria@empresa.com","password":"errada"}`),
		)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		apiErr := decodeAPIError(t, resp)
		assert.Equal(t, apiErrors.ErrInvalidCredentials, apiErr.Code)
		assert.Equal(t, "Email ou senha incorretos", apiErr.Message)
	})

	t.Run("email desconhecido responde igual a senha incorreta", func(t *testing.T) {
		server, mockUserRepo := newLoginServer(t)

		mockUserRepo.EXPECT().
			GetUserByEmail("ninguem@empresa.com").
			Return(nil, nil)

		resp, err := http.Post(
			server.URL+"/v1/login",
			"application/json",
			strings.NewReader(`{"email":"ninguem@empresa.com","password":"qualquer"}`),
		)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, apiErrors.ErrInvalidCredentials, decodeAPIError(t, resp).Code)
	})

	t.Run("usuário desativado", func(t *testing.T) {
		server, mockUserRepo := newLoginServer(t)

		mockUserRepo.EXPECT().
			GetUserByEmail("maria@empresa.com").
			Return(&domain.User{
				ID:           7,
				PasswordHash: string(hash),
				Active:       false,
			}, nil)

		resp, err := http.Post(
			server.URL+"/v1/login",
			"application/json",
			strings.NewReader(`{"email":"maria@empresa.com","password":"Senha@123"}`),
		)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, apiErrors.ErrUserDisabled, decodeAPIError(t, resp).Code)
	})

	t.Run("corpo inválido", func(t *testing.T) {
		server, _ := newLoginServer(t)

		resp, err := http.Post(server.URL+"/v1/login", "application/json", strings.NewReader(`{`))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, apiErrors.ErrInvalidRequest, decodeAPIError(t, resp).Code)
	})
}
