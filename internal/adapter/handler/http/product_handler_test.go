package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	domainErrors "github.com/shoplite/shop-backend/internal/domain/errors"
	"github.com/shoplite/shop-backend/internal/domain/model"
	"github.com/shoplite/shop-backend/internal/usecase"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) Create(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockProductRepo) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *mockProductRepo) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *mockProductRepo) Update(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockProductRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type testValidator struct {
	v *validator.Validate
}

func (t *testValidator) Validate(i interface{}) error {
	return t.v.Struct(i)
}

func newProductTestEnv(repo *mockProductRepo) (*echo.Echo, *ProductHandler) {
	logger := zap.NewNop()
	e := echo.New()
	e.Validator = &testValidator{v: validator.New()}
	return e, NewProductHandler(usecase.NewCatalogUsecase(repo, logger), logger)
}

func TestProductHandler_List(t *testing.T) {
	repo := new(mockProductRepo)
	e, handler := newProductTestEnv(repo)

	repo.On("List", mock.Anything).Return([]model.Product{
		{ID: 1, Name: "Coffee beans", Price: decimal.NewFromInt(12)},
		{ID: 2, Name: "Grinder", Price: decimal.NewFromInt(55)},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	rec := httptest.NewRecorder()

	err := handler.List(e.NewContext(req, rec))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Coffee beans")
	assert.Contains(t, rec.Body.String(), "Grinder")
}

func TestProductHandler_GetUnknownID(t *testing.T) {
	repo := new(mockProductRepo)
	e, handler := newProductTestEnv(repo)

	repo.On("GetByID", mock.Anything, int64(99)).Return(nil, domainErrors.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/99", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("99")

	err := handler.Get(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductHandler_GetMalformedID(t *testing.T) {
	repo := new(mockProductRepo)
	e, handler := newProductTestEnv(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := handler.Get(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestProductHandler_Create(t *testing.T) {
	repo := new(mockProductRepo)
	e, handler := newProductTestEnv(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Product) bool {
		return p.Name == "Kettle" && p.Price.Equal(decimal.RequireFromString("34.50")) && p.Stock == 7
	})).Return(nil)

	body := `{"name":"Kettle","description":"Gooseneck","price":"34.50","stock":7}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := handler.Create(e.NewContext(req, rec))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	repo.AssertExpectations(t)
}

func TestProductHandler_CreateNonPositivePrice(t *testing.T) {
	repo := new(mockProductRepo)
	e, handler := newProductTestEnv(repo)

	body := `{"name":"Kettle","price":"-1","stock":7}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := handler.Create(e.NewContext(req, rec))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductHandler_Delete(t *testing.T) {
	repo := new(mockProductRepo)
	e, handler := newProductTestEnv(repo)

	repo.On("Delete", mock.Anything, int64(4)).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/products/4", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("4")

	err := handler.Delete(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
