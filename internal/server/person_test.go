package server

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/contacts/internal/config"
	countrydomain "github.com/smallbiznis/contacts/internal/country/domain"
	persondomain "github.com/smallbiznis/contacts/internal/person/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePersonService struct {
	addReq    persondomain.AddPersonRequest
	addErr    error
	byIDErr   error
	deleted   bool
	searchBy  string
	searchStr string
	sortBy    string
	sortOrder persondomain.SortOrder
}

func (f *fakePersonService) Add(ctx context.Context, req persondomain.AddPersonRequest) (persondomain.PersonResponse, error) {
	_ = ctx
	f.addReq = req
	if f.addErr != nil {
		return persondomain.PersonResponse{}, f.addErr
	}
	return persondomain.PersonResponse{ID: snowflake.ID(100), PersonName: req.PersonName, Email: req.Email}, nil
}

func (f *fakePersonService) Update(ctx context.Context, req persondomain.UpdatePersonRequest) (persondomain.PersonResponse, error) {
	_ = ctx
	return persondomain.PersonResponse{ID: req.ID, PersonName: req.PersonName, Email: req.Email}, nil
}

func (f *fakePersonService) Delete(ctx context.Context, id snowflake.ID) (bool, error) {
	_ = ctx
	_ = id
	return f.deleted, nil
}

func (f *fakePersonService) GetByID(ctx context.Context, id snowflake.ID) (persondomain.PersonResponse, error) {
	_ = ctx
	if f.byIDErr != nil {
		return persondomain.PersonResponse{}, f.byIDErr
	}
	return persondomain.PersonResponse{ID: id}, nil
}

func (f *fakePersonService) GetAll(ctx context.Context) ([]persondomain.PersonResponse, error) {
	_ = ctx
	return nil, nil
}

func (f *fakePersonService) GetFiltered(ctx context.Context, searchBy, searchString string) ([]persondomain.PersonResponse, error) {
	_ = ctx
	f.searchBy = searchBy
	f.searchStr = searchString
	return []persondomain.PersonResponse{{PersonName: "Mary"}}, nil
}

func (f *fakePersonService) GetSorted(list []persondomain.PersonResponse, sortBy string, order persondomain.SortOrder) []persondomain.PersonResponse {
	f.sortBy = sortBy
	f.sortOrder = order
	return list
}

func (f *fakePersonService) ExportCSV(ctx context.Context) ([]byte, error) {
	_ = ctx
	return []byte("PersonID,PersonName\n"), nil
}

func (f *fakePersonService) ExportExcel(ctx context.Context) ([]byte, error) {
	_ = ctx
	return []byte{0x50, 0x4b}, nil
}

type fakeCountryService struct {
	addErr   error
	imported int
}

func (f *fakeCountryService) Add(ctx context.Context, req countrydomain.AddCountryRequest) (countrydomain.CountryResponse, error) {
	_ = ctx
	if f.addErr != nil {
		return countrydomain.CountryResponse{}, f.addErr
	}
	return countrydomain.CountryResponse{ID: snowflake.ID(7), Name: req.Name}, nil
}

func (f *fakeCountryService) GetAll(ctx context.Context) ([]countrydomain.CountryResponse, error) {
	_ = ctx
	return nil, nil
}

func (f *fakeCountryService) GetByID(ctx context.Context, id snowflake.ID) (countrydomain.CountryResponse, error) {
	_ = ctx
	return countrydomain.CountryResponse{ID: id}, nil
}

func (f *fakeCountryService) ImportFromExcel(ctx context.Context, data []byte) (int, error) {
	_ = ctx
	_ = data
	return f.imported, nil
}

func newTestServer(persons *fakePersonService, countries *fakeCountryService) *Server {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(ErrorHandlingMiddleware())

	return NewServer(ServerParams{
		Gin:        engine,
		Cfg:        config.Config{},
		CountrySvc: countries,
		PersonSvc:  persons,
	})
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&reader).Encode(body))
	}
	req := httptest.NewRequest(method, path, &reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, req)
	return rec
}

func TestAddPersonHandler(t *testing.T) {
	t.Run("ValidPayload", func(t *testing.T) {
		persons := &fakePersonService{}
		srv := newTestServer(persons, &fakeCountryService{})

		rec := doJSON(t, srv, http.MethodPost, "/api/persons", gin.H{
			"person_name":   "Mary",
			"email":         "mary@example.com",
			"date_of_birth": "2002-05-06",
			"country_id":    "7",
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Mary", persons.addReq.PersonName)
		require.NotNil(t, persons.addReq.DateOfBirth)
		require.NotNil(t, persons.addReq.CountryID)
		assert.Equal(t, snowflake.ID(7), *persons.addReq.CountryID)
	})

	t.Run("BadDateIsFieldError", func(t *testing.T) {
		srv := newTestServer(&fakePersonService{}, &fakeCountryService{})

		rec := doJSON(t, srv, http.MethodPost, "/api/persons", gin.H{
			"email":         "mary@example.com",
			"date_of_birth": "06/05/2002",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp errorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "validation_error", resp.Error.Type)
		require.Len(t, resp.Error.Errors, 1)
		assert.Equal(t, "date_of_birth", resp.Error.Errors[0].Field)
	})

	t.Run("UnknownCountryIsFieldError", func(t *testing.T) {
		persons := &fakePersonService{addErr: persondomain.ErrUnknownCountry}
		srv := newTestServer(persons, &fakeCountryService{})

		rec := doJSON(t, srv, http.MethodPost, "/api/persons", gin.H{
			"email": "mary@example.com",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp errorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Error.Errors, 1)
		assert.Equal(t, "country_id", resp.Error.Errors[0].Field)
	})
}

func TestGetPersonHandler(t *testing.T) {
	t.Run("InvalidID", func(t *testing.T) {
		srv := newTestServer(&fakePersonService{}, &fakeCountryService{})
		rec := doJSON(t, srv, http.MethodGet, "/api/persons/not-a-number", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("UnknownIDIs404", func(t *testing.T) {
		persons := &fakePersonService{byIDErr: persondomain.ErrNotFound}
		srv := newTestServer(persons, &fakeCountryService{})
		rec := doJSON(t, srv, http.MethodGet, "/api/persons/12345", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestListPersonsHandler(t *testing.T) {
	persons := &fakePersonService{}
	srv := newTestServer(persons, &fakeCountryService{})

	rec := doJSON(t, srv, http.MethodGet,
		"/api/persons?search_by=PersonName&search_string=ma&sort_by=Email&sort_order=desc", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "PersonName", persons.searchBy)
	assert.Equal(t, "ma", persons.searchStr)
	assert.Equal(t, "Email", persons.sortBy)
	assert.Equal(t, persondomain.SortDesc, persons.sortOrder)
}

func TestDeletePersonHandler(t *testing.T) {
	t.Run("Deleted", func(t *testing.T) {
		srv := newTestServer(&fakePersonService{deleted: true}, &fakeCountryService{})
		rec := doJSON(t, srv, http.MethodDelete, "/api/persons/12345", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":{"deleted":true}}`, rec.Body.String())
	})

	t.Run("Missing", func(t *testing.T) {
		srv := newTestServer(&fakePersonService{deleted: false}, &fakeCountryService{})
		rec := doJSON(t, srv, http.MethodDelete, "/api/persons/12345", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"data":{"deleted":false}}`, rec.Body.String())
	})
}

func TestAddCountryHandler(t *testing.T) {
	t.Run("Duplicate", func(t *testing.T) {
		countries := &fakeCountryService{addErr: countrydomain.ErrDuplicateName}
		srv := newTestServer(&fakePersonService{}, countries)

		rec := doJSON(t, srv, http.MethodPost, "/api/countries", gin.H{"country_name": "USA"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp errorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Error.Errors, 1)
		assert.Equal(t, "country_name", resp.Error.Errors[0].Field)
	})

	t.Run("Valid", func(t *testing.T) {
		srv := newTestServer(&fakePersonService{}, &fakeCountryService{})
		rec := doJSON(t, srv, http.MethodPost, "/api/countries", gin.H{"country_name": "USA"})
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestImportCountriesHandler(t *testing.T) {
	t.Run("MissingFile", func(t *testing.T) {
		srv := newTestServer(&fakePersonService{}, &fakeCountryService{})
		rec := doJSON(t, srv, http.MethodPost, "/api/imports/countries", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Upload", func(t *testing.T) {
		srv := newTestServer(&fakePersonService{}, &fakeCountryService{imported: 3})

		var body bytes.Buffer
		form := multipart.NewWriter(&body)
		part, err := form.CreateFormFile("file", "countries.xlsx")
		require.NoError(t, err)
		_, err = part.Write([]byte("workbook bytes"))
		require.NoError(t, err)
		require.NoError(t, form.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/imports/countries", &body)
		req.Header.Set("Content-Type", form.FormDataContentType())
		rec := httptest.NewRecorder()
		srv.Engine().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":{"inserted":3}}`, rec.Body.String())
	})
}

func TestExportHandlers(t *testing.T) {
	srv := newTestServer(&fakePersonService{}, &fakeCountryService{})

	rec := doJSON(t, srv, http.MethodGet, "/api/exports/persons.csv", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "persons.csv")

	rec = doJSON(t, srv, http.MethodGet, "/api/exports/persons.xlsx", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "persons.xlsx")
}
