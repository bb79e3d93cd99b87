package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	persondomain "github.com/smallbiznis/contacts/internal/person/domain"
)

type personPayload struct {
	PersonName         string `json:"person_name"`
	Email              string `json:"email"`
	DateOfBirth        string `json:"date_of_birth"`
	Gender             string `json:"gender"`
	CountryID          string `json:"country_id"`
	Address            string `json:"address"`
	ReceiveNewsLetters bool   `json:"receive_news_letters"`
	TaxIdNumber        string `json:"tax_id_number"`
}

func (s *Server) AddPerson(c *gin.Context) {
	var payload personPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	dateOfBirth, countryID, err := parsePersonPayload(payload)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.personSvc.Add(c.Request.Context(), persondomain.AddPersonRequest{
		PersonName:         payload.PersonName,
		Email:              payload.Email,
		DateOfBirth:        dateOfBirth,
		Gender:             payload.Gender,
		CountryID:          countryID,
		Address:            payload.Address,
		ReceiveNewsLetters: payload.ReceiveNewsLetters,
		TaxIdNumber:        payload.TaxIdNumber,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListPersons(c *gin.Context) {
	searchBy := strings.TrimSpace(c.Query("search_by"))
	searchString := strings.TrimSpace(c.Query("search_string"))
	sortBy := strings.TrimSpace(c.Query("sort_by"))
	sortOrder := persondomain.ParseSortOrder(c.Query("sort_order"))

	resp, err := s.personSvc.GetFiltered(c.Request.Context(), searchBy, searchString)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if sortBy != "" {
		resp = s.personSvc.GetSorted(resp, sortBy, sortOrder)
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetPersonByID(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.personSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdatePerson(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var payload personPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	dateOfBirth, countryID, err := parsePersonPayload(payload)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.personSvc.Update(c.Request.Context(), persondomain.UpdatePersonRequest{
		ID:                 id,
		PersonName:         payload.PersonName,
		Email:              payload.Email,
		DateOfBirth:        dateOfBirth,
		Gender:             payload.Gender,
		CountryID:          countryID,
		Address:            payload.Address,
		ReceiveNewsLetters: payload.ReceiveNewsLetters,
		TaxIdNumber:        payload.TaxIdNumber,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeletePerson(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	deleted, err := s.personSvc.Delete(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"data": gin.H{"deleted": false}})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}

func parsePersonPayload(payload personPayload) (*time.Time, *snowflake.ID, error) {
	var dateOfBirth *time.Time
	if raw := strings.TrimSpace(payload.DateOfBirth); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, nil, newValidationError("date_of_birth", "invalid_date", "date_of_birth should be YYYY-MM-DD")
		}
		dateOfBirth = &parsed
	}

	var countryID *snowflake.ID
	if raw := strings.TrimSpace(payload.CountryID); raw != "" {
		parsed, err := snowflake.ParseString(raw)
		if err != nil || parsed == 0 {
			return nil, nil, newValidationError("country_id", "invalid_country_id", "invalid country_id")
		}
		countryID = &parsed
	}

	return dateOfBirth, countryID, nil
}
